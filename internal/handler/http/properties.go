package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/go-chi/chi/v5"
)

// idParam parses a numeric URL parameter; ok is false after an error
// response has already been written.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

// payloadFromBody decodes the request body into the raw field map the write
// pipeline works on; ok is false after an error response has already been
// written.
func payloadFromBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return nil, false
	}

	return payload, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload, ok := payloadFromBody(w, r)
	if !ok {
		return
	}

	property, err := h.services.PropertyService.Create(r.Context(), payload)
	if err != nil {
		log.Err(err).Msg("property creation failed")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, property)
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "propertyID")
	if !ok {
		return
	}

	property, err := h.services.PropertyService.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("property_id", id).Msg("property lookup failed")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, property)
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.services.PropertyService.List(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("property listing failed")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, properties)
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(w, r, "propertyID")
	if !ok {
		return
	}
	payload, ok := payloadFromBody(w, r)
	if !ok {
		return
	}

	if err := h.services.PropertyService.Update(r.Context(), id, payload); err != nil {
		log.Err(err).Int64("property_id", id).Msg("property update failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "propertyID")
	if !ok {
		return
	}

	if err := h.services.PropertyService.Delete(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Int64("property_id", id).Msg("property deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
