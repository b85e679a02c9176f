package http

import (
	"net/http"

	"github.com/agenturjaeger/immocrm/internal/logger"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload, ok := payloadFromBody(w, r)
	if !ok {
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), payload)
	if err != nil {
		log.Err(err).Msg("contact creation failed")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "contactID")
	if !ok {
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("contact_id", id).Msg("contact lookup failed")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.List(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("contact listing failed")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contacts)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(w, r, "contactID")
	if !ok {
		return
	}
	payload, ok := payloadFromBody(w, r)
	if !ok {
		return
	}

	if err := h.services.ContactService.Update(r.Context(), id, payload); err != nil {
		log.Err(err).Int64("contact_id", id).Msg("contact update failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "contactID")
	if !ok {
		return
	}

	if err := h.services.ContactService.Delete(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Int64("contact_id", id).Msg("contact deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
