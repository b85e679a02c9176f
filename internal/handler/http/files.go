package http

import (
	"io"
	"net/http"
	"net/url"

	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/go-chi/chi/v5"
)

// pathParam returns a URL parameter with percent-escapes decoded. Category
// and file names carry spaces ("Sensible Daten"), which arrive escaped.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}

	return raw
}

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	propertyID, ok := idParam(w, r, "propertyID")
	if !ok {
		return
	}
	category := pathParam(r, "category")
	fileName := pathParam(r, "fileName")

	data, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("reading upload body failed")
		http.Error(w, "reading upload body failed", http.StatusBadRequest)
		return
	}

	file, err := h.services.PropertyFileService.Upload(r.Context(), propertyID, category, fileName, data)
	if err != nil {
		log.Err(err).Int64("property_id", propertyID).Str("file", fileName).Msg("file upload failed")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, file)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := idParam(w, r, "propertyID")
	if !ok {
		return
	}
	category := pathParam(r, "category")

	files, err := h.services.PropertyFileService.List(r.Context(), propertyID, category)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("property_id", propertyID).Msg("file listing failed")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, files)
}

func (h *Handler) removeAllFiles(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := idParam(w, r, "propertyID")
	if !ok {
		return
	}

	if err := h.services.PropertyFileService.RemoveAll(r.Context(), propertyID); err != nil {
		logger.FromRequest(r).Err(err).Int64("property_id", propertyID).Msg("property folder removal failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := idParam(w, r, "propertyID")
	if !ok {
		return
	}
	category := pathParam(r, "category")
	fileName := pathParam(r, "fileName")

	if err := h.services.PropertyFileService.Delete(r.Context(), propertyID, category, fileName); err != nil {
		logger.FromRequest(r).Err(err).Int64("property_id", propertyID).Str("file", fileName).Msg("file deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
