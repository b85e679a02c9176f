package http

import (
	"errors"
	"net/http"

	"github.com/agenturjaeger/immocrm/internal/filestore"
	"github.com/agenturjaeger/immocrm/internal/mapping"
	"github.com/agenturjaeger/immocrm/internal/service"
	"github.com/agenturjaeger/immocrm/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNothingToInsert: http.StatusBadRequest,
	service.ErrUnknownCategory: http.StatusBadRequest,
	service.ErrInvalidFileName: http.StatusBadRequest,

	store.ErrPropertyNotFound: http.StatusNotFound,
	store.ErrContactNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrNothingPersisted: http.StatusInternalServerError,

	filestore.ErrNotFound:   http.StatusNotFound,
	filestore.ErrTimeout:    http.StatusGatewayTimeout,
	filestore.ErrConnection: http.StatusBadGateway,
	filestore.ErrAuth:       http.StatusBadGateway,
	filestore.ErrStorage:    http.StatusBadGateway,
}

func statusFromError(err error) int {
	// A payload carrying fields the schema does not know is the client's
	// mistake, reported with the offending field names.
	var unknownErr *mapping.UnknownFieldsError
	if errors.As(err, &unknownErr) {
		return http.StatusUnprocessableEntity
	}

	// Database constraint violations surface verbatim as conflicts.
	if store.IsConstraintViolation(err) {
		return http.StatusConflict
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	return http.StatusInternalServerError
}

// respondError writes err as a plain-text HTTP error. Internal errors keep
// their detail out of the response body.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}

	http.Error(w, err.Error(), status)
}
