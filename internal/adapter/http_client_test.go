package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agenturjaeger/immocrm/internal/config"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T, serverURL string) ContactNotifier {
	t.Helper()
	log := logger.Nop()
	return NewHTTPCRMNotifier(config.Adapter{
		CRMBaseURL:     serverURL,
		CRMAPIKey:      "test-api-key",
		RequestTimeout: 5 * time.Second,
	}, log)
}

func strPtr(s string) *string { return &s }

func TestSyncContact_Success(t *testing.T) {
	contact := models.Contact{ID: 42, FirstName: strPtr("Max"), LastName: strPtr("Mustermann")}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/contacts/42", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-Api-Key"))

		var got models.Contact
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, contact.ID, got.ID)
		require.NotNil(t, got.LastName)
		assert.Equal(t, "Mustermann", *got.LastName)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL)
	require.NoError(t, n.SyncContact(context.Background(), contact))
}

func TestSyncContact_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid api key"))
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL)
	err := n.SyncContact(context.Background(), models.Contact{ID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSyncContact_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("email malformed"))
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL)
	err := n.SyncContact(context.Background(), models.Contact{ID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "email malformed")
}

func TestRemoveContact_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/contacts/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL)
	require.NoError(t, n.RemoveContact(context.Background(), 7))
}

func TestRemoveContact_UnknownContactIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL)
	require.NoError(t, n.RemoveContact(context.Background(), 7))
}

func TestNewHTTPCRMNotifier_NoBaseURLIsNop(t *testing.T) {
	n := NewHTTPCRMNotifier(config.Adapter{}, logger.Nop())

	require.NoError(t, n.SyncContact(context.Background(), models.Contact{ID: 1}))
	require.NoError(t, n.RemoveContact(context.Background(), 1))
}
