package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/agenturjaeger/immocrm/internal/mapping"
	"github.com/agenturjaeger/immocrm/internal/service"
	"github.com/agenturjaeger/immocrm/internal/store"
	"github.com/agenturjaeger/immocrm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateProperty_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	payload := map[string]any{"price": 135000.0, "title": "Kapitalanlage"}
	mocks.properties.EXPECT().
		Create(gomock.Any(), payload).
		Return(models.Property{ID: 1}, nil)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/properties", jsonBody(t, payload))

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got models.Property
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, int64(1), got.ID)
}

func TestCreateProperty_UnknownFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.properties.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.Property{}, &mapping.UnknownFieldsError{Entity: "property", Fields: []string{"sunroofXL"}})

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/properties", jsonBody(t, map[string]any{"sunroofXL": true}))

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "sunroofXL")
}

func TestCreateProperty_NothingToInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.properties.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.Property{}, service.ErrNothingToInsert)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/properties", jsonBody(t, map[string]any{"price": nil}))

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateProperty_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, _ := newTestServer(t, ctrl)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/properties", []byte("{not json"))

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProperty_PassesExplicitNullThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.properties.EXPECT().
		Update(gomock.Any(), int64(7), map[string]any{"price": nil}).
		Return(nil)

	resp := doRequest(t, http.MethodPatch, srv.URL+"/api/properties/7", []byte(`{"price":null}`))

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestUpdateProperty_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.properties.EXPECT().
		Update(gomock.Any(), int64(404), gomock.Any()).
		Return(store.ErrPropertyNotFound)

	resp := doRequest(t, http.MethodPatch, srv.URL+"/api/properties/404", jsonBody(t, map[string]any{"title": "x"}))

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProperty_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, _ := newTestServer(t, ctrl)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/properties/abc", nil)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListProperties_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.properties.EXPECT().
		List(gomock.Any()).
		Return([]models.Property{{ID: 1}, {ID: 2}}, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/properties", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.Property
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestDeleteProperty_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.properties.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

	resp := doRequest(t, http.MethodDelete, srv.URL+"/api/properties/3", nil)

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestTraceIDHeader_GeneratedWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)
	mocks.properties.EXPECT().List(gomock.Any()).Return(nil, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/properties", nil)

	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

func TestTraceIDHeader_Propagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)
	mocks.properties.EXPECT().List(gomock.Any()).Return(nil, nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/properties", nil)
	require.NoError(t, err)
	req.Header.Set("X-Trace-ID", "trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get("X-Trace-ID"))
}
