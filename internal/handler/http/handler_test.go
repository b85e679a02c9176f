package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/internal/mock"
	"github.com/agenturjaeger/immocrm/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	properties *mock.MockPropertyService
	contacts   *mock.MockContactService
	files      *mock.MockPropertyFileService
}

func newTestServer(t *testing.T, ctrl *gomock.Controller) (*httptest.Server, testMocks) {
	t.Helper()

	mocks := testMocks{
		properties: mock.NewMockPropertyService(ctrl),
		contacts:   mock.NewMockContactService(ctrl),
		files:      mock.NewMockPropertyFileService(ctrl),
	}

	h := NewHandler(&service.Services{
		PropertyService:     mocks.properties,
		ContactService:      mocks.contacts,
		PropertyFileService: mocks.files,
	}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv, mocks
}

func doRequest(t *testing.T, method, url string, body []byte) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func jsonBody(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
