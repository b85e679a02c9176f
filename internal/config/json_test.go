package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempConfigFile(t, `{
		"server": {
			"http_address": "0.0.0.0:8081",
			"request_timeout": "45s"
		},
		"storage": {
			"db": {
				"dsn": "postgres://user:pass@db/immocrm"
			},
			"nas": {
				"backend": "webdav",
				"address": "https://nas.local:5006",
				"user": "crm",
				"password": "secret",
				"webdav_base_path": "/volume1/Daten/Immobilien",
				"ftp_base_path": "/Daten/Immobilien",
				"operation_timeout": "10s"
			}
		},
		"adapter": {
			"crm_base_url": "https://crm.example.com",
			"crm_api_key": "api-key",
			"request_timeout": "15s"
		}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://user:pass@db/immocrm", cfg.Storage.DB.DSN)
	assert.Equal(t, "webdav", cfg.Storage.NAS.Backend)
	assert.Equal(t, "https://nas.local:5006", cfg.Storage.NAS.Address)
	assert.Equal(t, "crm", cfg.Storage.NAS.User)
	assert.Equal(t, "secret", cfg.Storage.NAS.Password)
	assert.Equal(t, "/volume1/Daten/Immobilien", cfg.Storage.NAS.WebDAVBasePath)
	assert.Equal(t, "/Daten/Immobilien", cfg.Storage.NAS.FTPBasePath)
	assert.Equal(t, 10*time.Second, cfg.Storage.NAS.OperationTimeout)
	assert.Equal(t, "https://crm.example.com", cfg.Adapter.CRMBaseURL)
	assert.Equal(t, "api-key", cfg.Adapter.CRMAPIKey)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempConfigFile(t, "{not json")
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", input: `"1h"`, expected: time.Hour},
		{name: "seconds string", input: `"30s"`, expected: 30 * time.Second},
		{name: "raw nanoseconds", input: `5000000000`, expected: 5 * time.Second},
		{name: "garbage string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
