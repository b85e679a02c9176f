package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags and
// string-friendly duration parsing for the optional JSON config file.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		NAS struct {
			Backend          string   `json:"backend"`
			Address          string   `json:"address"`
			User             string   `json:"user"`
			Password         string   `json:"password"`
			WebDAVBasePath   string   `json:"webdav_base_path"`
			FTPBasePath      string   `json:"ftp_base_path"`
			OperationTimeout Duration `json:"operation_timeout"`
		} `json:"nas,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		CRMBaseURL     string   `json:"crm_base_url"`
		CRMAPIKey      string   `json:"crm_api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			NAS: NAS{
				Backend:          jsonCfg.Storage.NAS.Backend,
				Address:          jsonCfg.Storage.NAS.Address,
				User:             jsonCfg.Storage.NAS.User,
				Password:         jsonCfg.Storage.NAS.Password,
				WebDAVBasePath:   jsonCfg.Storage.NAS.WebDAVBasePath,
				FTPBasePath:      jsonCfg.Storage.NAS.FTPBasePath,
				OperationTimeout: time.Duration(jsonCfg.Storage.NAS.OperationTimeout),
			},
		},
		Adapter: Adapter{
			CRMBaseURL:     jsonCfg.Adapter.CRMBaseURL,
			CRMAPIKey:      jsonCfg.Adapter.CRMAPIKey,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
