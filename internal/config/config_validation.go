package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.NAS.Backend {
	case BackendWebDAV, BackendFTP:
	default:
		return ErrUnsupportedNASBackend
	}

	if cfg.Storage.NAS.OperationTimeout <= 0 {
		return ErrInvalidNASConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// Supported values of [NAS.Backend].
const (
	BackendWebDAV = "webdav"
	BackendFTP    = "ftp"
)
