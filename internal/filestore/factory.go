package filestore

import (
	"fmt"

	"github.com/agenturjaeger/immocrm/internal/config"
	"github.com/agenturjaeger/immocrm/internal/logger"
)

// NewGateway selects the configured backend. The config layer validates the
// backend value at startup, so an unknown value here means the two fell out
// of sync.
func NewGateway(cfg config.NAS, logger *logger.Logger) (Gateway, error) {
	switch cfg.Backend {
	case config.BackendWebDAV:
		return NewWebDAVGateway(cfg, logger), nil
	case config.BackendFTP:
		return NewFTPGateway(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown NAS backend %q", cfg.Backend)
	}
}
