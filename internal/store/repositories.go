package store

import "github.com/agenturjaeger/immocrm/internal/logger"

// Storages bundles all repositories for injection into the service layer.
type Storages struct {
	PropertyRepository PropertyRepository
	ContactRepository  ContactRepository
}

// NewStorages constructs all repositories on top of one shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		PropertyRepository: NewPropertyRepository(db, logger),
		ContactRepository:  NewContactRepository(db, logger),
	}
}
