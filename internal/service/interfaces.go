package service

import (
	"context"

	"github.com/agenturjaeger/immocrm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PropertyService is the write path for property records. Create and Update
// take raw router payloads and run them through field mapping and the schema
// gate before anything reaches the database.
type PropertyService interface {
	Create(ctx context.Context, payload map[string]any) (models.Property, error)
	Update(ctx context.Context, id int64, payload map[string]any) error
	Get(ctx context.Context, id int64) (models.Property, error)
	List(ctx context.Context) ([]models.Property, error)
	Delete(ctx context.Context, id int64) error
}

// ContactService is the write path for contact records. Successful writes
// are pushed to the external CRM on a best-effort basis.
type ContactService interface {
	Create(ctx context.Context, payload map[string]any) (models.Contact, error)
	Update(ctx context.Context, id int64, payload map[string]any) error
	Get(ctx context.Context, id int64) (models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// PropertyFileService manages a property's document folders on the NAS. The
// property's address is loaded from the database, so file operations always
// target the folder of the current address.
type PropertyFileService interface {
	Upload(ctx context.Context, propertyID int64, category, fileName string, data []byte) (models.FileDescriptor, error)
	List(ctx context.Context, propertyID int64, category string) ([]models.FileDescriptor, error)
	Delete(ctx context.Context, propertyID int64, category, fileName string) error

	// RemoveAll deletes the property's whole folder tree on the NAS. It is
	// the explicit cleanup for remote files that would otherwise be
	// orphaned.
	RemoveAll(ctx context.Context, propertyID int64) error
}
