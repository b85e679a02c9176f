package store

import (
	"context"

	"github.com/agenturjaeger/immocrm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PropertyRepository persists property records. Insert and Update take the
// mapped, gate-checked field set; they never see router field names.
type PropertyRepository interface {
	Insert(ctx context.Context, fields map[string]any) (models.Property, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	GetByID(ctx context.Context, id int64) (models.Property, error)
	List(ctx context.Context) ([]models.Property, error)
	Delete(ctx context.Context, id int64) error
}

// ContactRepository persists contact records.
type ContactRepository interface {
	Insert(ctx context.Context, fields map[string]any) (models.Contact, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	GetByID(ctx context.Context, id int64) (models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
	Delete(ctx context.Context, id int64) error
}
