package service

import (
	"context"
	"fmt"

	"github.com/agenturjaeger/immocrm/internal/filestore"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/internal/mapping"
	"github.com/agenturjaeger/immocrm/internal/store"
	"github.com/agenturjaeger/immocrm/models"
)

// propertyService is the concrete implementation of PropertyService.
// It owns the create/update asymmetry: a create drops nulls and empty
// strings before persisting, an update passes them through so a client can
// clear a field.
type propertyService struct {
	// properties is the data-access layer for property records.
	properties store.PropertyRepository

	// files removes a property's NAS folder when the record is deleted.
	files filestore.Gateway

	// table translates router field names into schema column names.
	table mapping.Table

	// schema is the authoritative set of writable columns, derived from the
	// property model's db tags.
	schema mapping.FieldSet

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewPropertyService constructs a PropertyService wired to the given
// repository and NAS gateway.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewPropertyService(properties store.PropertyRepository, files filestore.Gateway, logger *logger.Logger) PropertyService {
	return &propertyService{
		properties: properties,
		files:      files,
		table:      mapping.PropertyTable,
		schema:     mapping.FieldsOf(models.Property{}),
		logger:     logger,
	}
}

// Create persists a new property.
//
// The payload is mapped, gate-checked, and stripped of nulls and empty
// strings. Returns the persisted record or:
//   - A [mapping.UnknownFieldsError] if the payload carries unknown fields.
//   - ErrNothingToInsert if no persistable values remain after stripping.
//   - A wrapped storage error if the repository call fails; database
//     constraint violations pass through unchanged.
func (s *propertyService) Create(ctx context.Context, payload map[string]any) (models.Property, error) {
	log := logger.FromContext(ctx)

	fields, err := prepareWrite(s.table, s.schema, "property", payload)
	if err != nil {
		log.Err(err).Msg("property create refused by schema gate")
		return models.Property{}, err
	}

	fields = dropEmpty(fields)
	if len(fields) == 0 {
		log.Error().Msg("property create carries no persistable values")
		return models.Property{}, ErrNothingToInsert
	}

	property, err := s.properties.Insert(ctx, fields)
	if err != nil {
		log.Err(err).Msg("property insert ended with error")
		return models.Property{}, fmt.Errorf("property insert ended with error: %w", err)
	}

	log.Info().Int64("property_id", property.ID).Msg("property created")
	return property, nil
}

// Update changes an existing property.
//
// Unlike Create, explicit nulls and empty strings survive into the write
// set: they clear the column. A payload with no writable fields left is a
// logged no-op, not an error.
func (s *propertyService) Update(ctx context.Context, id int64, payload map[string]any) error {
	log := logger.FromContext(ctx)

	fields, err := prepareWrite(s.table, s.schema, "property", payload)
	if err != nil {
		log.Err(err).Int64("property_id", id).Msg("property update refused by schema gate")
		return err
	}

	if len(fields) == 0 {
		log.Warn().Int64("property_id", id).Msg("property update carries no fields, nothing to do")
		return nil
	}

	if err := s.properties.Update(ctx, id, fields); err != nil {
		log.Err(err).Int64("property_id", id).Msg("property update ended with error")
		return fmt.Errorf("property update ended with error: %w", err)
	}

	return nil
}

func (s *propertyService) Get(ctx context.Context, id int64) (models.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return models.Property{}, fmt.Errorf("property lookup ended with error: %w", err)
	}

	return property, nil
}

func (s *propertyService) List(ctx context.Context) ([]models.Property, error) {
	properties, err := s.properties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("property listing ended with error: %w", err)
	}

	return properties, nil
}

// Delete removes a property record and, best effort, its NAS folder tree.
// The address is loaded before the row is deleted, because the folder name
// is derived from it. A failed folder cleanup is logged but does not undo
// the delete; the record is already gone.
func (s *propertyService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("property lookup ended with error: %w", err)
	}

	if err := s.properties.Delete(ctx, id); err != nil {
		log.Err(err).Int64("property_id", id).Msg("property delete ended with error")
		return fmt.Errorf("property delete ended with error: %w", err)
	}

	if err := s.files.RemovePropertyFolder(ctx, property.Address()); err != nil {
		log.Err(err).Int64("property_id", id).Msg("property folder cleanup failed")
	}

	log.Info().Int64("property_id", id).Msg("property deleted")
	return nil
}
