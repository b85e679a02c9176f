package service

import (
	"context"
	"fmt"

	"github.com/agenturjaeger/immocrm/internal/adapter"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/internal/mapping"
	"github.com/agenturjaeger/immocrm/internal/store"
	"github.com/agenturjaeger/immocrm/models"
)

// contactService is the concrete implementation of ContactService. Writes
// follow the same map/gate/strip pipeline as properties; in addition every
// successful write is pushed to the external CRM. The push is best effort:
// a CRM outage never fails the local write.
type contactService struct {
	contacts store.ContactRepository
	crm      adapter.ContactNotifier
	table    mapping.Table
	schema   mapping.FieldSet
	logger   *logger.Logger
}

// NewContactService constructs a ContactService wired to the given
// repository and CRM notifier.
func NewContactService(contacts store.ContactRepository, crm adapter.ContactNotifier, logger *logger.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		crm:      crm,
		table:    mapping.ContactTable,
		schema:   mapping.FieldsOf(models.Contact{}),
		logger:   logger,
	}
}

func (s *contactService) Create(ctx context.Context, payload map[string]any) (models.Contact, error) {
	log := logger.FromContext(ctx)

	fields, err := prepareWrite(s.table, s.schema, "contact", payload)
	if err != nil {
		log.Err(err).Msg("contact create refused by schema gate")
		return models.Contact{}, err
	}

	fields = dropEmpty(fields)
	if len(fields) == 0 {
		log.Error().Msg("contact create carries no persistable values")
		return models.Contact{}, ErrNothingToInsert
	}

	contact, err := s.contacts.Insert(ctx, fields)
	if err != nil {
		log.Err(err).Msg("contact insert ended with error")
		return models.Contact{}, fmt.Errorf("contact insert ended with error: %w", err)
	}

	s.syncToCRM(ctx, contact)

	log.Info().Int64("contact_id", contact.ID).Msg("contact created")
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, id int64, payload map[string]any) error {
	log := logger.FromContext(ctx)

	fields, err := prepareWrite(s.table, s.schema, "contact", payload)
	if err != nil {
		log.Err(err).Int64("contact_id", id).Msg("contact update refused by schema gate")
		return err
	}

	if len(fields) == 0 {
		log.Warn().Int64("contact_id", id).Msg("contact update carries no fields, nothing to do")
		return nil
	}

	if err := s.contacts.Update(ctx, id, fields); err != nil {
		log.Err(err).Int64("contact_id", id).Msg("contact update ended with error")
		return fmt.Errorf("contact update ended with error: %w", err)
	}

	if contact, err := s.contacts.GetByID(ctx, id); err == nil {
		s.syncToCRM(ctx, contact)
	}

	return nil
}

func (s *contactService) Get(ctx context.Context, id int64) (models.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact lookup ended with error: %w", err)
	}

	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("contact listing ended with error: %w", err)
	}

	return contacts, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.contacts.Delete(ctx, id); err != nil {
		log.Err(err).Int64("contact_id", id).Msg("contact delete ended with error")
		return fmt.Errorf("contact delete ended with error: %w", err)
	}

	if err := s.crm.RemoveContact(ctx, id); err != nil {
		log.Err(err).Int64("contact_id", id).Msg("CRM contact removal failed")
	}

	log.Info().Int64("contact_id", id).Msg("contact deleted")
	return nil
}

// syncToCRM pushes a contact to the CRM and logs failures without returning
// them. There is no retry; the next write of the same contact re-syncs it.
func (s *contactService) syncToCRM(ctx context.Context, contact models.Contact) {
	if err := s.crm.SyncContact(ctx, contact); err != nil {
		logger.FromContext(ctx).Err(err).Int64("contact_id", contact.ID).Msg("CRM contact sync failed")
	}
}
