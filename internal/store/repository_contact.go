package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/models"
)

// contactColumns lists every column of the "contacts" table in scan order.
var contactColumns = []string{
	"id",
	"salutation",
	"firstName",
	"lastName",
	"company",
	"email",
	"phoneNumber",
	"mobileNumber",
	"street",
	"houseNumber",
	"zipCode",
	"city",
	"contactType",
	"remarks",
	"createdAt",
	"updatedAt",
}

type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("ContactRepository created")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

func scanContact(row interface{ Scan(dest ...any) error }, c *models.Contact) error {
	return row.Scan(
		&c.ID,
		&c.Salutation,
		&c.FirstName,
		&c.LastName,
		&c.Company,
		&c.Email,
		&c.PhoneNumber,
		&c.MobileNumber,
		&c.Street,
		&c.HouseNumber,
		&c.ZipCode,
		&c.City,
		&c.ContactType,
		&c.Remarks,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func (r *contactRepository) Insert(ctx context.Context, fields map[string]any) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return models.Contact{}, fmt.Errorf("%w: empty field set", ErrBuildingSQLQuery)
	}

	query, args, err := psql.Insert(quoteIdent("contacts")).
		SetMap(quoteFields(fields)).
		Suffix("RETURNING " + strings.Join(quoteColumns(contactColumns), ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Insert").Msg("failed to build insert query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var contact models.Contact
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanContact(row, &contact); err != nil {
		log.Err(err).Str("func", "contactRepository.Insert").Int("fields", len(fields)).Msg("failed to insert contact")
		return models.Contact{}, wrapExecError(err)
	}

	log.Info().Str("func", "contactRepository.Insert").Int64("contact_id", contact.ID).Msg("contact inserted")
	return contact, nil
}

func (r *contactRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return fmt.Errorf("%w: empty field set", ErrBuildingSQLQuery)
	}

	query, args, err := psql.Update(quoteIdent("contacts")).
		SetMap(quoteFields(fields)).
		Set(quoteIdent("updatedAt"), sq.Expr("NOW()")).
		Where(sq.Eq{quoteIdent("id"): id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Update").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Update").Int64("contact_id", id).Msg("failed to update contact")
		return wrapExecError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (models.Contact, error) {
	query, args, err := psql.Select(quoteColumns(contactColumns)...).
		From(quoteIdent("contacts")).
		Where(sq.Eq{quoteIdent("id"): id}).
		ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var contact models.Contact
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanContact(row, &contact); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contact, nil
}

func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, _, err := psql.Select(quoteColumns(contactColumns)...).
		From(quoteIdent("contacts")).
		OrderBy(quoteIdent("createdAt") + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.List").Msg("failed to execute query for listing contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, 50)
	for rows.Next() {
		var contact models.Contact
		if err := scanContact(rows, &contact); err != nil {
			log.Err(err).Str("func", "contactRepository.List").Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(quoteIdent("contacts")).
		Where(sq.Eq{quoteIdent("id"): id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Delete").Int64("contact_id", id).Msg("failed to delete contact")
		return wrapExecError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}
