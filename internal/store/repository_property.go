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

// propertyColumns lists every column of the "properties" table in the scan
// order used by this repository. The migrations test keeps this list in
// sync with the model's db tags and the embedded SQL.
var propertyColumns = []string{
	"id",
	"title",
	"description",
	"propertyType",
	"marketingType",
	"status",
	"street",
	"houseNumber",
	"zipCode",
	"city",
	"livingArea",
	"plotArea",
	"usableArea",
	"balconyTerraceArea",
	"gardenArea",
	"rooms",
	"bedrooms",
	"bathrooms",
	"constructionYear",
	"lastRenovationYear",
	"condition",
	"flooring",
	"energyClass",
	"heatingType",
	"heatingCostsInServiceCharge",
	"purchasePrice",
	"baseRent",
	"totalRent",
	"serviceCharge",
	"rentalIncome",
	"commission",
	"parkingSpaces",
	"parkingType",
	"availableFrom",
	"ownerContactId",
	"createdAt",
	"updatedAt",
}

// propertyRepository is the PostgreSQL-backed implementation of
// [PropertyRepository]. All write statements are built dynamically from the
// mapped field set, so only the submitted columns appear in the SQL.
type propertyRepository struct {
	*DB
	logger *logger.Logger
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// provided database connection and logger.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("PropertyRepository created")
	return &propertyRepository{
		DB:     db,
		logger: logger,
	}
}

func scanProperty(row interface{ Scan(dest ...any) error }, p *models.Property) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.PropertyType,
		&p.MarketingType,
		&p.Status,
		&p.Street,
		&p.HouseNumber,
		&p.ZipCode,
		&p.City,
		&p.LivingArea,
		&p.PlotArea,
		&p.UsableArea,
		&p.BalconyTerraceArea,
		&p.GardenArea,
		&p.Rooms,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.ConstructionYear,
		&p.LastRenovationYear,
		&p.Condition,
		&p.Flooring,
		&p.EnergyClass,
		&p.HeatingType,
		&p.HeatingCostsInServiceCharge,
		&p.PurchasePrice,
		&p.BaseRent,
		&p.TotalRent,
		&p.ServiceCharge,
		&p.RentalIncome,
		&p.Commission,
		&p.ParkingSpaces,
		&p.ParkingType,
		&p.AvailableFrom,
		&p.OwnerContactID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// Insert persists a new property built from the given field set and returns
// the full stored row.
func (r *propertyRepository) Insert(ctx context.Context, fields map[string]any) (models.Property, error) {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return models.Property{}, fmt.Errorf("%w: empty field set", ErrBuildingSQLQuery)
	}

	query, args, err := psql.Insert(quoteIdent("properties")).
		SetMap(quoteFields(fields)).
		Suffix("RETURNING " + strings.Join(quoteColumns(propertyColumns), ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.Insert").Msg("failed to build insert query")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var property models.Property
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanProperty(row, &property); err != nil {
		log.Err(err).Str("func", "propertyRepository.Insert").Int("fields", len(fields)).Msg("failed to insert property")
		return models.Property{}, wrapExecError(err)
	}

	log.Info().Str("func", "propertyRepository.Insert").Int64("property_id", property.ID).Msg("property inserted")
	return property, nil
}

// Update applies the given field set to one property. The updatedAt column
// is always touched.
func (r *propertyRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return fmt.Errorf("%w: empty field set", ErrBuildingSQLQuery)
	}

	query, args, err := psql.Update(quoteIdent("properties")).
		SetMap(quoteFields(fields)).
		Set(quoteIdent("updatedAt"), sq.Expr("NOW()")).
		Where(sq.Eq{quoteIdent("id"): id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.Update").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.Update").Int64("property_id", id).Msg("failed to update property")
		return wrapExecError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

// GetByID loads one property.
func (r *propertyRepository) GetByID(ctx context.Context, id int64) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(quoteColumns(propertyColumns)...).
		From(quoteIdent("properties")).
		Where(sq.Eq{quoteIdent("id"): id}).
		ToSql()
	if err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var property models.Property
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanProperty(row, &property); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Property{}, ErrPropertyNotFound
		}
		log.Err(err).Str("func", "propertyRepository.GetByID").Int64("property_id", id).Msg("failed to scan property row")
		return models.Property{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return property, nil
}

// List returns all properties, newest first.
func (r *propertyRepository) List(ctx context.Context) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	query, _, err := psql.Select(quoteColumns(propertyColumns)...).
		From(quoteIdent("properties")).
		OrderBy(quoteIdent("createdAt") + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.List").Msg("failed to execute query for listing properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0, 50)
	for rows.Next() {
		var property models.Property
		if err := scanProperty(rows, &property); err != nil {
			log.Err(err).Str("func", "propertyRepository.List").Msg("failed to scan property row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "propertyRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return properties, nil
}

// Delete removes one property row.
func (r *propertyRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(quoteIdent("properties")).
		Where(sq.Eq{quoteIdent("id"): id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.Delete").Int64("property_id", id).Msg("failed to delete property")
		return wrapExecError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	log.Info().Str("func", "propertyRepository.Delete").Int64("property_id", id).Msg("property deleted")
	return nil
}
