package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agenturjaeger/immocrm/internal/config"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register the "pgx" database/sql driver
)

// DB wraps the shared *sql.DB handle together with the store logger.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens and pings the PostgreSQL connection described by
// cfg and returns the wrapped handle.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// postgresError extracts the PostgreSQL error code from err, or "" if err
// is not a driver error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// IsConstraintViolation reports whether err is a PostgreSQL integrity
// constraint violation (class 23). Such errors propagate to callers
// unchanged: a NOT NULL or unique violation points at an upstream logic
// error and must stay visible verbatim. The HTTP layer maps them to 409.
func IsConstraintViolation(err error) bool {
	return pgerrcode.IsIntegrityConstraintViolation(postgresError(err))
}

// wrapExecError applies the propagation policy: constraint violations pass
// through untouched, everything else is wrapped into ErrExecutingQuery.
func wrapExecError(err error) error {
	if IsConstraintViolation(err) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
