package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/migrations"
)

// DB wraps a database/sql connection pool together with the dialect
// specific pieces every repository needs: the squirrel statement builder
// (placeholder format) and the driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// operation tells the error mapper which statement failed, because a
// foreign-key violation means a missing reference on insert/update and a
// restricted delete on delete.
type operation int

const (
	opRead operation = iota
	opWrite
	opDelete
)

// NewConnect opens a connection pool for the configured driver. The pool is
// lazy: use [DB.WaitForDB] to block until the database accepts connections.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Driver returns the database/sql driver name of the pool.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded migrations of the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// mapError turns a driver error into one of the package sentinels.
// The original error stays in the chain for logging.
func (db *DB) mapError(err error, op operation) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	switch db.errorClassificator.Violation(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case ForeignKeyViolation, RestrictViolation:
		if op == opDelete {
			return fmt.Errorf("%w: %w", ErrRestricted, err)
		}
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// queryRow runs a single-row statement built with squirrel and hands the
// row to scan.
func (db *DB) queryRow(ctx context.Context, q sq.Sqlizer, op operation, scan func(rowScanner) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = scan(db.QueryRowContext(ctx, query, args...)); err != nil {
		return db.mapError(err, op)
	}

	return nil
}

// queryRows runs a multi-row statement and calls scan for every row.
func (db *DB) queryRows(ctx context.Context, q sq.Sqlizer, scan func(rowScanner) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return db.mapError(err, opRead)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}

	if err = rows.Err(); err != nil {
		return db.mapError(err, opRead)
	}

	return nil
}

// exec runs a statement that returns no rows. It reports [ErrNotFound] when
// nothing was affected.
func (db *DB) exec(ctx context.Context, q sq.Sqlizer, op operation) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return db.mapError(err, op)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type sqlizer = sq.Sqlizer

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
