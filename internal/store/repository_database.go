package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/models"
)

type databaseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDatabaseRepository constructs a [DatabaseRepository] over the
// "databases" table.
func NewDatabaseRepository(db *DB, logger *logger.Logger) DatabaseRepository {
	logger.Debug().Msg("creating database repository")
	return &databaseRepository{db: db, logger: logger}
}

// CreateDatabase stores a database. A missing owner or creator is reported
// as [ErrReferenceNotFound].
func (r *databaseRepository) CreateDatabase(ctx context.Context, database models.Database) (models.Database, error) {
	if database.DateCreated.IsZero() {
		database.DateCreated = time.Now().UTC()
	}

	created, err := r.one(ctx, buildInsertDatabaseQuery(r.db.builder, database), opWrite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*databaseRepository.CreateDatabase").Msg("error creating database")
		return models.Database{}, err
	}

	return created, nil
}

func (r *databaseRepository) GetDatabaseByID(ctx context.Context, id int64) (models.Database, error) {
	d, err := r.one(ctx, buildSelectDatabaseQuery(r.db.builder, id), opRead)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*databaseRepository.GetDatabaseByID").Int64("id", id).Msg("error getting database")
	}

	return d, err
}

func (r *databaseRepository) ListDatabases(ctx context.Context) ([]models.Database, error) {
	databases := make([]models.Database, 0)
	err := r.db.queryRows(ctx, buildListDatabasesQuery(r.db.builder), func(row rowScanner) error {
		d, err := scanDatabase(row)
		if err != nil {
			return err
		}
		databases = append(databases, d)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*databaseRepository.ListDatabases").Msg("error listing databases")
		return nil, err
	}

	return databases, nil
}

func (r *databaseRepository) UpdateDatabase(ctx context.Context, database models.Database) (models.Database, error) {
	updated, err := r.one(ctx, buildUpdateDatabaseQuery(r.db.builder, database), opWrite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*databaseRepository.UpdateDatabase").Int64("id", database.ID).Msg("error updating database")
		return models.Database{}, err
	}

	return updated, nil
}

// DeleteDatabase removes a database unless projects still reference it.
func (r *databaseRepository) DeleteDatabase(ctx context.Context, id int64) error {
	err := r.db.exec(ctx, buildDeleteByIDQuery(r.db.builder, models.Database{}.TableName(), id), opDelete)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*databaseRepository.DeleteDatabase").Int64("id", id).Msg("error deleting database")
	}

	return err
}

func (r *databaseRepository) one(ctx context.Context, q sqlizer, op operation) (models.Database, error) {
	var d models.Database
	err := r.db.queryRow(ctx, q, op, func(row rowScanner) (err error) {
		d, err = scanDatabase(row)
		return err
	})
	return d, err
}
