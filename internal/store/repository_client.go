package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/models"
)

type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] over the
// "business_clients" table.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{db: db, logger: logger}
}

func (r *clientRepository) CreateClient(ctx context.Context, client models.BusinessClient) (models.BusinessClient, error) {
	if client.DateCreated.IsZero() {
		client.DateCreated = time.Now().UTC()
	}

	created, err := r.one(ctx, buildInsertClientQuery(r.db.builder, client), opWrite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientRepository.CreateClient").Msg("error creating client")
		return models.BusinessClient{}, err
	}

	return created, nil
}

func (r *clientRepository) GetClientByID(ctx context.Context, id int64) (models.BusinessClient, error) {
	c, err := r.one(ctx, buildSelectClientQuery(r.db.builder, id), opRead)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*clientRepository.GetClientByID").Int64("id", id).Msg("error getting client")
	}

	return c, err
}

// ListClients returns every client, most recently created first.
func (r *clientRepository) ListClients(ctx context.Context) ([]models.BusinessClient, error) {
	clients := make([]models.BusinessClient, 0)
	err := r.db.queryRows(ctx, buildListClientsQuery(r.db.builder), func(row rowScanner) error {
		c, err := scanClient(row)
		if err != nil {
			return err
		}
		clients = append(clients, c)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientRepository.ListClients").Msg("error listing clients")
		return nil, err
	}

	return clients, nil
}

func (r *clientRepository) UpdateClient(ctx context.Context, client models.BusinessClient) (models.BusinessClient, error) {
	updated, err := r.one(ctx, buildUpdateClientQuery(r.db.builder, client), opWrite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientRepository.UpdateClient").Int64("id", client.ID).Msg("error updating client")
		return models.BusinessClient{}, err
	}

	return updated, nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, id int64) error {
	err := r.db.exec(ctx, buildDeleteByIDQuery(r.db.builder, models.BusinessClient{}.TableName(), id), opDelete)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientRepository.DeleteClient").Int64("id", id).Msg("error deleting client")
	}

	return err
}

func (r *clientRepository) one(ctx context.Context, q sqlizer, op operation) (models.BusinessClient, error) {
	var c models.BusinessClient
	err := r.db.queryRow(ctx, q, op, func(row rowScanner) (err error) {
		c, err = scanClient(row)
		return err
	})
	return c, err
}
