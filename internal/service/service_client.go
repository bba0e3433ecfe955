package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/store"
	"github.com/MKhiriev/biz-records/internal/validators"
	"github.com/MKhiriev/biz-records/models"
)

// clientRequiredFields must be present on creation and full replacement.
var clientRequiredFields = []string{validators.FieldName}

type clientService struct {
	clientRepository store.ClientRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewClientService(clientRepository store.ClientRepository, logger *logger.Logger) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		validator:        validators.NewRecordValidator(),
		logger:           logger,
	}
}

func (s *clientService) CreateClient(ctx context.Context, input models.ClientInput) (models.BusinessClient, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input, clientRequiredFields...); err != nil {
		log.Err(err).Str("func", "*clientService.CreateClient").Msg("invalid client data provided")
		return models.BusinessClient{}, err
	}

	var client models.BusinessClient
	input.Apply(&client)

	created, err := s.clientRepository.CreateClient(ctx, client)
	if err != nil {
		log.Err(err).Str("func", "*clientService.CreateClient").Str("name", client.Name).Msg("client creation ended with error")
		return models.BusinessClient{}, fmt.Errorf("client creation ended with error: %w", err)
	}

	return created, nil
}

func (s *clientService) GetClient(ctx context.Context, id int64) (models.BusinessClient, error) {
	client, err := s.clientRepository.GetClientByID(ctx, id)
	if err != nil {
		return models.BusinessClient{}, fmt.Errorf("error getting client %d: %w", id, err)
	}

	return client, nil
}

// ListClients returns every client, newest first.
func (s *clientService) ListClients(ctx context.Context) ([]models.BusinessClient, error) {
	clients, err := s.clientRepository.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}

	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id int64, input models.ClientInput, required ...string) (models.BusinessClient, error) {
	log := logger.FromContext(ctx)

	client, err := s.GetClient(ctx, id)
	if err != nil {
		return models.BusinessClient{}, err
	}

	if input == (models.ClientInput{}) && len(required) == 0 {
		return client, nil
	}

	if err = s.validator.Validate(ctx, input, required...); err != nil {
		log.Err(err).Str("func", "*clientService.UpdateClient").Int64("id", id).Msg("invalid client data provided")
		return models.BusinessClient{}, err
	}

	input.Apply(&client)

	updated, err := s.clientRepository.UpdateClient(ctx, client)
	if err != nil {
		log.Err(err).Str("func", "*clientService.UpdateClient").Int64("id", id).Msg("client update ended with error")
		return models.BusinessClient{}, fmt.Errorf("client update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteClient removes a client. A client that still owns databases or
// projects cannot be deleted (store.ErrRestricted).
func (s *clientService) DeleteClient(ctx context.Context, id int64) error {
	if err := s.clientRepository.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("error deleting client %d: %w", id, err)
	}

	return nil
}

// ClientRequiredFields lists the fields a full client replacement must
// carry.
func ClientRequiredFields() []string {
	return append([]string(nil), clientRequiredFields...)
}
