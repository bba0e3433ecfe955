package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/store"
	"github.com/MKhiriev/biz-records/internal/validators"
	"github.com/MKhiriev/biz-records/models"
)

// databaseRequiredFields must be present on creation and full replacement.
var databaseRequiredFields = []string{validators.FieldName, validators.FieldOwnedBy}

type databaseService struct {
	databaseRepository store.DatabaseRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewDatabaseService(databaseRepository store.DatabaseRepository, logger *logger.Logger) DatabaseService {
	return &databaseService{
		databaseRepository: databaseRepository,
		validator:          validators.NewRecordValidator(),
		logger:             logger,
	}
}

// CreateDatabase stores a new database attributed to createdBy. An owner
// that does not exist is reported as store.ErrReferenceNotFound.
func (s *databaseService) CreateDatabase(ctx context.Context, input models.DatabaseInput, createdBy int64) (models.Database, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input, databaseRequiredFields...); err != nil {
		log.Err(err).Str("func", "*databaseService.CreateDatabase").Msg("invalid database data provided")
		return models.Database{}, err
	}

	database := models.Database{CreatedBy: createdBy}
	input.Apply(&database)

	created, err := s.databaseRepository.CreateDatabase(ctx, database)
	if err != nil {
		log.Err(err).Str("func", "*databaseService.CreateDatabase").Str("name", database.Name).Msg("database creation ended with error")
		return models.Database{}, fmt.Errorf("database creation ended with error: %w", err)
	}

	return created, nil
}

func (s *databaseService) GetDatabase(ctx context.Context, id int64) (models.Database, error) {
	database, err := s.databaseRepository.GetDatabaseByID(ctx, id)
	if err != nil {
		return models.Database{}, fmt.Errorf("error getting database %d: %w", id, err)
	}

	return database, nil
}

func (s *databaseService) ListDatabases(ctx context.Context) ([]models.Database, error) {
	databases, err := s.databaseRepository.ListDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing databases: %w", err)
	}

	return databases, nil
}

// UpdateDatabase applies input to the stored database. CreatedBy never
// changes.
func (s *databaseService) UpdateDatabase(ctx context.Context, id int64, input models.DatabaseInput, required ...string) (models.Database, error) {
	log := logger.FromContext(ctx)

	database, err := s.GetDatabase(ctx, id)
	if err != nil {
		return models.Database{}, err
	}

	if input == (models.DatabaseInput{}) && len(required) == 0 {
		return database, nil
	}

	if err = s.validator.Validate(ctx, input, required...); err != nil {
		log.Err(err).Str("func", "*databaseService.UpdateDatabase").Int64("id", id).Msg("invalid database data provided")
		return models.Database{}, err
	}

	input.Apply(&database)

	updated, err := s.databaseRepository.UpdateDatabase(ctx, database)
	if err != nil {
		log.Err(err).Str("func", "*databaseService.UpdateDatabase").Int64("id", id).Msg("database update ended with error")
		return models.Database{}, fmt.Errorf("database update ended with error: %w", err)
	}

	return updated, nil
}

func (s *databaseService) DeleteDatabase(ctx context.Context, id int64) error {
	if err := s.databaseRepository.DeleteDatabase(ctx, id); err != nil {
		return fmt.Errorf("error deleting database %d: %w", id, err)
	}

	return nil
}

// DatabaseRequiredFields lists the fields a full database replacement must
// carry.
func DatabaseRequiredFields() []string {
	return append([]string(nil), databaseRequiredFields...)
}
