package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/store"
	"github.com/MKhiriev/biz-records/internal/validators"
	"github.com/MKhiriev/biz-records/models"
)

// projectRequiredFields must be present on creation and full replacement.
var projectRequiredFields = []string{validators.FieldName, validators.FieldDatabase, validators.FieldClient}

type projectService struct {
	projectRepository store.ProjectRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		validator:         validators.NewRecordValidator(),
		logger:            logger,
	}
}

// CreateProject stores a new project attributed to createdBy. The client is
// not checked against the owner of the database.
func (s *projectService) CreateProject(ctx context.Context, input models.ProjectInput, createdBy int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input, projectRequiredFields...); err != nil {
		log.Err(err).Str("func", "*projectService.CreateProject").Msg("invalid project data provided")
		return models.Project{}, err
	}

	project := models.Project{CreatedBy: createdBy}
	input.Apply(&project)

	created, err := s.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("func", "*projectService.CreateProject").Str("name", project.Name).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return created, nil
}

func (s *projectService) GetProject(ctx context.Context, id int64) (models.Project, error) {
	project, err := s.projectRepository.GetProjectByID(ctx, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("error getting project %d: %w", id, err)
	}

	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepository.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id int64, input models.ProjectInput, required ...string) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := s.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	if input == (models.ProjectInput{}) && len(required) == 0 {
		return project, nil
	}

	if err = s.validator.Validate(ctx, input, required...); err != nil {
		log.Err(err).Str("func", "*projectService.UpdateProject").Int64("id", id).Msg("invalid project data provided")
		return models.Project{}, err
	}

	input.Apply(&project)

	updated, err := s.projectRepository.UpdateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("func", "*projectService.UpdateProject").Int64("id", id).Msg("project update ended with error")
		return models.Project{}, fmt.Errorf("project update ended with error: %w", err)
	}

	return updated, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projectRepository.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("error deleting project %d: %w", id, err)
	}

	return nil
}

// ProjectRequiredFields lists the fields a full project replacement must
// carry.
func ProjectRequiredFields() []string {
	return append([]string(nil), projectRequiredFields...)
}
