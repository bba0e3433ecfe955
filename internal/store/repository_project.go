package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/models"
)

type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] over the
// "projects" table.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{db: db, logger: logger}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if project.DateCreated.IsZero() {
		project.DateCreated = time.Now().UTC()
	}

	created, err := r.one(ctx, buildInsertProjectQuery(r.db.builder, project), opWrite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.CreateProject").Msg("error creating project")
		return models.Project{}, err
	}

	return created, nil
}

func (r *projectRepository) GetProjectByID(ctx context.Context, id int64) (models.Project, error) {
	p, err := r.one(ctx, buildSelectProjectQuery(r.db.builder, id), opRead)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.GetProjectByID").Int64("id", id).Msg("error getting project")
	}

	return p, err
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.queryRows(ctx, buildListProjectsQuery(r.db.builder), func(row rowScanner) error {
		p, err := scanProject(row)
		if err != nil {
			return err
		}
		projects = append(projects, p)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.ListProjects").Msg("error listing projects")
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	updated, err := r.one(ctx, buildUpdateProjectQuery(r.db.builder, project), opWrite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.UpdateProject").Int64("id", project.ID).Msg("error updating project")
		return models.Project{}, err
	}

	return updated, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id int64) error {
	err := r.db.exec(ctx, buildDeleteByIDQuery(r.db.builder, models.Project{}.TableName(), id), opDelete)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.DeleteProject").Int64("id", id).Msg("error deleting project")
	}

	return err
}

func (r *projectRepository) one(ctx context.Context, q sqlizer, op operation) (models.Project, error) {
	var p models.Project
	err := r.db.queryRow(ctx, q, op, func(row rowScanner) (err error) {
		p, err = scanProject(row)
		return err
	})
	return p, err
}
