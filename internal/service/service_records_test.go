package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/mock"
	"github.com/MKhiriev/biz-records/internal/store"
	"github.com/MKhiriev/biz-records/internal/validators"
	"github.com/MKhiriev/biz-records/models"
)

// ── clients ──────────────────────────────────────────────────────────────────

func TestClientService_CreateClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientRepository(ctrl)
	svc := NewClientService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().CreateClient(ctx, models.BusinessClient{Name: "Acme"}).
		Return(models.BusinessClient{ID: 1, Name: "Acme"}, nil)

	client, err := svc.CreateClient(ctx, models.ClientInput{Name: strPtr("Acme")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), client.ID)
}

func TestClientService_CreateClient_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientService(mock.NewMockClientRepository(ctrl), logger.Nop())
	ctx := context.Background()

	_, err := svc.CreateClient(ctx, models.ClientInput{})
	assert.ErrorIs(t, err, validators.ErrRequired)

	_, err = svc.CreateClient(ctx, models.ClientInput{Name: strPtr("   ")})
	assert.ErrorIs(t, err, validators.ErrRequired)
}

func TestClientService_CreateClient_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientRepository(ctrl)
	svc := NewClientService(repo, logger.Nop())

	repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(models.BusinessClient{}, store.ErrAlreadyExists)

	_, err := svc.CreateClient(context.Background(), models.ClientInput{Name: strPtr("Acme")})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestClientService_UpdateClient_Put(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientRepository(ctrl)
	svc := NewClientService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetClientByID(ctx, int64(1)).Return(models.BusinessClient{ID: 1, Name: "Acme"}, nil)

	_, err := svc.UpdateClient(ctx, 1, models.ClientInput{}, ClientRequiredFields()...)
	assert.ErrorIs(t, err, validators.ErrRequired)

	gomock.InOrder(
		repo.EXPECT().GetClientByID(ctx, int64(1)).Return(models.BusinessClient{ID: 1, Name: "Acme"}, nil),
		repo.EXPECT().UpdateClient(ctx, models.BusinessClient{ID: 1, Name: "Globex"}).
			Return(models.BusinessClient{ID: 1, Name: "Globex"}, nil),
	)

	client, err := svc.UpdateClient(ctx, 1, models.ClientInput{Name: strPtr("Globex")}, ClientRequiredFields()...)
	require.NoError(t, err)
	assert.Equal(t, "Globex", client.Name)
}

func TestClientService_DeleteClient_Restricted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientRepository(ctrl)
	svc := NewClientService(repo, logger.Nop())

	repo.EXPECT().DeleteClient(gomock.Any(), int64(1)).Return(store.ErrRestricted)

	assert.ErrorIs(t, svc.DeleteClient(context.Background(), 1), store.ErrRestricted)
}

// ── databases ────────────────────────────────────────────────────────────────

func TestDatabaseService_CreateDatabase_SetsCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDatabaseRepository(ctrl)
	svc := NewDatabaseService(repo, logger.Nop())
	ctx := context.Background()

	want := models.Database{Name: "db", Description: "main", OwnedBy: 3, CreatedBy: 9}
	repo.EXPECT().CreateDatabase(ctx, want).Return(models.Database{ID: 1, Name: "db", OwnedBy: 3, CreatedBy: 9}, nil)

	db, err := svc.CreateDatabase(ctx, models.DatabaseInput{
		Name:        strPtr("db"),
		Description: strPtr("main"),
		OwnedBy:     int64Ptr(3),
	}, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), db.CreatedBy)
}

func TestDatabaseService_CreateDatabase_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewDatabaseService(mock.NewMockDatabaseRepository(ctrl), logger.Nop())
	ctx := context.Background()

	_, err := svc.CreateDatabase(ctx, models.DatabaseInput{Name: strPtr("db")}, 9)
	assert.ErrorIs(t, err, validators.ErrRequired)

	long := make([]byte, validators.MaxDescriptionLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.CreateDatabase(ctx, models.DatabaseInput{Name: strPtr("db"), OwnedBy: int64Ptr(1), Description: strPtr(string(long))}, 9)
	assert.ErrorIs(t, err, validators.ErrTooLong)
}

func TestDatabaseService_CreateDatabase_UnknownOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDatabaseRepository(ctrl)
	svc := NewDatabaseService(repo, logger.Nop())

	repo.EXPECT().CreateDatabase(gomock.Any(), gomock.Any()).Return(models.Database{}, store.ErrReferenceNotFound)

	_, err := svc.CreateDatabase(context.Background(), models.DatabaseInput{Name: strPtr("db"), OwnedBy: int64Ptr(99)}, 9)
	assert.ErrorIs(t, err, store.ErrReferenceNotFound)
}

func TestDatabaseService_UpdateDatabase_KeepsCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDatabaseRepository(ctrl)
	svc := NewDatabaseService(repo, logger.Nop())
	ctx := context.Background()

	stored := models.Database{ID: 1, Name: "db", OwnedBy: 3, CreatedBy: 9}
	repo.EXPECT().GetDatabaseByID(ctx, int64(1)).Return(stored, nil)
	repo.EXPECT().UpdateDatabase(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d models.Database) (models.Database, error) {
			assert.Equal(t, int64(9), d.CreatedBy)
			assert.Equal(t, "renamed", d.Description)
			return d, nil
		},
	)

	_, err := svc.UpdateDatabase(ctx, 1, models.DatabaseInput{Description: strPtr("renamed")})
	require.NoError(t, err)
}

// ── projects ─────────────────────────────────────────────────────────────────

func TestProjectService_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	svc := NewProjectService(repo, logger.Nop())
	ctx := context.Background()

	want := models.Project{Name: "p", Database: 2, Client: 3, CreatedBy: 9}
	repo.EXPECT().CreateProject(ctx, want).Return(models.Project{ID: 5, Name: "p", Database: 2, Client: 3, CreatedBy: 9}, nil)

	p, err := svc.CreateProject(ctx, models.ProjectInput{Name: strPtr("p"), Database: int64Ptr(2), Client: int64Ptr(3)}, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
}

func TestProjectService_CreateProject_MissingReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewProjectService(mock.NewMockProjectRepository(ctrl), logger.Nop())

	_, err := svc.CreateProject(context.Background(), models.ProjectInput{Name: strPtr("p"), Database: int64Ptr(2)}, 9)

	var fieldErr *validators.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, validators.FieldClient, fieldErr.Field)
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	svc := NewProjectService(repo, logger.Nop())

	repo.EXPECT().GetProjectByID(gomock.Any(), int64(404)).Return(models.Project{}, store.ErrNotFound)

	_, err := svc.GetProject(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProjectService_UpdateProject_PatchIsPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	svc := NewProjectService(repo, logger.Nop())
	ctx := context.Background()

	stored := models.Project{ID: 5, Name: "p", Database: 2, Client: 3, CreatedBy: 9}
	repo.EXPECT().GetProjectByID(ctx, int64(5)).Return(stored, nil)
	repo.EXPECT().UpdateProject(ctx, models.Project{ID: 5, Name: "p", Database: 2, Client: 4, CreatedBy: 9}).
		Return(models.Project{ID: 5, Client: 4}, nil)

	p, err := svc.UpdateProject(ctx, 5, models.ProjectInput{Client: int64Ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.Client)
}
