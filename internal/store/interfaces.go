package store

import (
	"context"

	"github.com/MKhiriev/biz-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// TokenRepository persists the single token key of every user.
type TokenRepository interface {
	GetOrCreateToken(ctx context.Context, token models.AuthToken) (models.AuthToken, error)
	GetTokenByKey(ctx context.Context, key string) (models.AuthToken, error)
	DeleteTokenByUserID(ctx context.Context, userID int64) error
}

// ClientRepository persists business clients.
type ClientRepository interface {
	CreateClient(ctx context.Context, client models.BusinessClient) (models.BusinessClient, error)
	GetClientByID(ctx context.Context, id int64) (models.BusinessClient, error)
	ListClients(ctx context.Context) ([]models.BusinessClient, error)
	UpdateClient(ctx context.Context, client models.BusinessClient) (models.BusinessClient, error)
	DeleteClient(ctx context.Context, id int64) error
}

// DatabaseRepository persists client databases.
type DatabaseRepository interface {
	CreateDatabase(ctx context.Context, database models.Database) (models.Database, error)
	GetDatabaseByID(ctx context.Context, id int64) (models.Database, error)
	ListDatabases(ctx context.Context) ([]models.Database, error)
	UpdateDatabase(ctx context.Context, database models.Database) (models.Database, error)
	DeleteDatabase(ctx context.Context, id int64) error
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}
