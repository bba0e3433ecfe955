package service

import (
	"context"

	"github.com/MKhiriev/biz-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService is the user manager: it creates accounts with hashed
// passwords and applies schema-filtered updates.
type UserService interface {
	CreateUser(ctx context.Context, input models.UserInput) (models.User, error)
	CreateSuperuser(ctx context.Context, input models.UserInput) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, input models.UserInput, required ...string) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// AuthService exchanges credentials for tokens and resolves tokens back
// to active users.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.User, error)
	Logout(ctx context.Context, userID int64) error
}

type ClientService interface {
	CreateClient(ctx context.Context, input models.ClientInput) (models.BusinessClient, error)
	GetClient(ctx context.Context, id int64) (models.BusinessClient, error)
	ListClients(ctx context.Context) ([]models.BusinessClient, error)
	UpdateClient(ctx context.Context, id int64, input models.ClientInput, required ...string) (models.BusinessClient, error)
	DeleteClient(ctx context.Context, id int64) error
}

type DatabaseService interface {
	CreateDatabase(ctx context.Context, input models.DatabaseInput, createdBy int64) (models.Database, error)
	GetDatabase(ctx context.Context, id int64) (models.Database, error)
	ListDatabases(ctx context.Context) ([]models.Database, error)
	UpdateDatabase(ctx context.Context, id int64, input models.DatabaseInput, required ...string) (models.Database, error)
	DeleteDatabase(ctx context.Context, id int64) error
}

type ProjectService interface {
	CreateProject(ctx context.Context, input models.ProjectInput, createdBy int64) (models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id int64, input models.ProjectInput, required ...string) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// HealthService reports whether the backing database answers.
type HealthService interface {
	Check(ctx context.Context) error
}
