package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/store"
	"github.com/MKhiriev/biz-records/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	ClientService   ClientService
	DatabaseService DatabaseService
	ProjectService  ProjectService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, fmt.Errorf("%w: no storages", ErrInvalidServiceConfig)
	}
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServiceConfig, errors.New("token sign key and issuer are required"))
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.TokenRepository, cfg, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		ClientService:   NewClientService(storages.ClientRepository, logger),
		DatabaseService: NewDatabaseService(storages.DatabaseRepository, logger),
		ProjectService:  NewProjectService(storages.ProjectRepository, logger),
		AppInfoService:  NewAppInfoService(buildInfo, logger),
		HealthService:   NewHealthService(storages.DB, logger),
	}, nil
}
