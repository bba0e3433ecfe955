package store

import "github.com/MKhiriev/biz-records/internal/logger"

// Storages aggregates every repository built over one connection pool.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	TokenRepository    TokenRepository
	ClientRepository   ClientRepository
	DatabaseRepository DatabaseRepository
	ProjectRepository  ProjectRepository
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, log),
		TokenRepository:    NewTokenRepository(db, log),
		ClientRepository:   NewClientRepository(db, log),
		DatabaseRepository: NewDatabaseRepository(db, log),
		ProjectRepository:  NewProjectRepository(db, log),
	}
}
