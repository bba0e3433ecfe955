package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/models"
)

// newMockDB returns a postgres-flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, config.DriverPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteError(code sqlite3.ErrNo, extended sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: code, ExtendedCode: extended}
}

// newSQLiteStorages opens a migrated in-memory SQLite database.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, config.DB{Driver: config.DriverSQLite, DSN: "file::memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	return NewStorages(db, logger.Nop())
}

func seedUser(t *testing.T, s *Storages, username string) models.User {
	t.Helper()
	u, err := s.UserRepository.CreateUser(context.Background(), models.User{Username: username, Password: "hash", IsActive: true})
	require.NoError(t, err)
	return u
}

func seedClient(t *testing.T, s *Storages, name string) models.BusinessClient {
	t.Helper()
	c, err := s.ClientRepository.CreateClient(context.Background(), models.BusinessClient{Name: name})
	require.NoError(t, err)
	return c
}

func seedDatabase(t *testing.T, s *Storages, name string, owner, creator int64) models.Database {
	t.Helper()
	d, err := s.DatabaseRepository.CreateDatabase(context.Background(), models.Database{Name: name, OwnedBy: owner, CreatedBy: creator})
	require.NoError(t, err)
	return d
}
