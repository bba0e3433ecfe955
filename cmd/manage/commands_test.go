package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/mock"
	"github.com/MKhiriev/biz-records/internal/service"
	"github.com/MKhiriev/biz-records/models"
)

type fakeDatabase struct {
	waitErr    error
	migrateErr error

	waited   bool
	migrated bool
}

func (f *fakeDatabase) WaitForDB(context.Context, time.Duration) error {
	f.waited = true
	return f.waitErr
}

func (f *fakeDatabase) Migrate() error {
	f.migrated = true
	return f.migrateErr
}

func TestParseCommand(t *testing.T) {
	t.Setenv("SUPERUSER_USERNAME", "admin")
	t.Setenv("SUPERUSER_EMAIL", "admin@example.com")
	t.Setenv("SUPERUSER_PASSWORD", "secret1")

	tests := []struct {
		name    string
		args    []string
		want    command
		wantErr error
	}{
		{name: "no command", wantErr: errNoCommand},
		{name: "unknown", args: []string{"flush"}, wantErr: errUnknownCommand},
		{name: "wait-for-db", args: []string{"wait-for-db"}, want: command{name: cmdWaitForDB}},
		{name: "migrate", args: []string{"migrate"}, want: command{name: cmdMigrate}},
		{
			name: "superuser from env",
			args: []string{"create-superuser"},
			want: command{name: cmdCreateSuperuser, superuser: superuser{
				Username: "admin", Email: "admin@example.com", Password: "secret1",
			}},
		},
		{
			name: "flags override env",
			args: []string{"create-superuser", "-username", "root", "-email", "root@example.com"},
			want: command{name: cmdCreateSuperuser, superuser: superuser{
				Username: "root", Email: "root@example.com", Password: "secret1",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_RejectsExtraArguments(t *testing.T) {
	_, err := parseCommand([]string{"migrate", "now"})
	assert.Error(t, err)

	_, err = parseCommand([]string{"create-superuser", "-password", "x"})
	assert.Error(t, err, "password is only read from the environment")
}

func TestRun_WaitForDBOnly(t *testing.T) {
	db := &fakeDatabase{}

	err := command{name: cmdWaitForDB}.run(context.Background(), db, nil, time.Millisecond, logger.Nop())

	require.NoError(t, err)
	assert.True(t, db.waited)
	assert.False(t, db.migrated)
}

func TestRun_MigrateStopsWhenDatabaseUnavailable(t *testing.T) {
	db := &fakeDatabase{waitErr: context.DeadlineExceeded}

	err := command{name: cmdMigrate}.run(context.Background(), db, nil, time.Millisecond, logger.Nop())

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, db.migrated)
}

func TestRun_CreateSuperuser(t *testing.T) {
	users := mock.NewMockUserService(gomock.NewController(t))
	users.EXPECT().
		CreateSuperuser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.UserInput) (models.User, error) {
			require.NotNil(t, in.Username)
			require.NotNil(t, in.Password)
			assert.Equal(t, "admin", *in.Username)
			assert.Equal(t, "secret1", *in.Password)
			assert.Nil(t, in.Email)
			return models.User{ID: 1, Username: "admin", IsStaff: true, IsSuperuser: true}, nil
		})

	db := &fakeDatabase{}
	cmd := command{name: cmdCreateSuperuser, superuser: superuser{Username: "admin", Password: "secret1"}}

	require.NoError(t, cmd.run(context.Background(), db, users, time.Millisecond, logger.Nop()))
	assert.True(t, db.migrated)
}

func TestRun_CreateSuperuserFails(t *testing.T) {
	users := mock.NewMockUserService(gomock.NewController(t))
	users.EXPECT().CreateSuperuser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrNoPasswordProvided)

	cmd := command{name: cmdCreateSuperuser, superuser: superuser{Username: "admin"}}
	err := cmd.run(context.Background(), &fakeDatabase{}, users, time.Millisecond, logger.Nop())

	require.ErrorIs(t, err, service.ErrNoPasswordProvided)
}

func TestRun_MigrationError(t *testing.T) {
	db := &fakeDatabase{migrateErr: errors.New("dirty")}

	err := command{name: cmdCreateSuperuser}.run(context.Background(), db, nil, time.Millisecond, logger.Nop())

	assert.ErrorContains(t, err, "dirty")
}
