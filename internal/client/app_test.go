package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/biz-records/internal/adapter"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/mock"
	"github.com/MKhiriev/biz-records/models"
)

func newTestApp(t *testing.T) (*App, *mock.MockAPIClient, *bytes.Buffer) {
	t.Helper()
	api := mock.NewMockAPIClient(gomock.NewController(t))
	out := &bytes.Buffer{}
	app := NewApp(api, out, logger.Nop())
	app.copy = func(string) error { return errors.New("clipboard not available in tests") }
	return app, api, out
}

func TestRun_NoCommandPrintsUsage(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), nil)

	require.ErrorIs(t, err, errNoCommand)
	assert.Contains(t, out.String(), "usage: client")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), []string{"frobnicate"})

	require.ErrorIs(t, err, errUnknownCommand)
	assert.Contains(t, out.String(), "frobnicate")
}

func TestRun_Token(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "alice", Password: "secret1"}).
		Return("signed-token", nil)

	require.NoError(t, app.Run(context.Background(), []string{"token", "alice", "secret1"}))
	assert.Contains(t, out.String(), "signed-token")
}

func TestRun_TokenCopy(t *testing.T) {
	app, api, out := newTestApp(t)
	var copied string
	app.copy = func(s string) error {
		copied = s
		return nil
	}
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return("signed-token", nil)

	require.NoError(t, app.Run(context.Background(), []string{"token", "-copy", "alice", "secret1"}))
	assert.Equal(t, "signed-token", copied)
	assert.Contains(t, out.String(), "copied to clipboard")
}

func TestRun_TokenCopyFails(t *testing.T) {
	app, api, _ := newTestApp(t)
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return("signed-token", nil)

	err := app.Run(context.Background(), []string{"token", "-copy", "alice", "secret1"})

	assert.ErrorContains(t, err, "copy to clipboard")
}

func TestRun_TokenUsage(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"token", "alice"})

	require.ErrorIs(t, err, errUsage)
}

func TestRun_Signup(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().
		Signup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.UserInput) (models.User, error) {
			require.NotNil(t, in.Email)
			assert.Equal(t, "bob@example.com", *in.Email)
			assert.Nil(t, in.FirstName)
			return models.User{Username: *in.Username, Email: *in.Email}, nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"signup", "-email", "bob@example.com", "bob", "secret1"}))
	assert.Contains(t, out.String(), "bob@example.com")
}

func TestRun_MeUnauthorized(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Me(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"me"})

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, out.String(), "error:")
}

func TestRun_ClientsTable(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().ListClients(gomock.Any()).Return([]models.ClientView{
		{Name: "Acme", DateCreated: time.Now()},
		{Name: "Globex", DateCreated: time.Now().Add(-time.Hour)},
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"clients"}))
	assert.Contains(t, out.String(), "Acme")
	assert.Contains(t, out.String(), "Globex")
}

func TestRun_EmptyListing(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"projects"}))
	assert.Contains(t, out.String(), "(none)")
}

func TestRun_CreateDatabase(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().
		CreateDatabase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.DatabaseInput) (models.Database, error) {
			require.NotNil(t, in.OwnedBy)
			assert.Equal(t, int64(3), *in.OwnedBy)
			require.NotNil(t, in.Description)
			return models.Database{ID: 9, Name: *in.Name, OwnedBy: 3, CreatedBy: 1}, nil
		})

	require.NoError(t, app.Run(context.Background(),
		[]string{"create-database", "-description", "main store", "warehouse", "3"}))
	assert.Contains(t, out.String(), "warehouse")
}

func TestRun_CreateProjectInvalidID(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"create-project", "migration", "x", "2"})

	require.ErrorIs(t, err, errUsage)
}

func TestRun_DeleteRecord(t *testing.T) {
	tests := []struct {
		command string
		setup   func(api *mock.MockAPIClient)
		want    string
	}{
		{
			command: "delete-client",
			setup:   func(api *mock.MockAPIClient) { api.EXPECT().DeleteClient(gomock.Any(), int64(4)).Return(nil) },
			want:    "client 4 deleted",
		},
		{
			command: "delete-database",
			setup:   func(api *mock.MockAPIClient) { api.EXPECT().DeleteDatabase(gomock.Any(), int64(4)).Return(nil) },
			want:    "database 4 deleted",
		},
		{
			command: "delete-project",
			setup:   func(api *mock.MockAPIClient) { api.EXPECT().DeleteProject(gomock.Any(), int64(4)).Return(nil) },
			want:    "project 4 deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			app, api, out := newTestApp(t)
			tt.setup(api)

			require.NoError(t, app.Run(context.Background(), []string{tt.command, "4"}))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRun_DeleteRestricted(t *testing.T) {
	app, api, _ := newTestApp(t)
	api.EXPECT().DeleteClient(gomock.Any(), int64(1)).Return(adapter.ErrInternalServerError)

	err := app.Run(context.Background(), []string{"delete-client", "1"})

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestRun_Version(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0", Date: "N/A", Commit: ""}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "1.0.0")
}

func TestRun_Logout(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"logout"}))
	assert.Contains(t, out.String(), "logged out")
}
