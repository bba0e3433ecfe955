package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/mock"
	"github.com/MKhiriev/biz-records/internal/service"
	"github.com/MKhiriev/biz-records/models"
)

const (
	userToken  = "user-token"
	staffToken = "staff-token"
)

var (
	testUser  = models.User{ID: 1, Username: "testUser", Email: "test@example.com", FirstName: "Test", IsActive: true}
	testStaff = models.User{ID: 2, Username: "staff", IsActive: true, IsStaff: true}
)

// testEnv is a fully routed Handler whose services are gomock mocks.
type testEnv struct {
	router http.Handler

	auth      *mock.MockAuthService
	users     *mock.MockUserService
	clients   *mock.MockClientService
	databases *mock.MockDatabaseService
	projects  *mock.MockProjectService
	appInfo   *mock.MockAppInfoService
	health    *mock.MockHealthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:      mock.NewMockAuthService(ctrl),
		users:     mock.NewMockUserService(ctrl),
		clients:   mock.NewMockClientService(ctrl),
		databases: mock.NewMockDatabaseService(ctrl),
		projects:  mock.NewMockProjectService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
		health:    mock.NewMockHealthService(ctrl),
	}

	services := &service.Services{
		AuthService:     env.auth,
		UserService:     env.users,
		ClientService:   env.clients,
		DatabaseService: env.databases,
		ProjectService:  env.projects,
		AppInfoService:  env.appInfo,
		HealthService:   env.health,
	}

	env.auth.EXPECT().ParseToken(gomock.Any(), userToken).Return(testUser, nil).AnyTimes()
	env.auth.EXPECT().ParseToken(gomock.Any(), staffToken).Return(testStaff, nil).AnyTimes()

	cfg := config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second}
	env.router = NewHandler(services, cfg, logger.Nop()).Init()

	return env
}

// do sends a request through the router. An empty token sends no
// Authorization header.
func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }
