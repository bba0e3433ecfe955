package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/biz-records/models"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppInfo(gomock.Any()).
		Return(models.NewAppBuildInfo("1.2.0", "2026-01-01", "").Response())

	rr := env.do(t, http.MethodGet, "/version", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.0","date":"2026-01-01","commit":"N/A"}`, rr.Body.String())
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		checkErr   error
		wantStatus int
		wantBody   string
	}{
		{name: "database reachable", wantStatus: http.StatusOK, wantBody: `{"status":"ok","database":"ok"}`},
		{
			name:       "database down",
			checkErr:   errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","database":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.health.EXPECT().Check(gomock.Any()).Return(tt.checkErr)

			rr := env.do(t, http.MethodGet, "/health", "", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
