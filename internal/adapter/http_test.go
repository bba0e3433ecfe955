// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/models"
)

func newTestClient(t *testing.T, serverURL string) *httpAPIClient {
	t.Helper()
	c, err := NewHTTPAPIClient(config.ClientConfig{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpAPIClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func strPtr(s string) *string { return &s }

func TestNewHTTPAPIClient_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{name: "empty", addr: ""},
		{name: "blank", addr: "   "},
		{name: "no host", addr: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPAPIClient(config.ClientConfig{BaseURL: tt.addr}, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8000/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", got)

	got, err = normalizeBaseURL("https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", got)
}

func TestNewHTTPAPIClient_SeedsToken(t *testing.T) {
	c, err := NewHTTPAPIClient(config.ClientConfig{BaseURL: "http://localhost", Token: " abc "}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "abc", c.Token())
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/token/", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "alice", Password: "secret1"}, creds)

		writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: "signed-token"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	token, err := c.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "signed-token", c.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Detail: "Unable to authenticate with provided credentials"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.ErrorIs(t, err, ErrBadRequest)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Unable to authenticate with provided credentials", apiErr.Detail)
	assert.Empty(t, c.Token())
}

func TestLogout_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "Token abc", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("abc")

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.Token())
}

func TestSignup_FieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/create/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid input",
			Errors: map[string]string{"password": "ensure this field has at least 5 characters"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("ignored")
	_, err := c.Signup(context.Background(), models.UserInput{Username: strPtr("bob"), Password: strPtr("1234")})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "password: ensure this field has at least 5 characters")
}

// ── profile ──────────────────────────────────────────────────────────────────

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/me/", r.URL.Path)
		if r.Header.Get("Authorization") != "Token good" {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "invalid token"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"username": "alice", "first_name": "Alice"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	c.SetToken("good")
	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, "Alice", me.FirstName)
}

func TestUpdateMe_SendsPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"first_name":"Alice"}`, string(body))
		writeJSON(t, w, http.StatusOK, map[string]string{"username": "alice", "first_name": "Alice"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("good")

	me, err := c.UpdateMe(context.Background(), models.UserInput{FirstName: strPtr("Alice")})
	require.NoError(t, err)
	assert.Equal(t, "Alice", me.FirstName)
}

// ── records ──────────────────────────────────────────────────────────────────

func TestListClients(t *testing.T) {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/client/clients/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.ClientView{{Name: "Acme", DateCreated: created}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("good")

	clients, err := c.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].Name)
	assert.True(t, created.Equal(clients[0].DateCreated))
}

func TestListDatabases_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Database{})
	}))
	defer srv.Close()

	databases, err := newTestClient(t, srv.URL).ListDatabases(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, databases)
	assert.Empty(t, databases)
}

func TestCreateProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/client/projects/", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, models.Project{ID: 4, Name: "migration", Database: 1, Client: 2, CreatedBy: 3})
	}))
	defer srv.Close()

	project, err := newTestClient(t, srv.URL).CreateProject(context.Background(), models.ProjectInput{Name: strPtr("migration")})
	require.NoError(t, err)
	assert.Equal(t, int64(4), project.ID)
	assert.Equal(t, int64(3), project.CreatedBy)
}

func TestDelete_MapsStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "missing", status: http.StatusNotFound, body: `{"detail":"Not found"}`, wantErr: ErrNotFound},
		{name: "restricted", status: http.StatusInternalServerError, body: `{"detail":"still referenced"}`, wantErr: ErrInternalServerError},
		{name: "plain text body", status: http.StatusBadGateway, body: "upstream down", wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/client/databases/7/", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(t, srv.URL).DeleteDatabase(context.Background(), 7)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "1.0.0", Date: "N/A", Commit: "abc"})
	}))
	defer srv.Close()

	v, err := newTestClient(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v.Version)
}

func TestRequest_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv.URL).ListProjects(ctx)
	assert.Error(t, err)
}
