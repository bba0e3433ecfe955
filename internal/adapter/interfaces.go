// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the biz-records REST API.
//
// The primary abstraction is [APIClient], which hides URLs, JSON encoding
// and the token header from callers such as the command-line client. The
// package ships an HTTP implementation built on resty ([NewHTTPAPIClient]).
//
// Non-2xx responses are decoded into [*APIError], which unwraps to one of
// the sentinel values in errors.go so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/biz-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient defines typed access to the biz-records API.
type APIClient interface {
	// SetToken stores the token attached to every authenticated request.
	SetToken(token string)

	// Token returns the stored token, or an empty string.
	Token() string

	// Signup registers a new account. It does not log in.
	Signup(ctx context.Context, input models.UserInput) (models.User, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// Logout revokes the stored token on the server and forgets it locally.
	Logout(ctx context.Context) error

	// Me returns the profile of the token owner.
	Me(ctx context.Context) (models.User, error)

	// UpdateMe partially updates the profile of the token owner.
	UpdateMe(ctx context.Context, input models.UserInput) (models.User, error)

	ListClients(ctx context.Context) ([]models.ClientView, error)
	CreateClient(ctx context.Context, input models.ClientInput) (models.ClientView, error)
	DeleteClient(ctx context.Context, id int64) error

	ListDatabases(ctx context.Context) ([]models.Database, error)
	CreateDatabase(ctx context.Context, input models.DatabaseInput) (models.Database, error)
	DeleteDatabase(ctx context.Context, id int64) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, input models.ProjectInput) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
