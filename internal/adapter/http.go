package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/utils"
	"github.com/MKhiriev/biz-records/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the resty implementation of [APIClient]. It
// normalises cfg.BaseURL and seeds the token from cfg.Token.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPAPIClient(cfg config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	c := &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient].
func (c *httpAPIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (c *httpAPIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Signup implements [APIClient]. POST /user/create/.
func (c *httpAPIClient) Signup(ctx context.Context, input models.UserInput) (models.User, error) {
	var user models.User
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&user).
		Post("/user/create/")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [APIClient]. POST /user/token/.
func (c *httpAPIClient) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var token models.TokenResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&token).
		Post("/user/token/")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if token.Token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}

	c.SetToken(token.Token)
	c.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return token.Token, nil
}

// Logout implements [APIClient]. DELETE /user/token/.
func (c *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := c.authedRequest(ctx).Delete("/user/token/")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.SetToken("")
	return nil
}

// Me implements [APIClient]. GET /user/me/.
func (c *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	var user models.User
	resp, err := c.authedRequest(ctx).SetResult(&user).Get("/user/me/")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}

	return user, mapHTTPError(resp)
}

// UpdateMe implements [APIClient]. PATCH /user/me/.
func (c *httpAPIClient) UpdateMe(ctx context.Context, input models.UserInput) (models.User, error) {
	var user models.User
	resp, err := c.authedRequest(ctx).SetBody(input).SetResult(&user).Patch("/user/me/")
	if err != nil {
		return models.User{}, fmt.Errorf("update me request: %w", err)
	}

	return user, mapHTTPError(resp)
}

func (c *httpAPIClient) ListClients(ctx context.Context) ([]models.ClientView, error) {
	clients := []models.ClientView{}
	return clients, c.list(ctx, "/client/clients/", &clients)
}

func (c *httpAPIClient) CreateClient(ctx context.Context, input models.ClientInput) (models.ClientView, error) {
	var client models.ClientView
	return client, c.create(ctx, "/client/clients/", input, &client)
}

func (c *httpAPIClient) DeleteClient(ctx context.Context, id int64) error {
	return c.delete(ctx, "/client/clients/", id)
}

func (c *httpAPIClient) ListDatabases(ctx context.Context) ([]models.Database, error) {
	databases := []models.Database{}
	return databases, c.list(ctx, "/client/databases/", &databases)
}

func (c *httpAPIClient) CreateDatabase(ctx context.Context, input models.DatabaseInput) (models.Database, error) {
	var database models.Database
	return database, c.create(ctx, "/client/databases/", input, &database)
}

func (c *httpAPIClient) DeleteDatabase(ctx context.Context, id int64) error {
	return c.delete(ctx, "/client/databases/", id)
}

func (c *httpAPIClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	return projects, c.list(ctx, "/client/projects/", &projects)
}

func (c *httpAPIClient) CreateProject(ctx context.Context, input models.ProjectInput) (models.Project, error) {
	var project models.Project
	return project, c.create(ctx, "/client/projects/", input, &project)
}

func (c *httpAPIClient) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, "/client/projects/", id)
}

// Version implements [APIClient]. GET /version.
func (c *httpAPIClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	resp, err := c.client.R().SetContext(ctx).SetResult(&version).Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}

	return version, mapHTTPError(resp)
}

func (c *httpAPIClient) list(ctx context.Context, path string, out any) error {
	resp, err := c.authedRequest(ctx).SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("list %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (c *httpAPIClient) create(ctx context.Context, path string, body, out any) error {
	resp, err := c.authedRequest(ctx).SetBody(body).SetResult(out).Post(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (c *httpAPIClient) delete(ctx context.Context, path string, id int64) error {
	resp, err := c.authedRequest(ctx).Delete(path + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return fmt.Errorf("delete %s%d: %w", path, id, err)
	}

	return mapHTTPError(resp)
}

func (c *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", utils.SchemeToken+" "+token)
	}
	return req
}
