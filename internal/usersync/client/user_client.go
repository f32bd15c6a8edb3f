package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"usersync/internal/usersync/model"
)

const userPrefix = "/api/v1/user"

// UserClient is the HTTP client for the remote user API
type UserClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewUserClient creates a new user API client; a zero timeout leaves requests unbounded
func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListUsers returns every user in the order the remote API lists them
func (c *UserClient) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, "list users", http.MethodGet, c.collectionURL(), nil, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if err := users[i].Validate(); err != nil {
			return nil, fmt.Errorf("list users: user at index %d: %w", i, err)
		}
	}
	return users, nil
}

// GetUser fetches a single user
func (c *UserClient) GetUser(ctx context.Context, userID int) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, "get user", http.MethodGet, c.userURL(userID), nil, &user); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// CreateUser creates a user; the remote API assigns the id
func (c *UserClient) CreateUser(ctx context.Context, req model.UserCreate) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	var user model.User
	if err := c.do(ctx, "create user", http.MethodPost, c.collectionURL(), req, &user); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// UpdateUser sends only the fields set in the patch. An empty patch is answered
// with GetUser and never reaches the update endpoint.
func (c *UserClient) UpdateUser(ctx context.Context, userID int, req model.UserUpdate) (*model.User, error) {
	if req.IsEmpty() {
		return c.GetUser(ctx, userID)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	var user model.User
	if err := c.do(ctx, "update user", http.MethodPut, c.userURL(userID), req, &user); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes a user
func (c *UserClient) DeleteUser(ctx context.Context, userID int) error {
	return c.do(ctx, "delete user", http.MethodDelete, c.userURL(userID), nil, nil)
}

func (c *UserClient) collectionURL() string {
	return c.baseURL + userPrefix + "/"
}

func (c *UserClient) userURL(userID int) string {
	return fmt.Sprintf("%s%s/%d/", c.baseURL, userPrefix, userID)
}

// do issues one request and decodes a 2xx body into out when out is non-nil.
func (c *UserClient) do(ctx context.Context, op, method, url string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RemoteError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, model.NewValidationError(err))
	}
	return nil
}
