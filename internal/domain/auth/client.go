package auth

import (
	"context"

	"github.com/telecare/telecare/internal/platform/rest"
)

// Client is the backend surface for authentication and profile management.
// The mock backend implements the same interface.
type Client interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, reg Registration) (*Session, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, token string) (*User, error)
	UpdateProfile(ctx context.Context, token string, patch ProfilePatch) (*User, error)
}

// HTTPClient calls the REST backend.
type HTTPClient struct {
	api *rest.Client
}

func NewHTTPClient(api *rest.Client) *HTTPClient {
	return &HTTPClient{api: api}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var out Session
	err := c.api.PostJSON(ctx, "", "/auth/login", Credentials{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg Registration) (*Session, error) {
	var out Session
	if err := c.api.PostJSON(ctx, "", "/auth/register", reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.api.PostJSON(ctx, token, "/auth/logout", nil, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*User, error) {
	var out User
	if err := c.api.GetJSON(ctx, token, "/patients/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, patch ProfilePatch) (*User, error) {
	var out User
	if err := c.api.PutJSON(ctx, token, "/patients/profile", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
