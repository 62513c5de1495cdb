package notification

import (
	"context"

	"github.com/telecare/telecare/internal/platform/rest"
)

// Client is the backend surface for notifications.
type Client interface {
	ListNotifications(ctx context.Context, token string) ([]Notification, error)
	MarkRead(ctx context.Context, token, notificationID string) error
	RegisterDevice(ctx context.Context, token, pushToken string) error
}

type HTTPClient struct {
	api *rest.Client
}

func NewHTTPClient(rc *rest.Client) *HTTPClient { return &HTTPClient{api: rc} }

func (c *HTTPClient) ListNotifications(ctx context.Context, token string) ([]Notification, error) {
	var out []Notification
	if err := c.api.GetJSON(ctx, token, "/notifications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MarkRead(ctx context.Context, token, notificationID string) error {
	return c.api.PutJSON(ctx, token, "/notifications/"+notificationID+"/read", nil, nil)
}

func (c *HTTPClient) RegisterDevice(ctx context.Context, token, pushToken string) error {
	body := map[string]string{"pushToken": pushToken}
	return c.api.PostJSON(ctx, token, "/notifications/register-device", body, nil)
}
