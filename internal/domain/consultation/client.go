package consultation

import (
	"context"

	"github.com/telecare/telecare/internal/platform/rest"
)

// Client is the backend surface for consultations and the doctor catalog.
type Client interface {
	AvailableDoctors(ctx context.Context, token string) ([]Doctor, error)
	RequestConsultation(ctx context.Context, token string, req Request) (*Consultation, error)
	ListConsultations(ctx context.Context, token string) ([]Consultation, error)
	JoinCall(ctx context.Context, token, consultationID string) (*CallSession, error)
}

// HTTPClient calls the REST backend.
type HTTPClient struct {
	api *rest.Client
}

func NewHTTPClient(api *rest.Client) *HTTPClient {
	return &HTTPClient{api: api}
}

func (c *HTTPClient) AvailableDoctors(ctx context.Context, token string) ([]Doctor, error) {
	var out []Doctor
	if err := c.api.GetJSON(ctx, token, "/consultations/doctors/available", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) RequestConsultation(ctx context.Context, token string, req Request) (*Consultation, error) {
	var out Consultation
	if err := c.api.PostJSON(ctx, token, "/consultations/request", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListConsultations(ctx context.Context, token string) ([]Consultation, error) {
	var out []Consultation
	if err := c.api.GetJSON(ctx, token, "/consultations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) JoinCall(ctx context.Context, token, consultationID string) (*CallSession, error) {
	var out CallSession
	if err := c.api.PostJSON(ctx, token, "/consultations/"+consultationID+"/join", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
