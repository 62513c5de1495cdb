package symptom

import (
	"context"
	"io"

	"github.com/telecare/telecare/internal/platform/rest"
)

// Client is the backend surface for symptom reports and transcription.
type Client interface {
	CreateReport(ctx context.Context, token string, draft Draft) (*Report, error)
	ListReports(ctx context.Context, token string) ([]Report, error)
	UpdateReport(ctx context.Context, token, id string, patch Patch) (*Report, error)
	SubmitReport(ctx context.Context, token, id string) (*Report, error)
	Transcribe(ctx context.Context, token string, audio io.Reader, fileName, language string) (*TranscriptionResult, error)
}

// HTTPClient calls the REST backend.
type HTTPClient struct {
	api *rest.Client
}

func NewHTTPClient(api *rest.Client) *HTTPClient {
	return &HTTPClient{api: api}
}

func (c *HTTPClient) CreateReport(ctx context.Context, token string, draft Draft) (*Report, error) {
	var out Report
	if err := c.api.PostJSON(ctx, token, "/symptoms/reports", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListReports(ctx context.Context, token string) ([]Report, error) {
	var out []Report
	if err := c.api.GetJSON(ctx, token, "/symptoms/reports", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateReport(ctx context.Context, token, id string, patch Patch) (*Report, error) {
	var out Report
	if err := c.api.PutJSON(ctx, token, "/symptoms/reports/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SubmitReport(ctx context.Context, token, id string) (*Report, error) {
	var out Report
	if err := c.api.PostJSON(ctx, token, "/symptoms/reports/"+id+"/submit", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Transcribe(ctx context.Context, token string, audio io.Reader, fileName, language string) (*TranscriptionResult, error) {
	var out TranscriptionResult
	err := c.api.PostMultipart(ctx, token, "/symptoms/transcribe",
		map[string]string{"language": language},
		[]rest.FilePart{{Field: "audio", FileName: fileName, Content: audio}},
		&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
