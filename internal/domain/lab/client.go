package lab

import (
	"context"
	"io"

	"github.com/telecare/telecare/internal/platform/rest"
)

// Client is the backend surface for lab results.
type Client interface {
	ListResults(ctx context.Context, token string) ([]Result, error)
	UploadResult(ctx context.Context, token string, up Upload, file io.Reader) (*Result, error)
}

type HTTPClient struct {
	api *rest.Client
}

func NewHTTPClient(rc *rest.Client) *HTTPClient { return &HTTPClient{api: rc} }

func (c *HTTPClient) ListResults(ctx context.Context, token string) ([]Result, error) {
	var out []Result
	if err := c.api.GetJSON(ctx, token, "/lab-results", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UploadResult(ctx context.Context, token string, up Upload, file io.Reader) (*Result, error) {
	fields := map[string]string{
		"testName": up.TestName,
		"testDate": up.TestDate,
	}
	files := []rest.FilePart{{Field: "file", FileName: up.FileName, Content: file}}
	var out Result
	if err := c.api.PostMultipart(ctx, token, "/lab-results/upload", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
