package lab

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/telecare/telecare/internal/platform/resource"
)

// Store caches the patient's lab results. Results are immutable on the
// client; only the backend updates their contents.
type Store struct {
	client Client
	list   *resource.Store[Result]
}

func NewStore(client Client, logger zerolog.Logger) *Store {
	return &Store{
		client: client,
		list:   resource.NewStore(func(r Result) string { return r.ID }, logger),
	}
}

// Results returns a copy of the cached list.
func (s *Store) Results() []Result { return s.list.Items() }

func (s *Store) IsLoading() bool { return s.list.IsLoading() }
func (s *Store) Err() string     { return s.list.Err() }
func (s *Store) ClearError()     { s.list.ClearError() }

// FetchResults replaces the cached list with the backend's response.
func (s *Store) FetchResults(ctx context.Context, token string) error {
	return s.list.Fetch(ctx, func(ctx context.Context) ([]Result, error) {
		return s.client.ListResults(ctx, token)
	})
}

// UploadResult submits a document and prepends the created record, whose
// results text is a processing placeholder until the medical team fills it.
func (s *Store) UploadResult(ctx context.Context, token string, up Upload, file io.Reader) (*Result, error) {
	if err := up.Validate(); err != nil {
		return nil, err
	}
	created, err := s.list.Create(ctx, func(ctx context.Context) (Result, error) {
		r, err := s.client.UploadResult(ctx, token, up, file)
		if err != nil {
			return Result{}, err
		}
		return *r, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
