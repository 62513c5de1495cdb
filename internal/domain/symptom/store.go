package symptom

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/telecare/telecare/internal/platform/resource"
)

// Store holds the report list plus two sub-states that are orthogonal to the
// network state machine: the client-local recording state (no network
// involved) and the transcription/translation pair produced from a captured
// recording.
type Store struct {
	client Client
	list   *resource.Store[Report]
	log    zerolog.Logger

	mu            sync.Mutex
	current       *Report
	recording     bool
	recordingURI  string
	transcription string
	translation   string
}

func NewStore(client Client, logger zerolog.Logger) *Store {
	return &Store{
		client: client,
		list:   resource.NewStore(func(r Report) string { return r.ID }, logger),
		log:    logger,
	}
}

// Reports returns a copy of the cached report list.
func (s *Store) Reports() []Report { return s.list.Items() }

// IsLoading reports whether any network action is in flight.
func (s *Store) IsLoading() bool { return s.list.IsLoading() }

// Err returns the last recorded error message.
func (s *Store) Err() string { return s.list.Err() }

// ClearError dismisses the recorded error.
func (s *Store) ClearError() { s.list.ClearError() }

// FetchReports replaces the cached list with the backend's reports.
func (s *Store) FetchReports(ctx context.Context, token string) error {
	return s.list.Fetch(ctx, func(ctx context.Context) ([]Report, error) {
		return s.client.ListReports(ctx, token)
	})
}

// CreateReport creates a report, prepends it, and makes it current.
func (s *Store) CreateReport(ctx context.Context, token string, draft Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	report, err := s.list.Create(ctx, func(ctx context.Context) (Report, error) {
		r, err := s.client.CreateReport(ctx, token, draft)
		if err != nil {
			return Report{}, err
		}
		return *r, nil
	})
	if err != nil {
		return err
	}
	s.setCurrent(&report)
	return nil
}

// UpdateReport patches a report in place; a miss leaves the list unchanged.
func (s *Store) UpdateReport(ctx context.Context, token, id string, patch Patch) error {
	report, err := s.list.Update(ctx, func(ctx context.Context) (Report, error) {
		r, err := s.client.UpdateReport(ctx, token, id, patch)
		if err != nil {
			return Report{}, err
		}
		return *r, nil
	})
	if err != nil {
		return err
	}
	s.refreshCurrent(report)
	return nil
}

// SubmitReport advances a draft to submitted.
func (s *Store) SubmitReport(ctx context.Context, token, id string) error {
	report, err := s.list.Update(ctx, func(ctx context.Context) (Report, error) {
		r, err := s.client.SubmitReport(ctx, token, id)
		if err != nil {
			return Report{}, err
		}
		return *r, nil
	})
	if err != nil {
		return err
	}
	s.refreshCurrent(report)
	return nil
}

// Transcribe sends captured audio for transcription and stores the result
// pair. The recording locator is consumed by the caller, who opens the file
// and passes its reader.
func (s *Store) Transcribe(ctx context.Context, token string, audio io.Reader, fileName, language string) error {
	var result *TranscriptionResult
	err := s.list.Run(ctx, func(ctx context.Context) error {
		r, err := s.client.Transcribe(ctx, token, audio, fileName, language)
		if err != nil {
			return err
		}
		result = r
		return nil
	}, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.transcription = result.Transcription
	s.translation = result.Translation
	s.mu.Unlock()
	return nil
}

// StartRecording enters the recording state and drops any prior locator.
func (s *Store) StartRecording() {
	s.mu.Lock()
	s.recording = true
	s.recordingURI = ""
	s.mu.Unlock()
}

// StopRecording leaves the recording state, capturing the recording locator.
func (s *Store) StopRecording(uri string) {
	s.mu.Lock()
	s.recording = false
	s.recordingURI = uri
	s.mu.Unlock()
}

// Recording returns the recording flag and the captured locator.
func (s *Store) Recording() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recording, s.recordingURI
}

// Transcription returns the stored transcription/translation pair.
func (s *Store) Transcription() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcription, s.translation
}

// ClearTranscription resets the transcription pair and recording locator.
func (s *Store) ClearTranscription() {
	s.mu.Lock()
	s.transcription = ""
	s.translation = ""
	s.recordingURI = ""
	s.mu.Unlock()
}

// CurrentReport returns the report most recently created or selected.
func (s *Store) CurrentReport() *Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	r := *s.current
	return &r
}

// SetCurrentReport selects a report, nil to deselect.
func (s *Store) SetCurrentReport(r *Report) { s.setCurrent(r) }

func (s *Store) setCurrent(r *Report) {
	s.mu.Lock()
	if r == nil {
		s.current = nil
	} else {
		cp := *r
		s.current = &cp
	}
	s.mu.Unlock()
}

// refreshCurrent replaces the current report when it was the one updated.
func (s *Store) refreshCurrent(r Report) {
	s.mu.Lock()
	if s.current != nil && s.current.ID == r.ID {
		cp := r
		s.current = &cp
	}
	s.mu.Unlock()
}
