package consultation

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/telecare/telecare/internal/platform/resource"
)

// Store holds the patient's consultations, the available-doctor catalog,
// and the credentials of a joined call. The client never drives status
// transitions; it only reflects what the backend reports.
type Store struct {
	client   Client
	consults *resource.Store[Consultation]
	doctors  *resource.Store[Doctor]
	log      zerolog.Logger

	mu      sync.Mutex
	current *Consultation
	call    *CallSession
}

func NewStore(client Client, logger zerolog.Logger) *Store {
	return &Store{
		client:   client,
		consults: resource.NewStore(func(c Consultation) string { return c.ID }, logger),
		doctors:  resource.NewStore(func(d Doctor) string { return d.ID }, logger),
		log:      logger,
	}
}

// Consultations returns a copy of the cached consultation list.
func (s *Store) Consultations() []Consultation { return s.consults.Items() }

// AvailableDoctors returns a copy of the cached doctor catalog.
func (s *Store) AvailableDoctors() []Doctor { return s.doctors.Items() }

// IsLoading reports whether any action on this store is in flight.
func (s *Store) IsLoading() bool { return s.consults.IsLoading() || s.doctors.IsLoading() }

// Err returns the last recorded error message from either list.
func (s *Store) Err() string {
	if msg := s.consults.Err(); msg != "" {
		return msg
	}
	return s.doctors.Err()
}

// ClearError dismisses recorded errors.
func (s *Store) ClearError() {
	s.consults.ClearError()
	s.doctors.ClearError()
}

// FetchDoctors replaces the doctor catalog with the backend's response.
func (s *Store) FetchDoctors(ctx context.Context, token string) error {
	return s.doctors.Fetch(ctx, func(ctx context.Context) ([]Doctor, error) {
		return s.client.AvailableDoctors(ctx, token)
	})
}

// FetchConsultations replaces the consultation list.
func (s *Store) FetchConsultations(ctx context.Context, token string) error {
	return s.consults.Fetch(ctx, func(ctx context.Context) ([]Consultation, error) {
		return s.client.ListConsultations(ctx, token)
	})
}

// RequestConsultation books a consultation, prepends it, and selects it.
func (s *Store) RequestConsultation(ctx context.Context, token string, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	created, err := s.consults.Create(ctx, func(ctx context.Context) (Consultation, error) {
		c, err := s.client.RequestConsultation(ctx, token, req)
		if err != nil {
			return Consultation{}, err
		}
		return *c, nil
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	cp := created
	s.current = &cp
	s.mu.Unlock()
	return nil
}

// JoinCall obtains call credentials for a consultation.
func (s *Store) JoinCall(ctx context.Context, token, consultationID string) error {
	var sess *CallSession
	err := s.consults.Run(ctx, func(ctx context.Context) error {
		cs, err := s.client.JoinCall(ctx, token, consultationID)
		if err != nil {
			return err
		}
		sess = cs
		return nil
	}, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.call = sess
	s.mu.Unlock()
	return nil
}

// CallSession returns the active call credentials, nil when not in a call.
func (s *Store) CallSession() *CallSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.call == nil {
		return nil
	}
	cs := *s.call
	return &cs
}

// EndCall drops the call credentials.
func (s *Store) EndCall() {
	s.mu.Lock()
	s.call = nil
	s.mu.Unlock()
}

// Current returns the selected consultation, nil when none.
func (s *Store) Current() *Consultation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// SetCurrent selects a consultation, nil to deselect.
func (s *Store) SetCurrent(c *Consultation) {
	s.mu.Lock()
	if c == nil {
		s.current = nil
	} else {
		cp := *c
		s.current = &cp
	}
	s.mu.Unlock()
}
