package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/telecare/telecare/internal/platform/session"
)

// ErrNotAuthenticated is returned when an action requiring a session token
// runs without one. It signals a caller bug and is never recorded in state.
var ErrNotAuthenticated = fmt.Errorf("not authenticated")

// State is a snapshot of the session store.
type State struct {
	User            *User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// persistedSession is the on-disk shape of the session.
type persistedSession struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Store holds the current session on top of the usual loading/error state.
// Login and Register populate user, token, and the authenticated flag
// atomically; Logout always clears them. The session is mirrored to local
// storage so it survives restarts.
type Store struct {
	mu       sync.Mutex
	client   Client
	sessions *session.Store
	log      zerolog.Logger

	user          *User
	token         string
	authenticated bool
	inflight      int
	err           string
}

func NewStore(client Client, sessions *session.Store, logger zerolog.Logger) *Store {
	return &Store{client: client, sessions: sessions, log: logger}
}

// State returns a snapshot of the session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user *User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return State{
		User:            user,
		Token:           s.token,
		IsAuthenticated: s.authenticated,
		IsLoading:       s.inflight > 0,
		Err:             s.err,
	}
}

// Token returns the current session token, empty when signed out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// ClearError resets the error message without touching the session.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.inflight--
	s.err = err.Error()
	s.mu.Unlock()
}

// Login authenticates with the backend and establishes the session.
// Validation failures are returned before any request is issued.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if err := (Credentials{Email: email, Password: password}).Validate(); err != nil {
		return err
	}

	s.begin()
	sess, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.fail(err)
		return err
	}
	s.establish(sess)
	return nil
}

// Register creates an account and establishes the session.
func (s *Store) Register(ctx context.Context, reg Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}

	s.begin()
	sess, err := s.client.Register(ctx, reg)
	if err != nil {
		s.fail(err)
		return err
	}
	s.establish(sess)
	return nil
}

// establish settles a successful login/register: session fields set
// atomically, then mirrored to local storage.
func (s *Store) establish(sess *Session) {
	s.mu.Lock()
	s.inflight--
	s.user = sess.User
	s.token = sess.Token
	s.authenticated = true
	s.mu.Unlock()
	s.persist()
}

func (s *Store) persist() {
	s.mu.Lock()
	record := persistedSession{User: s.user, Token: s.token}
	s.mu.Unlock()
	if err := s.sessions.Save(record); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session")
	}
}

// Logout revokes the server-side session when a token is held (best effort;
// an unreachable backend is logged, never surfaced) and always clears local
// state and the persisted session.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token != "" {
		if err := s.client.Logout(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("server-side logout failed")
		}
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.err = ""
	s.mu.Unlock()

	if err := s.sessions.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
}

// UpdateProfile applies a partial profile edit. Requires a session token.
func (s *Store) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return ErrNotAuthenticated
	}

	s.begin()
	user, err := s.client.UpdateProfile(ctx, token, patch)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.inflight--
	s.user = user
	s.mu.Unlock()
	s.persist()
	return nil
}

// Bootstrap restores a persisted session and re-validates its token by
// fetching the profile. An invalid or expired token clears the session
// silently; only storage I/O problems are reported.
func (s *Store) Bootstrap(ctx context.Context) error {
	var record persistedSession
	ok, err := s.sessions.Load(&record)
	if err != nil {
		return err
	}
	if !ok || record.Token == "" {
		return nil
	}

	user, err := s.client.GetProfile(ctx, record.Token)
	if err != nil {
		s.log.Info().Err(err).Msg("persisted session rejected, clearing")
		s.mu.Lock()
		s.user = nil
		s.token = ""
		s.authenticated = false
		s.mu.Unlock()
		if err := s.sessions.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear persisted session")
		}
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.token = record.Token
	s.authenticated = true
	s.mu.Unlock()
	return nil
}
