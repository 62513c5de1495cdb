package notification

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/telecare/telecare/internal/platform/resource"
)

// Store caches the patient's notifications. The unread count is derived
// from the cached list, so it can never disagree with it.
type Store struct {
	client Client
	list   *resource.Store[Notification]
	log    zerolog.Logger
}

func NewStore(client Client, logger zerolog.Logger) *Store {
	return &Store{
		client: client,
		list:   resource.NewStore(func(n Notification) string { return n.ID }, logger),
		log:    logger,
	}
}

// Notifications returns a copy of the cached list.
func (s *Store) Notifications() []Notification { return s.list.Items() }

// UnreadCount counts cached notifications not yet read.
func (s *Store) UnreadCount() int {
	count := 0
	for _, n := range s.list.Items() {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (s *Store) IsLoading() bool { return s.list.IsLoading() }
func (s *Store) Err() string     { return s.list.Err() }
func (s *Store) ClearError()     { s.list.ClearError() }

// FetchNotifications replaces the cached list with the backend's response.
func (s *Store) FetchNotifications(ctx context.Context, token string) error {
	return s.list.Fetch(ctx, func(ctx context.Context) ([]Notification, error) {
		return s.client.ListNotifications(ctx, token)
	})
}

// MarkRead flags a notification as read on the backend and in the cache.
// Marking an already-read notification again is a harmless no-op.
func (s *Store) MarkRead(ctx context.Context, token, notificationID string) error {
	return s.list.Run(ctx, func(ctx context.Context) error {
		return s.client.MarkRead(ctx, token, notificationID)
	}, func(items []Notification) {
		for i := range items {
			if items[i].ID == notificationID {
				items[i].IsRead = true
				return
			}
		}
		s.log.Debug().Str("id", notificationID).Msg("mark-read matched no cached notification")
	})
}

// RegisterDevice submits the push token for this device. Failures are
// reported to the caller but not recorded in store state, since the
// notification list is unaffected.
func (s *Store) RegisterDevice(ctx context.Context, token, pushToken string) error {
	if err := s.client.RegisterDevice(ctx, token, pushToken); err != nil {
		s.log.Warn().Err(err).Msg("device registration failed")
		return err
	}
	return nil
}
