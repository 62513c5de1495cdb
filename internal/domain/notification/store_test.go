package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type fakeClient struct {
	notifications []Notification
	err           error

	markReadIDs []string
	pushTokens  []string
}

func (f *fakeClient) ListNotifications(ctx context.Context, token string) ([]Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.notifications, nil
}

func (f *fakeClient) MarkRead(ctx context.Context, token, notificationID string) error {
	if f.err != nil {
		return f.err
	}
	f.markReadIDs = append(f.markReadIDs, notificationID)
	return nil
}

func (f *fakeClient) RegisterDevice(ctx context.Context, token, pushToken string) error {
	if f.err != nil {
		return f.err
	}
	f.pushTokens = append(f.pushTokens, pushToken)
	return nil
}

func seeded() *fakeClient {
	return &fakeClient{notifications: []Notification{
		{ID: "notif1", Type: TypeAppointment, Title: "Consultation Reminder", IsRead: false},
		{ID: "notif2", Type: TypeOutbreak, Title: "Health Alert", IsRead: false},
		{ID: "notif3", Type: TypeGeneral, Title: "Welcome", IsRead: true},
	}}
}

func TestFetchNotificationsAndUnreadCount(t *testing.T) {
	s := NewStore(seeded(), zerolog.Nop())
	if err := s.FetchNotifications(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchNotifications: %v", err)
	}
	if got := len(s.Notifications()); got != 3 {
		t.Fatalf("notifications = %d, want 3", got)
	}
	if got := s.UnreadCount(); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}
}

func TestMarkReadDecrementsCountByOne(t *testing.T) {
	fake := seeded()
	s := NewStore(fake, zerolog.Nop())
	if err := s.FetchNotifications(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchNotifications: %v", err)
	}

	if err := s.MarkRead(context.Background(), "tok", "notif1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if got := s.UnreadCount(); got != 1 {
		t.Fatalf("UnreadCount = %d, want 1", got)
	}
	if len(fake.markReadIDs) != 1 || fake.markReadIDs[0] != "notif1" {
		t.Fatalf("backend calls = %v", fake.markReadIDs)
	}

	for _, n := range s.Notifications() {
		if n.ID == "notif1" && !n.IsRead {
			t.Fatal("notif1 still unread in cache")
		}
	}
}

func TestMarkReadAlreadyReadIsNoOp(t *testing.T) {
	s := NewStore(seeded(), zerolog.Nop())
	if err := s.FetchNotifications(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchNotifications: %v", err)
	}

	if err := s.MarkRead(context.Background(), "tok", "notif3"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if got := s.UnreadCount(); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}
}

func TestUnreadCountNeverNegative(t *testing.T) {
	s := NewStore(seeded(), zerolog.Nop())
	if err := s.FetchNotifications(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchNotifications: %v", err)
	}

	for _, id := range []string{"notif1", "notif2", "notif3", "notif1"} {
		if err := s.MarkRead(context.Background(), "tok", id); err != nil {
			t.Fatalf("MarkRead(%s): %v", id, err)
		}
	}
	if got := s.UnreadCount(); got != 0 {
		t.Fatalf("UnreadCount = %d, want 0", got)
	}
}

func TestMarkReadFailureLeavesCacheUntouched(t *testing.T) {
	fake := seeded()
	s := NewStore(fake, zerolog.Nop())
	if err := s.FetchNotifications(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchNotifications: %v", err)
	}

	fake.err = errors.New("server error")
	if err := s.MarkRead(context.Background(), "tok", "notif1"); err == nil {
		t.Fatal("expected mark-read error")
	}
	if got := s.UnreadCount(); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}
	if s.Err() != "server error" {
		t.Fatalf("Err = %q", s.Err())
	}
}

func TestRegisterDeviceDoesNotTouchListState(t *testing.T) {
	fake := seeded()
	s := NewStore(fake, zerolog.Nop())
	if err := s.FetchNotifications(context.Background(), "tok"); err != nil {
		t.Fatalf("FetchNotifications: %v", err)
	}

	if err := s.RegisterDevice(context.Background(), "tok", "expo-push-token"); err != nil {
		t.Fatalf("RegisterDevice: %v", err)
	}
	if len(fake.pushTokens) != 1 || fake.pushTokens[0] != "expo-push-token" {
		t.Fatalf("push tokens = %v", fake.pushTokens)
	}

	fake.err = errors.New("push service down")
	if err := s.RegisterDevice(context.Background(), "tok", "expo-push-token"); err == nil {
		t.Fatal("expected registration error")
	}
	if s.Err() != "" {
		t.Fatalf("registration failure recorded in list state: %q", s.Err())
	}
}
