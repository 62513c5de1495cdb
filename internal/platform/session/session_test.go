package session

import (
	"os"
	"path/filepath"
	"testing"
)

type testState struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "session.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(testState{Token: "tok-1", UserID: "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got testState
	ok, err := s.Load(&got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted session")
	}
	if got.Token != "tok-1" || got.UserID != "1" {
		t.Errorf("expected round-tripped state, got %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	var got testState
	ok, err := s.Load(&got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no session for missing file")
	}
}

func TestLoadCorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)
	var got testState
	ok, err := s.Load(&got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected corrupt file to read as empty session")
	}
}

func TestLoadForeignNamespaceReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"namespace":"other","state":{"token":"x"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)
	var got testState
	ok, _ := s.Load(&got)
	if ok {
		t.Error("expected foreign namespace to read as empty session")
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(testState{Token: "tok"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got testState
	ok, _ := s.Load(&got)
	if ok {
		t.Error("expected session gone after clear")
	}
	// Clearing again is fine.
	if err := s.Clear(); err != nil {
		t.Errorf("unexpected error clearing absent session: %v", err)
	}
}
