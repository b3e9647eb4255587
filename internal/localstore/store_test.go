package localstore

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(KeyAuthToken, "tok-123"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := s.Get(KeyAuthToken)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || got != "tok-123" {
		t.Errorf("Get = (%q, %v), want (%q, true)", got, ok, "tok-123")
	}
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Get returned ok=true for a missing key")
	}
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(KeyUserProfile, "v1"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(KeyUserProfile, "v2"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, _, err := s.Get(KeyUserProfile)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "v2" {
		t.Errorf("Get = %q, want %q", got, "v2")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(KeyPendingSelection, "x"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Delete(KeyPendingSelection); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(KeyPendingSelection); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}

	_, ok, err := s.Get(KeyPendingSelection)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("key still present after Delete")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Put(KeyAuthToken, "survives"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = s2.Close() }()

	got, ok, err := s2.Get(KeyAuthToken)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || got != "survives" {
		t.Errorf("Get after reopen = (%q, %v), want (%q, true)", got, ok, "survives")
	}
}
