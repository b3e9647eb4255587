package handoff

import (
	"testing"
	"time"

	"github.com/aula-dev/aula/internal/localstore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	local, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("localstore.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })
	return NewStore(local)
}

func TestPutTakeRoundTrip(t *testing.T) {
	s := newTestStore(t)

	items := []Item{
		{ID: 3, Text: "tercera"},
		{ID: 1, Text: "primera"},
		{ID: 2, Text: "segunda"},
	}
	if _, err := s.Put(42, items); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := s.Take(42)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if !ok {
		t.Fatal("Take missed")
	}
	if len(got) != 3 {
		t.Fatalf("got %d items, want 3", len(got))
	}
	for i, want := range items {
		if got[i] != want {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestPutDeduplicatesPreservingOrder(t *testing.T) {
	s := newTestStore(t)

	items := []Item{
		{ID: 5, Text: "a"},
		{ID: 7, Text: "b"},
		{ID: 5, Text: "a"},
		{ID: 9, Text: "c"},
		{ID: 7, Text: "b"},
	}
	sel, err := s.Put(42, items)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if len(sel.Items) != 3 {
		t.Fatalf("stored %d items, want 3", len(sel.Items))
	}
	for i, want := range []int{5, 7, 9} {
		if sel.Items[i].ID != want {
			t.Errorf("sel.Items[%d].ID = %d, want %d", i, sel.Items[i].ID, want)
		}
	}
}

func TestTakeIsConsumeOnce(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Put(42, []Item{{ID: 1, Text: "x"}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, ok, _ := s.Take(42); !ok {
		t.Fatal("first Take missed")
	}
	if _, ok, _ := s.Take(42); ok {
		t.Error("second Take returned the consumed selection")
	}
}

func TestTakeOwnerMismatchMissesAndKeeps(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Put(42, []Item{{ID: 1, Text: "x"}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, ok, _ := s.Take(7); ok {
		t.Error("Take returned another teacher's selection")
	}
	// The rightful owner can still read it.
	if _, ok, _ := s.Take(42); !ok {
		t.Error("owner's selection was lost on a mismatched read")
	}
}

func TestTakeExpiredMissesAndClears(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Put(42, []Item{{ID: 1, Text: "x"}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	s.now = func() time.Time { return time.Now().Add(TTL + time.Minute) }
	if _, ok, _ := s.Take(42); ok {
		t.Error("Take returned an expired selection")
	}

	// Record is gone even for a later in-time read.
	s.now = time.Now
	if _, ok, _ := s.Take(42); ok {
		t.Error("expired selection was not cleared")
	}
}

func TestTakeEmptyStoreMisses(t *testing.T) {
	s := newTestStore(t)
	if _, ok, err := s.Take(42); ok || err != nil {
		t.Errorf("Take on empty store = (ok=%v, err=%v)", ok, err)
	}
}

func TestPutReplacesPrevious(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Put(42, []Item{{ID: 1, Text: "old"}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := s.Put(42, []Item{{ID: 2, Text: "new"}}); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, ok, err := s.Take(42)
	if err != nil || !ok {
		t.Fatalf("Take = (ok=%v, err=%v)", ok, err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("got = %+v, want the replacing selection", got)
	}
}
