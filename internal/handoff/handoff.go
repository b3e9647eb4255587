// Package handoff bridges the question picker and the activity composer.
// The picker confirms a selection, the composer reads it back after
// navigating. The record is typed, owned, and expiring: a read by another
// teacher or past the deadline misses instead of leaking a stale list.
package handoff

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aula-dev/aula/internal/localstore"
)

// TTL is how long a confirmed selection stays readable.
const TTL = 15 * time.Minute

// Item is one confirmed {id, text} pair.
type Item struct {
	ID   int    `json:"id"`
	Text string `json:"texto"`
}

// Selection is the persisted handoff record.
type Selection struct {
	ID        string    `json:"id"`
	TeacherID int       `json:"docente_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store reads and writes the pending selection through the local store.
type Store struct {
	local *localstore.Store
	now   func() time.Time
}

// NewStore creates a handoff Store.
func NewStore(local *localstore.Store) *Store {
	return &Store{local: local, now: time.Now}
}

// Put persists a new selection for the given teacher, replacing any
// previous one. Duplicate ids are dropped, first occurrence wins, order
// is preserved.
func (s *Store) Put(teacherID int, items []Item) (*Selection, error) {
	seen := make(map[int]bool, len(items))
	deduped := make([]Item, 0, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		deduped = append(deduped, it)
	}

	now := s.now()
	sel := &Selection{
		ID:        uuid.New().String(),
		TeacherID: teacherID,
		Items:     deduped,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	data, err := json.Marshal(sel)
	if err != nil {
		return nil, fmt.Errorf("handoff: marshalling selection: %w", err)
	}
	if err := s.local.Put(localstore.KeyPendingSelection, string(data)); err != nil {
		return nil, err
	}
	return sel, nil
}

// Take consumes the pending selection for the given teacher. A matching
// read returns the items and clears the record. An expired record is
// cleared and misses. A record owned by a different teacher is left in
// place and misses.
func (s *Store) Take(teacherID int) ([]Item, bool, error) {
	raw, ok, err := s.local.Get(localstore.KeyPendingSelection)
	if err != nil || !ok {
		return nil, false, err
	}

	var sel Selection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		// Unreadable records are cleared rather than wedging the composer.
		_ = s.local.Delete(localstore.KeyPendingSelection)
		return nil, false, nil
	}

	if s.now().After(sel.ExpiresAt) {
		if err := s.local.Delete(localstore.KeyPendingSelection); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	if sel.TeacherID != teacherID {
		return nil, false, nil
	}

	if err := s.local.Delete(localstore.KeyPendingSelection); err != nil {
		return nil, false, err
	}
	return sel.Items, true, nil
}
