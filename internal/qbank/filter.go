package qbank

import (
	"github.com/sahilm/fuzzy"
)

// Criteria is the picker's client-side filter. A zero catalog ref means
// "any". OwnerID is always applied: the picker only ever shows the
// signed-in teacher's own questions.
type Criteria struct {
	Text         string
	TopicID      int
	LevelID      int
	DifficultyID int
	TypeID       int
	OwnerID      int
}

// Filter applies the picker's filter rules: ownership across all
// recognized field shapes, archived questions always excluded, exact
// match on any combination of the four catalog refs, and fuzzy free-text
// match against the question text and its topic name. Order is preserved.
func Filter(questions []Question, topics []CatalogEntry, c Criteria) []Question {
	topicNames := make(map[int]string, len(topics))
	for _, t := range topics {
		topicNames[t.ID] = t.Name
	}

	var candidates []Question
	for _, q := range questions {
		if q.Status == StatusArchived {
			continue
		}
		if q.OwnerID() != c.OwnerID {
			continue
		}
		if c.TopicID != 0 && q.TopicID != c.TopicID {
			continue
		}
		if c.LevelID != 0 && q.LevelID != c.LevelID {
			continue
		}
		if c.DifficultyID != 0 && q.DifficultyID != c.DifficultyID {
			continue
		}
		if c.TypeID != 0 && q.TypeID != c.TypeID {
			continue
		}
		candidates = append(candidates, q)
	}

	if c.Text == "" {
		return candidates
	}

	targets := make([]string, len(candidates))
	for i, q := range candidates {
		targets[i] = q.Text + " " + topicNames[q.TopicID]
	}

	matches := fuzzy.Find(c.Text, targets)
	matched := make(map[int]bool, len(matches))
	for _, m := range matches {
		matched[m.Index] = true
	}

	var out []Question
	for i, q := range candidates {
		if matched[i] {
			out = append(out, q)
		}
	}
	return out
}

// Selection is a de-duplicated, order-preserving set of picked questions.
type Selection struct {
	order []int
	texts map[int]string
}

// NewSelection returns an empty Selection.
func NewSelection() *Selection {
	return &Selection{texts: make(map[int]string)}
}

// Add picks a question. Adding an already-picked id is a no-op, so the
// set stays free of duplicates and keeps first-seen order.
func (s *Selection) Add(q Question) {
	if _, ok := s.texts[q.ID]; ok {
		return
	}
	s.order = append(s.order, q.ID)
	s.texts[q.ID] = q.Text
}

// Remove unpicks a question id. Unknown ids are ignored.
func (s *Selection) Remove(id int) {
	if _, ok := s.texts[id]; !ok {
		return
	}
	delete(s.texts, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle adds the question if absent, removes it if present.
func (s *Selection) Toggle(q Question) {
	if s.Has(q.ID) {
		s.Remove(q.ID)
		return
	}
	s.Add(q)
}

// Has reports whether the id is picked.
func (s *Selection) Has(id int) bool {
	_, ok := s.texts[id]
	return ok
}

// Len returns the number of picked questions.
func (s *Selection) Len() int {
	return len(s.order)
}

// Picked is one confirmed {id, text} pair.
type Picked struct {
	ID   int
	Text string
}

// Items returns the picked pairs in pick order.
func (s *Selection) Items() []Picked {
	out := make([]Picked, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Picked{ID: id, Text: s.texts[id]})
	}
	return out
}
