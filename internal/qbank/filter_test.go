package qbank

import (
	"testing"
)

func intp(n int) *int { return &n }

func ownQuestion(id int, text string, topic int) Question {
	return Question{ID: id, Text: text, TopicID: topic, Status: "activa", DocenteID: intp(42)}
}

var testTopics = []CatalogEntry{
	{ID: 1, Name: "Algebra lineal"},
	{ID: 2, Name: "Historia moderna"},
}

func TestFilterOwnershipAcrossShapes(t *testing.T) {
	questions := []Question{
		{ID: 1, Text: "a", Status: "activa", DocenteID: intp(42)},
		{ID: 2, Text: "b", Status: "activa", IDDocente: intp(42)},
		{ID: 3, Text: "c", Status: "activa", Docente: &struct {
			ID int `json:"id"`
		}{ID: 42}},
		{ID: 4, Text: "d", Status: "activa", DocenteID: intp(7)},
		{ID: 5, Text: "e", Status: "activa"}, // no owner field at all
	}

	got := Filter(questions, testTopics, Criteria{OwnerID: 42})
	if len(got) != 3 {
		t.Fatalf("Filter returned %d questions, want 3", len(got))
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].ID != want {
			t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestFilterExcludesArchivedRegardlessOfOwnership(t *testing.T) {
	questions := []Question{
		{ID: 1, Text: "live", Status: "activa", DocenteID: intp(42)},
		{ID: 2, Text: "gone", Status: StatusArchived, DocenteID: intp(42)},
	}

	got := Filter(questions, testTopics, Criteria{OwnerID: 42})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Filter = %+v, want only the active question", got)
	}
}

func TestFilterCatalogRefs(t *testing.T) {
	questions := []Question{
		{ID: 1, Status: "activa", DocenteID: intp(42), TopicID: 1, LevelID: 2, DifficultyID: 3, TypeID: 4},
		{ID: 2, Status: "activa", DocenteID: intp(42), TopicID: 1, LevelID: 9, DifficultyID: 3, TypeID: 4},
		{ID: 3, Status: "activa", DocenteID: intp(42), TopicID: 2, LevelID: 2, DifficultyID: 3, TypeID: 4},
	}

	tests := []struct {
		name string
		c    Criteria
		want []int
	}{
		{"no refs", Criteria{OwnerID: 42}, []int{1, 2, 3}},
		{"topic only", Criteria{OwnerID: 42, TopicID: 1}, []int{1, 2}},
		{"topic and level", Criteria{OwnerID: 42, TopicID: 1, LevelID: 2}, []int{1}},
		{"all four", Criteria{OwnerID: 42, TopicID: 2, LevelID: 2, DifficultyID: 3, TypeID: 4}, []int{3}},
		{"no match", Criteria{OwnerID: 42, TypeID: 99}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(questions, testTopics, tt.c)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter returned %d questions, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].ID != want {
					t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestFilterFreeTextMatchesQuestionText(t *testing.T) {
	questions := []Question{
		ownQuestion(1, "Resolver la matriz inversa", 1),
		ownQuestion(2, "Causas de la revolucion", 2),
	}

	got := Filter(questions, testTopics, Criteria{OwnerID: 42, Text: "matriz"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Filter = %+v, want question 1", got)
	}
}

func TestFilterFreeTextMatchesTopicName(t *testing.T) {
	questions := []Question{
		ownQuestion(1, "Pregunta generica", 1),
		ownQuestion(2, "Otra pregunta", 2),
	}

	// "Historia" only appears in the topic catalog, not in any question text.
	got := Filter(questions, testTopics, Criteria{OwnerID: 42, Text: "Historia"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Filter = %+v, want question 2 via its topic name", got)
	}
}

func TestSelectionDeduplicatesAndKeepsOrder(t *testing.T) {
	sel := NewSelection()
	sel.Add(ownQuestion(3, "c", 1))
	sel.Add(ownQuestion(1, "a", 1))
	sel.Add(ownQuestion(3, "c", 1)) // duplicate
	sel.Add(ownQuestion(2, "b", 1))

	if sel.Len() != 3 {
		t.Fatalf("Len = %d, want 3", sel.Len())
	}
	items := sel.Items()
	for i, want := range []int{3, 1, 2} {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %d, want %d", i, items[i].ID, want)
		}
	}
	if items[0].Text != "c" {
		t.Errorf("items[0].Text = %q, want %q", items[0].Text, "c")
	}
}

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection()
	q := ownQuestion(5, "x", 1)

	sel.Toggle(q)
	if !sel.Has(5) {
		t.Error("Toggle did not add")
	}
	sel.Toggle(q)
	if sel.Has(5) || sel.Len() != 0 {
		t.Error("Toggle did not remove")
	}
}

func TestSelectionRemoveUnknownIsNoop(t *testing.T) {
	sel := NewSelection()
	sel.Add(ownQuestion(1, "a", 1))
	sel.Remove(99)
	if sel.Len() != 1 {
		t.Errorf("Len = %d, want 1", sel.Len())
	}
}
