package qbank

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/aula-dev/aula/internal/api"
	"github.com/aula-dev/aula/internal/testutil"
)

func TestCatalogsFanOut(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/temas", http.StatusOK, `[{"id": 1, "nombre": "Algebra"}]`)
	b.HandleJSON("/nivel-blooms", http.StatusOK, `[{"id": 1, "nombre": "Recordar"}, {"id": 2, "nombre": "Aplicar"}]`)
	b.HandleJSON("/dificultades", http.StatusOK, `[{"id": 1, "nombre": "Facil"}]`)
	b.HandleJSON("/tipo-preguntas", http.StatusOK, `[{"id": 1, "nombre": "Opcion multiple"}]`)

	svc := NewService(api.New(b.URL(), 0, nil))
	c, err := svc.Catalogs(context.Background())
	if err != nil {
		t.Fatalf("Catalogs failed: %v", err)
	}

	if len(c.Topics) != 1 || c.Topics[0].Name != "Algebra" {
		t.Errorf("Topics = %+v", c.Topics)
	}
	if len(c.Levels) != 2 {
		t.Errorf("Levels = %+v", c.Levels)
	}
	if len(c.Difficulties) != 1 || len(c.Types) != 1 {
		t.Errorf("Difficulties/Types = %+v / %+v", c.Difficulties, c.Types)
	}
}

func TestCatalogsFailsIfAnyFetchFails(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/temas", http.StatusOK, `[]`)
	b.HandleJSON("/nivel-blooms", http.StatusOK, `[]`)
	b.HandleJSON("/dificultades", http.StatusInternalServerError, `{}`)
	b.HandleJSON("/tipo-preguntas", http.StatusOK, `[]`)

	svc := NewService(api.New(b.URL(), 0, nil))
	if _, err := svc.Catalogs(context.Background()); err == nil {
		t.Error("Catalogs succeeded despite a failed fetch")
	}
}

func TestQuestionsDecodesOwnerShapes(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/preguntas", http.StatusOK, `[
		{"id": 1, "pregunta": "p1", "estado": "activa", "docente_id": 4},
		{"id": 2, "pregunta": "p2", "estado": "activa", "id_docente": 4},
		{"id": 3, "pregunta": "p3", "estado": "activa", "docente": {"id": 4}}
	]`)

	svc := NewService(api.New(b.URL(), 0, nil))
	qs, err := svc.Questions(context.Background())
	if err != nil {
		t.Fatalf("Questions failed: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}
	for i := range qs {
		if qs[i].OwnerID() != 4 {
			t.Errorf("question %d OwnerID = %d, want 4", qs[i].ID, qs[i].OwnerID())
		}
	}
}

func TestUploadImage(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/docente/uploads/images", http.StatusOK, `{"url": "/uploads/abc.png"}`)

	svc := NewService(api.New(b.URL(), 0, nil))
	url, err := svc.UploadImage(context.Background(), "abc.png", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}
	if url != "/uploads/abc.png" {
		t.Errorf("url = %q", url)
	}
}
