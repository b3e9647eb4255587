package student

import (
	"context"
	"net/http"
	"testing"

	"github.com/aula-dev/aula/internal/api"
	"github.com/aula-dev/aula/internal/testutil"
)

func newTestService(t *testing.T, b *testutil.Backend) *Service {
	t.Helper()
	return NewService(api.New(b.URL(), 0, nil))
}

func TestProfile(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/usuario/alumno", http.StatusOK,
		`{"id": 3, "nombre": "Ana", "apellido": "Diaz", "email": "ana@example.edu"}`)

	svc := newTestService(t, b)
	p, err := svc.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if p.ID != 3 || p.Name != "Ana" || p.Email != "ana@example.edu" {
		t.Errorf("profile = %+v", p)
	}
}

func TestUpdateProfileValidates(t *testing.T) {
	b := testutil.NewBackend(t)
	svc := newTestService(t, b)

	err := svc.UpdateProfile(context.Background(), ProfileUpdate{Name: "", LastName: "D", Email: "x"})
	if err == nil {
		t.Fatal("invalid update accepted")
	}
	if n := b.Count("POST /usuario/alumno"); n != 0 {
		t.Errorf("invalid update reached the backend (%d requests)", n)
	}
}

func TestEnrollPatchesLocallyWithoutRefetch(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/usuario/alumno/curso/7", http.StatusOK, `{}`)

	svc := newTestService(t, b)
	courses := []Course{
		{ID: 5, Name: "Algebra"},
		{ID: 7, Name: "Historia"},
	}

	patched, err := svc.Enroll(context.Background(), courses, 7)
	if err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}

	if !patched[1].Enrolled {
		t.Error("enrolled course not patched")
	}
	if patched[0].Enrolled {
		t.Error("unrelated course patched")
	}
	if courses[1].Enrolled {
		t.Error("caller's slice mutated in place")
	}
	if n := b.Count("GET /usuario/alumno/cursos"); n != 0 {
		t.Errorf("Enroll re-fetched the course list (%d requests)", n)
	}
}

func TestEnrollFailureLeavesListUnchanged(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/usuario/alumno/curso/7", http.StatusConflict, `{"message": "ya inscrito"}`)

	svc := newTestService(t, b)
	courses := []Course{{ID: 7, Name: "Historia"}}

	patched, err := svc.Enroll(context.Background(), courses, 7)
	if err == nil {
		t.Fatal("Enroll should have failed")
	}
	if patched[0].Enrolled {
		t.Error("failed enrollment still patched the list")
	}
}
