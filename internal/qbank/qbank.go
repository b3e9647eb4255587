// Package qbank loads the teacher's question bank and its reference
// catalogs, and performs the client-side filtering behind the question
// picker. The backend owns the records; everything here is read-only
// view logic.
package qbank

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/aula-dev/aula/internal/api"
)

// CatalogEntry is one entry of a reference catalog (topic, cognitive
// level, difficulty, question type). All four catalogs share this shape.
type CatalogEntry struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

// Catalogs bundles the four reference catalogs the picker filters on.
type Catalogs struct {
	Topics       []CatalogEntry
	Levels       []CatalogEntry
	Difficulties []CatalogEntry
	Types        []CatalogEntry
}

// StatusArchived marks a question that must never appear in the picker.
const StatusArchived = "archivada"

// Question is a backend-owned question record. The owning-teacher
// reference appears in one of three shapes depending on which backend
// code path produced the record; OwnerID resolves them.
type Question struct {
	ID           int    `json:"id"`
	Text         string `json:"pregunta"` // markdown with math notation
	TopicID      int    `json:"tema_id"`
	LevelID      int    `json:"nivel_bloom_id"`
	DifficultyID int    `json:"dificultad_id"`
	TypeID       int    `json:"tipo_pregunta_id"`
	Status       string `json:"estado"`

	DocenteID *int `json:"docente_id"`
	IDDocente *int `json:"id_docente"`
	Docente   *struct {
		ID int `json:"id"`
	} `json:"docente"`
}

// OwnerID resolves the owning teacher's id across the recognized field
// shapes, checked in fixed order: docente_id, id_docente, docente.id.
// Returns 0 when no shape is present.
func (q *Question) OwnerID() int {
	if q.DocenteID != nil {
		return *q.DocenteID
	}
	if q.IDDocente != nil {
		return *q.IDDocente
	}
	if q.Docente != nil {
		return q.Docente.ID
	}
	return 0
}

// Service loads questions and catalogs through the API adapter.
type Service struct {
	api *api.Client
}

// NewService creates a question bank Service over the given API client.
func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Catalogs fetches all four reference catalogs with a fixed fan-out,
// waiting for every fetch before returning.
func (s *Service) Catalogs(ctx context.Context) (*Catalogs, error) {
	var c Catalogs
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.api.Get(ctx, "/temas", &c.Topics) })
	g.Go(func() error { return s.api.Get(ctx, "/nivel-blooms", &c.Levels) })
	g.Go(func() error { return s.api.Get(ctx, "/dificultades", &c.Difficulties) })
	g.Go(func() error { return s.api.Get(ctx, "/tipo-preguntas", &c.Types) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Questions fetches the question bank.
func (s *Service) Questions(ctx context.Context) ([]Question, error) {
	var qs []Question
	if err := s.api.Get(ctx, "/preguntas", &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// UploadImage uploads an image for rich-text question authoring and
// returns the URL the backend assigned to it.
func (s *Service) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	err := s.api.PostFile(ctx, "/docente/uploads/images", "imagen", filename, file, &resp)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}
