package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoplane/searchd/internal/domain"
	healthuc "github.com/shoplane/searchd/internal/usecase/health"
	searchuc "github.com/shoplane/searchd/internal/usecase/search"
)

type stubRepo struct {
	products []domain.Product
	textErr  error
}

func (s *stubRepo) FindAll(context.Context, string) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubRepo) FindByTextSearch(
	context.Context, string, string, int,
) ([]domain.Product, error) {
	if s.textErr != nil {
		return nil, s.textErr
	}
	return s.products, nil
}

type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) Embed(context.Context, string) (domain.EmbeddingResult, error) {
	if s.err != nil {
		return domain.EmbeddingResult{}, s.err
	}
	return domain.EmbeddingResult{Embedding: s.vec}, nil
}

type stubPinger struct{ err error }

func (s *stubPinger) Ping(context.Context) error { return s.err }

func newTestServer(t *testing.T, repo *stubRepo, emb *stubEmbedder, dbErr error) http.Handler {
	t.Helper()
	search := searchuc.New(repo, emb)
	health := healthuc.New(&stubPinger{err: dbErr}, nil)

	r := chi.NewRouter()
	NewServer(search, health, zap.NewNop()).Routes(r)
	return r
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleSearch(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{
		{ID: "p1", Title: "Standing Desk", Price: 499, Embedding: []float32{1, 0}},
	}}
	h := newTestServer(t, repo, &stubEmbedder{vec: []float32{1, 0}}, nil)

	rec := doGet(t, h, "/search?q=desk&mode=semantic")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var body struct {
		Query    string `json:"query"`
		Count    int    `json:"count"`
		Products []struct {
			ID        string    `json:"id"`
			Title     string    `json:"title"`
			Price     float64   `json:"price"`
			Embedding []float32 `json:"embedding"`
		} `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Query != "desk" || body.Count != 1 {
		t.Errorf("query/count = %q/%d", body.Query, body.Count)
	}
	if len(body.Products) != 1 || body.Products[0].ID != "p1" {
		t.Fatalf("products = %+v", body.Products)
	}
	if body.Products[0].Embedding != nil {
		t.Error("embedding must not be serialized")
	}
}

func TestHandleSearch_MissingQuery(t *testing.T) {
	h := newTestServer(t, &stubRepo{}, &stubEmbedder{}, nil)

	rec := doGet(t, h, "/search")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "validation_failed" {
		t.Errorf("code = %q", body.Code)
	}
}

func TestHandleSearch_BadParams(t *testing.T) {
	h := newTestServer(t, &stubRepo{}, &stubEmbedder{}, nil)

	for _, target := range []string{
		"/search?q=desk&limit=abc",
		"/search?q=desk&mode=psychic",
	} {
		if rec := doGet(t, h, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestHandleSearch_DegradedBackendStillResponds(t *testing.T) {
	// Embedder down and no text index: the engine degrades instead of
	// surfacing a 5xx.
	repo := &stubRepo{
		products: []domain.Product{{ID: "p1", Title: "Desk"}},
		textErr:  errors.New("no index"),
	}
	h := newTestServer(t, repo, &stubEmbedder{err: errors.New("provider down")}, nil)

	rec := doGet(t, h, "/search?q=desk")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (degrade, not fail)", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	h := newTestServer(t, &stubRepo{}, &stubEmbedder{}, nil)

	rec := doGet(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
}

func TestHandleHealth_Degraded(t *testing.T) {
	h := newTestServer(t, &stubRepo{}, &stubEmbedder{}, errors.New("db down"))

	rec := doGet(t, h, "/healthz")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
