// Package httpapi exposes the search engine over a thin chi-routed REST
// surface. Handlers validate, delegate, and render; all ranking logic lives
// in the usecase layer.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoplane/searchd/internal/domain"
	"github.com/shoplane/searchd/internal/domain/search/mode"
	"github.com/shoplane/searchd/internal/domain/search/request"
	healthuc "github.com/shoplane/searchd/internal/usecase/health"
	searchuc "github.com/shoplane/searchd/internal/usecase/search"
)

// Server holds the HTTP handlers for the search API.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Routes mounts all handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.handleSearch)
	r.Get("/healthz", s.handleHealth)
}

// productJSON is the wire shape of a product. The embedding stays internal.
type productJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

type searchResponse struct {
	Query    string        `json:"query"`
	Products []productJSON `json:"products"`
	Count    int           `json:"count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleSearch handles GET /search?q=...&mode=...&limit=...&category=...
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "query parameter q is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "limit must be an integer")
			return
		}
		limit = n
	}

	req, err := request.New(
		q,
		mode.Mode(r.URL.Query().Get("mode")),
		limit,
		r.URL.Query().Get("category"),
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	resp := s.search.Search(r.Context(), &req)

	writeJSON(w, http.StatusOK, searchResponse{
		Query:    resp.Query,
		Products: productsToJSON(resp.Products),
		Count:    resp.Count,
	})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func productsToJSON(products []domain.Product) []productJSON {
	out := make([]productJSON, len(products))
	for i, p := range products {
		out[i] = productJSON{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Tags:        p.Tags,
			Rating:      p.Rating,
		}
		if !p.CreatedAt.IsZero() {
			out[i].CreatedAt = p.CreatedAt.Format(time.RFC3339)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
