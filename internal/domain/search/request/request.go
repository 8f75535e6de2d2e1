package request

import (
	"fmt"

	"github.com/shoplane/searchd/internal/domain/search/mode"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 1024
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Request is a validated search query.
type Request struct {
	query      string
	searchMode mode.Mode
	limit      int
	category   string
}

// New validates and normalizes search parameters.
// Defaults: mode=hybrid, limit=20. Limit is clamped to MaxLimit.
func New(query string, m mode.Mode, limit int, category string) (Request, error) {
	if query == "" {
		return Request{}, fmt.Errorf("query is required")
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if m == "" {
		m = mode.Hybrid
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("invalid search mode: %q", m)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Request{
		query:      query,
		searchMode: m,
		limit:      limit,
		category:   category,
	}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Mode returns the search strategy.
func (r *Request) Mode() mode.Mode { return r.searchMode }

// Limit returns the maximum results to return.
func (r *Request) Limit() int { return r.limit }

// Category returns the category filter; "" means no filter.
func (r *Request) Category() string { return r.category }
