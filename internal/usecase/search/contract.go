package search

import (
	"context"

	"github.com/shoplane/searchd/internal/domain"
)

// Repository defines the read-only catalog contract for search operations.
type Repository interface {
	// FindAll returns candidate products, optionally restricted to one
	// category ("" means no restriction).
	FindAll(ctx context.Context, category string) ([]domain.Product, error)

	// FindByTextSearch returns up to limit products matching the query via
	// the backend's native full-text search, ordered by relevance.
	FindByTextSearch(ctx context.Context, query, category string, limit int) ([]domain.Product, error)
}

// Embedder vectorizes text into embeddings. An error or an empty vector both
// mean the provider is unavailable.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
