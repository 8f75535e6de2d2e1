// Package product reads the catalog the platform write path maintains in
// Redis and exposes it through the search usecase's repository contract.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shoplane/searchd/internal/db"
	"github.com/shoplane/searchd/internal/domain"
)

const (
	keyPrefix = domain.KeyPrefix + "product:"
	indexName = domain.KeyPrefix + "product_idx"
)

// store is the consumer interface for catalog reads.
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SupportsTextSearch(ctx context.Context) bool
}

// Repo implements the search usecase's Repository over Redis hashes.
type Repo struct {
	store store
}

// New creates a product repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// FindAll returns every product, optionally restricted to one category.
// Category filtering happens in-process: the candidate sets in a single
// marketplace category are small enough to rank in memory.
func (r *Repo) FindAll(ctx context.Context, category string) ([]domain.Product, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products := make([]domain.Product, 0, len(hashes))
	for i, fields := range hashes {
		if len(fields) == 0 {
			continue
		}
		p := parseHashFields(strings.TrimPrefix(keys[i], keyPrefix), fields)
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

// FindByTextSearch runs a BM25 full-text search over title, description and
// tags, ordered by the engine's relevance score.
func (r *Repo) FindByTextSearch(
	ctx context.Context, query, category string, limit int,
) ([]domain.Product, error) {
	if !r.store.SupportsTextSearch(ctx) {
		return nil, domain.ErrTextSearchNotSupported
	}

	sr, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName: indexName,
		Query:     query,
		Category:  category,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("text search: %w", err)
	}
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	products := make([]domain.Product, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, keyPrefix)
		products = append(products, parseHashFields(id, entry.Fields))
	}

	return products, nil
}

// EnsureIndex creates the full-text index when the backend supports it.
// Existing indexes are left untouched.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	if !r.store.SupportsTextSearch(ctx) {
		return domain.ErrTextSearchNotSupported
	}

	exists, err := r.store.IndexExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("probe index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:     indexName,
		Prefixes: []string{keyPrefix},
		Fields: []db.IndexField{
			{Name: fieldTitle, Type: db.IndexFieldText, Weight: 2},
			{Name: fieldDescription, Type: db.IndexFieldText},
			{Name: fieldTags, Type: db.IndexFieldText},
			{Name: fieldCategory, Type: db.IndexFieldTag},
			{Name: fieldPrice, Type: db.IndexFieldNumeric},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}
