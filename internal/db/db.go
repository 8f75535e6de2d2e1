package db

import (
	"context"
	"time"
)

// Store is the database facade searchd reads the catalog through.
// Consumers depend on the narrow sub-interfaces.
type Store interface {
	Pinger
	HashReader
	KVStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashReader provides read access to hash keys written by the catalog owner.
type HashReader interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// KVStore provides simple key-value operations (embedding cache).
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SupportsTextSearch(ctx context.Context) bool
}

// Searcher provides full-text search over FT indexes.
type Searcher interface {
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
}

// IndexFieldType enumerates supported FT index field types.
type IndexFieldType int

// Field type constants for FT.CREATE schemas.
const (
	// IndexFieldText is a full-text field participating in BM25 scoring.
	IndexFieldText IndexFieldType = iota
	// IndexFieldTag is an exact-match tag field.
	IndexFieldTag
	// IndexFieldNumeric is a numeric field.
	IndexFieldNumeric
)

// IndexField describes a single field in an FT index schema.
type IndexField struct {
	Name   string
	Type   IndexFieldType
	Weight float64 // TEXT weight; 0 means default
}

// IndexDefinition is a complete FT index definition used by FT.CREATE.
type IndexDefinition struct {
	Name     string
	Prefixes []string
	Fields   []IndexField
}

// TextQuery is the input for BM25 text search.
type TextQuery struct {
	IndexName string
	Query     string
	// Category restricts hits to one category tag; "" means no restriction.
	Category string
	Limit    int
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
