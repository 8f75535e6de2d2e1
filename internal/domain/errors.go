package domain

import "errors"

var (
	// ErrProductNotFound signals a missing product.
	ErrProductNotFound = errors.New("product not found")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrTextSearchNotSupported signals that the backend lacks full-text search.
	ErrTextSearchNotSupported = errors.New("text search not supported by backend")
)
