package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shoplane/searchd/internal/domain"
	"github.com/shoplane/searchd/internal/domain/search/intent"
	"github.com/shoplane/searchd/internal/logger"
	"github.com/shoplane/searchd/internal/metrics"
)

// searchKeyword ranks products by full-text relevance. The backend's native
// text search is the primary path; when it is missing or errors, a manual
// token-overlap scorer takes over. Fetches 2x limit candidates to leave room
// for intent re-filtering.
func (s *Service) searchKeyword(
	ctx context.Context, query string, limit int, category string,
) ([]domain.Product, error) {
	it := intent.Parse(query)
	text := searchText(query, intent.Clean(query))

	products, err := s.repo.FindByTextSearch(ctx, text, category, 2*limit)
	if err != nil {
		logger.FromContext(ctx).Debug("full-text search unavailable, using basic scorer",
			zap.Error(err))
		metrics.SearchFallbacksTotal.WithLabelValues("fulltext", "basic").Inc()

		products, err = s.basicSearch(ctx, text, category)
		if err != nil {
			return nil, fmt.Errorf("keyword search: %w", err)
		}
	}

	products = s.applyIntent(products, it)

	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

// basicSearch is the last-resort scorer: token overlap against every
// candidate, zero-score candidates excluded.
func (s *Service) basicSearch(
	ctx context.Context, query, category string,
) ([]domain.Product, error) {
	candidates, err := s.repo.FindAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	scored := make([]scoredProduct, 0, len(candidates))
	for _, p := range candidates {
		score := overlapScore(&p, tokens)
		if score == 0 {
			continue
		}
		scored = append(scored, scoredProduct{product: p, score: score})
	}

	sortByScore(scored)
	return unwrapScored(scored), nil
}
