package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/shoplane/searchd/internal/domain"
	"github.com/shoplane/searchd/internal/domain/search/intent"
	"github.com/shoplane/searchd/internal/logger"
	"github.com/shoplane/searchd/internal/metrics"
)

// searchSemantic embeds the query and ranks candidates by cosine similarity.
// Semantic search is strictly best-effort: an unreachable embedding provider
// or a failed candidate fetch degrades to keyword search instead of failing.
func (s *Service) searchSemantic(
	ctx context.Context, query string, limit int, category string,
) ([]domain.Product, error) {
	it := intent.Parse(query)
	text := searchText(query, intent.Clean(query))

	emb, err := s.embed.Embed(ctx, text)
	if err != nil || len(emb.Embedding) == 0 {
		logger.FromContext(ctx).Debug("embedding unavailable, degrading to keyword search",
			zap.Error(err))
		metrics.SearchFallbacksTotal.WithLabelValues("semantic", "keyword").Inc()
		return s.searchKeyword(ctx, query, limit, category)
	}

	candidates, err := s.repo.FindAll(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Debug("candidate fetch failed, degrading to keyword search",
			zap.Error(err))
		metrics.SearchFallbacksTotal.WithLabelValues("semantic", "keyword").Inc()
		return s.searchKeyword(ctx, query, limit, category)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	tokens := tokenize(text)

	scored := make([]scoredProduct, 0, len(candidates))
	for _, p := range candidates {
		var score float64
		if len(p.Embedding) == 0 {
			// Legacy products without a stored vector compete on token
			// overlap instead of being excluded.
			score = overlapScore(&p, tokens)
		} else {
			score = cosineSimilarity(emb.Embedding, p.Embedding)
		}

		score += s.titleBoost(&p, tokens)
		if score > 1.0 {
			score = 1.0
		}
		if score <= s.params.ScoreFloor {
			continue
		}

		scored = append(scored, scoredProduct{product: p, score: score})
	}

	sortByScore(scored)

	products := s.applyIntent(unwrapScored(scored), it)
	products = dedupeByID(products)

	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}
