package search

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"go.uber.org/zap"

	"github.com/shoplane/searchd/internal/domain"
	"github.com/shoplane/searchd/internal/logger"
	"github.com/shoplane/searchd/internal/metrics"
)

// searchHybrid runs the semantic and keyword branches concurrently at 2x
// limit each, then fuses the two rankings by weighted rank position. A
// failure in either branch falls back to plain keyword search.
func (s *Service) searchHybrid(
	ctx context.Context, query string, limit int, category string,
) ([]domain.Product, error) {
	var semantic, keyword []domain.Product

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		semantic, err = s.searchSemantic(gctx, query, 2*limit, category)
		return err
	})
	g.Go(func() error {
		var err error
		keyword, err = s.searchKeyword(gctx, query, 2*limit, category)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Debug("hybrid branch failed, degrading to keyword search",
			zap.Error(err))
		metrics.SearchFallbacksTotal.WithLabelValues("hybrid", "keyword").Inc()
		return s.searchKeyword(ctx, query, limit, category)
	}

	return s.fuseRanked(semantic, keyword, limit), nil
}

// fuseRanked merges the two rankings by linear rank weight: the i-th of n
// semantic results weighs n-i; keyword-only hits weigh (m-i) * KeywordWeight;
// a hit present in both rankings additionally gains (m-i) * OverlapBoost as
// cross-confirmation.
func (s *Service) fuseRanked(semantic, keyword []domain.Product, limit int) []domain.Product {
	type fused struct {
		product domain.Product
		weight  float64
	}

	merged := make(map[string]*fused, len(semantic)+len(keyword))
	order := make([]*fused, 0, len(semantic)+len(keyword))

	for i, p := range semantic {
		w := float64(len(semantic) - i)
		if existing, ok := merged[p.ID]; ok {
			existing.weight += w
			continue
		}
		f := &fused{product: p, weight: w}
		merged[p.ID] = f
		order = append(order, f)
	}

	for i, p := range keyword {
		w := float64(len(keyword) - i)
		if existing, ok := merged[p.ID]; ok {
			existing.weight += w * s.params.OverlapBoost
			continue
		}
		f := &fused{product: p, weight: w * s.params.KeywordWeight}
		merged[p.ID] = f
		order = append(order, f)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].weight > order[j].weight
	})

	if len(order) > limit {
		order = order[:limit]
	}

	products := make([]domain.Product, len(order))
	for i, f := range order {
		products[i] = f.product
	}
	return products
}
