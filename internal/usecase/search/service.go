// Package search implements the product ranking engine: semantic, keyword
// and hybrid scoring with intent-aware re-filtering and a strict
// degrade-not-fail policy.
package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/shoplane/searchd/internal/domain"
	"github.com/shoplane/searchd/internal/domain/search/mode"
	"github.com/shoplane/searchd/internal/domain/search/request"
	"github.com/shoplane/searchd/internal/logger"
	"github.com/shoplane/searchd/internal/metrics"
)

// Service ranks products across semantic, keyword, and hybrid modes.
type Service struct {
	repo   Repository
	embed  Embedder
	params Params
}

// New creates a search service with default ranking parameters.
func New(repo Repository, embed Embedder) *Service {
	return &Service{repo: repo, embed: embed, params: DefaultParams()}
}

// WithParams overrides the ranking parameters.
func (s *Service) WithParams(p Params) *Service {
	s.params = p
	return s
}

// Response is the search envelope returned to the transport.
type Response struct {
	Query    string
	Products []domain.Product
	Count    int
}

// Search executes a product search. It never fails: every error inside the
// pipeline degrades to a cheaper strategy, and a query that cannot be ranked
// at all yields an empty product list.
func (s *Service) Search(ctx context.Context, req *request.Request) Response {
	metrics.SearchesTotal.WithLabelValues(string(req.Mode())).Inc()

	var products []domain.Product
	var err error

	switch req.Mode() {
	case mode.Semantic:
		products, err = s.searchSemantic(ctx, req.Query(), req.Limit(), req.Category())
	case mode.Keyword:
		products, err = s.searchKeyword(ctx, req.Query(), req.Limit(), req.Category())
	default:
		products, err = s.searchHybrid(ctx, req.Query(), req.Limit(), req.Category())
	}

	if err != nil {
		logger.FromContext(ctx).Warn("search degraded to empty result",
			zap.String("mode", string(req.Mode())),
			zap.String("category", req.Category()),
			zap.Error(err),
		)
		products = nil
	}

	if len(products) > req.Limit() {
		products = products[:req.Limit()]
	}

	metrics.SearchResultCount.WithLabelValues(string(req.Mode())).Observe(float64(len(products)))

	return Response{Query: req.Query(), Products: products, Count: len(products)}
}

// searchText returns the cleaned query, or the raw query when cleaning
// stripped everything away.
func searchText(rawQuery, cleaned string) string {
	if cleaned == "" {
		return rawQuery
	}
	return cleaned
}
