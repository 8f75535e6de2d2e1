package search

import (
	"sort"

	"github.com/shoplane/searchd/internal/domain"
	"github.com/shoplane/searchd/internal/domain/search/intent"
)

// applyIntent re-filters and re-sorts a ranked result set according to the
// parsed intent. Price filtering only kicks in above two results so a small
// set is never filtered down to nothing; sorting applies regardless.
func (s *Service) applyIntent(products []domain.Product, it intent.Intent) []domain.Product {
	if len(products) > 2 {
		switch it.Price {
		case intent.PriceCheap:
			median := medianPrice(products)
			products = filterByPrice(products, func(price float64) bool {
				return price <= median*s.params.CheapCeiling
			})
		case intent.PriceExpensive:
			median := medianPrice(products)
			products = filterByPrice(products, func(price float64) bool {
				return price >= median*s.params.ExpensiveFloor
			})
		}
	}

	switch it.Sort {
	case intent.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case intent.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case intent.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case intent.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}

	return products
}

// medianPrice returns the median over the current result set; for an even
// count it averages the two middle prices.
func medianPrice(products []domain.Product) float64 {
	prices := make([]float64, len(products))
	for i, p := range products {
		prices[i] = p.Price
	}
	sort.Float64s(prices)

	mid := len(prices) / 2
	if len(prices)%2 == 0 {
		return (prices[mid-1] + prices[mid]) / 2
	}
	return prices[mid]
}

func filterByPrice(products []domain.Product, keep func(float64) bool) []domain.Product {
	out := products[:0]
	for _, p := range products {
		if keep(p.Price) {
			out = append(out, p)
		}
	}
	return out
}
