// Package intent extracts soft filter and sort preferences from natural
// language cues in a search query ("cheapest laptop", "best new headphones").
package intent

import (
	"regexp"
	"strings"
)

// PriceFilter narrows results around the median price of the result set.
type PriceFilter string

// Price filter values.
const (
	PriceAny       PriceFilter = ""
	PriceCheap     PriceFilter = "cheap"
	PriceExpensive PriceFilter = "expensive"
)

// SortOrder re-sorts results after relevance ranking.
type SortOrder string

// Sort order values. SortRelevance keeps the scorer's ordering.
const (
	SortRelevance SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
	SortNewest    SortOrder = "newest"
)

// QualityFilter marks a preference for highly rated products.
type QualityFilter string

// Quality filter values.
const (
	QualityAny  QualityFilter = ""
	QualityBest QualityFilter = "best"
)

// Intent is the ephemeral interpretation of one query. A zero Intent means
// no re-sort and no filter.
type Intent struct {
	Price   PriceFilter
	Sort    SortOrder
	Quality QualityFilter
}

// IsZero reports whether the query carried no recognizable cues.
func (it Intent) IsZero() bool {
	return it == Intent{}
}

// Keyword cue sets. Longer variants come first so the alternation matches
// them before their prefixes ("cheapest" before "cheap").
var (
	cheapRe     = regexp.MustCompile(`(?i)\b(?:cheapest|cheap|affordable|budget|low price|inexpensive)\b`)
	expensiveRe = regexp.MustCompile(`(?i)\b(?:expensive|premium|luxury|high-end|costly)\b`)
	qualityRe   = regexp.MustCompile(`(?i)\b(?:highest rated|best|top|excellent|superior)\b`)
	recencyRe   = regexp.MustCompile(`(?i)\b(?:newest|new|latest|recent)\b`)

	allCuesRe = regexp.MustCompile(`(?i)\b(?:cheapest|cheap|affordable|budget|low price|inexpensive|` +
		`expensive|premium|luxury|high-end|costly|` +
		`highest rated|best|top|excellent|superior|` +
		`newest|new|latest|recent)\b`)
)

// Parse extracts an Intent from a raw query. Price cues are evaluated first,
// so their sort assignment wins over the quality/recency defaults: Sort is
// only ever set while still unset.
func Parse(rawQuery string) Intent {
	var it Intent

	switch {
	case cheapRe.MatchString(rawQuery):
		it.Price = PriceCheap
		if it.Sort == SortRelevance {
			it.Sort = SortPriceAsc
		}
	case expensiveRe.MatchString(rawQuery):
		it.Price = PriceExpensive
		if it.Sort == SortRelevance {
			it.Sort = SortPriceDesc
		}
	}

	if qualityRe.MatchString(rawQuery) {
		it.Quality = QualityBest
		if it.Sort == SortRelevance {
			it.Sort = SortRating
		}
	}
	if recencyRe.MatchString(rawQuery) {
		if it.Sort == SortRelevance {
			it.Sort = SortNewest
		}
	}

	return it
}

// Clean strips every intent cue from the query so that only the subject
// remains for embedding and keyword matching. Returns "" when the query was
// nothing but cues; the caller decides whether to substitute the raw query.
func Clean(rawQuery string) string {
	stripped := allCuesRe.ReplaceAllString(rawQuery, " ")
	return strings.Join(strings.Fields(stripped), " ")
}
