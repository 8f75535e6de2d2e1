package search

import (
	"math"
	"sort"
	"strings"

	"github.com/shoplane/searchd/internal/domain"
)

// Token-overlap scoring contributions (per query token).
const (
	exactTitleScore   = 1.0
	partialTitleScore = 0.5
	anyFieldScore     = 0.2
)

// scoredProduct pairs a product with its relevance score while ranking.
type scoredProduct struct {
	product domain.Product
	score   float64
}

// sortByScore orders candidates by descending score, keeping the incoming
// order for ties.
func sortByScore(sp []scoredProduct) {
	sort.SliceStable(sp, func(i, j int) bool {
		return sp[i].score > sp[j].score
	})
}

func unwrapScored(sp []scoredProduct) []domain.Product {
	products := make([]domain.Product, len(sp))
	for i, s := range sp {
		products[i] = s.product
	}
	return products
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// It is exactly 0 for empty, mismatched-length, or zero-magnitude inputs,
// which covers dimension drift between differently-aged embeddings.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// tokenize lower-cases the query and keeps tokens longer than two characters.
func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// titleBoost adds a fixed bonus per query token literally contained in the title.
func (s *Service) titleBoost(p *domain.Product, tokens []string) float64 {
	title := strings.ToLower(p.Title)
	if title == "" {
		return 0
	}
	var boost float64
	for _, tok := range tokens {
		if strings.Contains(title, tok) {
			boost += s.params.TitleBoost
		}
	}
	return boost
}

// overlapScore accumulates manual token-overlap relevance: an exact title
// word match counts full, a partial title match counts half, and any match
// against the title+description+tags blob adds a small bonus. Scores are not
// normalized.
func overlapScore(p *domain.Product, tokens []string) float64 {
	title := strings.ToLower(p.Title)
	titleWords := strings.Fields(title)
	blob := strings.ToLower(p.SearchText())

	var score float64
	for _, tok := range tokens {
		switch {
		case containsWord(titleWords, tok):
			score += exactTitleScore
		case title != "" && (strings.Contains(title, tok) || strings.Contains(tok, title)):
			score += partialTitleScore
		}
		if blob != "" && (strings.Contains(blob, tok) || strings.Contains(tok, blob)) {
			score += anyFieldScore
		}
	}
	return score
}

func containsWord(words []string, tok string) bool {
	for _, w := range words {
		if w == tok {
			return true
		}
	}
	return false
}

// dedupeByID drops later occurrences of an already-seen product id,
// preserving order. The pipeline should not produce duplicates; this keeps
// the contract regardless.
func dedupeByID(products []domain.Product) []domain.Product {
	seen := make(map[string]struct{}, len(products))
	out := products[:0]
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
