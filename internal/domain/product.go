package domain

import "time"

// KeyPrefix namespaces every key searchd touches in the shared store.
const KeyPrefix = "shoplane:"

// Product is a read-only view of a catalog product. The catalog is owned by
// the platform write path; searchd only ranks what it finds in the store.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Category    string
	Tags        []string
	// Embedding is empty for products indexed before vectorization was
	// enabled. Such products still participate in search via keyword scoring.
	Embedding []float32
	CreatedAt time.Time
	// Rating is 0 when the product has no reviews yet.
	Rating float64
}

// SearchText returns the concatenated text a keyword match runs against.
func (p *Product) SearchText() string {
	text := p.Title + " " + p.Description
	for _, t := range p.Tags {
		text += " " + t
	}
	return text
}
