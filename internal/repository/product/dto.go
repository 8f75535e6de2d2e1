package product

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shoplane/searchd/internal/domain"
)

// Hash field names used by the platform write path.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldPrice       = "price"
	fieldCategory    = "category"
	fieldTags        = "tags"
	fieldRating      = "rating"
	fieldCreatedAt   = "created_at"
	fieldEmbedding   = "embedding"
)

// parseHashFields converts a flat product hash into a domain Product.
// Malformed numeric fields degrade to zero values rather than failing the
// whole result set.
func parseHashFields(id string, m map[string]string) domain.Product {
	p := domain.Product{
		ID:          id,
		Title:       m[fieldTitle],
		Description: m[fieldDescription],
		Category:    m[fieldCategory],
	}

	if v, err := strconv.ParseFloat(m[fieldPrice], 64); err == nil {
		p.Price = v
	}
	if v, err := strconv.ParseFloat(m[fieldRating], 64); err == nil {
		p.Rating = v
	}
	if v, err := strconv.ParseInt(m[fieldCreatedAt], 10, 64); err == nil {
		p.CreatedAt = time.Unix(v, 0).UTC()
	}
	if tags := m[fieldTags]; tags != "" {
		p.Tags = splitTags(tags)
	}
	if emb := m[fieldEmbedding]; emb != "" {
		p.Embedding = bytesToVector(emb)
	}

	return p
}

func splitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// bytesToVector deserializes a binary string back to []float32
// (4 bytes per float, little-endian). Truncated data yields nil so the
// product falls back to keyword scoring.
func bytesToVector(s string) []float32 {
	b := []byte(s)
	if len(b) == 0 || len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
