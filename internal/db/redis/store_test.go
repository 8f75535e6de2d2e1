package redis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shoplane/searchd/internal/db"
)

func TestBuildTextQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     string
	}{
		{
			name:  "single term",
			query: "laptop",
			want:  "(laptop)",
		},
		{
			name:  "terms are escaped independently",
			query: "usb-c hub",
			want:  `(usb\-c hub)`,
		},
		{
			name:     "category tag prepended",
			query:    "laptop",
			category: "electronics",
			want:     "@category:{electronics} (laptop)",
		},
		{
			name:     "category is escaped",
			query:    "chair",
			category: "home|garden",
			want:     `@category:{home\|garden} (chair)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildTextQuery(tt.query, tt.category); got != tt.want {
				t.Errorf("buildTextQuery(%q, %q) = %q, want %q",
					tt.query, tt.category, got, tt.want)
			}
		})
	}
}

func TestEscapeQuery(t *testing.T) {
	in := `@{}()|-~*[]!%^$<>+=:;,?/&#`
	got := escapeQuery(in)
	for _, c := range in {
		if !strings.Contains(got, `\`+string(c)) {
			t.Errorf("%q not escaped in %q", string(c), got)
		}
	}

	// Plain terms pass through untouched.
	if got := escapeQuery("laptop"); got != "laptop" {
		t.Errorf("escapeQuery(laptop) = %q", got)
	}
}

func TestBuildCreateArgs(t *testing.T) {
	def := &db.IndexDefinition{
		Name:     "idx",
		Prefixes: []string{"product:"},
		Fields: []db.IndexField{
			{Name: "title", Type: db.IndexFieldText, Weight: 2},
			{Name: "category", Type: db.IndexFieldTag},
			{Name: "price", Type: db.IndexFieldNumeric},
		},
	}

	got, err := buildCreateArgs(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"idx", "ON", "HASH",
		"PREFIX", "1", "product:",
		"SCHEMA",
		"title", "TEXT", "WEIGHT", "2",
		"category", "TAG",
		"price", "NUMERIC",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestBuildCreateArgs_Validation(t *testing.T) {
	if _, err := buildCreateArgs(&db.IndexDefinition{}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := buildCreateArgs(&db.IndexDefinition{Name: "idx"}); err == nil {
		t.Error("expected error for empty schema")
	}
	_, err := buildCreateArgs(&db.IndexDefinition{
		Name:   "idx",
		Fields: []db.IndexField{{Name: "x", Type: db.IndexFieldType(99)}},
	})
	if err == nil {
		t.Error("expected error for unknown field type")
	}
}

func TestBuildFieldArgs_TextWithoutWeight(t *testing.T) {
	got, err := buildFieldArgs(&db.IndexField{Name: "description", Type: db.IndexFieldText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"description", "TEXT"}; !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"Unknown Index name", "unknown index name", true},
		{"ERR no such index", "no such index", true},
		{"Index Already Exists", "index already exists", true},
		{"connection refused", "no such index", false},
		{"short", "much longer needle", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := containsIgnoreCase(tt.s, tt.substr); got != tt.want {
			t.Errorf("containsIgnoreCase(%q, %q) = %v, want %v",
				tt.s, tt.substr, got, tt.want)
		}
	}
}
