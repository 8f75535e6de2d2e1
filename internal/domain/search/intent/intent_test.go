package intent

import "testing"

func TestParse_PriceCues(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"cheap laptop", Intent{Price: PriceCheap, Sort: SortPriceAsc}},
		{"cheapest laptop", Intent{Price: PriceCheap, Sort: SortPriceAsc}},
		{"AFFORDABLE headphones", Intent{Price: PriceCheap, Sort: SortPriceAsc}},
		{"budget phone", Intent{Price: PriceCheap, Sort: SortPriceAsc}},
		{"low price monitor", Intent{Price: PriceCheap, Sort: SortPriceAsc}},
		{"inexpensive keyboard", Intent{Price: PriceCheap, Sort: SortPriceAsc}},
		{"expensive watch", Intent{Price: PriceExpensive, Sort: SortPriceDesc}},
		{"premium speakers", Intent{Price: PriceExpensive, Sort: SortPriceDesc}},
		{"luxury handbag", Intent{Price: PriceExpensive, Sort: SortPriceDesc}},
		{"high-end camera", Intent{Price: PriceExpensive, Sort: SortPriceDesc}},
		{"costly jewelry", Intent{Price: PriceExpensive, Sort: SortPriceDesc}},
	}

	for _, tc := range tests {
		got := Parse(tc.query)
		if got != tc.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.query, got, tc.want)
		}
	}
}

func TestParse_QualityAndRecency(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"best laptop", Intent{Quality: QualityBest, Sort: SortRating}},
		{"top rated blender", Intent{Quality: QualityBest, Sort: SortRating}},
		{"highest rated tv", Intent{Quality: QualityBest, Sort: SortRating}},
		{"excellent mattress", Intent{Quality: QualityBest, Sort: SortRating}},
		{"superior coffee maker", Intent{Quality: QualityBest, Sort: SortRating}},
		{"new phone", Intent{Sort: SortNewest}},
		{"newest phone", Intent{Sort: SortNewest}},
		{"latest releases", Intent{Sort: SortNewest}},
		{"recent arrivals", Intent{Sort: SortNewest}},
	}

	for _, tc := range tests {
		got := Parse(tc.query)
		if got != tc.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.query, got, tc.want)
		}
	}
}

func TestParse_PriceSortWinsOverQualityAndRecency(t *testing.T) {
	got := Parse("best cheap laptop")
	want := Intent{Price: PriceCheap, Quality: QualityBest, Sort: SortPriceAsc}
	if got != want {
		t.Errorf("Parse(best cheap laptop) = %+v, want %+v", got, want)
	}

	got = Parse("newest premium phone")
	want = Intent{Price: PriceExpensive, Sort: SortPriceDesc}
	if got != want {
		t.Errorf("Parse(newest premium phone) = %+v, want %+v", got, want)
	}
}

func TestParse_QualitySortWinsOverRecency(t *testing.T) {
	got := Parse("best new headphones")
	if got.Sort != SortRating {
		t.Errorf("Sort = %q, want %q", got.Sort, SortRating)
	}
	if got.Quality != QualityBest {
		t.Errorf("Quality = %q, want %q", got.Quality, QualityBest)
	}
}

func TestParse_NoCues(t *testing.T) {
	got := Parse("wireless mouse")
	if !got.IsZero() {
		t.Errorf("Parse(wireless mouse) = %+v, want zero intent", got)
	}
}

func TestParse_NoSubstringFalsePositives(t *testing.T) {
	// "cheap" inside "cheapskate" or "new" inside "newton" must not trigger.
	for _, q := range []string{"cheapskate memoir", "newton biography", "topology textbook"} {
		if got := Parse(q); !got.IsZero() {
			t.Errorf("Parse(%q) = %+v, want zero intent", q, got)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"cheapest laptop", "laptop"},
		{"best new wireless headphones", "wireless headphones"},
		{"low price gaming monitor", "gaming monitor"},
		{"LUXURY watch", "watch"},
		{"wireless mouse", "wireless mouse"},
		{"cheap   affordable   budget", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := Clean(tc.query); got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestClean_CollapsesWhitespace(t *testing.T) {
	got := Clean("cheap  red   shoes")
	if got != "red shoes" {
		t.Errorf("Clean = %q, want %q", got, "red shoes")
	}
}
