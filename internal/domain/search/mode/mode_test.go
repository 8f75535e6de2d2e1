package mode

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		m    Mode
		want bool
	}{
		{Hybrid, true},
		{Semantic, true},
		{Keyword, true},
		{Mode(""), false},
		{Mode("fuzzy"), false},
	}

	for _, tc := range tests {
		if got := tc.m.IsValid(); got != tc.want {
			t.Errorf("Mode(%q).IsValid() = %v, want %v", tc.m, got, tc.want)
		}
	}
}
