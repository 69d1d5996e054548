package morse

import "testing"

func TestLookupKnownPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		want    rune
	}{
		{".", 'e'},
		{"-", 't'},
		{"..", 'i'},
		{".-", 'a'},
		{"...", 's'},
		{"---", 'o'},
		{"-----", '0'},
		{".----", '1'},
		{".....", '5'},
		{"..--..", '?'},
		{".-.-.-", '.'},
	}

	for _, tt := range tests {
		got, ok := Lookup(tt.pattern)
		if !ok {
			t.Errorf("Lookup(%q): expected a match", tt.pattern)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q): got %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestLookupUnknownPatterns(t *testing.T) {
	for _, pattern := range []string{"", "......", "..--.", ".----.----", "x"} {
		if got, ok := Lookup(pattern); ok {
			t.Errorf("Lookup(%q): expected no match, got %q", pattern, got)
		}
	}
}

func TestPatternsWithinBound(t *testing.T) {
	// Six symbols is the decoder's per-character bound; longer entries
	// would be unreachable.
	for pattern := range table {
		if len(pattern) == 0 || len(pattern) > 6 {
			t.Errorf("pattern %q: length %d out of range", pattern, len(pattern))
		}
		for _, c := range pattern {
			if c != '.' && c != '-' {
				t.Errorf("pattern %q: unexpected symbol %q", pattern, c)
			}
		}
	}
}

func TestTableCoversAlphanumerics(t *testing.T) {
	seen := make(map[rune]bool, len(table))
	for _, r := range table {
		if seen[r] {
			t.Errorf("character %q mapped by more than one pattern", r)
		}
		seen[r] = true
	}

	for r := 'a'; r <= 'z'; r++ {
		if !seen[r] {
			t.Errorf("missing letter %q", r)
		}
	}
	for r := '0'; r <= '9'; r++ {
		if !seen[r] {
			t.Errorf("missing digit %q", r)
		}
	}
}
