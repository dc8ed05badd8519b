package match

import (
	"testing"
	"unicode/utf8"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion
		{"ab", "abc", 1}, // insertion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"algorithm", "altruistic", 6},

		// Case-sensitive
		{"ABC", "abc", 3},
		{"Hello", "hello", 1},

		// Whitespace counts like any other rune
		{"hi  there", "hi there", 1},

		// Chat-style inputs
		{"hello", "hellx", 1},
		{"hello", "xxllo", 2},
		{"hello", "hexxx", 3},
		{"hello", "hxxxx", 4},
		{"how are you", "who are you", 2},

		// Runes, not bytes
		{"café", "cafe", 1},
		{"नमस्ते", "नमस्कार", 3},
		{"", "नमस्ते", 6},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestLevenshtein_Properties(t *testing.T) {
	samples := []string{"", "a", "hello", "what is your name", "नमस्ते", "hi  there"}

	for _, s := range samples {
		if d := Levenshtein(s, s); d != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", s, s, d)
		}

		n := utf8.RuneCountInString(s)
		if d := Levenshtein("", s); d != n {
			t.Errorf("Levenshtein(\"\", %q) = %d, want %d", s, d, n)
		}

		if d := Levenshtein(s, ""); d != n {
			t.Errorf("Levenshtein(%q, \"\") = %d, want %d", s, d, n)
		}
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		// Identical strings
		{"", "", 1.0},
		{"hello", "hello", 1.0},

		// Completely different
		{"abc", "xyz", 0.0},
		{"", "abc", 0.0},
		{"é", "e", 0.0},

		// Partial matches
		{"kitten", "sitting", 1.0 - 3.0/7.0}, // ~0.571
		{"abc", "ab", 1.0 - 1.0/3.0},         // ~0.667
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			// Allow small floating point tolerance
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

// Benchmark tests
func BenchmarkLevenshtein(b *testing.B) {
	a := "algorithm"
	bStr := "altruistic"
	for i := 0; i < b.N; i++ {
		Levenshtein(a, bStr)
	}
}

func BenchmarkLevenshtein_ChatLength(b *testing.B) {
	a := "what is the meaning of dharma in the gita"
	bStr := "what is the meaning of karma"
	for i := 0; i < b.N; i++ {
		Levenshtein(a, bStr)
	}
}
