package match

import "unicode/utf8"

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-rune edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
// Runes are compared exactly; callers normalize beforehand.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(len(a) * len(b)).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)

	if m == 0 {
		return n
	}

	if n == 0 {
		return m
	}

	// table[i*width+j] is the distance between ra[:i] and rb[:j].
	width := n + 1
	table := make([]int, (m+1)*width)

	for i := 0; i <= m; i++ {
		table[i*width] = i
	}

	for j := 0; j <= n; j++ {
		table[j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			table[i*width+j] = min(
				table[(i-1)*width+j]+1,      // deletion
				table[i*width+j-1]+1,        // insertion
				table[(i-1)*width+j-1]+cost, // substitution
			)
		}
	}

	return table[m*width+n]
}

// LevenshteinNormalized computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(runes(a), runes(b))).
func LevenshteinNormalized(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}

	distance := Levenshtein(a, b)

	return 1.0 - float64(distance)/float64(maxLen)
}
