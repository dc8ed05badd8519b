package match

import (
	"qa-chat/internal/corpus"
)

// Candidate is a corpus entry scored against one input.
type Candidate struct {
	Entry corpus.Entry
	// Index is the entry's position in corpus order.
	Index int

	// Key is the normalized question the input was compared against.
	Key        string
	Distance   int
	Similarity float64 // Normalized Levenshtein similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by distance ascending, then by corpus order, so the first candidate
// is the entry Match selects.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Distance != c[j].Distance {
		return c[i].Distance < c[j].Distance
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates share the best distance,
// i.e. the winner was decided by corpus order alone.
func (c CandidateList) IsAmbiguous() bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Distance == c[1].Distance
}

// WithinThreshold returns candidates whose distance does not exceed threshold.
func (c CandidateList) WithinThreshold(threshold int) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Distance <= threshold {
			result = append(result, cand)
		}
	}

	return result
}
