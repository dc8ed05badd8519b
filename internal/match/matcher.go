package match

import (
	"math"
	"sort"
	"strings"

	"qa-chat/internal/corpus"
)

const (
	// DefaultThreshold is the largest edit distance still accepted as a match.
	DefaultThreshold = 3
	// DefaultMaxInputRunes bounds the O(m*n) distance work per query.
	DefaultMaxInputRunes = 512
	// DefaultFallback is answered when no question is close enough.
	DefaultFallback = "क्षम्यताम्। मम कृते तस्य प्रश्नस्य उत्तरं उपलब्धं नास्ति। कृपया अन्यथा पृच्छतु।"
)

// Result is the outcome of a single query.
type Result struct {
	// Answer is the matched answer or the fallback text.
	Answer string `json:"answer"`
	// Question is the closest corpus question, empty for an empty corpus.
	Question string `json:"question,omitempty"`
	// Distance is the edit distance to Question, -1 for an empty corpus.
	Distance   int     `json:"distance"`
	Similarity float64 `json:"similarity"`
	Outcome    Outcome `json:"outcome"`
	// Truncated is set when the normalized input was cut to the configured maximum length.
	Truncated bool `json:"truncated,omitempty"`
}

// Matched returns true if the answer came from the corpus.
func (r Result) Matched() bool {
	return r.Outcome == OutcomeMatched
}

// Matcher selects answers from a corpus by edit distance.
// It is immutable after New and safe for concurrent use.
type Matcher struct {
	corpus        *corpus.Corpus
	keys          []string // normalized questions, in corpus order
	threshold     int
	fallback      string
	maxInputRunes int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold sets the largest accepted edit distance.
// A negative threshold makes every query fall back.
func WithThreshold(threshold int) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithFallback sets the answer used when nothing matches.
func WithFallback(fallback string) Option {
	return func(m *Matcher) {
		m.fallback = fallback
	}
}

// WithMaxInputRunes caps how much of the input is compared. Zero disables the cap.
func WithMaxInputRunes(n int) Option {
	return func(m *Matcher) {
		m.maxInputRunes = n
	}
}

// New creates a Matcher over c. Questions are normalized once here.
func New(c *corpus.Corpus, opts ...Option) *Matcher {
	m := &Matcher{
		corpus:        c,
		threshold:     DefaultThreshold,
		fallback:      DefaultFallback,
		maxInputRunes: DefaultMaxInputRunes,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.keys = make([]string, c.Len())
	for i := range m.keys {
		m.keys[i] = Normalize(c.Entry(i).Question)
	}

	return m
}

// Match answers input from the corpus with the given threshold and the default fallback.
func Match(input string, c *corpus.Corpus, threshold int) string {
	return New(c, WithThreshold(threshold)).Answer(input)
}

// Answer returns only the answer text for input.
func (m *Matcher) Answer(input string) string {
	return m.Match(input).Answer
}

// Match normalizes input, finds the closest corpus question and returns its
// answer if the distance is within the threshold, the fallback otherwise.
// When several questions are equally close the one earliest in the corpus wins.
func (m *Matcher) Match(input string) Result {
	query, truncated := m.prepare(input)

	if len(m.keys) == 0 {
		return Result{
			Answer:    m.fallback,
			Distance:  -1,
			Outcome:   OutcomeEmptyCorpus,
			Truncated: truncated,
		}
	}

	best, minDistance := -1, math.MaxInt

	for i, key := range m.keys {
		if d := Levenshtein(key, query); d < minDistance {
			best, minDistance = i, d
		}
	}

	entry := m.corpus.Entry(best)

	res := Result{
		Question:   entry.Question,
		Distance:   minDistance,
		Similarity: LevenshteinNormalized(m.keys[best], query),
		Truncated:  truncated,
	}

	if minDistance <= m.threshold {
		res.Answer = entry.Answer
		res.Outcome = OutcomeMatched
	} else {
		res.Answer = m.fallback
		res.Outcome = OutcomeFallback
	}

	return res
}

// Rank scores every corpus entry against input.
// Returns candidates sorted by distance, then corpus order.
func (m *Matcher) Rank(input string) CandidateList {
	query, _ := m.prepare(input)

	candidates := make(CandidateList, 0, len(m.keys))

	for i, key := range m.keys {
		candidates = append(candidates, Candidate{
			Entry:      m.corpus.Entry(i),
			Index:      i,
			Key:        key,
			Distance:   Levenshtein(key, query),
			Similarity: LevenshteinNormalized(key, query),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Threshold returns the largest accepted edit distance.
func (m *Matcher) Threshold() int { return m.threshold }

// Len returns the number of corpus entries.
func (m *Matcher) Len() int { return len(m.keys) }

// prepare normalizes input and caps the result, so characters removed by
// normalization never count toward the limit.
func (m *Matcher) prepare(input string) (string, bool) {
	query, truncated := truncateRunes(Normalize(input), m.maxInputRunes)
	if truncated {
		query = strings.TrimRightFunc(query, isSpace)
	}

	return query, truncated
}

// truncateRunes cuts s to at most n runes. n <= 0 means no limit.
func truncateRunes(s string, n int) (string, bool) {
	if n <= 0 || len(s) <= n {
		return s, false
	}

	count := 0

	for i := range s {
		if count == n {
			return s[:i], true
		}

		count++
	}

	return s, false
}
