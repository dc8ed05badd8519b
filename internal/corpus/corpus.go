package corpus

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateQuestion is returned when two entries share the same question text.
	ErrDuplicateQuestion = errors.New("duplicate question")
	// ErrUnsupportedVersion is returned for corpus files with an unknown version.
	ErrUnsupportedVersion = errors.New("unsupported corpus version")
	// ErrInvalidPairs is returned when the pairs section has the wrong shape.
	ErrInvalidPairs = errors.New("invalid pairs")
)

// Entry is a single question and the answer returned for it.
type Entry struct {
	Question string
	Answer   string
	// Line is the 1-based line of the question in its source file, 0 if unknown.
	Line int
}

// Corpus is an immutable, ordered question/answer table.
type Corpus struct {
	entries []Entry
}

// New builds a corpus from entries, keeping their order.
// Question texts must be unique.
func New(entries ...Entry) (*Corpus, error) {
	c := &Corpus{entries: make([]Entry, 0, len(entries))}
	seen := make(map[string]int, len(entries))

	for _, e := range entries {
		if first, ok := seen[e.Question]; ok {
			return nil, fmt.Errorf("%w %q: %s and %s",
				ErrDuplicateQuestion, e.Question, position(c.entries[first], first), position(e, len(c.entries)))
		}

		seen[e.Question] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// MustNew is like New but panics on error. Intended for literal tables.
func MustNew(entries ...Entry) *Corpus {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}

	return c
}

func position(e Entry, index int) string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d", e.Line)
	}

	return fmt.Sprintf("entry %d", index+1)
}

// Len returns the number of entries. A nil corpus is empty.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}

// Entry returns the i-th entry in corpus order.
func (c *Corpus) Entry(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all entries in corpus order.
func (c *Corpus) Entries() []Entry {
	if c == nil {
		return nil
	}

	return slices.Clone(c.entries)
}
