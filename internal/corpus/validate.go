package corpus

import (
	"fmt"
	"strings"
	"unicode"

	"qa-chat/internal/diagnostic"
)

// KeyFunc maps a question to the key the matcher compares input against.
type KeyFunc func(question string) string

// Validate checks a corpus for entries that are broken or can never be
// selected. key is the matcher's normalizer; when nil only structural checks run.
func Validate(c *Corpus, key KeyFunc) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if c.Len() == 0 {
		res.AddWarning("empty_corpus", "corpus has no entries; every query gets the fallback answer", "", 0)
		return res
	}

	seen := make(map[string]Entry, c.Len())

	for _, e := range c.entries {
		if strings.TrimSpace(e.Answer) == "" {
			res.AddError("empty_answer", "answer is blank", e.Question, e.Line)
		}

		if key == nil {
			continue
		}

		k := key(e.Question)
		if k == "" {
			res.AddWarning("empty_key", "question has no word characters left after normalization", e.Question, e.Line)
		}

		if first, ok := seen[k]; ok {
			res.AddWarning("shadowed_question",
				fmt.Sprintf("normalizes to %q like %q and can never be selected", k, first.Question),
				e.Question, e.Line)
		} else {
			seen[k] = e
		}

		if countAlnum(k) < countAlnum(e.Question) {
			res.AddInfo("dropped_characters",
				fmt.Sprintf("only %q is compared; other letters and digits are ignored", k),
				e.Question, e.Line)
		}
	}

	return res
}

func countAlnum(s string) int {
	n := 0

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}

	return n
}
