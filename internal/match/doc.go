// Package match answers free-text questions from a fixed corpus using
// approximate string matching.
//
// Key functions:
//   - Normalize: canonicalizes text before comparison
//   - Levenshtein: computes edit distance between strings
//   - Matcher.Match: selects the closest corpus question within a threshold
//   - Matcher.Rank: scores every corpus question for explanation output
package match
