// Package diagnostic collects structured errors, warnings and notes produced
// while checking a question/answer corpus.
//
// Diagnostics are accumulated rather than returned one at a time so that a
// single check reports every problem in a corpus file:
//   - Errors make the corpus unusable (e.g. an entry without an answer)
//   - Warnings flag entries that load but can never be selected
//   - Infos explain normalization effects the author may not expect
package diagnostic
