package service

import "regexp"

// The three preprocessing substitutions spec.md §4.1 documents as
// deliberate quirks carried over from the source implementation rather
// than "fixed": CRLF/CR become four spaces (not a single "\n"), form
// feeds are dropped, and tabs become newlines. Reimplementers are asked
// not to normalize these away — see spec.md §9.
var (
	crNewlineRe = regexp.MustCompile(`\r\n?`)
	formFeedRe  = regexp.MustCompile(`\f`)
	tabRe       = regexp.MustCompile(`\t`)
)

// Preprocess normalizes source whitespace before the parse engine sees
// it. It is idempotent: Preprocess(Preprocess(s)) == Preprocess(s),
// because none of its three substitutions introduce a byte any of the
// three patterns would match again.
func Preprocess(source string) string {
	source = crNewlineRe.ReplaceAllString(source, "    ")
	source = formFeedRe.ReplaceAllString(source, "")
	source = tabRe.ReplaceAllString(source, "\n")
	return source
}
