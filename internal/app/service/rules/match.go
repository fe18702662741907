// Package rules holds the default rule table: one file per concern,
// each exposing a `New<Name>Rule()` constructor the registry assembles
// in BuildDefaultRules. Every rule here is grounded directly in
// spec.md §4.4's rule-by-rule contracts and §6's regex table.
package rules

import (
	"regexp"

	"github.com/dlclark/regexp2"

	"github.com/rulemd/rulemd/internal/domain/value"
)

// blockRegex matches only in block mode (spec.md §4.4's block_regex).
func blockRegex(re *regexp.Regexp) func(source string, state *value.State) []int {
	return func(source string, state *value.State) []int {
		if state.Inline {
			return nil
		}
		return re.FindStringSubmatchIndex(source)
	}
}

// inlineRegex matches only in inline mode (spec.md §4.4's inline_regex).
func inlineRegex(re *regexp.Regexp) func(source string, state *value.State) []int {
	return func(source string, state *value.State) []int {
		if !state.Inline {
			return nil
		}
		return re.FindStringSubmatchIndex(source)
	}
}

// anyScopeRegex matches regardless of mode (spec.md §4.4's any_scope_regex).
func anyScopeRegex(re *regexp.Regexp) func(source string, state *value.State) []int {
	return func(source string, state *value.State) []int {
		return re.FindStringSubmatchIndex(source)
	}
}

// regexp2MustCompile compiles a .NET-syntax pattern. A handful of
// rule regexes in spec.md §6 rely on backreferences (inlineCode's \1)
// or lookaround ((?=...), (?!...): strong/u/del/em/text/the link inner
// pattern) that Go's RE2-based stdlib regexp package cannot express;
// regexp2 is the ecosystem library the retrieved manifests reach for
// whenever a pattern needs either feature.
func regexp2MustCompile(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		panic(err)
	}
	return re
}

// blockRegex2/inlineRegex2/anyScopeRegex2 are the regexp2 counterparts
// of blockRegex/inlineRegex/anyScopeRegex above, returning a Capture
// directly since regexp2's Match API differs from stdlib regexp's.
func blockRegex2(re *regexp2.Regexp) func(source string, state *value.State) *value.Capture {
	return func(source string, state *value.State) *value.Capture {
		if state.Inline {
			return nil
		}
		return captureFromRegexp2(re, source)
	}
}

func inlineRegex2(re *regexp2.Regexp) func(source string, state *value.State) *value.Capture {
	return func(source string, state *value.State) *value.Capture {
		if !state.Inline {
			return nil
		}
		return captureFromRegexp2(re, source)
	}
}

func anyScopeRegex2(re *regexp2.Regexp) func(source string, state *value.State) *value.Capture {
	return func(source string, state *value.State) *value.Capture {
		return captureFromRegexp2(re, source)
	}
}

// captureFromRegexp2 runs re against source and converts a leftmost
// match anchored at position 0 into a Capture; any match not starting
// at 0 is treated as no match, same policy as captureFrom.
func captureFromRegexp2(re *regexp2.Regexp, source string) *value.Capture {
	m, err := re.FindStringMatch(source)
	if err != nil || m == nil || m.Index != 0 {
		return nil
	}
	groups := m.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			out[i] = ""
			continue
		}
		out[i] = g.String()
	}
	return &value.Capture{Groups: out, Offset: 0}
}

// findAllMatches replicates Python's re.finditer: every non-overlapping
// match of re across source, in order, returned as full-match text. Used
// by the list rule to split a block into its items.
func findAllMatches(re *regexp2.Regexp, source string) []string {
	var out []string
	m, err := re.FindStringMatch(source)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	return out
}

// captureFrom turns a regexp submatch-index slice (as returned by
// FindStringSubmatchIndex, which Go anchors by searching, not forcing ^)
// into a Capture. It returns nil unless the match begins at position 0 —
// every regex in this package starts with ^ so a non-zero start can only
// happen for patterns that lack it (which would be a programmer error);
// returning nil here instead of an off-zero Capture routes such a bug
// through "no rule matched", a fatal but at least not silently-wrong error.
func captureFrom(source string, loc []int) *value.Capture {
	if loc == nil || loc[0] != 0 {
		return nil
	}
	groups := make([]string, len(loc)/2)
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 || end < 0 {
			groups[i] = ""
			continue
		}
		groups[i] = source[start:end]
	}
	return &value.Capture{Groups: groups, Offset: 0}
}
