// Package helpers holds the small set of pure string-sanitization
// utilities the rule table's renderers share: URL and text escaping,
// the HTML tag builder, and link-target unescaping (spec.md §6).
package helpers

import (
	"net/url"
	"regexp"
	"strings"
)

var sanitizeURLStripRe = regexp.MustCompile(`[^A-Za-z0-9/:]`)

// SanitizeURL URL-decodes url, strips every character outside
// [A-Za-z0-9/:], and lowercases the result to check it against a small
// deny-list of dangerous schemes (javascript:, vbscript:, data:). It
// returns the original, unmodified url when the check passes, or an
// empty string (no URL) when it doesn't — callers render that as an
// absent attribute. An empty or undecodable input also yields "".
func SanitizeURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	prot := strings.ToLower(sanitizeURLStripRe.ReplaceAllString(decoded, ""))
	if strings.HasPrefix(prot, "javascript:") ||
		strings.HasPrefix(prot, "vbscript:") ||
		strings.HasPrefix(prot, "data:") {
		return "", false
	}
	return raw, true
}

var sanitizeTextCodes = map[rune]string{
	'<':  "&lt;",
	'>':  "&gt;",
	'&':  "&amp;",
	'"':  "&quot;",
	'\'': "&#x27;",
}

var sanitizeTextRe = regexp.MustCompile(`[<>&"']`)

// SanitizeText escapes the five HTML-significant characters the active
// regex covers (< > & " '); the canonical entity table also maps `/`
// and a backtick, but those two are deliberately not substituted here,
// matching the source's narrower active pattern.
func SanitizeText(text string) string {
	return sanitizeTextRe.ReplaceAllStringFunc(text, func(m string) string {
		return sanitizeTextCodes[rune(m[0])]
	})
}

var unescapeURLRe = regexp.MustCompile(`\\([^0-9A-Za-z\s])`)

// UnescapeURL strips a backslash preceding any non-alphanumeric,
// non-whitespace character, the escaping link hrefs use.
func UnescapeURL(raw string) string {
	return unescapeURLRe.ReplaceAllString(raw, "$1")
}

// Attrs is an ordered set of HTML attribute name/value pairs for
// HTMLTag. A zero-value (empty) Value is treated as falsy and omitted,
// matching the source's `if attribute:` guard.
type Attrs []Attr

// Attr is one HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// HTMLTag builds `<name attr="val"...>inner</name>`, or the unclosed
// opening tag alone when closed is false (used for void elements like
// <img>). Attribute names and values both pass through SanitizeText;
// an attribute whose value is "" is omitted entirely.
func HTMLTag(name, inner string, attrs Attrs, closed bool) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		if a.Value == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(SanitizeText(a.Name))
		b.WriteString(`="`)
		b.WriteString(SanitizeText(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if !closed {
		return b.String()
	}
	b.WriteString(inner)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}
