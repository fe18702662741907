package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

var (
	codeBlockRe      = regexp.MustCompile(`^(?:    [^\n]+\n*)+(?:\n *)+\n`)
	codeBlockLeadRe  = regexp.MustCompile(`^    `)
	codeBlockTrailRe = regexp.MustCompile(`\n+$`)
)

// NewCodeBlockRule builds the 4-space-indented code block rule. It
// strips the leading indent once from the start of the whole capture
// (not per line) and trims trailing blank lines — preserved verbatim
// from the source, which applies its leading-indent substitution
// without a multiline flag.
func NewCodeBlockRule(order int) *entity.Rule {
	match := blockRegex(codeBlockRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "codeBlock",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			content := codeBlockLeadRe.ReplaceAllString(c.FullMatch(), "")
			content = codeBlockTrailRe.ReplaceAllString(content, "")
			return entity.One(&value.Node{Content: content})
		},
		RenderHTML:    renderCodeBlockHTML,
		RenderElement: renderCodeBlockElement,
	})
}

func codeBlockClassName(n *value.Node) string {
	if n.Lang == nil || *n.Lang == "" {
		return ""
	}
	return "markdown-code-" + *n.Lang
}

func renderCodeBlockHTML(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
	code := helpers.HTMLTag("code", helpers.SanitizeText(n.Content), helpers.Attrs{
		{Name: "class", Value: codeBlockClassName(n)},
	}, true)
	return helpers.HTMLTag("pre", code, nil, true)
}

func renderCodeBlockElement(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
	code := value.NewElement("code", "", map[string]any{
		"className": codeBlockClassName(n),
		"children":  n.Content,
	})
	return value.NewElement("pre", state.Key, map[string]any{
		"children": code,
	})
}

var (
	fenceOpenRe = regexp.MustCompile("^ *(`{3,}|~{3,}) *(\\S*) *$")
	fenceTermRe = regexp.MustCompile(`^(?:\n *)+\n`)
)

// NewFenceRule builds the fenced code block rule (``` or ~~~, optional
// language). Go's RE2 engine has no backreferences, so unlike the
// source's single `\1`-based regex this scans line-by-line for a
// closing fence of the same character repeated at least as many times
// as the opener (spec.md §4.4, §6). Its node's Type is rewritten to
// "codeBlock" so fenced and indented code share a renderer.
func NewFenceRule(order int) *entity.Rule {
	return entity.MustNewRule(entity.Definition{
		Name:  "fence",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			if state.Inline {
				return nil
			}
			return matchFence(source)
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			lang := c.Group(2)
			var langPtr *string
			if lang != "" {
				langPtr = &lang
			}
			return entity.One(&value.Node{
				Type:    value.NodeCodeBlock,
				Lang:    langPtr,
				Content: c.Group(3),
			})
		},
	})
}

func matchFence(source string) *value.Capture {
	firstNL := strings.IndexByte(source, '\n')
	if firstNL == -1 {
		return nil
	}
	openLine := source[:firstNL]
	m := fenceOpenRe.FindStringSubmatch(openLine)
	if m == nil {
		return nil
	}
	fenceChars := m[1]
	lang := m[2]
	fenceByte := fenceChars[0]
	fenceLen := len(fenceChars)
	closeRe := regexp.MustCompile(`^ *` + regexp.QuoteMeta(string(fenceByte)) + `{` + strconv.Itoa(fenceLen) + `,} *$`)

	rest := source[firstNL+1:]
	pos := 0
	closeStart := -1
	closeLineLen := 0
	for {
		nl := strings.IndexByte(rest[pos:], '\n')
		var line string
		if nl == -1 {
			line = rest[pos:]
		} else {
			line = rest[pos : pos+nl]
		}
		if closeRe.MatchString(line) {
			closeStart = pos
			closeLineLen = len(line)
			break
		}
		if nl == -1 {
			break
		}
		pos += nl + 1
	}
	if closeStart == -1 {
		return nil
	}

	content := strings.TrimSuffix(rest[:closeStart], "\n")
	fenceLineEnd := closeStart + closeLineLen
	remainder := rest[fenceLineEnd:]
	term := fenceTermRe.FindString(remainder)
	if term == "" {
		return nil
	}

	fullLen := (firstNL + 1) + fenceLineEnd + len(term)
	full := source[:fullLen]
	return &value.Capture{Groups: []string{full, fenceChars, lang, content}}
}
