package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

const listBulletPattern = `(?:[*+-]|\d+\.)`

var (
	listItemPrefixPattern = `( *)(` + listBulletPattern + `) +`
	listItemPrefixRe      = regexp.MustCompile(`^` + listItemPrefixPattern)

	// listItemRe splits a list block into its items; the `\1` backreference
	// excludes a following line that starts a sibling item at the same
	// indentation (requires regexp2, unavailable in RE2).
	listItemRe = regexp2MustCompile(listItemPrefixPattern +
		`[^\n]*(?:\n(?!\1` + listBulletPattern + ` )[^\n]*)*(\n|$)`)

	// listRe is the block-level list match: it greedily consumes item text
	// until either a blank line followed by a non-indented, non-sibling
	// line, or end of input. Same `\1` backreference requirement.
	listRe = regexp2MustCompile(`^( *)(` + listBulletPattern + `) ` +
		`[\s\S]+?(?:\n{2,}(?! )(?!\1` + listBulletPattern + ` )\n*|\s*\n*$)`)

	listBlockEndRe = regexp.MustCompile(`\n{2,}$`)
	listItemEndRe  = regexp.MustCompile(` *\n+$`)
	nonDigitRe     = regexp.MustCompile(`[^\d]+`)
)

// listLookbehind replicates LIST_LOOKBEHIND_R's behavior under Python's
// re.match, which anchors only at offset 0 of prev: either prev is
// entirely spaces, or prev begins with a newline followed by nothing but
// spaces to the end. It reports the matched run of spaces (the lookbehind
// rule's captured indentation) and whether it matched at all.
func listLookbehind(prev string) (string, bool) {
	if strings.TrimLeft(prev, " ") == "" {
		return prev, true
	}
	if after, ok := strings.CutPrefix(prev, "\n"); ok {
		if strings.TrimLeft(after, " ") == "" {
			return after, true
		}
	}
	return "", false
}

// NewListRule builds the ordered/unordered list rule. Paragraph-mode
// contagion across items, the save/restore discipline on state.Inline and
// state.List, and per-continuation-line dedent all follow spec.md §4.6.
func NewListRule(order int) *entity.Rule {
	return entity.MustNewRule(entity.Definition{
		Name:  "list",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			indent, ok := listLookbehind(prev)
			isListBlock := state.List || !state.Inline
			if !ok || !isListBlock {
				return nil
			}
			return captureFromRegexp2(listRe, indent+source)
		},
		Parse:         parseList,
		RenderHTML:    renderListHTML,
		RenderElement: renderListElement,
	})
}

func parseList(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
	bullet := c.Group(2)
	ordered := len(bullet) > 1
	var start *int
	if ordered {
		n, err := strconv.Atoi(nonDigitRe.ReplaceAllString(bullet, ""))
		if err == nil {
			start = &n
		}
	}

	trimmed := listBlockEndRe.ReplaceAllString(c.FullMatch(), "\n")
	items := findAllMatches(listItemRe, trimmed)

	lastItemWasParagraph := false
	itemContent := make([][]*value.Node, len(items))

	for i, item := range items {
		space := 0
		if prefix := listItemPrefixRe.FindString(item); prefix != "" {
			space = len(prefix)
		}
		spaceRe := regexp.MustCompile(`(?m)^ {1,` + fmt.Sprint(space) + `}`)
		content := spaceRe.ReplaceAllString(item, "")
		content = listItemPrefixRe.ReplaceAllString(content, "")

		isLastItem := i == len(items)-1
		containsBlocks := strings.Contains(content, "\n\n")

		thisItemIsParagraph := containsBlocks || (isLastItem && lastItemWasParagraph)
		lastItemWasParagraph = thisItemIsParagraph

		oldInline, oldList := state.Inline, state.List
		state.List = true

		var adjusted string
		if thisItemIsParagraph {
			state.Inline = false
			adjusted = replaceFirst(listItemEndRe, content, "\n\n")
		} else {
			state.Inline = true
			adjusted = replaceFirst(listItemEndRe, content, "")
		}

		itemContent[i] = parse(adjusted, state)

		state.Inline, state.List = oldInline, oldList
	}

	return entity.One(&value.Node{
		Ordered: ordered,
		Start:   start,
		Items:   itemContent,
	})
}

// replaceFirst mimics Python re.sub(pattern, repl, s, count=1): only the
// first match (here, necessarily the trailing one since the pattern is
// end-anchored) is replaced.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

func renderListHTML(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
	wrapper := "ul"
	if n.Ordered {
		wrapper = "ol"
	}
	var items strings.Builder
	for _, item := range n.Items {
		items.WriteString(helpers.HTMLTag("li", render(item, state), nil, true))
	}
	return helpers.HTMLTag(wrapper, items.String(), nil, true)
}

func renderListElement(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
	wrapper := "ul"
	if n.Ordered {
		wrapper = "ol"
	}
	children := make([]any, len(n.Items))
	for i, item := range n.Items {
		children[i] = value.NewElement("li", strconv.Itoa(i), map[string]any{
			"children": render(item, state),
		})
	}
	return value.NewElement(wrapper, state.Key, map[string]any{
		"start":    n.Start,
		"children": children,
	})
}
