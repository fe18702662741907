package rules

import (
	"regexp"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

const (
	linkInside        = `(?:\[[^\]]*\]|[^\[\]]|\](?=[^\[]*\]))*`
	linkHrefAndTitle  = `\s*<?((?:\([^)]*\)|[^\s\\]|\\.)*?)>?(?:\s+['"]([\s\S]*?)['"])?\s*`
)

var (
	autolinkRe           = regexp.MustCompile(`^<([^: >]+:/[^ >]+)>`)
	mailtoRe             = regexp.MustCompile(`^<([^ >]+@[^ >]+)>`)
	mailtoSchemeCheckRe  = regexp.MustCompile(`(?i)^mailto:`)
	urlRe                = regexp.MustCompile(`^(https?://[^\s<]+[^<.,:;"')\]\s])`)
	linkRe               = regexp2MustCompile(`^\[(` + linkInside + `)\]\(` + linkHrefAndTitle + `\)`)
	imageRe              = regexp2MustCompile(`^!\[(` + linkInside + `)\]\(` + linkHrefAndTitle + `\)`)
	reflinkRe            = regexp2MustCompile(`^\[(` + linkInside + `)\]\s*\[([^\]]*)\]`)
	refimageRe           = regexp2MustCompile(`^!\[(` + linkInside + `)\]\s*\[([^\]]*)\]`)
)

// NewAutolinkRule builds the `<scheme:/rest>` autolink rule: content and
// target are both the raw URL text (spec.md §4.4).
func NewAutolinkRule(order int) *entity.Rule {
	match := inlineRegex(autolinkRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "autolink",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			target := c.Group(1)
			return entity.One(&value.Node{
				Type:     value.NodeLink,
				Children: []*value.Node{value.Text(target)},
				Target:   target,
			})
		},
		RenderHTML:    renderLinkHTML,
		RenderElement: renderLinkElement,
	})
}

// NewMailToRule builds the `<addr@host>` rule, prefixing the target
// with "mailto:" unless already present (case-insensitive) (spec.md
// §4.4).
func NewMailToRule(order int) *entity.Rule {
	match := inlineRegex(mailtoRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "mailto",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			address := c.Group(1)
			target := address
			if !mailtoSchemeCheckRe.MatchString(target) {
				target = "mailto:" + target
			}
			return entity.One(&value.Node{
				Type:     value.NodeLink,
				Children: []*value.Node{value.Text(address)},
				Target:   target,
			})
		},
		RenderHTML:    renderLinkHTML,
		RenderElement: renderLinkElement,
	})
}

// NewURLRule builds the bare `http(s)://…` autolink rule, with a
// trailing-punctuation-trimming pattern reused verbatim from spec.md §6.
func NewURLRule(order int) *entity.Rule {
	match := inlineRegex(urlRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "url",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			target := c.Group(1)
			return entity.One(&value.Node{
				Type:     value.NodeLink,
				Children: []*value.Node{value.Text(target)},
				Target:   target,
			})
		},
		RenderHTML:    renderLinkHTML,
		RenderElement: renderLinkElement,
	})
}

// NewLinkRule builds the `[text](href "title")` rule. href passes
// through UnescapeURL; text is inline-parsed (spec.md §4.4).
func NewLinkRule(order int) *entity.Rule {
	match := inlineRegex2(linkRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "link",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			title := optionalGroup(c, 3)
			return entity.One(&value.Node{
				Children: parse(c.Group(1), state),
				Target:   helpers.UnescapeURL(c.Group(2)),
				Title:    title,
			})
		},
		RenderHTML:    renderLinkHTML,
		RenderElement: renderLinkElement,
	})
}

// NewImageRule builds the `![alt](href "title")` rule. alt is stored as
// raw, unparsed text (spec.md §4.4).
func NewImageRule(order int) *entity.Rule {
	match := inlineRegex2(imageRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "image",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{
				Alt:    c.Group(1),
				Target: helpers.UnescapeURL(c.Group(2)),
				Title:  optionalGroup(c, 3),
			})
		},
		RenderHTML:    renderImageHTML,
		RenderElement: renderImageElement,
	})
}

// NewRefLinkRule builds the `[text][ref]` reference-link rule: it
// defers target/title resolution to the reference registry (spec.md
// §4.4, §4.8).
func NewRefLinkRule(order int) *entity.Rule {
	match := inlineRegex2(reflinkRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "reflink",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			node := &value.Node{
				Type:     value.NodeLink,
				Children: parse(c.Group(1), state),
			}
			name := normalizeRefName(refName(c))
			state.RegisterRef(name, node)
			return entity.One(node)
		},
		RenderHTML:    renderLinkHTML,
		RenderElement: renderLinkElement,
	})
}

// NewRefImageRule builds the `![alt][ref]` reference-image rule.
func NewRefImageRule(order int) *entity.Rule {
	match := inlineRegex2(refimageRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "refimage",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			node := &value.Node{
				Type: value.NodeImage,
				Alt:  c.Group(1),
			}
			name := normalizeRefName(refName(c))
			state.RegisterRef(name, node)
			return entity.One(node)
		},
		RenderHTML:    renderImageHTML,
		RenderElement: renderImageElement,
	})
}

// refName picks the explicit reference id (group 2) when non-empty,
// falling back to the link text itself (group 1) — `[text][]` resolves
// against "text" (spec.md §4.8, matching the source's `capture[2] or
// capture[1]`).
func refName(c *value.Capture) string {
	if c.Group(2) != "" {
		return c.Group(2)
	}
	return c.Group(1)
}

func optionalGroup(c *value.Capture, i int) *string {
	v := c.Group(i)
	if v == "" {
		return nil
	}
	return &v
}

func renderLinkHTML(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
	href, _ := helpers.SanitizeURL(n.Target)
	title := ""
	if n.Title != nil {
		title = *n.Title
	}
	return helpers.HTMLTag("a", render(n.Children, state), helpers.Attrs{
		{Name: "href", Value: href},
		{Name: "title", Value: title},
	}, true)
}

func renderLinkElement(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
	href, _ := helpers.SanitizeURL(n.Target)
	var title any
	if n.Title != nil {
		title = *n.Title
	}
	return value.NewElement("a", state.Key, map[string]any{
		"href":     href,
		"title":    title,
		"children": render(n.Children, state),
	})
}

func renderImageHTML(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
	src, _ := helpers.SanitizeURL(n.Target)
	title := ""
	if n.Title != nil {
		title = *n.Title
	}
	return helpers.HTMLTag("img", "", helpers.Attrs{
		{Name: "src", Value: src},
		{Name: "alt", Value: n.Alt},
		{Name: "title", Value: title},
	}, false)
}

func renderImageElement(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
	src, _ := helpers.SanitizeURL(n.Target)
	var title any
	if n.Title != nil {
		title = *n.Title
	}
	return value.NewElement("img", state.Key, map[string]any{
		"src":   src,
		"alt":   n.Alt,
		"title": title,
	})
}
