package value

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rulemd/rulemd/internal/shared/functional"
)

// ThemeConfig selects and customizes an ANSI color theme used to render a
// parsed document to a terminal (the `preview` TUI and `render --color`).
// It is independent of the parser itself: the library never touches a
// terminal, only the CLI layer consumes a Theme.
type ThemeConfig struct {
	ThemeName    string            `json:"theme" yaml:"theme"`
	NoColor      bool              `json:"no_color" yaml:"no_color"`
	CustomColors map[string]string `json:"custom_colors" yaml:"custom_colors"`
}

// NewThemeConfig returns a ThemeConfig selecting the default theme.
func NewThemeConfig() ThemeConfig {
	return ThemeConfig{ThemeName: "default", CustomColors: make(map[string]string)}
}

// ThemeColors maps a node kind to the ANSI color used to render it. Keys
// are NodeType string values plus "accent" (used for the preview TUI's own
// chrome, not document content).
type ThemeColors struct {
	Heading    string
	Strong     string
	Em         string
	U          string
	Del        string
	InlineCode string
	CodeBlock  string
	Link       string
	BlockQuote string
	HR         string
	ListBullet string
	Text       string
	Accent     string
}

// Theme is an immutable, fully-resolved set of lipgloss styles, one per
// node kind. Built once by a theme Provider and then reused for every
// node rendered in a single CLI invocation.
type Theme struct {
	name    string
	colors  ThemeColors
	styles  map[NodeType]lipgloss.Style
	accent  lipgloss.Style
	noColor bool
}

// NewTheme builds a Theme from a resolved ThemeColors set. Building fails
// if a non-empty color string is not a hex color that colorful.Hex can
// parse; ANSI index strings such as "12" are rejected too.
func NewTheme(name string, colors ThemeColors, noColor bool) functional.Result[Theme] {
	if noColor {
		return functional.Ok(Theme{name: name, colors: colors, styles: map[NodeType]lipgloss.Style{}, noColor: true})
	}

	for _, hex := range []string{colors.Heading, colors.Strong, colors.Em, colors.U, colors.Del,
		colors.InlineCode, colors.CodeBlock, colors.Link, colors.BlockQuote, colors.HR,
		colors.ListBullet, colors.Text, colors.Accent} {
		if hex == "" {
			continue
		}
		if _, err := colorful.Hex(hex); err != nil {
			return functional.Err[Theme](err)
		}
	}

	styles := map[NodeType]lipgloss.Style{
		NodeHeading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Heading)),
		NodeStrong:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Strong)),
		NodeEm:         lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(colors.Em)),
		NodeU:          lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(colors.U)),
		NodeDel:        lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(colors.Del)),
		NodeInlineCode: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.InlineCode)),
		NodeCodeBlock:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.CodeBlock)),
		NodeLink:       lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(colors.Link)),
		NodeBlockQuote: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(colors.BlockQuote)),
		NodeHR:         lipgloss.NewStyle().Foreground(lipgloss.Color(colors.HR)),
		NodeList:       lipgloss.NewStyle().Foreground(lipgloss.Color(colors.ListBullet)),
		NodeText:       lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Text)),
	}

	return functional.Ok(Theme{
		name:   name,
		colors: colors,
		styles: styles,
		accent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Accent)),
	})
}

// Name returns the theme's name.
func (t Theme) Name() string { return t.name }

// NoColor reports whether this theme renders plain, uncolored text.
func (t Theme) NoColor() bool { return t.noColor }

// Style returns the style to apply to a node of the given kind, or the
// zero style (no styling) for a kind the theme does not color and for
// every kind when NoColor is set.
func (t Theme) Style(kind NodeType) lipgloss.Style {
	if t.noColor {
		return lipgloss.NewStyle()
	}
	if s, ok := t.styles[kind]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Accent returns the style used for the preview TUI's own chrome (status
// line, borders) rather than document content.
func (t Theme) Accent() lipgloss.Style {
	if t.noColor {
		return lipgloss.NewStyle()
	}
	return t.accent
}

// BlendColors interpolates between two hex colors at position t in [0, 1],
// used by the builtin "default" theme to derive an accent color from its
// two brand colors rather than hand-picking a third.
func BlendColors(hexA, hexB string, t float64) (string, error) {
	a, err := colorful.Hex(hexA)
	if err != nil {
		return "", err
	}
	b, err := colorful.Hex(hexB)
	if err != nil {
		return "", err
	}
	return a.BlendLuv(b, t).Hex(), nil
}
