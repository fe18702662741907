package theme

import (
	"context"

	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/shared/functional"
)

// builtinPalette is a theme's raw color definition, resolved into a
// value.Theme on demand by value.NewTheme.
type builtinPalette struct {
	name   string
	colors value.ThemeColors
}

// BuiltinNames returns the compiled-in theme names, in resolution order.
func BuiltinNames() []string {
	names := make([]string, len(builtinPalettes))
	for i, p := range builtinPalettes {
		names[i] = p.name
	}
	return names
}

var builtinPalettes = []builtinPalette{
	{
		// default blends two brand colors (magenta/cyan) for its accent
		// rather than a third hand-picked color.
		name: "default",
		colors: value.ThemeColors{
			Heading:    "#F25D94",
			Strong:     "#F2A65D",
			Em:         "#5DF2C4",
			U:          "#5DC4F2",
			Del:        "#8A8A8A",
			InlineCode: "#F2E05D",
			CodeBlock:  "#B2F25D",
			Link:       "#5D8AF2",
			BlockQuote: "#A65DF2",
			HR:         "#6A6A6A",
			ListBullet: "#5DF29E",
			Text:       "#E4E4E4",
			Accent:     mustBlend("#F25D94", "#5DC4F2", 0.5),
		},
	},
	{
		// solarized reuses the well-known Solarized Dark accent set.
		name: "solarized",
		colors: value.ThemeColors{
			Heading:    "#268BD2",
			Strong:     "#CB4B16",
			Em:         "#2AA198",
			U:          "#6C71C4",
			Del:        "#93A1A1",
			InlineCode: "#B58900",
			CodeBlock:  "#859900",
			Link:       "#268BD2",
			BlockQuote: "#D33682",
			HR:         "#586E75",
			ListBullet: "#2AA198",
			Text:       "#839496",
			Accent:     mustBlend("#268BD2", "#D33682", 0.5),
		},
	},
	{
		// plain disables color entirely, for piping render output to a
		// file or a terminal without ANSI support.
		name:   "plain",
		colors: value.ThemeColors{},
	},
}

func mustBlend(a, b string, t float64) string {
	blended, err := value.BlendColors(a, b, t)
	if err != nil {
		// a and b are fixed hex literals above; a failure here would mean
		// a typo, caught the moment this package is imported.
		panic(err)
	}
	return blended
}

// BuiltinProvider serves the compiled-in theme palettes.
type BuiltinProvider struct{}

// NewBuiltinProvider constructs a BuiltinProvider.
func NewBuiltinProvider() *BuiltinProvider { return &BuiltinProvider{} }

// Name identifies this provider.
func (p *BuiltinProvider) Name() string { return "builtin" }

// CanHandle reports whether config names a compiled-in theme, or requests
// no color at all (handled by the "plain" palette regardless of name).
func (p *BuiltinProvider) CanHandle(config value.ThemeConfig) bool {
	if config.NoColor {
		return true
	}
	for _, palette := range builtinPalettes {
		if palette.name == config.ThemeName {
			return true
		}
	}
	return false
}

// CreateTheme resolves config against the matching compiled-in palette.
func (p *BuiltinProvider) CreateTheme(_ context.Context, config value.ThemeConfig) functional.Result[value.Theme] {
	if config.NoColor {
		return value.NewTheme("plain", value.ThemeColors{}, true)
	}

	for _, palette := range builtinPalettes {
		if palette.name != config.ThemeName {
			continue
		}
		colors := applyCustomColors(palette.colors, config.CustomColors)
		return value.NewTheme(palette.name, colors, palette.name == "plain")
	}

	return value.NewTheme("default", builtinPalettes[0].colors, false)
}

func applyCustomColors(base value.ThemeColors, custom map[string]string) value.ThemeColors {
	result := base
	for kind, hex := range custom {
		switch kind {
		case "heading":
			result.Heading = hex
		case "strong":
			result.Strong = hex
		case "em":
			result.Em = hex
		case "u":
			result.U = hex
		case "del":
			result.Del = hex
		case "inlineCode":
			result.InlineCode = hex
		case "codeBlock":
			result.CodeBlock = hex
		case "link":
			result.Link = hex
		case "blockQuote":
			result.BlockQuote = hex
		case "hr":
			result.HR = hex
		case "list":
			result.ListBullet = hex
		case "text":
			result.Text = hex
		case "accent":
			result.Accent = hex
		}
	}
	return result
}
