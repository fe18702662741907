package theme

import (
	"context"
	"fmt"

	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/shared/functional"
	"github.com/rulemd/rulemd/internal/shared/utils"
)

// appName is the directory name under the XDG config root that holds
// user-defined theme files (~/.config/rulemd/themes/*.json).
const appName = "rulemd"

// CustomProvider loads a user-defined theme definition from the XDG
// themes directory. It handles any theme name the BuiltinProvider
// doesn't, so an unknown name always resolves to a specific "not found"
// error instead of silently falling back to a compiled-in palette.
type CustomProvider struct{}

// NewCustomProvider constructs a CustomProvider.
func NewCustomProvider() *CustomProvider { return &CustomProvider{} }

// Name identifies this provider.
func (p *CustomProvider) Name() string { return "custom" }

// CanHandle reports whether config names a theme that is not one of the
// compiled-in palettes and does not request plain, colorless output.
func (p *CustomProvider) CanHandle(config value.ThemeConfig) bool {
	if config.NoColor {
		return false
	}
	for _, name := range BuiltinNames() {
		if name == config.ThemeName {
			return false
		}
	}
	return true
}

// CreateTheme loads config.ThemeName from the on-disk themes directory
// and resolves it, applying any CustomColors overrides on top.
func (p *CustomProvider) CreateTheme(_ context.Context, config value.ThemeConfig) functional.Result[value.Theme] {
	if config.ThemeName == "" {
		return functional.Err[value.Theme](fmt.Errorf("theme: name cannot be empty"))
	}

	tm, err := utils.NewThemeManager(appName)
	if err != nil {
		return functional.Err[value.Theme](err)
	}

	def, err := tm.LoadTheme(config.ThemeName)
	if err != nil {
		return functional.Err[value.Theme](err)
	}

	colors := colorsFromDefinition(*def)
	colors = applyCustomColors(colors, config.CustomColors)
	return value.NewTheme(def.Name, colors, false)
}

func colorsFromDefinition(def utils.ThemeDefinition) value.ThemeColors {
	var colors value.ThemeColors
	get := func(key string) string { return def.Colors[key] }
	colors.Heading = get("heading")
	colors.Strong = get("strong")
	colors.Em = get("em")
	colors.U = get("u")
	colors.Del = get("del")
	colors.InlineCode = get("inlineCode")
	colors.CodeBlock = get("codeBlock")
	colors.Link = get("link")
	colors.BlockQuote = get("blockQuote")
	colors.HR = get("hr")
	colors.ListBullet = get("list")
	colors.Text = get("text")
	colors.Accent = get("accent")
	return colors
}
