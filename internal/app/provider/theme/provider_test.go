package theme

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/shared/utils"
)

func TestNewManagerHasBuiltinAndCustomProviders(t *testing.T) {
	manager := NewManager()
	assert.Len(t, manager.providers, 2)
	assert.NotNil(t, manager.cache)
}

func TestBuiltinProviderCanHandle(t *testing.T) {
	provider := NewBuiltinProvider()

	assert.True(t, provider.CanHandle(value.ThemeConfig{ThemeName: "default"}))
	assert.True(t, provider.CanHandle(value.ThemeConfig{ThemeName: "solarized"}))
	assert.True(t, provider.CanHandle(value.ThemeConfig{ThemeName: "plain"}))
	assert.True(t, provider.CanHandle(value.ThemeConfig{NoColor: true}))
	assert.False(t, provider.CanHandle(value.ThemeConfig{ThemeName: "my-corporate-theme"}))
}

func TestBuiltinProviderCreateTheme(t *testing.T) {
	provider := NewBuiltinProvider()
	ctx := context.Background()

	result := provider.CreateTheme(ctx, value.ThemeConfig{ThemeName: "default"})
	require.True(t, result.IsOk())
	assert.Equal(t, "default", result.Unwrap().Name())

	noColor := provider.CreateTheme(ctx, value.ThemeConfig{NoColor: true})
	require.True(t, noColor.IsOk())
	assert.True(t, noColor.Unwrap().NoColor())
}

func TestBuiltinProviderCustomColorOverride(t *testing.T) {
	provider := NewBuiltinProvider()
	withOverride := provider.CreateTheme(context.Background(), value.ThemeConfig{
		ThemeName:    "default",
		CustomColors: map[string]string{"heading": "#FF0000"},
	})
	require.True(t, withOverride.IsOk())

	assert.Equal(t, lipgloss.Color("#FF0000"), withOverride.Unwrap().Style(value.NodeHeading).GetForeground())
}

func TestCustomProviderCanHandle(t *testing.T) {
	provider := NewCustomProvider()
	assert.True(t, provider.CanHandle(value.ThemeConfig{ThemeName: "my-corporate-theme"}))
	assert.False(t, provider.CanHandle(value.ThemeConfig{ThemeName: "default"}))
	assert.False(t, provider.CanHandle(value.ThemeConfig{NoColor: true}))
}

func TestCustomProviderLoadsThemeFromDisk(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	tm, err := utils.NewThemeManager(appName)
	require.NoError(t, err)
	require.NoError(t, tm.SaveTheme(&utils.ThemeDefinition{
		Name:   "corporate",
		Colors: map[string]string{"heading": "#336699"},
	}))
	assert.FileExists(t, filepath.Join(tm.GetThemesDirectory(), "corporate.json"))

	provider := NewCustomProvider()
	result := provider.CreateTheme(context.Background(), value.ThemeConfig{ThemeName: "corporate"})
	require.True(t, result.IsOk())
	assert.Equal(t, "corporate", result.Unwrap().Name())
}

func TestCustomProviderMissingThemeFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	provider := NewCustomProvider()
	result := provider.CreateTheme(context.Background(), value.ThemeConfig{ThemeName: "does-not-exist"})
	assert.True(t, result.IsErr())
}

func TestManagerCachesResolvedThemes(t *testing.T) {
	manager := NewManager()
	ctx := context.Background()
	config := value.ThemeConfig{ThemeName: "default"}

	first := manager.CreateTheme(ctx, config)
	require.True(t, first.IsOk())
	assert.Len(t, manager.cache, 1)

	second := manager.CreateTheme(ctx, config)
	require.True(t, second.IsOk())
	assert.Equal(t, first.Unwrap().Name(), second.Unwrap().Name())
}

func TestManagerFallsBackToCustomProviderForUnknownNames(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	manager := NewManager()
	result := manager.CreateTheme(context.Background(), value.ThemeConfig{ThemeName: "unregistered"})
	assert.True(t, result.IsErr())
}

func TestListBuiltinNames(t *testing.T) {
	names := NewManager().ListBuiltinNames()
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "solarized")
	assert.Contains(t, names, "plain")
}
