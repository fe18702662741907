// Package theme resolves a value.ThemeConfig into a fully-built
// value.Theme, either from a compiled-in palette or from a user-defined
// theme file on disk.
package theme

import (
	"context"
	"fmt"

	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/shared/functional"
)

// Provider resolves theme configuration into a concrete Theme. Each
// provider owns one source of theme definitions (compiled-in, on-disk).
type Provider interface {
	Name() string
	CanHandle(config value.ThemeConfig) bool
	CreateTheme(ctx context.Context, config value.ThemeConfig) functional.Result[value.Theme]
}

// Manager tries each registered provider in order and caches the result
// per distinct configuration.
type Manager struct {
	providers []Provider
	cache     map[string]value.Theme
}

// NewManager builds a Manager with the builtin and custom providers
// registered, builtin first so a user can never accidentally shadow one
// of the compiled-in names with a same-named on-disk file.
func NewManager() *Manager {
	return &Manager{
		providers: []Provider{
			NewBuiltinProvider(),
			NewCustomProvider(),
		},
		cache: make(map[string]value.Theme),
	}
}

// RegisterProvider appends an additional theme source.
func (m *Manager) RegisterProvider(p Provider) {
	m.providers = append(m.providers, p)
}

// CreateTheme resolves config to a Theme via the first provider that
// claims it.
func (m *Manager) CreateTheme(ctx context.Context, config value.ThemeConfig) functional.Result[value.Theme] {
	key := cacheKey(config)
	if cached, ok := m.cache[key]; ok {
		return functional.Ok(cached)
	}

	for _, p := range m.providers {
		if !p.CanHandle(config) {
			continue
		}
		result := p.CreateTheme(ctx, config)
		if result.IsOk() {
			m.cache[key] = result.Unwrap()
		}
		return result
	}

	return functional.Err[value.Theme](fmt.Errorf("theme: no provider for %q", config.ThemeName))
}

// ListBuiltinNames returns the names of the compiled-in themes, in the
// order they are tried.
func (m *Manager) ListBuiltinNames() []string {
	return BuiltinNames()
}

func cacheKey(config value.ThemeConfig) string {
	key := config.ThemeName
	if config.NoColor {
		key += "#nocolor"
	}
	for k, v := range config.CustomColors {
		key += "#" + k + "=" + v
	}
	return key
}
