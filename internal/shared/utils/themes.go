package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ThemeDefinition is a user-defined color theme persisted as JSON under
// the XDG config directory's themes/ subdirectory.
type ThemeDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Author      string            `json:"author,omitempty"`
	Version     string            `json:"version,omitempty"`
	Colors      map[string]string `json:"colors"`
}

// ThemeManager reads and writes ThemeDefinition files in an app's XDG
// themes directory.
type ThemeManager struct {
	themesDir string
}

// NewThemeManager builds a ThemeManager rooted at appName's XDG config
// directory.
func NewThemeManager(appName string) (*ThemeManager, error) {
	xdg := GetXDGPaths(appName)
	if xdg.ConfigHome == "" {
		return nil, fmt.Errorf("XDG config directory not available")
	}
	return &ThemeManager{themesDir: filepath.Join(xdg.ConfigHome, "themes")}, nil
}

// GetThemesDirectory returns the directory themes are read from and
// written to.
func (tm *ThemeManager) GetThemesDirectory() string {
	return tm.themesDir
}

func (tm *ThemeManager) ensureDir() error {
	return os.MkdirAll(tm.themesDir, 0o755)
}

// sanitizeName guards against directory traversal through a theme name
// taken from CLI arguments or a config file.
func sanitizeName(name string) (string, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("invalid theme name")
	}
	return name, nil
}

// LoadTheme reads a theme definition by name from the themes directory.
func (tm *ThemeManager) LoadTheme(name string) (*ThemeDefinition, error) {
	name, err := sanitizeName(name)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(tm.themesDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("theme %q not found", name)
		}
		return nil, fmt.Errorf("reading theme %q: %w", name, err)
	}

	var def ThemeDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if def.Name == "" {
		def.Name = name
	}
	return &def, nil
}

// ListThemes returns every valid theme definition found in the themes
// directory, skipping files that fail to parse.
func (tm *ThemeManager) ListThemes() ([]ThemeDefinition, error) {
	if err := tm.ensureDir(); err != nil {
		return nil, fmt.Errorf("ensuring themes directory: %w", err)
	}

	entries, err := os.ReadDir(tm.themesDir)
	if err != nil {
		return nil, fmt.Errorf("reading themes directory: %w", err)
	}

	var defs []ThemeDefinition
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		def, err := tm.LoadTheme(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}
		defs = append(defs, *def)
	}
	return defs, nil
}

// SaveTheme writes a theme definition to the themes directory.
func (tm *ThemeManager) SaveTheme(def *ThemeDefinition) error {
	name, err := sanitizeName(def.Name)
	if err != nil {
		return err
	}
	if err := tm.ensureDir(); err != nil {
		return fmt.Errorf("ensuring themes directory: %w", err)
	}

	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling theme %q: %w", name, err)
	}

	path := filepath.Join(tm.themesDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing theme %q: %w", name, err)
	}
	return nil
}

// DeleteTheme removes a theme definition from the themes directory.
func (tm *ThemeManager) DeleteTheme(name string) error {
	name, err := sanitizeName(name)
	if err != nil {
		return err
	}
	path := filepath.Join(tm.themesDir, name+".json")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("theme %q not found", name)
		}
		return fmt.Errorf("deleting theme %q: %w", name, err)
	}
	return nil
}

// ThemeExists reports whether a theme definition file exists for name.
func (tm *ThemeManager) ThemeExists(name string) bool {
	name, err := sanitizeName(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(tm.themesDir, name+".json"))
	return err == nil
}
