// Package config loads the optional .rulemd.yaml configuration file and
// resolves it over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rulemd/rulemd/internal/shared/functional"
	"github.com/rulemd/rulemd/internal/shared/utils"
)

const appName = "rulemd"

// Config holds the per-rule enablement the `rules` command reports, the
// default render format, and the theme a CLI invocation uses unless
// overridden by flags.
type Config struct {
	// Rules maps a rule name to whether it is enabled. A name absent
	// from the map is enabled by default. Only the `rules` listing reads
	// it; parsing always dispatches the full default table.
	Rules map[string]bool `yaml:"rules"`

	// Format is the default output format for `render`: "html" or "json".
	Format string `yaml:"format"`

	// Theme names the default ANSI theme for `preview`/`render --color`.
	Theme string `yaml:"theme"`

	// TrimTables is loaded from trim_tables; no command or renderer
	// reads it, so it does not change table output.
	TrimTables bool `yaml:"trim_tables"`
}

// Default returns the configuration used when no .rulemd.yaml is found.
func Default() Config {
	return Config{
		Rules:      make(map[string]bool),
		Format:     "html",
		Theme:      "default",
		TrimTables: true,
	}
}

// RuleEnabled reports whether name is enabled, defaulting to true for any
// name the config does not mention.
func (c Config) RuleEnabled(name string) bool {
	enabled, ok := c.Rules[name]
	if !ok {
		return true
	}
	return enabled
}

// Load reads and parses a .rulemd.yaml file at path, without merging it
// over defaults.
func Load(path string) functional.Result[Config] {
	data, err := os.ReadFile(path)
	if err != nil {
		return functional.Err[Config](fmt.Errorf("config: reading %s: %w", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return functional.Err[Config](fmt.Errorf("config: parsing %s: %w", path, err))
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]bool)
	}
	return functional.Ok(cfg)
}

// Resolve finds a .rulemd.yaml via the XDG search hierarchy (project
// directory, then user config, then system config) and deep-merges it
// over Default. A configPath override bypasses the search entirely. No
// file found resolves to Default with no error.
func Resolve(configPath string) functional.Result[Config] {
	if configPath != "" {
		return mergeOverDefault(configPath)
	}

	found, err := utils.FindConfigFile(appName)
	if err != nil {
		return functional.Err[Config](fmt.Errorf("config: searching for config file: %w", err))
	}
	if found == "" {
		return functional.Ok(Default())
	}

	return mergeOverDefault(found)
}

func mergeOverDefault(path string) functional.Result[Config] {
	data, err := os.ReadFile(path)
	if err != nil {
		return functional.Err[Config](fmt.Errorf("config: reading %s: %w", path, err))
	}

	var fileConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return functional.Err[Config](fmt.Errorf("config: parsing %s: %w", path, err))
	}

	defaults := Default()
	defaultsMap, err := toMap(defaults)
	if err != nil {
		return functional.Err[Config](fmt.Errorf("config: building defaults: %w", err))
	}

	merged := utils.DeepMergeConfig(defaultsMap, fileConfig)

	mergedYAML, err := yaml.Marshal(merged)
	if err != nil {
		return functional.Err[Config](fmt.Errorf("config: re-marshaling merged config: %w", err))
	}

	var result Config
	if err := yaml.Unmarshal(mergedYAML, &result); err != nil {
		return functional.Err[Config](fmt.Errorf("config: decoding merged config: %w", err))
	}
	if result.Rules == nil {
		result.Rules = make(map[string]bool)
	}

	return functional.Ok(result)
}

func toMap(cfg Config) (map[string]interface{}, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
