package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/app/service/config"
)

// resolveConfig reads the --config/--no-config persistent flags and
// resolves the effective configuration, the same lookup every command
// that consults .rulemd.yaml performs.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	noConfig, _ := cmd.Flags().GetBool("no-config")
	if noConfig {
		return config.Default(), nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	result := config.Resolve(configPath)
	if result.IsErr() {
		return config.Config{}, fmt.Errorf("%w", result.Error())
	}
	return result.Unwrap(), nil
}
