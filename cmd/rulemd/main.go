package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/interfaces/cli/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rulemd",
		Short: "A rule-dispatch Markdown parser and renderer",
		Long: `rulemd parses Markdown into an extensible AST and renders it to HTML,
a host-defined element tree, or a themed terminal preview.`,
		Version: fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
	}

	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewRenderCommand(),
		commands.NewTreeCommand(),
		commands.NewRulesCommand(),
		commands.NewValidateCommand(),
		commands.NewWatchCommand(),
		commands.NewPreviewCommand(),
		commands.NewThemeCommand(),
		commands.NewBenchCommand(),
		commands.NewVersionCommand(version, commit, date),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a .rulemd.yaml configuration file")
	cmd.PersistentFlags().Bool("no-config", false, "Ignore configuration file discovery")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose progress output")
}
