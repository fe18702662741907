package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/app/provider/theme"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/shared/utils"
)

const themeAppName = "rulemd"

// NewThemeCommand builds the `theme` command tree: list available
// palettes (builtin and user-defined), show a palette's resolved colors,
// and manage on-disk custom themes used by `render --color` and
// `preview`.
func NewThemeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and manage color themes",
		Long:  "List, show, and manage the ANSI color themes render and preview use.",
	}

	cmd.AddCommand(
		newThemeListCommand(),
		newThemeShowCommand(),
		newThemeSaveCommand(),
		newThemeDeleteCommand(),
	)

	return cmd
}

func newThemeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := theme.BuiltinNames()
			fmt.Fprintln(cmd.OutOrStdout(), "builtin:")
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}

			tm, err := utils.NewThemeManager(themeAppName)
			if err != nil {
				return fmt.Errorf("theme: %w", err)
			}
			defs, err := tm.ListThemes()
			if err != nil {
				return fmt.Errorf("theme: listing custom themes: %w", err)
			}
			if len(defs) == 0 {
				return nil
			}

			sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
			fmt.Fprintln(cmd.OutOrStdout(), "custom:")
			for _, def := range defs {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", def.Name)
			}
			return nil
		},
	}
}

func newThemeShowCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a theme's resolved colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := theme.NewManager()
			result := manager.CreateTheme(context.Background(), value.ThemeConfig{
				ThemeName: args[0],
				NoColor:   noColor,
			})
			if result.IsErr() {
				return fmt.Errorf("theme: %w", result.Error())
			}

			th := result.Unwrap()
			sample := map[string]string{
				"heading":    th.Style(value.NodeHeading).Render("heading"),
				"strong":     th.Style(value.NodeStrong).Render("strong"),
				"em":         th.Style(value.NodeEm).Render("em"),
				"link":       th.Style(value.NodeLink).Render("link"),
				"inlineCode": th.Style(value.NodeInlineCode).Render("inlineCode"),
				"blockQuote": th.Style(value.NodeBlockQuote).Render("blockQuote"),
				"accent":     th.Accent().Render("accent"),
			}
			for _, key := range []string{"heading", "strong", "em", "link", "inlineCode", "blockQuote", "accent"} {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", key, sample[key])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Resolve as the plain, colorless theme")
	return cmd
}

func newThemeSaveCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a custom theme definition from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("theme: --file is required")
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("theme: reading %s: %w", file, err)
			}

			var def utils.ThemeDefinition
			if err := json.Unmarshal(data, &def); err != nil {
				return fmt.Errorf("theme: parsing %s: %w", file, err)
			}
			def.Name = args[0]

			tm, err := utils.NewThemeManager(themeAppName)
			if err != nil {
				return fmt.Errorf("theme: %w", err)
			}
			if err := tm.SaveTheme(&def); err != nil {
				return fmt.Errorf("theme: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved theme %q to %s\n", def.Name, tm.GetThemesDirectory())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON theme definition")
	return cmd
}

func newThemeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a custom theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := utils.NewThemeManager(themeAppName)
			if err != nil {
				return fmt.Errorf("theme: %w", err)
			}
			if err := tm.DeleteTheme(args[0]); err != nil {
				return fmt.Errorf("theme: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted theme %q\n", args[0])
			return nil
		},
	}
}
