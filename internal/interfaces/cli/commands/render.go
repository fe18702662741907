package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/app/provider/theme"
	"github.com/rulemd/rulemd/internal/app/service"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/interfaces/cli/output"
	"github.com/rulemd/rulemd/pkg/rulemd"
)

// NewRenderCommand builds the `render` command: parse a single Markdown
// source (a file argument, or stdin when none is given) and render it to
// HTML, a JSON element tree, or theme-colored terminal text.
func NewRenderCommand() *cobra.Command {
	var (
		format    string
		color     string
		themeName string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a Markdown document to HTML, JSON, or the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			if format == "" {
				format = cfg.Format
			}
			if themeName == "default" {
				themeName = cfg.Theme
			}

			source, err := readSource(args)
			if err != nil {
				return err
			}

			nodes, err := rulemd.Parse(source, nil)
			if err != nil {
				return fmt.Errorf("render: parsing: %w", err)
			}

			var rendered string
			switch format {
			case "html":
				rendered = rulemd.DefaultOutput().HTML(nodes) + "\n"
			case "json":
				elements := rulemd.DefaultOutput().Elements(nodes)
				encoded, err := json.MarshalIndent(elements, "", "  ")
				if err != nil {
					return fmt.Errorf("render: encoding elements: %w", err)
				}
				rendered = string(encoded) + "\n"
			default:
				return fmt.Errorf("render: unknown format %q (want html or json)", format)
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				fm := service.NewFileManager(service.DefaultRunOptions())
				if err := fm.WriteFile(cmd.Context(), outPath, rendered); err != nil {
					return fmt.Errorf("render: %w", err)
				}
			} else {
				fmt.Fprint(w, rendered)
			}

			if wantColor(color, w) {
				return renderColorPreview(cmd.ErrOrStderr(), nodes, themeName)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: html or json (default from config, else html)")
	cmd.Flags().StringVar(&color, "color", "auto", "Also print a colorized terminal preview: always, auto, never")
	cmd.Flags().StringVar(&themeName, "theme", "default", "ANSI theme for the colorized preview")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write primary output to a file instead of stdout")

	return cmd
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("render: reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("render: reading stdin: %w", err)
	}
	return string(data), nil
}

func wantColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isatty.IsTerminal(f.Fd())
	}
}

func renderColorPreview(w io.Writer, nodes []*value.Node, themeName string) error {
	manager := theme.NewManager()
	result := manager.CreateTheme(context.Background(), value.ThemeConfig{ThemeName: themeName})
	if result.IsErr() {
		return fmt.Errorf("render: %w", result.Error())
	}

	renderer := output.NewTermRenderer(result.Unwrap(), 0)
	fmt.Fprintln(w, "---")
	fmt.Fprint(w, renderer.Render(nodes))
	return nil
}
