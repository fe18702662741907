package commands

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/app/service/discover"
	"github.com/rulemd/rulemd/pkg/rulemd"
)

// NewWatchCommand builds the `watch` command: re-render every matched
// Markdown file to HTML on disk (next to the source, same basename with
// a .html extension) each time fsnotify reports it was written.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-render Markdown files to HTML whenever they are saved",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resolveConfig(cmd); err != nil {
				return fmt.Errorf("watch: %w", err)
			}

			files, err := discover.Files(afero.NewOsFs(), args, discover.Options{})
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			if len(files) == 0 {
				return fmt.Errorf("watch: no markdown files found")
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer watcher.Close()

			for _, f := range files {
				if err := watcher.Add(f); err != nil {
					return fmt.Errorf("watch: watching %s: %w", f, err)
				}
				if err := renderFileToHTML(f); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "rendered %s\n", f)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "watching %d files, ctrl-c to stop\n", len(files))

			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					if err := renderFileToHTML(event.Name); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "rendered %s\n", event.Name)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
				}
			}
		},
	}

	return cmd
}

func renderFileToHTML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	html, err := rulemd.ToHTML(string(data), nil)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return os.WriteFile(htmlSibling(path), []byte(html), 0o644)
}

func htmlSibling(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[:i] + ".html"
		}
	}
	return path + ".html"
}
