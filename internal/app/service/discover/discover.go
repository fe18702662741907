// Package discover walks a filesystem to find the Markdown files a batch
// CLI command (render, watch, bench) should process. It is built on
// afero.Fs rather than the os package directly so its tests run against
// an in-memory filesystem instead of touching disk.
package discover

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// IsMarkdownFile reports whether path has a recognized Markdown extension.
func IsMarkdownFile(path string) bool {
	return markdownExtensions[strings.ToLower(filepath.Ext(path))]
}

// Options controls how Files walks the filesystem.
type Options struct {
	// IncludeDotfiles includes hidden files and directories in the walk.
	IncludeDotfiles bool

	// Ignore is a set of path prefixes to skip during a directory walk.
	Ignore []string
}

// Files resolves args (file paths, directories, or glob patterns) to a
// sorted, deduplicated list of Markdown files found on fs. An empty args
// defaults to the current directory (".").
func Files(fs afero.Fs, args []string, opts Options) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		if strings.ContainsAny(arg, "*?[") {
			matches, err := afero.Glob(fs, arg)
			if err != nil {
				return nil, fmt.Errorf("discover: invalid glob pattern %q: %w", arg, err)
			}
			for _, match := range matches {
				if !opts.IncludeDotfiles && strings.HasPrefix(filepath.Base(match), ".") {
					continue
				}
				if info, err := fs.Stat(match); err == nil && !info.IsDir() && IsMarkdownFile(match) {
					add(match)
				}
			}
			continue
		}

		info, err := fs.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("discover: %s: %w", arg, err)
		}

		if !info.IsDir() {
			if IsMarkdownFile(arg) {
				add(arg)
			}
			continue
		}

		if err := walk(fs, arg, opts, add); err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func walk(fs afero.Fs, dir string, opts Options, add func(string)) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return fmt.Errorf("discover: reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if shouldIgnore(path, opts.Ignore) {
			continue
		}
		if !opts.IncludeDotfiles && strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		if entry.IsDir() {
			if err := walk(fs, path, opts, add); err != nil {
				return err
			}
			continue
		}

		if IsMarkdownFile(path) {
			add(path)
		}
	}

	return nil
}

func shouldIgnore(path string, ignore []string) bool {
	for _, prefix := range ignore {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
