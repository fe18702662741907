package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRootCmd(sub *cobra.Command) *cobra.Command {
	root := &cobra.Command{Use: "rulemd"}
	root.PersistentFlags().StringP("config", "c", "", "")
	root.PersistentFlags().Bool("no-config", false, "")
	root.PersistentFlags().BoolP("verbose", "v", false, "")
	root.AddCommand(sub)
	return root
}

func TestRenderCommandHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nSome *text*.\n"), 0644))

	var out bytes.Buffer
	root := newTestRootCmd(NewRenderCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"render", path, "--no-config", "--color", "never"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "<h1>")
	assert.Contains(t, out.String(), "Title")
}

func TestRenderCommandJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0644))

	var out bytes.Buffer
	root := newTestRootCmd(NewRenderCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"render", path, "--format", "json", "--no-config", "--color", "never"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "h1")
}

func TestRenderCommandUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0644))

	root := newTestRootCmd(NewRenderCommand())
	root.SetArgs([]string{"render", path, "--format", "xml", "--no-config"})
	assert.Error(t, root.Execute())
}
