package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeListCommand(t *testing.T) {
	var out bytes.Buffer
	root := newTestRootCmd(NewThemeCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"theme", "list"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "builtin:")
	assert.Contains(t, out.String(), "default")
	assert.Contains(t, out.String(), "solarized")
}

func TestThemeShowCommand(t *testing.T) {
	var out bytes.Buffer
	root := newTestRootCmd(NewThemeCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"theme", "show", "default"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "heading")
	assert.Contains(t, out.String(), "accent")
}

func TestThemeShowUnknownTheme(t *testing.T) {
	root := newTestRootCmd(NewThemeCommand())
	root.SetArgs([]string{"theme", "show", "does-not-exist"})
	assert.Error(t, root.Execute())
}
