package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchCommandReportsThroughput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A\n\nbody\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("# B\n\nbody\n"), 0644))

	var out bytes.Buffer
	root := newTestRootCmd(NewBenchCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"bench", dir, "--iterations", "2"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "files:      2")
	assert.Contains(t, out.String(), "throughput:")
}

func TestBenchCommandNoFilesErrors(t *testing.T) {
	dir := t.TempDir()

	root := newTestRootCmd(NewBenchCommand())
	root.SetArgs([]string{"bench", dir})
	assert.Error(t, root.Execute())
}
