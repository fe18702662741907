package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandDefaultTableOK(t *testing.T) {
	var out bytes.Buffer
	root := newTestRootCmd(NewValidateCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"validate"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "ok")
}
