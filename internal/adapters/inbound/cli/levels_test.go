package cli_test

import (
	"bytes"
	"testing"

	"github.com/openkraft/plugval/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"levels"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "plugin.validation")
	for _, name := range []string{"NONE", "INLINE", "BRIEF", "DEFAULT", "VERBOSE"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "plugval dev")
}
