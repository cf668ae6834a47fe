package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/plugval/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".plugval.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "plugin.validation: default")
	assert.Contains(t, string(data), "level: info")
}

func TestInitCmd_Level(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--level", "VERBOSE"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".plugval.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "plugin.validation: verbose")
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".plugval.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".plugval.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".plugval.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "properties:")
	assert.NotEqual(t, "old", string(data))
}

func TestInitCmd_InvalidLevel(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--level", "loud"})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")

	_, statErr := os.Stat(filepath.Join(tmpDir, ".plugval.yaml"))
	assert.True(t, os.IsNotExist(statErr))
}
