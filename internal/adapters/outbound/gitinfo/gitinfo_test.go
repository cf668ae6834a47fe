package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/openkraft/plugval/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func TestGitInfo_IsGitRepo_True(t *testing.T) {
	dir := initRepo(t)
	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(dir))
}

func TestGitInfo_IsGitRepo_False(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	assert.False(t, gi.IsGitRepo(dir))
}

func TestGitInfo_Root_FromNestedModule(t *testing.T) {
	dir := initRepo(t)
	nested := filepath.Join(dir, "modules", "core")
	require.NoError(t, os.MkdirAll(nested, 0755))

	root, err := gitinfo.New().Root(nested)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGitInfo_Root_NotGitRepo(t *testing.T) {
	_, err := gitinfo.New().Root(t.TempDir())
	assert.Error(t, err)
}
