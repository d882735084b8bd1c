package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWorkspaceRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, WorkspaceFile), []byte("workspace {\n}\n"), 0o644))

	deep := filepath.Join(root, "frame", "fixtures", "contracts")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	found, err := FindWorkspaceRoot(deep)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindWorkspaceRoot_SkipsNonDeclaringFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, WorkspaceFile), []byte("workspace {\n}\n"), 0o644))

	// An intermediate workspace.hcl without a workspace block must not
	// terminate the walk.
	mid := filepath.Join(root, "nested")
	require.NoError(t, os.MkdirAll(mid, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(mid, WorkspaceFile), []byte("style = \"compact\"\n"), 0o644))

	deep := filepath.Join(mid, "fixtures")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	found, err := FindWorkspaceRoot(deep)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindWorkspaceRoot_NotFound(t *testing.T) {
	t.Parallel()

	_, err := FindWorkspaceRoot(t.TempDir())
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), WorkspaceFile)
}
