package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fixturec/internal/fingerprint"
)

func TestCollectEntries(t *testing.T) {
	t.Parallel()

	sourceDir := t.TempDir()
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "alpha.src"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "beta.src"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(sourceDir, "nested.src"), 0o755))

	entries, err := CollectEntries(context.Background(), sourceDir, outputDir, []byte("salt"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	names := []string{entries[0].Name(), entries[1].Name()}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestCollectEntries_FiltersByMarker(t *testing.T) {
	t.Parallel()

	sourceDir := t.TempDir()
	outputDir := t.TempDir()
	salt := []byte("salt")

	alphaPath := filepath.Join(sourceDir, "alpha.src")
	require.NoError(t, os.WriteFile(alphaPath, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "beta.src"), []byte("b"), 0o644))

	// Plant alpha's marker: it was built before and is still valid.
	sum, err := fingerprint.File(alphaPath, salt)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, sum.String()), nil, 0o644))

	entries, err := CollectEntries(context.Background(), sourceDir, outputDir, salt)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "beta", entries[0].Name())
}

func TestCollectEntries_MissingSourceDir(t *testing.T) {
	t.Parallel()

	_, err := CollectEntries(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil)
	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
}

func TestEntry_DerivedNames(t *testing.T) {
	t.Parallel()

	e := Entry{Path: "/ws/fixtures/alpha.src", Sum: fingerprint.Sum(0xabcd)}
	assert.Equal(t, "alpha", e.Name())
	assert.Equal(t, "alpha.wasm", e.OutputName())
	assert.Equal(t, "000000000000abcd", e.MarkerName())
}
