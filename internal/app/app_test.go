package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fixturec/internal/toolchain"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{OutputDir: "out"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FixturesDir")

	_, err = NewConfig(Config{FixturesDir: "fixtures"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OutputDir")

	cfg, err := NewConfig(Config{FixturesDir: "fixtures", OutputDir: "out"})
	require.NoError(t, err)
	assert.Equal(t, "fixtures", cfg.FixturesDir)
}

func TestApp_RunNoOp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "workspace.hcl"), []byte("workspace {\n}\n"), 0o644))
	fixturesDir := filepath.Join(root, "fixtures")
	require.NoError(t, os.MkdirAll(fixturesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fixturesDir, "ignored.txt"), []byte("x"), 0o644))
	outputDir := filepath.Join(root, "out")

	cfg, err := NewConfig(Config{
		FixturesDir: fixturesDir,
		OutputDir:   outputDir,
		LogFormat:   "text",
		LogLevel:    "debug",
	})
	require.NoError(t, err)

	builder := toolchain.NewMockCommandBuilder()
	out := &bytes.Buffer{}
	a := NewApp(out, cfg, builder)

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, builder.Commands, "a run with no sources must not invoke the toolchain")
	assert.Contains(t, out.String(), "nothing to build")
}
