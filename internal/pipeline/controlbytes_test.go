package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlBytes(t *testing.T) {
	t.Parallel()

	first := ControlBytes()
	require.NotEmpty(t, first)
	assert.Equal(t, first, ControlBytes(), "control bytes must be stable within a pipeline version")
	assert.Contains(t, string(first), "package pipeline")
	assert.NotContains(t, string(first), "func TestControlBytes", "test sources must never influence fingerprints")
}

func TestControlBytes_CoverAllControlLogic(t *testing.T) {
	t.Parallel()

	// Editing any of these must invalidate every cached artifact, so the
	// source carrying them has to be inside the salt.
	salt := string(ControlBytes())

	// Compiler flag set and invocation (internal/toolchain).
	assert.Contains(t, salt, "-target-cpu=mvp")
	assert.Contains(t, salt, "-stack-size=65536")
	assert.Contains(t, salt, "--release")

	// Descriptor shape, release profile and dependency resolution
	// (internal/manifest).
	assert.Contains(t, salt, "opt_level")
	assert.Contains(t, salt, "codegen_units")
	assert.Contains(t, salt, `"lib", "uapi"`)

	// Module codec (internal/wasm).
	assert.Contains(t, salt, "func Decode")
	assert.Contains(t, salt, "FilterExports")

	// Orchestration and commit logic (internal/pipeline).
	assert.Contains(t, salt, ExportDeploy)
	assert.Contains(t, salt, "func Commit")
}
