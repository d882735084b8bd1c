package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vk/fixturec/internal/ctxlog"
	"github.com/vk/fixturec/internal/fsutil"
	"github.com/vk/fixturec/internal/manifest"
	"github.com/vk/fixturec/internal/toolchain"
)

// compileOutDir is where the compiler places binaries inside the scratch
// directory.
const compileOutDir = "out"

// Pipeline sequences one full incremental build: collect, synthesize,
// verify formatting, compile, post-process, commit. It assumes a single
// invocation at a time against OutputDir; concurrent invocations against the
// same output directory can race and are not handled.
type Pipeline struct {
	// FixturesDir holds one recognized source file per unit.
	FixturesDir string
	// OutputDir receives committed binaries and their cache markers.
	OutputDir string
	// Toolchain runs the external formatter and compiler.
	Toolchain *toolchain.Invoker
}

// New creates a Pipeline over the given directories.
func New(fixturesDir, outputDir string, invoker *toolchain.Invoker) *Pipeline {
	return &Pipeline{
		FixturesDir: fixturesDir,
		OutputDir:   outputDir,
		Toolchain:   invoker,
	}
}

// Run executes the pipeline once. Each stage failure aborts all remaining
// stages; nothing is retried, since failures are deterministic developer
// facing defects. A run with zero surviving entries is a no-op success and
// touches neither formatter nor compiler, which keeps repeated invocations
// cheap and idempotent.
func (p *Pipeline) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return &IoError{Path: p.OutputDir, Err: err}
	}

	// The root is resolved unconditionally, so a broken workspace is
	// reported even when every unit is already cached.
	workspaceRoot, err := FindWorkspaceRoot(p.FixturesDir)
	if err != nil {
		return err
	}
	logger.Debug("Workspace root resolved.", "root", workspaceRoot)

	salt := ControlBytes()
	entries, err := CollectEntries(ctx, p.FixturesDir, p.OutputDir, salt)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		logger.Info("All fixtures up to date, nothing to build.")
		return nil
	}
	logger.Info("Building stale fixtures.", "count", len(entries))

	// The scratch directory is a scoped resource: released on every exit
	// path, including early aborts.
	scratchDir, err := os.MkdirTemp("", "fixturec-*")
	if err != nil {
		return &IoError{Path: os.TempDir(), Err: err}
	}
	defer os.RemoveAll(scratchDir)

	styleSrc := filepath.Join(workspaceRoot, StyleConfigFile)
	if err := fsutil.CopyFile(styleSrc, filepath.Join(scratchDir, StyleConfigFile)); err != nil {
		return &IoError{Path: styleSrc, Err: err}
	}

	units := make([]manifest.Unit, 0, len(entries))
	for _, entry := range entries {
		source, err := filepath.Abs(entry.Path)
		if err != nil {
			return &ConfigError{Op: "resolve source path " + entry.Path, Err: err}
		}
		units = append(units, manifest.Unit{Name: entry.Name(), Source: source})
	}
	if err := manifest.Synthesize(units, workspaceRoot, scratchDir); err != nil {
		return &ConfigError{Op: "synthesize build descriptor", Err: err}
	}

	if err := p.Toolchain.VerifyFormatting(ctx, scratchDir, p.FixturesDir); err != nil {
		return err
	}
	if err := p.Toolchain.Compile(ctx, scratchDir); err != nil {
		return err
	}

	for _, entry := range entries {
		compiledPath := filepath.Join(scratchDir, compileOutDir, entry.OutputName())
		raw, err := os.ReadFile(compiledPath)
		if err != nil {
			return &IoError{Path: compiledPath, Err: err}
		}

		normalized, err := PostProcess(entry.Name(), raw)
		if err != nil {
			return err
		}

		if err := Commit(entry, normalized, p.OutputDir); err != nil {
			return err
		}
		logger.Debug("Unit committed.", "unit", entry.Name(), "fingerprint", entry.Sum)
	}

	logger.Info("Fixture build finished.", "built", len(entries))
	return nil
}
