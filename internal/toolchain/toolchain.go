// Package toolchain invokes the external formatter and compiler against a
// synthesized build descriptor. Both invocations are synchronous and
// fatal-on-failure: a non-zero exit aborts the run with the tool's captured
// diagnostics, and nothing is retried.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vk/fixturec/internal/ctxlog"
)

// Environment variables the invoker honors. The executables are resolved
// from the environment so CI images can pin exact toolchain builds.
const (
	// EnvFormatter overrides the formatter executable.
	EnvFormatter = "FIXTUREC_FMT"
	// EnvCompiler overrides the compiler executable.
	EnvCompiler = "FIXTUREC_CC"
	// EnvEncodedFlags carries the fixed compiler flags out-of-band. Flags
	// are joined with flagSep rather than passed positionally, which
	// sidesteps shell delimiter-escaping hazards entirely.
	EnvEncodedFlags = "FIXTUREC_ENCODED_CCFLAGS"
)

const (
	defaultFormatter = "srcfmt"
	defaultCompiler  = "srcc"

	// flagSep is the ASCII unit separator. It cannot appear in a flag, so
	// joined flags never need escaping.
	flagSep = "\x1f"
)

// compilerFlags is the fixed flag set for fixture builds: bounded stack,
// import-based memory, link-time optimization, the conservative baseline
// instruction set, and warnings promoted to errors.
var compilerFlags = []string{
	"-stack-size=65536",
	"-import-memory",
	"-lto",
	"-target-cpu=mvp",
	"-Werror",
}

// Invoker runs the external style check and compiler.
type Invoker struct {
	builder CommandBuilder
}

// NewInvoker creates an Invoker that builds commands with the given builder.
func NewInvoker(builder CommandBuilder) *Invoker {
	return &Invoker{builder: builder}
}

// VerifyFormatting runs the formatter in check-only mode from the scratch
// directory. A style violation is a build precondition failure, not a
// best-effort lint: the returned FormatError carries the formatter's stdout
// and a hint naming sourceDir so the developer can fix the sources.
func (iv *Invoker) VerifyFormatting(ctx context.Context, scratchDir, sourceDir string) error {
	name := envOr(EnvFormatter, defaultFormatter)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Verifying fixture formatting.", "formatter", name, "dir", scratchDir)

	stdout, _, err := iv.builder.BuildCommand(ctx, scratchDir, name, nil, "--check").Run()
	if err == nil {
		return nil
	}
	if !isExitError(err) {
		// The formatter never ran, so this is not a style verdict.
		return fmt.Errorf("failed to run formatter %s: %w", name, err)
	}

	return &FormatError{
		Output: string(stdout),
		Hint:   fmt.Sprintf("fixture sources are not formatted; run `%s %s`", name, sourceDir),
	}
}

// Compile runs the compiler against the descriptor in the scratch directory,
// targeting the portable wasm instruction format. Compiled binaries land
// under out/ inside the scratch directory. On non-zero exit the returned
// BuildError carries the compiler's stderr.
func (iv *Invoker) Compile(ctx context.Context, scratchDir string) error {
	name := envOr(EnvCompiler, defaultCompiler)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compiling fixtures.", "compiler", name, "dir", scratchDir)

	env := []string{EnvEncodedFlags + "=" + strings.Join(compilerFlags, flagSep)}
	args := []string{"build", "--release", "--target=wasm32"}

	_, stderr, err := iv.builder.BuildCommand(ctx, scratchDir, name, env, args...).Run()
	if err == nil {
		return nil
	}
	if !isExitError(err) {
		return fmt.Errorf("failed to run compiler %s: %w", name, err)
	}

	return &BuildError{Output: string(stderr)}
}

// isExitError reports whether err came from a command that ran to completion
// with a non-zero exit, as opposed to one that could not be started at all.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
