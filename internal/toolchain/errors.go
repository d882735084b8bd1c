package toolchain

// FormatError reports that the style check rejected the fixture sources.
type FormatError struct {
	// Output is the formatter's captured stdout.
	Output string
	// Hint names the command that reformats the offending sources.
	Hint string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return "style check failed: " + e.Hint
}

// DiagnosticOutput returns the tool output to surface to the user.
func (e *FormatError) DiagnosticOutput() string { return e.Output }

// BuildError reports a non-zero compiler exit.
type BuildError struct {
	// Output is the compiler's captured stderr.
	Output string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return "failed to compile fixtures"
}

// DiagnosticOutput returns the tool output to surface to the user.
func (e *BuildError) DiagnosticOutput() string { return e.Output }
