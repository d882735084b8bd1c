package pipeline

// ConfigError reports a misconfigured workspace: a missing workspace root,
// an invalid or duplicate unit name, or an unresolvable dependency path.
type ConfigError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err == nil {
		return "configuration error: " + e.Op
	}
	return "configuration error: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error { return e.Err }

// IoError reports a failed filesystem operation on a specific path.
type IoError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IoError) Error() string {
	return "io error on " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *IoError) Unwrap() error { return e.Err }

// PostProcessError reports a compiled module that could not be parsed.
// Malformed compiler output is an unrecoverable toolchain failure, never
// repaired in place.
type PostProcessError struct {
	Unit string
	Err  error
}

// Error implements the error interface.
func (e *PostProcessError) Error() string {
	return "failed to post-process unit " + e.Unit + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *PostProcessError) Unwrap() error { return e.Err }
