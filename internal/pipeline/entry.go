package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/vk/fixturec/internal/fingerprint"
)

// SourceExt is the extension a file must carry to be recognized as a fixture
// source. Anything else in the source directory is silently ignored.
const SourceExt = ".src"

// BinaryExt is the extension of committed binary artifacts.
const BinaryExt = ".wasm"

// Entry is one fixture source unit surviving the cache check of a run.
// Entries are created per run from directory contents and never persisted.
type Entry struct {
	// Path is the path to the unit's source file.
	Path string
	// Sum is the content fingerprint of the source file.
	Sum fingerprint.Sum
}

// NewEntry fingerprints the source file at path with the given pipeline salt.
func NewEntry(path string, salt []byte) (Entry, error) {
	sum, err := fingerprint.File(path, salt)
	if err != nil {
		return Entry{}, &IoError{Path: path, Err: err}
	}
	return Entry{Path: path, Sum: sum}, nil
}

// Name returns the unit name, derived from the source file stem.
func (e Entry) Name() string {
	return strings.TrimSuffix(filepath.Base(e.Path), SourceExt)
}

// OutputName returns the filename of the unit's committed binary.
func (e Entry) OutputName() string {
	return e.Name() + BinaryExt
}

// MarkerName returns the filename of the unit's cache marker.
func (e Entry) MarkerName() string {
	return e.Sum.String()
}
