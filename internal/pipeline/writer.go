package pipeline

import (
	"os"
	"path/filepath"

	"github.com/vk/fixturec/internal/fsutil"
)

// Commit writes the normalized binary for entry into outputDir, then creates
// the zero-byte cache marker named by the entry's fingerprint. The pair is
// treated as one unit: if the marker cannot be created, the binary is
// removed again so no half-committed unit survives. This is the only place
// cache state is mutated.
func Commit(entry Entry, module []byte, outputDir string) error {
	binaryPath := filepath.Join(outputDir, entry.OutputName())
	if err := fsutil.WriteFileAtomic(binaryPath, module, 0o644); err != nil {
		return &IoError{Path: binaryPath, Err: err}
	}

	markerPath := filepath.Join(outputDir, entry.MarkerName())
	if err := os.WriteFile(markerPath, nil, 0o644); err != nil {
		os.Remove(binaryPath)
		return &IoError{Path: markerPath, Err: err}
	}

	return nil
}
