package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vk/fixturec/internal/ctxlog"
	"github.com/vk/fixturec/internal/fsutil"
)

// CollectEntries scans the immediate children of sourceDir and returns one
// Entry per recognized source file that is not already satisfied by a cache
// marker in outputDir. Enumeration order is platform-dependent; callers must
// only rely on every surviving entry appearing exactly once.
func CollectEntries(ctx context.Context, sourceDir, outputDir string, salt []byte) ([]Entry, error) {
	logger := ctxlog.FromContext(ctx)

	paths, err := fsutil.ListFilesByExtension(sourceDir, SourceExt)
	if err != nil {
		return nil, &IoError{Path: sourceDir, Err: err}
	}

	var entries []Entry
	for _, path := range paths {
		entry, err := NewEntry(path, salt)
		if err != nil {
			return nil, err
		}

		if markerExists(outputDir, entry.Sum.String()) {
			logger.Debug("Unit already built, skipping.", "unit", entry.Name(), "fingerprint", entry.Sum)
			continue
		}
		entries = append(entries, entry)
	}

	logger.Debug("Collected entries.", "candidates", len(paths), "surviving", len(entries))
	return entries, nil
}

// markerExists reports whether a cache marker with the given name is present
// in outputDir. Only existence matters; marker contents are never read.
func markerExists(outputDir, name string) bool {
	_, err := os.Stat(filepath.Join(outputDir, name))
	return err == nil
}
