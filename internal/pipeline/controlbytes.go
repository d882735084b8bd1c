package pipeline

import (
	"embed"
	"sort"

	"github.com/vk/fixturec/internal/manifest"
	"github.com/vk/fixturec/internal/toolchain"
	"github.com/vk/fixturec/internal/wasm"
)

// The sources of every package holding pipeline control logic are folded
// into each fingerprint as a salt: editing the collector, the synthesized
// descriptor shape, the compiler flag set or the wasm codec invalidates
// every cached artifact, so the cache can never silently serve output
// produced by stale pipeline logic. The list is spelled out so test files
// never influence fingerprints.
//
//go:embed collector.go controlbytes.go doc.go entry.go errors.go pipeline.go postprocess.go workspace.go writer.go
var controlFS embed.FS

// ControlBytes returns the pipeline control-logic bytes: the embedded
// sources of the manifest, toolchain, wasm and pipeline packages,
// concatenated in a fixed package order with sorted filenames within each,
// so the result is stable for a given pipeline version.
func ControlBytes() []byte {
	var out []byte
	for _, sources := range []embed.FS{manifest.Sources, toolchain.Sources, wasm.Sources, controlFS} {
		out = append(out, flattenSources(sources)...)
	}
	return out
}

// flattenSources concatenates the files of an embedded source set in sorted
// filename order.
func flattenSources(sources embed.FS) []byte {
	dirEntries, err := sources.ReadDir(".")
	if err != nil {
		panic("pipeline: reading embedded sources: " + err.Error())
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []byte
	for _, name := range names {
		data, err := sources.ReadFile(name)
		if err != nil {
			panic("pipeline: reading embedded source " + name + ": " + err.Error())
		}
		out = append(out, data...)
	}
	return out
}
