package pipeline

import (
	"github.com/vk/fixturec/internal/wasm"
)

// Exported entry points the downstream harness is allowed to invoke. Every
// other symbol a compiler happens to export must be unreachable once a
// binary is committed.
const (
	ExportDeploy = "deploy"
	ExportCall   = "call"
)

// PostProcess parses a compiled wasm module and filters its export table
// down to the sanctioned entry points: function exports named deploy or
// call. All other sections pass through byte-identical. Minimizing the
// export surface is an interface-hygiene invariant of committed binaries,
// not cosmetics.
func PostProcess(unit string, raw []byte) ([]byte, error) {
	module, err := wasm.Decode(raw)
	if err != nil {
		return nil, &PostProcessError{Unit: unit, Err: err}
	}

	err = module.FilterExports(func(e wasm.Export) bool {
		return e.Kind == wasm.ExportFunc && (e.Name == ExportDeploy || e.Name == ExportCall)
	})
	if err != nil {
		return nil, &PostProcessError{Unit: unit, Err: err}
	}

	return module.Encode(), nil
}
