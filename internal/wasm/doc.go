// Package wasm implements a section-level codec for binary WebAssembly
// modules. A module is decoded into an ordered list of raw sections; a single
// section can be rewritten and the module re-encoded, leaving every other
// section byte-identical to the input. Only the export section has an
// entry-level codec, since that is the only section the pipeline mutates.
package wasm
