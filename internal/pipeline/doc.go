// Package pipeline implements the incremental fixture compilation pipeline:
// scan sources, drop entries already satisfied by a cache marker, synthesize
// a build descriptor into a scratch directory, verify formatting, compile,
// normalize each binary's export surface and commit it together with its
// marker. Any stage failure aborts the remaining stages; the only state that
// outlives a run is the output directory's (binary, marker) pairs.
package pipeline
