package wasm

import "embed"

// Sources holds this package's source files. The pipeline folds them into
// every content fingerprint, so changing the codec or the re-encoding logic
// invalidates all cached artifacts. The list is spelled out so test files
// never influence fingerprints.
//
//go:embed doc.go exports.go leb128.go module.go sources.go
var Sources embed.FS
