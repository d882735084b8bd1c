package manifest

import "embed"

// Sources holds this package's source files. The pipeline folds them into
// every content fingerprint, so changing the descriptor shape, the release
// profile or the dependency resolution invalidates all cached artifacts.
// The list is spelled out so test files never influence fingerprints.
//
//go:embed manifest.go sources.go
var Sources embed.FS
