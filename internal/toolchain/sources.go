package toolchain

import "embed"

// Sources holds this package's source files. The pipeline folds them into
// every content fingerprint, so changing the compiler flag set or the
// invocation logic invalidates all cached artifacts. The list is spelled
// out so test files never influence fingerprints.
//
//go:embed command.go errors.go sources.go toolchain.go
var Sources embed.FS
