package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// WorkspaceFile is the marker file whose contents declare a workspace root.
const WorkspaceFile = "workspace.hcl"

// StyleConfigFile is the shared style configuration copied from the
// workspace root into the scratch directory before the format check.
const StyleConfigFile = ".srcfmt.hcl"

// workspaceSchema matches the top-level workspace block that distinguishes a
// workspace root from an ordinary directory carrying a workspace.hcl.
var workspaceSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "workspace"}},
}

// FindWorkspaceRoot walks ancestor directories starting at dir, looking for
// a workspace.hcl whose contents declare a workspace block. The walk is
// bounded by the filesystem root.
func FindWorkspaceRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", &ConfigError{Op: "resolve workspace search origin", Err: err}
	}

	for {
		if declaresWorkspace(filepath.Join(current, WorkspaceFile)) {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", &ConfigError{Op: fmt.Sprintf("no %s declaring a workspace found above %s", WorkspaceFile, dir)}
		}
		current = parent
	}
}

// declaresWorkspace reports whether path exists, parses as HCL and contains
// a workspace block. Unreadable or malformed files are treated as absent.
func declaresWorkspace(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return false
	}

	content, _, _ := file.Body.PartialContent(workspaceSchema)
	return content != nil && len(content.Blocks) > 0
}
