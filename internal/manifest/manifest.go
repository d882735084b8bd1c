// Package manifest synthesizes the ephemeral build descriptor the toolchain
// compiles from. The descriptor lives only inside a run's scratch directory
// and is never persisted.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Filename is the name of the synthesized descriptor inside the scratch
// directory.
const Filename = "build.hcl"

// Unit is one binary compilation target of the descriptor.
type Unit struct {
	// Name becomes the unit's bin target and output filename stem.
	Name string
	// Source is the absolute path of the unit's source file.
	Source string
}

// identRe is the rule a unit name must satisfy to be a valid bin target.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Synthesize writes a build.hcl into dir declaring one bin unit per entry,
// the two fixed library dependencies resolved relative to workspaceRoot, and
// the size-optimized release profile. Unit names must be valid identifiers
// and unique; two source files sharing a file stem are rejected rather than
// silently overwriting one another's target.
func Synthesize(units []Unit, workspaceRoot, dir string) error {
	seen := make(map[string]string, len(units))
	for _, u := range units {
		if !identRe.MatchString(u.Name) {
			return fmt.Errorf("unit name %q is not a valid identifier", u.Name)
		}
		if prev, dup := seen[u.Name]; dup {
			return fmt.Errorf("unit name %q is declared by both %s and %s", u.Name, prev, u.Source)
		}
		seen[u.Name] = u.Source
	}

	uapiPath, err := canonicalize(filepath.Join(workspaceRoot, "lib", "uapi"))
	if err != nil {
		return fmt.Errorf("failed to resolve uapi dependency: %w", err)
	}
	commonPath, err := canonicalize(filepath.Join(workspaceRoot, "lib", "common"))
	if err != nil {
		return fmt.Errorf("failed to resolve common dependency: %w", err)
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for _, u := range units {
		unitBody := body.AppendNewBlock("unit", []string{u.Name}).Body()
		unitBody.SetAttributeValue("source", cty.StringVal(u.Source))
		body.AppendNewline()
	}

	depsBody := body.AppendNewBlock("dependencies", nil).Body()
	depsBody.SetAttributeValue("uapi", cty.StringVal(uapiPath))
	depsBody.SetAttributeValue("common", cty.StringVal(commonPath))
	body.AppendNewline()

	// Artifacts are fixtures invoked repeatedly downstream, so compile
	// latency is traded for output size.
	profileBody := body.AppendNewBlock("profile", []string{"release"}).Body()
	profileBody.SetAttributeValue("opt_level", cty.NumberIntVal(3))
	profileBody.SetAttributeValue("lto", cty.BoolVal(true))
	profileBody.SetAttributeValue("codegen_units", cty.NumberIntVal(1))

	if err := os.WriteFile(filepath.Join(dir, Filename), f.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", Filename, err)
	}
	return nil
}

// canonicalize resolves path to an absolute, symlink-free form, failing if
// the path does not exist.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return resolved, nil
}
