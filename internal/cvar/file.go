package cvar

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// LoadDefaultsFile overlays option defaults from an HCL attributes file of
// the form `name = value`. Values apply only to options the command line did
// not set explicitly. A missing file is not an error; a malformed file or an
// unknown option name is, so the caller can report it (the registry's
// compiled-in defaults stand either way).
func (r *Registry) LoadDefaultsFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading launch defaults: %w", err)
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return fmt.Errorf("parsing launch defaults %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("reading launch defaults %s: %w", path, diags)
	}

	for name, attr := range attrs {
		if r.fs.Lookup(name) == nil {
			return fmt.Errorf("launch defaults %s: unknown option %q", path, name)
		}
		if r.Changed(name) {
			// Command line wins over the file.
			continue
		}

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("launch defaults %s: option %q: %w", path, name, diags)
		}

		text, err := ctyToFlagValue(val)
		if err != nil {
			return fmt.Errorf("launch defaults %s: option %q: %w", path, name, err)
		}
		if err := r.fs.Set(name, text); err != nil {
			return fmt.Errorf("launch defaults %s: option %q: %w", path, name, err)
		}
	}
	return nil
}

// ctyToFlagValue renders an HCL value in the textual form pflag accepts.
func ctyToFlagValue(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("null value")
	}
	switch val.Type() {
	case cty.Bool:
		return fmt.Sprintf("%t", val.True()), nil
	case cty.String:
		return val.AsString(), nil
	case cty.Number:
		return val.AsBigFloat().Text('f', -1), nil
	default:
		return "", fmt.Errorf("unsupported value type %s", val.Type().FriendlyName())
	}
}
