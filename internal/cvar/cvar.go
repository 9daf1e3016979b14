package cvar

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Registry holds the recognized launch options for one process. A process
// normally uses the package-level Default registry; tests build their own.
type Registry struct {
	fs *pflag.FlagSet
	// category per option name, for grouped usage output.
	categories map[string]string
}

// Default is the process-wide registry. Options registered on it at package
// init time become part of the launch configuration.
var Default = NewRegistry("apphost")

// NewRegistry returns an empty registry named for usage output.
func NewRegistry(name string) *Registry {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	// The caller decides where usage goes; keep pflag from printing its own.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return &Registry{
		fs:         fs,
		categories: make(map[string]string),
	}
}

// Bool registers a boolean option and returns a pointer to its value.
func (r *Registry) Bool(name string, def bool, usage, category string) *bool {
	r.categories[name] = category
	return r.fs.Bool(name, def, usage)
}

// String registers a string option and returns a pointer to its value.
func (r *Registry) String(name, def, usage, category string) *string {
	r.categories[name] = category
	return r.fs.String(name, def, usage)
}

// Parse resolves option values from args, which must not include argv[0].
// A help request surfaces as pflag.ErrHelp; unknown options are errors.
func (r *Registry) Parse(args []string) error {
	return r.fs.Parse(args)
}

// Changed reports whether the named option was set explicitly by Parse
// (as opposed to holding its compiled-in or file-supplied default).
func (r *Registry) Changed(name string) bool {
	return r.fs.Changed(name)
}

// BoolValue reads a boolean option, falling back when it was never
// registered. The fallback keeps collaborators usable against reduced
// registries in tests.
func (r *Registry) BoolValue(name string, fallback bool) bool {
	v, err := r.fs.GetBool(name)
	if err != nil {
		return fallback
	}
	return v
}

// StringValue reads a string option with the same fallback contract as
// BoolValue.
func (r *Registry) StringValue(name, fallback string) string {
	v, err := r.fs.GetString(name)
	if err != nil {
		return fallback
	}
	return v
}

// Set assigns an option by name, marking it as explicitly changed.
func (r *Registry) Set(name, value string) error {
	return r.fs.Set(name, value)
}

// Usage writes the recognized options grouped by category.
func (r *Registry) Usage(w io.Writer) {
	fmt.Fprint(w, "Options:\n")

	byCategory := make(map[string]*pflag.FlagSet)
	var order []string
	r.fs.VisitAll(func(f *pflag.Flag) {
		cat := r.categories[f.Name]
		if cat == "" {
			cat = "General"
		}
		sub, ok := byCategory[cat]
		if !ok {
			sub = pflag.NewFlagSet(cat, pflag.ContinueOnError)
			byCategory[cat] = sub
			order = append(order, cat)
		}
		sub.AddFlag(f)
	})

	for _, cat := range order {
		fmt.Fprintf(w, "\n%s:\n%s", cat, byCategory[cat].FlagUsages())
	}
}
