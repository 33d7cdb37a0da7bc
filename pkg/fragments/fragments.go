// Package fragments holds a catalog of small routines built directly as IR
// graphs. They exercise every vertex kind and serve as fixtures for the CLI
// and for tests of the consumers of the IR.
package fragments

import (
	"errors"
	"fmt"

	"github.com/ritzau/sea-ir/pkg/ir"
)

// ErrUnknownFragment is returned by Lookup for names not in the catalog
var ErrUnknownFragment = errors.New("unknown fragment")

// Fragment is a named routine with its expected verification result
type Fragment struct {
	Name        string
	Description string
	Verifies    bool
	Build       func() (*ir.Graph, error)
}

var catalog = []Fragment{
	{
		Name:        "straight-line",
		Description: "start; pass; return 1",
		Verifies:    true,
		Build:       straightLine,
	},
	{
		Name:        "if-else",
		Description: "if !(x <= 0) { y = 1 } else { y = 2 }; return y",
		Verifies:    true,
		Build:       ifElse,
	},
	{
		Name:        "counting-loop",
		Description: "i = 0; while i < 10 { i = i + 1 }; return i",
		Verifies:    true,
		Build:       countingLoop,
	},
	{
		Name:        "objects",
		Description: "p = new Point(); p.x = n++; print(p.x); p.describe(); return",
		Verifies:    true,
		Build:       objects,
	},
	{
		Name:        "nested-scope",
		Description: "fn scale(v) { return v * k }; return scale(2)",
		Verifies:    true,
		Build:       nestedScope,
	},
	{
		Name:        "incomplete-branch",
		Description: "if true { return } else <missing>",
		Verifies:    false,
		Build:       incompleteBranch,
	},
	{
		Name:        "lonely-phi",
		Description: "a merge whose phi has a single operand",
		Verifies:    false,
		Build:       lonelyPhi,
	},
}

// All returns the catalog in a stable order
func All() []Fragment {
	out := make([]Fragment, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the fragment names in catalog order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, f := range catalog {
		names = append(names, f.Name)
	}
	return names
}

// Lookup finds a fragment by name
func Lookup(name string) (Fragment, error) {
	for _, f := range catalog {
		if f.Name == name {
			return f, nil
		}
	}
	return Fragment{}, fmt.Errorf("%q: %w", name, ErrUnknownFragment)
}

// Select resolves names to fragments; no names selects the whole catalog
func Select(names []string) ([]Fragment, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Fragment, 0, len(names))
	for _, name := range names {
		f, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
