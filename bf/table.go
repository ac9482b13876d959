package bf

import (
	"sort"

	"github.com/pkg/errors"
)

// MaxTableVariables is the maximum number of variables Minterms accepts.
const MaxTableVariables = 26

// Variables returns the sorted names of the variables appearing in f.
func Variables(f Formula) []string {
	seen := make(map[string]bool)
	var rec func(f Formula)
	rec = func(f Formula) {
		switch f := f.(type) {
		case variable:
			if !f.dummy {
				seen[f.name] = true
			}
		case lit:
			rec(f.v)
		case not:
			rec(f[0])
		case and:
			for _, sub := range f {
				rec(sub)
			}
		case or:
			for _, sub := range f {
				rec(sub)
			}
		}
	}
	rec(f)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Minterms returns the terms for which f is true, in increasing order.
// Bit i of a term, counting from the most significant one, is the value of
// names[i]. All the variables of f must appear in names.
func Minterms(f Formula, names []string) ([]uint32, error) {
	if len(names) > MaxTableVariables {
		return nil, errors.Errorf("too many variables: %d (expected at most %d)", len(names), MaxTableVariables)
	}
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	for _, name := range Variables(f) {
		if !known[name] {
			return nil, errors.Errorf("variable %q of formula is not in %v", name, names)
		}
	}
	var res []uint32
	model := make(map[string]bool, len(names))
	for term := uint32(0); term < uint32(1)<<len(names); term++ {
		for i, name := range names {
			model[name] = term>>(len(names)-1-i)&1 == 1
		}
		if f.Eval(model) {
			res = append(res, term)
		}
	}
	return res, nil
}
