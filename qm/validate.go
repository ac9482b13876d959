package qm

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// validate checks the variables and the two term sets given to a
// minimization. Errors are reported in this order: variable count, variable
// names, duplicate names, out of bounds terms, terms in both sets.
func validate(variables []string, terms1, terms2 mapset.Set[uint32]) error {
	if len(variables) == 0 || len(variables) > MaxVariables {
		return &InvalidVariableCountError{Count: len(variables), Max: MaxVariables}
	}
	for _, v := range variables {
		if v == "0" || v == "1" || v == "" || strings.TrimSpace(v) != v {
			return &InvalidVariableError{Name: v}
		}
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	dups := mapset.NewThreadUnsafeSet[string]()
	for _, v := range variables {
		if !seen.Add(v) {
			dups.Add(v)
		}
	}
	if dups.Cardinality() > 0 {
		names := dups.ToSlice()
		sort.Strings(names)
		return &DuplicateVariablesError{Names: names}
	}
	bound := uint32(1) << len(variables)
	var outOfBounds []uint32
	terms1.Union(terms2).Each(func(term uint32) bool {
		if term >= bound {
			outOfBounds = append(outOfBounds, term)
		}
		return false
	})
	if len(outOfBounds) > 0 {
		return &TermOutOfBoundsError{Terms: sorted(outOfBounds), VariableCount: len(variables)}
	}
	if conflicts := terms1.Intersect(terms2); conflicts.Cardinality() > 0 {
		return &TermConflictError{Terms: sorted(conflicts.ToSlice())}
	}
	return nil
}

// dontCares returns all the terms on variableCount bits that are in neither
// set.
func dontCares(variableCount int, minterms, maxterms mapset.Set[uint32]) mapset.Set[uint32] {
	cares := minterms.Union(maxterms)
	res := mapset.NewThreadUnsafeSet[uint32]()
	for term := uint32(0); term < uint32(1)<<variableCount; term++ {
		if !cares.Contains(term) {
			res.Add(term)
		}
	}
	return res
}

func sorted(terms []uint32) []uint32 {
	sort.Slice(terms, func(i, j int) bool { return terms[i] < terms[j] })
	return terms
}
