// Package prime finds the prime implicants of a Boolean function with the
// tabulation method of Quine and McCluskey.
//
// Terms are first grouped by number of set bits (or unset bits, when looking
// for maxterm implicants). Implicants of adjacent groups are then combined,
// generation after generation, until no combination is possible anymore.
// Implicants that never took part in a combination are prime.
package prime

import (
	"math/bits"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/crillab/gopherqmc/cancel"
	"github.com/crillab/gopherqmc/implicant"
)

type set = mapset.Set[implicant.Implicant]

// Find returns the prime implicants covering terms, using dontCares freely.
// Implicants covering only don't-cares are not returned.
// The result is sorted with implicant.Less.
// variableCount must be in [1, 32] and all terms must be lower than
// 2^variableCount.
func Find(variableCount int, terms, dontCares []uint32, form implicant.Form, sig cancel.Signal) ([]implicant.Implicant, error) {
	dcs := mapset.NewThreadUnsafeSet(dontCares...)
	all := mapset.NewThreadUnsafeSet(terms...).Union(dcs)
	groups := group(variableCount, all, form)
	var primes []implicant.Implicant
	for {
		if err := cancel.Check(sig); err != nil {
			return nil, err
		}
		gen := combine(groups)
		for _, g := range groups {
			if err := cancel.Check(sig); err != nil {
				return nil, err
			}
			primes = append(primes, uncombined(g, gen.combined, dcs)...)
		}
		if gen.combined.Cardinality() == 0 {
			break
		}
		groups = gen.groups
	}
	implicant.SortLess(primes)
	return primes, nil
}

// group partitions terms in variableCount+1 groups. In SOP form, group i holds
// the terms with i bits set. In POS form, it holds the terms with i bits unset.
func group(variableCount int, terms mapset.Set[uint32], form implicant.Form) []set {
	groups := make([]set, variableCount+1)
	for i := range groups {
		groups[i] = mapset.NewThreadUnsafeSet[implicant.Implicant]()
	}
	width := uint32(1)<<variableCount - 1
	terms.Each(func(term uint32) bool {
		idx := bits.OnesCount32(term)
		if form == implicant.POS {
			idx = bits.OnesCount32(^term & width)
		}
		groups[idx].Add(implicant.New(term))
		return false
	})
	return groups
}

// A generation is the result of combining all adjacent groups of the
// previous one.
type generation struct {
	groups   []set // One less than in the previous generation
	combined set   // Implicants of the previous generation that were combined
}

func combine(groups []set) generation {
	gen := generation{combined: mapset.NewThreadUnsafeSet[implicant.Implicant]()}
	if len(groups) < 2 {
		return gen
	}
	gen.groups = make([]set, len(groups)-1)
	for i := range gen.groups {
		next := mapset.NewThreadUnsafeSet[implicant.Implicant]()
		groups[i].Each(func(imp1 implicant.Implicant) bool {
			groups[i+1].Each(func(imp2 implicant.Implicant) bool {
				if res, ok := imp1.Combine(imp2); ok {
					next.Add(res)
					gen.combined.Add(imp1)
					gen.combined.Add(imp2)
				}
				return false
			})
			return false
		})
		gen.groups[i] = next
	}
	return gen
}

// uncombined returns the implicants of g that were not combined and are not
// made of don't-cares only.
func uncombined(g, combined set, dontCares mapset.Set[uint32]) []implicant.Implicant {
	var res []implicant.Implicant
	g.Each(func(imp implicant.Implicant) bool {
		if !combined.Contains(imp) && !onlyDontCares(imp, dontCares) {
			res = append(res, imp)
		}
		return false
	})
	return res
}

func onlyDontCares(imp implicant.Implicant, dontCares mapset.Set[uint32]) bool {
	for _, term := range imp.Terms() {
		if !dontCares.Contains(term) {
			return false
		}
	}
	return true
}
