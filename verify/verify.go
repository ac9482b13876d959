// Package verify checks that a set of implicants is a correct cover of a
// Boolean function, using binary decision diagrams.
//
// It shares no code with the minimization itself: every term and implicant is
// translated to a BDD and the check is done by counting the satisfying
// assignments of the difference between the cover and the function.
package verify

import (
	"fmt"

	"github.com/dalzilio/rudd"
	"github.com/pkg/errors"

	"github.com/crillab/gopherqmc/implicant"
)

// An Error reports the terms a cover gets wrong.
type Error struct {
	// Missing is the number of terms that are not covered.
	Missing uint64
	// Extra is the number of covered terms that are neither terms nor
	// don't-cares.
	Extra uint64
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid cover: %d missing terms, %d extra terms", e.Missing, e.Extra)
}

// Check returns nil iff cover covers all the terms, and only terms or
// dontCares, on variableCount variables.
// Implicants are read as products: to check the maxterm implicants of a
// function, give its maxterms as terms.
func Check(variableCount int, terms, dontCares []uint32, cover []implicant.Implicant) error {
	bdd, err := rudd.New(variableCount, rudd.Nodesize(10000), rudd.Cachesize(3000))
	if err != nil {
		return errors.Wrap(err, "could not create BDD")
	}
	b := builder{bdd: bdd, variableCount: variableCount}
	target := b.terms(terms)
	allowed := bdd.Or(target, b.terms(dontCares))
	covered := b.cover(cover)
	missing := bdd.Satcount(bdd.And(target, bdd.Not(covered)))
	extra := bdd.Satcount(bdd.And(covered, bdd.Not(allowed)))
	if msg := bdd.Error(); msg != "" {
		return errors.Errorf("BDD error: %s", msg)
	}
	if missing.Sign() == 0 && extra.Sign() == 0 {
		return nil
	}
	return &Error{Missing: missing.Uint64(), Extra: extra.Uint64()}
}

// builder translates terms and implicants to BDDs. BDD variable 0 is the most
// significant bit.
type builder struct {
	bdd           *rudd.BDD
	variableCount int
}

func (b builder) terms(terms []uint32) rudd.Node {
	res := b.bdd.False()
	for _, t := range terms {
		res = b.bdd.Or(res, b.implicant(implicant.New(t)))
	}
	return res
}

func (b builder) cover(cover []implicant.Implicant) rudd.Node {
	res := b.bdd.False()
	for _, imp := range cover {
		res = b.bdd.Or(res, b.implicant(imp))
	}
	return res
}

func (b builder) implicant(imp implicant.Implicant) rudd.Node {
	res := b.bdd.True()
	for i := 0; i < b.variableCount; i++ {
		bit := uint(b.variableCount - 1 - i)
		if imp.Mask()>>bit&1 == 1 {
			continue
		}
		if imp.Value()>>bit&1 == 1 {
			res = b.bdd.And(res, b.bdd.Ithvar(i))
		} else {
			res = b.bdd.And(res, b.bdd.NIthvar(i))
		}
	}
	return res
}
