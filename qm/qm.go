package qm

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/gopherqmc/cancel"
	"github.com/crillab/gopherqmc/chart"
	"github.com/crillab/gopherqmc/implicant"
	"github.com/crillab/gopherqmc/petrick"
	"github.com/crillab/gopherqmc/prime"
)

// MaxVariables is the maximum number of variables of a function.
const MaxVariables = 26

// DefaultVariables are the uppercase letters of the English alphabet.
// The first n of them are suitable names for a function of n variables.
var DefaultVariables = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// Minimize returns the minimal expressions, in the given form, of the function
// of variables that is true for minterms and false for maxterms.
// All the other terms are don't-cares.
func Minimize(variables []string, minterms, maxterms []uint32, form Form, opts ...Option) ([]Solution, error) {
	mins := mapset.NewThreadUnsafeSet(minterms...)
	maxs := mapset.NewThreadUnsafeSet(maxterms...)
	if err := validate(variables, mins, maxs); err != nil {
		return nil, err
	}
	terms := mins
	if form == POS {
		terms = maxs
	}
	return minimize(variables, terms, dontCares(len(variables), mins, maxs), form, opts)
}

// MinimizeMinterms returns the minimal expressions, in SOP form, of the function
// of variables that is true for minterms and may be anything for dontCares.
// It is false for all the other terms.
func MinimizeMinterms(variables []string, minterms, dontCares []uint32, opts ...Option) ([]Solution, error) {
	return minimizeTerms(variables, minterms, dontCares, SOP, opts)
}

// MinimizeMaxterms returns the minimal expressions, in POS form, of the function
// of variables that is false for maxterms and may be anything for dontCares.
// It is true for all the other terms.
func MinimizeMaxterms(variables []string, maxterms, dontCares []uint32, opts ...Option) ([]Solution, error) {
	return minimizeTerms(variables, maxterms, dontCares, POS, opts)
}

func minimizeTerms(variables []string, terms, dontCares []uint32, form Form, opts []Option) ([]Solution, error) {
	ts := mapset.NewThreadUnsafeSet(terms...)
	dcs := mapset.NewThreadUnsafeSet(dontCares...)
	if err := validate(variables, ts, dcs); err != nil {
		return nil, err
	}
	return minimize(variables, ts, dcs, form, opts)
}

// PrimeImplicants returns all the prime implicants, in the given form, of the
// function of variables that is true for minterms and false for maxterms.
// They are sorted by value then by mask.
func PrimeImplicants(variables []string, minterms, maxterms []uint32, form Form, opts ...Option) ([]implicant.Implicant, error) {
	mins := mapset.NewThreadUnsafeSet(minterms...)
	maxs := mapset.NewThreadUnsafeSet(maxterms...)
	if err := validate(variables, mins, maxs); err != nil {
		return nil, err
	}
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	terms := mins
	if form == POS {
		terms = maxs
	}
	dcs := dontCares(len(variables), mins, maxs).ToSlice()
	return cancel.Run(c.ctx, c.timeout, func(sig cancel.Signal) ([]implicant.Implicant, error) {
		return prime.Find(len(variables), terms.ToSlice(), dcs, form, sig)
	})
}

func minimize(variables []string, terms, dontCares mapset.Set[uint32], form Form, opts []Option) ([]Solution, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	log := c.logger.WithFields(logrus.Fields{
		"variables": len(variables),
		"form":      form,
	})
	m := minimizer{
		variableCount: len(variables),
		terms:         terms,
		dontCares:     dontCares,
		form:          form,
		allSolutions:  c.allSolutions,
		log:           log,
	}
	covers, err := cancel.Run(c.ctx, c.timeout, m.run)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			log.WithField("timeout", c.timeout).Warn("minimization cancelled")
		}
		return nil, err
	}
	solutions := make([]Solution, len(covers))
	for i, cover := range covers {
		solutions[i] = newSolution(cover, variables, form)
	}
	return solutions, nil
}

// A minimizer holds the input of a single minimization.
type minimizer struct {
	variableCount int
	terms         mapset.Set[uint32]
	dontCares     mapset.Set[uint32]
	form          Form
	allSolutions  bool
	log           logrus.FieldLogger
}

// run returns the minimal covers of the terms, each one sorted in
// presentation order.
func (m *minimizer) run(sig cancel.Signal) ([][]implicant.Implicant, error) {
	dcs := m.dontCares.ToSlice()
	primes, err := prime.Find(m.variableCount, m.terms.ToSlice(), dcs, m.form, sig)
	if err != nil {
		return nil, err
	}
	m.log.WithField("primes", len(primes)).Debug("found prime implicants")

	c := chart.New(primes, dcs)
	essentials, err := c.Simplify(m.allSolutions, sig)
	if err != nil {
		return nil, err
	}
	columns := c.CoveringImplicants()
	m.log.WithFields(logrus.Fields{
		"essentials": len(essentials),
		"remaining":  len(columns),
	}).Debug("simplified prime implicant chart")

	candidates, err := petrick.Solve(columns, sig)
	if err != nil {
		return nil, err
	}
	m.log.WithField("solutions", len(candidates)).Debug("solved covering problem")

	covers := make([][]implicant.Implicant, len(candidates))
	for i, cand := range candidates {
		if err := cancel.Check(sig); err != nil {
			return nil, err
		}
		cover := make([]implicant.Implicant, 0, len(essentials)+len(cand))
		cover = append(append(cover, essentials...), cand...)
		implicant.Sort(cover, m.form)
		m.mustCover(cover)
		covers[i] = cover
	}
	return covers, nil
}

// mustCover panics if cover misses a term or covers a term that is neither a
// term nor a don't-care.
func (m *minimizer) mustCover(cover []implicant.Implicant) {
	covered := mapset.NewThreadUnsafeSet[uint32]()
	for _, imp := range cover {
		covered.Append(imp.Terms()...)
	}
	if !m.terms.IsSubset(covered) || !covered.IsSubset(m.terms.Union(m.dontCares)) {
		panic(fmt.Sprintf("invalid cover %s for terms %v and don't-cares %v", formatCover(cover, m.variableCount), sorted(m.terms.ToSlice()), sorted(m.dontCares.ToSlice())))
	}
}

func formatCover(cover []implicant.Implicant, variableCount int) string {
	strs := make([]string, len(cover))
	for i, imp := range cover {
		strs[i] = imp.Format(variableCount)
	}
	return "[" + strings.Join(strs, " ") + "]"
}
