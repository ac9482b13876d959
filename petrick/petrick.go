// Package petrick solves the covering problem left by a simplified prime
// implicant chart with Petrick's method.
//
// Each term to cover is expressed as the sum of the implicants covering it.
// The product of all those sums is then distributed into a sum of products,
// each product being a set of implicants covering all the terms. Products
// that are supersets of other products are absorbed along the way
// (X + XY = X). The smallest remaining products are the solutions.
package petrick

import (
	"github.com/crillab/gopherqmc/cancel"
	"github.com/crillab/gopherqmc/implicant"
)

// Solve returns all the minimal sets of implicants covering every column.
// Each column lists the implicants covering one term.
// Solutions have the fewest implicants possible and, among those, the most
// wildcards possible. If there is no column, the only solution is the empty
// set.
func Solve(columns [][]implicant.Implicant, sig cancel.Signal) ([][]implicant.Implicant, error) {
	if len(columns) == 0 {
		return [][]implicant.Implicant{{}}, nil
	}
	sums := make([]sum, len(columns))
	for i, col := range columns {
		sums[i] = newSum(col)
	}
	for len(sums) > 1 {
		if err := cancel.Check(sig); err != nil {
			return nil, err
		}
		var err error
		if sums, err = distribute(sums, sig); err != nil {
			return nil, err
		}
		for i := range sums {
			if err := sums[i].absorb(sig); err != nil {
				return nil, err
			}
		}
	}
	if err := cancel.Check(sig); err != nil {
		return nil, err
	}
	candidates := make([][]implicant.Implicant, len(sums[0]))
	for i, p := range sums[0] {
		candidates[i] = p
	}
	return minimalLiterals(minimalImplicants(candidates)), nil
}

// distribute multiplies adjacent sums, halving their number.
// An odd trailing sum is kept as is.
func distribute(sums []sum, sig cancel.Signal) ([]sum, error) {
	res := make([]sum, 0, (len(sums)+1)/2)
	for i := 0; i+1 < len(sums); i += 2 {
		if err := cancel.Check(sig); err != nil {
			return nil, err
		}
		s, err := sums[i].and(sums[i+1], sig)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	if len(sums)%2 == 1 {
		res = append(res, sums[len(sums)-1])
	}
	return res, nil
}

func minimalImplicants(candidates [][]implicant.Implicant) [][]implicant.Implicant {
	min := len(candidates[0])
	for _, c := range candidates[1:] {
		if len(c) < min {
			min = len(c)
		}
	}
	var res [][]implicant.Implicant
	for _, c := range candidates {
		if len(c) == min {
			res = append(res, c)
		}
	}
	return res
}

// minimalLiterals keeps the candidates with the most wildcards. As all
// candidates have the same number of implicants, they have the fewest
// literals.
func minimalLiterals(candidates [][]implicant.Implicant) [][]implicant.Implicant {
	wildcards := func(c []implicant.Implicant) int {
		n := 0
		for _, imp := range c {
			n += imp.WildcardCount()
		}
		return n
	}
	max := wildcards(candidates[0])
	for _, c := range candidates[1:] {
		if w := wildcards(c); w > max {
			max = w
		}
	}
	var res [][]implicant.Implicant
	for _, c := range candidates {
		if wildcards(c) == max {
			res = append(res, c)
		}
	}
	return res
}
