package petrick

import (
	"github.com/crillab/gopherqmc/cancel"
	"github.com/crillab/gopherqmc/implicant"
)

// A product is a conjunction of implicants.
// It is sorted with implicant.Less and has no duplicates.
type product []implicant.Implicant

// A sum is a disjunction of products.
type sum []product

func newSum(implicants []implicant.Implicant) sum {
	s := make(sum, len(implicants))
	for i, imp := range implicants {
		s[i] = product{imp}
	}
	return s
}

// and returns the distribution of s and other.
func (s sum) and(other sum, sig cancel.Signal) (sum, error) {
	res := make(sum, 0, len(s)*len(other))
	for _, p1 := range s {
		if err := cancel.Check(sig); err != nil {
			return nil, err
		}
		for _, p2 := range other {
			res = append(res, p1.and(p2))
		}
	}
	return res, nil
}

// absorb removes all products that are supersets of another product of s.
// When two products are comparable, the smallest one takes the place of the
// earliest one and the latest one is removed.
func (s *sum) absorb(sig cancel.Signal) error {
	products := *s
	for i := len(products) - 1; i >= 0; i-- {
		if err := cancel.Check(sig); err != nil {
			return err
		}
		for j := i - 1; j >= 0; j-- {
			if p, ok := products[i].absorb(products[j]); ok {
				products[j] = p
				last := len(products) - 1
				products[i] = products[last]
				products = products[:last]
				break
			}
		}
	}
	*s = products
	return nil
}

// and returns the union of p and other.
func (p product) and(other product) product {
	res := make(product, 0, len(p)+len(other))
	i, j := 0, 0
	for i < len(p) && j < len(other) {
		switch {
		case p[i] == other[j]:
			res = append(res, p[i])
			i++
			j++
		case implicant.Less(p[i], other[j]):
			res = append(res, p[i])
			i++
		default:
			res = append(res, other[j])
			j++
		}
	}
	res = append(res, p[i:]...)
	return append(res, other[j:]...)
}

// absorb returns the smallest of p and other if one is a subset of the other.
func (p product) absorb(other product) (product, bool) {
	if p.subsetOf(other) {
		return p, true
	}
	if other.subsetOf(p) {
		return other, true
	}
	return nil, false
}

func (p product) subsetOf(other product) bool {
	if len(p) > len(other) {
		return false
	}
	j := 0
	for _, imp := range p {
		for j < len(other) && implicant.Less(other[j], imp) {
			j++
		}
		if j == len(other) || other[j] != imp {
			return false
		}
		j++
	}
	return true
}
