package implicant

import "sort"

// Sort sorts implicants in presentation order for form f.
// Most general implicants come first. Between implicants with the same number
// of wildcards, bits are scanned from the most significant one: when both fix
// the variable with opposite values, the one with the non-negated literal
// comes first; when only one fixes it, that one comes first.
func Sort(implicants []Implicant, f Form) {
	sort.Slice(implicants, func(i, j int) bool {
		return before(implicants[i], implicants[j], f)
	})
}

func before(imp1, imp2 Implicant, f Form) bool {
	if wc1, wc2 := imp1.WildcardCount(), imp2.WildcardCount(); wc1 != wc2 {
		return wc1 > wc2
	}
	for i := 31; i >= 0; i-- {
		val1, val2 := imp1.value>>i&1, imp2.value>>i&1
		mask1, mask2 := imp1.mask>>i&1, imp2.mask>>i&1
		if mask1 == 0 && mask2 == 0 && val1 != val2 {
			return !f.negated(val1)
		}
		if mask1 != mask2 {
			return mask1 == 0
		}
	}
	return false
}

// SortLess sorts implicants in construction order (see Less).
func SortLess(implicants []Implicant) {
	sort.Slice(implicants, func(i, j int) bool {
		return Less(implicants[i], implicants[j])
	})
}
