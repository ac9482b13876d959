// Package implicant defines the cube representation used by the minimizer.
//
// An Implicant is a pair (value, mask) over the Boolean hypercube. A bit set in
// mask is a wildcard: the corresponding variable may take any value. The other
// bits of value fix the remaining variables. For instance, with 3 variables
// A, B and C (A being the most significant bit), the implicant written "0-1"
// has value 001 and mask 010 and covers the minterms 1 (001) and 3 (011).
package implicant

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// An Implicant is a cube of the Boolean hypercube.
// Implicants are values: they can be compared with == and used as map keys.
type Implicant struct {
	value uint32
	mask  uint32
}

// New returns the implicant covering the single given term.
func New(term uint32) Implicant {
	return Implicant{value: term}
}

// Value returns the fixed bits of imp. Wildcard positions are always 0.
func (imp Implicant) Value() uint32 { return imp.value }

// Mask returns the wildcard bits of imp.
func (imp Implicant) Mask() uint32 { return imp.mask }

// Combine merges imp and other if they have the same wildcards and differ in
// exactly one fixed bit. That bit becomes a wildcard of the result.
// ok is false if the two implicants cannot be merged.
func (imp Implicant) Combine(other Implicant) (res Implicant, ok bool) {
	if imp.mask != other.mask {
		return Implicant{}, false
	}
	diff := imp.value ^ other.value
	if bits.OnesCount32(diff) != 1 {
		return Implicant{}, false
	}
	return Implicant{value: imp.value &^ diff, mask: imp.mask | diff}, true
}

// Terms returns all the terms covered by imp, in increasing order.
// There are exactly 2^WildcardCount() of them.
func (imp Implicant) Terms() []uint32 {
	terms := make([]uint32, 0, 1<<bits.OnesCount32(imp.mask))
	// (sub - mask) & mask walks the subsets of mask in increasing order.
	for sub := uint32(0); ; sub = (sub - imp.mask) & imp.mask {
		terms = append(terms, imp.value|sub)
		if sub == imp.mask {
			return terms
		}
	}
}

// WildcardCount returns the number of wildcards in imp.
func (imp Implicant) WildcardCount() int {
	return bits.OnesCount32(imp.mask)
}

// LiteralCount returns the number of literals needed to express imp
// with the given number of variables.
func (imp Implicant) LiteralCount(variableCount int) int {
	return variableCount - imp.WildcardCount()
}

// Covers returns true iff term is one of the terms covered by imp.
func (imp Implicant) Covers(term uint32) bool {
	return term&^imp.mask == imp.value
}

// Less is the construction order of implicants: by value, then by mask.
// It is used to make the reduction of the prime implicant chart deterministic.
func Less(a, b Implicant) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	return a.mask < b.mask
}

// Parse reads an implicant written with one character per variable,
// most significant first: '0', '1' or '-' for a wildcard.
func Parse(s string) (Implicant, error) {
	if len(s) == 0 || len(s) > 32 {
		return Implicant{}, errors.Errorf("invalid implicant %q: expected between 1 and 32 characters", s)
	}
	var imp Implicant
	for i, c := range s {
		bit := uint32(1) << (len(s) - 1 - i)
		switch c {
		case '0':
		case '1':
			imp.value |= bit
		case '-':
			imp.mask |= bit
		default:
			return Implicant{}, errors.Errorf("invalid character %q in implicant %q", c, s)
		}
	}
	return imp, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Implicant {
	imp, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return imp
}

// Format writes imp with the notation understood by Parse.
func (imp Implicant) Format(variableCount int) string {
	var sb strings.Builder
	for i := variableCount - 1; i >= 0; i-- {
		switch {
		case imp.mask>>i&1 == 1:
			sb.WriteByte('-')
		case imp.value>>i&1 == 1:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// String writes imp on the smallest width holding all its fixed and wildcard
// bits: leading 0 bits are dropped. Use Format to get one character per
// variable.
func (imp Implicant) String() string {
	width := bits.Len32(imp.value | imp.mask)
	if width == 0 {
		width = 1
	}
	return imp.Format(width)
}
