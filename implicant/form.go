package implicant

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Form is the normal form of a minimized expression.
type Form byte

const (
	// SOP is the Sum of Products form: a disjunction of conjunctions.
	// Implicants cover minterms.
	SOP Form = iota
	// POS is the Product of Sums form: a conjunction of disjunctions.
	// Implicants cover maxterms.
	POS
)

func (f Form) String() string {
	switch f {
	case SOP:
		return "SOP"
	case POS:
		return "POS"
	default:
		return fmt.Sprintf("Form(%d)", byte(f))
	}
}

// ParseForm returns the Form named s ("sop" or "pos", case insensitive).
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(s) {
	case "sop":
		return SOP, nil
	case "pos":
		return POS, nil
	default:
		return 0, errors.Errorf("invalid form %q: expected sop or pos", s)
	}
}

// negated returns true iff a fixed bit with the given value is written as a
// negated literal in form f.
// A 0 bit of a maxterm is a non-negated literal of the sum.
func (f Form) negated(bit uint32) bool {
	if f == SOP {
		return bit == 0
	}
	return bit == 1
}

// A Literal is a possibly negated variable occurring in an expression.
type Literal struct {
	Name    string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "~" + l.Name
	}
	return l.Name
}

// Literals returns the literals needed to express imp in form f, in the
// order of names. names[0] is the variable of the most significant bit.
func (imp Implicant) Literals(names []string, f Form) []Literal {
	var lits []Literal
	n := len(names)
	for i := n - 1; i >= 0; i-- {
		if imp.mask>>i&1 == 1 {
			continue
		}
		lits = append(lits, Literal{Name: names[n-1-i], Negated: f.negated(imp.value >> i & 1)})
	}
	return lits
}
