package qm

import (
	"strings"

	"github.com/crillab/gopherqmc/bf"
	"github.com/crillab/gopherqmc/implicant"
)

// Form is the form of a minimized expression.
type Form = implicant.Form

// Available forms.
const (
	SOP = implicant.SOP // Sum of products
	POS = implicant.POS // Product of sums
)

// Literal is a possibly negated variable of a Solution.
type Literal = implicant.Literal

// A Solution is a minimized Boolean expression.
type Solution struct {
	implicants []implicant.Implicant
	expression [][]Literal
	form       Form
}

func newSolution(implicants []implicant.Implicant, variables []string, form Form) Solution {
	expr := make([][]Literal, len(implicants))
	for i, imp := range implicants {
		expr[i] = imp.Literals(variables, form)
	}
	return Solution{implicants: implicants, expression: expr, form: form}
}

// Implicants returns the implicants the expression is made of, in the same
// order as the groups of Expression. In POS form, they are implicants of the
// maxterms.
func (s Solution) Implicants() []implicant.Implicant {
	return append([]implicant.Implicant(nil), s.implicants...)
}

// Expression returns the products of the expression in SOP form, or its sums
// in POS form.
// The constant cases must be handled with IsZero and IsOne first: a constant
// is either an empty expression or a single empty group.
func (s Solution) Expression() [][]Literal {
	return s.expression
}

// Form returns the form of the expression.
func (s Solution) Form() Form {
	return s.form
}

// IsZero returns true iff the expression is the constant 0.
func (s Solution) IsZero() bool {
	switch {
	case len(s.expression) == 0:
		return s.form == SOP
	case len(s.expression[0]) == 0:
		return s.form == POS
	default:
		return false
	}
}

// IsOne returns true iff the expression is the constant 1.
func (s Solution) IsOne() bool {
	switch {
	case len(s.expression) == 0:
		return s.form == POS
	case len(s.expression[0]) == 0:
		return s.form == SOP
	default:
		return false
	}
}

// String returns the expression with infix operators: "∧" for and, "∨" for
// or, "~" for negation.
// Groups are parenthesized only when there are several groups and they have
// several literals.
func (s Solution) String() string {
	if s.IsZero() {
		return "0"
	}
	if s.IsOne() {
		return "1"
	}
	inner, outer := " ∧ ", " ∨ "
	if s.form == POS {
		inner, outer = outer, inner
	}
	var sb strings.Builder
	for i, group := range s.expression {
		if i > 0 {
			sb.WriteString(outer)
		}
		paren := len(s.expression) > 1 && len(group) > 1
		if paren {
			sb.WriteByte('(')
		}
		for j, l := range group {
			if j > 0 {
				sb.WriteString(inner)
			}
			sb.WriteString(l.String())
		}
		if paren {
			sb.WriteByte(')')
		}
	}
	return sb.String()
}

// Formula returns the expression as a bf.Formula.
func (s Solution) Formula() bf.Formula {
	switch {
	case s.IsZero():
		return bf.False
	case s.IsOne():
		return bf.True
	}
	groups := make([]bf.Formula, len(s.expression))
	for i, group := range s.expression {
		lits := make([]bf.Formula, len(group))
		for j, l := range group {
			lits[j] = bf.Var(l.Name)
			if l.Negated {
				lits[j] = bf.Not(lits[j])
			}
		}
		if s.form == SOP {
			groups[i] = bf.And(lits...)
		} else {
			groups[i] = bf.Or(lits...)
		}
	}
	if s.form == SOP {
		return bf.Or(groups...)
	}
	return bf.And(groups...)
}

// ParseForm returns the Form named s ("sop" or "pos", case insensitive).
func ParseForm(s string) (Form, error) {
	return implicant.ParseForm(s)
}
