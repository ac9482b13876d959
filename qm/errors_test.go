package qm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadInput(t *testing.T) {
	for _, tt := range []struct {
		Name      string
		Variables []string
		Minterms  []uint32
		Maxterms  []uint32
		Expected  error
	}{
		{Name: "no variables", Expected: &InvalidVariableCountError{Count: 0, Max: 26}},
		{
			Name:      "too many variables",
			Variables: append(append([]string(nil), DefaultVariables...), "AA"),
			Expected:  &InvalidVariableCountError{Count: 27, Max: 26},
		},
		{Name: "zero", Variables: []string{"A", "0"}, Expected: &InvalidVariableError{Name: "0"}},
		{Name: "one", Variables: []string{"1"}, Expected: &InvalidVariableError{Name: "1"}},
		{Name: "empty", Variables: []string{""}, Expected: &InvalidVariableError{Name: ""}},
		{Name: "leading space", Variables: []string{" A"}, Expected: &InvalidVariableError{Name: " A"}},
		{Name: "trailing space", Variables: []string{"A "}, Expected: &InvalidVariableError{Name: "A "}},
		{
			Name:      "duplicates",
			Variables: []string{"B", "A", "B", "A", "C"},
			Expected:  &DuplicateVariablesError{Names: []string{"A", "B"}},
		},
		{
			Name:      "out of bounds",
			Variables: []string{"A"},
			Minterms:  []uint32{2, 0},
			Maxterms:  []uint32{1, 7},
			Expected:  &TermOutOfBoundsError{Terms: []uint32{2, 7}, VariableCount: 1},
		},
		{
			Name:      "conflict",
			Variables: []string{"A", "B", "C"},
			Minterms:  []uint32{0, 1, 2, 3},
			Maxterms:  []uint32{1, 4, 3},
			Expected:  &TermConflictError{Terms: []uint32{1, 3}},
		},
		{
			Name:      "names checked before terms",
			Variables: []string{"A", "A"},
			Minterms:  []uint32{9},
			Maxterms:  []uint32{9},
			Expected:  &DuplicateVariablesError{Names: []string{"A"}},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			for _, form := range []Form{SOP, POS} {
				_, err := Minimize(tt.Variables, tt.Minterms, tt.Maxterms, form)
				require.Error(t, err)
				assert.Equal(t, tt.Expected, err)
			}
		})
	}
}

func TestBadInputTerms(t *testing.T) {
	_, err := MinimizeMinterms(DefaultVariables[:2], []uint32{0, 1}, []uint32{1})
	assert.Equal(t, &TermConflictError{Terms: []uint32{1}}, err)

	_, err = MinimizeMaxterms(DefaultVariables[:2], []uint32{0, 4}, nil)
	assert.Equal(t, &TermOutOfBoundsError{Terms: []uint32{4}, VariableCount: 2}, err)

	_, err = PrimeImplicants(nil, nil, nil, SOP)
	var countErr *InvalidVariableCountError
	assert.ErrorAs(t, err, &countErr)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid variable count: 27 (expected 1 <= count <= 26)",
		(&InvalidVariableCountError{Count: 27, Max: 26}).Error())
	assert.Equal(t, "duplicate variables are not allowed: A, B",
		(&DuplicateVariablesError{Names: []string{"A", "B"}}).Error())
	assert.Equal(t, "terms out of bounds: [2 7] (expected < 2 for 1 variables)",
		(&TermOutOfBoundsError{Terms: []uint32{2, 7}, VariableCount: 1}).Error())
	assert.Equal(t, "conflicting terms between term sets: [1 3]",
		(&TermConflictError{Terms: []uint32{1, 3}}).Error())
	assert.Equal(t, "could not find the solution in time", ErrTimeout.Error())
}
