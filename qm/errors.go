package qm

import (
	"fmt"
	"strings"

	"github.com/crillab/gopherqmc/cancel"
)

// ErrTimeout is returned when no solution could be found in time.
var ErrTimeout = cancel.ErrTimeout

// InvalidVariableCountError is returned when there are no variables or more
// than Max of them.
type InvalidVariableCountError struct {
	Count int
	Max   int
}

func (e *InvalidVariableCountError) Error() string {
	return fmt.Sprintf("invalid variable count: %d (expected 1 <= count <= %d)", e.Count, e.Max)
}

// InvalidVariableError is returned when a variable is named "0" or "1", or
// when its name is empty or has leading or trailing whitespace.
type InvalidVariableError struct {
	Name string
}

func (e *InvalidVariableError) Error() string {
	return fmt.Sprintf("invalid variable %q: 0, 1, empty names and names with leading or trailing whitespace are not allowed", e.Name)
}

// DuplicateVariablesError lists the variable names given more than once.
type DuplicateVariablesError struct {
	Names []string
}

func (e *DuplicateVariablesError) Error() string {
	return fmt.Sprintf("duplicate variables are not allowed: %s", strings.Join(e.Names, ", "))
}

// TermOutOfBoundsError lists the terms that do not fit on VariableCount bits.
type TermOutOfBoundsError struct {
	Terms         []uint32
	VariableCount int
}

func (e *TermOutOfBoundsError) Error() string {
	return fmt.Sprintf("terms out of bounds: %v (expected < %d for %d variables)", e.Terms, uint64(1)<<e.VariableCount, e.VariableCount)
}

// TermConflictError lists the terms given in both term sets.
type TermConflictError struct {
	Terms []uint32
}

func (e *TermConflictError) Error() string {
	return fmt.Sprintf("conflicting terms between term sets: %v", e.Terms)
}
