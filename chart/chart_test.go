package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gopherqmc/cancel"
	"github.com/crillab/gopherqmc/implicant"
)

func parseAll(strs ...string) []implicant.Implicant {
	res := make([]implicant.Implicant, len(strs))
	for i, s := range strs {
		res[i] = implicant.MustParse(s)
	}
	return res
}

func TestNew(t *testing.T) {
	c := New(parseAll("1101", "0-11", "10-0", "0100", "1-10"), []uint32{8, 14})
	assert.Equal(t, []uint32{3, 4, 7, 10, 13}, c.Terms())
	assert.Equal(t, parseAll("0-11", "0100", "10-0", "1-10", "1101"), c.Implicants())
	assert.Empty(t, c.Essentials())
}

func TestSimplify(t *testing.T) {
	c := New(parseAll("0-11", "0100", "10-0", "1-10", "1101"), []uint32{8, 14})
	essentials, err := c.Simplify(false, cancel.Never)
	require.NoError(t, err)
	assert.ElementsMatch(t, parseAll("0-11", "0100", "10-0", "1101"), essentials)
	assert.Empty(t, c.CoveringImplicants())
}

func TestSimplifyAllSolutions(t *testing.T) {
	c := New(parseAll("0-11", "0100", "10-0", "1-10", "1101"), []uint32{8, 14})
	essentials, err := c.Simplify(true, cancel.Never)
	require.NoError(t, err)
	assert.ElementsMatch(t, parseAll("0-11", "0100", "1101"), essentials)
	assert.Equal(t, []uint32{10}, c.Terms())
	assert.Equal(t, [][]implicant.Implicant{parseAll("10-0", "1-10")}, c.CoveringImplicants())
}

func TestSimplifyCyclic(t *testing.T) {
	// Minterms 0, 1, 2, 5, 6, 7: every term is covered by exactly two primes
	// and no dominance relation holds.
	c := New(parseAll("00-", "0-0", "-01", "-10", "1-1", "11-"), nil)
	essentials, err := c.Simplify(false, cancel.Never)
	require.NoError(t, err)
	assert.Empty(t, essentials)
	cols := c.CoveringImplicants()
	require.Len(t, cols, 6)
	for _, col := range cols {
		assert.Len(t, col, 2)
	}
	assert.Equal(t, []uint32{0, 1, 2, 5, 6, 7}, c.Terms())
}

func TestDominance(t *testing.T) {
	c := New(parseAll("0-", "--", "1-"), nil)
	assert.True(t, c.removeDominatingTerms())
	assert.ElementsMatch(t, []uint32{0, 2}, c.Terms())
	assert.True(t, c.removeDominatedImplicants())
	assert.Equal(t, parseAll("--"), c.Implicants())
	assert.True(t, c.extractEssentials())
	assert.Equal(t, parseAll("--"), c.Essentials())
	assert.Empty(t, c.Terms())
}

func TestDominatedImplicantKeepsGeneralOne(t *testing.T) {
	// "01" and "0-" both cover term 1 only (term 0 is a don't-care), but
	// "01" is more specific and must be the one removed.
	c := New(parseAll("01", "0-"), []uint32{0})
	assert.True(t, c.removeDominatedImplicants())
	assert.Equal(t, parseAll("0-"), c.Implicants())
}

func TestSimplifyCancelled(t *testing.T) {
	var flag cancel.Flag
	flag.Signal()
	c := New(parseAll("00-", "0-0", "-01", "-10", "1-1", "11-"), nil)
	_, err := c.Simplify(false, &flag)
	assert.ErrorIs(t, err, cancel.ErrTimeout)
}

func TestFormat(t *testing.T) {
	c := New(parseAll("0-", "-1"), nil)
	const expected = "     0   1   3\n" +
		"0-   X   X   .\n" +
		"-1   .   X   X\n"
	assert.Equal(t, expected, c.Format(2))
}
