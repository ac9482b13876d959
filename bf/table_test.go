package bf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariables(t *testing.T) {
	f := And(Or(Var("c"), Not(Var("a"))), Implies(Var("b"), Var("c")), True)
	assert.Equal(t, []string{"a", "b", "c"}, Variables(f))
	assert.Empty(t, Variables(False))
}

func TestMinterms(t *testing.T) {
	f := Or(And(Var("a"), Var("c")), And(Not(Var("a")), Not(Var("c"))))
	res, err := Minterms(f, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2, 5, 7}, res)

	res, err = Minterms(f, []string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 3}, res)

	res, err = Minterms(False, []string{"a"})
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = Minterms(True, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1}, res)
}

func TestMintermsErrors(t *testing.T) {
	_, err := Minterms(Var("z"), []string{"a"})
	assert.Error(t, err)

	names := make([]string, MaxTableVariables+1)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
	}
	_, err = Minterms(True, names)
	assert.Error(t, err)
}
