package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gopherqmc/implicant"
)

func parseAll(strs ...string) []implicant.Implicant {
	res := make([]implicant.Implicant, len(strs))
	for i, s := range strs {
		res[i] = implicant.MustParse(s)
	}
	return res
}

func TestCheck(t *testing.T) {
	for _, tt := range []struct {
		Name          string
		VariableCount int
		Terms         []uint32
		DontCares     []uint32
		Cover         []string
		Missing       uint64
		Extra         uint64
	}{
		{Name: "empty", VariableCount: 2},
		{Name: "exact", VariableCount: 3, Terms: []uint32{0, 5}, Cover: []string{"000", "101"}},
		{Name: "don't-cares", VariableCount: 3, Terms: []uint32{0, 5}, DontCares: []uint32{2, 7}, Cover: []string{"1-1", "0-0"}},
		{Name: "tautology", VariableCount: 2, Terms: []uint32{0, 1, 2, 3}, Cover: []string{"--"}},
		{Name: "missing", VariableCount: 3, Terms: []uint32{0, 5}, Cover: []string{"000"}, Missing: 1},
		{Name: "extra", VariableCount: 3, Terms: []uint32{0, 5}, Cover: []string{"0-0", "101"}, Extra: 1},
		{Name: "both", VariableCount: 3, Terms: []uint32{0, 5}, Cover: []string{"0--"}, Missing: 1, Extra: 3},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			err := Check(tt.VariableCount, tt.Terms, tt.DontCares, parseAll(tt.Cover...))
			if tt.Missing == 0 && tt.Extra == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.Missing, verr.Missing)
			assert.Equal(t, tt.Extra, verr.Extra)
		})
	}
}
