package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command line args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Reset flags to prevent accumulation between tests
	verbose, timeout, formName, allSolutions, variables, count = false, 0, "sop", false, nil, 0
	mintermsFlag, maxtermsFlag, termsFlag, dontCaresFlag = nil, nil, nil, nil
	verifyFlag, chartFlag, fileFlag, dimacsFlag = false, false, "", false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "minimize",
			args: []string{"minimize", "--minterms", "0,5", "--maxterms", "1,3,4,6", "-n", "3"},
			want: "(A ∧ C) ∨ (~A ∧ ~C)\n",
		},
		{
			name: "minimize pos verified",
			args: []string{"minimize", "--minterms", "0,5", "--maxterms", "1,3,4,6", "-n", "3", "--form", "pos", "--verify"},
			want: "(A ∨ ~C) ∧ (~A ∨ C)\n",
		},
		{
			name: "inferred variable count",
			args: []string{"minimize", "--minterms", "1", "--maxterms", "0,3"},
			want: "~A ∧ B\n",
		},
		{
			name: "custom variables",
			args: []string{"minterms", "--terms", "0,5", "--dont-cares", "2,7", "--vars", "x,y,z", "--verify"},
			want: "(x ∧ z) ∨ (~x ∧ ~z)\n",
		},
		{
			name: "maxterms",
			args: []string{"maxterms", "--terms", "1,3,4,6", "--dont-cares", "2,7", "-n", "3"},
			want: "(A ∨ ~C) ∧ (~A ∨ C)\n",
		},
		{
			name: "all solutions",
			args: []string{"minimize", "--minterms", "0,1,2,5,6,7", "--maxterms", "3,4", "--all", "--verify"},
			want: "",
		},
		{
			name: "primes",
			args: []string{"primes", "--minterms", "1,2,5", "--maxterms", "3,4,7"},
			want: "00-\n0-0\n-01\n-10\n",
		},
		{
			name: "primes with chart",
			args: []string{"primes", "--minterms", "0,1,3", "--maxterms", "2", "--chart"},
			want: "0-\n-1\n\n     0   1   3\n0-   X   X   .\n-1   .   X   X\n",
		},
		{
			name: "expr",
			args: []string{"expr", "a & ^b | a & c"},
			want: "(a ∧ ~b) ∨ (a ∧ c)\n",
		},
		{
			name: "expr pos",
			args: []string{"expr", "--form", "pos", "a & (b | c)"},
			want: "a ∧ (b ∨ c)\n",
		},
		{
			name: "expr constant",
			args: []string{"expr", "a | ^a"},
			want: "1\n",
		},
		{
			name: "solve",
			args: []string{"solve", "a & ^(b -> c) & (c = d | ^a)"},
			want: "SATISFIABLE\na: true\nb: true\nc: false\nd: false\n",
		},
		{
			name: "solve unsat",
			args: []string{"solve", "a & ^a"},
			want: "UNSATISFIABLE\n",
		},
		{name: "conflict", args: []string{"minimize", "--minterms", "0,1", "--maxterms", "1"}, wantErr: true},
		{name: "too many variables", args: []string{"minimize", "--minterms", "0", "-n", "27"}, wantErr: true},
		{name: "bad form", args: []string{"minimize", "--minterms", "0", "--form", "cnf"}, wantErr: true},
		{name: "bad formula", args: []string{"expr", "a &"}, wantErr: true},
		{name: "no formula", args: []string{"expr"}, wantErr: true},
		{name: "vars and count", args: []string{"minimize", "--vars", "a,b", "-n", "3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, out)
			}
		})
	}
}

func TestAllSolutionsOutput(t *testing.T) {
	out, err := run(t, "minimize", "--minterms", "0,1,2,5,6,7", "--maxterms", "3,4", "--all")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, []string{
		"(A ∧ C) ∨ (~A ∧ ~B) ∨ (B ∧ ~C)",
		"(A ∧ B) ∨ (~A ∧ ~C) ∨ (~B ∧ C)",
	}, lines)
}

func TestFormulaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formula.bf")
	require.NoError(t, os.WriteFile(path, []byte("a | b;\n^a | ^b\n"), 0o600))

	out, err := run(t, "expr", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "(a ∧ ~b) ∨ (~a ∧ b)\n", out)

	out, err = run(t, "expr", "--file", path, "--dimacs")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "p cnf 2 2\n"), out)

	_, err = run(t, "solve", "--file", path, "a")
	assert.Error(t, err)
}
