package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crillab/gopherqmc/bf"
	"github.com/crillab/gopherqmc/qm"
)

var (
	fileFlag   string
	dimacsFlag bool
)

var exprCmd = &cobra.Command{
	Use:   "expr [formula]",
	Short: "Minimize a Boolean formula",
	Long: `Parse a Boolean formula, compute its truth table and minimize it. Every
solution is checked to be equivalent to the formula with a SAT solver.

Operators, from lowest to highest priority, are "=" (equivalence), "->"
(implication), "|" (or), "&" (and) and "^", "~" or "!" (not). 0 and 1 are
constants, "{a, b, c}" means exactly one of a, b and c is true, and several
formulas separated by ";" are all true. Variables are sorted by name unless
--vars is given.

Examples:
  gopherqmc expr "a & ^b | a & c"
  gopherqmc expr --form pos "(a -> b) & (b -> c)"
  gopherqmc expr --file formula.bf --dimacs`,
	RunE: runExpr,
}

var solveCmd = &cobra.Command{
	Use:   "solve [formula]",
	Short: "Check whether a Boolean formula is satisfiable",
	Long: `Parse a Boolean formula, with the syntax of the expr command, and print
one of its models if it is satisfiable.

Examples:
  gopherqmc solve "a & ^(b -> c) & (c = d | ^a)"
  gopherqmc solve --file formula.bf`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(exprCmd, solveCmd)

	for _, cmd := range []*cobra.Command{exprCmd, solveCmd} {
		cmd.Flags().StringVar(&fileFlag, "file", "", "read the formula from this file")
	}
	exprCmd.Flags().BoolVar(&dimacsFlag, "dimacs", false, "print the formula as a DIMACS CNF instead of minimizing it")
}

func readFormula(args []string) (bf.Formula, error) {
	if fileFlag == "" {
		if len(args) == 0 {
			return nil, errors.New("expected a formula or a --file flag")
		}
		return bf.ParseString(strings.Join(args, " "))
	}
	if len(args) > 0 {
		return nil, errors.New("cannot read a formula both from arguments and from a file")
	}
	f, err := os.Open(fileFlag)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", fileFlag)
	}
	defer f.Close()
	form, err := bf.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse formula in %q", fileFlag)
	}
	return form, nil
}

func runExpr(cmd *cobra.Command, args []string) error {
	formula, err := readFormula(args)
	if err != nil {
		return err
	}
	if dimacsFlag {
		return bf.Dimacs(formula, cmd.OutOrStdout())
	}
	f, err := form()
	if err != nil {
		return err
	}
	names := variables
	if len(names) == 0 {
		if names = bf.Variables(formula); len(names) == 0 {
			// Constant formula.
			names = qm.DefaultVariables[:1]
		}
	}
	minterms, err := bf.Minterms(formula, names)
	if err != nil {
		return err
	}
	maxterms := complement(len(names), minterms)
	log.WithField("variables", joinNames(names)).Debugf("formula has %d minterms", len(minterms))
	solutions, err := qm.Minimize(names, minterms, maxterms, f, options()...)
	if err != nil {
		return errors.Wrap(err, "could not minimize")
	}
	for _, s := range solutions {
		if !bf.Equivalent(formula, s.Formula()) {
			return errors.Errorf("solution %v is not equivalent to %v", s, formula)
		}
	}
	printSolutions(cmd, solutions)
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	formula, err := readFormula(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	model := bf.Solve(formula)
	if model == nil {
		fmt.Fprintln(out, "UNSATISFIABLE")
		return nil
	}
	fmt.Fprintln(out, "SATISFIABLE")
	keys := make([]string, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %t\n", k, model[k])
	}
	return nil
}
