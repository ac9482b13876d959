package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/crillab/gopherqmc/chart"
	"github.com/crillab/gopherqmc/qm"
	"github.com/crillab/gopherqmc/verify"
)

var (
	mintermsFlag  []uint
	maxtermsFlag  []uint
	termsFlag     []uint
	dontCaresFlag []uint
	verifyFlag    bool
	chartFlag     bool
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize",
	Short: "Minimize a function given by its minterms and maxterms",
	Long: `Minimize the function that is true for the given minterms and false for
the given maxterms. All the other terms are don't-cares.

Examples:
  gopherqmc minimize --minterms 0,5 --maxterms 1,3,4,6 -n 3
  gopherqmc minimize --minterms 0,5 --maxterms 1,3,4,6 -n 3 --form pos`,
	Args: cobra.NoArgs,
	RunE: runMinimize,
}

var mintermsCmd = &cobra.Command{
	Use:   "minterms",
	Short: "Minimize a function given by its minterms and don't-cares, in SOP form",
	Long: `Minimize the function that is true for the given terms and undefined for
the given don't-cares. It is false everywhere else. The result is a sum of
products.

Examples:
  gopherqmc minterms --terms 0,5 --dont-cares 2,7 -n 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerms(cmd, qm.SOP)
	},
}

var maxtermsCmd = &cobra.Command{
	Use:   "maxterms",
	Short: "Minimize a function given by its maxterms and don't-cares, in POS form",
	Long: `Minimize the function that is false for the given terms and undefined for
the given don't-cares. It is true everywhere else. The result is a product of
sums.

Examples:
  gopherqmc maxterms --terms 1,3,4,6 --dont-cares 2,7 -n 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerms(cmd, qm.POS)
	},
}

var primesCmd = &cobra.Command{
	Use:   "primes",
	Short: "List the prime implicants of a function",
	Long: `List the prime implicants of the function that is true for the given
minterms and false for the given maxterms, in 01- notation: a dash is a
variable the implicant does not depend on.

Examples:
  gopherqmc primes --minterms 1,2,5 --maxterms 3,4,7
  gopherqmc primes --minterms 1,2,5 --maxterms 3,4,7 --form pos --chart`,
	Args: cobra.NoArgs,
	RunE: runPrimes,
}

func init() {
	rootCmd.AddCommand(minimizeCmd, mintermsCmd, maxtermsCmd, primesCmd)

	addTruthTableFlags(minimizeCmd.Flags())
	addTruthTableFlags(primesCmd.Flags())
	addCoverFlags(mintermsCmd.Flags())
	addCoverFlags(maxtermsCmd.Flags())
	for _, cmd := range []*cobra.Command{minimizeCmd, mintermsCmd, maxtermsCmd} {
		cmd.Flags().BoolVar(&verifyFlag, "verify", false, "check every solution with a BDD")
	}
	primesCmd.Flags().BoolVar(&chartFlag, "chart", false, "also print the prime implicant chart")
}

// addTruthTableFlags registers the flags giving both the true and the false
// terms of a function.
func addTruthTableFlags(fs *pflag.FlagSet) {
	fs.UintSliceVar(&mintermsFlag, "minterms", nil, "terms for which the function is true")
	fs.UintSliceVar(&maxtermsFlag, "maxterms", nil, "terms for which the function is false")
}

func addCoverFlags(fs *pflag.FlagSet) {
	fs.UintSliceVar(&termsFlag, "terms", nil, "terms to cover")
	fs.UintSliceVar(&dontCaresFlag, "dont-cares", nil, "terms for which the function is undefined")
}

func runMinimize(cmd *cobra.Command, args []string) error {
	minterms, maxterms, err := mintermsAndMaxterms()
	if err != nil {
		return err
	}
	f, err := form()
	if err != nil {
		return err
	}
	names, err := variableNames(minterms, maxterms)
	if err != nil {
		return err
	}
	solutions, err := qm.Minimize(names, minterms, maxterms, f, options()...)
	if err != nil {
		return errors.Wrap(err, "could not minimize")
	}
	if verifyFlag {
		terms := minterms
		if f == qm.POS {
			terms = maxterms
		}
		if err := check(len(names), terms, complement(len(names), minterms, maxterms), solutions); err != nil {
			return err
		}
	}
	printSolutions(cmd, solutions)
	return nil
}

func runTerms(cmd *cobra.Command, f qm.Form) error {
	terms, err := toTerms("terms", termsFlag)
	if err != nil {
		return err
	}
	dontCares, err := toTerms("dont-cares", dontCaresFlag)
	if err != nil {
		return err
	}
	names, err := variableNames(terms, dontCares)
	if err != nil {
		return err
	}
	var solutions []qm.Solution
	if f == qm.SOP {
		solutions, err = qm.MinimizeMinterms(names, terms, dontCares, options()...)
	} else {
		solutions, err = qm.MinimizeMaxterms(names, terms, dontCares, options()...)
	}
	if err != nil {
		return errors.Wrap(err, "could not minimize")
	}
	if verifyFlag {
		if err := check(len(names), terms, dontCares, solutions); err != nil {
			return err
		}
	}
	printSolutions(cmd, solutions)
	return nil
}

func runPrimes(cmd *cobra.Command, args []string) error {
	minterms, maxterms, err := mintermsAndMaxterms()
	if err != nil {
		return err
	}
	f, err := form()
	if err != nil {
		return err
	}
	names, err := variableNames(minterms, maxterms)
	if err != nil {
		return err
	}
	primes, err := qm.PrimeImplicants(names, minterms, maxterms, f, options()...)
	if err != nil {
		return errors.Wrap(err, "could not find prime implicants")
	}
	out := cmd.OutOrStdout()
	for _, p := range primes {
		fmt.Fprintln(out, p.Format(len(names)))
	}
	if chartFlag {
		c := chart.New(primes, complement(len(names), minterms, maxterms))
		fmt.Fprintln(out)
		fmt.Fprint(out, c.Format(len(names)))
	}
	return nil
}

func mintermsAndMaxterms() (minterms, maxterms []uint32, err error) {
	if minterms, err = toTerms("minterms", mintermsFlag); err != nil {
		return nil, nil, err
	}
	if maxterms, err = toTerms("maxterms", maxtermsFlag); err != nil {
		return nil, nil, err
	}
	return minterms, maxterms, nil
}

// complement returns the terms on variableCount bits in none of the given sets.
func complement(variableCount int, sets ...[]uint32) []uint32 {
	seen := make(map[uint32]bool)
	for _, set := range sets {
		for _, t := range set {
			seen[t] = true
		}
	}
	var res []uint32
	for t := uint32(0); t < uint32(1)<<variableCount; t++ {
		if !seen[t] {
			res = append(res, t)
		}
	}
	return res
}

func check(variableCount int, terms, dontCares []uint32, solutions []qm.Solution) error {
	for _, s := range solutions {
		if err := verify.Check(variableCount, terms, dontCares, s.Implicants()); err != nil {
			return errors.Wrapf(err, "solution %v is wrong", s)
		}
	}
	log.WithField("solutions", len(solutions)).Info("all solutions verified")
	return nil
}
