// Command gopherqmc minimizes Boolean functions with the Quine-McCluskey
// method and checks the results with BDDs and a SAT solver.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/gopherqmc/qm"
)

var (
	// Global flags
	verbose      bool
	timeout      time.Duration
	formName     string
	allSolutions bool
	variables    []string
	count        int

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "gopherqmc",
	Short: "Boolean function minimizer",
	Long: `Minimize Boolean functions given as truth tables or formulas, with the
Quine-McCluskey method and Petrick's method.

Terms are numbers whose most significant bit is the first variable.

Examples:
  gopherqmc minimize --minterms 0,5 --maxterms 1,3,4,6 -n 3
  gopherqmc minterms --terms 0,5 --dont-cares 2,7 -n 3 --verify
  gopherqmc maxterms --terms 1,3,4,6 --dont-cares 2,7 --vars x,y,z
  gopherqmc primes --minterms 1,2,5 --maxterms 3,4,7 --chart
  gopherqmc expr "a & ^b | a & c"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log the minimization steps")
	flags.DurationVarP(&timeout, "timeout", "t", 0, "give up after this duration (0 means no limit)")
	flags.StringVarP(&formName, "form", "f", "sop", "form of the expressions: sop or pos")
	flags.BoolVarP(&allSolutions, "all", "a", false, "return all minimal solutions, at a higher cost")
	flags.StringSliceVar(&variables, "vars", nil, "comma-separated variable names, most significant first")
	flags.IntVarP(&count, "count", "n", 0, "number of variables, named A, B, C... (inferred from the terms if 0)")
}

// options returns the minimization options set by the global flags.
func options() []qm.Option {
	opts := []qm.Option{qm.WithTimeout(timeout), qm.WithLogger(log)}
	if allSolutions {
		opts = append(opts, qm.WithAllSolutions())
	}
	return opts
}

func form() (qm.Form, error) {
	f, err := qm.ParseForm(formName)
	if err != nil {
		return 0, errors.Wrap(err, "invalid --form flag")
	}
	return f, nil
}

// variableNames returns the variable names set by --vars or --count. If none
// is set, the smallest number of variables needed for all terms is used.
func variableNames(terms ...[]uint32) ([]string, error) {
	if len(variables) > 0 {
		if count != 0 && count != len(variables) {
			return nil, errors.Errorf("%d variables given with --vars, but --count is %d", len(variables), count)
		}
		return variables, nil
	}
	n := count
	if n == 0 {
		n = 1
		for _, ts := range terms {
			for _, t := range ts {
				for n < qm.MaxVariables && uint64(t) >= uint64(1)<<n {
					n++
				}
			}
		}
	}
	if n < 0 || n > len(qm.DefaultVariables) {
		return nil, errors.Errorf("invalid variable count %d: expected at most %d", n, len(qm.DefaultVariables))
	}
	return qm.DefaultVariables[:n], nil
}

func toTerms(flag string, values []uint) ([]uint32, error) {
	res := make([]uint32, len(values))
	for i, v := range values {
		if v > math.MaxUint32 {
			return nil, errors.Errorf("invalid term %d in --%s: too large", v, flag)
		}
		res[i] = uint32(v)
	}
	return res, nil
}

func printSolutions(cmd *cobra.Command, solutions []qm.Solution) {
	out := cmd.OutOrStdout()
	for _, s := range solutions {
		fmt.Fprintln(out, s)
	}
	log.WithField("solutions", len(solutions)).Debug("done")
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
