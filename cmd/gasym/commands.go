// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	specPath   string
	metricName string
	verbose    bool
	roundEps   float64
	bindFlags  []string
)

// =============================================================================
// COMMANDS
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "gasym",
	Short: "Symbolic geometric algebra calculator",
	Long: `gasym computes products and functions of multivectors written as text,
e.g. "a1*e1 + 2*e1^e2", in the metric of an algebra specification.
Without --spec the Euclidean algebra over e1, e2, e3 is used.`,
	SilenceUsage: true,
}

var metricCmd = &cobra.Command{
	Use:   "metric",
	Short: "Print the selected metric: matrix, eigenvalues and classification",
	Args:  cobra.NoArgs,
	RunE:  runMetric,
}

var productCmd = &cobra.Command{
	Use:   "product <op> <A> <B>",
	Short: "Compute a product of two multivectors",
	Long: `Compute a product of two multivectors. Operators:
  gp    geometric product
  op    outer product
  lc    left contraction
  rc    right contraction
  hip   Hestenes inner product
  mhip  modified Hestenes inner product
  scp   scalar product
  hp    Hadamard product
  ihp   inverse Hadamard product`,
	Args:      cobra.ExactArgs(3),
	ValidArgs: productOps,
	RunE:      runProduct,
}

var funcCmd = &cobra.Command{
	Use:   "func <fn> <A>",
	Short: "Apply a function to a multivector",
	Long: `Apply a function to a multivector. Functions:
  exp, sin, cos      series or closed form in the selected metric
  reverse            reversion
  inverse            versor inverse
  dual, undual       dualization by the pseudoscalar
  norm               reverse norm
  unit               division by the reverse norm`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: funcNames,
	RunE:      runFunc,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&specPath, "spec", "", "algebra specification (YAML)")
	rootCmd.PersistentFlags().StringVar(&metricName, "metric", "default", "metric to evaluate in")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().Float64Var(&roundEps, "round", 1e-12, "round results to this precision (0 disables)")
	rootCmd.PersistentFlags().StringArrayVar(&bindFlags, "bind", nil, "bind a symbol, name=value (repeatable)")

	rootCmd.AddCommand(metricCmd, productCmd, funcCmd)
}
