// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// runMetric is the handler for "gasym metric".
func runMetric(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	m, err := s.algebra.Metric(metricName)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "algebra: %s\n", s.algebra.Name())
	fmt.Fprintf(w, "metric: %s\n", strings.ToLower(metricName))
	fmt.Fprintf(w, "basis: %s\n", strings.Join(s.algebra.BasisNames(), " "))
	fmt.Fprintf(w, "matrix:\n%s\n", m)
	fmt.Fprintf(w, "eigenvalues: %v\n", m.EigenMetric())
	fmt.Fprintf(w, "diagonal: %t\n", m.IsDiagonal())
	fmt.Fprintf(w, "euclidean: %t\n", m.IsEuclidean())
	fmt.Fprintf(w, "anti-euclidean: %t\n", m.IsAntiEuclidean())
	fmt.Fprintf(w, "positive definite: %t\n", m.IsPositiveDefinite())
	fmt.Fprintf(w, "degenerate: %t\n", m.IsDegenerate())

	return nil
}
