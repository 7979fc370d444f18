// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sciumo/gaigen-sub003/ga"
)

var productOps = []string{"gp", "op", "lc", "rc", "hip", "mhip", "scp", "hp", "ihp"}

// product applies the named product in sp.
func product(op string, a, b ga.Multivector, sp ga.Space) (ga.Multivector, error) {
	switch op {
	case "gp":
		return a.GeometricProduct(b, sp), nil
	case "op":
		return a.OuterProduct(b), nil
	case "lc":
		return a.LeftContraction(b, sp), nil
	case "rc":
		return a.RightContraction(b, sp), nil
	case "hip":
		return a.InnerProduct(b, sp, ga.HestenesInnerProduct)
	case "mhip":
		return a.InnerProduct(b, sp, ga.ModifiedHestenesInnerProduct)
	case "scp":
		return a.ScalarProduct(b, sp), nil
	case "hp":
		return a.HadamardProduct(b), nil
	case "ihp":
		return a.InverseHadamardProduct(b), nil
	}

	return ga.Multivector{}, fmt.Errorf("product %q: %w", op, errUnknownOperator)
}

// runProduct is the handler for "gasym product <op> <A> <B>".
func runProduct(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	a, err := s.algebra.ParseMultivector(args[1])
	if err != nil {
		return err
	}
	b, err := s.algebra.ParseMultivector(args[2])
	if err != nil {
		return err
	}
	r, err := product(args[0], a, b, s.space)
	if err != nil {
		return err
	}

	return s.print(cmd, r)
}
