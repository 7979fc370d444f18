// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sciumo/gaigen-sub003/ga"
)

var funcNames = []string{"exp", "sin", "cos", "reverse", "inverse", "dual", "undual", "norm", "unit"}

// apply evaluates the named function of a in sp.
func apply(fn string, a ga.Multivector, sp ga.Space, opts ...ga.Option) (ga.Multivector, error) {
	switch fn {
	case "exp":
		return a.Exp(sp, opts...)
	case "sin":
		return a.Sin(sp, opts...)
	case "cos":
		return a.Cos(sp, opts...)
	case "reverse":
		return a.Reverse(), nil
	case "inverse":
		return a.VersorInverse(sp)
	case "dual":
		return a.Dual(sp)
	case "undual":
		return a.Undual(sp)
	case "norm":
		return a.NormR(sp), nil
	case "unit":
		return a.UnitR(sp)
	}

	return ga.Multivector{}, fmt.Errorf("func %q: %w", fn, errUnknownOperator)
}

// runFunc is the handler for "gasym func <fn> <A>".
func runFunc(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	a, err := s.algebra.ParseMultivector(args[1])
	if err != nil {
		return err
	}
	r, err := apply(args[0], a, s.space, s.options(cmd)...)
	if err != nil {
		return err
	}

	return s.print(cmd, r)
}
