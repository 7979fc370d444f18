// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sciumo/gaigen-sub003/ga"
	"github.com/Sciumo/gaigen-sub003/spec"
)

var (
	errUnknownOperator = errors.New("unknown operator")
	errBadBinding      = errors.New("binding must be name=value")
)

// defaultDocument is used when --spec is not given.
var defaultDocument = spec.Document{
	Name:      "e3ga",
	Dimension: 3,
	Basis:     []string{"e1", "e2", "e3"},
}

// session is the state shared by the subcommands: the loaded algebra, the
// selected space and the symbol bindings.
type session struct {
	algebra  *spec.Algebra
	space    ga.Space
	bindings ga.MapBindings
	logger   *slog.Logger
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openSession loads the algebra named by the flags.
func openSession(cmd *cobra.Command) (*session, error) {
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	var (
		a   *spec.Algebra
		err error
	)
	if specPath == "" {
		a, err = spec.New(defaultDocument, spec.WithLogger(logger))
	} else {
		a, err = spec.Load(specPath, spec.WithLogger(logger))
	}
	if err != nil {
		return nil, err
	}
	sp, err := a.Space(metricName)
	if err != nil {
		return nil, err
	}
	bnd, err := parseBindings(bindFlags)
	if err != nil {
		return nil, err
	}
	logger.Debug("session opened",
		slog.String("algebra", a.Name()),
		slog.String("metric", metricName),
		slog.Int("bindings", len(bnd)))

	return &session{algebra: a, space: sp, bindings: bnd, logger: logger}, nil
}

// parseBindings reads name=value pairs.
func parseBindings(list []string) (ga.MapBindings, error) {
	bnd := make(ga.MapBindings, len(list))
	for _, item := range list {
		name, value, ok := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%q: %w", item, errBadBinding)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w: %w", item, errBadBinding, err)
		}
		bnd[ga.Symbol(name)] = v
	}

	return bnd, nil
}

func (s *session) options(cmd *cobra.Command) []ga.Option {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return []ga.Option{ga.WithContext(ctx), ga.WithLogger(s.logger)}
}

// print evaluates mv under the bindings, rounds it and writes it with the
// algebra's basis names.
func (s *session) print(cmd *cobra.Command, mv ga.Multivector) error {
	if len(s.bindings) > 0 {
		v, err := mv.Eval(s.bindings)
		if err != nil {
			return err
		}
		mv = v
	}
	if roundEps > 0 {
		mv = mv.Round(roundEps)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), mv.Render(s.algebra.BasisNames()))

	return err
}
