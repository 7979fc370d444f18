// SPDX-License-Identifier: MIT

package spec

import (
	"fmt"
	"strconv"
	"strings"
)

// metricRows builds the n×n metric matrix from statements such as
// "no.ni=-1" or "e1.e1=e2.e2=e3.e3=1". Every pair receives the final value
// and is mirrored across the diagonal. Later statements override earlier ones.
func metricRows(statements []string, index map[string]int) ([][]float64, error) {
	n := len(index)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for _, st := range statements {
		pairs, v, err := parseStatement(st, index)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			rows[p[0]][p[1]] = v
			rows[p[1]][p[0]] = v
		}
	}

	return rows, nil
}

func parseStatement(st string, index map[string]int) ([][2]int, float64, error) {
	parts := strings.Split(st, "=")
	if len(parts) < 2 {
		return nil, 0, fmt.Errorf("%q: missing '=': %w", st, ErrMetricSyntax)
	}
	last := strings.TrimSpace(parts[len(parts)-1])
	v, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("%q: value %q: %w", st, last, ErrMetricSyntax)
	}

	pairs := make([][2]int, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		names := strings.Split(strings.TrimSpace(p), ".")
		if len(names) != 2 {
			return nil, 0, fmt.Errorf("%q: pair %q: %w", st, p, ErrMetricSyntax)
		}
		var pair [2]int
		for k, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, 0, fmt.Errorf("%q: pair %q: %w", st, p, ErrMetricSyntax)
			}
			idx, ok := index[name]
			if !ok {
				return nil, 0, fmt.Errorf("%q: %q: %w", st, name, ErrUnknownBasisVector)
			}
			pair[k] = idx
		}
		pairs = append(pairs, pair)
	}

	return pairs, v, nil
}
