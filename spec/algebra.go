// SPDX-License-Identifier: MIT

package spec

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Sciumo/gaigen-sub003/ga"
)

// Algebra is a loaded specification: named basis vectors and the metrics
// defined over them. It is immutable and safe for concurrent use.
type Algebra struct {
	name    string
	basis   []string
	index   map[string]int
	metrics map[string]*namedMetric
}

type namedMetric struct {
	metric *ga.Metric
	space  ga.Space
}

// New validates doc and builds its metrics.
//
// The "default" metric is Euclidean when doc does not define it, and
// "euclidean" resolves to the identity metric unless doc defines it.
// Non-diagonal metrics have their eigenvalues rounded with the document's
// roundingEpsilon, or WithRoundingEpsilon when the document carries none,
// unless the metric sets round: false.
func New(doc Document, opts ...Option) (*Algebra, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	o := gatherOptions(opts...)
	eps := o.roundingEps
	if doc.RoundingEpsilon > 0 {
		eps = doc.RoundingEpsilon
	}

	a := &Algebra{
		name:    doc.Name,
		basis:   append([]string(nil), doc.Basis...),
		index:   make(map[string]int, len(doc.Basis)),
		metrics: make(map[string]*namedMetric, len(doc.Metrics)+2),
	}
	for i, b := range doc.Basis {
		a.index[b] = i
	}

	names := make([]string, 0, len(doc.Metrics))
	for name := range doc.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		md := doc.Metrics[name]
		nm, err := a.buildMetric(md.Statements, md.rounding(), eps, o.logger)
		if err != nil {
			return nil, fmt.Errorf("New: metric %q: %w", name, err)
		}
		a.metrics[strings.ToLower(name)] = nm
		o.logger.Debug("metric loaded",
			slog.String("algebra", a.name),
			slog.String("metric", name),
			slog.Bool("diagonal", nm.metric.IsDiagonal()),
			slog.Bool("euclidean", nm.metric.IsEuclidean()))
	}

	if _, ok := a.metrics[EuclideanMetricName]; !ok {
		statements := make([]string, len(a.basis))
		for i, b := range a.basis {
			statements[i] = b + "." + b + "=1"
		}
		nm, err := a.buildMetric(statements, false, 0, o.logger)
		if err != nil {
			return nil, fmt.Errorf("New: metric %q: %w", EuclideanMetricName, err)
		}
		a.metrics[EuclideanMetricName] = nm
	}
	if _, ok := a.metrics[DefaultMetricName]; !ok {
		a.metrics[DefaultMetricName] = a.metrics[EuclideanMetricName]
	}

	return a, nil
}

func (a *Algebra) buildMetric(statements []string, round bool, eps float64, logger *slog.Logger) (*namedMetric, error) {
	rows, err := metricRows(statements, a.index)
	if err != nil {
		return nil, err
	}
	m, err := ga.NewMetric(rows, ga.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	// rounding is forced off for diagonal metrics
	if round && !m.IsDiagonal() && eps > 0 {
		m = m.RoundEigenMetric(eps)
	}

	nm := &namedMetric{metric: m, space: m}
	switch {
	case m.IsEuclidean():
		nm.space = ga.Euclidean(m.Dimension())
	case m.IsDiagonal():
		nm.space = ga.Diagonal(m.Signature())
	}

	return nm, nil
}

// Name returns the algebra name.
func (a *Algebra) Name() string { return a.name }

// Dimension returns the number of basis vectors.
func (a *Algebra) Dimension() int { return len(a.basis) }

// BasisNames returns a copy of the basis vector names in index order.
func (a *Algebra) BasisNames() []string { return append([]string(nil), a.basis...) }

// BasisIndex returns the 0-based index of the named basis vector.
func (a *Algebra) BasisIndex(name string) (int, bool) {
	i, ok := a.index[name]

	return i, ok
}

// MetricNames returns the lower-cased metric names in sorted order,
// including "default" and "euclidean".
func (a *Algebra) MetricNames() []string {
	names := make([]string, 0, len(a.metrics))
	for name := range a.metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (a *Algebra) lookup(name string) (*namedMetric, error) {
	nm, ok := a.metrics[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
	}

	return nm, nil
}

// Metric returns the named metric; names are case-insensitive.
func (a *Algebra) Metric(name string) (*ga.Metric, error) {
	nm, err := a.lookup(name)
	if err != nil {
		return nil, fmt.Errorf("Metric: %w", err)
	}

	return nm.metric, nil
}

// Space returns the product space of the named metric: ga.Euclidean for a
// Euclidean metric, ga.Diagonal for other diagonal metrics and the
// *ga.Metric otherwise.
func (a *Algebra) Space(name string) (ga.Space, error) {
	nm, err := a.lookup(name)
	if err != nil {
		return nil, fmt.Errorf("Space: %w", err)
	}

	return nm.space, nil
}
