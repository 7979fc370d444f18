package spec_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Sciumo/gaigen-sub003/ga"
	"github.com/Sciumo/gaigen-sub003/spec"
)

var conformalRows = [][]float64{
	{0, 0, 0, 0, -1},
	{0, 1, 0, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 0, 1, 0},
	{-1, 0, 0, 0, 0},
}

type ConformalSpecSuite struct {
	suite.Suite
	a *spec.Algebra
}

func (s *ConformalSpecSuite) SetupSuite() {
	a, err := spec.Load(filepath.Join("testdata", "c3ga.yaml"))
	s.Require().NoError(err)
	s.a = a
}

func (s *ConformalSpecSuite) TestHeader() {
	s.Equal("c3ga", s.a.Name())
	s.Equal(5, s.a.Dimension())
	s.Equal([]string{"no", "e1", "e2", "e3", "ni"}, s.a.BasisNames())
	s.Equal([]string{"default", "euclidean", "minkowski", "plain"}, s.a.MetricNames())

	idx, ok := s.a.BasisIndex("ni")
	s.True(ok)
	s.Equal(4, idx)
	_, ok = s.a.BasisIndex("e4")
	s.False(ok)
}

func (s *ConformalSpecSuite) TestDefaultMetric() {
	m, err := s.a.Metric("DEFAULT")
	s.Require().NoError(err)
	s.Equal(conformalRows, m.Matrix())
	s.False(m.IsDiagonal())
	// rounded eigenvalues are exact
	s.ElementsMatch([]float64{-1, 1, 1, 1, 1}, m.EigenMetric())

	sp, err := s.a.Space("default")
	s.Require().NoError(err)
	s.IsType(&ga.Metric{}, sp)

	no, ni := ga.BasisVector(0), ga.BasisVector(4)
	s.Equal("-1 + no^ni", no.GeometricProduct(ni, sp).Round(1e-10).Render(s.a.BasisNames()))
}

func (s *ConformalSpecSuite) TestUnroundedMetric() {
	m, err := s.a.Metric("Plain")
	s.Require().NoError(err)
	s.Equal(conformalRows, m.Matrix())
	for _, e := range m.EigenMetric() {
		s.InDelta(1, e*e, 1e-12)
	}
}

func (s *ConformalSpecSuite) TestSpaces() {
	sp, err := s.a.Space("euclidean")
	s.Require().NoError(err)
	s.Equal(ga.Euclidean(5), sp)

	sp, err = s.a.Space("Minkowski")
	s.Require().NoError(err)
	s.Equal(ga.Diagonal{1, 1, 1, 1, -1}, sp)

	ni := ga.BasisVector(4)
	s.Equal("-1", ni.GeometricProduct(ni, sp).String())
}

func (s *ConformalSpecSuite) TestUnknownMetric() {
	_, err := s.a.Metric("hyperbolic")
	s.ErrorIs(err, spec.ErrUnknownMetric)
	_, err = s.a.Space("hyperbolic")
	s.ErrorIs(err, spec.ErrUnknownMetric)
}

func TestConformalSpecSuite(t *testing.T) {
	suite.Run(t, new(ConformalSpecSuite))
}

func TestLoad_DefaultIsEuclidean(t *testing.T) {
	a, err := spec.Load(filepath.Join("testdata", "e3ga.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "euclidean"}, a.MetricNames())

	sp, err := a.Space("default")
	require.NoError(t, err)
	assert.Equal(t, ga.Euclidean(3), sp)

	m, err := a.Metric("default")
	require.NoError(t, err)
	assert.True(t, m.IsEuclidean())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := spec.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestNew_MetricStatementErrors(t *testing.T) {
	cases := []struct {
		name      string
		statement string
		want      error
	}{
		{"no equals", "e1.e1", spec.ErrMetricSyntax},
		{"bad value", "e1.e1=x", spec.ErrMetricSyntax},
		{"not a pair", "e1=1", spec.ErrMetricSyntax},
		{"three names", "e1.e2.e3=1", spec.ErrMetricSyntax},
		{"empty name", ".e1=1", spec.ErrMetricSyntax},
		{"unknown vector", "e1.e4=1", spec.ErrUnknownBasisVector},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := spec.Document{
				Name:      "e3ga",
				Dimension: 3,
				Basis:     []string{"e1", "e2", "e3"},
				Metrics:   map[string]spec.MetricDoc{"default": {Statements: []string{tc.statement}}},
			}
			_, err := spec.New(doc)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_StatementsChainAndMirror(t *testing.T) {
	doc := spec.Document{
		Name:      "skew",
		Dimension: 2,
		Basis:     []string{"a", "b"},
		Metrics: map[string]spec.MetricDoc{
			"default": {Statements: []string{"a.a = b.b = 2", " b.a=0.5 "}},
		},
	}
	a, err := spec.New(doc)
	require.NoError(t, err)
	m, err := a.Metric("default")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 0.5}, {0.5, 2}}, m.Matrix())

	// the default metric is not Euclidean, the identity stays available
	e, err := a.Metric("euclidean")
	require.NoError(t, err)
	assert.True(t, e.IsEuclidean())
}

func TestDocument_Validate(t *testing.T) {
	valid := func() spec.Document {
		return spec.Document{
			Name:      "e2ga",
			Dimension: 2,
			Basis:     []string{"e1", "e2"},
			Metrics:   map[string]spec.MetricDoc{"default": {Statements: []string{"e1.e1=e2.e2=1"}}},
		}
	}
	require.NoError(t, valid().Validate())

	cases := []struct {
		name   string
		mutate func(d *spec.Document)
	}{
		{"missing name", func(d *spec.Document) { d.Name = "" }},
		{"zero dimension", func(d *spec.Document) { d.Dimension, d.Basis = 0, nil }},
		{"dimension above 32", func(d *spec.Document) { d.Dimension = 33 }},
		{"basis count", func(d *spec.Document) { d.Basis = []string{"e1"} }},
		{"duplicate basis", func(d *spec.Document) { d.Basis = []string{"e1", "e1"} }},
		{"basis not identifier", func(d *spec.Document) { d.Basis = []string{"e1", "2x"} }},
		{"empty statements", func(d *spec.Document) {
			d.Metrics = map[string]spec.MetricDoc{"default": {}}
		}},
		{"metric names fold", func(d *spec.Document) {
			d.Metrics = map[string]spec.MetricDoc{
				"Conf": {Statements: []string{"e1.e1=1"}},
				"conf": {Statements: []string{"e2.e2=1"}},
			}
		}},
		{"negative epsilon", func(d *spec.Document) { d.RoundingEpsilon = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid()
			tc.mutate(&d)
			require.ErrorIs(t, d.Validate(), spec.ErrInvalidSpec)
			_, err := spec.New(d)
			require.ErrorIs(t, err, spec.ErrInvalidSpec)
		})
	}
}

func TestParse_Forms(t *testing.T) {
	data := []byte(`
name: e2ga
dimension: 2
basis: [x, y]
roundingEpsilon: 1e-12
metrics:
  default: "x.x=y.y=-1"
`)
	a, err := spec.Parse(data, spec.WithRoundingEpsilon(1e-9))
	require.NoError(t, err)
	sp, err := a.Space("default")
	require.NoError(t, err)
	assert.Equal(t, ga.Diagonal{-1, -1}, sp)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"unknown field", "name: x\ndimension: 1\nbasis: [e1]\ncolour: red\n"},
		{"wrong type", "name: x\ndimension: one\nbasis: [e1]\n"},
		{"unknown metric field", "name: x\ndimension: 1\nbasis: [e1]\nmetrics:\n  default:\n    statements: [\"e1.e1=1\"]\n    rnd: true\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := spec.Parse([]byte(tc.data))
			require.ErrorIs(t, err, spec.ErrInvalidSpec)
		})
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { spec.WithRoundingEpsilon(-1) })
	require.Panics(t, func() { spec.WithLogger(nil) })
	require.NotPanics(t, func() { spec.WithRoundingEpsilon(0) })
}
