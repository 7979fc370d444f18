// SPDX-License-Identifier: MIT

package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of an algebra specification.
type Document struct {
	Name            string               `yaml:"name" validate:"required"`
	Dimension       int                  `yaml:"dimension" validate:"gte=1,lte=32"`
	Basis           []string             `yaml:"basis" validate:"required,unique,dive,basisname"`
	Metrics         map[string]MetricDoc `yaml:"metrics" validate:"dive,keys,required,endkeys"`
	RoundingEpsilon float64              `yaml:"roundingEpsilon" validate:"gte=0"`
}

// MetricDoc holds the statements of one named metric. In YAML it is either a
// plain list of statements or a mapping with statements and round.
type MetricDoc struct {
	Statements []string `yaml:"statements" validate:"required,min=1,dive,required"`
	// Round enables eigenvalue rounding; nil means enabled.
	Round *bool `yaml:"round"`
}

// UnmarshalYAML accepts the list, mapping and single-statement forms.
func (m *MetricDoc) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		return value.Decode(&m.Statements)
	case yaml.ScalarNode:
		m.Statements = []string{value.Value}

		return nil
	default:
		// node decoding does not inherit KnownFields
		for i := 0; i+1 < len(value.Content); i += 2 {
			if k := value.Content[i]; k.Value != "statements" && k.Value != "round" {
				return fmt.Errorf("line %d: field %s not found in metric", k.Line, k.Value)
			}
		}
		type plain MetricDoc
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*m = MetricDoc(p)

		return nil
	}
}

// rounding reports whether eigenvalue rounding is enabled.
func (m MetricDoc) rounding() bool { return m.Round == nil || *m.Round }

// specValidate is the validator instance for documents.
// Initialized in init() with the custom basis name tag.
var specValidate *validator.Validate

var basisNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func init() {
	specValidate = validator.New()
	_ = specValidate.RegisterValidation("basisname", validateBasisName)
	specValidate.RegisterStructValidation(validateDocument, Document{})
}

// validateBasisName accepts identifiers; they must survive expression parsing.
func validateBasisName(fl validator.FieldLevel) bool {
	return basisNamePattern.MatchString(fl.Field().String())
}

func validateDocument(sl validator.StructLevel) {
	d := sl.Current().Interface().(Document)
	if len(d.Basis) != d.Dimension {
		sl.ReportError(d.Basis, "basis", "Basis", "eqdimension", fmt.Sprint(d.Dimension))
	}
	seen := make(map[string]bool, len(d.Metrics))
	for name := range d.Metrics {
		key := strings.ToLower(name)
		if seen[key] {
			sl.ReportError(d.Metrics, "metrics", "Metrics", "uniquefold", name)
		}
		seen[key] = true
	}
}

// Validate checks the document structure: a name, 1..32 basis vectors with
// unique identifier names matching the dimension, non-empty metric statements
// and metric names that stay unique ignoring case.
func (d Document) Validate() error {
	if err := specValidate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return nil
}

// Load reads and builds the specification at path.
func Load(path string, opts ...Option) (*Algebra, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	a, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return a, nil
}

// Parse decodes a YAML document and builds it. Unknown fields are rejected.
func Parse(data []byte, opts ...Option) (*Algebra, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Parse: empty document: %w", ErrInvalidSpec)
		}

		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidSpec, err)
	}

	return New(doc, opts...)
}
