// SPDX-License-Identifier: MIT

package spec

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/Sciumo/gaigen-sub003/ga"
)

// ParseBlade parses a wedge of basis vector names such as "e2^e1" into a
// unit blade carrying the sign of the canonical reordering. "1" is the
// scalar blade.
func (a *Algebra) ParseBlade(text string) (ga.BasisBlade, error) {
	text = strings.TrimSpace(text)
	if text == "1" {
		return ga.NewBlade(0, 1), nil
	}
	b := ga.NewBlade(0, 1)
	for _, name := range strings.Split(text, "^") {
		name = strings.TrimSpace(name)
		if name == "" {
			return ga.BasisBlade{}, fmt.Errorf("ParseBlade: %q: %w", text, ErrExpressionSyntax)
		}
		var err error
		if b, err = a.wedge(b, name); err != nil {
			return ga.BasisBlade{}, fmt.Errorf("ParseBlade: %q: %w", text, err)
		}
	}

	return b, nil
}

// wedge returns b∧name.
func (a *Algebra) wedge(b ga.BasisBlade, name string) (ga.BasisBlade, error) {
	idx, ok := a.index[name]
	if !ok {
		return ga.BasisBlade{}, fmt.Errorf("%q: %w", name, ErrUnknownBasisVector)
	}
	if b.Bitmap()&(1<<uint(idx)) != 0 {
		return ga.BasisBlade{}, fmt.Errorf("%q: %w", name, ErrRepeatedBasisVector)
	}

	return b.OuterProduct(ga.NewBlade(1<<uint(idx), 1)), nil
}

// exprParser is a recursive-descent parser over text/scanner tokens for
//
//	expr   = [sign] term { sign term }
//	term   = factor { "*" factor }
//	factor = number | symbol | basis { "^" basis }
type exprParser struct {
	a    *Algebra
	s    scanner.Scanner
	tok  rune
	errs []string
}

func (p *exprParser) next() { p.tok = p.s.Scan() }

func (p *exprParser) fail(what string) error {
	text := p.s.TokenText()
	if p.tok == scanner.EOF {
		text = "end of input"
	}

	return fmt.Errorf("%s at column %d near %q: %w", what, p.s.Position.Column, text, ErrExpressionSyntax)
}

// ParseMultivector parses a sum of signed terms such as
// "a1*e1 + 2*e1^e2 - b*no". Each term is a product of numbers, symbol names
// and at most one blade; identifiers that name a basis vector are basis
// vectors, all others are symbols.
func (a *Algebra) ParseMultivector(text string) (ga.Multivector, error) {
	p := &exprParser{a: a}
	p.s.Init(strings.NewReader(text))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.s.Error = func(_ *scanner.Scanner, msg string) { p.errs = append(p.errs, msg) }
	p.next()

	mv, err := p.expr()
	if err == nil && len(p.errs) > 0 {
		err = fmt.Errorf("%s: %w", strings.Join(p.errs, "; "), ErrExpressionSyntax)
	}
	if err != nil {
		return ga.Multivector{}, fmt.Errorf("ParseMultivector: %q: %w", text, err)
	}

	return mv, nil
}

func (p *exprParser) expr() (ga.Multivector, error) {
	if p.tok == scanner.EOF {
		return ga.Multivector{}, p.fail("empty expression")
	}
	var blades []ga.BasisBlade
	first := true
	for p.tok != scanner.EOF {
		sign := 1.0
		switch p.tok {
		case '+':
			p.next()
		case '-':
			sign = -1
			p.next()
		default:
			if !first {
				return ga.Multivector{}, p.fail("expected '+' or '-'")
			}
		}
		first = false
		b, err := p.term(sign)
		if err != nil {
			return ga.Multivector{}, err
		}
		blades = append(blades, b)
	}

	return ga.NewMultivector(blades...), nil
}

func (p *exprParser) term(scale float64) (ga.BasisBlade, error) {
	var syms ga.Term
	blade := ga.NewBlade(0, 1)
	hasBlade := false
	for {
		switch p.tok {
		case scanner.Int, scanner.Float:
			v, err := strconv.ParseFloat(p.s.TokenText(), 64)
			if err != nil {
				return ga.BasisBlade{}, p.fail("bad number")
			}
			scale *= v
			p.next()
		case scanner.Ident:
			name := p.s.TokenText()
			if _, ok := p.a.index[name]; !ok {
				syms = append(syms, ga.Symbol(name))
				p.next()

				break
			}
			if hasBlade {
				return ga.BasisBlade{}, p.fail("second blade in term")
			}
			hasBlade = true
			b, err := p.blade()
			if err != nil {
				return ga.BasisBlade{}, err
			}
			blade = b
		default:
			return ga.BasisBlade{}, p.fail("expected number, symbol or basis vector")
		}
		if p.tok != '*' {
			break
		}
		p.next()
	}

	scale *= blade.Scale()
	if len(syms) == 0 {
		return ga.NewBlade(blade.Bitmap(), scale), nil
	}

	return ga.NewSymbolicBlade(blade.Bitmap(), scale, ga.Sum{syms}), nil
}

// blade parses basis { "^" basis } starting at a basis vector identifier.
func (p *exprParser) blade() (ga.BasisBlade, error) {
	b := ga.NewBlade(0, 1)
	for {
		if p.tok != scanner.Ident {
			return ga.BasisBlade{}, p.fail("expected basis vector")
		}
		var err error
		if b, err = p.a.wedge(b, p.s.TokenText()); err != nil {
			return ga.BasisBlade{}, fmt.Errorf("column %d: %w", p.s.Position.Column, err)
		}
		p.next()
		if p.tok != '^' {
			return b, nil
		}
		p.next()
	}
}
