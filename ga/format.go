// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sciumo/gaigen-sub003/bits"
)

// DefaultWedge joins basis vector names in LangString.
const DefaultWedge = "_"

// BasisName returns the name of basis vector idx (0-based): names[idx] when
// present and non-empty, otherwise "e1", "e2", ...
func BasisName(idx int, names []string) string {
	if idx < len(names) && names[idx] != "" {
		return names[idx]
	}

	return "e" + strconv.Itoa(idx+1)
}

// String renders b with the default basis names.
func (b BasisBlade) String() string { return b.Render(nil) }

// Render renders b as "scale*sym*e1^e2" with the given basis names.
// A unit scale is omitted, a multi-term sum is parenthesized, and the zero
// blade renders as "0".
func (b BasisBlade) Render(names []string) string {
	if b.scale == 0 {
		return "0"
	}
	var sb strings.Builder
	switch len(b.sym) {
	case 0:
	case 1:
		sb.WriteString(b.sym.String())
	default:
		sb.WriteByte('(')
		sb.WriteString(b.sym.String())
		sb.WriteByte(')')
	}
	if b.bitmap != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('*')
		}
		for i, idx := range bits.Indices(b.bitmap) {
			if i > 0 {
				sb.WriteByte('^')
			}
			sb.WriteString(BasisName(idx, names))
		}
	}
	switch {
	case sb.Len() == 0:
		return formatFloat(b.scale)
	case b.scale == 1:
		return sb.String()
	}

	return formatFloat(b.scale) + "*" + sb.String()
}

// FormatBlades renders a sum of blades. Blades after the first are joined with
// " + ", or with " - " and negated when their scale is negative.
// An empty list renders as "0".
func FormatBlades(list []BasisBlade, names []string) string {
	if len(list) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, b := range list {
		switch {
		case i == 0:
		case b.scale < 0:
			sb.WriteString(" - ")
			b = b.Negate()
		default:
			sb.WriteString(" + ")
		}
		sb.WriteString(b.Render(names))
	}

	return sb.String()
}

// LangString renders a unit blade as an identifier for generated code:
// "scalar"/"neg_scalar", "e1"/"neg_e1", and for higher grades the names
// joined by wedge, with the first two swapped when the scale is -1.
// An empty wedge selects DefaultWedge.
//
// Errors:
//   - ErrZeroBlade when the scale is 0.
//   - ErrNonUnitScale when the scale is not ±1.
func (b BasisBlade) LangString(names []string, wedge string) (string, error) {
	if b.scale == 0 {
		return "", fmt.Errorf("LangString: %w", ErrZeroBlade)
	}
	if b.scale != 1 && b.scale != -1 {
		return "", fmt.Errorf("LangString(%g): %w", b.scale, ErrNonUnitScale)
	}
	if wedge == "" {
		wedge = DefaultWedge
	}
	idx := bits.Indices(b.bitmap)
	bvs := make([]string, len(idx))
	for i, j := range idx {
		bvs[i] = BasisName(j, names)
	}
	neg := b.scale < 0
	switch len(bvs) {
	case 0:
		if neg {
			return "neg_scalar", nil
		}
		return "scalar", nil
	case 1:
		if neg {
			return "neg_" + bvs[0], nil
		}
		return bvs[0], nil
	}
	if neg {
		bvs[0], bvs[1] = bvs[1], bvs[0]
	}

	return strings.Join(bvs, wedge), nil
}
