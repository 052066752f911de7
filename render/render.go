package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/rshade/unitwalk/dimension"
	"github.com/rshade/unitwalk/prefix"
)

// Format renders a quantity without SI prefix folding.
func Format(q dimension.Quantity) string {
	return FormatWithPrefixes(q, prefix.Selection{})
}

// FormatWithPrefixes renders a quantity with the outcome of a prefix
// selection applied: the selection's power-of-ten exponent scales the
// displayed coefficient and the chosen prefix names are injected before
// the unit they fold into.
//
// Positive exponents form the numerator, negative the denominator, each in
// sorted unit order. The final numerator unit is pluralized (an "s" is
// appended unless the name already ends in "s" or "z"); a quantity with no
// positive exponents renders its numerator portion as the word "inverse".
// A non-empty denominator is introduced by "per " and left singular. Units
// carry a caret suffix whenever their exponent differs from the group's
// natural magnitude of one.
func FormatWithPrefixes(q dimension.Quantity, sel prefix.Selection) string {
	coefficient := scale(q.Coefficient, sel.Exponent)
	numerator, denominator := q.Partition()

	var sb strings.Builder
	sb.WriteString(formatCoefficient(coefficient))
	sb.WriteByte(' ')
	sb.WriteString(numeratorText(numerator, sel.Numerator))

	if len(denominator) > 0 {
		sb.WriteString(" per ")
		sb.WriteString(denominatorText(denominator, sel.Denominator))
	}

	return sb.String()
}

// scale shifts a coefficient by a power of ten. Negative shifts divide by
// the exact positive power so decade folds stay correctly rounded.
func scale(c float64, exp int) float64 {
	switch {
	case exp > 0:
		return c * math.Pow10(exp)
	case exp < 0:
		return c / math.Pow10(-exp)
	default:
		return c
	}
}

// numeratorText joins the positive-exponent units, pluralizing the last.
// A selected prefix attaches to the group's only unit (selection is only
// offered when exactly one unit holds a positive exponent).
func numeratorText(numerator dimension.Exponents, prefixName string) string {
	units := numerator.Units()
	if len(units) == 0 {
		return "inverse"
	}

	parts := make([]string, 0, len(units))
	for _, unit := range units[:len(units)-1] {
		parts = append(parts, withExponent(unit, numerator[unit], 1))
	}

	last := units[len(units)-1]
	name := pluralize(prefixName + last)
	parts = append(parts, withExponent(name, numerator[last], 1))

	return strings.Join(parts, " ")
}

// denominatorText joins the negative-exponent units in singular form.
func denominatorText(denominator dimension.Exponents, prefixName string) string {
	units := denominator.Units()
	parts := make([]string, 0, len(units))
	for _, unit := range units {
		parts = append(parts, withExponent(prefixName+unit, denominator[unit], -1))
	}
	return strings.Join(parts, " ")
}

// withExponent appends a caret suffix unless the exponent already matches
// the group's natural sign-1 magnitude.
func withExponent(name string, exp, naturalSign int) string {
	if exp == naturalSign {
		return name
	}
	return name + "^" + strconv.Itoa(exp)
}

// pluralize appends "s" unless the name already ends in "s" or "z".
func pluralize(name string) string {
	if strings.HasSuffix(name, "s") || strings.HasSuffix(name, "z") {
		return name
	}
	return name + "s"
}
