package dimension

import (
	"maps"
	"slices"
)

// Exponents is a sparse exponent vector: unit name to non-zero integer
// power. The zero-free invariant is maintained by every operation in this
// package; a unit missing from the map has exponent zero.
type Exponents map[string]int

// Combine merges two exponent vectors pointwise: for every unit appearing
// in either vector the result holds a[unit] + sign*b[unit]. Units whose
// combined exponent is zero are dropped so the zero-free invariant holds.
// sign must be +1 or -1.
func Combine(a, b Exponents, sign int) Exponents {
	out := make(Exponents, len(a)+len(b))
	for unit, exp := range a {
		out[unit] = exp
	}
	for unit, exp := range b {
		out[unit] += sign * exp
	}
	for unit, exp := range out {
		if exp == 0 {
			delete(out, unit)
		}
	}
	return out
}

// Negate returns a copy of e with every exponent arithmetically negated.
func (e Exponents) Negate() Exponents {
	out := make(Exponents, len(e))
	for unit, exp := range e {
		out[unit] = -exp
	}
	return out
}

// Clone returns an independent copy of e.
func (e Exponents) Clone() Exponents {
	return maps.Clone(e)
}

// Equal reports whether two vectors have identical non-zero entries.
func (e Exponents) Equal(other Exponents) bool {
	return maps.Equal(e, other)
}

// Units returns the unit names of e in sorted order. Sorted iteration keeps
// random unit selection and rendering deterministic for a fixed seed.
func (e Exponents) Units() []string {
	units := slices.Collect(maps.Keys(e))
	slices.Sort(units)
	return units
}

// normalize strips zero entries from a caller-supplied vector and copies it
// so later caller mutation cannot reach into a stored Quantity.
func normalize(e Exponents) Exponents {
	out := make(Exponents, len(e))
	for unit, exp := range e {
		if exp != 0 {
			out[unit] = exp
		}
	}
	return out
}
