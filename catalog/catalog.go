package catalog

import (
	"fmt"
	"math"

	"github.com/rshade/unitwalk/dimension"
)

// Equation is one unit conversion identity: one unit of the implicit
// left-hand quantity equals Coefficient units of the right-hand product.
// The stored vector carries the LHS unit negated and the RHS units
// positive. Equations are built once and never mutated.
type Equation struct {
	Coefficient float64
	Exponents   dimension.Exponents
}

// Quantity reinterprets the equation as a dimension.Quantity so it can be
// composed with a quantity via Multiply.
func (e Equation) Quantity() dimension.Quantity {
	return dimension.Quantity{Coefficient: e.Coefficient, Exponents: e.Exponents}
}

// validate checks the equation invariants: positive finite coefficient,
// at least one unit, no zero exponents.
func (e Equation) validate() error {
	if e.Coefficient <= 0 || math.IsInf(e.Coefficient, 0) || math.IsNaN(e.Coefficient) {
		return fmt.Errorf("%w: %v", ErrNonPositiveCoefficient, e.Coefficient)
	}
	if len(e.Exponents) == 0 {
		return ErrEmptyEquation
	}
	for unit, exp := range e.Exponents {
		if exp == 0 {
			return fmt.Errorf("%w: %q", ErrZeroExponent, unit)
		}
	}
	return nil
}

// Catalog is an ordered, read-only sequence of conversion equations.
type Catalog []Equation

// New validates every equation and returns them as a Catalog.
func New(equations ...Equation) (Catalog, error) {
	for i, eq := range equations {
		if err := eq.validate(); err != nil {
			return nil, fmt.Errorf("equation %d: %w", i, err)
		}
	}
	return Catalog(equations), nil
}

// LHS marks the equation's left-hand unit: its exponent is stored negated.
func LHS(unit string, exp int) dimension.Exponents {
	return dimension.Exponents{unit: -exp}
}

// Define builds an equation from a coefficient, the left-hand side vector
// (already negated via LHS) and the right-hand side units.
func Define(coefficient float64, lhs, rhs dimension.Exponents) Equation {
	return Equation{
		Coefficient: coefficient,
		Exponents:   dimension.Combine(lhs, rhs, 1),
	}
}

// Default returns the built-in equation table: the electrical identities
// V=IR, P=VI, I=Q/t, f=1/t, S=1/R and the second..week time chain.
func Default() Catalog {
	cat, err := New(
		Define(1, LHS("volt", 1), dimension.Exponents{"ampère": 1, "ohm": 1}),
		Define(1, LHS("watt", 1), dimension.Exponents{"volt": 1, "ampère": 1}),
		Define(1, LHS("ampère", 1), dimension.Exponents{"coulomb": 1, "second": -1}),
		Define(1, LHS("hertz", 1), dimension.Exponents{"second": -1}),
		Define(60, LHS("minute", 1), dimension.Exponents{"second": 1}),
		Define(60, LHS("hour", 1), dimension.Exponents{"minute": 1}),
		Define(24, LHS("day", 1), dimension.Exponents{"hour": 1}),
		Define(7, LHS("week", 1), dimension.Exponents{"day": 1}),
		Define(1, LHS("siemen", 1), dimension.Exponents{"ohm": -1}),
	)
	if err != nil {
		// The built-in table is fixed; a validation failure here is a
		// programming error, not an input error.
		panic(err)
	}
	return cat
}
