package dimension

import (
	"fmt"
	"math"
)

// Quantity is a scalar coefficient times a product of units raised to
// integer powers. The coefficient is finite and non-zero for every value
// built through New; operations return new Quantities and never mutate.
type Quantity struct {
	Coefficient float64
	Exponents   Exponents
}

// New builds a Quantity from a coefficient and an exponent vector. Zero
// entries in the vector are dropped. A zero or non-finite coefficient
// returns ErrInvalidCoefficient.
func New(coefficient float64, exponents Exponents) (Quantity, error) {
	if coefficient == 0 || math.IsInf(coefficient, 0) || math.IsNaN(coefficient) {
		return Quantity{}, fmt.Errorf("%w: %v", ErrInvalidCoefficient, coefficient)
	}
	return Quantity{Coefficient: coefficient, Exponents: normalize(exponents)}, nil
}

// Multiply composes q with other so that q's exponent for targetUnit moves
// toward zero by one application of other. other is typically a conversion
// equation reinterpreted as a Quantity.
//
// The combination sign is +1 when other's entry for targetUnit is below
// q's and -1 otherwise; the new coefficient is
// other.Coefficient^sign * q.Coefficient, so applying an equation against
// its stored direction divides out its coefficient. Both operands must
// carry a non-zero entry for targetUnit; a missing entry is a logic error,
// never an implicit zero.
func (q Quantity) Multiply(other Quantity, targetUnit string) (Quantity, error) {
	qExp, ok := q.Exponents[targetUnit]
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %q in quantity", ErrMissingUnit, targetUnit)
	}
	otherExp, ok := other.Exponents[targetUnit]
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %q in equation", ErrMissingUnit, targetUnit)
	}

	sign := -1
	if otherExp < qExp {
		sign = 1
	}

	coefficient := other.Coefficient * q.Coefficient
	if sign == -1 {
		coefficient = q.Coefficient / other.Coefficient
	}

	return Quantity{
		Coefficient: coefficient,
		Exponents:   Combine(q.Exponents, other.Exponents, sign),
	}, nil
}

// Reciprocal returns 1/q: the inverse coefficient with every exponent
// negated. Pure; the coefficient invariant guarantees no division by zero.
func (q Quantity) Reciprocal() Quantity {
	return Quantity{
		Coefficient: 1 / q.Coefficient,
		Exponents:   q.Exponents.Negate(),
	}
}

// Partition splits q's exponent vector into its positive (numerator) and
// negative (denominator) parts. Denominator entries keep their negative
// sign.
func (q Quantity) Partition() (numerator, denominator Exponents) {
	numerator = make(Exponents)
	denominator = make(Exponents)
	for unit, exp := range q.Exponents {
		if exp > 0 {
			numerator[unit] = exp
		} else {
			denominator[unit] = exp
		}
	}
	return numerator, denominator
}
