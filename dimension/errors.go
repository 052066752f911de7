package dimension

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for quantity construction and composition.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidCoefficient indicates a zero or non-finite coefficient.
	// Quantities carry finite non-zero coefficients by construction.
	ErrInvalidCoefficient = constError("invalid coefficient")

	// ErrMissingUnit indicates that Multiply was asked to target a unit
	// that one of its operands does not mention. Defaulting the missing
	// exponent to zero would silently corrupt the sign selection, so this
	// is surfaced as a logic error instead.
	ErrMissingUnit = constError("target unit not present in operand")
)
