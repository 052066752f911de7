package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for catalog construction and parsing.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrNonPositiveCoefficient indicates an equation coefficient that is
	// zero, negative, or non-finite. Conversion coefficients are strictly
	// positive by contract.
	ErrNonPositiveCoefficient = constError("equation coefficient must be positive and finite")

	// ErrEmptyEquation indicates an equation that mentions no units.
	ErrEmptyEquation = constError("equation mentions no units")

	// ErrZeroExponent indicates an equation vector entry stored with
	// exponent zero, violating the sparse-vector invariant.
	ErrZeroExponent = constError("equation stores a zero exponent")
)
