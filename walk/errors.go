package walk

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for walk execution.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrUnknownUnit indicates a target unit with no catalog equations.
	// Cannot happen for units drawn from the catalog's own closure, but a
	// caller can seed a quantity with a unit the catalog never mentions.
	ErrUnknownUnit = constError("unit not present in conversion catalog")

	// ErrDegenerateQuantity indicates a quantity with an empty exponent
	// vector: there is no unit to target, so no valid rewrite exists.
	ErrDegenerateQuantity = constError("quantity has no units to convert")

	// ErrInvalidRounds indicates maxRounds < 1; the round count is drawn
	// uniformly from 1..maxRounds inclusive.
	ErrInvalidRounds = constError("max rounds must be at least 1")
)
