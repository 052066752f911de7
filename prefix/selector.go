package prefix

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rshade/unitwalk/dimension"
)

// selectionProbability gates each eligible slot independently.
const selectionProbability = 0.50

// window bounds how far (in decades) a folded coefficient may drift from
// magnitude one.
const window = 6

// Selection is the outcome of one prefix-folding pass. Prefix names are
// empty when no prefix was chosen for that slot. Exponent is the net power
// of ten to multiply into the coefficient for display.
type Selection struct {
	Numerator   string
	Denominator string
	Exponent    int
}

// Selector randomly folds coefficient magnitude into SI prefixes.
type Selector struct {
	rng *rand.Rand
}

// Option configures a Selector.
type Option func(*Selector)

// WithSource injects the random source for coin flips and ladder picks.
func WithSource(src rand.Source) Option {
	return func(s *Selector) {
		s.rng = rand.New(src)
	}
}

// NewSelector builds a selector. Without WithSource it self-seeds from the
// shared global source.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select chooses at most one prefix for the numerator and one for the
// denominator of a quantity split into positive and negative exponent
// groups. A slot is eligible only when exactly one distinct unit occupies
// that side; each eligible slot is then gated by an independent coin flip.
//
// Candidates for a slot are the ladder values p keeping
// |baseline - p*exponent| within six decades, where baseline starts at
// floor(log10(|coefficient|)) and is re-anchored by the numerator's pick
// before the denominator's. A slot with no candidate in the window is
// skipped. A zero or non-finite coefficient cannot be placed on the decade
// scale and returns dimension.ErrInvalidCoefficient.
func (s *Selector) Select(coefficient float64, numerator, denominator dimension.Exponents) (Selection, error) {
	if coefficient == 0 || math.IsInf(coefficient, 0) || math.IsNaN(coefficient) {
		return Selection{}, fmt.Errorf("%w: %v", dimension.ErrInvalidCoefficient, coefficient)
	}

	baseline := int(math.Floor(math.Log10(math.Abs(coefficient))))

	var sel Selection
	if _, exp, ok := soleUnit(numerator); ok && s.rng.Float64() < selectionProbability {
		if p, ok := s.pick(baseline, exp); ok {
			sel.Numerator = names[p]
			sel.Exponent -= p * exp
			baseline -= p * exp
		}
	}
	if _, exp, ok := soleUnit(denominator); ok && s.rng.Float64() < selectionProbability {
		if p, ok := s.pick(baseline, exp); ok {
			sel.Denominator = names[p]
			sel.Exponent -= p * exp
		}
	}

	return sel, nil
}

// pick uniformly chooses a ladder value whose folded magnitude stays
// inside the window around baseline. ok is false when no ladder value
// qualifies.
func (s *Selector) pick(baseline, exp int) (power int, ok bool) {
	var candidates []int
	for _, p := range ladder {
		if d := baseline - p*exp; d >= -window && d <= window {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[s.rng.IntN(len(candidates))], true
}

// soleUnit reports the single unit and exponent of a one-entry vector.
func soleUnit(e dimension.Exponents) (unit string, exp int, ok bool) {
	if len(e) != 1 {
		return "", 0, false
	}
	for unit, exp := range e {
		return unit, exp, true
	}
	return "", 0, false
}
