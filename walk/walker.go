package walk

import (
	"fmt"
	"math/rand/v2"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/rshade/unitwalk/catalog"
	"github.com/rshade/unitwalk/dimension"
)

// reciprocalProbability is the chance of reciprocating the quantity once
// before any conversion rounds run.
const reciprocalProbability = 0.20

// Walker performs random equivalence walks over a conversion index.
type Walker struct {
	index  *catalog.Index
	rng    *rand.Rand
	logger zerolog.Logger
}

// Option configures a Walker.
type Option func(*Walker)

// WithSource injects the random source driving every probabilistic choice
// the walker makes. Seeded sources make walks reproducible.
func WithSource(src rand.Source) Option {
	return func(w *Walker) {
		w.rng = rand.New(src)
	}
}

// WithLogger attaches a structured logger; walk rounds are logged at debug
// level. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

// NewWalker builds a walker over index. Without WithSource the walker
// self-seeds from the shared global source.
func NewWalker(index *catalog.Index, opts ...Option) *Walker {
	w := &Walker{
		index:  index,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// RandomConvert produces a quantity dimensionally equivalent to q:
// a single optional reciprocal, then 1..maxRounds uniformly chosen
// conversion rounds. Each round targets a uniformly chosen unit of the
// working quantity and applies a uniformly chosen equation mentioning it.
//
// Errors: ErrInvalidRounds when maxRounds < 1, ErrDegenerateQuantity when
// the working quantity runs out of units, ErrUnknownUnit when the chosen
// unit has no catalog equations. Errors abort the walk; no partial result
// is returned.
func (w *Walker) RandomConvert(q dimension.Quantity, maxRounds int) (dimension.Quantity, error) {
	if maxRounds < 1 {
		return dimension.Quantity{}, fmt.Errorf("%w: %d", ErrInvalidRounds, maxRounds)
	}
	if len(q.Exponents) == 0 {
		return dimension.Quantity{}, ErrDegenerateQuantity
	}

	walkID := ulid.Make().String()

	if w.rng.Float64() < reciprocalProbability {
		q = q.Reciprocal()
		w.logger.Debug().Str("walk_id", walkID).Msg("reciprocated quantity")
	}

	rounds := 1 + w.rng.IntN(maxRounds)
	for round := 1; round <= rounds; round++ {
		next, err := w.step(q)
		if err != nil {
			return dimension.Quantity{}, fmt.Errorf("round %d: %w", round, err)
		}
		q = next

		w.logger.Debug().
			Str("walk_id", walkID).
			Int("round", round).
			Int("rounds", rounds).
			Float64("coefficient", q.Coefficient).
			Int("units", len(q.Exponents)).
			Msg("applied conversion")
	}

	return q, nil
}

// step runs one dimension-meddle round against the working quantity.
func (w *Walker) step(q dimension.Quantity) (dimension.Quantity, error) {
	units := q.Exponents.Units()
	if len(units) == 0 {
		return dimension.Quantity{}, ErrDegenerateQuantity
	}

	target := units[w.rng.IntN(len(units))]
	equations, ok := w.index.Lookup(target)
	if !ok {
		return dimension.Quantity{}, fmt.Errorf("%w: %q", ErrUnknownUnit, target)
	}

	equation := equations[w.rng.IntN(len(equations))]
	return q.Multiply(equation.Quantity(), target)
}
