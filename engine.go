// Package unitwalk explores dimensionally equivalent representations of a
// physical quantity by randomly walking a catalog of unit conversion
// equations, optionally folding coefficient magnitude into SI prefixes,
// and rendering the result as text.
//
// The Engine ties the pieces together:
//
//	eng := unitwalk.New(catalog.Default())
//	q, _ := eng.NewQuantity(2000, dimension.Exponents{"volt": 1})
//	q, _ = eng.RandomConvert(q, 4)
//	fmt.Println(eng.Render(q, true))
//
// The catalog and its index are built once and never mutated; quantities
// are immutable values. Walks sharing an Engine share its random source,
// so concurrent callers should build one Engine per goroutine or use
// walk.Walker.ConvertMany directly.
package unitwalk

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/rshade/unitwalk/catalog"
	"github.com/rshade/unitwalk/dimension"
	"github.com/rshade/unitwalk/prefix"
	"github.com/rshade/unitwalk/render"
	"github.com/rshade/unitwalk/walk"
)

// Engine owns an immutable conversion catalog plus the walker, prefix
// selector, and renderer operating over it.
type Engine struct {
	catalog  catalog.Catalog
	index    *catalog.Index
	walker   *walk.Walker
	selector *prefix.Selector
	logger   zerolog.Logger
}

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	source rand.Source
	logger zerolog.Logger
}

// WithSource injects the random source shared by the engine's walker and
// prefix selector. Seeded sources make every engine operation
// reproducible.
func WithSource(src rand.Source) Option {
	return func(s *settings) {
		s.source = src
	}
}

// WithLogger attaches a structured logger for walk debug output and
// degraded-path warnings. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// New builds an Engine over cat, indexing it once.
func New(cat catalog.Catalog, opts ...Option) *Engine {
	cfg := settings{
		source: rand.NewPCG(rand.Uint64(), rand.Uint64()),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	index := catalog.NewIndex(cat)
	return &Engine{
		catalog: cat,
		index:   index,
		walker: walk.NewWalker(index,
			walk.WithSource(cfg.source),
			walk.WithLogger(cfg.logger),
		),
		selector: prefix.NewSelector(prefix.WithSource(cfg.source)),
		logger:   cfg.logger,
	}
}

// Index returns the engine's per-unit equation lookup.
func (e *Engine) Index() *catalog.Index {
	return e.index
}

// NewQuantity builds a quantity from a coefficient and exponent vector.
func (e *Engine) NewQuantity(coefficient float64, exponents dimension.Exponents) (dimension.Quantity, error) {
	return dimension.New(coefficient, exponents)
}

// RandomConvert produces a dimensionally equivalent rewriting of q using
// at most maxRounds conversion rounds.
func (e *Engine) RandomConvert(q dimension.Quantity, maxRounds int) (dimension.Quantity, error) {
	return e.walker.RandomConvert(q, maxRounds)
}

// Render formats q as text. With useRandomPrefixes it first runs a prefix
// selection pass; if the selector rejects the coefficient the engine logs
// a warning and falls back to unprefixed formatting.
func (e *Engine) Render(q dimension.Quantity, useRandomPrefixes bool) string {
	if !useRandomPrefixes {
		return render.Format(q)
	}

	numerator, denominator := q.Partition()
	sel, err := e.selector.Select(q.Coefficient, numerator, denominator)
	if err != nil {
		e.logger.Warn().Err(err).Msg("prefix selection failed, rendering without prefixes")
		return render.Format(q)
	}
	return render.FormatWithPrefixes(q, sel)
}
