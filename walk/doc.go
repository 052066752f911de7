// Package walk implements the randomized equivalence walk: starting from a
// quantity, it optionally reciprocates once and then applies a bounded
// number of conversion equations drawn from a catalog index, producing a
// dimensionally equivalent quantity with a different surface form.
//
// All randomness flows through an injected source, so a fixed seed yields a
// fully reproducible walk. A Walker is not safe for concurrent use (it owns
// its random source); ConvertMany derives an independently seeded walker
// per concurrent walk.
package walk
