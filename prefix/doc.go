// Package prefix implements randomized SI magnitude-prefix folding:
// absorbing a power of ten from a quantity's coefficient into a named
// decimal prefix (pico, kilo, quetta, ...) attached to one numerator unit
// and, independently, one denominator unit.
//
// The available prefixes form a fixed irregular ladder of powers of ten:
// steps of three from -30 through -3 and from 3 through 30, with the
// single-step centi/deci/deca/hecto prefixes and the empty prefix filling
// -2..2. Selection keeps the displayed coefficient's magnitude within six
// decades of one.
package prefix
