// Package dimension models physical quantities as a scalar coefficient
// paired with a sparse integer exponent vector over named units.
//
// An Exponents value maps unit names to non-zero integer powers; a unit
// absent from the map implicitly has exponent zero. A Quantity combines a
// finite non-zero coefficient with such a vector. All operations have value
// semantics: they return new values and never mutate their operands, so
// quantities and exponent vectors are safe to share between goroutines.
package dimension
