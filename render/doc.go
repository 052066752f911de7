// Package render turns quantities into human-readable text: grouped
// thousands for the coefficient, pluralized unit names, "per" between the
// numerator and denominator groups, caret exponent suffixes, and optional
// SI prefix injection from a prefix.Selection.
//
// Rendering is pure formatting: it never fails and depends on nothing
// mutable.
package render
