// Package catalog holds the fixed table of unit conversion equations and
// the per-unit lookup index built from it.
//
// Every equation expresses one unit as a coefficient times a product of
// other units, stored with the left-hand unit's exponent negated and the
// right-hand units' exponents positive, so the vector directly represents
// LHS^-1 * RHS. Catalogs and indexes are built once at startup and are
// immutable afterwards; concurrent readers need no locking.
package catalog
