// Package resolver maps user-supplied references (an explicit ID, a 1-based
// position in the current result set, or free text like "Batman 1989") onto
// stable content identifiers. Resolution walks a fixed precedence ladder and
// fails with ErrAmbiguous rather than guessing: explicit ID, then position,
// then a scored fuzzy match against the live result set, then a fresh scored
// catalog search. References never resolve across kinds.
package resolver
