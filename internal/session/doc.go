// Package session holds the volatile per-conversation state: the current
// browsable result set with its position-to-identity mapping, the person
// result set kept separately so positions cannot collide across meanings,
// the active content pointers, and the watchlist. Nothing here survives the
// process; durability is explicitly not a goal.
package session
