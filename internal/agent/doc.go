// Package agent exposes the named conversational operations over the
// catalog gateway, resolver, and session state. Every operation returns a
// Result holding a natural-language message, an optional display event for
// the UI channel, and a hint for the dialog state machine. Errors from the
// layers below never escape this package; they are classified and converted
// into polite messages at this boundary.
package agent
