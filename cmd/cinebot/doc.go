// Command cinebot is the development harness for the conversational movie
// assistant: it loads configuration, wires the catalog gateway, resolver,
// and operation layer, and drives operations either one-shot (invoke) or
// through an interactive loop (chat). In production the operation layer is
// driven by a dialog orchestrator instead.
package main
