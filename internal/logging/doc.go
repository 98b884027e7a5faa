// Package logging builds the slog loggers used across cinebot. It provides a
// human-readable console handler for interactive use, a JSON handler for
// machine consumption, attribute helpers, and component-scoped loggers.
package logging
