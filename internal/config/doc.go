// Package config loads and validates cinebot's TOML configuration. Loading
// starts from repository defaults, layers the config file on top, expands
// paths, applies environment fallbacks for secrets, and validates the result.
package config
