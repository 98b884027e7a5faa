// Package tmdb is a thin HTTP client for The Movie Database API. It exposes
// the raw upstream payload shapes; normalization into cinebot's internal
// schema happens in the catalog package.
package tmdb
