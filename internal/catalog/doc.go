// Package catalog is the cached gateway to the remote content catalog. Every
// read goes through a cache-aside path: a deterministic key is derived from
// the operation name and its normalized arguments, non-expired entries are
// served without touching the network, and misses fetch from TMDB, normalize
// the payload into cinebot's internal schema, and write back with a
// per-operation TTL. Cache store failures silently degrade to misses;
// correctness never depends on the store being up.
package catalog
