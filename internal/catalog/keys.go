package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// Operation names used for cache keying and TTL selection.
const (
	opSearchMovie    = "search_movie"
	opSearchTV       = "search_tv"
	opSearchMulti    = "multi_search"
	opSearchPerson   = "search_person"
	opMovieDetails   = "movie_details"
	opTVDetails      = "tv_details"
	opPersonDetails  = "person_details"
	opTrending       = "trending"
	opNowPlaying     = "now_playing"
	opDiscover       = "discover"
	opGenres         = "genres"
	opSeasonDetails  = "season_details"
	opWatchProviders = "watch_providers"
)

// TTL policy per operation. Taxonomy lists barely change, person search
// churns slowly, trending lists churn hourly; everything else gets a day.
const (
	ttlGenres   = 7 * 24 * time.Hour
	ttlPerson   = 12 * time.Hour
	ttlTrending = time.Hour
	ttlDefault  = 24 * time.Hour
)

func ttlFor(operation string) time.Duration {
	switch operation {
	case opGenres:
		return ttlGenres
	case opSearchPerson:
		return ttlPerson
	case opTrending, opNowPlaying:
		return ttlTrending
	default:
		return ttlDefault
	}
}

// cacheKey derives a deterministic key from the operation name and its
// arguments. Arguments are serialized in sorted-key order so that argument
// order never affects the key.
func cacheKey(prefix, operation string, args map[string]string) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString(operation)
	for _, k := range keys {
		builder.WriteByte('|')
		builder.WriteString(k)
		builder.WriteByte('=')
		builder.WriteString(args[k])
	}

	sum := sha256.Sum256([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(sum[:16])
}
