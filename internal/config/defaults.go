package config

const (
	defaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL = "https://image.tmdb.org/t/p/"
	defaultTMDBLanguage     = "en-US"
	defaultTMDBRegion       = "US"
	defaultCacheKeyPrefix   = "cinebot"
	defaultOverridesPath    = "~/.config/cinebot/overrides/titles.json"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"

	defaultMaxResults       = 10
	defaultMaxPersonResults = 5
	defaultMaxCast          = 10
	defaultMaxCrew          = 5
	defaultMaxVideos        = 3
	defaultMaxSimilar       = 6
	defaultMaxKnownFor      = 3
	defaultMaxCompanies     = 3
)

// defaultStopwords are function words stripped from free text before a fresh
// catalog search. Named entities never belong here.
var defaultStopwords = []string{
	"with", "starring", "featuring", "from", "about",
	"the one", "movie", "film",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultTMDBImageBaseURL,
			Language:     defaultTMDBLanguage,
			Region:       defaultTMDBRegion,
		},
		Cache: Cache{
			KeyPrefix: defaultCacheKeyPrefix,
		},
		Resolver: Resolver{
			OverridesPath: defaultOverridesPath,
			Stopwords:     append([]string(nil), defaultStopwords...),
		},
		Catalog: Catalog{
			MaxResults:       defaultMaxResults,
			MaxPersonResults: defaultMaxPersonResults,
			MaxCast:          defaultMaxCast,
			MaxCrew:          defaultMaxCrew,
			MaxVideos:        defaultMaxVideos,
			MaxSimilar:       defaultMaxSimilar,
			MaxKnownFor:      defaultMaxKnownFor,
			MaxCompanies:     defaultMaxCompanies,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
