package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cinebot/internal/logging"
	"cinebot/internal/tmdb"
)

// Bounds caps the length of normalized list fields. Zero values fall back
// to the original presentation limits.
type Bounds struct {
	MaxResults       int
	MaxPersonResults int
	MaxCast          int
	MaxCrew          int
	MaxVideos        int
	MaxSimilar       int
	MaxKnownFor      int
	MaxCompanies     int
}

func (b Bounds) withDefaults() Bounds {
	def := func(v *int, fallback int) {
		if *v <= 0 {
			*v = fallback
		}
	}
	def(&b.MaxResults, 10)
	def(&b.MaxPersonResults, 5)
	def(&b.MaxCast, 10)
	def(&b.MaxCrew, 5)
	def(&b.MaxVideos, 3)
	def(&b.MaxSimilar, 6)
	def(&b.MaxKnownFor, 3)
	def(&b.MaxCompanies, 3)
	return b
}

// Gateway fronts the remote catalog with a shared response cache.
type Gateway struct {
	client    *tmdb.Client
	store     Store
	bounds    Bounds
	imageBase string
	region    string
	keyPrefix string
	logger    *slog.Logger
}

// Options configures a Gateway.
type Options struct {
	Store     Store
	Bounds    Bounds
	ImageBase string
	Region    string
	KeyPrefix string
	Logger    *slog.Logger
}

// NewGateway creates a gateway over the given TMDB client.
func NewGateway(client *tmdb.Client, opts Options) (*Gateway, error) {
	if client == nil {
		return nil, errors.New("tmdb client required")
	}
	store := opts.Store
	if store == nil {
		store = NewMemoryStore()
	}
	imageBase := strings.TrimSpace(opts.ImageBase)
	if imageBase == "" {
		return nil, errors.New("image base url required")
	}
	if !strings.HasSuffix(imageBase, "/") {
		imageBase += "/"
	}
	region := strings.ToUpper(strings.TrimSpace(opts.Region))
	if region == "" {
		region = "US"
	}
	keyPrefix := strings.TrimSpace(opts.KeyPrefix)
	if keyPrefix == "" {
		keyPrefix = "cinebot"
	}
	return &Gateway{
		client:    client,
		store:     store,
		bounds:    opts.Bounds.withDefaults(),
		imageBase: imageBase,
		region:    region,
		keyPrefix: keyPrefix,
		logger:    logging.NewComponentLogger(opts.Logger, "catalog"),
	}, nil
}

// fetchCached runs the cache-aside read path: serve a non-expired entry if
// one exists, otherwise call fill, store the normalized payload under the
// operation's TTL, and return it. Store failures degrade to misses.
func fetchCached[T any](ctx context.Context, g *Gateway, operation string, args map[string]string, fill func(context.Context) (T, error)) (T, error) {
	var zero T
	key := cacheKey(g.keyPrefix, operation, args)

	if payload, ok, err := g.store.Get(ctx, key); err != nil {
		g.logger.Debug("cache read failed, treating as miss",
			logging.String(logging.FieldOperation, operation),
			logging.Error(err))
	} else if ok {
		var value T
		if err := json.Unmarshal(payload, &value); err == nil {
			g.logger.Debug("cache hit",
				logging.String(logging.FieldOperation, operation),
				logging.String("key", key))
			return value, nil
		}
		// Undecodable entry: fall through and overwrite it.
	}

	value, err := fill(ctx)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return zero, fmt.Errorf("%w: %s", ErrNotFound, operation)
		}
		return zero, fmt.Errorf("%w: %s: %s", ErrUpstreamUnavailable, operation, err)
	}

	if payload, err := json.Marshal(value); err == nil {
		if err := g.store.Set(ctx, key, payload, ttlFor(operation)); err != nil {
			g.logger.Debug("cache write failed",
				logging.String(logging.FieldOperation, operation),
				logging.Error(err))
		}
	}
	return value, nil
}

// SearchMovies searches for movies by title, optionally pinned to a year.
func (g *Gateway) SearchMovies(ctx context.Context, query string, year int) (ContentList, error) {
	args := map[string]string{"query": query}
	if year > 0 {
		args["year"] = strconv.Itoa(year)
	}
	return fetchCached(ctx, g, opSearchMovie, args, func(ctx context.Context) (ContentList, error) {
		resp, err := g.client.SearchMovie(ctx, query, year, 1)
		if err != nil {
			return ContentList{}, err
		}
		return g.normalizeList(resp), nil
	})
}

// SearchTV searches for TV shows by name, optionally pinned to a year.
func (g *Gateway) SearchTV(ctx context.Context, query string, year int) (ContentList, error) {
	args := map[string]string{"query": query}
	if year > 0 {
		args["year"] = strconv.Itoa(year)
	}
	return fetchCached(ctx, g, opSearchTV, args, func(ctx context.Context) (ContentList, error) {
		resp, err := g.client.SearchTV(ctx, query, year, 1)
		if err != nil {
			return ContentList{}, err
		}
		return g.normalizeList(resp), nil
	})
}

// SearchMulti searches movies and TV shows in one call. Person entries in
// the mixed response are dropped; person lookups go through SearchPeople.
func (g *Gateway) SearchMulti(ctx context.Context, query string) (ContentList, error) {
	args := map[string]string{"query": query}
	return fetchCached(ctx, g, opSearchMulti, args, func(ctx context.Context) (ContentList, error) {
		resp, err := g.client.SearchMulti(ctx, query, 1)
		if err != nil {
			return ContentList{}, err
		}
		filtered := make([]tmdb.SearchResult, 0, len(resp.Results))
		for _, res := range resp.Results {
			if res.MediaType == "person" {
				continue
			}
			filtered = append(filtered, res)
		}
		resp.Results = filtered
		return g.normalizeList(resp), nil
	})
}

// SearchPeople searches for people by name.
func (g *Gateway) SearchPeople(ctx context.Context, query string) (PersonList, error) {
	args := map[string]string{"query": query}
	return fetchCached(ctx, g, opSearchPerson, args, func(ctx context.Context) (PersonList, error) {
		resp, err := g.client.SearchPerson(ctx, query, 1)
		if err != nil {
			return PersonList{}, err
		}
		return g.normalizePersonList(resp), nil
	})
}

// MovieDetails fetches the normalized detail payload for one movie.
func (g *Gateway) MovieDetails(ctx context.Context, movieID int64) (Movie, error) {
	args := map[string]string{"movie_id": strconv.FormatInt(movieID, 10)}
	return fetchCached(ctx, g, opMovieDetails, args, func(ctx context.Context) (Movie, error) {
		details, err := g.client.MovieDetails(ctx, movieID)
		if err != nil {
			return Movie{}, err
		}
		return g.normalizeMovie(details), nil
	})
}

// TVDetails fetches the normalized detail payload for one TV show.
func (g *Gateway) TVDetails(ctx context.Context, showID int64) (TVShow, error) {
	args := map[string]string{"tv_id": strconv.FormatInt(showID, 10)}
	return fetchCached(ctx, g, opTVDetails, args, func(ctx context.Context) (TVShow, error) {
		details, err := g.client.TVDetails(ctx, showID)
		if err != nil {
			return TVShow{}, err
		}
		return g.normalizeTVShow(details), nil
	})
}

// PersonDetails fetches the normalized detail payload for one person.
func (g *Gateway) PersonDetails(ctx context.Context, personID int64) (Person, error) {
	args := map[string]string{"person_id": strconv.FormatInt(personID, 10)}
	return fetchCached(ctx, g, opPersonDetails, args, func(ctx context.Context) (Person, error) {
		details, err := g.client.PersonDetails(ctx, personID)
		if err != nil {
			return Person{}, err
		}
		return g.normalizePerson(details), nil
	})
}

// Trending fetches trending titles for the media type and time window.
func (g *Gateway) Trending(ctx context.Context, mediaType, window string) (ContentList, error) {
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" {
		mediaType = "movie"
	}
	window = strings.TrimSpace(window)
	if window == "" {
		window = "week"
	}
	args := map[string]string{"media_type": mediaType, "time_window": window}
	return fetchCached(ctx, g, opTrending, args, func(ctx context.Context) (ContentList, error) {
		resp, err := g.client.Trending(ctx, mediaType, window)
		if err != nil {
			return ContentList{}, err
		}
		return g.normalizeList(resp), nil
	})
}

// NowPlaying fetches movies currently in theaters for the configured region.
func (g *Gateway) NowPlaying(ctx context.Context) (ContentList, error) {
	args := map[string]string{"region": g.region}
	return fetchCached(ctx, g, opNowPlaying, args, func(ctx context.Context) (ContentList, error) {
		resp, err := g.client.NowPlaying(ctx, g.region, 1)
		if err != nil {
			return ContentList{}, err
		}
		return g.normalizeList(resp), nil
	})
}

// Discover runs a filtered discovery query.
func (g *Gateway) Discover(ctx context.Context, filters tmdb.DiscoverFilters) (ContentList, error) {
	args := map[string]string{}
	if len(filters.GenreIDs) > 0 {
		ids := make([]string, 0, len(filters.GenreIDs))
		for _, id := range filters.GenreIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		args["genres"] = strings.Join(ids, ",")
	}
	if filters.Year > 0 {
		args["year"] = strconv.Itoa(filters.Year)
	}
	if filters.SortBy != "" {
		args["sort_by"] = filters.SortBy
	}
	return fetchCached(ctx, g, opDiscover, args, func(ctx context.Context) (ContentList, error) {
		resp, err := g.client.DiscoverMovies(ctx, filters)
		if err != nil {
			return ContentList{}, err
		}
		return g.normalizeList(resp), nil
	})
}

// Genres fetches the movie genre taxonomy.
func (g *Gateway) Genres(ctx context.Context) (Genres, error) {
	return fetchCached(ctx, g, opGenres, nil, func(ctx context.Context) (Genres, error) {
		list, err := g.client.MovieGenres(ctx)
		if err != nil {
			return Genres{}, err
		}
		out := Genres{Genres: make([]GenreInfo, 0, len(list.Genres))}
		for _, genre := range list.Genres {
			out.Genres = append(out.Genres, GenreInfo{ID: genre.ID, Name: genre.Name})
		}
		return out, nil
	})
}

// SeasonDetails fetches the normalized payload for one season of a show.
func (g *Gateway) SeasonDetails(ctx context.Context, showID int64, seasonNumber int) (Season, error) {
	args := map[string]string{
		"tv_id":  strconv.FormatInt(showID, 10),
		"season": strconv.Itoa(seasonNumber),
	}
	return fetchCached(ctx, g, opSeasonDetails, args, func(ctx context.Context) (Season, error) {
		details, err := g.client.SeasonDetails(ctx, showID, seasonNumber)
		if err != nil {
			return Season{}, err
		}
		return g.normalizeSeason(details), nil
	})
}

// WatchProviders fetches normalized streaming availability for a movie in
// the configured region.
func (g *Gateway) WatchProviders(ctx context.Context, movieID int64) (Providers, error) {
	args := map[string]string{
		"movie_id": strconv.FormatInt(movieID, 10),
		"country":  g.region,
	}
	return fetchCached(ctx, g, opWatchProviders, args, func(ctx context.Context) (Providers, error) {
		resp, err := g.client.WatchProviders(ctx, movieID)
		if err != nil {
			return Providers{}, err
		}
		return g.normalizeProviders(resp), nil
	})
}
