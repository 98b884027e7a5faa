package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cinebot/internal/catalog"
	"cinebot/internal/logging"
	"cinebot/internal/resolver"
	"cinebot/internal/session"
	"cinebot/internal/tmdb"
)

// Dialog state hints returned to the orchestrator.
const (
	StateGreeting      = "greeting"
	StateBrowsing      = "browsing"
	StateMovieDetails  = "movie_details"
	StateTVDetails     = "tv_details"
	StatePersonDetails = "person_details"
)

// Display event types pushed alongside spoken messages.
const (
	EventMovieSearchResults  = "movie_search_results"
	EventTVSearchResults     = "tv_search_results"
	EventMultiSearchResults  = "multi_search_results"
	EventMovieDetails        = "movie_details"
	EventTVDetails           = "tv_details"
	EventCastCrewDisplay     = "cast_crew_display"
	EventSimilarMovies       = "similar_movies"
	EventTrailerAvailable    = "trailer_available"
	EventPersonSearchResults = "person_search_results"
	EventPersonDetails       = "person_details"
	EventTrendingMovies      = "trending_movies"
	EventNowPlayingMovies    = "now_playing_movies"
	EventGenreMovies         = "genre_movies"
	EventGenreList           = "genre_list"
	EventSeasonDetails       = "season_details"
	EventWatchProviders      = "watch_providers"
	EventWatchlistUpdated    = "watchlist_updated"
	EventWatchlistDisplay    = "watchlist_display"
	EventClearDisplay        = "clear_display"
)

// Event is one display payload for the UI channel.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Result is what every operation hands back to the orchestrator. Message is
// conversational prose and never contains internal identifiers; Event may be
// nil when there is nothing to show.
type Result struct {
	Message   string `json:"message"`
	Event     *Event `json:"event,omitempty"`
	NextState string `json:"next_state"`
}

// Reference identifies the content an operation targets: an explicit ID, a
// 1-based list position, or free text. A zero Reference means "whatever is
// currently active".
type Reference struct {
	ID       int64
	Position int
	Title    string
}

func (r Reference) isZero() bool {
	return r.ID == 0 && r.Position == 0 && r.Title == ""
}

// Gateway is the catalog surface the operations consume.
type Gateway interface {
	resolver.Gateway
	SearchMulti(ctx context.Context, query string) (catalog.ContentList, error)
	MovieDetails(ctx context.Context, movieID int64) (catalog.Movie, error)
	TVDetails(ctx context.Context, showID int64) (catalog.TVShow, error)
	PersonDetails(ctx context.Context, personID int64) (catalog.Person, error)
	Trending(ctx context.Context, mediaType, window string) (catalog.ContentList, error)
	NowPlaying(ctx context.Context) (catalog.ContentList, error)
	Discover(ctx context.Context, filters tmdb.DiscoverFilters) (catalog.ContentList, error)
	Genres(ctx context.Context) (catalog.Genres, error)
	SeasonDetails(ctx context.Context, showID int64, seasonNumber int) (catalog.Season, error)
	WatchProviders(ctx context.Context, movieID int64) (catalog.Providers, error)
}

// Agent binds the gateway, resolver, and logging together into the
// operation layer.
type Agent struct {
	gateway  Gateway
	resolver *resolver.Resolver
	logger   *slog.Logger
}

// New creates an Agent.
func New(gateway Gateway, res *resolver.Resolver, logger *slog.Logger) *Agent {
	return &Agent{
		gateway:  gateway,
		resolver: res,
		logger:   logging.NewComponentLogger(logger, "agent"),
	}
}

// failure converts an error into the polite Result the user sees. The
// mapping is the whole error contract of this layer.
func (a *Agent) failure(operation string, err error) Result {
	a.logger.Warn("operation failed",
		logging.String(logging.FieldOperation, operation),
		logging.Error(err))

	switch {
	case errors.Is(err, resolver.ErrAmbiguous):
		return Result{
			Message:   "I'm not sure which one you mean. Could you tell me the title, or its number in the list?",
			NextState: StateBrowsing,
		}
	case errors.Is(err, catalog.ErrNotFound):
		return Result{
			Message:   "I couldn't find that in the catalog. Maybe try a different title?",
			NextState: StateBrowsing,
		}
	case errors.Is(err, catalog.ErrUpstreamUnavailable):
		return Result{
			Message:   "The movie catalog isn't responding right now. Please try again in a moment.",
			NextState: StateBrowsing,
		}
	default:
		return Result{
			Message:   "Something went wrong on my end. Please try that again.",
			NextState: StateBrowsing,
		}
	}
}

// resolveContent resolves a reference of the given kind, falling back to the
// kind's active pointer when the reference is empty.
func (a *Agent) resolveContent(ctx context.Context, state *session.State, ref Reference, kind catalog.Kind) (catalog.ContentRef, error) {
	if ref.isZero() {
		if active, ok := state.Active(kind); ok {
			return active, nil
		}
		return catalog.ContentRef{}, resolver.ErrAmbiguous
	}
	return a.resolver.Resolve(ctx, state, resolver.Reference{
		Kind:     kind,
		ID:       ref.ID,
		Position: ref.Position,
		Title:    ref.Title,
	})
}

// resolveAnyContent resolves a movie-or-TV reference. Position and title
// lookups consult the shared result set, so an entry's own kind wins; empty
// references prefer the active movie, then the active show.
func (a *Agent) resolveAnyContent(ctx context.Context, state *session.State, ref Reference) (catalog.ContentRef, error) {
	if ref.isZero() {
		if active, ok := state.Active(catalog.KindMovie); ok {
			return active, nil
		}
		if active, ok := state.Active(catalog.KindTV); ok {
			return active, nil
		}
		return catalog.ContentRef{}, resolver.ErrAmbiguous
	}
	if ref.Position > 0 {
		if entry, ok := state.ResolvePosition(ref.Position); ok {
			return entry.Ref, nil
		}
		return catalog.ContentRef{}, resolver.ErrAmbiguous
	}
	return a.resolveContent(ctx, state, ref, catalog.KindMovie)
}

// replaceResults installs a content list as the session's browsable result
// set and returns the stored entries.
func replaceResults(state *session.State, list catalog.ContentList, defaultKind catalog.Kind) []session.Entry {
	entries := make([]session.Entry, 0, len(list.Results))
	for i, res := range list.Results {
		kind := defaultKind
		if res.MediaType == "tv" {
			kind = catalog.KindTV
		} else if res.MediaType == "movie" {
			kind = catalog.KindMovie
		}
		entries = append(entries, session.Entry{
			Position:    i + 1,
			Ref:         catalog.ContentRef{Kind: kind, ID: res.ID},
			DisplayName: res.Title,
			Year:        res.Year(),
		})
	}
	state.ReplaceResultSet(entries)
	return entries
}

func replacePersonResults(state *session.State, list catalog.PersonList) []session.Entry {
	entries := make([]session.Entry, 0, len(list.Results))
	for i, person := range list.Results {
		entries = append(entries, session.Entry{
			Position:    i + 1,
			Ref:         catalog.ContentRef{Kind: catalog.KindPerson, ID: person.ID},
			DisplayName: person.Name,
		})
	}
	state.ReplacePersonResultSet(entries)
	return entries
}

// titledYear formats "Title (Year)" for messages, dropping the parens when
// the year is unknown.
func titledYear(title, year string) string {
	if year == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, year)
}
