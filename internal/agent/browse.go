package agent

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cinebot/internal/catalog"
	"cinebot/internal/session"
	"cinebot/internal/tmdb"
)

var genreCaser = cases.Title(language.English)

// Trending lists what's popular right now. mediaType is "movie" or "tv",
// window "day" or "week"; empty values take the gateway defaults.
func (a *Agent) Trending(ctx context.Context, state *session.State, mediaType, window string) Result {
	list, err := a.gateway.Trending(ctx, mediaType, window)
	if err != nil {
		return a.failure("get_trending", err)
	}
	if len(list.Results) == 0 {
		return Result{Message: "I couldn't find anything trending right now.", NextState: StateBrowsing}
	}

	kind := catalog.KindMovie
	noun := "movies"
	if mediaType == "tv" {
		kind = catalog.KindTV
		noun = "shows"
	}
	entries := replaceResults(state, list, kind)
	return Result{
		Message: fmt.Sprintf("Here are the trending %s. %s is at the top.",
			noun, titledYear(entries[0].DisplayName, entries[0].Year)),
		Event: &Event{Type: EventTrendingMovies, Data: map[string]any{
			"media_type": mediaType,
			"results":    list.Results,
		}},
		NextState: StateBrowsing,
	}
}

// NowPlaying lists movies currently in theaters.
func (a *Agent) NowPlaying(ctx context.Context, state *session.State) Result {
	list, err := a.gateway.NowPlaying(ctx)
	if err != nil {
		return a.failure("get_now_playing", err)
	}
	if len(list.Results) == 0 {
		return Result{Message: "I couldn't find anything playing in theaters.", NextState: StateBrowsing}
	}

	entries := replaceResults(state, list, catalog.KindMovie)
	return Result{
		Message: fmt.Sprintf("Here's what's in theaters now, starting with %s.",
			titledYear(entries[0].DisplayName, entries[0].Year)),
		Event:     &Event{Type: EventNowPlayingMovies, Data: map[string]any{"results": list.Results}},
		NextState: StateBrowsing,
	}
}

// MoviesByGenre lists movies in a named genre. The name is matched against
// the catalog's genre taxonomy case-insensitively.
func (a *Agent) MoviesByGenre(ctx context.Context, state *session.State, genreName string) Result {
	genreName = strings.TrimSpace(genreName)
	if genreName == "" {
		return Result{Message: "Which genre are you in the mood for?", NextState: StateBrowsing}
	}

	genres, err := a.gateway.Genres(ctx)
	if err != nil {
		return a.failure("get_movies_by_genre", err)
	}
	genreID := int64(0)
	display := genreCaser.String(genreName)
	for _, genre := range genres.Genres {
		if strings.EqualFold(genre.Name, genreName) {
			genreID = genre.ID
			display = genre.Name
			break
		}
	}
	if genreID == 0 {
		return Result{
			Message:   fmt.Sprintf("I don't know the genre %q. Try something like action, comedy, or horror.", genreName),
			NextState: StateBrowsing,
		}
	}

	list, err := a.gateway.Discover(ctx, tmdb.DiscoverFilters{GenreIDs: []int64{genreID}})
	if err != nil {
		return a.failure("get_movies_by_genre", err)
	}
	if len(list.Results) == 0 {
		return Result{
			Message:   fmt.Sprintf("I couldn't find any %s movies.", strings.ToLower(display)),
			NextState: StateBrowsing,
		}
	}

	entries := replaceResults(state, list, catalog.KindMovie)
	return Result{
		Message: fmt.Sprintf("Here are some %s movies, starting with %s.",
			strings.ToLower(display), titledYear(entries[0].DisplayName, entries[0].Year)),
		Event: &Event{Type: EventGenreMovies, Data: map[string]any{
			"genre":   display,
			"results": list.Results,
		}},
		NextState: StateBrowsing,
	}
}

// DiscoverFilters holds the user-facing discovery knobs.
type DiscoverFilters struct {
	Genres []string
	Year   int
	SortBy string
}

// Discover runs a filtered movie discovery query. Genre names are resolved
// against the taxonomy; unknown names are ignored rather than failing the
// whole query.
func (a *Agent) Discover(ctx context.Context, state *session.State, filters DiscoverFilters) Result {
	query := tmdb.DiscoverFilters{Year: filters.Year, SortBy: filters.SortBy}
	if len(filters.Genres) > 0 {
		genres, err := a.gateway.Genres(ctx)
		if err != nil {
			return a.failure("discover_content", err)
		}
		for _, name := range filters.Genres {
			for _, genre := range genres.Genres {
				if strings.EqualFold(genre.Name, name) {
					query.GenreIDs = append(query.GenreIDs, genre.ID)
					break
				}
			}
		}
	}

	list, err := a.gateway.Discover(ctx, query)
	if err != nil {
		return a.failure("discover_content", err)
	}
	if len(list.Results) == 0 {
		return Result{Message: "Nothing matched those filters. Want to loosen them up?", NextState: StateBrowsing}
	}

	entries := replaceResults(state, list, catalog.KindMovie)
	return Result{
		Message: fmt.Sprintf("I found %d movies matching your filters, starting with %s.",
			len(entries), titledYear(entries[0].DisplayName, entries[0].Year)),
		Event:     &Event{Type: EventGenreMovies, Data: map[string]any{"results": list.Results}},
		NextState: StateBrowsing,
	}
}

// Genres lists the catalog's movie genre taxonomy.
func (a *Agent) Genres(ctx context.Context, state *session.State) Result {
	genres, err := a.gateway.Genres(ctx)
	if err != nil {
		return a.failure("get_genres", err)
	}

	names := make([]string, 0, len(genres.Genres))
	for _, genre := range genres.Genres {
		names = append(names, genre.Name)
	}
	return Result{
		Message:   fmt.Sprintf("I can browse these genres: %s.", strings.Join(names, ", ")),
		Event:     &Event{Type: EventGenreList, Data: genres},
		NextState: StateBrowsing,
	}
}
