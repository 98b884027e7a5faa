package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cinebot/internal/session"
)

// Operations lists every dispatchable operation name.
var Operations = []string{
	"search_movie",
	"search_tv",
	"multi_search",
	"search_person",
	"get_movie_details",
	"get_tv_details",
	"get_person_details",
	"get_cast_crew",
	"get_similar_content",
	"get_videos",
	"get_trending",
	"get_trending_tv",
	"get_now_playing",
	"get_movies_by_genre",
	"discover_content",
	"get_genres",
	"get_season_details",
	"get_watch_providers",
	"add_to_watchlist",
	"get_watchlist",
	"clear_display",
}

// Dispatch invokes an operation by name with string arguments, the calling
// convention of the dialog orchestrator. Recognized argument keys: query,
// title, id, position, genre, genres, year, sort_by, media_type, window,
// season.
func (a *Agent) Dispatch(ctx context.Context, state *session.State, operation string, args map[string]string) (Result, error) {
	ref, err := parseReference(args)
	if err != nil {
		return Result{}, err
	}

	switch operation {
	case "search_movie":
		return a.SearchMovies(ctx, state, args["query"]), nil
	case "search_tv":
		return a.SearchTV(ctx, state, args["query"]), nil
	case "multi_search":
		return a.MultiSearch(ctx, state, args["query"]), nil
	case "search_person":
		return a.SearchPeople(ctx, state, args["query"]), nil
	case "get_movie_details":
		return a.MovieDetails(ctx, state, ref), nil
	case "get_tv_details":
		return a.TVDetails(ctx, state, ref), nil
	case "get_person_details":
		return a.PersonDetails(ctx, state, ref), nil
	case "get_cast_crew":
		return a.CastCrew(ctx, state, ref), nil
	case "get_similar_content":
		return a.SimilarContent(ctx, state, ref), nil
	case "get_videos":
		return a.Videos(ctx, state, ref), nil
	case "get_trending":
		return a.Trending(ctx, state, "movie", args["window"]), nil
	case "get_trending_tv":
		return a.Trending(ctx, state, "tv", args["window"]), nil
	case "get_now_playing":
		return a.NowPlaying(ctx, state), nil
	case "get_movies_by_genre":
		return a.MoviesByGenre(ctx, state, args["genre"]), nil
	case "discover_content":
		filters, err := parseDiscoverFilters(args)
		if err != nil {
			return Result{}, err
		}
		return a.Discover(ctx, state, filters), nil
	case "get_genres":
		return a.Genres(ctx, state), nil
	case "get_season_details":
		season, err := parseInt(args, "season", 1)
		if err != nil {
			return Result{}, err
		}
		return a.SeasonDetails(ctx, state, ref, season), nil
	case "get_watch_providers":
		return a.WatchProviders(ctx, state, ref), nil
	case "add_to_watchlist":
		return a.AddToWatchlist(ctx, state, ref), nil
	case "get_watchlist":
		return a.Watchlist(ctx, state), nil
	case "clear_display":
		return a.ClearDisplay(ctx, state), nil
	default:
		return Result{}, fmt.Errorf("unknown operation %q", operation)
	}
}

func parseReference(args map[string]string) (Reference, error) {
	ref := Reference{Title: strings.TrimSpace(args["title"])}
	if raw := strings.TrimSpace(args["id"]); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Reference{}, fmt.Errorf("invalid id %q", raw)
		}
		ref.ID = id
	}
	if raw := strings.TrimSpace(args["position"]); raw != "" {
		position, err := strconv.Atoi(raw)
		if err != nil {
			return Reference{}, fmt.Errorf("invalid position %q", raw)
		}
		ref.Position = position
	}
	return ref, nil
}

func parseDiscoverFilters(args map[string]string) (DiscoverFilters, error) {
	filters := DiscoverFilters{SortBy: strings.TrimSpace(args["sort_by"])}
	if raw := strings.TrimSpace(args["genres"]); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filters.Genres = append(filters.Genres, name)
			}
		}
	}
	year, err := parseInt(args, "year", 0)
	if err != nil {
		return DiscoverFilters{}, err
	}
	filters.Year = year
	return filters, nil
}

func parseInt(args map[string]string, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(args[key])
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return value, nil
}
