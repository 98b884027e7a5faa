package agent

import (
	"context"
	"fmt"
	"strings"

	"cinebot/internal/catalog"
	"cinebot/internal/logging"
	"cinebot/internal/resolver"
	"cinebot/internal/session"
)

// SearchMovies runs a movie title search. A four-digit year embedded in the
// query ("Batman 1989") becomes a year filter. The result set replaces the
// session's previous one.
func (a *Agent) SearchMovies(ctx context.Context, state *session.State, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Message: "What movie should I look for?", NextState: StateBrowsing}
	}

	year, cleaned := resolver.ExtractYear(query)
	list, err := a.gateway.SearchMovies(ctx, cleaned, year)
	if err != nil {
		return a.failure("search_movie", err)
	}
	if len(list.Results) == 0 {
		return Result{
			Message:   fmt.Sprintf("I couldn't find any movies matching %q. Want to try another title?", query),
			NextState: StateBrowsing,
		}
	}

	entries := replaceResults(state, list, catalog.KindMovie)
	a.logger.Debug("movie search complete",
		logging.String("query", cleaned),
		logging.Int("results", len(entries)))

	return Result{
		Message:   searchMessage("movie", query, entries),
		Event:     &Event{Type: EventMovieSearchResults, Data: searchPayload(query, list)},
		NextState: StateBrowsing,
	}
}

// SearchTV runs a TV show search, otherwise identical to SearchMovies.
func (a *Agent) SearchTV(ctx context.Context, state *session.State, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Message: "What show should I look for?", NextState: StateBrowsing}
	}

	year, cleaned := resolver.ExtractYear(query)
	list, err := a.gateway.SearchTV(ctx, cleaned, year)
	if err != nil {
		return a.failure("search_tv", err)
	}
	if len(list.Results) == 0 {
		return Result{
			Message:   fmt.Sprintf("I couldn't find any shows matching %q. Want to try another title?", query),
			NextState: StateBrowsing,
		}
	}

	entries := replaceResults(state, list, catalog.KindTV)
	return Result{
		Message:   searchMessage("show", query, entries),
		Event:     &Event{Type: EventTVSearchResults, Data: searchPayload(query, list)},
		NextState: StateBrowsing,
	}
}

// MultiSearch searches movies and TV shows together. Each result keeps its
// own kind in the result set so later references resolve correctly.
func (a *Agent) MultiSearch(ctx context.Context, state *session.State, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Message: "What should I search for?", NextState: StateBrowsing}
	}

	list, err := a.gateway.SearchMulti(ctx, query)
	if err != nil {
		return a.failure("multi_search", err)
	}
	if len(list.Results) == 0 {
		return Result{
			Message:   fmt.Sprintf("Nothing came up for %q. Want to try a different search?", query),
			NextState: StateBrowsing,
		}
	}

	entries := replaceResults(state, list, catalog.KindMovie)
	return Result{
		Message:   searchMessage("title", query, entries),
		Event:     &Event{Type: EventMultiSearchResults, Data: searchPayload(query, list)},
		NextState: StateBrowsing,
	}
}

// SearchPeople runs a person search against its own result set; the
// movie/TV result set is left alone.
func (a *Agent) SearchPeople(ctx context.Context, state *session.State, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Message: "Whose filmography should I look up?", NextState: StateBrowsing}
	}

	list, err := a.gateway.SearchPeople(ctx, query)
	if err != nil {
		return a.failure("search_person", err)
	}
	if len(list.Results) == 0 {
		return Result{
			Message:   fmt.Sprintf("I couldn't find anyone named %q.", query),
			NextState: StateBrowsing,
		}
	}

	entries := replacePersonResults(state, list)
	message := fmt.Sprintf("I found %d people matching %q.", len(entries), query)
	if len(entries) == 1 {
		message = fmt.Sprintf("I found %s. Want to see their filmography?", entries[0].DisplayName)
	}
	return Result{
		Message:   message,
		Event:     &Event{Type: EventPersonSearchResults, Data: map[string]any{"query": query, "results": list.Results}},
		NextState: StateBrowsing,
	}
}

func searchMessage(noun, query string, entries []session.Entry) string {
	if len(entries) == 1 {
		return fmt.Sprintf("I found %s.", titledYear(entries[0].DisplayName, entries[0].Year))
	}
	return fmt.Sprintf("I found %d %ss matching %q. The top match is %s.",
		len(entries), noun, query, titledYear(entries[0].DisplayName, entries[0].Year))
}

func searchPayload(query string, list catalog.ContentList) map[string]any {
	return map[string]any{
		"query":         query,
		"results":       list.Results,
		"total_results": list.TotalResults,
	}
}
