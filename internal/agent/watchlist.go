package agent

import (
	"context"
	"fmt"

	"cinebot/internal/catalog"
	"cinebot/internal/session"
)

// AddToWatchlist saves the referenced movie or show for later. Duplicates
// are reported, not re-added.
func (a *Agent) AddToWatchlist(ctx context.Context, state *session.State, ref Reference) Result {
	resolved, err := a.resolveAnyContent(ctx, state, ref)
	if err != nil {
		return a.failure("add_to_watchlist", err)
	}

	var item session.WatchlistItem
	if resolved.Kind == catalog.KindTV {
		show, err := a.gateway.TVDetails(ctx, resolved.ID)
		if err != nil {
			return a.failure("add_to_watchlist", err)
		}
		item = session.WatchlistItem{Ref: resolved, Title: show.Name, PosterPath: show.PosterURL}
	} else {
		movie, err := a.gateway.MovieDetails(ctx, resolved.ID)
		if err != nil {
			return a.failure("add_to_watchlist", err)
		}
		item = session.WatchlistItem{Ref: resolved, Title: movie.Title, PosterPath: movie.PosterURL}
	}

	added := state.AddToWatchlist(item)
	message := fmt.Sprintf("%s is already on your watchlist.", item.Title)
	action := "exists"
	if added {
		message = fmt.Sprintf("I've added %s to your watchlist.", item.Title)
		action = "added"
	}
	return Result{
		Message: message,
		Event: &Event{Type: EventWatchlistUpdated, Data: map[string]any{
			"action":    action,
			"title":     item.Title,
			"watchlist": state.Watchlist(),
		}},
		NextState: StateBrowsing,
	}
}

// Watchlist shows everything saved so far.
func (a *Agent) Watchlist(_ context.Context, state *session.State) Result {
	items := state.Watchlist()
	if len(items) == 0 {
		return Result{
			Message:   "Your watchlist is empty. Want me to find something to add?",
			NextState: StateBrowsing,
		}
	}

	message := fmt.Sprintf("You have %d titles on your watchlist.", len(items))
	if len(items) == 1 {
		message = fmt.Sprintf("You have one title on your watchlist: %s.", items[0].Title)
	}
	return Result{
		Message:   message,
		Event:     &Event{Type: EventWatchlistDisplay, Data: map[string]any{"watchlist": items}},
		NextState: StateBrowsing,
	}
}

// ClearDisplay resets the visible session: result sets and active pointers
// go away, the watchlist stays.
func (a *Agent) ClearDisplay(_ context.Context, state *session.State) Result {
	state.Clear()
	return Result{
		Message:   "All cleared. What would you like to watch?",
		Event:     &Event{Type: EventClearDisplay, Data: map[string]any{}},
		NextState: StateGreeting,
	}
}
