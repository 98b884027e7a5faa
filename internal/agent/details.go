package agent

import (
	"context"
	"fmt"
	"strings"

	"cinebot/internal/catalog"
	"cinebot/internal/session"
)

// MovieDetails fetches the detail payload for a referenced movie and makes
// it the active one. A reference that resolves to a TV show is handed to
// TVDetails instead of failing.
func (a *Agent) MovieDetails(ctx context.Context, state *session.State, ref Reference) Result {
	resolved, err := a.resolveAnyContent(ctx, state, ref)
	if err != nil {
		return a.failure("get_movie_details", err)
	}
	if resolved.Kind == catalog.KindTV {
		return a.tvDetails(ctx, state, resolved)
	}

	movie, err := a.gateway.MovieDetails(ctx, resolved.ID)
	if err != nil {
		return a.failure("get_movie_details", err)
	}
	state.SetActive(catalog.ContentRef{Kind: catalog.KindMovie, ID: movie.ID})

	message := fmt.Sprintf("Here's %s.", titledYear(movie.Title, movie.Year()))
	if movie.VoteAverage > 0 {
		message = fmt.Sprintf("Here's %s. It's rated %.1f out of 10.",
			titledYear(movie.Title, movie.Year()), movie.VoteAverage)
	}
	return Result{
		Message:   message,
		Event:     &Event{Type: EventMovieDetails, Data: movie},
		NextState: StateMovieDetails,
	}
}

// TVDetails fetches the detail payload for a referenced TV show and makes
// it the active one.
func (a *Agent) TVDetails(ctx context.Context, state *session.State, ref Reference) Result {
	resolved, err := a.resolveContent(ctx, state, ref, catalog.KindTV)
	if err != nil {
		return a.failure("get_tv_details", err)
	}
	return a.tvDetails(ctx, state, resolved)
}

func (a *Agent) tvDetails(ctx context.Context, state *session.State, resolved catalog.ContentRef) Result {
	show, err := a.gateway.TVDetails(ctx, resolved.ID)
	if err != nil {
		return a.failure("get_tv_details", err)
	}
	state.SetActive(catalog.ContentRef{Kind: catalog.KindTV, ID: show.ID})

	message := fmt.Sprintf("Here's %s.", titledYear(show.Name, show.Year()))
	if show.SeasonCount > 0 {
		message = fmt.Sprintf("Here's %s. It ran for %d seasons with %d episodes.",
			titledYear(show.Name, show.Year()), show.SeasonCount, show.EpisodeCount)
		if show.SeasonCount == 1 {
			message = fmt.Sprintf("Here's %s. It has one season with %d episodes.",
				titledYear(show.Name, show.Year()), show.EpisodeCount)
		}
	}
	return Result{
		Message:   message,
		Event:     &Event{Type: EventTVDetails, Data: show},
		NextState: StateTVDetails,
	}
}

// CastCrew shows who made and starred in the referenced movie or show.
func (a *Agent) CastCrew(ctx context.Context, state *session.State, ref Reference) Result {
	resolved, err := a.resolveAnyContent(ctx, state, ref)
	if err != nil {
		return a.failure("get_cast_crew", err)
	}

	title, cast, crew, err := a.credits(ctx, resolved)
	if err != nil {
		return a.failure("get_cast_crew", err)
	}
	state.SetActive(resolved)

	message := fmt.Sprintf("Here's who made %s.", title)
	if len(cast) > 0 {
		leads := make([]string, 0, 3)
		for _, member := range cast {
			if len(leads) == 3 {
				break
			}
			leads = append(leads, member.Name)
		}
		message = fmt.Sprintf("%s stars %s.", title, joinNames(leads))
		if director := findDirector(crew); director != "" {
			message = fmt.Sprintf("%s was directed by %s and stars %s.",
				title, director, joinNames(leads))
		}
	}
	return Result{
		Message: message,
		Event: &Event{Type: EventCastCrewDisplay, Data: map[string]any{
			"title": title,
			"cast":  cast,
			"crew":  crew,
		}},
		NextState: nextStateFor(resolved.Kind),
	}
}

// SimilarContent lists titles similar to the referenced one. The similar
// list becomes the new result set so "the second one" keeps working.
func (a *Agent) SimilarContent(ctx context.Context, state *session.State, ref Reference) Result {
	resolved, err := a.resolveAnyContent(ctx, state, ref)
	if err != nil {
		return a.failure("get_similar_content", err)
	}

	title, similar, err := a.similar(ctx, resolved)
	if err != nil {
		return a.failure("get_similar_content", err)
	}
	if len(similar) == 0 {
		return Result{
			Message:   fmt.Sprintf("I couldn't find anything similar to %s.", title),
			NextState: nextStateFor(resolved.Kind),
		}
	}

	entries := replaceResults(state, catalog.ContentList{Results: similar}, resolved.Kind)
	return Result{
		Message: fmt.Sprintf("If you liked %s, you might enjoy %s.",
			title, titledYear(entries[0].DisplayName, entries[0].Year)),
		Event: &Event{Type: EventSimilarMovies, Data: map[string]any{
			"title":   title,
			"results": similar,
		}},
		NextState: StateBrowsing,
	}
}

// Videos surfaces the trailer for the referenced movie or show.
func (a *Agent) Videos(ctx context.Context, state *session.State, ref Reference) Result {
	resolved, err := a.resolveAnyContent(ctx, state, ref)
	if err != nil {
		return a.failure("get_videos", err)
	}

	title, videos, err := a.videos(ctx, resolved)
	if err != nil {
		return a.failure("get_videos", err)
	}

	trailer := pickTrailer(videos)
	if trailer == nil {
		return Result{
			Message:   fmt.Sprintf("I couldn't find a trailer for %s.", title),
			NextState: nextStateFor(resolved.Kind),
		}
	}
	state.SetActive(resolved)
	return Result{
		Message: fmt.Sprintf("Here's the trailer for %s.", title),
		Event: &Event{Type: EventTrailerAvailable, Data: map[string]any{
			"title": title,
			"key":   trailer.Key,
			"name":  trailer.Name,
			"url":   "https://www.youtube.com/watch?v=" + trailer.Key,
		}},
		NextState: nextStateFor(resolved.Kind),
	}
}

// PersonDetails fetches the detail payload for a referenced person and
// makes them the active one.
func (a *Agent) PersonDetails(ctx context.Context, state *session.State, ref Reference) Result {
	resolved, err := a.resolveContent(ctx, state, ref, catalog.KindPerson)
	if err != nil {
		return a.failure("get_person_details", err)
	}

	person, err := a.gateway.PersonDetails(ctx, resolved.ID)
	if err != nil {
		return a.failure("get_person_details", err)
	}
	state.SetActive(catalog.ContentRef{Kind: catalog.KindPerson, ID: person.ID})

	message := fmt.Sprintf("Here's %s.", person.Name)
	if person.MovieCount > 0 {
		message = fmt.Sprintf("%s has %d film credits.", person.Name, person.MovieCount)
		if len(person.Filmography) > 0 {
			message = fmt.Sprintf("%s has %d film credits, most recently %s.",
				person.Name, person.MovieCount, person.Filmography[0].Title)
		}
	}
	return Result{
		Message:   message,
		Event:     &Event{Type: EventPersonDetails, Data: person},
		NextState: StatePersonDetails,
	}
}

// SeasonDetails lists the episodes of one season of the referenced show.
func (a *Agent) SeasonDetails(ctx context.Context, state *session.State, ref Reference, seasonNumber int) Result {
	resolved, err := a.resolveContent(ctx, state, ref, catalog.KindTV)
	if err != nil {
		return a.failure("get_season_details", err)
	}

	season, err := a.gateway.SeasonDetails(ctx, resolved.ID, seasonNumber)
	if err != nil {
		return a.failure("get_season_details", err)
	}
	state.SetActive(resolved)

	return Result{
		Message:   fmt.Sprintf("%s has %d episodes.", season.Name, len(season.Episodes)),
		Event:     &Event{Type: EventSeasonDetails, Data: season},
		NextState: StateTVDetails,
	}
}

// WatchProviders reports where the referenced movie is streaming in the
// configured region.
func (a *Agent) WatchProviders(ctx context.Context, state *session.State, ref Reference) Result {
	resolved, err := a.resolveContent(ctx, state, ref, catalog.KindMovie)
	if err != nil {
		return a.failure("get_watch_providers", err)
	}

	movie, err := a.gateway.MovieDetails(ctx, resolved.ID)
	if err != nil {
		return a.failure("get_watch_providers", err)
	}
	providers, err := a.gateway.WatchProviders(ctx, resolved.ID)
	if err != nil {
		return a.failure("get_watch_providers", err)
	}
	state.SetActive(resolved)

	streaming := make([]string, 0, 3)
	for _, provider := range providers.Providers {
		if provider.Type != "flatrate" || len(streaming) == 3 {
			continue
		}
		streaming = append(streaming, provider.Name)
	}
	message := fmt.Sprintf("%s doesn't seem to be streaming anywhere right now.", movie.Title)
	if len(streaming) > 0 {
		message = fmt.Sprintf("%s is streaming on %s.", movie.Title, joinNames(streaming))
	} else if len(providers.Providers) > 0 {
		message = fmt.Sprintf("%s isn't on any subscription service, but it's available to rent or buy.", movie.Title)
	}
	return Result{
		Message: message,
		Event: &Event{Type: EventWatchProviders, Data: map[string]any{
			"title":     movie.Title,
			"country":   providers.Region,
			"link":      providers.Link,
			"providers": providers.Providers,
		}},
		NextState: StateMovieDetails,
	}
}

func (a *Agent) credits(ctx context.Context, ref catalog.ContentRef) (string, []catalog.CastEntry, []catalog.CrewEntry, error) {
	if ref.Kind == catalog.KindTV {
		show, err := a.gateway.TVDetails(ctx, ref.ID)
		if err != nil {
			return "", nil, nil, err
		}
		return show.Name, show.Cast, show.Crew, nil
	}
	movie, err := a.gateway.MovieDetails(ctx, ref.ID)
	if err != nil {
		return "", nil, nil, err
	}
	return movie.Title, movie.Cast, movie.Crew, nil
}

func (a *Agent) similar(ctx context.Context, ref catalog.ContentRef) (string, []catalog.ContentSummary, error) {
	if ref.Kind == catalog.KindTV {
		show, err := a.gateway.TVDetails(ctx, ref.ID)
		if err != nil {
			return "", nil, err
		}
		return show.Name, show.Similar, nil
	}
	movie, err := a.gateway.MovieDetails(ctx, ref.ID)
	if err != nil {
		return "", nil, err
	}
	return movie.Title, movie.Similar, nil
}

func (a *Agent) videos(ctx context.Context, ref catalog.ContentRef) (string, []catalog.VideoEntry, error) {
	if ref.Kind == catalog.KindTV {
		show, err := a.gateway.TVDetails(ctx, ref.ID)
		if err != nil {
			return "", nil, err
		}
		return show.Name, show.Videos, nil
	}
	movie, err := a.gateway.MovieDetails(ctx, ref.ID)
	if err != nil {
		return "", nil, err
	}
	return movie.Title, movie.Videos, nil
}

func pickTrailer(videos []catalog.VideoEntry) *catalog.VideoEntry {
	for i := range videos {
		if videos[i].Type == "Trailer" {
			return &videos[i]
		}
	}
	if len(videos) > 0 {
		return &videos[0]
	}
	return nil
}

func findDirector(crew []catalog.CrewEntry) string {
	for _, member := range crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return ""
}

func nextStateFor(kind catalog.Kind) string {
	switch kind {
	case catalog.KindTV:
		return StateTVDetails
	case catalog.KindPerson:
		return StatePersonDetails
	default:
		return StateMovieDetails
	}
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
