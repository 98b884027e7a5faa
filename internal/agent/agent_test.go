package agent

import (
	"context"
	"strings"
	"testing"

	"cinebot/internal/catalog"
	"cinebot/internal/logging"
	"cinebot/internal/resolver"
	"cinebot/internal/session"
	"cinebot/internal/tmdb"
)

// fakeGateway serves canned payloads. Failing cases flip the err field.
type fakeGateway struct {
	movies  catalog.ContentList
	shows   catalog.ContentList
	mixed   catalog.ContentList
	people  catalog.PersonList
	movie   catalog.Movie
	show    catalog.TVShow
	person  catalog.Person
	genres  catalog.Genres
	season  catalog.Season
	offers  catalog.Providers
	err     error
	queries []string
}

func (f *fakeGateway) SearchMovies(_ context.Context, query string, _ int) (catalog.ContentList, error) {
	f.queries = append(f.queries, query)
	return f.movies, f.err
}

func (f *fakeGateway) SearchTV(_ context.Context, query string, _ int) (catalog.ContentList, error) {
	f.queries = append(f.queries, query)
	return f.shows, f.err
}

func (f *fakeGateway) SearchMulti(_ context.Context, query string) (catalog.ContentList, error) {
	f.queries = append(f.queries, query)
	return f.mixed, f.err
}

func (f *fakeGateway) SearchPeople(_ context.Context, query string) (catalog.PersonList, error) {
	f.queries = append(f.queries, query)
	return f.people, f.err
}

func (f *fakeGateway) MovieDetails(context.Context, int64) (catalog.Movie, error) {
	return f.movie, f.err
}

func (f *fakeGateway) TVDetails(context.Context, int64) (catalog.TVShow, error) {
	return f.show, f.err
}

func (f *fakeGateway) PersonDetails(context.Context, int64) (catalog.Person, error) {
	return f.person, f.err
}

func (f *fakeGateway) Trending(context.Context, string, string) (catalog.ContentList, error) {
	return f.movies, f.err
}

func (f *fakeGateway) NowPlaying(context.Context) (catalog.ContentList, error) {
	return f.movies, f.err
}

func (f *fakeGateway) Discover(context.Context, tmdb.DiscoverFilters) (catalog.ContentList, error) {
	return f.movies, f.err
}

func (f *fakeGateway) Genres(context.Context) (catalog.Genres, error) {
	return f.genres, f.err
}

func (f *fakeGateway) SeasonDetails(context.Context, int64, int) (catalog.Season, error) {
	return f.season, f.err
}

func (f *fakeGateway) WatchProviders(context.Context, int64) (catalog.Providers, error) {
	return f.offers, f.err
}

func newTestAgent(gateway *fakeGateway) *Agent {
	res := resolver.New(gateway, nil, nil, logging.NewNop())
	return New(gateway, res, logging.NewNop())
}

func batmanGateway() *fakeGateway {
	return &fakeGateway{
		movies: catalog.ContentList{
			TotalResults: 2,
			Results: []catalog.ContentSummary{
				{ID: 268, Title: "Batman", ReleaseDate: "1989-06-23", VoteAverage: 7.2},
				{ID: 364, Title: "Batman Returns", ReleaseDate: "1992-06-19", VoteAverage: 6.9},
			},
		},
		movie: catalog.Movie{ID: 268, Title: "Batman", ReleaseDate: "1989-06-23", VoteAverage: 7.2},
	}
}

func TestSearchMoviesReplacesResultSet(t *testing.T) {
	agent := newTestAgent(batmanGateway())
	state := session.New()

	result := agent.SearchMovies(context.Background(), state, "batman")

	if result.NextState != StateBrowsing {
		t.Errorf("next state = %q", result.NextState)
	}
	if result.Event == nil || result.Event.Type != EventMovieSearchResults {
		t.Fatalf("event = %+v", result.Event)
	}
	if !strings.Contains(result.Message, "Batman") {
		t.Errorf("message %q does not name the top match", result.Message)
	}

	entry, ok := state.ResolvePosition(2)
	if !ok || entry.Ref.ID != 364 {
		t.Fatalf("position 2 = %+v ok=%v", entry, ok)
	}
}

func TestSearchMoviesExtractsYear(t *testing.T) {
	gateway := batmanGateway()
	agent := newTestAgent(gateway)

	agent.SearchMovies(context.Background(), session.New(), "batman 1989")

	if len(gateway.queries) != 1 || gateway.queries[0] != "batman" {
		t.Fatalf("upstream queries = %v, want year stripped", gateway.queries)
	}
}

func TestMovieDetailsByPositionSetsActive(t *testing.T) {
	agent := newTestAgent(batmanGateway())
	state := session.New()
	agent.SearchMovies(context.Background(), state, "batman")

	result := agent.MovieDetails(context.Background(), state, Reference{Position: 1})

	if result.NextState != StateMovieDetails {
		t.Errorf("next state = %q", result.NextState)
	}
	if result.Event == nil || result.Event.Type != EventMovieDetails {
		t.Fatalf("event = %+v", result.Event)
	}
	if !strings.Contains(result.Message, "Batman (1989)") {
		t.Errorf("message = %q", result.Message)
	}
	if strings.Contains(result.Message, "268") {
		t.Errorf("internal ID leaked into message: %q", result.Message)
	}

	active, ok := state.Active(catalog.KindMovie)
	if !ok || active.ID != 268 {
		t.Fatalf("active movie = %+v ok=%v", active, ok)
	}
}

func TestDetailOpsDefaultToActivePointer(t *testing.T) {
	gateway := batmanGateway()
	gateway.movie.Cast = []catalog.CastEntry{{Name: "Michael Keaton", Character: "Batman"}}
	gateway.movie.Crew = []catalog.CrewEntry{{Name: "Tim Burton", Job: "Director"}}
	agent := newTestAgent(gateway)
	state := session.New()
	state.SetActive(catalog.ContentRef{Kind: catalog.KindMovie, ID: 268})

	result := agent.CastCrew(context.Background(), state, Reference{})

	if result.Event == nil || result.Event.Type != EventCastCrewDisplay {
		t.Fatalf("event = %+v", result.Event)
	}
	if !strings.Contains(result.Message, "Tim Burton") || !strings.Contains(result.Message, "Michael Keaton") {
		t.Errorf("message = %q", result.Message)
	}
}

func TestAmbiguousReferenceGetsPoliteMessage(t *testing.T) {
	agent := newTestAgent(&fakeGateway{})
	state := session.New()

	result := agent.MovieDetails(context.Background(), state, Reference{})

	if result.Event != nil {
		t.Errorf("ambiguous reference produced an event: %+v", result.Event)
	}
	if !strings.Contains(result.Message, "which one") {
		t.Errorf("message = %q", result.Message)
	}
}

func TestUpstreamFailureGetsPoliteMessage(t *testing.T) {
	gateway := &fakeGateway{err: catalog.ErrUpstreamUnavailable}
	agent := newTestAgent(gateway)

	result := agent.SearchMovies(context.Background(), session.New(), "batman")

	if result.Event != nil {
		t.Errorf("failure produced an event: %+v", result.Event)
	}
	if !strings.Contains(result.Message, "isn't responding") {
		t.Errorf("message = %q", result.Message)
	}
}

func TestSearchPeopleLeavesMovieResultSetAlone(t *testing.T) {
	gateway := batmanGateway()
	gateway.people = catalog.PersonList{Results: []catalog.PersonSummary{
		{ID: 31, Name: "Tom Hanks", Popularity: 80},
	}}
	agent := newTestAgent(gateway)
	state := session.New()
	agent.SearchMovies(context.Background(), state, "batman")

	result := agent.SearchPeople(context.Background(), state, "tom hanks")

	if result.Event == nil || result.Event.Type != EventPersonSearchResults {
		t.Fatalf("event = %+v", result.Event)
	}
	if entry, ok := state.ResolvePosition(1); !ok || entry.Ref.ID != 268 {
		t.Fatalf("movie result set disturbed: %+v ok=%v", entry, ok)
	}
	if entry, ok := state.ResolvePersonPosition(1); !ok || entry.Ref.ID != 31 {
		t.Fatalf("person result set = %+v ok=%v", entry, ok)
	}
}

func TestMultiSearchKeepsPerEntryKinds(t *testing.T) {
	gateway := &fakeGateway{
		mixed: catalog.ContentList{Results: []catalog.ContentSummary{
			{ID: 603, MediaType: "movie", Title: "The Matrix", ReleaseDate: "1999-03-30"},
			{ID: 9955, MediaType: "tv", Title: "The Matrix Show", ReleaseDate: "2021-01-01"},
		}},
	}
	agent := newTestAgent(gateway)
	state := session.New()

	agent.MultiSearch(context.Background(), state, "matrix")

	first, _ := state.ResolvePosition(1)
	second, _ := state.ResolvePosition(2)
	if first.Ref.Kind != catalog.KindMovie || second.Ref.Kind != catalog.KindTV {
		t.Fatalf("kinds = %q, %q", first.Ref.Kind, second.Ref.Kind)
	}
}

func TestAddToWatchlistDeduplicates(t *testing.T) {
	agent := newTestAgent(batmanGateway())
	state := session.New()
	state.SetActive(catalog.ContentRef{Kind: catalog.KindMovie, ID: 268})

	first := agent.AddToWatchlist(context.Background(), state, Reference{})
	if !strings.Contains(first.Message, "added Batman") {
		t.Errorf("first add message = %q", first.Message)
	}

	second := agent.AddToWatchlist(context.Background(), state, Reference{})
	if !strings.Contains(second.Message, "already") {
		t.Errorf("duplicate add message = %q", second.Message)
	}
	if len(state.Watchlist()) != 1 {
		t.Fatalf("watchlist length = %d", len(state.Watchlist()))
	}
}

func TestClearDisplayPreservesWatchlist(t *testing.T) {
	agent := newTestAgent(batmanGateway())
	state := session.New()
	agent.SearchMovies(context.Background(), state, "batman")
	state.AddToWatchlist(session.WatchlistItem{Ref: catalog.ContentRef{Kind: catalog.KindMovie, ID: 268}, Title: "Batman"})

	result := agent.ClearDisplay(context.Background(), state)

	if result.NextState != StateGreeting {
		t.Errorf("next state = %q", result.NextState)
	}
	if result.Event == nil || result.Event.Type != EventClearDisplay {
		t.Fatalf("event = %+v", result.Event)
	}
	if _, ok := state.ResolvePosition(1); ok {
		t.Fatal("result set survived clear")
	}
	if len(state.Watchlist()) != 1 {
		t.Fatal("watchlist lost on clear")
	}
}

func TestMoviesByGenreMatchesCaseInsensitively(t *testing.T) {
	gateway := batmanGateway()
	gateway.genres = catalog.Genres{Genres: []catalog.GenreInfo{
		{ID: 28, Name: "Action"},
		{ID: 35, Name: "Comedy"},
	}}
	agent := newTestAgent(gateway)
	state := session.New()

	result := agent.MoviesByGenre(context.Background(), state, "aCtIoN")

	if result.Event == nil || result.Event.Type != EventGenreMovies {
		t.Fatalf("event = %+v", result.Event)
	}
	if !strings.Contains(result.Message, "action movies") {
		t.Errorf("message = %q", result.Message)
	}

	unknown := agent.MoviesByGenre(context.Background(), state, "jazzercise")
	if unknown.Event != nil {
		t.Errorf("unknown genre produced an event: %+v", unknown.Event)
	}
}

func TestSimilarContentReplacesResultSet(t *testing.T) {
	gateway := batmanGateway()
	gateway.movie.Similar = []catalog.ContentSummary{
		{ID: 364, Title: "Batman Returns", ReleaseDate: "1992-06-19"},
		{ID: 414906, Title: "The Batman", ReleaseDate: "2022-03-01"},
	}
	agent := newTestAgent(gateway)
	state := session.New()
	state.SetActive(catalog.ContentRef{Kind: catalog.KindMovie, ID: 268})

	result := agent.SimilarContent(context.Background(), state, Reference{})

	if result.Event == nil || result.Event.Type != EventSimilarMovies {
		t.Fatalf("event = %+v", result.Event)
	}
	entry, ok := state.ResolvePosition(2)
	if !ok || entry.Ref.ID != 414906 {
		t.Fatalf("similar list not installed as result set: %+v ok=%v", entry, ok)
	}
}

func TestVideosPrefersTrailer(t *testing.T) {
	gateway := batmanGateway()
	gateway.movie.Videos = []catalog.VideoEntry{
		{Key: "clip1", Type: "Clip", Site: "YouTube"},
		{Key: "trailer1", Type: "Trailer", Site: "YouTube"},
	}
	agent := newTestAgent(gateway)
	state := session.New()
	state.SetActive(catalog.ContentRef{Kind: catalog.KindMovie, ID: 268})

	result := agent.Videos(context.Background(), state, Reference{})

	if result.Event == nil || result.Event.Type != EventTrailerAvailable {
		t.Fatalf("event = %+v", result.Event)
	}
	data, ok := result.Event.Data.(map[string]any)
	if !ok || data["key"] != "trailer1" {
		t.Fatalf("event data = %+v", result.Event.Data)
	}
}

func TestDispatchUnknownOperation(t *testing.T) {
	agent := newTestAgent(&fakeGateway{})
	if _, err := agent.Dispatch(context.Background(), session.New(), "launch_rockets", nil); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

func TestDispatchParsesArguments(t *testing.T) {
	agent := newTestAgent(batmanGateway())
	state := session.New()
	agent.SearchMovies(context.Background(), state, "batman")

	result, err := agent.Dispatch(context.Background(), state, "get_movie_details", map[string]string{"position": "2"})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if result.Event == nil || result.Event.Type != EventMovieDetails {
		t.Fatalf("event = %+v", result.Event)
	}

	if _, err := agent.Dispatch(context.Background(), state, "get_movie_details", map[string]string{"position": "two"}); err == nil {
		t.Fatal("expected error for non-numeric position")
	}
}
