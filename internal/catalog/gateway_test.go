package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cinebot/internal/logging"
	"cinebot/internal/tmdb"
)

func newTestGateway(t *testing.T, store Store, handler http.Handler) *Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := tmdb.New("test-key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("tmdb client: %v", err)
	}
	gateway, err := NewGateway(client, Options{
		Store:     store,
		ImageBase: "https://img.example/t/p/",
		Region:    "US",
		KeyPrefix: "test",
		Logger:    logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}
	return gateway
}

func writeJSON(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestSearchMoviesServesSecondCallFromCache(t *testing.T) {
	calls := 0
	gateway := newTestGateway(t, NewMemoryStore(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(t, w, tmdb.SearchResponse{
			TotalResults: 1,
			Results: []tmdb.SearchResult{
				{ID: 268, Title: "Batman", ReleaseDate: "1989-06-23", PosterPath: "/bat.jpg", VoteAverage: 7.2},
			},
		})
	}))

	ctx := context.Background()
	first, err := gateway.SearchMovies(ctx, "batman", 1989)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	second, err := gateway.SearchMovies(ctx, "batman", 1989)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}
	if len(second.Results) != 1 || second.Results[0].ID != first.Results[0].ID {
		t.Fatalf("cached payload diverged: %+v vs %+v", first, second)
	}
	if got := first.Results[0].PosterURL; got != "https://img.example/t/p/w500/bat.jpg" {
		t.Fatalf("poster URL not prefixed: %q", got)
	}
}

func TestSearchMoviesExpiredEntryRefetches(t *testing.T) {
	calls := 0
	store := NewMemoryStore()
	current := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return current })

	gateway := newTestGateway(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(t, w, tmdb.SearchResponse{Results: []tmdb.SearchResult{{ID: 1, Title: "Heat"}}})
	}))

	ctx := context.Background()
	if _, err := gateway.SearchMovies(ctx, "heat", 0); err != nil {
		t.Fatalf("first search: %v", err)
	}
	current = current.Add(25 * time.Hour)
	if _, err := gateway.SearchMovies(ctx, "heat", 0); err != nil {
		t.Fatalf("second search: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected refetch after expiry, got %d upstream calls", calls)
	}
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store down")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store down")
}

func TestStoreFailureDegradesToMiss(t *testing.T) {
	calls := 0
	gateway := newTestGateway(t, brokenStore{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(t, w, tmdb.SearchResponse{Results: []tmdb.SearchResult{{ID: 1, Title: "Heat"}}})
	}))

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		list, err := gateway.SearchMovies(ctx, "heat", 0)
		if err != nil {
			t.Fatalf("search %d: %v", i, err)
		}
		if len(list.Results) != 1 {
			t.Fatalf("search %d: unexpected results %+v", i, list)
		}
	}
	if calls != 2 {
		t.Fatalf("expected upstream call per request, got %d", calls)
	}
}

func TestMovieDetailsNormalization(t *testing.T) {
	details := tmdb.MovieDetails{
		ID:          114,
		Title:       "Pretty Woman",
		ReleaseDate: "1990-03-23",
		Runtime:     119,
		Genres:      []tmdb.Genre{{ID: 35, Name: "Comedy"}, {ID: 10749, Name: "Romance"}},
		PosterPath:  "/pw.jpg",
		BackdropPath: "/pw-backdrop.jpg",
		ProductionCompanies: []tmdb.Company{
			{Name: "Touchstone"}, {Name: "Silver Screen"}, {Name: "Three"}, {Name: "Four"},
		},
		ReleaseDates: tmdb.ReleaseDates{Results: []tmdb.CountryReleases{
			{CountryCode: "FR", ReleaseDates: []tmdb.ReleaseInfo{{Certification: "12"}}},
			{CountryCode: "US", ReleaseDates: []tmdb.ReleaseInfo{{Certification: ""}, {Certification: "R"}}},
		}},
	}
	for i := 0; i < 12; i++ {
		details.Credits.Cast = append(details.Credits.Cast, tmdb.CastMember{ID: int64(i), Name: "Actor", Order: i})
	}
	details.Credits.Crew = []tmdb.CrewMember{
		{Name: "Garry Marshall", Job: "Director"},
		{Name: "Grip", Job: "Key Grip"},
		{Name: "J.F. Lawton", Job: "Writer"},
		{Name: "Gaffer", Job: "Gaffer"},
		{Name: "Producer One", Job: "Producer"},
	}
	details.Videos.Results = []tmdb.Video{
		{Key: "v1", Site: "Vimeo", Type: "Trailer"},
		{Key: "y1", Site: "YouTube", Type: "Trailer"},
		{Key: "y2", Site: "YouTube", Type: "Clip"},
		{Key: "y3", Site: "YouTube", Type: "Featurette"},
		{Key: "y4", Site: "YouTube", Type: "Clip"},
	}
	for i := 0; i < 8; i++ {
		details.Similar.Results = append(details.Similar.Results, tmdb.SearchResult{ID: int64(100 + i), Title: "Similar"})
	}

	gateway := newTestGateway(t, NewMemoryStore(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/movie/114") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, details)
	}))

	movie, err := gateway.MovieDetails(context.Background(), 114)
	if err != nil {
		t.Fatalf("details: %v", err)
	}

	if len(movie.Cast) != 10 {
		t.Errorf("cast not capped: %d", len(movie.Cast))
	}
	if len(movie.Crew) != 3 {
		t.Errorf("crew filter wrong, got %d entries", len(movie.Crew))
	}
	for _, member := range movie.Crew {
		switch member.Job {
		case "Director", "Producer", "Screenplay", "Writer":
		default:
			t.Errorf("crew entry with job %q survived the filter", member.Job)
		}
	}
	if len(movie.Videos) != 3 {
		t.Errorf("videos not capped to 3, got %d", len(movie.Videos))
	}
	for _, video := range movie.Videos {
		if video.Site != "YouTube" {
			t.Errorf("non-YouTube video survived: %+v", video)
		}
	}
	if len(movie.Similar) != 6 {
		t.Errorf("similar not capped to 6, got %d", len(movie.Similar))
	}
	if len(movie.ProductionCompanies) != 3 {
		t.Errorf("companies not capped to 3, got %d", len(movie.ProductionCompanies))
	}
	if movie.ContentRating != "R" {
		t.Errorf("content rating = %q, want R", movie.ContentRating)
	}
	if movie.PosterURL != "https://img.example/t/p/w500/pw.jpg" {
		t.Errorf("poster URL = %q", movie.PosterURL)
	}
	if movie.BackdropURL != "https://img.example/t/p/w1280/pw-backdrop.jpg" {
		t.Errorf("backdrop URL = %q", movie.BackdropURL)
	}
	if movie.Year() != "1990" {
		t.Errorf("year = %q", movie.Year())
	}
}

func TestMovieCertificationFallsBackToNotRated(t *testing.T) {
	dates := tmdb.ReleaseDates{Results: []tmdb.CountryReleases{
		{CountryCode: "DE", ReleaseDates: []tmdb.ReleaseInfo{{Certification: "16"}}},
	}}
	if got := movieCertification(dates, "US"); got != NotRated {
		t.Fatalf("certification = %q, want %q", got, NotRated)
	}
	empty := tmdb.ReleaseDates{Results: []tmdb.CountryReleases{
		{CountryCode: "US", ReleaseDates: []tmdb.ReleaseInfo{{Certification: ""}}},
	}}
	if got := movieCertification(empty, "US"); got != NotRated {
		t.Fatalf("certification = %q, want %q", got, NotRated)
	}
}

func TestMovieDetailsNotFound(t *testing.T) {
	gateway := newTestGateway(t, NewMemoryStore(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"not found"}`, http.StatusNotFound)
	}))

	_, err := gateway.MovieDetails(context.Background(), 999999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpstreamFailureMapped(t *testing.T) {
	gateway := newTestGateway(t, NewMemoryStore(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := gateway.SearchMovies(context.Background(), "heat", 0)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestSearchMultiDropsPeople(t *testing.T) {
	gateway := newTestGateway(t, NewMemoryStore(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, tmdb.SearchResponse{Results: []tmdb.SearchResult{
			{ID: 1, Title: "The Matrix", MediaType: "movie"},
			{ID: 2, Name: "Keanu Reeves", MediaType: "person"},
			{ID: 3, Name: "The Matrix Show", MediaType: "tv", FirstAirDate: "2021-01-01"},
		}})
	}))

	list, err := gateway.SearchMulti(context.Background(), "matrix")
	if err != nil {
		t.Fatalf("multi search: %v", err)
	}
	if len(list.Results) != 2 {
		t.Fatalf("expected person entries dropped, got %+v", list.Results)
	}
	if list.Results[1].MediaType != "tv" || list.Results[1].Title != "The Matrix Show" {
		t.Fatalf("tv entry mangled: %+v", list.Results[1])
	}
}

func TestWatchProvidersMergedAndSorted(t *testing.T) {
	gateway := newTestGateway(t, NewMemoryStore(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, tmdb.WatchProviders{
			ID: 114,
			Results: map[string]tmdb.CountryProviders{
				"US": {
					Link: "https://example.test/114",
					Flatrate: []tmdb.Provider{
						{ProviderID: 8, ProviderName: "Netflix", DisplayPriority: 5, LogoPath: "/n.jpg"},
					},
					Rent: []tmdb.Provider{
						{ProviderID: 2, ProviderName: "Apple TV", DisplayPriority: 1},
						{ProviderID: 8, ProviderName: "Netflix", DisplayPriority: 5},
					},
					Buy: []tmdb.Provider{
						{ProviderID: 3, ProviderName: "Google Play", DisplayPriority: 3},
					},
				},
			},
		})
	}))

	providers, err := gateway.WatchProviders(context.Background(), 114)
	if err != nil {
		t.Fatalf("providers: %v", err)
	}
	if providers.Region != "US" || providers.Link != "https://example.test/114" {
		t.Fatalf("region payload wrong: %+v", providers)
	}
	if len(providers.Providers) != 3 {
		t.Fatalf("expected dedup to 3 providers, got %+v", providers.Providers)
	}
	for i := 1; i < len(providers.Providers); i++ {
		if providers.Providers[i-1].Priority > providers.Providers[i].Priority {
			t.Fatalf("providers not sorted by priority: %+v", providers.Providers)
		}
	}
	if providers.Providers[len(providers.Providers)-1].LogoURL != "https://img.example/t/p/original/n.jpg" {
		t.Fatalf("logo URL not prefixed: %+v", providers.Providers)
	}
}

func TestPersonSearchBounds(t *testing.T) {
	resp := tmdb.PersonSearchResponse{}
	for i := 0; i < 8; i++ {
		resp.Results = append(resp.Results, tmdb.PersonResult{
			ID:   int64(i + 1),
			Name: "Person",
			KnownFor: []tmdb.SearchResult{
				{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}, {ID: 4, Title: "D"},
			},
		})
	}
	gateway := newTestGateway(t, NewMemoryStore(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, resp)
	}))

	list, err := gateway.SearchPeople(context.Background(), "person")
	if err != nil {
		t.Fatalf("person search: %v", err)
	}
	if len(list.Results) != 5 {
		t.Fatalf("person results not capped to 5, got %d", len(list.Results))
	}
	if len(list.Results[0].KnownFor) != 3 {
		t.Fatalf("known_for not capped to 3, got %d", len(list.Results[0].KnownFor))
	}
}

func TestPersonDetailsFilmographyDedupAndOrder(t *testing.T) {
	gateway := newTestGateway(t, NewMemoryStore(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, tmdb.PersonDetails{
			ID:   6384,
			Name: "Keanu Reeves",
			MovieCredits: tmdb.MovieCredits{
				Cast: []tmdb.FilmCredit{
					{ID: 603, Title: "The Matrix", Character: "Neo", ReleaseDate: "1999-03-30"},
					{ID: 245891, Title: "John Wick", Character: "John Wick", ReleaseDate: "2014-10-22"},
				},
				Crew: []tmdb.FilmCredit{
					{ID: 603, Title: "The Matrix", Job: "Stunts", ReleaseDate: "1999-03-30"},
					{ID: 100, Title: "Man of Tai Chi", Job: "Director", ReleaseDate: "2013-07-04"},
				},
			},
		})
	}))

	person, err := gateway.PersonDetails(context.Background(), 6384)
	if err != nil {
		t.Fatalf("person details: %v", err)
	}
	if len(person.Filmography) != 3 {
		t.Fatalf("expected dedup to 3 credits, got %+v", person.Filmography)
	}
	if person.Filmography[0].Title != "John Wick" {
		t.Fatalf("filmography not newest-first: %+v", person.Filmography)
	}
	if person.MovieCount != 3 {
		t.Fatalf("movie count = %d", person.MovieCount)
	}
	if person.Filmography[1].Character != "Director" {
		t.Fatalf("crew-only credit should fall back to job: %+v", person.Filmography[1])
	}
	if person.Filmography[2].Character != "Neo" {
		t.Fatalf("cast credit lost its character: %+v", person.Filmography[2])
	}
}
