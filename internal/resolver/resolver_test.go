package resolver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cinebot/internal/catalog"
	"cinebot/internal/logging"
	"cinebot/internal/session"
)

type fakeGateway struct {
	movieResults  []catalog.ContentSummary
	tvResults     []catalog.ContentSummary
	personResults []catalog.PersonSummary

	lastQuery string
	lastYear  int
	calls     int
}

func (f *fakeGateway) SearchMovies(_ context.Context, query string, year int) (catalog.ContentList, error) {
	f.calls++
	f.lastQuery = query
	f.lastYear = year
	return catalog.ContentList{Results: f.movieResults}, nil
}

func (f *fakeGateway) SearchTV(_ context.Context, query string, year int) (catalog.ContentList, error) {
	f.calls++
	f.lastQuery = query
	f.lastYear = year
	return catalog.ContentList{Results: f.tvResults}, nil
}

func (f *fakeGateway) SearchPeople(_ context.Context, query string) (catalog.PersonList, error) {
	f.calls++
	f.lastQuery = query
	return catalog.PersonList{Results: f.personResults}, nil
}

func newTestResolver(gateway *fakeGateway, overrides *Overrides) *Resolver {
	stopwords := []string{"with", "starring", "from", "movie", "film", "the one"}
	return New(gateway, overrides, stopwords, logging.NewNop())
}

func supermanState() *session.State {
	state := session.New()
	state.ReplaceResultSet([]session.Entry{
		{Position: 1, Ref: catalog.ContentRef{Kind: catalog.KindMovie, ID: 1924}, DisplayName: "Superman", Year: "1978"},
		{Position: 2, Ref: catalog.ContentRef{Kind: catalog.KindMovie, ID: 1452}, DisplayName: "Superman Returns", Year: "2006"},
		{Position: 3, Ref: catalog.ContentRef{Kind: catalog.KindMovie, ID: 49521}, DisplayName: "Man of Steel", Year: "2013"},
	})
	return state
}

func TestResolveExplicitIDWins(t *testing.T) {
	gateway := &fakeGateway{}
	res := newTestResolver(gateway, nil)

	ref, err := res.Resolve(context.Background(), supermanState(), Reference{
		Kind: catalog.KindMovie, ID: 603, Position: 2, Title: "superman",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 603 {
		t.Fatalf("resolved to %+v, want explicit ID", ref)
	}
	if gateway.calls != 0 {
		t.Fatal("explicit ID should not hit the catalog")
	}
}

func TestResolvePosition(t *testing.T) {
	res := newTestResolver(&fakeGateway{}, nil)
	state := supermanState()

	ref, err := res.Resolve(context.Background(), state, Reference{Kind: catalog.KindMovie, Position: 2})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 1452 {
		t.Fatalf("position 2 resolved to %+v", ref)
	}

	_, err = res.Resolve(context.Background(), state, Reference{Kind: catalog.KindMovie, Position: 9})
	if !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("out-of-range position: %v", err)
	}
}

func TestResolveFuzzyAgainstResultSet(t *testing.T) {
	gateway := &fakeGateway{}
	res := newTestResolver(gateway, nil)
	state := supermanState()

	ref, err := res.Resolve(context.Background(), state, Reference{Kind: catalog.KindMovie, Title: "Superman Returns"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 1452 {
		t.Fatalf("exact match resolved to %+v", ref)
	}

	// Bare "superman" substring-matches both Superman entries; the earlier
	// entry wins the tie.
	ref, err = res.Resolve(context.Background(), state, Reference{Kind: catalog.KindMovie, Title: "superman"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 1924 {
		t.Fatalf("tie resolved to %+v, want first entry", ref)
	}

	if gateway.calls != 0 {
		t.Fatal("result-set matches should not hit the catalog")
	}
}

func TestResolveFuzzyYearBonus(t *testing.T) {
	res := newTestResolver(&fakeGateway{}, nil)
	state := session.New()
	state.ReplaceResultSet([]session.Entry{
		{Position: 1, Ref: catalog.ContentRef{Kind: catalog.KindMovie, ID: 1642}, DisplayName: "Crash", Year: "2004"},
		{Position: 2, Ref: catalog.ContentRef{Kind: catalog.KindMovie, ID: 571}, DisplayName: "Crash", Year: "1996"},
	})

	// Both titles match exactly; the year breaks the tie.
	ref, err := res.Resolve(context.Background(), state, Reference{Kind: catalog.KindMovie, Title: "crash 1996"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 571 {
		t.Fatalf("year bonus resolved to %+v, want the 1996 film", ref)
	}
}

func TestResolveFreshSearchScoring(t *testing.T) {
	gateway := &fakeGateway{movieResults: []catalog.ContentSummary{
		{ID: 414906, Title: "The Batman", ReleaseDate: "2022-03-01", Popularity: 90},
		{ID: 268, Title: "Batman", ReleaseDate: "1989-06-23", Popularity: 40},
		{ID: 364, Title: "Batman Returns", ReleaseDate: "1992-06-19", Popularity: 35},
	}}
	res := newTestResolver(gateway, nil)

	ref, err := res.Resolve(context.Background(), session.New(), Reference{Kind: catalog.KindMovie, Title: "batman 1989"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 268 {
		t.Fatalf("resolved to %+v, want the 1989 Batman", ref)
	}
	if gateway.lastQuery != "batman" {
		t.Fatalf("search query = %q, want year stripped", gateway.lastQuery)
	}
	if gateway.lastYear != 0 {
		t.Fatalf("year filter = %d, scoring should handle the year", gateway.lastYear)
	}
}

func TestResolveStripsStopwordsBeforeSearch(t *testing.T) {
	gateway := &fakeGateway{movieResults: []catalog.ContentSummary{
		{ID: 268, Title: "Batman", Popularity: 40},
	}}
	res := newTestResolver(gateway, nil)

	ref, err := res.Resolve(context.Background(), session.New(), Reference{Kind: catalog.KindMovie, Title: "the one with batman"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 268 {
		t.Fatalf("resolved to %+v", ref)
	}
	if gateway.lastQuery != "batman" {
		t.Fatalf("search query = %q, want stopwords stripped", gateway.lastQuery)
	}
}

func TestResolveAppliesOverrideYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.json")
	if err := os.WriteFile(path, []byte(`{"pretty woman": 1990}`), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}

	gateway := &fakeGateway{movieResults: []catalog.ContentSummary{
		{ID: 336002, Title: "Pretty Woman", ReleaseDate: "2015-02-14", Popularity: 80},
		{ID: 114, Title: "Pretty Woman", ReleaseDate: "1990-03-23", Popularity: 30},
	}}
	res := newTestResolver(gateway, NewOverrides(path, logging.NewNop()))

	ref, err := res.Resolve(context.Background(), session.New(), Reference{Kind: catalog.KindMovie, Title: "pretty woman"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 114 {
		t.Fatalf("resolved to %+v, want the 1990 film", ref)
	}

	// An explicit year in the text beats the override.
	ref, err = res.Resolve(context.Background(), session.New(), Reference{Kind: catalog.KindMovie, Title: "pretty woman 2015"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 336002 {
		t.Fatalf("resolved to %+v, want the 2015 film", ref)
	}
}

func TestResolveZeroScoreFallsBackToFirstResult(t *testing.T) {
	gateway := &fakeGateway{movieResults: []catalog.ContentSummary{
		{ID: 500, Title: "Completely Different"},
		{ID: 501, Title: "Also Unrelated"},
	}}
	res := newTestResolver(gateway, nil)

	ref, err := res.Resolve(context.Background(), session.New(), Reference{Kind: catalog.KindMovie, Title: "zzzz"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.ID != 500 {
		t.Fatalf("resolved to %+v, want first result", ref)
	}
}

func TestResolveNoResultsIsAmbiguous(t *testing.T) {
	res := newTestResolver(&fakeGateway{}, nil)

	_, err := res.Resolve(context.Background(), session.New(), Reference{Kind: catalog.KindMovie, Title: "zzzz"})
	if !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
}

func TestResolveNeverCrossesKinds(t *testing.T) {
	gateway := &fakeGateway{}
	res := newTestResolver(gateway, nil)
	state := supermanState()

	// A person reference must not match the movie result set; with no
	// person search results it comes back ambiguous.
	_, err := res.Resolve(context.Background(), state, Reference{Kind: catalog.KindPerson, Title: "superman"})
	if !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
	if gateway.calls != 1 {
		t.Fatalf("expected a person search, got %d calls", gateway.calls)
	}
}

func TestResolvePersonFreshSearch(t *testing.T) {
	gateway := &fakeGateway{personResults: []catalog.PersonSummary{
		{ID: 500, Name: "Tom Hardy", Popularity: 30},
		{ID: 31, Name: "Tom Hanks", Popularity: 80},
	}}
	res := newTestResolver(gateway, nil)

	ref, err := res.Resolve(context.Background(), session.New(), Reference{Kind: catalog.KindPerson, Title: "tom hanks"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.Kind != catalog.KindPerson || ref.ID != 31 {
		t.Fatalf("resolved to %+v", ref)
	}
}
