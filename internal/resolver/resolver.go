package resolver

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"cinebot/internal/catalog"
	"cinebot/internal/logging"
	"cinebot/internal/session"
)

// ErrAmbiguous reports that no identifier could be determined and no safe
// fallback exists. Callers ask the user for clarification; they never
// fabricate an ID.
var ErrAmbiguous = errors.New("ambiguous reference")

// Reference is a user-supplied pointer at content. Exactly one of ID,
// Position, or Title is expected; when several are set the strongest wins.
type Reference struct {
	Kind     catalog.Kind
	ID       int64
	Position int
	Title    string
}

// Gateway is the subset of catalog functionality resolution needs.
type Gateway interface {
	SearchMovies(ctx context.Context, query string, year int) (catalog.ContentList, error)
	SearchTV(ctx context.Context, query string, year int) (catalog.ContentList, error)
	SearchPeople(ctx context.Context, query string) (catalog.PersonList, error)
}

// Resolver turns References into stable ContentRefs.
type Resolver struct {
	gateway   Gateway
	overrides *Overrides
	stopwords []string
	logger    *slog.Logger
}

// New creates a Resolver. overrides may be nil.
func New(gateway Gateway, overrides *Overrides, stopwords []string, logger *slog.Logger) *Resolver {
	return &Resolver{
		gateway:   gateway,
		overrides: overrides,
		stopwords: stopwords,
		logger:    logging.NewComponentLogger(logger, "resolver"),
	}
}

// Resolve determines the content identifier a reference denotes, consulting
// session state first and falling back to a scored catalog search.
// Precedence: explicit ID, explicit position, fuzzy match against the live
// result set, fresh catalog query.
func (r *Resolver) Resolve(ctx context.Context, state *session.State, ref Reference) (catalog.ContentRef, error) {
	if ref.Kind == "" {
		return catalog.ContentRef{}, errors.New("reference kind required")
	}

	if ref.ID > 0 {
		return catalog.ContentRef{Kind: ref.Kind, ID: ref.ID}, nil
	}

	if ref.Position > 0 {
		entry, ok := r.lookupPosition(state, ref)
		if !ok {
			return catalog.ContentRef{}, ErrAmbiguous
		}
		return entry.Ref, nil
	}

	title := strings.TrimSpace(ref.Title)
	if title == "" {
		return catalog.ContentRef{}, ErrAmbiguous
	}

	if match, ok := r.matchResultSet(state, ref.Kind, title); ok {
		return match, nil
	}

	return r.freshSearch(ctx, ref.Kind, title)
}

func (r *Resolver) lookupPosition(state *session.State, ref Reference) (session.Entry, bool) {
	if ref.Kind == catalog.KindPerson {
		return state.ResolvePersonPosition(ref.Position)
	}
	return state.ResolvePosition(ref.Position)
}

// matchResultSet scores the live result set against the free text. Exact
// normalized equality scores 100, substring containment either way 50, and
// a matching extracted year another 50. Ties keep the first-seen entry.
func (r *Resolver) matchResultSet(state *session.State, kind catalog.Kind, title string) (catalog.ContentRef, bool) {
	var entries []session.Entry
	if kind == catalog.KindPerson {
		entries = state.PersonResultSet()
	} else {
		entries = state.ResultSet()
	}
	if len(entries) == 0 {
		return catalog.ContentRef{}, false
	}

	year, remainder := ExtractYear(title)
	query := normalizeTitle(remainder)
	if query == "" {
		return catalog.ContentRef{}, false
	}

	var best session.Entry
	bestScore := 0
	for _, entry := range entries {
		if entry.Ref.Kind != kind {
			continue
		}
		candidate := normalizeTitle(entry.DisplayName)
		score := 0
		if candidate == query {
			score += 100
		} else if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
			score += 50
		}
		if year > 0 && entry.Year == strconv.Itoa(year) {
			score += 50
		}
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}

	if bestScore == 0 {
		return catalog.ContentRef{}, false
	}
	r.logger.Debug("matched reference against result set",
		logging.String("query", query),
		logging.String("matched", best.DisplayName),
		logging.Int("score", bestScore))
	return best.Ref, true
}

// freshSearch issues a catalog query for the cleaned title and scores every
// candidate: exact title 20, substring 10, year match 50, plus a small
// popularity tiebreaker. With no candidate above zero the first result wins
// as a best effort; zero results is an ambiguous reference.
func (r *Resolver) freshSearch(ctx context.Context, kind catalog.Kind, title string) (catalog.ContentRef, error) {
	year, remainder := ExtractYear(title)
	query := stripStopwords(normalizeTitle(remainder), r.stopwords)
	if query == "" {
		return catalog.ContentRef{}, ErrAmbiguous
	}

	if year == 0 {
		if preferred, ok := r.overrides.PreferredYear(query); ok {
			year = preferred
			r.logger.Debug("applying title year override",
				logging.String("query", query),
				logging.Int("year", year))
		}
	}

	if kind == catalog.KindPerson {
		return r.freshPersonSearch(ctx, query)
	}

	var (
		list catalog.ContentList
		err  error
	)
	if kind == catalog.KindTV {
		list, err = r.gateway.SearchTV(ctx, query, 0)
	} else {
		list, err = r.gateway.SearchMovies(ctx, query, 0)
	}
	if err != nil {
		return catalog.ContentRef{}, err
	}
	if len(list.Results) == 0 {
		return catalog.ContentRef{}, ErrAmbiguous
	}

	var best catalog.ContentSummary
	bestScore := 0.0
	for _, candidate := range list.Results {
		normalized := normalizeTitle(candidate.Title)
		score := 0.0
		if normalized == query {
			score += 20
		} else if strings.Contains(normalized, query) {
			score += 10
		}
		if year > 0 && candidate.Year() == strconv.Itoa(year) {
			score += 50
		}
		if score > 0 {
			score += min(candidate.Popularity/100, 2)
		}
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if bestScore == 0 {
		best = list.Results[0]
		r.logger.Debug("no scored match, falling back to first result",
			logging.String("query", query),
			logging.String("title", best.Title))
	} else {
		r.logger.Debug("selected best search match",
			logging.String("query", query),
			logging.String("title", best.Title),
			logging.Float64("score", bestScore))
	}
	return catalog.ContentRef{Kind: kind, ID: best.ID}, nil
}

func (r *Resolver) freshPersonSearch(ctx context.Context, query string) (catalog.ContentRef, error) {
	list, err := r.gateway.SearchPeople(ctx, query)
	if err != nil {
		return catalog.ContentRef{}, err
	}
	if len(list.Results) == 0 {
		return catalog.ContentRef{}, ErrAmbiguous
	}

	var best catalog.PersonSummary
	bestScore := 0.0
	for _, candidate := range list.Results {
		normalized := normalizeTitle(candidate.Name)
		score := 0.0
		if normalized == query {
			score += 20
		} else if strings.Contains(normalized, query) {
			score += 10
		}
		if score > 0 {
			score += min(candidate.Popularity/100, 2)
		}
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if bestScore == 0 {
		best = list.Results[0]
	}
	return catalog.ContentRef{Kind: catalog.KindPerson, ID: best.ID}, nil
}
