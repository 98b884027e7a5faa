package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound reports that the API confirmed the requested entity does not
// exist, as opposed to a transport or server failure.
var ErrNotFound = errors.New("tmdb: not found")

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// get issues a GET against path with the supplied parameters and decodes the
// JSON response into out. api_key and language are always attached.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" && params.Get("language") == "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("tmdb %s (latency=%v): %w", path, latency, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}

// SearchMovie searches for movies by title, optionally pinned to a release year.
func (c *Client) SearchMovie(ctx context.Context, query string, year int, page int) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	if year > 0 {
		params.Set("primary_release_year", strconv.Itoa(year))
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var payload SearchResponse
	if err := c.get(ctx, "/search/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchTV searches for TV shows by name, optionally pinned to a first-air year.
func (c *Client) SearchTV(ctx context.Context, query string, year int, page int) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	if year > 0 {
		params.Set("first_air_date_year", strconv.Itoa(year))
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var payload SearchResponse
	if err := c.get(ctx, "/search/tv", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchMulti searches movies, TV shows, and people in one call.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var payload SearchResponse
	if err := c.get(ctx, "/search/multi", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchPerson searches for people by name.
func (c *Client) SearchPerson(ctx context.Context, query string, page int) (*PersonSearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var payload PersonSearchResponse
	if err := c.get(ctx, "/search/person", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieDetails fetches a movie with credits, videos, similar titles, and
// regional release dates appended.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "credits,videos,similar,release_dates")
	var payload MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TVDetails fetches a TV show with credits, videos, similar shows, and
// regional content ratings appended.
func (c *Client) TVDetails(ctx context.Context, showID int64) (*TVDetails, error) {
	if showID <= 0 {
		return nil, errors.New("show id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "credits,videos,similar,content_ratings")
	var payload TVDetails
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", showID), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// PersonDetails fetches a person with their movie credits appended.
func (c *Client) PersonDetails(ctx context.Context, personID int64) (*PersonDetails, error) {
	if personID <= 0 {
		return nil, errors.New("person id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "movie_credits")
	var payload PersonDetails
	if err := c.get(ctx, fmt.Sprintf("/person/%d", personID), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Trending fetches trending titles. mediaType is "movie" or "tv"; window is
// "day" or "week".
func (c *Client) Trending(ctx context.Context, mediaType, window string) (*SearchResponse, error) {
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" {
		mediaType = "movie"
	}
	window = strings.TrimSpace(window)
	if window == "" {
		window = "week"
	}
	var payload SearchResponse
	if err := c.get(ctx, fmt.Sprintf("/trending/%s/%s", mediaType, window), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// NowPlaying fetches movies currently in theaters.
func (c *Client) NowPlaying(ctx context.Context, region string, page int) (*SearchResponse, error) {
	params := url.Values{}
	if region = strings.TrimSpace(region); region != "" {
		params.Set("region", region)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var payload SearchResponse
	if err := c.get(ctx, "/movie/now_playing", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DiscoverFilters narrows a discovery query.
type DiscoverFilters struct {
	GenreIDs []int64
	Year     int
	SortBy   string
	Page     int
}

// DiscoverMovies runs a filtered discovery query sorted by popularity unless
// the filters say otherwise.
func (c *Client) DiscoverMovies(ctx context.Context, filters DiscoverFilters) (*SearchResponse, error) {
	params := url.Values{}
	if len(filters.GenreIDs) > 0 {
		ids := make([]string, 0, len(filters.GenreIDs))
		for _, id := range filters.GenreIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if filters.Year > 0 {
		params.Set("primary_release_year", strconv.Itoa(filters.Year))
	}
	sortBy := strings.TrimSpace(filters.SortBy)
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	params.Set("sort_by", sortBy)
	if filters.Page > 0 {
		params.Set("page", strconv.Itoa(filters.Page))
	}
	var payload SearchResponse
	if err := c.get(ctx, "/discover/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieGenres fetches the movie genre taxonomy.
func (c *Client) MovieGenres(ctx context.Context) (*GenreList, error) {
	var payload GenreList
	if err := c.get(ctx, "/genre/movie/list", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SeasonDetails fetches the full season metadata for a TV show, episodes included.
func (c *Client) SeasonDetails(ctx context.Context, showID int64, seasonNumber int) (*SeasonDetails, error) {
	if showID <= 0 {
		return nil, errors.New("show id must be positive")
	}
	if seasonNumber < 0 {
		return nil, errors.New("season number must not be negative")
	}
	var payload SeasonDetails
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", showID, seasonNumber), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// WatchProviders fetches regional streaming availability for a movie.
func (c *Client) WatchProviders(ctx context.Context, movieID int64) (*WatchProviders, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload WatchProviders
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/watch/providers", movieID), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
