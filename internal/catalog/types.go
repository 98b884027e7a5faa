package catalog

// Kind tags which identifier space a content ID lives in.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindTV     Kind = "tv"
	KindPerson Kind = "person"
)

// ContentRef is a tagged stable identifier. It is the only thing passed
// across component boundaries to denote "which entity", and is immutable
// once created.
type ContentRef struct {
	Kind Kind  `json:"kind"`
	ID   int64 `json:"id"`
}

// IsZero reports whether the ref denotes nothing.
func (r ContentRef) IsZero() bool {
	return r.ID == 0
}

// ContentSummary is one normalized entry of a browsable list. MediaType is
// populated only for mixed lists; kind-specific searches leave it empty.
type ContentSummary struct {
	ID          int64   `json:"id"`
	MediaType   string  `json:"media_type,omitempty"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterURL   string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	Popularity  float64 `json:"popularity"`
}

// Year returns the four-digit release year, or "" when unknown.
func (c ContentSummary) Year() string {
	if len(c.ReleaseDate) >= 4 {
		return c.ReleaseDate[:4]
	}
	return ""
}

// ContentList is a normalized browsable list payload.
type ContentList struct {
	Results      []ContentSummary `json:"results"`
	TotalResults int              `json:"total_results"`
}

// CastEntry is a normalized acting credit.
type CastEntry struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Character  string `json:"character"`
	ProfileURL string `json:"profile_path"`
	Order      int    `json:"order"`
}

// CrewEntry is a normalized production credit.
type CrewEntry struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
	ProfileURL string `json:"profile_path"`
}

// VideoEntry is a normalized video clip reference.
type VideoEntry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
	Site string `json:"site"`
}

// Movie is the normalized movie detail payload. Date fields default to ""
// and numeric fields to 0; callers may assume every key is present.
type Movie struct {
	ID                  int64            `json:"id"`
	Title               string           `json:"title"`
	Tagline             string           `json:"tagline"`
	Overview            string           `json:"overview"`
	ReleaseDate         string           `json:"release_date"`
	Runtime             int              `json:"runtime"`
	Genres              []string         `json:"genres"`
	VoteAverage         float64          `json:"vote_average"`
	VoteCount           int64            `json:"vote_count"`
	Budget              int64            `json:"budget"`
	Revenue             int64            `json:"revenue"`
	Popularity          float64          `json:"popularity"`
	PosterURL           string           `json:"poster_path"`
	BackdropURL         string           `json:"backdrop_path"`
	Homepage            string           `json:"homepage"`
	IMDBID              string           `json:"imdb_id"`
	Status              string           `json:"status"`
	ContentRating       string           `json:"content_rating"`
	ProductionCompanies []string         `json:"production_companies"`
	Cast                []CastEntry      `json:"cast"`
	Crew                []CrewEntry      `json:"crew"`
	Videos              []VideoEntry     `json:"videos"`
	Similar             []ContentSummary `json:"similar"`
}

// Year returns the four-digit release year, or "" when unknown.
func (m Movie) Year() string {
	if len(m.ReleaseDate) >= 4 {
		return m.ReleaseDate[:4]
	}
	return ""
}

// TVShow is the normalized TV show detail payload.
type TVShow struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Tagline        string           `json:"tagline"`
	Overview       string           `json:"overview"`
	FirstAirDate   string           `json:"first_air_date"`
	LastAirDate    string           `json:"last_air_date"`
	SeasonCount    int              `json:"number_of_seasons"`
	EpisodeCount   int              `json:"number_of_episodes"`
	EpisodeRuntime int              `json:"episode_run_time"`
	Genres         []string         `json:"genres"`
	VoteAverage    float64          `json:"vote_average"`
	VoteCount      int64            `json:"vote_count"`
	Popularity     float64          `json:"popularity"`
	PosterURL      string           `json:"poster_path"`
	BackdropURL    string           `json:"backdrop_path"`
	Homepage       string           `json:"homepage"`
	Status         string           `json:"status"`
	ContentRating  string           `json:"content_rating"`
	Cast           []CastEntry      `json:"cast"`
	Crew           []CrewEntry      `json:"crew"`
	Videos         []VideoEntry     `json:"videos"`
	Similar        []ContentSummary `json:"similar"`
}

// Year returns the four-digit first-air year, or "" when unknown.
func (s TVShow) Year() string {
	if len(s.FirstAirDate) >= 4 {
		return s.FirstAirDate[:4]
	}
	return ""
}

// KnownForEntry names a work a person is known for.
type KnownForEntry struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	MediaType string `json:"media_type"`
}

// PersonSummary is one normalized entry of a person search result.
type PersonSummary struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"known_for_department"`
	ProfileURL string          `json:"profile_path"`
	Popularity float64         `json:"popularity"`
	KnownFor   []KnownForEntry `json:"known_for"`
}

// PersonList is a normalized person search payload.
type PersonList struct {
	Results []PersonSummary `json:"results"`
}

// FilmographyEntry is one film in a person's normalized filmography.
type FilmographyEntry struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Character   string  `json:"character"`
	ReleaseDate string  `json:"release_date"`
	PosterURL   string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

// Person is the normalized person detail payload. The filmography is
// deduplicated (cast + crew credits merged) and sorted newest first.
type Person struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Biography    string             `json:"biography"`
	Birthday     string             `json:"birthday"`
	Deathday     string             `json:"deathday"`
	PlaceOfBirth string             `json:"place_of_birth"`
	ProfileURL   string             `json:"profile_path"`
	Department   string             `json:"known_for_department"`
	Popularity   float64            `json:"popularity"`
	Filmography  []FilmographyEntry `json:"filmography"`
	MovieCount   int                `json:"total_movie_count"`
}

// GenreInfo is one normalized taxonomy entry.
type GenreInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Genres is the normalized taxonomy payload.
type Genres struct {
	Genres []GenreInfo `json:"genres"`
}

// EpisodeInfo is one normalized episode of a season payload.
type EpisodeInfo struct {
	Number   int    `json:"episode_number"`
	Name     string `json:"name"`
	Overview string `json:"overview"`
	AirDate  string `json:"air_date"`
	Runtime  int    `json:"runtime"`
}

// Season is the normalized season detail payload.
type Season struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Number   int           `json:"season_number"`
	Overview string        `json:"overview"`
	AirDate  string        `json:"air_date"`
	PosterURL string       `json:"poster_path"`
	Episodes []EpisodeInfo `json:"episodes"`
}

// ProviderInfo is one normalized streaming/rental provider.
type ProviderInfo struct {
	ID       int64  `json:"provider_id"`
	Name     string `json:"provider_name"`
	LogoURL  string `json:"logo_path"`
	Priority int    `json:"display_priority"`
	Type     string `json:"type"`
}

// Providers is the normalized regional availability payload, merged across
// availability types, deduplicated by provider, and sorted by priority.
type Providers struct {
	Region    string         `json:"country"`
	Link      string         `json:"link"`
	Providers []ProviderInfo `json:"providers"`
}

// NotRated is the sentinel content rating used when no regional
// certification exists.
const NotRated = "NR"
