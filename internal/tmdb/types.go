package tmdb

// Genre is a TMDB taxonomy entry.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreList models the /genre/{movie,tv}/list response.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// SearchResult is a single movie or TV entry from a paginated list response.
// Movies carry Title/ReleaseDate, TV entries Name/FirstAirDate.
type SearchResult struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	MediaType    string  `json:"media_type"`
	PosterPath   string  `json:"poster_path"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
}

// BestTitle returns whichever of Title or Name the entry carries.
func (r SearchResult) BestTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// BestDate returns the release date for movies or first air date for TV.
func (r SearchResult) BestDate() string {
	if r.ReleaseDate != "" {
		return r.ReleaseDate
	}
	return r.FirstAirDate
}

// SearchResponse models TMDB's paginated list responses.
type SearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// PersonResult is a single entry from /search/person.
type PersonResult struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	KnownForDepartment string         `json:"known_for_department"`
	ProfilePath        string         `json:"profile_path"`
	Popularity         float64        `json:"popularity"`
	KnownFor           []SearchResult `json:"known_for"`
}

// PersonSearchResponse models the /search/person response.
type PersonSearchResponse struct {
	Page         int            `json:"page"`
	Results      []PersonResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// CastMember is an acting credit inside a credits block.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is a production credit inside a credits block.
type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path"`
}

// Credits is the credits block appended to detail responses.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is a single entry of an appended videos block.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
	Site string `json:"site"`
}

// VideoList is the videos block appended to detail responses.
type VideoList struct {
	Results []Video `json:"results"`
}

// Company is a production company reference.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReleaseDates models the appended release_dates block (movie certifications).
type ReleaseDates struct {
	Results []CountryReleases `json:"results"`
}

// CountryReleases groups certifications by region.
type CountryReleases struct {
	CountryCode  string        `json:"iso_3166_1"`
	ReleaseDates []ReleaseInfo `json:"release_dates"`
}

// ReleaseInfo carries one regional certification record.
type ReleaseInfo struct {
	Certification string `json:"certification"`
}

// ContentRatings models the appended content_ratings block (TV ratings).
type ContentRatings struct {
	Results []ContentRating `json:"results"`
}

// ContentRating carries one regional TV rating record.
type ContentRating struct {
	CountryCode string `json:"iso_3166_1"`
	Rating      string `json:"rating"`
}

// MovieDetails models /movie/{id} with credits, videos, similar, and
// release_dates appended.
type MovieDetails struct {
	ID                  int64          `json:"id"`
	Title               string         `json:"title"`
	Tagline             string         `json:"tagline"`
	Overview            string         `json:"overview"`
	ReleaseDate         string         `json:"release_date"`
	Runtime             int            `json:"runtime"`
	Genres              []Genre        `json:"genres"`
	VoteAverage         float64        `json:"vote_average"`
	VoteCount           int64          `json:"vote_count"`
	Budget              int64          `json:"budget"`
	Revenue             int64          `json:"revenue"`
	Popularity          float64        `json:"popularity"`
	PosterPath          string         `json:"poster_path"`
	BackdropPath        string         `json:"backdrop_path"`
	Homepage            string         `json:"homepage"`
	IMDBID              string         `json:"imdb_id"`
	Status              string         `json:"status"`
	ProductionCompanies []Company      `json:"production_companies"`
	ReleaseDates        ReleaseDates   `json:"release_dates"`
	Credits             Credits        `json:"credits"`
	Videos              VideoList      `json:"videos"`
	Similar             SearchResponse `json:"similar"`
}

// TVDetails models /tv/{id} with credits, videos, similar, and
// content_ratings appended.
type TVDetails struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	Tagline          string         `json:"tagline"`
	Overview         string         `json:"overview"`
	FirstAirDate     string         `json:"first_air_date"`
	LastAirDate      string         `json:"last_air_date"`
	NumberOfSeasons  int            `json:"number_of_seasons"`
	NumberOfEpisodes int            `json:"number_of_episodes"`
	EpisodeRunTime   []int          `json:"episode_run_time"`
	Genres           []Genre        `json:"genres"`
	VoteAverage      float64        `json:"vote_average"`
	VoteCount        int64          `json:"vote_count"`
	Popularity       float64        `json:"popularity"`
	PosterPath       string         `json:"poster_path"`
	BackdropPath     string         `json:"backdrop_path"`
	Homepage         string         `json:"homepage"`
	Status           string         `json:"status"`
	ContentRatings   ContentRatings `json:"content_ratings"`
	Credits          Credits        `json:"credits"`
	Videos           VideoList      `json:"videos"`
	Similar          SearchResponse `json:"similar"`
}

// FilmCredit is a filmography entry inside an appended movie_credits block.
type FilmCredit struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Character   string  `json:"character"`
	Job         string  `json:"job"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

// MovieCredits groups a person's film credits.
type MovieCredits struct {
	Cast []FilmCredit `json:"cast"`
	Crew []FilmCredit `json:"crew"`
}

// PersonDetails models /person/{id} with movie_credits appended.
type PersonDetails struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Biography          string       `json:"biography"`
	Birthday           string       `json:"birthday"`
	Deathday           string       `json:"deathday"`
	PlaceOfBirth       string       `json:"place_of_birth"`
	ProfilePath        string       `json:"profile_path"`
	KnownForDepartment string       `json:"known_for_department"`
	Popularity         float64      `json:"popularity"`
	MovieCredits       MovieCredits `json:"movie_credits"`
}

// Episode describes a single TMDB episode entry.
type Episode struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	Runtime       int    `json:"runtime"`
	AirDate       string `json:"air_date"`
}

// SeasonDetails captures the full TMDB season payload (episodes included).
type SeasonDetails struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      string    `json:"air_date"`
	PosterPath   string    `json:"poster_path"`
	SeasonNumber int       `json:"season_number"`
	Episodes     []Episode `json:"episodes"`
}

// Provider is one streaming/rental provider record.
type Provider struct {
	ProviderID      int64  `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

// CountryProviders groups providers by availability type for one region.
type CountryProviders struct {
	Link     string     `json:"link"`
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
	Free     []Provider `json:"free"`
}

// WatchProviders models /movie/{id}/watch/providers.
type WatchProviders struct {
	ID      int64                       `json:"id"`
	Results map[string]CountryProviders `json:"results"`
}
