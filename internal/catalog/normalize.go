package catalog

import (
	"sort"

	"cinebot/internal/tmdb"
)

// Image size tokens inserted between the image base URL and the path.
const (
	posterSize   = "w500"
	backdropSize = "w1280"
	profileSize  = "w185"
	logoSize     = "original"
)

// imageURL resolves a relative image path to an absolute URL. Empty paths
// stay empty so presentation layers can substitute a placeholder.
func (g *Gateway) imageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return g.imageBase + size + path
}

func (g *Gateway) normalizeList(resp *tmdb.SearchResponse) ContentList {
	out := ContentList{TotalResults: resp.TotalResults}
	for _, res := range resp.Results {
		if len(out.Results) >= g.bounds.MaxResults {
			break
		}
		out.Results = append(out.Results, ContentSummary{
			ID:          res.ID,
			MediaType:   res.MediaType,
			Title:       res.BestTitle(),
			Overview:    res.Overview,
			ReleaseDate: res.BestDate(),
			PosterURL:   g.imageURL(res.PosterPath, posterSize),
			VoteAverage: res.VoteAverage,
			Popularity:  res.Popularity,
		})
	}
	return out
}

func (g *Gateway) normalizeCredits(credits tmdb.Credits) ([]CastEntry, []CrewEntry) {
	cast := make([]CastEntry, 0, g.bounds.MaxCast)
	for _, member := range credits.Cast {
		if len(cast) >= g.bounds.MaxCast {
			break
		}
		cast = append(cast, CastEntry{
			ID:         member.ID,
			Name:       member.Name,
			Character:  member.Character,
			ProfileURL: g.imageURL(member.ProfilePath, profileSize),
			Order:      member.Order,
		})
	}

	crew := make([]CrewEntry, 0, g.bounds.MaxCrew)
	for _, member := range credits.Crew {
		if len(crew) >= g.bounds.MaxCrew {
			break
		}
		switch member.Job {
		case "Director", "Producer", "Screenplay", "Writer":
			crew = append(crew, CrewEntry{
				ID:         member.ID,
				Name:       member.Name,
				Job:        member.Job,
				Department: member.Department,
				ProfileURL: g.imageURL(member.ProfilePath, profileSize),
			})
		}
	}
	return cast, crew
}

func (g *Gateway) normalizeVideos(videos tmdb.VideoList) []VideoEntry {
	out := make([]VideoEntry, 0, g.bounds.MaxVideos)
	for _, video := range videos.Results {
		if len(out) >= g.bounds.MaxVideos {
			break
		}
		if video.Site != "YouTube" {
			continue
		}
		out = append(out, VideoEntry{Key: video.Key, Name: video.Name, Type: video.Type, Site: video.Site})
	}
	return out
}

func (g *Gateway) normalizeSimilar(similar tmdb.SearchResponse) []ContentSummary {
	out := make([]ContentSummary, 0, g.bounds.MaxSimilar)
	for _, res := range similar.Results {
		if len(out) >= g.bounds.MaxSimilar {
			break
		}
		out = append(out, ContentSummary{
			ID:          res.ID,
			Title:       res.BestTitle(),
			ReleaseDate: res.BestDate(),
			PosterURL:   g.imageURL(res.PosterPath, posterSize),
			VoteAverage: res.VoteAverage,
		})
	}
	return out
}

// movieCertification picks the first certification recorded for the target
// region, falling back to the not-rated sentinel.
func movieCertification(dates tmdb.ReleaseDates, region string) string {
	for _, country := range dates.Results {
		if country.CountryCode != region {
			continue
		}
		for _, release := range country.ReleaseDates {
			if release.Certification != "" {
				return release.Certification
			}
		}
		break
	}
	return NotRated
}

func tvCertification(ratings tmdb.ContentRatings, region string) string {
	for _, rating := range ratings.Results {
		if rating.CountryCode == region && rating.Rating != "" {
			return rating.Rating
		}
	}
	return NotRated
}

func genreNames(genres []tmdb.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names
}

func (g *Gateway) normalizeMovie(details *tmdb.MovieDetails) Movie {
	cast, crew := g.normalizeCredits(details.Credits)
	companies := make([]string, 0, g.bounds.MaxCompanies)
	for _, company := range details.ProductionCompanies {
		if len(companies) >= g.bounds.MaxCompanies {
			break
		}
		companies = append(companies, company.Name)
	}
	return Movie{
		ID:                  details.ID,
		Title:               details.Title,
		Tagline:             details.Tagline,
		Overview:            details.Overview,
		ReleaseDate:         details.ReleaseDate,
		Runtime:             details.Runtime,
		Genres:              genreNames(details.Genres),
		VoteAverage:         details.VoteAverage,
		VoteCount:           details.VoteCount,
		Budget:              details.Budget,
		Revenue:             details.Revenue,
		Popularity:          details.Popularity,
		PosterURL:           g.imageURL(details.PosterPath, posterSize),
		BackdropURL:         g.imageURL(details.BackdropPath, backdropSize),
		Homepage:            details.Homepage,
		IMDBID:              details.IMDBID,
		Status:              details.Status,
		ContentRating:       movieCertification(details.ReleaseDates, g.region),
		ProductionCompanies: companies,
		Cast:                cast,
		Crew:                crew,
		Videos:              g.normalizeVideos(details.Videos),
		Similar:             g.normalizeSimilar(details.Similar),
	}
}

func (g *Gateway) normalizeTVShow(details *tmdb.TVDetails) TVShow {
	cast, crew := g.normalizeCredits(details.Credits)
	runtime := 0
	if len(details.EpisodeRunTime) > 0 {
		runtime = details.EpisodeRunTime[0]
	}
	return TVShow{
		ID:             details.ID,
		Name:           details.Name,
		Tagline:        details.Tagline,
		Overview:       details.Overview,
		FirstAirDate:   details.FirstAirDate,
		LastAirDate:    details.LastAirDate,
		SeasonCount:    details.NumberOfSeasons,
		EpisodeCount:   details.NumberOfEpisodes,
		EpisodeRuntime: runtime,
		Genres:         genreNames(details.Genres),
		VoteAverage:    details.VoteAverage,
		VoteCount:      details.VoteCount,
		Popularity:     details.Popularity,
		PosterURL:      g.imageURL(details.PosterPath, posterSize),
		BackdropURL:    g.imageURL(details.BackdropPath, backdropSize),
		Homepage:       details.Homepage,
		Status:         details.Status,
		ContentRating:  tvCertification(details.ContentRatings, g.region),
		Cast:           cast,
		Crew:           crew,
		Videos:         g.normalizeVideos(details.Videos),
		Similar:        g.normalizeSimilar(details.Similar),
	}
}

func (g *Gateway) normalizePersonList(resp *tmdb.PersonSearchResponse) PersonList {
	out := PersonList{}
	for _, person := range resp.Results {
		if len(out.Results) >= g.bounds.MaxPersonResults {
			break
		}
		knownFor := make([]KnownForEntry, 0, g.bounds.MaxKnownFor)
		for _, work := range person.KnownFor {
			if len(knownFor) >= g.bounds.MaxKnownFor {
				break
			}
			knownFor = append(knownFor, KnownForEntry{
				ID:        work.ID,
				Title:     work.BestTitle(),
				MediaType: work.MediaType,
			})
		}
		out.Results = append(out.Results, PersonSummary{
			ID:         person.ID,
			Name:       person.Name,
			Department: person.KnownForDepartment,
			ProfileURL: g.imageURL(person.ProfilePath, profileSize),
			Popularity: person.Popularity,
			KnownFor:   knownFor,
		})
	}
	return out
}

func (g *Gateway) normalizePerson(details *tmdb.PersonDetails) Person {
	merged := make([]tmdb.FilmCredit, 0, len(details.MovieCredits.Cast)+len(details.MovieCredits.Crew))
	merged = append(merged, details.MovieCredits.Cast...)
	merged = append(merged, details.MovieCredits.Crew...)

	seen := make(map[int64]struct{}, len(merged))
	unique := merged[:0]
	for _, credit := range merged {
		if _, ok := seen[credit.ID]; ok {
			continue
		}
		seen[credit.ID] = struct{}{}
		unique = append(unique, credit)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].ReleaseDate > unique[j].ReleaseDate
	})

	filmography := make([]FilmographyEntry, 0, len(unique))
	for _, credit := range unique {
		role := credit.Character
		if role == "" {
			role = credit.Job
		}
		filmography = append(filmography, FilmographyEntry{
			ID:          credit.ID,
			Title:       credit.Title,
			Character:   role,
			ReleaseDate: credit.ReleaseDate,
			PosterURL:   g.imageURL(credit.PosterPath, posterSize),
			VoteAverage: credit.VoteAverage,
		})
	}

	return Person{
		ID:           details.ID,
		Name:         details.Name,
		Biography:    details.Biography,
		Birthday:     details.Birthday,
		Deathday:     details.Deathday,
		PlaceOfBirth: details.PlaceOfBirth,
		ProfileURL:   g.imageURL(details.ProfilePath, profileSize),
		Department:   details.KnownForDepartment,
		Popularity:   details.Popularity,
		Filmography:  filmography,
		MovieCount:   len(filmography),
	}
}

func (g *Gateway) normalizeSeason(details *tmdb.SeasonDetails) Season {
	episodes := make([]EpisodeInfo, 0, len(details.Episodes))
	for _, episode := range details.Episodes {
		episodes = append(episodes, EpisodeInfo{
			Number:   episode.EpisodeNumber,
			Name:     episode.Name,
			Overview: episode.Overview,
			AirDate:  episode.AirDate,
			Runtime:  episode.Runtime,
		})
	}
	return Season{
		ID:        details.ID,
		Name:      details.Name,
		Number:    details.SeasonNumber,
		Overview:  details.Overview,
		AirDate:   details.AirDate,
		PosterURL: g.imageURL(details.PosterPath, posterSize),
		Episodes:  episodes,
	}
}

func (g *Gateway) normalizeProviders(resp *tmdb.WatchProviders) Providers {
	country := resp.Results[g.region]
	out := Providers{Region: g.region, Link: country.Link, Providers: []ProviderInfo{}}

	seen := make(map[int64]struct{})
	appendProviders := func(providers []tmdb.Provider, kind string) {
		for _, provider := range providers {
			if _, ok := seen[provider.ProviderID]; ok {
				continue
			}
			seen[provider.ProviderID] = struct{}{}
			out.Providers = append(out.Providers, ProviderInfo{
				ID:       provider.ProviderID,
				Name:     provider.ProviderName,
				LogoURL:  g.imageURL(provider.LogoPath, logoSize),
				Priority: provider.DisplayPriority,
				Type:     kind,
			})
		}
	}
	appendProviders(country.Flatrate, "flatrate")
	appendProviders(country.Rent, "rent")
	appendProviders(country.Buy, "buy")
	appendProviders(country.Free, "free")

	sort.SliceStable(out.Providers, func(i, j int) bool {
		return out.Providers[i].Priority < out.Providers[j].Priority
	})
	return out
}
