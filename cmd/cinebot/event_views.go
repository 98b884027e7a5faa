package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cinebot/internal/agent"
	"cinebot/internal/catalog"
)

// renderEvent turns a display event into terminal output. List-shaped
// events become tables; detail payloads become setting/value tables;
// anything unrecognized falls back to indented JSON.
func renderEvent(event *agent.Event) string {
	switch event.Type {
	case agent.EventMovieSearchResults, agent.EventTVSearchResults,
		agent.EventMultiSearchResults, agent.EventTrendingMovies,
		agent.EventNowPlayingMovies, agent.EventGenreMovies:
		if results, ok := contentResults(event.Data); ok {
			return renderContentTable(results)
		}
	case agent.EventSimilarMovies:
		if results, ok := contentResults(event.Data); ok {
			return renderContentTable(results)
		}
	case agent.EventMovieDetails:
		if movie, ok := event.Data.(catalog.Movie); ok {
			return renderMovie(movie)
		}
	case agent.EventTVDetails:
		if show, ok := event.Data.(catalog.TVShow); ok {
			return renderTVShow(show)
		}
	case agent.EventPersonDetails:
		if person, ok := event.Data.(catalog.Person); ok {
			return renderPerson(person)
		}
	case agent.EventCastCrewDisplay:
		if data, ok := event.Data.(map[string]any); ok {
			return renderCastCrew(data)
		}
	case agent.EventGenreList:
		if genres, ok := event.Data.(catalog.Genres); ok {
			rows := make([][]string, 0, len(genres.Genres))
			for _, genre := range genres.Genres {
				rows = append(rows, []string{genre.Name})
			}
			return renderTable([]string{"Genre"}, rows, nil)
		}
	case agent.EventSeasonDetails:
		if season, ok := event.Data.(catalog.Season); ok {
			return renderSeason(season)
		}
	case agent.EventClearDisplay:
		return ""
	}
	return renderJSON(event.Data)
}

func contentResults(data any) ([]catalog.ContentSummary, bool) {
	payload, ok := data.(map[string]any)
	if !ok {
		return nil, false
	}
	results, ok := payload["results"].([]catalog.ContentSummary)
	return results, ok
}

func renderContentTable(results []catalog.ContentSummary) string {
	rows := make([][]string, 0, len(results))
	for i, res := range results {
		rating := ""
		if res.VoteAverage > 0 {
			rating = strconv.FormatFloat(res.VoteAverage, 'f', 1, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			res.Title,
			res.Year(),
			rating,
		})
	}
	return renderTable(
		[]string{"#", "Title", "Year", "Rating"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	)
}

func renderMovie(movie catalog.Movie) string {
	rows := [][]string{
		{"Title", movie.Title},
		{"Released", movie.ReleaseDate},
		{"Runtime", formatRuntime(movie.Runtime)},
		{"Rated", movie.ContentRating},
		{"Genres", strings.Join(movie.Genres, ", ")},
		{"Score", fmt.Sprintf("%.1f (%d votes)", movie.VoteAverage, movie.VoteCount)},
		{"Overview", movie.Overview},
	}
	if movie.Tagline != "" {
		rows = append(rows, []string{"Tagline", movie.Tagline})
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}

func renderTVShow(show catalog.TVShow) string {
	rows := [][]string{
		{"Name", show.Name},
		{"First aired", show.FirstAirDate},
		{"Seasons", strconv.Itoa(show.SeasonCount)},
		{"Episodes", strconv.Itoa(show.EpisodeCount)},
		{"Rated", show.ContentRating},
		{"Genres", strings.Join(show.Genres, ", ")},
		{"Score", fmt.Sprintf("%.1f (%d votes)", show.VoteAverage, show.VoteCount)},
		{"Overview", show.Overview},
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}

func renderPerson(person catalog.Person) string {
	rows := make([][]string, 0, len(person.Filmography))
	for _, credit := range person.Filmography {
		year := ""
		if len(credit.ReleaseDate) >= 4 {
			year = credit.ReleaseDate[:4]
		}
		rows = append(rows, []string{credit.Title, year, credit.Character})
	}
	return renderTable([]string{"Title", "Year", "Role"}, rows, nil)
}

func renderCastCrew(data map[string]any) string {
	var sections []string
	if cast, ok := data["cast"].([]catalog.CastEntry); ok && len(cast) > 0 {
		rows := make([][]string, 0, len(cast))
		for _, member := range cast {
			rows = append(rows, []string{member.Name, member.Character})
		}
		sections = append(sections, renderTable([]string{"Actor", "Character"}, rows, nil))
	}
	if crew, ok := data["crew"].([]catalog.CrewEntry); ok && len(crew) > 0 {
		rows := make([][]string, 0, len(crew))
		for _, member := range crew {
			rows = append(rows, []string{member.Name, member.Job})
		}
		sections = append(sections, renderTable([]string{"Name", "Job"}, rows, nil))
	}
	return strings.Join(sections, "\n")
}

func renderSeason(season catalog.Season) string {
	rows := make([][]string, 0, len(season.Episodes))
	for _, episode := range season.Episodes {
		rows = append(rows, []string{
			strconv.Itoa(episode.Number),
			episode.Name,
			episode.AirDate,
		})
	}
	return renderTable([]string{"#", "Episode", "Air date"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}

func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func renderJSON(data any) string {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ""
	}
	return string(payload)
}
