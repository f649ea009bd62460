package omdb

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the calendar-date format OMDb uses, e.g. "14 Oct 2005".
const dateLayout = "02 Jan 2006"

// imdbTitleURL is the detail-page prefix for the derived canonical URL.
const imdbTitleURL = "https://www.imdb.com/title/"

// yearRange matches a series year range: "2005-2009", "2005-" and the
// en-dash variants. The first year is mandatory, the second optional.
var yearRange = regexp.MustCompile(`^(\d{4})[-–](\d{4})?$`)

// parseDate coerces a raw payload value to a calendar date. Unparsable
// input is a construction failure, never a zero date.
func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, newError(ErrInvalidField, "field %s: %q is not a valid date", field, raw)
	}
	return t, nil
}

// parseInt coerces a raw payload value to a base-10 integer.
func parseInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newError(ErrInvalidField, "field %s: %q is not an integer", field, raw)
	}
	return n, nil
}

// parseFloat coerces a raw payload value to a float.
func parseFloat(field, raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, newError(ErrInvalidField, "field %s: %q is not a number", field, raw)
	}
	return f, nil
}

// parseYear coerces a raw year value to an integer, accepting a leading
// year out of a range pattern ("2005-2009" yields 2005).
func parseYear(field, raw string) (int, error) {
	if m := yearRange.FindStringSubmatch(raw); m != nil {
		return strconv.Atoi(m[1])
	}
	return parseInt(field, raw)
}

// splitList splits a comma-separated payload value ("Action, Drama") into
// its parts.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// buildMovie maps a single-title payload into a Movie. Each field follows
// one declared rule: date/number coercion, list splitting, or verbatim
// copy. Any coercion failure aborts construction.
func buildMovie(p titlePayload) (*Movie, error) {
	released, err := parseDate("Released", p.Released)
	if err != nil {
		return nil, err
	}
	rating, err := parseFloat("imdbRating", p.ImdbRating)
	if err != nil {
		return nil, err
	}

	m := &Movie{
		ImdbID:    p.ImdbID,
		Title:     p.Title,
		YearText:  p.Year,
		Released:  released,
		Genres:    splitList(p.Genre),
		Languages: splitList(p.Language),
		Country:   p.Country,
		Runtime:   p.Runtime,
		Rated:     p.Rated,
		Plot:      p.Plot,
		Poster:    p.Poster,
		Director:  p.Director,
		Writer:    p.Writer,
		Actors:    p.Actors,
		Awards:    p.Awards,
		Metascore: p.Metascore,
		Rating:    rating,
		Votes:     p.ImdbVotes,
		Series:    MediaType(p.Type) == TypeSeries,
		URL:       imdbTitleURL + p.ImdbID + "/",
	}

	// A year range is retained verbatim in YearText for the show mapping
	// to split; no integer coercion happens at this stage.
	if rm := yearRange.FindStringSubmatch(p.Year); rm != nil {
		m.Year, _ = strconv.Atoi(rm[1])
	} else {
		year, err := parseInt("Year", p.Year)
		if err != nil {
			return nil, err
		}
		m.Year = year
	}

	return m, nil
}

// buildShow maps a series payload into a TvShow: the movie-shaped fields
// plus start/end year from the retained range and the season count.
func (c *Client) buildShow(p titlePayload) (*TvShow, error) {
	movie, err := buildMovie(p)
	if err != nil {
		return nil, err
	}

	show := &TvShow{
		Movie:  *movie,
		client: c,
	}

	if m := yearRange.FindStringSubmatch(p.Year); m != nil {
		show.StartYear, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			end, _ := strconv.Atoi(m[2])
			show.EndYear = &end
		}
	} else {
		// No range at all: only the start year is known.
		show.StartYear = movie.Year
	}

	total, err := parseInt("totalSeasons", p.TotalSeasons)
	if err != nil {
		return nil, err
	}
	show.TotalSeasons = total

	return show, nil
}

// buildEpisode maps a single-title episode payload. The season number
// comes from the caller's context, not the payload.
func buildEpisode(p titlePayload, season int) (*Episode, error) {
	released, err := parseDate("Released", p.Released)
	if err != nil {
		return nil, err
	}
	rating, err := parseFloat("imdbRating", p.ImdbRating)
	if err != nil {
		return nil, err
	}
	number, err := parseInt("Episode", p.Episode)
	if err != nil {
		return nil, err
	}
	year, err := parseYear("Year", p.Year)
	if err != nil {
		return nil, err
	}

	return &Episode{
		Season:   season,
		Episode:  number,
		Title:    p.Title,
		Released: released,
		ImdbID:   p.ImdbID,
		Rating:   rating,
		Year:     year,
	}, nil
}

// buildSeasonEpisodes maps a per-season listing payload into its episodes,
// tagging each with the season number the listing itself reports.
func buildSeasonEpisodes(p titlePayload) ([]Episode, error) {
	season, err := parseInt("Season", p.Season)
	if err != nil {
		return nil, err
	}

	episodes := make([]Episode, 0, len(p.Episodes))
	for _, raw := range p.Episodes {
		released, err := parseDate("Released", raw.Released)
		if err != nil {
			return nil, err
		}
		rating, err := parseFloat("imdbRating", raw.ImdbRating)
		if err != nil {
			return nil, err
		}
		number, err := parseInt("Episode", raw.Episode)
		if err != nil {
			return nil, err
		}

		episodes = append(episodes, Episode{
			Season:   season,
			Episode:  number,
			Title:    raw.Title,
			Released: released,
			ImdbID:   raw.ImdbID,
			Rating:   rating,
			Year:     released.Year(),
		})
	}

	return episodes, nil
}
