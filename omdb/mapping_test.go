package omdb

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moviePayload() titlePayload {
	return titlePayload{
		Title:      "The Prestige",
		Year:       "2006",
		Rated:      "PG-13",
		Released:   "20 Oct 2006",
		Runtime:    "130 min",
		Genre:      "Drama, Mystery, Sci-Fi",
		Director:   "Christopher Nolan",
		Writer:     "Jonathan Nolan, Christopher Nolan",
		Actors:     "Christian Bale, Hugh Jackman",
		Plot:       "Two stage magicians engage in a battle.",
		Language:   "English, Japanese",
		Country:    "United States",
		Poster:     "https://example.com/prestige.jpg",
		Metascore:  "66",
		ImdbRating: "8.5",
		ImdbVotes:  "1,413,000",
		ImdbID:     "tt0482571",
		Type:       "movie",
		Response:   "True",
	}
}

func seriesPayload() titlePayload {
	p := moviePayload()
	p.Title = "The Office"
	p.Year = "2005-2013"
	p.ImdbID = "tt0386676"
	p.Type = "series"
	p.TotalSeasons = "9"
	p.Released = "24 Mar 2005"
	return p
}

func TestBuildMovie(t *testing.T) {
	t.Run("maps all fields", func(t *testing.T) {
		movie, err := buildMovie(moviePayload())
		require.NoError(t, err)

		assert.Equal(t, "The Prestige", movie.Title)
		assert.Equal(t, 2006, movie.Year)
		assert.Equal(t, "2006", movie.YearText)
		assert.Equal(t, time.Date(2006, time.October, 20, 0, 0, 0, 0, time.UTC), movie.Released)
		assert.Equal(t, []string{"Drama", "Mystery", "Sci-Fi"}, movie.Genres)
		assert.Equal(t, []string{"English", "Japanese"}, movie.Languages)
		assert.Equal(t, 8.5, movie.Rating)
		assert.Equal(t, "1,413,000", movie.Votes)
		assert.Equal(t, "66", movie.Metascore)
		assert.False(t, movie.Series)
	})

	t.Run("derives canonical URL from the id", func(t *testing.T) {
		movie, err := buildMovie(moviePayload())
		require.NoError(t, err)
		assert.Equal(t, "https://www.imdb.com/title/tt0482571/", movie.URL)
	})

	t.Run("series flag follows the type discriminator", func(t *testing.T) {
		movie, err := buildMovie(seriesPayload())
		require.NoError(t, err)
		assert.True(t, movie.Series)
	})

	t.Run("unparsable release date fails construction", func(t *testing.T) {
		p := moviePayload()
		p.Released = "N/A"

		movie, err := buildMovie(p)
		assert.Nil(t, movie)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidField)
		assert.Contains(t, err.Error(), "Released")
	})

	t.Run("unparsable rating fails construction", func(t *testing.T) {
		p := moviePayload()
		p.ImdbRating = "N/A"

		_, err := buildMovie(p)
		assert.ErrorIs(t, err, ErrInvalidField)
	})

	t.Run("unparsable year fails construction", func(t *testing.T) {
		p := moviePayload()
		p.Year = "MMVI"

		_, err := buildMovie(p)
		assert.ErrorIs(t, err, ErrInvalidField)
		assert.Contains(t, err.Error(), "MMVI")
	})

	t.Run("year range is retained verbatim", func(t *testing.T) {
		movie, err := buildMovie(seriesPayload())
		require.NoError(t, err)
		assert.Equal(t, "2005-2013", movie.YearText)
		assert.Equal(t, 2005, movie.Year)
	})
}

func TestBuildShow(t *testing.T) {
	client := &Client{logger: zerolog.Nop()}

	t.Run("closed year range", func(t *testing.T) {
		show, err := client.buildShow(seriesPayload())
		require.NoError(t, err)

		assert.Equal(t, 2005, show.StartYear)
		require.NotNil(t, show.EndYear)
		assert.Equal(t, 2013, *show.EndYear)
		assert.Equal(t, 9, show.TotalSeasons)
		assert.False(t, show.Ongoing())
	})

	t.Run("open year range means ongoing", func(t *testing.T) {
		p := seriesPayload()
		p.Year = "2005-"

		show, err := client.buildShow(p)
		require.NoError(t, err)
		assert.Equal(t, 2005, show.StartYear)
		assert.Nil(t, show.EndYear)
		assert.True(t, show.Ongoing())
	})

	t.Run("en-dash range", func(t *testing.T) {
		p := seriesPayload()
		p.Year = "2005–2009"

		show, err := client.buildShow(p)
		require.NoError(t, err)
		assert.Equal(t, 2005, show.StartYear)
		require.NotNil(t, show.EndYear)
		assert.Equal(t, 2009, *show.EndYear)
	})

	t.Run("unparsable season count fails construction", func(t *testing.T) {
		p := seriesPayload()
		p.TotalSeasons = "N/A"

		_, err := client.buildShow(p)
		assert.ErrorIs(t, err, ErrInvalidField)
	})
}

func TestBuildEpisode(t *testing.T) {
	payload := titlePayload{
		Title:      "Pilot",
		Year:       "2005",
		Released:   "24 Mar 2005",
		Episode:    "1",
		ImdbRating: "7.4",
		ImdbID:     "tt0664521",
		Type:       "episode",
		Response:   "True",
	}

	t.Run("maps fields with the caller's season", func(t *testing.T) {
		episode, err := buildEpisode(payload, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, episode.Season)
		assert.Equal(t, 1, episode.Episode)
		assert.Equal(t, "Pilot", episode.Title)
		assert.Equal(t, 2005, episode.Year)
		assert.Equal(t, 7.4, episode.Rating)
	})

	t.Run("unparsable episode number fails construction", func(t *testing.T) {
		p := payload
		p.Episode = "one"

		_, err := buildEpisode(p, 1)
		assert.ErrorIs(t, err, ErrInvalidField)
	})

	t.Run("unparsable air date fails construction", func(t *testing.T) {
		p := payload
		p.Released = "sometime in 2005"

		_, err := buildEpisode(p, 1)
		assert.ErrorIs(t, err, ErrInvalidField)
	})
}

func TestBuildSeasonEpisodes(t *testing.T) {
	payload := titlePayload{
		Title:  "The Office",
		Season: "2",
		Episodes: []seasonEpisodePayload{
			{Title: "The Dundies", Released: "20 Sep 2005", Episode: "1", ImdbRating: "8.7", ImdbID: "tt0664514"},
			{Title: "Sexual Harassment", Released: "27 Sep 2005", Episode: "2", ImdbRating: "8.2", ImdbID: "tt0664517"},
		},
		Response: "True",
	}

	t.Run("tags episodes with the listing's season", func(t *testing.T) {
		episodes, err := buildSeasonEpisodes(payload)
		require.NoError(t, err)
		require.Len(t, episodes, 2)

		assert.Equal(t, 2, episodes[0].Season)
		assert.Equal(t, 2, episodes[1].Season)
		assert.Equal(t, 1, episodes[0].Episode)
		assert.Equal(t, 2005, episodes[0].Year)
	})

	t.Run("one bad episode fails the listing", func(t *testing.T) {
		p := payload
		p.Episodes = append([]seasonEpisodePayload{}, p.Episodes...)
		p.Episodes[1].Released = "N/A"

		_, err := buildSeasonEpisodes(p)
		assert.ErrorIs(t, err, ErrInvalidField)
	})
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "plain year", raw: "2019", want: 2019},
		{name: "closed range", raw: "2005-2009", want: 2005},
		{name: "open range", raw: "2005-", want: 2005},
		{name: "en-dash range", raw: "2005–2009", want: 2005},
		{name: "garbage", raw: "soon", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseYear("Year", tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Drama", "Mystery"}, splitList("Drama, Mystery"))
	assert.Equal(t, []string{"Drama"}, splitList("Drama"))
	assert.Nil(t, splitList(""))
}
