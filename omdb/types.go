package omdb

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// MediaType identifies the kind of title a record or search hit refers to.
type MediaType string

const (
	// TypeMovie represents a feature film
	TypeMovie MediaType = "movie"
	// TypeSeries represents a TV show
	TypeSeries MediaType = "series"
	// TypeEpisode represents a single TV episode
	TypeEpisode MediaType = "episode"
	// TypeGame represents a video game (search results only)
	TypeGame MediaType = "game"
)

// Title is a typed single-title result. The concrete type is one of
// *Movie, *TvShow or *Episode.
type Title interface {
	MediaType() MediaType
}

// Movie holds the mapped fields of a single movie (or the movie-shaped
// portion of a series). Records are immutable after construction.
type Movie struct {
	ImdbID string
	Title  string

	// Year is the release year. For a series with a year range it holds
	// the start year; YearText always keeps the raw value verbatim
	// (e.g. "2005-2009").
	Year     int
	YearText string

	Released  time.Time
	Genres    []string
	Languages []string
	Country   string
	Runtime   string
	Rated     string
	Plot      string
	Poster    string
	Director  string
	Writer    string
	Actors    string
	Awards    string
	Metascore string
	Rating    float64
	Votes     string
	Series    bool

	// URL is the canonical IMDb detail page, derived from ImdbID.
	URL string
}

// MediaType implements Title.
func (m *Movie) MediaType() MediaType {
	return TypeMovie
}

// TvShow is a Movie plus the series-specific fields. The episode list is
// fetched on demand and cached on the instance.
type TvShow struct {
	Movie

	StartYear int
	// EndYear is nil while the show is ongoing.
	EndYear      *int
	TotalSeasons int

	client *Client

	mu       sync.Mutex
	episodes []Episode
	fetched  bool
	flight   singleflight.Group
}

// MediaType implements Title.
func (s *TvShow) MediaType() MediaType {
	return TypeSeries
}

// Ongoing reports whether the show has no recorded end year.
func (s *TvShow) Ongoing() bool {
	return s.EndYear == nil
}

// Episode holds the mapped fields of a single TV episode.
type Episode struct {
	Season   int
	Episode  int
	Title    string
	Released time.Time
	ImdbID   string
	Rating   float64
	Year     int
}

// MediaType implements Title.
func (e *Episode) MediaType() MediaType {
	return TypeEpisode
}

// SearchResult is one entry of a search-result page.
type SearchResult struct {
	Title  string
	Year   int
	ImdbID string
	Type   MediaType
	Poster string
}

// SearchPage holds one page of search results plus the context needed to
// request the next page.
type SearchPage struct {
	Results      []SearchResult
	TotalResults int
	Page         int

	req    SearchRequest
	client *Client
}

// titlePayload mirrors the raw OMDb JSON for every non-search response
// shape: error, season listing and single title.
type titlePayload struct {
	Title        string                 `json:"Title"`
	Year         string                 `json:"Year"`
	Rated        string                 `json:"Rated"`
	Released     string                 `json:"Released"`
	Runtime      string                 `json:"Runtime"`
	Genre        string                 `json:"Genre"`
	Director     string                 `json:"Director"`
	Writer       string                 `json:"Writer"`
	Actors       string                 `json:"Actors"`
	Plot         string                 `json:"Plot"`
	Language     string                 `json:"Language"`
	Country      string                 `json:"Country"`
	Awards       string                 `json:"Awards"`
	Poster       string                 `json:"Poster"`
	Metascore    string                 `json:"Metascore"`
	ImdbRating   string                 `json:"imdbRating"`
	ImdbVotes    string                 `json:"imdbVotes"`
	ImdbID       string                 `json:"imdbID"`
	Type         string                 `json:"Type"`
	TotalSeasons string                 `json:"totalSeasons"`
	Episode      string                 `json:"Episode"`
	Season       string                 `json:"Season"`
	SeriesID     string                 `json:"seriesID"`
	Episodes     []seasonEpisodePayload `json:"Episodes"`
	Response     string                 `json:"Response"`
	Error        string                 `json:"Error"`
}

// seasonEpisodePayload is one entry of a per-season episode listing.
type seasonEpisodePayload struct {
	Title      string `json:"Title"`
	Released   string `json:"Released"`
	Episode    string `json:"Episode"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
}

// searchPayload mirrors the raw OMDb JSON for a search response.
type searchPayload struct {
	Search       []searchEntryPayload `json:"Search"`
	TotalResults string               `json:"totalResults"`
	Response     string               `json:"Response"`
	Error        string               `json:"Error"`
}

// searchEntryPayload is one entry of a raw search response.
type searchEntryPayload struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}
