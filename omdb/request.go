package omdb

import (
	"net/url"
	"strconv"
)

// TitleRequest selects exactly one title, either by IMDb id or by title
// text. Exactly one of ID and Title must be set.
type TitleRequest struct {
	ID    string
	Title string

	// Year optionally narrows a title lookup to a release year.
	Year int

	// FullPlot requests the long plot synopsis instead of the short one.
	FullPlot bool
}

// values builds the query parameters for a single-title fetch.
func (r TitleRequest) values() (url.Values, error) {
	if r.ID == "" && r.Title == "" {
		return nil, newError(ErrMissingCriteria, "either an IMDb id or a title is required")
	}

	v := url.Values{}
	v.Set("r", "json")
	if r.ID != "" {
		v.Set("i", r.ID)
	} else {
		v.Set("t", r.Title)
	}
	if r.Year > 0 {
		v.Set("y", strconv.Itoa(r.Year))
	}
	if r.FullPlot {
		v.Set("plot", "full")
	} else {
		v.Set("plot", "short")
	}

	return v, nil
}

// term returns the identifier or title for use in error messages.
func (r TitleRequest) term() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Title
}

// SearchRequest describes a free-text search.
type SearchRequest struct {
	// Query is the search text. Required.
	Query string

	// Type optionally restricts results to one media type.
	Type MediaType

	// Year optionally restricts results to a release year.
	Year int

	// Page selects the result page; zero means page 1.
	Page int
}

// values builds the query parameters for a search.
func (r SearchRequest) values() (url.Values, error) {
	if r.Query == "" {
		return nil, newError(ErrMissingCriteria, "a search query is required")
	}

	v := url.Values{}
	v.Set("r", "json")
	v.Set("s", r.Query)
	if r.Type != "" {
		v.Set("type", string(r.Type))
	}
	if r.Year > 0 {
		v.Set("y", strconv.Itoa(r.Year))
	}
	page := r.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))

	return v, nil
}

// seasonValues builds the query parameters for one season's episode listing.
func seasonValues(showID string, season int) url.Values {
	v := url.Values{}
	v.Set("r", "json")
	v.Set("i", showID)
	v.Set("Season", strconv.Itoa(season))
	return v
}
