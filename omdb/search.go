package omdb

import "context"

// Search runs a free-text search and returns one page of results.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchPage, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var payload searchPayload
	if err := c.doRequest(ctx, params, &payload); err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, newError(ErrRemote, "%s (%s)", payload.Error, req.Query)
	}

	total, err := parseInt("totalResults", payload.TotalResults)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	sp := &SearchPage{
		Results:      make([]SearchResult, 0, len(payload.Search)),
		TotalResults: total,
		Page:         page,
		req:          req,
		client:       c,
	}
	for _, raw := range payload.Search {
		year, err := parseYear("Year", raw.Year)
		if err != nil {
			return nil, err
		}
		sp.Results = append(sp.Results, SearchResult{
			Title:  raw.Title,
			Year:   year,
			ImdbID: raw.ImdbID,
			Type:   MediaType(raw.Type),
			Poster: raw.Poster,
		})
	}

	c.logger.Debug().
		Str("query", req.Query).
		Int("page", page).
		Int("count", len(sp.Results)).
		Int("total", total).
		Msg("Search page retrieved")

	return sp, nil
}

// Next fetches the following page of the same search: same criteria, page
// incremented by one. It neither deduplicates nor detects the end of the
// result set; callers stop via TotalResults.
func (p *SearchPage) Next(ctx context.Context) (*SearchPage, error) {
	req := p.req
	req.Page = p.Page + 1
	return p.client.Search(ctx, req)
}
