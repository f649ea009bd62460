package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the fixed OMDb API endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

// Client wraps the OMDb API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new OMDb client. The API key is mandatory and is
// checked here so no request is ever attempted without it.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, newError(ErrMissingAPIKey, "an OMDb API key is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    options.baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// doRequest performs one GET with the given query parameters and decodes
// the JSON body into out. Transport failures are returned as-is.
func (c *Client) doRequest(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	requestURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Get fetches exactly one title and maps it to a typed record. The
// concrete result type follows the response's type discriminator:
// *Movie, *TvShow or *Episode.
func (c *Client) Get(ctx context.Context, req TitleRequest) (Title, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var payload titlePayload
	if err := c.doRequest(ctx, params, &payload); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("imdb_id", payload.ImdbID).
		Str("type", payload.Type).
		Msg("Fetched title")

	return c.buildTitle(payload, req.term())
}

// buildTitle classifies a decoded single-title payload and maps it.
func (c *Client) buildTitle(p titlePayload, term string) (Title, error) {
	if p.Error != "" {
		return nil, newError(ErrRemote, "%s (%s)", p.Error, term)
	}

	switch MediaType(p.Type) {
	case TypeMovie:
		return buildMovie(p)
	case TypeSeries:
		return c.buildShow(p)
	case TypeEpisode:
		// Single-title episode fetches carry no season context; season 1
		// is the documented placeholder.
		return buildEpisode(p, 1)
	default:
		return nil, newError(ErrUnrecognizedType, "unrecognized media type %q", p.Type)
	}
}

// Timeout returns the per-request deadline configured on the underlying
// HTTP client.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}
