package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the TMDB v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

const defaultTimeout = 10 * time.Second

var _ API = (*Client)(nil)

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the HTTP client timeout. An injected HTTP client is copied
// rather than modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLanguage sends the language parameter (e.g. "en-US") with every request.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// NewClient creates a new TMDB client. It fails fast when apiKey is empty
// rather than issuing unauthenticated requests.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	switch {
	case client.httpClient == nil:
		timeout := client.timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client.httpClient = &http.Client{Timeout: timeout}
	case client.timeout > 0:
		httpClient := *client.httpClient
		httpClient.Timeout = client.timeout
		client.httpClient = &httpClient
	}

	return client, nil
}

// doRequest performs an authenticated GET and returns the body of a 200 response
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Msg("Making TMDB API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
		var errBody errorResponse
		if json.Unmarshal(body, &errBody) == nil {
			apiErr.Message = errBody.StatusMessage
		}
		return nil, apiErr
	}

	return body, nil
}

// getJSON performs a request and decodes the body into out
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	body, err := c.doRequest(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// fetchList calls a list endpoint and normalizes any failure to an empty result
func (c *Client) fetchList(ctx context.Context, endpoint string, params url.Values) ListResult {
	var response listResponse
	if err := c.getJSON(ctx, endpoint, params, &response); err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Error fetching movies")
		return ListResult{Results: []MovieSummary{}, Err: err}
	}

	if response.Results == nil {
		response.Results = []MovieSummary{}
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("count", len(response.Results)).
		Int("total", response.TotalResults).
		Msg("Retrieved movies from TMDB")

	return ListResult{Results: response.Results}
}

// SearchMovies searches movies by title. Rejecting blank queries is the
// caller's job; the query is sent as given.
func (c *Client) SearchMovies(ctx context.Context, query string) ListResult {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	return c.fetchList(ctx, "/search/movie", params)
}

// TrendingMovies retrieves the weekly trending movies
func (c *Client) TrendingMovies(ctx context.Context) ListResult {
	return c.fetchList(ctx, "/trending/movie/week", nil)
}

// UpcomingMovies retrieves upcoming releases
func (c *Client) UpcomingMovies(ctx context.Context) ListResult {
	return c.fetchList(ctx, "/movie/upcoming", nil)
}

// MovieDetails retrieves a movie with credits, videos and images appended
func (c *Client) MovieDetails(ctx context.Context, id int) DetailResult {
	endpoint := "/movie/" + strconv.Itoa(id)
	params := url.Values{}
	params.Set("append_to_response", "credits,videos,images")

	var detail MovieDetail
	if err := c.getJSON(ctx, endpoint, params, &detail); err != nil {
		c.logger.Error().Err(err).Int("movie_id", id).Msg("Error fetching movie details")
		return DetailResult{Err: err}
	}

	return DetailResult{Detail: &detail}
}

// TestConnection verifies the API key against the configuration endpoint
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.doRequest(ctx, "/configuration", nil); err != nil {
		return fmt.Errorf("failed to connect to TMDB: %w", err)
	}
	return nil
}

// redactKey strips the API key out of transport errors, which embed the URL
func redactKey(err error, apiKey string) error {
	urlErr, ok := err.(*url.Error)
	if !ok {
		return err
	}
	redacted := *urlErr
	redacted.URL = strings.ReplaceAll(redacted.URL, apiKey, "REDACTED")
	return &redacted
}
