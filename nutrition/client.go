package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the FoodData Central v1 API root.
const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

// Client searches FoodData Central.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API root. Trailing slashes are ignored.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type food struct {
	Description   string           `json:"description"`
	FDCID         int64            `json:"fdcId"`
	FoodNutrients []NutrientRecord `json:"foodNutrients"`
}

type searchResponse struct {
	Foods []food `json:"foods"`
}

// Lookup searches for query and summarizes the best match.
// Only the first candidate is requested.
func (c *Client) Lookup(ctx context.Context, query string) (*Summary, error) {
	foods, err := c.search(ctx, query)
	if err != nil {
		return nil, &LookupError{Query: query, Err: err}
	}
	if len(foods) == 0 {
		return nil, &NoResultsError{Query: query}
	}

	f := foods[0]
	name := f.Description
	if strings.TrimSpace(name) == "" {
		name = query
	}
	summary := Extract(name, f.FoodNutrients)
	return &summary, nil
}

func (c *Client) search(ctx context.Context, query string) ([]food, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("pageSize", "1")
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/foods/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return sr.Foods, nil
}
