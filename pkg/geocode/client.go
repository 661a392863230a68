// Package geocode is a thin client for the HERE Maps geocoding REST APIs:
// forward geocoding, address autocomplete, and reverse geocoding.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"checkout-address-verify/internal/models"
)

const (
	defaultGeocodeURL      = "https://geocode.search.hereapi.com/v1/geocode"
	defaultAutocompleteURL = "https://autocomplete.search.hereapi.com/v1/autocomplete"
	defaultRevGeocodeURL   = "https://revgeocode.search.hereapi.com/v1/revgeocode"

	// DefaultTimeout bounds one provider round trip.
	DefaultTimeout = 15 * time.Second
)

// Options tune a single geocoding request. Zero values fall back to the
// provider defaults used by the checkout flow.
type Options struct {
	Limit      int    // max candidates, default 1
	Lang       string // BCP-47 language tag, default en-US
	ResultType string // comma-separated HERE result types, geocode only
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return 1
	}
	return o.Limit
}

func (o Options) lang() string {
	if o.Lang == "" {
		return "en-US"
	}
	return o.Lang
}

// Client calls the HERE Maps APIs with a single API key. A Client with an
// empty key is valid but reports itself as not configured.
type Client struct {
	apiKey          string
	geocodeURL      string
	autocompleteURL string
	revGeocodeURL   string
	httpClient      *http.Client
}

// NewClient builds a HERE client. A non-positive timeout falls back to
// DefaultTimeout.
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		apiKey:          apiKey,
		geocodeURL:      defaultGeocodeURL,
		autocompleteURL: defaultAutocompleteURL,
		revGeocodeURL:   defaultRevGeocodeURL,
		httpClient:      &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURLs builds a client against alternative endpoints.
// Used by tests; production code should call NewClient.
func NewClientWithBaseURLs(apiKey string, timeout time.Duration, geocodeURL, autocompleteURL, revGeocodeURL string) *Client {
	c := NewClient(apiKey, timeout)
	if geocodeURL != "" {
		c.geocodeURL = geocodeURL
	}
	if autocompleteURL != "" {
		c.autocompleteURL = autocompleteURL
	}
	if revGeocodeURL != "" {
		c.revGeocodeURL = revGeocodeURL
	}
	return c
}

// IsConfigured reports whether an API key is present.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// itemsResponse is the part of a HERE response body this service cares
// about: the ranked candidate list.
type itemsResponse struct {
	Items []models.GeocodeCandidate `json:"items"`
}

// errorResponse is the error body HERE returns on non-2xx statuses.
type errorResponse struct {
	Title            string `json:"title"`
	ErrorDescription string `json:"error_description"`
}

// Geocode resolves a free-text address query into ranked candidates.
// A successful response with zero items yields models.ErrNoMatch; transport
// failures, non-2xx statuses and malformed bodies yield *models.GeocodeError.
func (c *Client) Geocode(ctx context.Context, query string, opts Options) ([]models.GeocodeCandidate, error) {
	if !c.IsConfigured() {
		return nil, models.ErrNotConfigured
	}
	if query == "" {
		return nil, &models.GeocodeError{Message: "empty query"}
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(opts.limit()))
	params.Set("lang", opts.lang())
	if opts.ResultType != "" {
		params.Set("resultType", opts.ResultType)
	}

	items, err := c.fetchItems(ctx, c.geocodeURL, params)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, models.ErrNoMatch
	}
	return items, nil
}

// Autocomplete suggests address completions for a partial query. Unlike
// Geocode, an empty result list is not an error here.
func (c *Client) Autocomplete(ctx context.Context, query string, opts Options) ([]models.GeocodeCandidate, error) {
	if !c.IsConfigured() {
		return nil, models.ErrNotConfigured
	}
	if query == "" {
		return nil, &models.GeocodeError{Message: "empty query"}
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(opts.limit()))
	params.Set("lang", opts.lang())
	params.Set("types", "address")

	return c.fetchItems(ctx, c.autocompleteURL, params)
}

// ReverseGeocode resolves coordinates into the nearest addresses.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64, opts Options) ([]models.GeocodeCandidate, error) {
	if !c.IsConfigured() {
		return nil, models.ErrNotConfigured
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("at", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("limit", strconv.Itoa(opts.limit()))
	params.Set("lang", opts.lang())

	items, err := c.fetchItems(ctx, c.revGeocodeURL, params)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, models.ErrNoMatch
	}
	return items, nil
}

func (c *Client) fetchItems(ctx context.Context, baseURL string, params url.Values) ([]models.GeocodeCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &models.GeocodeError{Err: fmt.Errorf("geocode.fetchItems build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.GeocodeError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.GeocodeError{Err: fmt.Errorf("geocode.fetchItems read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(body, &apiErr)
		msg := apiErr.ErrorDescription
		if msg == "" {
			msg = apiErr.Title
		}
		return nil, &models.GeocodeError{StatusCode: resp.StatusCode, Message: msg}
	}

	var parsed itemsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &models.GeocodeError{Err: fmt.Errorf("geocode.fetchItems unmarshal: %w", err)}
	}
	if parsed.Items == nil {
		return nil, &models.GeocodeError{StatusCode: resp.StatusCode, Message: "response has no items field"}
	}
	return parsed.Items, nil
}
