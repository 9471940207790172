package discord

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

	"github.com/bulbacards/packmint/internal/handler"
)

// APIClient handles communication with the packmint API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// getJSON performs a GET and decodes a successful body into out. Calls are
// not retried.
func (c *APIClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError turns a non-200 response into "API error: <message>".
func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errResp handler.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API error: status %d", resp.StatusCode)
}

func holderPath(address, leaf string) string {
	return "/api/v1/holders/" + url.PathEscape(address) + "/" + leaf
}

// Stats fetches the collection supply picture.
func (c *APIClient) Stats(ctx context.Context) (*handler.StatsResponse, error) {
	var out handler.StatsResponse
	if err := c.getJSON(ctx, "/api/v1/collection/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eligibility fetches the tier and remaining allowance of an address.
func (c *APIClient) Eligibility(ctx context.Context, address string) (*handler.EligibilityResponse, error) {
	var out handler.EligibilityResponse
	if err := c.getJSON(ctx, holderPath(address, "eligibility"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Packs lists the packs an address holds.
func (c *APIClient) Packs(ctx context.Context, address string) (*handler.TokensResponse, error) {
	var out handler.TokensResponse
	if err := c.getJSON(ctx, holderPath(address, "packs"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cards lists the cards an address holds.
func (c *APIClient) Cards(ctx context.Context, address string) (*handler.TokensResponse, error) {
	var out handler.TokensResponse
	if err := c.getJSON(ctx, holderPath(address, "cards"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Quote prices a mint of amount packs for address.
func (c *APIClient) Quote(ctx context.Context, address string, amount int) (*handler.QuoteResponse, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("amount", strconv.Itoa(amount))

	var out handler.QuoteResponse
	if err := c.getJSON(ctx, "/api/v1/mint/quote", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping reports whether the API answers its liveness probe.
func (c *APIClient) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
