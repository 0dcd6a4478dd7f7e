package wttr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/firebase/genkit/go/genkit"

	"github.com/ZIZO17z/mia/tools"
)

const (
	BaseURL = "https://wttr.in"
)

// StatusError reports a non-OK HTTP status from the weather endpoint.
// It is distinct from transport failures so callers can phrase the two
// differently.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather endpoint returned status %d", e.Code)
}

// Client handles wttr.in requests
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new wttr.in client and registers its tool
func NewClient(baseURL string, gk *genkit.Genkit, registry *tools.Registry) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}

	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}

	c.registerTools(gk, registry)

	return c
}

// Current fetches the one-line weather summary for a city.
// format=3 selects the compact "<city>: <icon> <temp>" text response.
func (c *Client) Current(ctx context.Context, city string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s?format=3", c.BaseURL, url.PathEscape(city))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return strings.TrimSpace(string(body)), nil
}
