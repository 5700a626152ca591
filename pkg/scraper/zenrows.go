package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.zenrows.com/v1/"

const userAgent = "ServIQBot/1.0"

// Client fetches a rendered page as markdown through the ZenRows API.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func New(apiKey string, timeout time.Duration) *Client {
	return NewWithBaseURL(apiKey, DefaultBaseURL, timeout)
}

func NewWithBaseURL(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Scrape returns the page markdown. A non-success provider response is an
// error carrying the status and a truncated body for diagnostics.
func (c *Client) Scrape(ctx context.Context, target string) (string, error) {
	zenURL, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := zenURL.Query()
	q.Set("apikey", c.apiKey)
	q.Set("url", target)
	q.Set("response_type", "markdown")
	zenURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, zenURL.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody := string(body)
		if len(errBody) > 500 {
			errBody = errBody[:500]
		}
		return "", fmt.Errorf("zenrows request failed with status %d: %s", resp.StatusCode, errBody)
	}

	return string(body), nil
}
