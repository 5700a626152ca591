package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeSendsProviderParams(t *testing.T) {
	var gotQuery map[string]string
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"apikey":        r.URL.Query().Get("apikey"),
			"url":           r.URL.Query().Get("url"),
			"response_type": r.URL.Query().Get("response_type"),
		}
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("# Page Title\n\nSome content"))
	}))
	defer server.Close()

	client := NewWithBaseURL("key123", server.URL, time.Second)
	markdown, err := client.Scrape(context.Background(), "https://target.example.com")
	require.NoError(t, err)

	assert.Equal(t, "# Page Title\n\nSome content", markdown)
	assert.Equal(t, "key123", gotQuery["apikey"])
	assert.Equal(t, "https://target.example.com", gotQuery["url"])
	assert.Equal(t, "markdown", gotQuery["response_type"])
	assert.Equal(t, "ServIQBot/1.0", gotUserAgent)
}

func TestScrapeErrorCarriesStatusAndTruncatedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer server.Close()

	client := NewWithBaseURL("key123", server.URL, time.Second)
	_, err := client.Scrape(context.Background(), "https://target.example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	// Body capped at 500 bytes in the message.
	assert.Less(t, len(err.Error()), 600)
}
