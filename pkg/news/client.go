package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/marketmood/moodscope/pkg/config"
	"github.com/marketmood/moodscope/pkg/domain"
)

// timePublishedLayout is the compact timestamp format used by the news API
const timePublishedLayout = "20060102T150405"

// Client pulls daily news descriptors from an Alpha-Vantage-style
// NEWS_SENTIMENT endpoint, keyed by a single calendar day.
type Client struct {
	cfg    config.NewsConfig
	client *http.Client
}

// NewClient creates a news API client
func NewClient(cfg config.NewsConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// feedEntry is a single article descriptor in the API response
type feedEntry struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	TimePublished string `json:"time_published"`
	Source        string `json:"source"`
}

// feedResponse is the NEWS_SENTIMENT response envelope
type feedResponse struct {
	Feed []feedEntry `json:"feed"`
}

// FetchDay retrieves article descriptors published on the given calendar day.
// Transport errors and non-2xx responses are returned as errors so the caller
// can skip the day without touching its slot.
func (c *Client) FetchDay(ctx context.Context, day time.Time) ([]domain.Article, error) {
	reqURL, err := c.buildURL(day)
	if err != nil {
		return nil, fmt.Errorf("build news URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news for %s: %w", day.Format("2006-01-02"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d fetching news for %s",
			resp.StatusCode, day.Format("2006-01-02"))
	}

	var parsed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	articles := make([]domain.Article, 0, len(parsed.Feed))
	for _, entry := range parsed.Feed {
		if entry.URL == "" {
			continue
		}

		published := day
		if ts, parseErr := time.Parse(timePublishedLayout, entry.TimePublished); parseErr == nil {
			published = ts
		}

		articles = append(articles, domain.Article{
			URL:       entry.URL,
			Title:     entry.Title,
			Published: published,
			Source:    entry.Source,
		})
	}

	return articles, nil
}

// buildURL composes the NEWS_SENTIMENT query covering the whole target day
func (c *Client) buildURL(day time.Time) (string, error) {
	base, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	q := base.Query()
	q.Set("function", "NEWS_SENTIMENT")
	q.Set("time_from", dayStart.Format("20060102T0000"))
	q.Set("time_to", dayStart.Format("20060102")+"T2359")
	q.Set("limit", strconv.Itoa(c.cfg.MaxArticles))
	if c.cfg.APIKey != "" {
		q.Set("apikey", c.cfg.APIKey)
	}
	base.RawQuery = q.Encode()

	return base.String(), nil
}
