package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/marketmood/moodscope/pkg/config"
)

// ExtractResult holds the extracted article content
type ExtractResult struct {
	Content     string // plain text
	RichContent string // sanitized HTML
}

// HTTPExtractor extracts article text from URLs using trafilatura,
// falling back to plain paragraph scraping when trafilatura finds nothing
type HTTPExtractor struct {
	cfg       config.ExtractionConfig
	client    *http.Client
	sanitizer *bluemonday.Policy
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(cfg config.ExtractionConfig) *HTTPExtractor {
	return &HTTPExtractor{
		cfg:       cfg,
		client:    &http.Client{Timeout: cfg.Timeout},
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Extract retrieves and extracts text content from the given URL
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*ExtractResult, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.cfg.UserAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", urlStr, err)
	}

	content, rich := e.extractMain(body, parsedURL)
	if content == "" {
		// trafilatura found nothing usable, join bare <p> elements instead
		content = extractParagraphs(bytes.NewReader(body))
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("no text content extracted from %s", urlStr)
	}
	if len(content) < e.cfg.MinTextLength {
		return nil, fmt.Errorf("extracted content too short (%d chars) from %s", len(content), urlStr)
	}

	return &ExtractResult{Content: content, RichContent: rich}, nil
}

// extractMain runs trafilatura over the page and sanitizes the rich HTML output
func (e *HTTPExtractor) extractMain(body []byte, pageURL *url.URL) (content, rich string) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	}

	result, err := trafilatura.Extract(bytes.NewReader(body), opts)
	if err != nil || result == nil {
		return "", ""
	}

	content = strings.TrimSpace(result.ContentText)
	if result.ContentNode != nil {
		var sb strings.Builder
		if renderErr := html.Render(&sb, result.ContentNode); renderErr == nil {
			rich = e.sanitizer.Sanitize(sb.String())
		}
	}

	return content, rich
}
