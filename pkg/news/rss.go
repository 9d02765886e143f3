package news

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/marketmood/moodscope/pkg/config"
	"github.com/marketmood/moodscope/pkg/domain"
)

// RSSSource pulls daily news descriptors from an RSS/Atom feed,
// filtering items down to the requested calendar day. Used as an
// alternative provider for deployments without a news API key.
type RSSSource struct {
	cfg    config.NewsConfig
	parser *gofeed.Parser
}

// NewRSSSource creates an RSS-backed news source
func NewRSSSource(cfg config.NewsConfig) *RSSSource {
	return &RSSSource{
		cfg:    cfg,
		parser: gofeed.NewParser(),
	}
}

// FetchDay retrieves feed items published on the given calendar day
func (s *RSSSource) FetchDay(ctx context.Context, day time.Time) ([]domain.Article, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	feed, err := s.parser.ParseURLWithContext(s.cfg.Endpoint, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.cfg.Endpoint, err)
	}

	year, month, dayNum := day.Date()

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}

		// undated items inherit the requested day
		published := day
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		py, pm, pd := published.In(day.Location()).Date()
		if py != year || pm != month || pd != dayNum {
			continue
		}

		articles = append(articles, domain.Article{
			URL:       item.Link,
			Title:     item.Title,
			Published: published,
			Source:    feed.Title,
		})
	}

	return articles, nil
}
