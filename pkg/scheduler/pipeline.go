package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/marketmood/moodscope/pkg/content"
	"github.com/marketmood/moodscope/pkg/domain"
	"github.com/marketmood/moodscope/pkg/sentiment"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier
//go:generate moq -out mocks/slot_store.go -pkg mocks -skip-ensure -fmt goimports . SlotStore

// Source pulls raw article descriptors for a calendar day
type Source interface {
	FetchDay(ctx context.Context, day time.Time) ([]domain.Article, error)
}

// Extractor retrieves article text from a URL
type Extractor interface {
	Extract(ctx context.Context, url string) (*content.ExtractResult, error)
}

// Summarizer condenses article text
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Classifier scores text sentiment and derives its label
type Classifier interface {
	Classify(ctx context.Context, text string) (float64, domain.SentimentLabel, error)
}

// SlotStore persists a day's analysis results into a rotating slot
type SlotStore interface {
	Put(ctx context.Context, slot int, articles []domain.AnalyzedArticle, summary *domain.DaySummary) error
}

// Pipeline analyzes one calendar day of news: fetch, summarize, score,
// aggregate, and store into the day's rotating slot.
type Pipeline struct {
	source      Source
	extractor   Extractor
	summarizer  Summarizer
	classifier  Classifier
	store       SlotStore
	maxArticles int
	maxWorkers  int
}

// PipelineConfig holds dependencies and limits for the daily pipeline
type PipelineConfig struct {
	Source      Source
	Extractor   Extractor
	Summarizer  Summarizer
	Classifier  Classifier
	Store       SlotStore
	MaxArticles int
	MaxWorkers  int
}

// NewPipeline creates a daily analysis pipeline
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.MaxArticles <= 0 {
		cfg.MaxArticles = 30
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 5
	}

	return &Pipeline{
		source:      cfg.Source,
		extractor:   cfg.Extractor,
		summarizer:  cfg.Summarizer,
		classifier:  cfg.Classifier,
		store:       cfg.Store,
		maxArticles: cfg.MaxArticles,
		maxWorkers:  cfg.MaxWorkers,
	}
}

// AnalyzeDay runs the full analysis for one calendar day and writes the
// result into the given slot.
//
// A fetch failure aborts the day before any store write, leaving the slot's
// previous contents untouched. Per-article failures only drop that article.
// A day with zero analyzable articles still writes an explicit zero summary
// with an empty article list, replacing whatever stale data the slot held.
func (p *Pipeline) AnalyzeDay(ctx context.Context, targetDay time.Time, slot int) (*domain.DaySummary, error) {
	articles, err := p.source.FetchDay(ctx, targetDay)
	if err != nil {
		return nil, fmt.Errorf("fetch news for day %s: %w", targetDay.Format("2006-01-02"), err)
	}

	if len(articles) > p.maxArticles {
		articles = articles[:p.maxArticles]
	}

	lgr.Printf("[INFO] analyzing %d articles for day %s (slot %d)",
		len(articles), targetDay.Format("2006-01-02"), slot)

	// analyze articles concurrently, placing results by index so the
	// stored order is stable regardless of completion order
	results := make([]*domain.AnalyzedArticle, len(articles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	for i, article := range articles {
		g.Go(func() error {
			analyzed, analyzeErr := p.analyzeArticle(gctx, article, targetDay)
			if analyzeErr != nil {
				lgr.Printf("[WARN] skipping article %s (day %s, slot %d): %v",
					article.URL, targetDay.Format("2006-01-02"), slot, analyzeErr)
				return nil
			}
			results[i] = analyzed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] article analysis error for day %s: %v", targetDay.Format("2006-01-02"), err)
	}

	analyzed := make([]domain.AnalyzedArticle, 0, len(results))
	for _, r := range results {
		if r != nil {
			analyzed = append(analyzed, *r)
		}
	}

	summary := aggregate(analyzed, targetDay)

	if err := p.store.Put(ctx, slot, analyzed, summary); err != nil {
		return nil, fmt.Errorf("store day %s into slot %d: %w", targetDay.Format("2006-01-02"), slot, err)
	}

	lgr.Printf("[INFO] stored day %s into slot %d: %d articles, overall %s (%.3f)",
		targetDay.Format("2006-01-02"), slot, len(analyzed),
		summary.OverallSentimentLabel, summary.OverallSentimentScore)

	return summary, nil
}

// analyzeArticle extracts, summarizes, and scores a single article
func (p *Pipeline) analyzeArticle(ctx context.Context, article domain.Article, targetDay time.Time) (*domain.AnalyzedArticle, error) {
	extracted, err := p.extractor.Extract(ctx, article.URL)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if extracted.Content == "" {
		return nil, fmt.Errorf("extract: empty text")
	}

	summaryText, err := p.summarizer.Summarize(ctx, extracted.Content)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	score, label, err := p.classifier.Classify(ctx, summaryText)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	date := article.Published
	if date.IsZero() {
		date = targetDay
	}

	return &domain.AnalyzedArticle{
		Title:          article.Title,
		URL:            article.URL,
		SummaryText:    summaryText,
		RichContent:    extracted.RichContent,
		SentimentScore: score,
		SentimentLabel: label,
		Date:           date,
	}, nil
}

// aggregate folds analyzed articles into the day's summary. An empty day
// yields a zero score, the Neutral label, and all-zero counts.
func aggregate(articles []domain.AnalyzedArticle, targetDay time.Time) *domain.DaySummary {
	counts := domain.NewSentimentCounts()

	var total float64
	for _, a := range articles {
		total += a.SentimentScore
		counts[a.SentimentLabel]++
	}

	var mean float64
	if len(articles) > 0 {
		mean = total / float64(len(articles))
	}

	return &domain.DaySummary{
		Timestamp:             targetDay,
		OverallSentimentScore: mean,
		OverallSentimentLabel: sentiment.LabelForScore(mean),
		SentimentCounts:       counts,
	}
}
