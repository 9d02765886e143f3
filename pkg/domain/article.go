package domain

import "time"

// Article is a raw news descriptor pulled from the upstream provider.
// The full text is fetched separately by the content extractor.
type Article struct {
	URL       string
	Title     string
	Published time.Time
	Source    string
}

// AnalyzedArticle is the result of summarizing and scoring a single article.
// It is immutable once created and lives until its day-slot rotates.
type AnalyzedArticle struct {
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	SummaryText    string         `json:"summary"`
	RichContent    string         `json:"rich_content,omitempty"` // sanitized HTML of the extracted article
	SentimentScore float64        `json:"sentiment_score"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
	Date           time.Time      `json:"date"`
}
