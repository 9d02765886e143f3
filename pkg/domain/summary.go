package domain

import "time"

// DaySummary aggregates one day's analyzed articles into an overall mood.
// SentimentCounts always carries all five labels, zero-valued when absent.
type DaySummary struct {
	Timestamp             time.Time              `json:"timestamp"`
	OverallSentimentScore float64                `json:"overall_sentiment_score"`
	OverallSentimentLabel SentimentLabel         `json:"overall_sentiment_label"`
	SentimentCounts       map[SentimentLabel]int `json:"sentiment_counts"`
}

// NewSentimentCounts returns a count map with every label present at zero.
func NewSentimentCounts() map[SentimentLabel]int {
	counts := make(map[SentimentLabel]int, 5)
	for _, l := range AllLabels() {
		counts[l] = 0
	}
	return counts
}
