package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marketmood/moodscope/pkg/domain"
)

// slotSQL represents a day-slot row for SQL operations
type slotSQL struct {
	Slot         int         `db:"slot"`
	Timestamp    time.Time   `db:"ts"`
	OverallScore float64     `db:"overall_score"`
	OverallLabel string      `db:"overall_label"`
	Counts       countsSQL   `db:"sentiment_counts"`
	Articles     articlesSQL `db:"articles"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

// articlesSQL is a JSON array of analyzed articles for SQL operations
type articlesSQL []domain.AnalyzedArticle

// Value implements driver.Valuer for database storage
func (a articlesSQL) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *articlesSQL) Scan(value interface{}) error {
	if value == nil {
		*a = articlesSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported articles column type %T", value)
	}

	return json.Unmarshal(data, a)
}

// countsSQL is a JSON object of per-label counts for SQL operations
type countsSQL map[domain.SentimentLabel]int

// Value implements driver.Valuer for database storage
func (c countsSQL) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for database retrieval.
// All five labels are always present in the result, zero when missing.
func (c *countsSQL) Scan(value interface{}) error {
	counts := domain.NewSentimentCounts()

	var data []byte
	switch v := value.(type) {
	case nil:
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported counts column type %T", value)
	}

	if len(data) > 0 {
		var stored map[domain.SentimentLabel]int
		if err := json.Unmarshal(data, &stored); err != nil {
			return err
		}
		for label, n := range stored {
			counts[label] = n
		}
	}

	*c = counts
	return nil
}

// toSummary converts a row to the domain summary
func (s *slotSQL) toSummary() *domain.DaySummary {
	return &domain.DaySummary{
		Timestamp:             s.Timestamp,
		OverallSentimentScore: s.OverallScore,
		OverallSentimentLabel: domain.SentimentLabel(s.OverallLabel),
		SentimentCounts:       map[domain.SentimentLabel]int(s.Counts),
	}
}
