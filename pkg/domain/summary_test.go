package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSentimentCounts(t *testing.T) {
	counts := NewSentimentCounts()

	require.Len(t, counts, len(AllLabels()))
	for _, label := range AllLabels() {
		assert.Zero(t, counts[label], "label %s", label)
	}
}

func TestAllLabels(t *testing.T) {
	labels := AllLabels()
	require.Len(t, labels, 5)

	seen := map[SentimentLabel]bool{}
	for _, l := range labels {
		seen[l] = true
	}
	assert.True(t, seen[LabelBearish])
	assert.True(t, seen[LabelSomewhatBearish])
	assert.True(t, seen[LabelNeutral])
	assert.True(t, seen[LabelSomewhatBullish])
	assert.True(t, seen[LabelBullish])
}

func TestDaySummary_JSON(t *testing.T) {
	counts := NewSentimentCounts()
	counts[LabelBullish] = 2
	summary := DaySummary{
		Timestamp:             time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		OverallSentimentScore: 0.42,
		OverallSentimentLabel: LabelBullish,
		SentimentCounts:       counts,
	}

	data, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"overall_sentiment_label":"Bullish"`)
	assert.Contains(t, string(data), `"Somewhat-Bearish":0`)
}
