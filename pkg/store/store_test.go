package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketmood/moodscope/pkg/domain"
)

func setupTestStore(t *testing.T) *DaySlotStore {
	t.Helper()
	s, err := New(context.Background(), Config{DSN: t.TempDir() + "/test.db"})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func testSummary(day time.Time, score float64) *domain.DaySummary {
	counts := domain.NewSentimentCounts()
	counts[domain.LabelBullish] = 2
	counts[domain.LabelNeutral] = 1
	return &domain.DaySummary{
		Timestamp:             day,
		OverallSentimentScore: score,
		OverallSentimentLabel: domain.LabelSomewhatBullish,
		SentimentCounts:       counts,
	}
}

func testArticles(day time.Time) []domain.AnalyzedArticle {
	return []domain.AnalyzedArticle{
		{
			Title:          "Acme beats estimates",
			URL:            "https://example.com/acme",
			SummaryText:    "Acme Corp reported a 12% revenue increase.",
			RichContent:    "<p>Acme Corp reported a <b>12%</b> revenue increase.</p>",
			SentimentScore: 0.6,
			SentimentLabel: domain.LabelBullish,
			Date:           day,
		},
		{
			Title:          "Fed holds rates",
			URL:            "https://example.com/fed",
			SummaryText:    "The Fed kept rates unchanged.",
			SentimentScore: 0.05,
			SentimentLabel: domain.LabelNeutral,
			Date:           day,
		},
	}
}

func TestDaySlotStore_PutGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.Put(ctx, 3, testArticles(day), testSummary(day, 0.325)))

	articles, summary, err := s.Get(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, day.Unix(), summary.Timestamp.Unix())
	assert.InDelta(t, 0.325, summary.OverallSentimentScore, 0.0001)
	assert.Equal(t, domain.LabelSomewhatBullish, summary.OverallSentimentLabel)
	assert.Equal(t, 2, summary.SentimentCounts[domain.LabelBullish])
	assert.Equal(t, 1, summary.SentimentCounts[domain.LabelNeutral])
	assert.Equal(t, 0, summary.SentimentCounts[domain.LabelBearish])

	require.Len(t, articles, 2)
	assert.Equal(t, "Acme beats estimates", articles[0].Title)
	assert.Equal(t, "https://example.com/fed", articles[1].URL)
	assert.InDelta(t, 0.6, articles[0].SentimentScore, 0.0001)
	assert.Equal(t, "<p>Acme Corp reported a <b>12%</b> revenue increase.</p>", articles[0].RichContent)
}

func TestDaySlotStore_PutReplacesSlot(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	oldDay := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	newDay := oldDay.AddDate(0, 0, 7)

	require.NoError(t, s.Put(ctx, 0, testArticles(oldDay), testSummary(oldDay, 0.3)))
	require.NoError(t, s.Put(ctx, 0, testArticles(newDay)[:1], testSummary(newDay, -0.2)))

	articles, summary, err := s.Get(ctx, 0)
	require.NoError(t, err)

	// only the second write survives
	assert.Equal(t, newDay.Unix(), summary.Timestamp.Unix())
	assert.InDelta(t, -0.2, summary.OverallSentimentScore, 0.0001)
	assert.Len(t, articles, 1)
}

func TestDaySlotStore_PutEmptyDay(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	summary := &domain.DaySummary{
		Timestamp:             day,
		OverallSentimentScore: 0,
		OverallSentimentLabel: domain.LabelNeutral,
		SentimentCounts:       domain.NewSentimentCounts(),
	}
	require.NoError(t, s.Put(ctx, 2, nil, summary))

	articles, got, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.Zero(t, got.OverallSentimentScore)
	assert.Equal(t, domain.LabelNeutral, got.OverallSentimentLabel)
	for _, label := range domain.AllLabels() {
		assert.Zero(t, got.SentimentCounts[label], "label %s", label)
	}
}

func TestDaySlotStore_GetNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, _, err := s.Get(context.Background(), 5)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDaySlotStore_SlotRangeChecks(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	day := time.Now()

	assert.Error(t, s.Put(ctx, -1, nil, testSummary(day, 0)))
	assert.Error(t, s.Put(ctx, Slots, nil, testSummary(day, 0)))

	_, _, err := s.Get(ctx, -1)
	assert.Error(t, err)
	_, _, err = s.Get(ctx, Slots)
	assert.Error(t, err)
}

func TestDaySlotStore_PutNilSummary(t *testing.T) {
	s := setupTestStore(t)
	assert.Error(t, s.Put(context.Background(), 1, nil, nil))
}

func TestDaySlotStore_ListRecent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// fill all 7 slots out of slot order, timestamps decide listing order
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < Slots; offset++ {
		day := base.AddDate(0, 0, -offset)
		slot := (offset + 4) % Slots
		require.NoError(t, s.Put(ctx, slot, nil, testSummary(day, float64(offset)/10)))
	}

	summaries, err := s.ListRecent(ctx, Slots)
	require.NoError(t, err)
	require.Len(t, summaries, Slots)

	// newest first regardless of slot index
	for i := 0; i < len(summaries)-1; i++ {
		assert.True(t, summaries[i].Timestamp.After(summaries[i+1].Timestamp),
			"summaries[%d] should be newer than summaries[%d]", i, i+1)
	}
	assert.Equal(t, base.Unix(), summaries[0].Timestamp.Unix())
}

func TestDaySlotStore_ListRecentLimit(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 5; offset++ {
		require.NoError(t, s.Put(ctx, offset, nil, testSummary(base.AddDate(0, 0, -offset), 0)))
	}

	summaries, err := s.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, summaries, 3)

	// zero, negative and oversized limits fall back to the full window
	summaries, err = s.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, summaries, 5)

	summaries, err = s.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, summaries, 5)
}

func TestDaySlotStore_ListRecentEmpty(t *testing.T) {
	s := setupTestStore(t)

	summaries, err := s.ListRecent(context.Background(), Slots)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestDaySlotStore_Latest(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// newest day deliberately not in slot 0
	require.NoError(t, s.Put(ctx, 0, nil, testSummary(base.AddDate(0, 0, -3), -0.1)))
	require.NoError(t, s.Put(ctx, 6, testArticles(base), testSummary(base, 0.2)))

	articles, summary, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, base.Unix(), summary.Timestamp.Unix())
	assert.InDelta(t, 0.2, summary.OverallSentimentScore, 0.0001)
	assert.Len(t, articles, 2)
}

func TestDaySlotStore_LatestEmpty(t *testing.T) {
	s := setupTestStore(t)

	_, _, err := s.Latest(context.Background())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDaySlotStore_ConcurrentPuts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	done := make(chan error, Slots)
	for slot := 0; slot < Slots; slot++ {
		go func(slot int) {
			day := base.AddDate(0, 0, -slot)
			done <- s.Put(ctx, slot, testArticles(day), testSummary(day, 0.1))
		}(slot)
	}
	for i := 0; i < Slots; i++ {
		require.NoError(t, <-done)
	}

	summaries, err := s.ListRecent(ctx, Slots)
	require.NoError(t, err)
	assert.Len(t, summaries, Slots)
}
