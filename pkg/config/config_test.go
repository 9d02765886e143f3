package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
news:
  endpoint: https://api.example.com/query
  api_key: test-key
summarizer:
  model: gpt-4o-mini
sentiment:
  model: gpt-4o-mini
`

func TestLoad_Minimal(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	// defaults fill everything not set
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 24*time.Hour, cfg.Schedule.Interval)
	assert.Equal(t, 5, cfg.Schedule.MaxWorkers)
	assert.Equal(t, "alphavantage", cfg.News.Provider)
	assert.Equal(t, 30, cfg.News.MaxArticles)
	assert.Equal(t, 150, cfg.Summarizer.MaxTokens)
	assert.Equal(t, 50, cfg.Sentiment.MaxTokens)
	assert.InDelta(t, 0.3, cfg.Summarizer.Temperature, 0.0001)
	assert.Equal(t, "Moodscope/1.0", cfg.Extraction.UserAgent)
	assert.Equal(t, 100, cfg.Extraction.MinTextLength)
}

func TestLoad_FullOverride(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  listen: ":9090"
  timeout: 10s
database:
  dsn: "file:test.db"
schedule:
  interval: 12h
  run_on_start: true
  max_workers: 3
news:
  provider: rss
  endpoint: https://example.com/feed.xml
  max_articles: 10
summarizer:
  model: gpt-4o
  max_tokens: 200
sentiment:
  model: gpt-4o
  temperature: 0.1
extraction:
  min_text_length: 250
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "file:test.db", cfg.Database.DSN)
	assert.Equal(t, 12*time.Hour, cfg.Schedule.Interval)
	assert.True(t, cfg.Schedule.RunOnStart)
	assert.Equal(t, "rss", cfg.News.Provider)
	assert.Equal(t, 10, cfg.News.MaxArticles)
	assert.Equal(t, 200, cfg.Summarizer.MaxTokens)
	assert.InDelta(t, 0.1, cfg.Sentiment.Temperature, 0.0001)
	assert.Equal(t, 250, cfg.Extraction.MinTextLength)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_NEWS_KEY", "secret-from-env")

	cfg, err := Load(writeConfig(t, `
news:
  endpoint: https://api.example.com/query
  api_key: ${TEST_NEWS_KEY}
summarizer:
  model: gpt-4o-mini
sentiment:
  model: gpt-4o-mini
`))
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.News.APIKey)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yml     string
		wantErr string
	}{
		{
			"missing news endpoint",
			"summarizer:\n  model: m\nsentiment:\n  model: m\n",
			"news.endpoint",
		},
		{
			"missing summarizer model",
			"news:\n  endpoint: https://x\nsentiment:\n  model: m\n",
			"summarizer.model",
		},
		{
			"missing sentiment model",
			"news:\n  endpoint: https://x\nsummarizer:\n  model: m\n",
			"sentiment.model",
		},
		{
			"unknown provider",
			"news:\n  provider: usenet\n  endpoint: https://x\nsummarizer:\n  model: m\nsentiment:\n  model: m\n",
			"news.provider",
		},
		{
			"temperature out of range",
			"news:\n  endpoint: https://x\nsummarizer:\n  model: m\n  temperature: 3.5\nsentiment:\n  model: m\n",
			"temperature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "news: [unclosed"))
		assert.Error(t, err)
	})
}

func TestConfig_Getters(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)

	assert.Equal(t, "https://api.example.com/query", cfg.GetNewsConfig().Endpoint)
	assert.Equal(t, 100, cfg.GetExtractionConfig().MinTextLength)
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "news")
}
