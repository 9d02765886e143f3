package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:moodscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=24h,description=Aggregation job cadence"`
		RunOnStart bool          `yaml:"run_on_start" json:"run_on_start" jsonschema:"default=true,description=Run the aggregation job immediately on startup"`
		MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent article workers"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	News NewsConfig `yaml:"news" json:"news" jsonschema:"description=Upstream news source configuration"`

	Summarizer ModelConfig `yaml:"summarizer" json:"summarizer" jsonschema:"description=Model configuration for article summarization"`

	Sentiment ModelConfig `yaml:"sentiment" json:"sentiment" jsonschema:"description=Model configuration for sentiment scoring"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`
}

// NewsConfig holds upstream news provider settings
type NewsConfig struct {
	Provider    string        `yaml:"provider" json:"provider" jsonschema:"default=alphavantage,description=News provider: alphavantage or rss"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=News API endpoint or feed URL"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=News API key (can use environment variable)"`
	MaxArticles int           `yaml:"max_articles" json:"max_articles" jsonschema:"default=30,description=Maximum articles analyzed per day"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout per day"`
}

// ModelConfig holds settings for an OpenAI-compatible model endpoint
type ModelConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=150,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Moodscope/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with their documented defaults
func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:moodscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Schedule.Interval == 0 {
		cfg.Schedule.Interval = 24 * time.Hour
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	if cfg.News.Provider == "" {
		cfg.News.Provider = "alphavantage"
	}
	if cfg.News.MaxArticles == 0 {
		cfg.News.MaxArticles = 30
	}
	if cfg.News.Timeout == 0 {
		cfg.News.Timeout = 30 * time.Second
	}

	setModelDefaults(&cfg.Summarizer, 150)
	setModelDefaults(&cfg.Sentiment, 50)

	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "Moodscope/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
}

func setModelDefaults(m *ModelConfig, maxTokens int) {
	if m.Temperature == 0 {
		m.Temperature = 0.3
	}
	if m.MaxTokens == 0 {
		m.MaxTokens = maxTokens
	}
	if m.Timeout == 0 {
		m.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.News.Provider != "alphavantage" && cfg.News.Provider != "rss" {
		return fmt.Errorf("news.provider must be alphavantage or rss")
	}
	if cfg.News.Endpoint == "" {
		return fmt.Errorf("news.endpoint is required")
	}
	if cfg.News.MaxArticles < 1 {
		return fmt.Errorf("news.max_articles must be at least 1")
	}

	if cfg.Summarizer.Model == "" {
		return fmt.Errorf("summarizer.model is required")
	}
	if cfg.Sentiment.Model == "" {
		return fmt.Errorf("sentiment.model is required")
	}
	if cfg.Summarizer.Temperature < 0 || cfg.Summarizer.Temperature > 2 {
		return fmt.Errorf("summarizer.temperature must be between 0 and 2")
	}
	if cfg.Sentiment.Temperature < 0 || cfg.Sentiment.Temperature > 2 {
		return fmt.Errorf("sentiment.temperature must be between 0 and 2")
	}

	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	if cfg.Extraction.MinTextLength < 0 {
		return fmt.Errorf("extraction min_text_length must be non-negative")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetNewsConfig returns upstream news source configuration
func (c *Config) GetNewsConfig() NewsConfig {
	return c.News
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}
