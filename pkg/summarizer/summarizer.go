package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"github.com/marketmood/moodscope/pkg/config"
)

// maxInputChars bounds the article text sent to the model,
// roughly matching the 1024-token input window of the original summarization model
const maxInputChars = 4096

// Summarizer condenses article text using an OpenAI-compatible model.
// Output length is bounded by the configured MaxTokens (~150 by default).
type Summarizer struct {
	client *openai.Client
	config config.ModelConfig
}

// New creates a summarizer for the given model config
func New(cfg config.ModelConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

const summarizerSystemPrompt = `You are a financial news summarizer.
Condense the given article into a short, neutral summary of at most 150 tokens.
Keep concrete facts: company names, numbers, percentages, and dates.
Write directly about the content itself, never "the article discusses".
Respond with the summary text only.`

// Summarize returns a condensed version of the given article text
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty text")
	}
	if len(text) > maxInputChars {
		// back off to a rune boundary so the model never sees broken UTF-8
		cut := maxInputChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	req := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarizerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summarize request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("empty summary returned")
	}

	return summary, nil
}
