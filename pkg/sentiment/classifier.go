package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/marketmood/moodscope/pkg/config"
	"github.com/marketmood/moodscope/pkg/domain"
)

// Classifier scores article text using a binary positive/negative model
// behind an OpenAI-compatible endpoint. The raw probability is negated for
// negative verdicts, producing a signed score in [-1,1] which is then
// mapped to a label with LabelForScore.
type Classifier struct {
	client *openai.Client
	config config.ModelConfig
}

// NewClassifier creates a sentiment classifier for the given model config
func NewClassifier(cfg config.ModelConfig) *Classifier {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Classifier{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

const classifierSystemPrompt = `You are a financial sentiment classifier.
Given a piece of financial news text, decide whether its sentiment is POSITIVE or NEGATIVE
and how confident you are.

Respond with a JSON object only, no other text:
{"label": "POSITIVE" or "NEGATIVE", "score": probability between 0.0 and 1.0}`

// verdict is the raw binary model output before sign adjustment
type verdict struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Score returns a signed sentiment score in [-1,1] for the given text
func (c *Classifier) Score(ctx context.Context, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("empty text")
	}

	// retry up to 3 times if the model returns unparsable JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		req := openai.ChatCompletionRequest{
			Model:       c.config.Model,
			Temperature: float32(c.config.Temperature),
			MaxTokens:   c.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: classifierSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: text},
			},
		}

		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return 0, fmt.Errorf("sentiment request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return 0, fmt.Errorf("no response from model")
		}

		score, err := parseVerdict(resp.Choices[0].Message.Content)
		if err == nil {
			return score, nil
		}
		lastErr = err
	}

	return 0, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// Classify scores the text and derives its mood label
func (c *Classifier) Classify(ctx context.Context, text string) (float64, domain.SentimentLabel, error) {
	score, err := c.Score(ctx, text)
	if err != nil {
		return 0, "", err
	}
	return score, LabelForScore(score), nil
}

// parseVerdict extracts the signed score from the model response.
// Negative verdicts flip the probability sign; the result is clamped to [-1,1].
func parseVerdict(content string) (float64, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return 0, fmt.Errorf("no json object found in response")
	}

	var v verdict
	if err := json.Unmarshal([]byte(content[start:end+1]), &v); err != nil {
		return 0, fmt.Errorf("failed to parse json response: %w", err)
	}

	score := v.Score
	if strings.EqualFold(v.Label, "NEGATIVE") {
		score = -score
	}

	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score, nil
}
