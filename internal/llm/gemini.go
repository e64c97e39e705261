package llm

import (
	"context"
	"fmt"

	"ai-fitness-planner/internal/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiClient is a client for the Google Gemini API.
type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini API client using the configured model.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (ModelClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.GeminiModel)
	return &geminiClient{client: client, model: model}, nil
}

// GenerateContent sends the prompt to Gemini and returns the raw response.
// It issues exactly one request; retrying is deliberately not done here.
func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (any, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	return resp, nil
}

// Close closes the underlying Gemini client.
func (c *geminiClient) Close() error {
	return c.client.Close()
}
