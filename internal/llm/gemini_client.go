package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient is the completion client backed by Google's Gemini models.
type GeminiClient struct {
	model *genai.GenerativeModel
}

var _ CompletionClient = (*GeminiClient)(nil)

// NewGeminiClient creates a client for the given Gemini model.
func NewGeminiClient(apiKey, modelID string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel(modelID)}, nil
}

// Complete performs a blocking generation request against the Gemini API and
// returns the concatenated text parts of the first candidate.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, config *CompletionConfig) (string, error) {
	if config != nil {
		// Use the SDK setter methods to safely apply generation parameters.
		if config.Temperature != nil {
			c.model.SetTemperature(*config.Temperature)
		}
		if config.MaxTokens > 0 {
			c.model.SetMaxOutputTokens(int32(config.MaxTokens))
		}
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no content returned from Gemini")
	}

	var contentBuilder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			contentBuilder.WriteString(string(txt))
		}
	}
	return contentBuilder.String(), nil
}
