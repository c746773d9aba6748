package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiItineraryClient is the alternate provider, selected with
// AI_PROVIDER=gemini. Forcing a JSON MIME type trims most of the prose the
// free-tier models like to wrap around their output, but the downstream
// pipeline still treats the result as untrusted.
type GeminiItineraryClient struct {
	client *genai.Client
	model  string
}

func NewGeminiItineraryClient(apiKey, model string) (ItineraryModelClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiItineraryClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.3)
	m.SetTopP(0.5)
	m.SetTopK(20)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	fullPrompt := itinerarySystemPrompt + "\n\n" + prompt
	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated by Gemini", ErrUnexpectedBehaviorOfAI)
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
