package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const itinerarySystemPrompt = `You are an expert travel planner with deep knowledge of destinations worldwide.
Create detailed, practical, and engaging itineraries. Always respond with valid JSON only.
Focus on realistic timing, authentic local experiences, and budget-appropriate suggestions.
Include specific restaurant names, attraction details, and practical tips.
Consider local culture, weather, and seasonal events.
Provide detailed transportation options and costs.
Include emergency contacts and local customs.`

// GroqItineraryClient talks to Groq's OpenAI-compatible chat endpoint.
type GroqItineraryClient struct {
	client *openai.Client
	model  string
}

func NewGroqItineraryClient(apiKey, model string) ItineraryModelClient {
	if model == "" {
		model = "llama3-8b-8192"
	}

	config := openai.DefaultConfig(apiKey)
	baseURL := os.Getenv("GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	config.BaseURL = baseURL

	return &GroqItineraryClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *GroqItineraryClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: itinerarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   8000,
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned by model %s", ErrUnexpectedBehaviorOfAI, c.model)
	}

	content := resp.Choices[0].Message.Content
	log.Printf("AI response length: %d", len(content))
	return content, nil
}
