package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"rihla/internal/models/response_models"
)

// GeminiGenerationClient implements GenerationClientInterface on Google's
// Gemini models.
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(apiKey, model string) (GenerationClientInterface, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (response_models.GeneratedPlan, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so parsing does not need brace hunting.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(1)
	m.SetTopK(64)
	m.SetTopP(0.95)
	m.SetMaxOutputTokens(8192)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %v", ErrGenerationUnavailable, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: gemini returned no content", ErrGenerationFormat)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return ParseGeneratedPlan(content)
}

func (c *GeminiGenerationClient) GenerateSummary(ctx context.Context, matched response_models.GeneratedPlan) (string, error) {
	payload, err := json.MarshalIndent(matched, "", "  ")
	if err != nil {
		return "", err
	}

	m := c.client.GenerativeModel(c.model)
	prompt := fmt.Sprintf(`You are a helpful AI travel assistant. Convert this JSON into a fun and friendly paragraph about the trip, without saying "summary of your trip":

%s

Use a tone like: "Get ready for an exciting three-day adventure through Saudi Arabia! You'll start in Riyadh..."`, string(payload))

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrGenerationUnavailable, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no summary content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Ping issues a minimal generation call. Failure means the fallback path
// should be used instead of free-form generation.
func (c *GeminiGenerationClient) Ping(ctx context.Context) error {
	m := c.client.GenerativeModel(c.model)
	if _, err := m.GenerateContent(ctx, genai.Text("ping")); err != nil {
		return fmt.Errorf("%w: gemini: %v", ErrGenerationUnavailable, err)
	}
	return nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
