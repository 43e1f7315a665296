package utils

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"rihla/internal/models/response_models"
)

// OpenAIGenerationClient is the alternative provider behind the same
// interface, selected via GENERATION_PROVIDER=openai.
type OpenAIGenerationClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerationClient(apiKey, model string) *OpenAIGenerationClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerationClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIGenerationClient) complete(ctx context.Context, prompt string, jsonOnly bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if jsonOnly {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrGenerationUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", ErrGenerationFormat)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (response_models.GeneratedPlan, error) {
	content, err := c.complete(ctx, prompt, true)
	if err != nil {
		return nil, err
	}
	return ParseGeneratedPlan(content)
}

func (c *OpenAIGenerationClient) GenerateSummary(ctx context.Context, matched response_models.GeneratedPlan) (string, error) {
	payload, err := json.MarshalIndent(matched, "", "  ")
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf(`You are a helpful AI travel assistant. Convert this JSON into a fun and friendly paragraph about the trip, without saying "summary of your trip":

%s`, string(payload))
	return c.complete(ctx, prompt, false)
}

func (c *OpenAIGenerationClient) Ping(ctx context.Context) error {
	_, err := c.complete(ctx, "ping", false)
	return err
}
