package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// NarrativeClientInterface is the opaque text-generation contract:
// prompt in, free-form text out, fallible. Implementations request the
// provider's structured/JSON output mode but callers must still treat
// the reply as untrusted text.
type NarrativeClientInterface interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type OpenAINarrativeClient struct {
	client *openai.Client
	model  string
}

func NewOpenAINarrativeClient(apiKey, model string) *OpenAINarrativeClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAINarrativeClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAINarrativeClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

type GeminiNarrativeClient struct {
	client *genai.Client
	model  string
}

func NewGeminiNarrativeClient(apiKey, model string) (*GeminiNarrativeClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiNarrativeClient{client: client, model: model}, nil
}

func (c *GeminiNarrativeClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(systemPrompt+"\n\n"+userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiNarrativeClient) Close() error {
	return c.client.Close()
}

// NewNarrativeClient picks the generation provider from config.
func NewNarrativeClient(provider, apiKey, model string) (NarrativeClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "openai":
		return NewOpenAINarrativeClient(apiKey, model), nil
	case "gemini":
		return NewGeminiNarrativeClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
