package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// GenerateRequest is one text-generation call: a system instruction, the
// user's text, and a cap on output length.
type GenerateRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Client generates prose for a prompt. Implementations never retry; a
// failure is returned to the caller as-is.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Config holds the connection settings for an OpenAI-compatible endpoint.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
}

// ErrEmptyResponse is returned when the endpoint answers without any choice.
var ErrEmptyResponse = errors.New("llm returned no choices")

// OpenAIClient calls an OpenAI-compatible chat completion API. Setting
// BaseURL lets the same client talk to any provider exposing that API.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIClient constructs an OpenAI-backed LLM client.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	oaCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		client:      openai.NewClientWithConfig(oaCfg),
		model:       model,
		temperature: cfg.Temperature,
	}
}

// Generate sends the system instruction and prompt to the chat completion
// API and returns the assistant's response.
func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		MaxTokens:   req.MaxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
