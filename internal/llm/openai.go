package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"
)

// OpenAIBackend implements Backend for OpenAI chat completions.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates a new OpenAI backend.
func NewOpenAIBackend(apiKey, model string) (*OpenAIBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIBackend{
		client: &client,
		model:  model,
	}, nil
}

// Name returns the backend's display name.
func (b *OpenAIBackend) Name() string {
	return "OpenAI"
}

// Generate produces JSON-formatted text for the prompt.
func (b *OpenAIBackend) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: b.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(3000),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	return CleanJSONBlock(completion.Choices[0].Message.Content), nil
}

// Close releases resources held by the backend.
func (b *OpenAIBackend) Close() error {
	return nil
}
