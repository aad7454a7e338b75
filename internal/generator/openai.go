package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAICompleter implements Completer against any OpenAI-compatible chat completions
// endpoint (OpenAI itself, or a local Ollama server).
type OpenAICompleter struct {
	model  string
	client openai.Client
}

// NewOpenAICompleter creates an OpenAICompleter from settings.
func NewOpenAICompleter(cfg *Settings) (*OpenAICompleter, error) {
	if cfg == nil {
		return nil, errors.New("llm settings are nil")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	if cfg.BaseURL == "" && cfg.APIKey == "" {
		return nil, errors.New("llm api key or base url is required")
	}

	// Fallback content is the only recovery path, so the SDK must not retry.
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAICompleter{
		model:  cfg.Model,
		client: openai.NewClient(opts...),
	}, nil
}

// Complete sends the prompt as a single user message.
func (o *OpenAICompleter) Complete(ctx context.Context, prompt string, intent Intent) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(Temperature),
		MaxTokens:   openai.Int(intent.MaxTokens()),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
