package generator

import (
	"context"
	"errors"
	"fmt"
)

// Intent shapes a completion request: its token budget and the fallback used on failure.
type Intent string

const (
	IntentSuggestion Intent = "suggestion"
	IntentSection    Intent = "section"
	IntentChat       Intent = "chat"
)

// Temperature used for every intent.
const Temperature = 0.7

// MaxTokens returns the completion token budget for the intent.
func (i Intent) MaxTokens() int64 {
	switch i {
	case IntentSuggestion:
		return 1000
	case IntentSection:
		return 1500
	case IntentChat:
		return 500
	default:
		return 500
	}
}

// Completer abstracts the text-completion capability so it can be replaced or mocked.
type Completer interface {
	Complete(ctx context.Context, prompt string, intent Intent) (string, error)
}

// Settings configures a concrete Completer.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// Supported completer providers.
const (
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// NewCompleter builds the Completer named by settings.Provider.
func NewCompleter(settings *Settings) (Completer, error) {
	if settings == nil {
		return nil, errors.New("llm settings are nil")
	}
	switch settings.Provider {
	case ProviderMock:
		return OfflineCompleter{}, nil
	case ProviderOpenAI, "":
		return NewOpenAICompleter(settings)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", settings.Provider)
	}
}
