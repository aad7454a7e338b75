package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleter(t *testing.T) {
	t.Run("mock provider is offline", func(t *testing.T) {
		c, err := NewCompleter(&Settings{Provider: ProviderMock})
		require.NoError(t, err)
		assert.IsType(t, OfflineCompleter{}, c)
	})

	t.Run("openai provider", func(t *testing.T) {
		c, err := NewCompleter(&Settings{Provider: ProviderOpenAI, Model: "llama3.1:8b", BaseURL: "http://localhost:11434/v1"})
		require.NoError(t, err)
		assert.IsType(t, &OpenAICompleter{}, c)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewCompleter(&Settings{Provider: "telepathy"})
		assert.Error(t, err)
	})

	t.Run("nil settings", func(t *testing.T) {
		_, err := NewCompleter(nil)
		assert.Error(t, err)
	})
}

func TestNewOpenAICompleter_Validation(t *testing.T) {
	_, err := NewOpenAICompleter(&Settings{BaseURL: "http://localhost"})
	assert.Error(t, err, "model is required")

	_, err = NewOpenAICompleter(&Settings{Model: "gpt-4o-mini"})
	assert.Error(t, err, "key or base url is required")
}

func TestOpenAICompleter_Complete(t *testing.T) {
	var captured struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int64   `json:"max_tokens"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer ollama", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "llama3.1:8b",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "<section>hero</section>"}
			}]
		}`))
	}))
	defer server.Close()

	c, err := NewOpenAICompleter(&Settings{Model: "llama3.1:8b", APIKey: "ollama", BaseURL: server.URL})
	require.NoError(t, err)

	got, err := c.Complete(context.Background(), "Build a hero", IntentSection)
	require.NoError(t, err)

	assert.Equal(t, "<section>hero</section>", got)
	assert.Equal(t, "llama3.1:8b", captured.Model)
	assert.Equal(t, Temperature, captured.Temperature)
	assert.Equal(t, int64(1500), captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "Build a hero", captured.Messages[0].Content)
}

func TestOpenAICompleter_ServerError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"model crashed","type":"server_error"}}`))
	}))
	defer server.Close()

	c, err := NewOpenAICompleter(&Settings{Model: "llama3.1:8b", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "hi", IntentChat)
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "requests are not retried")
}

func TestIntent_MaxTokens(t *testing.T) {
	assert.Equal(t, int64(1000), IntentSuggestion.MaxTokens())
	assert.Equal(t, int64(1500), IntentSection.MaxTokens())
	assert.Equal(t, int64(500), IntentChat.MaxTokens())
}

func TestOfflineCompleter(t *testing.T) {
	ctx := context.Background()

	suggestion, err := OfflineCompleter{}.Complete(ctx, "prompt", IntentSuggestion)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, utf8.RuneCountInString(suggestion), MinSuggestionLength)

	section, err := OfflineCompleter{}.Complete(ctx, "prompt", IntentSection)
	require.NoError(t, err)
	assert.Contains(t, section, "<section")

	reply, err := OfflineCompleter{}.Complete(ctx, "prompt", IntentChat)
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}
