package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultMistralBaseURL = "https://api.mistral.ai/v1"

// ErrMissingAPIKey is returned when a Mistral client is constructed
// without a credential. This is a startup condition, not a per-request
// one: no client exists until a key does.
var ErrMissingAPIKey = errors.New("mistral api key not configured")

// Mistral talks to the Mistral chat completion API, which speaks the
// OpenAI wire format. The underlying client is stateless per request, so
// one Mistral value serves concurrent callers.
type Mistral struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewMistral(apiKey string, baseURL string, model string, timeout time.Duration) (*Mistral, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = defaultMistralBaseURL
	}
	if model == "" {
		model = "mistral-large-latest"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Mistral{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}, nil
}

func (m *Mistral) Name() string { return "mistral" }

func (m *Mistral) Model() string { return m.model }

func (m *Mistral) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
