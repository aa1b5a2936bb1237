package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"
)

// OllamaConfig holds the local Ollama endpoint and model selection. Ollama
// requires no credential.
type OllamaConfig struct {
	BaseURL   string `yaml:"base_url"`
	ModelName string `yaml:"model_name"`
}

// Ollama answers chats through a local Ollama server, so questions never
// leave the machine.
type Ollama struct {
	client *api.Client
	model  string
	logger zerolog.Logger
}

// NewOllama creates an Ollama adapter.
func NewOllama(cfg OllamaConfig, logger zerolog.Logger) (*Ollama, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434" // Default Ollama URL
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("ollama model name is required")
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama URL: %w", err)
	}

	return &Ollama{
		client: api.NewClient(parsedURL, http.DefaultClient),
		model:  cfg.ModelName,
		logger: logger,
	}, nil
}

func (p *Ollama) Chat(ctx context.Context, messages []Message) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("ollama: %w", ErrProviderClosed)
	}

	chatMessages := make([]api.Message, 0, len(messages))
	for _, m := range messages {
		chatMessages = append(chatMessages, api.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	stream := false
	var reply strings.Builder
	err := p.client.Chat(ctx, &api.ChatRequest{
		Model:    p.model,
		Messages: chatMessages,
		Stream:   &stream,
	}, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat completion: %w", err)
	}

	p.logger.Debug().
		Str("provider", "ollama").
		Str("model", p.model).
		Int("reply_len", reply.Len()).
		Msg("Chat completion finished")

	return reply.String(), nil
}

func (p *Ollama) Name() string { return "ollama" }

func (p *Ollama) Unload() { p.client = nil }
