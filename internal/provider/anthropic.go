package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
)

// AnthropicConfig holds the Anthropic credential and model selection.
type AnthropicConfig struct {
	APIKey    string `yaml:"api_key"`
	ModelName string `yaml:"model_name"`
}

// Anthropic answers chats through the native Anthropic Messages API. System
// messages are lifted into the request's system field, which is where the
// Messages API expects them.
type Anthropic struct {
	client *anthropic.Client
	model  string
	logger zerolog.Logger
}

// NewAnthropic creates an Anthropic adapter.
func NewAnthropic(cfg AnthropicConfig, logger zerolog.Logger) (*Anthropic, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	model := cfg.ModelName
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_5_20250929)
	}

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
	)

	return &Anthropic{
		client: &client,
		model:  model,
		logger: logger,
	}, nil
}

func (p *Anthropic) Chat(ctx context.Context, messages []Message) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("anthropic: %w", ErrProviderClosed)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 1024,
	}

	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{
				Text: m.Content,
				Type: "text",
			})
		default:
			params.Messages = append(params.Messages,
				anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic chat completion: %w", err)
	}

	if len(message.Content) == 0 {
		p.logger.Warn().
			Str("provider", "anthropic").
			Str("model", p.model).
			Msg("Upstream returned no content blocks")
		return "", nil
	}

	var reply strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			reply.WriteString(block.Text)
		}
	}

	p.logger.Debug().
		Str("provider", "anthropic").
		Str("model", string(message.Model)).
		Str("stop_reason", string(message.StopReason)).
		Msg("Chat completion finished")

	return reply.String(), nil
}

func (p *Anthropic) Name() string { return "anthropic" }

func (p *Anthropic) Unload() { p.client = nil }
