package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

const deepseekBaseURL = "https://api.deepseek.com"

// DeepSeekConfig holds the DeepSeek credential and feature flags.
// InternetSearch is reserved for future wiring and not consulted by the
// adapter.
type DeepSeekConfig struct {
	APIKey         string `yaml:"api_key"`
	DeepThinking   bool   `yaml:"deep_thinking"`
	InternetSearch bool   `yaml:"internet_search"`
}

// DeepSeek answers chats through the DeepSeek OpenAI-compatible endpoint.
// The model is a static switch: deep_thinking selects the reasoner model,
// otherwise the standard chat model is used.
type DeepSeek struct {
	core         *openaiChat
	deepThinking bool
}

// NewDeepSeek creates a DeepSeek adapter.
func NewDeepSeek(cfg DeepSeekConfig, logger zerolog.Logger) (*DeepSeek, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepseek API key is required")
	}

	return &DeepSeek{
		core:         newOpenAIChat("deepseek", deepseekBaseURL, cfg.APIKey, logger),
		deepThinking: cfg.DeepThinking,
	}, nil
}

func (p *DeepSeek) Chat(ctx context.Context, messages []Message) (string, error) {
	model := "deepseek-chat"
	if p.deepThinking {
		model = "deepseek-reasoner"
	}
	return p.core.chat(ctx, model, messages)
}

func (p *DeepSeek) Name() string { return "deepseek" }

func (p *DeepSeek) Unload() { p.core.unload() }
