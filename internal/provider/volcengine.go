package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

const volcengineBaseURL = "https://ark.cn-beijing.volces.com/api/v3/"

// VolcengineConfig holds the Volcengine Ark credential and model selection.
type VolcengineConfig struct {
	APIKey         string `yaml:"api_key"`
	ModelName      string `yaml:"model_name"`
	InternetSearch bool   `yaml:"internet_search"`
}

// Volcengine answers chats through the Volcengine Ark OpenAI-compatible
// endpoint.
type Volcengine struct {
	core  *openaiChat
	model string
}

// NewVolcengine creates a Volcengine adapter.
func NewVolcengine(cfg VolcengineConfig, logger zerolog.Logger) (*Volcengine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("volcengine API key is required")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("volcengine model name is required")
	}

	return &Volcengine{
		core:  newOpenAIChat("volcengine", volcengineBaseURL, cfg.APIKey, logger),
		model: cfg.ModelName,
	}, nil
}

func (p *Volcengine) Chat(ctx context.Context, messages []Message) (string, error) {
	return p.core.chat(ctx, p.model, messages)
}

func (p *Volcengine) Name() string { return "volcengine" }

func (p *Volcengine) Unload() { p.core.unload() }
