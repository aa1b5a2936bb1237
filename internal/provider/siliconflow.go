package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

const siliconflowBaseURL = "https://api.siliconflow.cn/v1"

// SiliconflowConfig holds the Siliconflow credential and model selection.
type SiliconflowConfig struct {
	APIKey         string `yaml:"api_key"`
	ModelName      string `yaml:"model_name"`
	InternetSearch bool   `yaml:"internet_search"`
}

// Siliconflow answers chats through the Siliconflow OpenAI-compatible
// endpoint.
type Siliconflow struct {
	core  *openaiChat
	model string
}

// NewSiliconflow creates a Siliconflow adapter.
func NewSiliconflow(cfg SiliconflowConfig, logger zerolog.Logger) (*Siliconflow, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("siliconflow API key is required")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("siliconflow model name is required")
	}

	return &Siliconflow{
		core:  newOpenAIChat("siliconflow", siliconflowBaseURL, cfg.APIKey, logger),
		model: cfg.ModelName,
	}, nil
}

func (p *Siliconflow) Chat(ctx context.Context, messages []Message) (string, error) {
	return p.core.chat(ctx, p.model, messages)
}

func (p *Siliconflow) Name() string { return "siliconflow" }

func (p *Siliconflow) Unload() { p.core.unload() }
