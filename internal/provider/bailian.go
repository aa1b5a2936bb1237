package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

const bailianBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// AlibabaConfig holds the BaiLian (Alibaba DashScope) credential and model
// selection.
type AlibabaConfig struct {
	APIKey         string `yaml:"api_key"`
	ModelName      string `yaml:"model_name"`
	InternetSearch bool   `yaml:"internet_search"`
}

// BaiLian answers chats through Alibaba's DashScope compatible-mode endpoint.
type BaiLian struct {
	core  *openaiChat
	model string
}

// NewBaiLian creates a BaiLian adapter.
func NewBaiLian(cfg AlibabaConfig, logger zerolog.Logger) (*BaiLian, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("bailian API key is required")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("bailian model name is required")
	}

	return &BaiLian{
		core:  newOpenAIChat("alibaba", bailianBaseURL, cfg.APIKey, logger),
		model: cfg.ModelName,
	}, nil
}

func (p *BaiLian) Chat(ctx context.Context, messages []Message) (string, error) {
	return p.core.chat(ctx, p.model, messages)
}

func (p *BaiLian) Name() string { return "alibaba" }

func (p *BaiLian) Unload() { p.core.unload() }
