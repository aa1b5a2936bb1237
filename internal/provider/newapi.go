package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// NewAPIConfig holds the credential, endpoint and model selection for a
// self-hosted OpenAI-compatible relay (new-api, one-api and friends). Unlike
// the fixed vendors, the base URL comes from configuration.
type NewAPIConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	ModelName      string `yaml:"model_name"`
	InternetSearch bool   `yaml:"internet_search"`
}

// NewAPI answers chats through a user-configured OpenAI-compatible endpoint.
type NewAPI struct {
	core  *openaiChat
	model string
}

// NewNewAPI creates an adapter for a generic OpenAI-compatible endpoint.
// The /v1 path segment is appended to the configured base URL.
func NewNewAPI(cfg NewAPIConfig, logger zerolog.Logger) (*NewAPI, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("newapi base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("newapi API key is required")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("newapi model name is required")
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/") + "/v1"

	return &NewAPI{
		core:  newOpenAIChat("newapi", baseURL, cfg.APIKey, logger),
		model: cfg.ModelName,
	}, nil
}

func (p *NewAPI) Chat(ctx context.Context, messages []Message) (string, error) {
	return p.core.chat(ctx, p.model, messages)
}

func (p *NewAPI) Name() string { return "newapi" }

func (p *NewAPI) Unload() { p.core.unload() }
