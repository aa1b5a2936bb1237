package provider

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config is the AI section of the service configuration: the name of the
// active provider plus one credential/model bag per variant. The Dispatcher
// hands each adapter only its own bag, never the whole tree.
type Config struct {
	Provider    string            `yaml:"provider"`
	DeepSeek    DeepSeekConfig    `yaml:"deepseek"`
	Alibaba     AlibabaConfig     `yaml:"alibaba"`
	Siliconflow SiliconflowConfig `yaml:"siliconflow"`
	Volcengine  VolcengineConfig  `yaml:"volcengine"`
	NewAPI      NewAPIConfig      `yaml:"newapi"`
	Anthropic   AnthropicConfig   `yaml:"anthropic"`
	Ollama      OllamaConfig      `yaml:"ollama"`
}

// New constructs the adapter named by cfg.Provider. This is the single
// source of truth for adapter creation; an unknown name fails with
// ErrUnsupportedProvider.
func New(cfg *Config, logger zerolog.Logger) (Provider, error) {
	switch cfg.Provider {
	case "deepseek":
		return NewDeepSeek(cfg.DeepSeek, logger)

	case "alibaba":
		return NewBaiLian(cfg.Alibaba, logger)

	case "siliconflow":
		return NewSiliconflow(cfg.Siliconflow, logger)

	case "volcengine":
		return NewVolcengine(cfg.Volcengine, logger)

	case "newapi":
		return NewNewAPI(cfg.NewAPI, logger)

	case "anthropic":
		return NewAnthropic(cfg.Anthropic, logger)

	case "ollama":
		return NewOllama(cfg.Ollama, logger)

	default:
		return nil, fmt.Errorf("%w: %s (supported: deepseek, alibaba, siliconflow, volcengine, newapi, anthropic, ollama)",
			ErrUnsupportedProvider, cfg.Provider)
	}
}
