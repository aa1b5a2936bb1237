package provider

import (
	"errors"
	"testing"
)

func TestNew_AllKnownVariants(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "deepseek",
			cfg:  Config{Provider: "deepseek", DeepSeek: DeepSeekConfig{APIKey: "sk-test"}},
		},
		{
			name: "alibaba",
			cfg:  Config{Provider: "alibaba", Alibaba: AlibabaConfig{APIKey: "sk-test", ModelName: "qwen-max"}},
		},
		{
			name: "siliconflow",
			cfg:  Config{Provider: "siliconflow", Siliconflow: SiliconflowConfig{APIKey: "sk-test", ModelName: "deepseek-ai/DeepSeek-V3"}},
		},
		{
			name: "volcengine",
			cfg:  Config{Provider: "volcengine", Volcengine: VolcengineConfig{APIKey: "sk-test", ModelName: "doubao-pro-32k"}},
		},
		{
			name: "newapi",
			cfg:  Config{Provider: "newapi", NewAPI: NewAPIConfig{BaseURL: "http://localhost:3000", APIKey: "sk-test", ModelName: "gpt-4o-mini"}},
		},
		{
			name: "anthropic",
			cfg:  Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-ant-test"}},
		},
		{
			name: "ollama",
			cfg:  Config{Provider: "ollama", Ollama: OllamaConfig{ModelName: "qwen2.5:7b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(&tt.cfg, testLogger())
			if err != nil {
				t.Fatalf("New(%s) failed: %v", tt.name, err)
			}
			if p.Name() != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, p.Name())
			}

			// Unload twice: must be idempotent.
			p.Unload()
			p.Unload()
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(&Config{Provider: "skynet"}, testLogger())
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Fatalf("Expected ErrUnsupportedProvider, got %v", err)
	}
}

func TestNew_MissingCredential(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "deepseek", cfg: Config{Provider: "deepseek"}},
		{name: "alibaba no key", cfg: Config{Provider: "alibaba", Alibaba: AlibabaConfig{ModelName: "qwen-max"}}},
		{name: "alibaba no model", cfg: Config{Provider: "alibaba", Alibaba: AlibabaConfig{APIKey: "sk-test"}}},
		{name: "newapi no base url", cfg: Config{Provider: "newapi", NewAPI: NewAPIConfig{APIKey: "sk-test", ModelName: "m"}}},
		{name: "ollama no model", cfg: Config{Provider: "ollama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(&tt.cfg, testLogger()); err == nil {
				t.Error("Expected constructor error for incomplete config")
			}
		})
	}
}
