package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChat_AfterUnload(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) Provider
	}{
		{
			name: "deepseek",
			build: func(t *testing.T) Provider {
				p, err := NewDeepSeek(DeepSeekConfig{APIKey: "sk-test"}, testLogger())
				if err != nil {
					t.Fatalf("NewDeepSeek failed: %v", err)
				}
				return p
			},
		},
		{
			name: "newapi",
			build: func(t *testing.T) Provider {
				p, err := NewNewAPI(NewAPIConfig{BaseURL: "http://localhost:3000", APIKey: "sk-test", ModelName: "gpt-4o-mini"}, testLogger())
				if err != nil {
					t.Fatalf("NewNewAPI failed: %v", err)
				}
				return p
			},
		},
		{
			name: "anthropic",
			build: func(t *testing.T) Provider {
				p, err := NewAnthropic(AnthropicConfig{APIKey: "sk-ant-test"}, testLogger())
				if err != nil {
					t.Fatalf("NewAnthropic failed: %v", err)
				}
				return p
			},
		},
		{
			name: "ollama",
			build: func(t *testing.T) Provider {
				p, err := NewOllama(OllamaConfig{ModelName: "qwen2.5:7b"}, testLogger())
				if err != nil {
					t.Fatalf("NewOllama failed: %v", err)
				}
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.build(t)
			p.Unload()

			_, err := p.Chat(context.Background(), []Message{{Role: RoleUser, Content: "1+1=?"}})
			if !errors.Is(err, ErrProviderClosed) {
				t.Fatalf("Chat after Unload: expected ErrProviderClosed, got %v", err)
			}
		})
	}
}

func TestChat_NoChoicesReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	p, err := NewNewAPI(NewAPIConfig{BaseURL: srv.URL, APIKey: "sk-test", ModelName: "gpt-4o-mini"}, testLogger())
	if err != nil {
		t.Fatalf("NewNewAPI failed: %v", err)
	}
	defer p.Unload()

	reply, err := p.Chat(context.Background(), []Message{{Role: RoleUser, Content: "1+1=?"}})
	if err != nil {
		t.Fatalf("Chat with empty choices must not fail: %v", err)
	}
	if reply != "" {
		t.Errorf("Expected empty reply on no-choice response, got %q", reply)
	}
}
