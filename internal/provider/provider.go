// Package provider wraps heterogeneous LLM chat-completion backends behind
// one contract.
//
// Each upstream vendor (DeepSeek, BaiLian, Siliconflow, Volcengine, a generic
// new-api endpoint, Anthropic, Ollama) is exposed as an adapter implementing
// the Provider interface. The Dispatcher holds the single active adapter,
// selected by name from configuration, and supports hot swap without
// restarting the host process.
package provider

import (
	"context"
	"errors"
)

// Message roles understood by every adapter.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged entry of a chat exchange. The system/developer
// instruction comes first, followed by the user's question payload.
type Message struct {
	Role    string
	Content string
}

// Provider is the uniform contract over one vendor's chat-completion call.
//
// Chat sends the ordered message list upstream and returns the model's full
// reply as plain text. A reply with no completion choice yields an empty
// string and a nil error; transport and API failures are returned wrapped.
// Unload releases the underlying client handle and is idempotent; Chat after
// Unload fails with ErrProviderClosed.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
	Unload()
}

var (
	// ErrUnsupportedProvider means the configured provider name matches no
	// known adapter variant.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrNotLoaded means a chat was attempted with no active adapter.
	ErrNotLoaded = errors.New("no provider loaded")

	// ErrProviderClosed means Chat was called on an adapter after Unload.
	ErrProviderClosed = errors.New("provider already unloaded")
)
