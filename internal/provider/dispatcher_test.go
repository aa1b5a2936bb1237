package provider

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// stubProvider counts chats and records unloads, without any upstream call.
type stubProvider struct {
	name      string
	reply     string
	chatCount int
	unloaded  bool
}

func (s *stubProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	s.chatCount++
	return s.reply, nil
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Unload() { s.unloaded = true }

func staticSource(cfg *Config) ConfigSource {
	return func() (*Config, error) { return cfg, nil }
}

func TestDispatcher_ChatBeforeLoad(t *testing.T) {
	d := NewDispatcher(staticSource(&Config{Provider: "deepseek"}), testLogger())

	_, err := d.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Expected ErrNotLoaded before Load, got %v", err)
	}

	if d.Loaded() {
		t.Error("Dispatcher should start Unloaded")
	}

	if d.ActiveName() != "" {
		t.Errorf("Expected empty active name, got %q", d.ActiveName())
	}
}

func TestDispatcher_LoadUnsupportedProvider(t *testing.T) {
	d := NewDispatcher(staticSource(&Config{Provider: "skynet"}), testLogger())

	err := d.Load()
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Fatalf("Expected ErrUnsupportedProvider, got %v", err)
	}

	if d.Loaded() {
		t.Error("Failed Load must leave the dispatcher Unloaded")
	}
}

func TestDispatcher_LoadConfigSourceError(t *testing.T) {
	sourceErr := errors.New("config file corrupted")
	d := NewDispatcher(func() (*Config, error) { return nil, sourceErr }, testLogger())

	err := d.Load()
	if !errors.Is(err, sourceErr) {
		t.Fatalf("Expected wrapped config source error, got %v", err)
	}
}

func TestDispatcher_ProviderSwap(t *testing.T) {
	providerA := &stubProvider{name: "provider-a", reply: "from A"}
	providerB := &stubProvider{name: "provider-b", reply: "from B"}

	cfg := &Config{Provider: "provider-a"}
	d := NewDispatcher(staticSource(cfg), testLogger())
	d.newProvider = func(c *Config, _ zerolog.Logger) (Provider, error) {
		switch c.Provider {
		case "provider-a":
			return providerA, nil
		case "provider-b":
			return providerB, nil
		}
		return nil, ErrUnsupportedProvider
	}

	if err := d.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	reply, err := d.Chat(context.Background(), []Message{{Role: RoleUser, Content: "q"}})
	if err != nil {
		t.Fatalf("Chat() failed: %v", err)
	}
	if reply != "from A" {
		t.Errorf("Expected reply from A, got %q", reply)
	}

	d.Unload()
	if !providerA.unloaded {
		t.Error("Unload must tear down the active adapter")
	}

	_, err = d.Chat(context.Background(), []Message{{Role: RoleUser, Content: "q"}})
	if !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Expected ErrNotLoaded after Unload, got %v", err)
	}

	cfg.Provider = "provider-b"
	if err := d.Load(); err != nil {
		t.Fatalf("Load() of provider B failed: %v", err)
	}

	reply, err = d.Chat(context.Background(), []Message{{Role: RoleUser, Content: "q"}})
	if err != nil {
		t.Fatalf("Chat() after swap failed: %v", err)
	}
	if reply != "from B" {
		t.Errorf("Expected reply from B, got %q", reply)
	}

	if providerA.chatCount != 1 {
		t.Errorf("Provider A should have 1 chat, got %d", providerA.chatCount)
	}
	if providerB.chatCount != 1 {
		t.Errorf("Provider B should have 1 chat, got %d", providerB.chatCount)
	}
}

func TestDispatcher_RepeatedLoadUnloadsPrevious(t *testing.T) {
	providerA := &stubProvider{name: "provider-a"}
	providerB := &stubProvider{name: "provider-b"}
	next := providerA

	d := NewDispatcher(staticSource(&Config{Provider: "any"}), testLogger())
	d.newProvider = func(*Config, zerolog.Logger) (Provider, error) {
		p := next
		next = providerB
		return p, nil
	}

	if err := d.Load(); err != nil {
		t.Fatalf("First Load() failed: %v", err)
	}
	if err := d.Load(); err != nil {
		t.Fatalf("Second Load() failed: %v", err)
	}

	if !providerA.unloaded {
		t.Error("Repeated Load must unload the previous adapter")
	}
	if d.ActiveName() != "provider-b" {
		t.Errorf("Expected provider-b active, got %q", d.ActiveName())
	}
}

func TestDispatcher_UnloadIdempotent(t *testing.T) {
	d := NewDispatcher(staticSource(&Config{Provider: "deepseek"}), testLogger())

	// No-op when already Unloaded.
	d.Unload()
	d.Unload()

	if d.Loaded() {
		t.Error("Dispatcher should remain Unloaded")
	}
}

func TestDispatcher_FailedLoadKeepsPrevious(t *testing.T) {
	providerA := &stubProvider{name: "provider-a", reply: "from A"}
	cfg := &Config{Provider: "provider-a"}

	d := NewDispatcher(staticSource(cfg), testLogger())
	d.newProvider = func(c *Config, _ zerolog.Logger) (Provider, error) {
		if c.Provider == "provider-a" {
			return providerA, nil
		}
		return nil, ErrUnsupportedProvider
	}

	if err := d.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	cfg.Provider = "bogus"
	if err := d.Load(); !errors.Is(err, ErrUnsupportedProvider) {
		t.Fatalf("Expected ErrUnsupportedProvider, got %v", err)
	}

	if providerA.unloaded {
		t.Error("Failed Load must not tear down the active adapter")
	}
	if d.ActiveName() != "provider-a" {
		t.Errorf("Expected provider-a still active, got %q", d.ActiveName())
	}
}
