package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// ConfigSource returns the current AI configuration. The Dispatcher calls it
// on every Load, so a config change followed by a reload takes effect without
// restarting the process.
type ConfigSource func() (*Config, error)

// Dispatcher holds the single active adapter and forwards chat requests to
// it. It cycles between two states: Unloaded (no adapter, Chat fails with
// ErrNotLoaded) and Loaded. Load and Unload are lifecycle operations invoked
// from service start/stop; they are not synchronized against in-flight Chat
// calls.
type Dispatcher struct {
	source ConfigSource
	logger zerolog.Logger
	active Provider

	// newProvider is the adapter factory, swappable in tests.
	newProvider func(*Config, zerolog.Logger) (Provider, error)
}

// NewDispatcher creates a Dispatcher in the Unloaded state.
func NewDispatcher(source ConfigSource, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		source:      source,
		logger:      logger,
		newProvider: New,
	}
}

// Load reads the AI configuration, constructs the adapter it names and makes
// it active. Any previously active adapter is unloaded first, so a repeated
// Load swaps providers without leaking the old client handle. The previous
// adapter stays active if construction of the new one fails.
func (d *Dispatcher) Load() error {
	cfg, err := d.source()
	if err != nil {
		return fmt.Errorf("read ai config: %w", err)
	}

	next, err := d.newProvider(cfg, d.logger)
	if err != nil {
		return err
	}

	d.Unload()
	d.active = next

	d.logger.Info().
		Str("provider", next.Name()).
		Msg("Provider loaded")

	return nil
}

// Chat delegates to the active adapter.
func (d *Dispatcher) Chat(ctx context.Context, messages []Message) (string, error) {
	if d.active == nil {
		return "", ErrNotLoaded
	}
	return d.active.Chat(ctx, messages)
}

// Unload tears down the active adapter and returns to the Unloaded state.
// No-op if nothing is loaded.
func (d *Dispatcher) Unload() {
	if d.active == nil {
		return
	}

	name := d.active.Name()
	d.active.Unload()
	d.active = nil

	d.logger.Info().
		Str("provider", name).
		Msg("Provider unloaded")
}

// Loaded reports whether an adapter is active.
func (d *Dispatcher) Loaded() bool {
	return d.active != nil
}

// ActiveName returns the active adapter's name, or an empty string when
// Unloaded.
func (d *Dispatcher) ActiveName() string {
	if d.active == nil {
		return ""
	}
	return d.active.Name()
}
