// Package testing provides test utilities, mocks, and fixtures for testing
// quizd components.
package testing

import (
	"context"

	"github.com/quizd/quizd/internal/cache"
	"github.com/quizd/quizd/internal/provider"
)

// MockProvider is a mock implementation of provider.Provider for testing
// without making real API calls.
type MockProvider struct {
	// ChatFunc is called when Chat() is invoked. If nil, Reply is returned.
	ChatFunc func(ctx context.Context, messages []provider.Message) (string, error)

	// Reply is the canned reply returned when ChatFunc is nil.
	Reply string

	// ProviderName is the name to return from Name(). Defaults to "mock".
	ProviderName string

	// CallCount tracks how many times Chat was called.
	CallCount int

	// LastMessages stores the message list from the most recent Chat call.
	LastMessages []provider.Message

	// Unloaded reports whether Unload was called.
	Unloaded bool
}

// Chat implements provider.Provider.Chat.
func (m *MockProvider) Chat(ctx context.Context, messages []provider.Message) (string, error) {
	m.CallCount++
	m.LastMessages = messages

	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, messages)
	}
	return m.Reply, nil
}

// Name implements provider.Provider.Name.
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Unload implements provider.Provider.Unload.
func (m *MockProvider) Unload() {
	m.Unloaded = true
}

// MockStore is an in-memory implementation of the resolver's Store
// dependency. It mirrors the cache's insert-if-absent policy.
type MockStore struct {
	// Entries maps question text to its stored entry.
	Entries map[string]cache.Entry

	// LookupErr and SaveErr force the corresponding call to fail.
	LookupErr error
	SaveErr   error

	// SaveCount tracks how many times Save was called, no-ops included.
	SaveCount int

	nextID int64
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{Entries: make(map[string]cache.Entry)}
}

// Lookup implements resolver.Store.Lookup.
func (m *MockStore) Lookup(question string) (*cache.Entry, bool, error) {
	if m.LookupErr != nil {
		return nil, false, m.LookupErr
	}
	e, ok := m.Entries[question]
	if !ok {
		return nil, false, nil
	}
	return &e, true, nil
}

// Save implements resolver.Store.Save with insert-if-absent semantics.
func (m *MockStore) Save(question, answer, qtype string) error {
	m.SaveCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if _, ok := m.Entries[question]; ok {
		return nil
	}
	m.nextID++
	m.Entries[question] = cache.Entry{
		ID:       m.nextID,
		Question: question,
		Answer:   answer,
		Type:     qtype,
	}
	return nil
}
