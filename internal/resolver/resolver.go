// Package resolver orchestrates the answer-resolution pipeline: cache-first
// lookup, per-type prompt construction, provider invocation, strict reply
// parsing and insert-if-absent persistence.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/quizd/quizd/internal/cache"
	"github.com/quizd/quizd/internal/provider"
)

// Question is one inbound resolution request, already shape-validated by the
// transport layer.
type Question struct {
	Title   string
	Type    string
	Options string
}

// Result is the uniform response envelope surfaced to the transport layer.
type Result struct {
	Status int    `json:"status"`
	Answer string `json:"answer"`
	Msg    string `json:"msg"`
}

// Envelope status codes.
const (
	StatusSuccess = 1
	StatusFailure = 0
)

const (
	msgSuccess     = "答题成功"
	msgParseFailed = "AI parsing failed"
)

// ChatClient is the dispatcher-side dependency: one chat-completion round
// trip to the active provider.
type ChatClient interface {
	Chat(ctx context.Context, messages []provider.Message) (string, error)
}

// Store is the cache-side dependency.
type Store interface {
	Lookup(question string) (*cache.Entry, bool, error)
	Save(question, answer, qtype string) error
}

// Resolver turns questions into answers, via cache or provider.
type Resolver struct {
	chat   ChatClient
	store  Store
	logger zerolog.Logger
	group  singleflight.Group
}

// New creates a Resolver.
func New(chat ChatClient, store Store, logger zerolog.Logger) *Resolver {
	return &Resolver{
		chat:   chat,
		store:  store,
		logger: logger,
	}
}

// Resolve answers one question. A cache hit on the exact title returns the
// stored answer without touching the provider, even when the requested type
// differs from the stored one (type is not part of the key). Any failure
// past the cache miss is contained here and collapsed into a failure
// envelope; no error escapes to the transport layer.
func (r *Resolver) Resolve(ctx context.Context, q Question) Result {
	entry, found, err := r.store.Lookup(q.Title)
	if err != nil {
		// A broken lookup degrades to a miss; the provider path below can
		// still answer the question.
		r.logger.Error().Err(err).Str("title", q.Title).Msg("Cache lookup failed")
	}
	if found {
		r.logger.Debug().
			Str("title", q.Title).
			Str("type", q.Type).
			Msg("Cache hit")
		return Result{Status: StatusSuccess, Answer: entry.Answer, Msg: msgSuccess}
	}

	// Concurrent identical questions join one in-flight upstream call
	// instead of each paying for its own.
	answer, err, _ := r.group.Do(q.Title, func() (interface{}, error) {
		return r.resolveUpstream(ctx, q)
	})
	if err != nil {
		r.logger.Warn().Err(err).
			Str("title", q.Title).
			Str("type", q.Type).
			Msg("Resolution failed")
		return Result{Status: StatusFailure, Answer: "", Msg: msgParseFailed}
	}

	return Result{Status: StatusSuccess, Answer: answer.(string), Msg: msgSuccess}
}

// resolveUpstream runs the cache-miss path: prompt, provider call, strict
// parse, persist.
func (r *Resolver) resolveUpstream(ctx context.Context, q Question) (string, error) {
	raw, err := r.chat.Chat(ctx, buildMessages(q))
	if err != nil {
		return "", fmt.Errorf("provider chat: %w", err)
	}

	answer, err := parseAnswer(raw)
	if err != nil {
		r.logger.Warn().
			Str("title", q.Title).
			Str("raw", raw).
			Msg("Unparseable provider reply")
		return "", err
	}

	if err := r.store.Save(q.Title, answer, q.Type); err != nil {
		return "", fmt.Errorf("persist answer: %w", err)
	}

	return answer, nil
}

// parseAnswer decodes the provider reply strictly: it must be a JSON object
// whose answer field is present and a string. Structural shape alone is not
// trusted.
func parseAnswer(raw string) (string, error) {
	var payload struct {
		Answer *string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", fmt.Errorf("decode provider reply: %w", err)
	}
	if payload.Answer == nil {
		return "", fmt.Errorf("provider reply has no answer field")
	}
	return *payload.Answer, nil
}
