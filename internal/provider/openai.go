package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
)

// openaiChat is the shared core behind every OpenAI-compatible adapter
// variant. The variants differ only in base URL, model selection rule, and
// credential shape, so the actual completion call lives here.
type openaiChat struct {
	name   string
	client *openai.Client
	logger zerolog.Logger
}

func newOpenAIChat(name, baseURL, apiKey string, logger zerolog.Logger) *openaiChat {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)

	return &openaiChat{
		name:   name,
		client: &client,
		logger: logger,
	}
}

// chat sends the message list upstream and returns the first completion
// choice's text. A reply with no choices returns an empty string, not an
// error; callers must not assume a non-empty result.
func (c *openaiChat) chat(ctx context.Context, model string, messages []Message) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("%s: %w", c.name, ErrProviderClosed)
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: toOpenAIMessages(messages),
		Model:    openai.ChatModel(model),
	})
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", c.name, err)
	}

	if len(completion.Choices) == 0 {
		c.logger.Warn().
			Str("provider", c.name).
			Str("model", model).
			Msg("Upstream returned no completion choices")
		return "", nil
	}

	reply := completion.Choices[0].Message.Content

	c.logger.Debug().
		Str("provider", c.name).
		Str("model", model).
		Int("reply_len", len(reply)).
		Msg("Chat completion finished")

	return reply, nil
}

// unload drops the client handle. Idempotent.
func (c *openaiChat) unload() {
	c.client = nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}
