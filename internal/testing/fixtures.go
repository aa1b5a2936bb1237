package testing

import "github.com/quizd/quizd/internal/provider"

// SampleConfig selects a DeepSeek provider with a plausible credential.
var SampleConfig = provider.Config{
	Provider: "deepseek",
	DeepSeek: provider.DeepSeekConfig{
		APIKey: "sk-test-key-123456789",
	},
}

// Canned provider replies used in resolver tests.
const (
	// SampleReply is a well-formed provider reply.
	SampleReply = `{"answer":"4"}`

	// SampleMultiReply joins two selected options with the # delimiter.
	SampleMultiReply = `{"answer":"光合作用#呼吸作用"}`

	// MalformedReply is not JSON at all.
	MalformedReply = `not-json`

	// WrongShapeReply is valid JSON without the answer field.
	WrongShapeReply = `{"result":"4"}`
)
