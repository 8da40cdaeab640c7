package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithTopP(topP float64) Option {
	return func(o *Options) {
		o.TopP = topP
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any LLM backend.
type Provider interface {
	// Chat sends a chat history to the model and returns the full response.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// ChatStream sends a chat history and returns a channel of text fragments
	// as they arrive. The channel is closed at end-of-stream; a mid-stream
	// provider failure closes it early (partial output, no retry). An error is
	// returned only when the stream fails to start. The producer stops when
	// ctx is cancelled.
	ChatStream(ctx context.Context, history []Message, options ...Option) (<-chan string, error)
}

// BuildOptions folds option funcs over the given defaults.
func BuildOptions(defaults Options, opts []Option) *Options {
	options := defaults
	for _, opt := range opts {
		opt(&options)
	}
	return &options
}
