// Package llm provides the client abstraction over text-generation
// providers. The gateway only needs plain text back; parsing into bullets
// happens upstream.
package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateText sends a prompt and returns the raw text response.
	GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error)
	// Model returns the configured model name.
	Model() string
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider. A missing API key
// is an immediate error; the transport is never touched without one.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderClaude:
		return NewClaudeClient(config)
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", config.Provider)
	}
}
