package llm

// Provider represents an LLM provider.
type Provider string

// Supported providers.
const (
	// ProviderClaude is the Anthropic provider, the default.
	ProviderClaude Provider = "claude"
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Default models per provider.
const (
	// DefaultClaudeModel is the model used when none is configured.
	DefaultClaudeModel = "claude-sonnet-4-20250514"
	// DefaultGeminiModel is the model used when none is configured.
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Config holds the provider selection and credentials for the client.
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	// Endpoint overrides the provider endpoint. Only honored by the Claude
	// provider; used by tests.
	Endpoint string
}

// DefaultConfig returns the default configuration (Claude, default model,
// no credential).
func DefaultConfig() *Config {
	return &Config{Provider: ProviderClaude}
}

// ResolveModel returns the configured model or the provider default.
func (c *Config) ResolveModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderGemini:
		return DefaultGeminiModel
	default:
		return DefaultClaudeModel
	}
}
