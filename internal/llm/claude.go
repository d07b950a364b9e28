package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// claudeEndpoint is the Anthropic Messages API endpoint.
	claudeEndpoint = "https://api.anthropic.com/v1/messages"
	// claudeAPIVersion is the Anthropic API version header value.
	claudeAPIVersion = "2023-06-01"
	// claudeTimeout bounds a single generation round-trip.
	claudeTimeout = 120 * time.Second
)

// ClaudeClient implements Client against the Anthropic Messages API.
type ClaudeClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// claudeRequest is the Messages API request body.
type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the subset of the Messages API response we consume.
type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewClaudeClient creates a client for the Anthropic Messages API.
func NewClaudeClient(config *Config) (*ClaudeClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = claudeEndpoint
	}

	return &ClaudeClient{
		apiKey:     config.APIKey,
		model:      config.ResolveModel(),
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: claudeTimeout},
	}, nil
}

// GenerateText sends a single-user-message request and returns the text of
// the first content block.
func (c *ClaudeClient) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reqBody, err := json.Marshal(claudeRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", claudeAPIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed claudeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

// Model returns the configured model name.
func (c *ClaudeClient) Model() string {
	return c.model
}

// Close is a no-op; the client holds no persistent resources.
func (c *ClaudeClient) Close() error {
	return nil
}
