// Package llm provides the AI generation collaborator: a provider-agnostic
// client interface plus Gemini and OpenAI-compatible implementations.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for generative model providers.
type Client interface {
	Generate(ctx context.Context, prompt string) (Response, error)
}

// Config holds configuration for constructing a client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	RateLimit   int
	MaxRetries  int
	RetryDelay  time.Duration
}
