package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewClient creates a client for the configured provider. The context is
// used only during construction; request lifetimes are governed by the
// context passed to Generate.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		return newGeminiClient(ctx, cfg)
	case "openai":
		return newOpenAIClient(cfg)
	case "mock":
		return newOfflineMock(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
