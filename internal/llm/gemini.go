package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/healthlens/healthlens/internal/common"
)

// geminiClient implements the Client interface over the Gemini API.
type geminiClient struct {
	client      *genai.Client
	limiter     *rateLimiter
	model       string
	temperature float32
	maxTokens   int32
}

// newGeminiClient creates a new Gemini API client. Misconfiguration is a
// construction-time failure; per-request failures are the caller's
// fallback chain to handle.
func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is required", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 8192
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:      client,
		limiter:     newRateLimiter(cfg.RateLimit),
		model:       model,
		temperature: float32(temperature),
		maxTokens:   int32(maxTokens),
	}, nil
}

// Generate sends one prompt to the configured Gemini model.
func (c *geminiClient) Generate(ctx context.Context, prompt string) (Response, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return Response{}, err
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxTokens,
	})
	if err != nil {
		return Response{}, fmt.Errorf("gemini generate failed: %w", err)
	}

	// Prefer the flattened text; fall back to raw candidate parts when the
	// SDK cannot assemble one, and finally to the stringified result.
	if text := result.Text(); text != "" {
		return Direct(text), nil
	}

	var parts []string
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				parts = append(parts, part.Text)
			}
		}
	}
	if len(parts) > 0 {
		return Fragments(parts), nil
	}

	return Opaque(result), common.ErrEmptyResponse
}
