package analysis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/healthlens/healthlens/internal/common"
	"github.com/healthlens/healthlens/internal/llm"
	"github.com/healthlens/healthlens/internal/model"
)

var errNoClient = errors.New("no model client configured")

// minUsableText is the minimum extracted-text length considered a real
// report. Shorter inputs, along with error-prefixed strings from legacy
// extractors, go straight to the fallback dataset without a model call.
const minUsableText = 50

// Engine drives one full analysis cycle per report. It is constructed once
// per process with injected collaborator handles and is safe for
// concurrent use.
type Engine struct {
	primary llm.Client
	backup  llm.Client
	prompts *PromptBuilder
	parser  *Parser
	logger  *slog.Logger
}

// NewEngine creates an analysis engine. The backup client may be nil, in
// which case the primary's failure goes directly to the fallback dataset.
func NewEngine(primary, backup llm.Client, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	prompts, err := NewPromptBuilder()
	if err != nil {
		return nil, err
	}

	return &Engine{
		primary: primary,
		backup:  backup,
		prompts: prompts,
		parser:  NewParser(logger),
		logger:  logger,
	}, nil
}

// Analyze runs the full pipeline on extracted report text and always
// returns a usable result: real parsed data, partial data, or the fixed
// fallback dataset. It never returns an error; degraded outcomes are
// logged instead, because a labeled fallback report is worth more to the
// end user than a hard failure.
func (e *Engine) Analyze(ctx context.Context, text string) model.AnalysisResult {
	text = strings.TrimSpace(text)
	if len(text) < minUsableText || strings.HasPrefix(text, "Error") {
		e.logger.Warn("No usable report text, returning fallback dataset", "text_length", len(text))
		return FallbackResult()
	}

	interpretationPrompt, err := e.prompts.InterpretationPrompt(text)
	if err != nil {
		e.logger.Error("Failed to build interpretation prompt", "error", err)
		return FallbackResult()
	}
	extractionPrompt, err := e.prompts.ExtractionPrompt(text)
	if err != nil {
		e.logger.Error("Failed to build extraction prompt", "error", err)
		return FallbackResult()
	}

	narrative, extraction, err := e.generatePair(ctx, e.primary, interpretationPrompt, extractionPrompt)
	if err != nil {
		e.logger.Warn("Primary model failed, trying backup", "error", err)
		if e.backup == nil {
			e.logger.Error("No backup model configured, returning fallback dataset")
			return FallbackResult()
		}
		narrative, extraction, err = e.generatePair(ctx, e.backup, interpretationPrompt, extractionPrompt)
		if err != nil {
			e.logger.Error("Backup model failed, returning fallback dataset", "error", err)
			return FallbackResult()
		}
	}

	return e.parser.Parse(narrative, extraction)
}

// generatePair issues the interpretation and extraction prompts against
// one client. The two calls are independent, so they run concurrently and
// join before parsing. An empty response counts as a failure: the tier
// only succeeds when both texts come back.
func (e *Engine) generatePair(ctx context.Context, client llm.Client, interpretationPrompt, extractionPrompt string) (narrative, extraction string, err error) {
	if client == nil {
		return "", "", errNoClient
	}

	var wg sync.WaitGroup
	var narrativeErr, extractionErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		narrative, narrativeErr = e.generate(ctx, client, interpretationPrompt)
	}()
	go func() {
		defer wg.Done()
		extraction, extractionErr = e.generate(ctx, client, extractionPrompt)
	}()
	wg.Wait()

	if narrativeErr != nil {
		return "", "", narrativeErr
	}
	if extractionErr != nil {
		return "", "", extractionErr
	}
	return narrative, extraction, nil
}

func (e *Engine) generate(ctx context.Context, client llm.Client, prompt string) (string, error) {
	resp, err := client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if resp.Empty() {
		return "", common.ErrEmptyResponse
	}
	return resp.Text(), nil
}
