package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/healthlens/healthlens/internal/analysis"
	"github.com/healthlens/healthlens/internal/common"
	"github.com/healthlens/healthlens/internal/extract"
	"github.com/healthlens/healthlens/internal/llm"
	"github.com/healthlens/healthlens/internal/model"
	"github.com/healthlens/healthlens/internal/render"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <report.txt> [report2.txt ...]",
		Short: "Analyze one or more lab report text files",
		Long: `Analyze lab report text files with the configured model provider.

The model is asked for two things per report: a plain-language narrative
interpretation, and a structured JSON extraction of the test values. The
extraction is repaired and normalized (category, status, severity) before
display, and a canned fallback report is shown whenever real analysis is
unavailable, so the command always produces readable output.

Examples:
  # Analyze a report and print the summary
  healthlens analyze report.txt

  # Save a plain-text report alongside the summary
  healthlens analyze report.txt --report out.txt

  # Structured output for scripting
  healthlens analyze report.txt --output json

  # Run offline against the built-in mock provider
  healthlens analyze report.txt --provider mock`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().String("provider", "", "model provider (gemini, openai, mock); overrides config")
	cmd.Flags().String("output", "summary", "output format (summary, json)")
	cmd.Flags().String("report", "", "also write a plain-text report to this path (one per input, suffixed by index for multiple inputs)")
	cmd.Flags().String("patient-name", "", "patient name for the rendered report header")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	provider, _ := cmd.Flags().GetString("provider")
	outputFormat, _ := cmd.Flags().GetString("output")
	reportPath, _ := cmd.Flags().GetString("report")
	patientName, _ := cmd.Flags().GetString("patient-name")

	if provider == "" {
		provider = viper.GetString("llm.provider")
	}
	if outputFormat != "summary" && outputFormat != "json" {
		return fmt.Errorf("%w: unknown output format %q", common.ErrInvalidConfig, outputFormat)
	}

	engine, err := buildEngine(cmd, provider)
	if err != nil {
		return common.NewUserError("failed to configure analysis engine", err)
	}

	extractor := extract.NewPlainText()
	formatter := analysis.NewCLIFormatter()

	var bar *progressbar.ProgressBar
	if len(args) > 1 {
		bar = progressbar.NewOptions(len(args),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Analyzing reports..."),
		)
	}

	for i, path := range args {
		text, err := extractor.Extract(ctx, path)
		if err != nil {
			// The engine downgrades unusable text to the fallback dataset,
			// matching how extraction failures behave in the full product.
			slog.Error("Text extraction failed", "path", path, "error", err)
			text = ""
		}

		result := engine.Analyze(ctx, text)

		if err := emit(cmd, formatter, outputFormat, path, result); err != nil {
			return err
		}

		if reportPath != "" {
			patient := map[string]string{"Source": filepath.Base(path)}
			if patientName != "" {
				patient["Name"] = patientName
			}
			if err := writeReport(indexedPath(reportPath, i, len(args)), patient, result); err != nil {
				return common.NewUserError("failed to write report", err)
			}
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return nil
}

func buildEngine(cmd *cobra.Command, provider string) (*analysis.Engine, error) {
	ctx := cmd.Context()

	cfg := llm.Config{
		Provider:    provider,
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
	}

	primary, err := llm.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// The backup tier is the same provider with the configured backup
	// model; it is optional.
	var backup llm.Client
	if backupModel := viper.GetString("llm.backup_model"); backupModel != "" && backupModel != cfg.Model {
		backupCfg := cfg
		backupCfg.Model = backupModel
		backup, err = llm.NewClient(ctx, backupCfg)
		if err != nil {
			slog.Warn("Backup model unavailable, continuing without it", "error", err)
			backup = nil
		}
	}

	return analysis.NewEngine(primary, backup, slog.Default())
}

func emit(cmd *cobra.Command, formatter *analysis.CLIFormatter, format, path string, result model.AnalysisResult) error {
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		payload := struct {
			Source    string             `json:"source"`
			Narrative string             `json:"narrative"`
			Records   []model.TestResult `json:"records"`
		}{Source: path, Narrative: result.Narrative, Records: result.Records}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		header := fmt.Sprintf("== %s ==\n", path)
		if _, err := fmt.Fprint(out, header); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, formatter.FormatSummary(result))
		return err
	}
}

func writeReport(path string, patient map[string]string, result model.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := render.NewText().Render(f, patient, result); err != nil {
		_ = f.Close()
		return err
	}

	// A failed close is a failed flush: the caller must not treat a
	// truncated report file as written.
	return f.Close()
}

// indexedPath disambiguates the report path when analyzing multiple
// inputs: out.txt becomes out.1.txt, out.2.txt, ...
func indexedPath(path string, i, total int) string {
	if total == 1 {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s.%d%s", base, i+1, ext)
}
