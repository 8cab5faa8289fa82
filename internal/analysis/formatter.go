package analysis

import (
	"fmt"
	"strings"

	"github.com/healthlens/healthlens/internal/knowledge"
	"github.com/healthlens/healthlens/internal/model"
)

// CLIFormatter renders an AnalysisResult for terminal display.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{styles: NewStyles()}
}

// FormatSummary builds the full terminal summary: narrative, severity
// distribution, and results grouped by category with advice for the
// abnormal ones.
func (f *CLIFormatter) FormatSummary(result model.AnalysisResult) string {
	var sections []string

	sections = append(sections, f.styles.Title.Render("Lab Report Analysis"))
	sections = append(sections, f.formatNarrative(result.Narrative))
	sections = append(sections, f.formatSeverityCounts(result.Records))
	sections = append(sections, f.formatGroups(result.Records))

	return strings.Join(sections, "\n\n")
}

func (f *CLIFormatter) formatNarrative(narrative string) string {
	return f.styles.Box.Render(narrative)
}

func (f *CLIFormatter) formatSeverityCounts(records []model.TestResult) string {
	counts := SeverityCounts(records)

	var parts []string
	for _, severity := range model.Severities() {
		label := fmt.Sprintf("%s: %d", severity, counts[severity])
		switch severity {
		case model.SeveritySevere:
			label = f.styles.Severe.Render(label)
		case model.SeverityModerate:
			label = f.styles.Warn.Render(label)
		case model.SeverityMild:
			label = f.styles.Low.Render(label)
		case model.SeverityNone:
			label = f.styles.Good.Render(label)
		}
		parts = append(parts, label)
	}

	abnormal := len(Abnormal(records))
	header := f.styles.Subtitle.Render(fmt.Sprintf("Severity distribution (%d of %d abnormal)", abnormal, len(records)))
	return header + "\n" + strings.Join(parts, "  ")
}

func (f *CLIFormatter) formatGroups(records []model.TestResult) string {
	var sections []string

	for _, group := range GroupByCategory(records) {
		var lines []string
		lines = append(lines, f.styles.Subtitle.Render(group.Category))
		if desc := knowledge.CategoryDescription(group.Category); desc != "" {
			lines = append(lines, f.styles.Subtle.Render(desc))
		}

		for _, record := range group.Records {
			lines = append(lines, f.formatRecord(record))
		}

		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n")
}

func (f *CLIFormatter) formatRecord(record model.TestResult) string {
	marker := f.styles.Good.Render("●")
	switch record.Status {
	case model.StatusHigh:
		marker = f.styles.High.Render("▲")
	case model.StatusLow:
		marker = f.styles.Low.Render("▼")
	}

	line := fmt.Sprintf("  %s %s: %s (range %s, %s", marker, record.Name, record.Value, record.ReferenceRange, record.Status)
	if record.Abnormal() {
		line += fmt.Sprintf(", %s severity", record.Severity)
	}
	line += ")"

	if !record.Abnormal() {
		return line
	}

	detail := []string{
		"    " + knowledge.InterpretationOf(record.Name, record.Status),
	}
	for _, rec := range knowledge.RecommendationsOf(record.Name, record.Status) {
		detail = append(detail, "    - "+rec)
	}

	return line + "\n" + f.styles.Subtle.Render(strings.Join(detail, "\n"))
}
