// Package render defines the report-rendering collaborator boundary and a
// plain-text implementation. PDF layout lives outside this module; the
// contract toward any renderer is fully normalized records and a non-empty
// narrative, never raw model output.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/healthlens/healthlens/internal/analysis"
	"github.com/healthlens/healthlens/internal/knowledge"
	"github.com/healthlens/healthlens/internal/model"
)

// Renderer writes a report document for an analysis result.
type Renderer interface {
	Render(w io.Writer, patient map[string]string, result model.AnalysisResult) error
}

// Text renders a plain-text report mirroring the section order of the PDF
// report: header, patient details, narrative, results by category, and a
// disclaimer.
type Text struct {
	Now func() time.Time
}

// NewText creates a plain-text renderer.
func NewText() *Text {
	return &Text{Now: time.Now}
}

const disclaimer = "This report is generated by an automated analysis system and is not a substitute for professional medical advice. Always consult your healthcare provider about your results."

// Render writes the full report.
func (t *Text) Render(w io.Writer, patient map[string]string, result model.AnalysisResult) error {
	var b strings.Builder

	b.WriteString("HEALTH LENS LAB REPORT ANALYSIS\n")
	b.WriteString("Generated: " + t.Now().Format("2006-01-02 15:04") + "\n\n")

	if len(patient) > 0 {
		b.WriteString("PATIENT DETAILS\n")
		for _, key := range sortedKeys(patient) {
			fmt.Fprintf(&b, "  %s: %s\n", key, patient[key])
		}
		b.WriteString("\n")
	}

	b.WriteString("INTERPRETATION\n")
	b.WriteString(result.Narrative + "\n\n")

	b.WriteString("TEST RESULTS BY CATEGORY\n\n")
	for _, group := range analysis.GroupByCategory(result.Records) {
		b.WriteString(group.Category + "\n")
		if desc := knowledge.CategoryDescription(group.Category); desc != "" {
			b.WriteString("  " + desc + "\n")
		}
		for _, record := range group.Records {
			fmt.Fprintf(&b, "  %s: %s (reference %s) - %s", record.Name, record.Value, record.ReferenceRange, record.Status)
			if record.Abnormal() {
				fmt.Fprintf(&b, ", %s severity\n", record.Severity)
				b.WriteString("    " + knowledge.InterpretationOf(record.Name, record.Status) + "\n")
				for _, rec := range knowledge.RecommendationsOf(record.Name, record.Status) {
					b.WriteString("    * " + rec + "\n")
				}
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(disclaimer + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
