// Package analysis implements the lab-report analysis pipeline: prompt
// construction, response parsing and repair, deterministic result
// normalization, orchestration with fallback, and presentation grouping.
package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/healthlens/healthlens/internal/knowledge"
	"github.com/healthlens/healthlens/internal/model"
)

// Severity deviation breakpoints: deviation <= 0.25 is Mild, <= 0.5 is
// Moderate, above that Severe.
const (
	mildDeviationMax     = 0.25
	moderateDeviationMax = 0.5
)

// NormalizeRecord turns one raw extracted record, with any combination of
// missing or malformed fields, into a fully populated TestResult. It never
// fails: every parse problem degrades to a safe default so the record is
// always renderable.
func NormalizeRecord(raw map[string]any) model.TestResult {
	result := model.TestResult{
		Name:           stringField(raw, "Test"),
		Value:          stringField(raw, "Value"),
		ReferenceRange: stringField(raw, "ReferenceRange"),
		Status:         model.ParseStatus(stringField(raw, "Status")),
		Category:       strings.TrimSpace(stringField(raw, "Category")),
	}

	if result.Category == "" {
		result.Category = knowledge.CategoryOf(result.Name)
	}

	// A normal result is never ranked; an abnormal one always is. An
	// AI-provided severity is kept only when it respects that rule.
	if result.Status == model.StatusNormal {
		result.Severity = model.SeverityNone
		return result
	}

	if sev, ok := model.ParseSeverity(stringField(raw, "Severity")); ok && sev != model.SeverityNone {
		result.Severity = sev
		return result
	}

	result.Severity = computeSeverity(result.Value, result.ReferenceRange)
	return result
}

// computeSeverity bands an abnormal value by its normalized distance from
// the reference-range midpoint. Anything unparsable, including one-sided
// ranges like "<200" or ">50", defaults to Moderate.
func computeSeverity(value, referenceRange string) model.Severity {
	v, ok := parseLeadingNumber(value)
	if !ok {
		return model.SeverityModerate
	}

	low, high, ok := parseRange(referenceRange)
	if !ok || high == low {
		return model.SeverityModerate
	}

	mid := (low + high) / 2
	deviation := abs(v-mid) / (high - low)

	switch {
	case deviation > moderateDeviationMax:
		return model.SeveritySevere
	case deviation > mildDeviationMax:
		return model.SeverityModerate
	default:
		return model.SeverityMild
	}
}

// parseLeadingNumber extracts the numeric part of a value token like
// "105 mg/dL".
func parseLeadingNumber(value string) (float64, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseRange splits a "low-high" reference range. Both sides must be
// plain floats; trailing units ("13.5-17.5 g/dL") make the range
// unparsable, like any other malformed range.
func parseRange(referenceRange string) (low, high float64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(referenceRange), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}

	high, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}

	return low, high, true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// stringField reads a raw record field as a string, tolerating the JSON
// number and boolean types the model sometimes emits.
func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
