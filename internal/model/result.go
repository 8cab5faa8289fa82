// Package model defines the core domain models used throughout the application.
package model

import "strings"

// Status indicates where a test value sits relative to its reference range.
type Status string

// Status constants.
const (
	StatusNormal Status = "Normal"
	StatusHigh   Status = "High"
	StatusLow    Status = "Low"
)

// Severity bands how far an abnormal value deviates from the reference midpoint.
type Severity string

// Severity constants, ordered from least to most concerning.
const (
	SeverityNone     Severity = "None"
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

// Canonical test categories. The category set is open: the AI may report
// categories outside this list and they are preserved as-is.
const (
	CategoryCompleteBloodCount Category = "Complete Blood Count"
	CategoryMetabolicPanel     Category = "Metabolic Panel"
	CategoryLipidPanel         Category = "Lipid Panel"
	CategoryDiabetesProfile    Category = "Diabetes Profile"
	CategoryKidneyFunction     Category = "Kidney Function Test"
	CategoryLiverFunction      Category = "Liver Function Test"
	CategoryThyroidFunction    Category = "Thyroid Function Test"
	CategoryVitaminProfile     Category = "Vitamin Profile"
	CategoryIronStudies        Category = "Iron Studies"
	CategoryOther              Category = "Other Tests"
)

// Category names a test panel grouping.
type Category = string

// TestResult is one lab test after normalization. Category, Status and
// Severity are always populated; Value and ReferenceRange are free text
// carried through from the report and may be unparsable.
type TestResult struct {
	Name           string   `json:"Test"`
	Value          string   `json:"Value"`
	ReferenceRange string   `json:"ReferenceRange"`
	Status         Status   `json:"Status"`
	Category       Category `json:"Category"`
	Severity       Severity `json:"Severity"`
}

// Abnormal reports whether the result falls outside its reference range.
func (t TestResult) Abnormal() bool {
	return t.Status != StatusNormal
}

// AnalysisResult is the outcome of one report analysis: the normalized
// records plus the free-text narrative. It is immutable once constructed
// and lives only for the duration of a request.
type AnalysisResult struct {
	Narrative string
	Records   []TestResult
}

// CategoryGroup is a display view of the records sharing one category.
type CategoryGroup struct {
	Category Category
	Records  []TestResult
}

// ParseStatus canonicalizes an AI-reported status string. Unrecognized
// values fall back to Normal so the enum invariant holds.
func ParseStatus(s string) Status {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return StatusNormal
	case strings.Contains(s, "high") || strings.Contains(s, "elevat"):
		return StatusHigh
	case strings.Contains(s, "low") || strings.Contains(s, "decreas"):
		return StatusLow
	case s == "normal":
		return StatusNormal
	default:
		return StatusNormal
	}
}

// ParseSeverity canonicalizes an AI-reported severity string. The second
// return value is false when the input is not a recognized severity.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return SeverityNone, true
	case "mild":
		return SeverityMild, true
	case "moderate":
		return SeverityModerate, true
	case "severe":
		return SeveritySevere, true
	default:
		return SeverityNone, false
	}
}

// Severities returns the full severity vocabulary in display order.
func Severities() []Severity {
	return []Severity{SeveritySevere, SeverityModerate, SeverityMild, SeverityNone}
}
