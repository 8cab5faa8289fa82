package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthlens/healthlens/internal/model"
)

func TestNormalizeRecordFillsAllFields(t *testing.T) {
	tests := []struct {
		raw          map[string]any
		name         string
		wantCategory model.Category
		wantStatus   model.Status
		wantSeverity model.Severity
	}{
		{
			name:         "only test name",
			raw:          map[string]any{"Test": "Hemoglobin"},
			wantCategory: model.CategoryCompleteBloodCount,
			wantStatus:   model.StatusNormal,
			wantSeverity: model.SeverityNone,
		},
		{
			name: "full record passes through",
			raw: map[string]any{
				"Test":           "Glucose",
				"Value":          "95 mg/dL",
				"ReferenceRange": "70-99",
				"Status":         "Normal",
				"Category":       "Diabetes Profile",
				"Severity":       "None",
			},
			wantCategory: model.CategoryDiabetesProfile,
			wantStatus:   model.StatusNormal,
			wantSeverity: model.SeverityNone,
		},
		{
			name: "garbage value and range default to moderate",
			raw: map[string]any{
				"Test":           "Ferritin",
				"Value":          "not-a-number",
				"ReferenceRange": "whatever",
				"Status":         "High",
			},
			wantCategory: model.CategoryIronStudies,
			wantStatus:   model.StatusHigh,
			wantSeverity: model.SeverityModerate,
		},
		{
			name: "one-sided range defaults to moderate",
			raw: map[string]any{
				"Test":           "Total Cholesterol",
				"Value":          "220 mg/dL",
				"ReferenceRange": "<200",
				"Status":         "High",
			},
			wantCategory: model.CategoryLipidPanel,
			wantStatus:   model.StatusHigh,
			wantSeverity: model.SeverityModerate,
		},
		{
			name: "zero-width range defaults to moderate",
			raw: map[string]any{
				"Test":           "TSH",
				"Value":          "7.1",
				"ReferenceRange": "4-4",
				"Status":         "High",
			},
			wantCategory: model.CategoryThyroidFunction,
			wantStatus:   model.StatusHigh,
			wantSeverity: model.SeverityModerate,
		},
		{
			name: "numeric JSON value tolerated",
			raw: map[string]any{
				"Test":           "Glucose",
				"Value":          float64(105),
				"ReferenceRange": "70-99",
				"Status":         "High",
			},
			wantCategory: model.CategoryDiabetesProfile,
			wantStatus:   model.StatusHigh,
			wantSeverity: model.SeveritySevere,
		},
		{
			name:         "unknown test falls back to other",
			raw:          map[string]any{"Test": "Mystery Marker", "Status": "elevated"},
			wantCategory: model.CategoryOther,
			wantStatus:   model.StatusHigh,
			wantSeverity: model.SeverityModerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRecord(tt.raw)

			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantSeverity, got.Severity)
			assert.NotEmpty(t, got.Category)
			assert.NotEmpty(t, got.Status)
			assert.NotEmpty(t, got.Severity)
		})
	}
}

func TestSeverityBreakpoints(t *testing.T) {
	// Fixed range 0-100: midpoint 50, width 100, so deviation is
	// |value-50|/100. The band edges sit exactly at 0.25 and 0.5.
	tests := []struct {
		value string
		want  model.Severity
	}{
		{"50", model.SeverityMild},           // deviation 0
		{"75", model.SeverityMild},           // deviation 0.25, boundary inclusive
		{"75.00001", model.SeverityModerate}, // just past 0.25
		{"100", model.SeverityModerate},      // deviation 0.5, boundary inclusive
		{"100.00001", model.SeveritySevere},  // just past 0.5
		{"0", model.SeverityModerate},        // deviation 0.5 on the low side
		{"120", model.SeveritySevere},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := NormalizeRecord(map[string]any{
				"Test":           "Mystery Marker",
				"Value":          tt.value,
				"ReferenceRange": "0-100",
				"Status":         "High",
			})
			assert.Equal(t, tt.want, got.Severity)
		})
	}
}

func TestSeverityMonotonicInDeviation(t *testing.T) {
	rank := map[model.Severity]int{
		model.SeverityMild:     1,
		model.SeverityModerate: 2,
		model.SeveritySevere:   3,
	}

	prev := 0
	for value := 50.0; value <= 150.0; value += 2.5 {
		got := NormalizeRecord(map[string]any{
			"Test":           "Mystery Marker",
			"Value":          fmt.Sprintf("%g", value),
			"ReferenceRange": "0-100",
			"Status":         "High",
		})
		assert.GreaterOrEqual(t, rank[got.Severity], prev, "severity regressed at value %g", value)
		prev = rank[got.Severity]
	}
}

func TestNormalSeverityInvariant(t *testing.T) {
	// Status Normal always means severity None, even when the model
	// reported something else; and an abnormal status never yields None.
	normal := NormalizeRecord(map[string]any{
		"Test":     "Glucose",
		"Status":   "Normal",
		"Severity": "Severe",
	})
	assert.Equal(t, model.SeverityNone, normal.Severity)

	abnormal := NormalizeRecord(map[string]any{
		"Test":           "Glucose",
		"Value":          "96",
		"ReferenceRange": "70-99",
		"Status":         "High",
		"Severity":       "None",
	})
	assert.NotEqual(t, model.SeverityNone, abnormal.Severity)
}

func TestNormalizeRecordKeepsReportedSeverity(t *testing.T) {
	got := NormalizeRecord(map[string]any{
		"Test":           "Glucose",
		"Value":          "105 mg/dL",
		"ReferenceRange": "70-99",
		"Status":         "High",
		"Severity":       "mild",
	})
	assert.Equal(t, model.SeverityMild, got.Severity)
}

func TestRangeWithUnitsDefaultsToModerate(t *testing.T) {
	// A trailing unit makes the range unparsable, so the severity falls
	// back to the Moderate default rather than being deviation-banded.
	got := NormalizeRecord(map[string]any{
		"Test":           "Hemoglobin",
		"Value":          "11.2 g/dL",
		"ReferenceRange": "12.0-15.5 g/dL",
		"Status":         "Low",
	})
	assert.Equal(t, model.SeverityModerate, got.Severity)

	// The same record with a bare numeric range is banded normally:
	// midpoint 13.75, width 3.5, deviation 2.55/3.5 ≈ 0.729.
	got = NormalizeRecord(map[string]any{
		"Test":           "Hemoglobin",
		"Value":          "11.2 g/dL",
		"ReferenceRange": "12.0-15.5",
		"Status":         "Low",
	})
	assert.Equal(t, model.SeveritySevere, got.Severity)
}
