package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlens/healthlens/internal/model"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		want model.Category
	}{
		{"Hemoglobin", model.CategoryCompleteBloodCount},
		{"HEMOGLOBIN", model.CategoryCompleteBloodCount},
		{"Hemoglobin A1c", model.CategoryDiabetesProfile},
		{"HbA1c", model.CategoryDiabetesProfile},
		{"Fasting Glucose", model.CategoryDiabetesProfile},
		{"Total Cholesterol", model.CategoryLipidPanel},
		{"HDL Cholesterol", model.CategoryLipidPanel},
		{"Serum Creatinine", model.CategoryKidneyFunction},
		{"eGFR", model.CategoryKidneyFunction},
		{"Sodium", model.CategoryMetabolicPanel},
		{"Bilirubin (Total)", model.CategoryLiverFunction},
		{"TSH", model.CategoryThyroidFunction},
		{"Free T4", model.CategoryThyroidFunction},
		{"Vitamin D 25-OH", model.CategoryVitaminProfile},
		{"Serum Ferritin", model.CategoryIronStudies},
		{"Prostate Specific Antigen", model.CategoryOther},
		{"", model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(tt.name))
		})
	}
}

func TestInterpretationOfKnownTest(t *testing.T) {
	text := InterpretationOf("Hemoglobin", model.StatusLow)
	assert.Contains(t, text, "anemia")

	text = InterpretationOf("Glucose", model.StatusHigh)
	assert.Contains(t, text, "diabetes")
}

func TestInterpretationOfSubstringMatch(t *testing.T) {
	// "Fasting Glucose" is not a map key but should still find the
	// Glucose entry.
	text := InterpretationOf("Fasting Glucose", model.StatusHigh)
	assert.Contains(t, text, "diabetes")
}

func TestInterpretationOfUnknownTest(t *testing.T) {
	text := InterpretationOf("Lipase", model.StatusHigh)
	assert.Equal(t, "This test is high than the normal range. Consult your healthcare provider for specific advice.", text)

	text = InterpretationOf("Lipase", model.StatusLow)
	assert.Contains(t, text, "low than the normal range")
}

func TestRecommendationsOfKnownTest(t *testing.T) {
	items := RecommendationsOf("Total Cholesterol", model.StatusHigh)
	require.NotEmpty(t, items)
	assert.Contains(t, items[0], "saturated")
}

func TestRecommendationsOfUnknownTestGetsGenericAdvice(t *testing.T) {
	items := RecommendationsOf("Amylase", model.StatusHigh)
	require.Len(t, items, 3)
	assert.Contains(t, items[0], "healthcare provider")

	// Generic advice is status-independent.
	assert.Equal(t, items, RecommendationsOf("Amylase", model.StatusLow))
}

func TestCategoryDescription(t *testing.T) {
	assert.NotEmpty(t, CategoryDescription(model.CategoryLipidPanel))
	assert.NotEmpty(t, CategoryDescription(model.CategoryOther))
	assert.Empty(t, CategoryDescription("Genomic Panel"))
}

func TestTypicalRange(t *testing.T) {
	r, ok := TypicalRange("Hemoglobin")
	require.True(t, ok)
	assert.Equal(t, "g/dL", r.Unit)
	assert.InDelta(t, 13.5, r.Low, 0.001)
	assert.InDelta(t, 17.5, r.High, 0.001)

	r, ok = TypicalRange("Serum TSH")
	require.True(t, ok)
	assert.Equal(t, "mIU/L", r.Unit)

	_, ok = TypicalRange("Troponin")
	assert.False(t, ok)
}
