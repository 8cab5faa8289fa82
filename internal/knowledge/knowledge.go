// Package knowledge holds the static medical lookup tables: test-name to
// category mappings, layman interpretations, recommendations, and
// reference-range metadata. Lookups never fail; absence is always answered
// with a generic fallback.
package knowledge

import (
	"fmt"
	"strings"

	"github.com/healthlens/healthlens/internal/model"
)

// categoryRule maps a test-name keyword to its panel category. Rules are
// evaluated in order and the first match wins, so more specific keywords
// (hba1c) must precede broader ones (hemoglobin).
type categoryRule struct {
	keyword  string
	category model.Category
}

var categoryRules = []categoryRule{
	{"hba1c", model.CategoryDiabetesProfile},
	{"a1c", model.CategoryDiabetesProfile},
	{"glucose", model.CategoryDiabetesProfile},
	{"insulin", model.CategoryDiabetesProfile},
	{"hemoglobin", model.CategoryCompleteBloodCount},
	{"hematocrit", model.CategoryCompleteBloodCount},
	{"rbc", model.CategoryCompleteBloodCount},
	{"wbc", model.CategoryCompleteBloodCount},
	{"platelet", model.CategoryCompleteBloodCount},
	{"mcv", model.CategoryCompleteBloodCount},
	{"mch", model.CategoryCompleteBloodCount},
	{"neutrophil", model.CategoryCompleteBloodCount},
	{"lymphocyte", model.CategoryCompleteBloodCount},
	{"cholesterol", model.CategoryLipidPanel},
	{"triglycerid", model.CategoryLipidPanel},
	{"hdl", model.CategoryLipidPanel},
	{"ldl", model.CategoryLipidPanel},
	{"vldl", model.CategoryLipidPanel},
	{"creatinine", model.CategoryKidneyFunction},
	{"egfr", model.CategoryKidneyFunction},
	{"bun", model.CategoryKidneyFunction},
	{"urea", model.CategoryKidneyFunction},
	{"uric acid", model.CategoryKidneyFunction},
	{"sodium", model.CategoryMetabolicPanel},
	{"potassium", model.CategoryMetabolicPanel},
	{"chloride", model.CategoryMetabolicPanel},
	{"bicarbonate", model.CategoryMetabolicPanel},
	{"calcium", model.CategoryMetabolicPanel},
	{"albumin", model.CategoryLiverFunction},
	{"bilirubin", model.CategoryLiverFunction},
	{"alkaline phosphatase", model.CategoryLiverFunction},
	{"ast", model.CategoryLiverFunction},
	{"alt", model.CategoryLiverFunction},
	{"sgot", model.CategoryLiverFunction},
	{"sgpt", model.CategoryLiverFunction},
	{"ggt", model.CategoryLiverFunction},
	{"tsh", model.CategoryThyroidFunction},
	{"thyroid", model.CategoryThyroidFunction},
	{"t3", model.CategoryThyroidFunction},
	{"t4", model.CategoryThyroidFunction},
	{"vitamin", model.CategoryVitaminProfile},
	{"folate", model.CategoryVitaminProfile},
	{"ferritin", model.CategoryIronStudies},
	{"transferrin", model.CategoryIronStudies},
	{"tibc", model.CategoryIronStudies},
	{"iron", model.CategoryIronStudies},
}

// CategoryOf resolves a test name to its panel category by case-insensitive
// substring match, falling back to Other Tests.
func CategoryOf(testName string) model.Category {
	name := strings.ToLower(testName)
	for _, rule := range categoryRules {
		if strings.Contains(name, rule.keyword) {
			return rule.category
		}
	}
	return model.CategoryOther
}

// interpretations maps test name -> status -> patient-friendly explanation.
var interpretations = map[string]map[model.Status]string{
	"Hemoglobin": {
		model.StatusHigh: "Your hemoglobin (oxygen-carrying protein) is higher than normal. This might indicate polycythemia, dehydration, or living at high altitude.",
		model.StatusLow:  "Your hemoglobin is low, which might make you feel tired or short of breath (anemia). This could be due to iron deficiency, chronic disease, or bleeding.",
	},
	"Glucose": {
		model.StatusHigh: "Your blood sugar is higher than normal, which might indicate pre-diabetes or diabetes if persistent. Other causes include stress, medications, or infection.",
		model.StatusLow:  "Your blood sugar is lower than normal, which might cause weakness, dizziness, confusion or shakiness. This could be due to excessive insulin, missed meals, or intense exercise.",
	},
	"Total Cholesterol": {
		model.StatusHigh: "Your cholesterol level is elevated, which may increase your risk of heart disease and stroke. This could be due to diet, genetics, or certain medical conditions.",
		model.StatusLow:  "Your cholesterol is lower than normal, which might affect hormone production and cell membrane integrity. This could be due to malnutrition, inflammation, or liver disease.",
	},
}

// InterpretationOf returns the layman explanation for a test in a given
// status. Unknown tests get a generic templated sentence.
func InterpretationOf(testName string, status model.Status) string {
	if byStatus, ok := interpretations[testName]; ok {
		if text, ok := byStatus[status]; ok {
			return text
		}
	}
	lower := strings.ToLower(testName)
	for key, byStatus := range interpretations {
		if strings.Contains(lower, strings.ToLower(key)) {
			if text, ok := byStatus[status]; ok {
				return text
			}
		}
	}
	return fmt.Sprintf("This test is %s than the normal range. Consult your healthcare provider for specific advice.", strings.ToLower(string(status)))
}

// recommendations maps test name -> status -> actionable advice items.
var recommendations = map[string]map[model.Status][]string{
	"Hemoglobin": {
		model.StatusHigh: {
			"Stay well hydrated to reduce blood thickness",
			"Consider consulting a hematologist",
			"Regular exercise may help regulate blood cell production",
		},
		model.StatusLow: {
			"Include iron-rich foods (lean meats, spinach, beans)",
			"Consider iron supplements after consulting with your doctor",
			"Pair iron-rich foods with vitamin C sources to enhance absorption",
		},
	},
	"Glucose": {
		model.StatusHigh: {
			"Limit refined carbohydrates and added sugars",
			"Exercise regularly (30 minutes daily)",
			"Maintain healthy weight",
			"Consider consulting an endocrinologist",
		},
		model.StatusLow: {
			"Eat regular, balanced meals",
			"Avoid long periods without eating",
			"Keep quick-acting carbohydrate sources available",
			"Consider small, frequent meals",
		},
	},
	"Total Cholesterol": {
		model.StatusHigh: {
			"Reduce saturated and trans fats in your diet",
			"Increase soluble fiber intake",
			"Exercise regularly",
			"Consider heart-healthy Mediterranean or DASH diet",
		},
		model.StatusLow: {
			"Ensure adequate healthy fat intake",
			"Consider omega-3 rich foods",
			"Consult doctor about hormone health and nutritional status",
		},
	},
}

// genericRecommendations is the fallback advice for tests without a
// specific entry.
var genericRecommendations = []string{
	"Consult your healthcare provider for personalized advice",
	"Consider follow-up testing as recommended",
	"Monitor symptoms and changes",
}

// RecommendationsOf returns advice items for a test in a given status.
func RecommendationsOf(testName string, status model.Status) []string {
	if byStatus, ok := recommendations[testName]; ok {
		if items, ok := byStatus[status]; ok {
			return items
		}
	}
	lower := strings.ToLower(testName)
	for key, byStatus := range recommendations {
		if strings.Contains(lower, strings.ToLower(key)) {
			if items, ok := byStatus[status]; ok {
				return items
			}
		}
	}
	return genericRecommendations
}

// categoryDescriptions gives a one-paragraph overview per panel, shown in
// the rendered report.
var categoryDescriptions = map[model.Category]string{
	model.CategoryCompleteBloodCount: "Gives an insight into the health of blood and blood cells which are essential to carry out various bodily functions like transporting oxygen, fighting infections, and clotting blood after an injury.",
	model.CategoryMetabolicPanel:     "Measures electrolytes and minerals that reflect fluid balance, nerve and muscle function, and overall metabolic health.",
	model.CategoryLipidPanel:         "Measures the amount of Cholesterol and Triglycerides in your blood. This gives an insight into the health of heart and blood vessels.",
	model.CategoryDiabetesProfile:    "Measures the level of glucose in the body and helps identify the body's ability to process glucose. It can be used for screening as well as monitoring the treatment of diabetes.",
	model.CategoryKidneyFunction:     "Performed to determine how well the kidneys are working. Kidneys regulate elimination of waste from our body and maintain electrolyte balance.",
	model.CategoryLiverFunction:      "Group of blood tests commonly performed to evaluate the function of the liver which is essential to digest food and removing toxins from the body.",
	model.CategoryThyroidFunction:    "Window to the health of the butterfly shaped gland - Thyroid, which determines how the body uses energy.",
	model.CategoryVitaminProfile:     "Vitamins are the essential nutrients for human life. This profile offers tests to check level of different types of vitamin B, vitamin D, vitamin E and vitamin K.",
	model.CategoryIronStudies:        "Iron is a vital mineral. It helps our blood cells to transport oxygen. Iron studies are used to assess level of iron in blood and blood's ability to attach itself to iron.",
	model.CategoryOther:              "Additional laboratory tests that provide valuable information about your health status.",
}

// CategoryDescription returns the overview text for a category, empty for
// categories outside the canonical set.
func CategoryDescription(category model.Category) string {
	return categoryDescriptions[category]
}

// ReferenceRange is display metadata for a test's typical adult range. It
// is informational only; severity computation always uses the range
// reported alongside the result.
type ReferenceRange struct {
	Unit string
	Low  float64
	High float64
}

var referenceRanges = map[string]ReferenceRange{
	"Hemoglobin":        {Unit: "g/dL", Low: 13.5, High: 17.5},
	"Glucose":           {Unit: "mg/dL", Low: 70, High: 99},
	"Total Cholesterol": {Unit: "mg/dL", Low: 125, High: 200},
	"HDL Cholesterol":   {Unit: "mg/dL", Low: 40, High: 60},
	"LDL Cholesterol":   {Unit: "mg/dL", Low: 0, High: 100},
	"Triglycerides":     {Unit: "mg/dL", Low: 0, High: 150},
	"Creatinine":        {Unit: "mg/dL", Low: 0.7, High: 1.3},
	"TSH":               {Unit: "mIU/L", Low: 0.4, High: 4.0},
	"Vitamin D":         {Unit: "ng/mL", Low: 30, High: 100},
	"Vitamin B12":       {Unit: "pg/mL", Low: 200, High: 900},
}

// TypicalRange returns the display reference range for a test, matching
// exactly first and then by case-insensitive substring.
func TypicalRange(testName string) (ReferenceRange, bool) {
	if r, ok := referenceRanges[testName]; ok {
		return r, true
	}
	lower := strings.ToLower(testName)
	for key, r := range referenceRanges {
		if strings.Contains(lower, strings.ToLower(key)) {
			return r, true
		}
	}
	return ReferenceRange{}, false
}
