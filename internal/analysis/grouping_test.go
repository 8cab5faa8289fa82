package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlens/healthlens/internal/model"
)

func TestGroupByCategoryFirstSeenOrder(t *testing.T) {
	records := []model.TestResult{
		{Name: "A", Category: model.CategoryLipidPanel},
		{Name: "B", Category: model.CategoryThyroidFunction},
		{Name: "C", Category: model.CategoryLipidPanel},
	}

	groups := GroupByCategory(records)

	require.Len(t, groups, 2)
	assert.Equal(t, model.CategoryLipidPanel, groups[0].Category)
	assert.Equal(t, model.CategoryThyroidFunction, groups[1].Category)

	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, "A", groups[0].Records[0].Name)
	assert.Equal(t, "C", groups[0].Records[1].Name)
	require.Len(t, groups[1].Records, 1)
	assert.Equal(t, "B", groups[1].Records[0].Name)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}

func TestAbnormalFilter(t *testing.T) {
	records := []model.TestResult{
		{Name: "Glucose", Status: model.StatusHigh},
		{Name: "Hemoglobin", Status: model.StatusNormal},
		{Name: "TSH", Status: model.StatusLow},
	}

	abnormal := Abnormal(records)

	require.Len(t, abnormal, 2)
	assert.Equal(t, "Glucose", abnormal[0].Name)
	assert.Equal(t, "TSH", abnormal[1].Name)
}

func TestSeverityCountsZeroFilled(t *testing.T) {
	counts := SeverityCounts(nil)

	require.Len(t, counts, 4)
	for _, severity := range model.Severities() {
		assert.Zero(t, counts[severity])
	}
}

func TestSeverityCountsTally(t *testing.T) {
	records := []model.TestResult{
		{Severity: model.SeverityModerate},
		{Severity: model.SeverityNone},
		{Severity: model.SeverityModerate},
		{Severity: model.SeveritySevere},
	}

	counts := SeverityCounts(records)

	assert.Equal(t, 1, counts[model.SeverityNone])
	assert.Equal(t, 0, counts[model.SeverityMild])
	assert.Equal(t, 2, counts[model.SeverityModerate])
	assert.Equal(t, 1, counts[model.SeveritySevere])
}
