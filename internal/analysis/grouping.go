package analysis

import "github.com/healthlens/healthlens/internal/model"

// GroupByCategory groups records by category for display. Categories
// appear in first-seen order and records keep their original order within
// each group.
func GroupByCategory(records []model.TestResult) []model.CategoryGroup {
	index := make(map[model.Category]int)
	groups := make([]model.CategoryGroup, 0)

	for _, record := range records {
		i, ok := index[record.Category]
		if !ok {
			i = len(groups)
			index[record.Category] = i
			groups = append(groups, model.CategoryGroup{Category: record.Category})
		}
		groups[i].Records = append(groups[i].Records, record)
	}

	return groups
}

// Abnormal returns the records outside their reference range, order
// preserved.
func Abnormal(records []model.TestResult) []model.TestResult {
	var abnormal []model.TestResult
	for _, record := range records {
		if record.Abnormal() {
			abnormal = append(abnormal, record)
		}
	}
	return abnormal
}

// SeverityCounts tallies records per severity, zero-filled over the full
// severity vocabulary.
func SeverityCounts(records []model.TestResult) map[model.Severity]int {
	counts := make(map[model.Severity]int, len(model.Severities()))
	for _, severity := range model.Severities() {
		counts[severity] = 0
	}
	for _, record := range records {
		counts[record.Severity]++
	}
	return counts
}
