package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"High", StatusHigh},
		{"high", StatusHigh},
		{"  ELEVATED  ", StatusHigh},
		{"slightly elevated", StatusHigh},
		{"Low", StatusLow},
		{"decreased", StatusLow},
		{"Normal", StatusNormal},
		{"", StatusNormal},
		{"borderline", StatusNormal},
		{"???", StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.input))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
		ok    bool
	}{
		{"None", SeverityNone, true},
		{"mild", SeverityMild, true},
		{" Moderate ", SeverityModerate, true},
		{"SEVERE", SeveritySevere, true},
		{"", SeverityNone, false},
		{"critical", SeverityNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestAbnormal(t *testing.T) {
	assert.False(t, TestResult{Status: StatusNormal}.Abnormal())
	assert.True(t, TestResult{Status: StatusHigh}.Abnormal())
	assert.True(t, TestResult{Status: StatusLow}.Abnormal())
}

func TestSeveritiesOrder(t *testing.T) {
	assert.Equal(t, []Severity{SeveritySevere, SeverityModerate, SeverityMild, SeverityNone}, Severities())
}
