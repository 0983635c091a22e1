package compliance_test

import (
	"testing"

	"Keystone/internal/calc/report"
	"Keystone/internal/compliance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAllPassing(t *testing.T) {
	r := report.New("beam-analysis")
	r.Standards = []string{"BS EN 1992-1-1"}
	r.AddCheck(report.Max("stressCheck", "Bending stress", 10, 25, "N/mm²", "Increase section"))

	c := compliance.Evaluate(r, 0)
	assert.True(t, c.Compliant)
	assert.Empty(t, c.Issues)
	assert.Equal(t, []string{"All checks satisfied"}, c.Recommendations)
	assert.Equal(t, []string{"BS EN 1992-1-1"}, c.Standards)
	require.Contains(t, c.Checks, "stressCheck")
	assert.True(t, c.Checks["stressCheck"].Passed)
}

func TestEvaluateRanksFailuresWorstFirst(t *testing.T) {
	r := report.New("foundation-bearing")
	r.AddCheck(report.Max("settlementCheck", "Settlement", 30, 25, "mm", "Consider ground improvement"))
	r.AddCheck(report.Max("bearingCapacityCheck", "Applied pressure", 300, 150, "kN/m²", "Increase foundation size"))
	r.AddCheck(report.Min("safetyFactorCheck", "Safety factor", 1.5, 3, "", "Increase foundation size"))

	c := compliance.Evaluate(r, 0.8)
	assert.False(t, c.Compliant)
	require.Len(t, c.Issues, 3)
	assert.Contains(t, c.Issues[0], "Applied pressure")
	assert.Contains(t, c.Issues[2], "Settlement")
	assert.Contains(t, c.Issues[1], "below the required")
	assert.Equal(t, []string{"Increase foundation size", "Consider ground improvement"}, c.Recommendations)
}

func TestEvaluateAdvisory(t *testing.T) {
	r := report.New("steel-beam")
	r.AddCheck(report.Max("momentCheck", "Moment", 90, 100, "kN·m", ""))

	c := compliance.Evaluate(r, 0.8)
	assert.True(t, c.Compliant)
	assert.Equal(t, []string{"Moment utilization is 90% - monitor closely"}, c.Recommendations)
}
