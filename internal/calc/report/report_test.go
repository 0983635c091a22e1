package report_test

import (
	"math"
	"testing"

	"Keystone/internal/calc/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxCheckConvention(t *testing.T) {
	pass := report.Max("stressCheck", "Bending stress", 20, 25, "N/mm²", "")
	assert.InDelta(t, 0.8, pass.Ratio, 1e-12)
	assert.True(t, pass.Passed)
	assert.Equal(t, report.AtMost, pass.Sense)

	edge := report.Max("x", "x", 25, 25, "", "")
	assert.True(t, edge.Passed)

	fail := report.Max("x", "x", 30, 25, "", "")
	assert.False(t, fail.Passed)
	assert.InDelta(t, 1.2, fail.Utilization(), 1e-12)
}

func TestMinCheckConvention(t *testing.T) {
	ok := report.Min("safetyFactorCheck", "Safety factor", 4.5, 3, "", "")
	assert.InDelta(t, 1.5, ok.Ratio, 1e-12)
	assert.True(t, ok.Passed)
	assert.Equal(t, report.AtLeast, ok.Sense)
	assert.InDelta(t, 1/1.5, ok.Utilization(), 1e-12)

	low := report.Min("safetyFactorCheck", "Safety factor", 2.4, 3, "", "")
	assert.False(t, low.Passed)
	assert.InDelta(t, 0.8, low.Ratio, 1e-12)
}

func TestZeroAllowableStaysFinite(t *testing.T) {
	c := report.Max("x", "x", 5, 0, "", "")
	assert.False(t, c.Passed)
	assert.Equal(t, 0.0, c.Ratio)
}

func TestReportAccessors(t *testing.T) {
	r := report.New("beam-analysis")
	r.Add("maxBendingMoment", 200, "kN·m", "M = wL²/8")
	r.AddCheck(report.Max("stressCheck", "Bending stress", 1, 2, "", ""))
	r.Warn("soil type %q unknown", "peat")

	assert.True(t, r.Valid)
	assert.Equal(t, 200.0, r.Metric("maxBendingMoment"))
	assert.Equal(t, 0.0, r.Metric("missing"))
	_, ok := r.Check("stressCheck")
	assert.True(t, ok)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, `soil type "peat" unknown`, r.Warnings[0])
	assert.Empty(t, r.NonFinite())

	r.Add("bad", math.NaN(), "", "")
	assert.Equal(t, []string{"bad"}, r.NonFinite())
}

func TestInvalidReport(t *testing.T) {
	r := report.Invalid("beam-analysis", []string{"Beam width must be between 100 and 2000 mm"})
	assert.False(t, r.Valid)
	assert.Empty(t, r.Results)
	assert.Len(t, r.Errors, 1)
}
