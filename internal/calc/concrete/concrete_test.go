package concrete_test

import (
	"testing"

	"Keystone/internal/calc/concrete"
	"Keystone/internal/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exposure(t *testing.T, code string) tables.ExposureClass {
	t.Helper()
	e, err := tables.Exposure(code)
	require.NoError(t, err)
	return e
}

func TestDesignMixDefaults(t *testing.T) {
	res, err := concrete.DesignMix(concrete.MixInput{Exposure: exposure(t, "XC1")})
	require.NoError(t, err)

	assert.InDelta(t, 38, res.FcmMPa, 1e-9)
	assert.InDelta(t, 0.5, res.WaterCement, 1e-9)
	assert.InDelta(t, 180, res.WaterKgM3, 1e-9)
	assert.InDelta(t, 360, res.CementKgM3, 1e-9)
	assert.InDelta(t, 744, res.FineKgM3, 1e-9)
	assert.InDelta(t, 1116, res.CoarseKgM3, 1e-9)
	assert.InDelta(t, 7.2, res.CementBags, 1e-9)
	assert.InDelta(t, 322.5, res.CostPerM3, 1e-6)
	assert.Equal(t, "S2", res.Consistency)
	assert.Equal(t, []string{"Mix design is suitable for the specified requirements"}, res.Recommendations)

	total := res.CementKgM3 + res.WaterKgM3 + res.FineKgM3 + res.CoarseKgM3
	assert.InDelta(t, tables.ConcreteDensityKgM3, total, 1e-9)
}

func TestDesignMixDefaultsToXC2(t *testing.T) {
	res, err := concrete.DesignMix(concrete.MixInput{})
	require.NoError(t, err)
	assert.Equal(t, "XC2", res.Input.Exposure.Code)
	assert.InDelta(t, 0.48, res.WaterCement, 1e-9)
}

func TestDesignMixMinimumCementGoverns(t *testing.T) {
	res, err := concrete.DesignMix(concrete.MixInput{
		TargetStrengthMPa: 20,
		SlumpMM:           30,
		MaxAggregateMM:    40,
		Exposure:          exposure(t, "XC4"),
	})
	require.NoError(t, err)
	assert.InDelta(t, 300, res.CementKgM3, 1e-9)
	assert.Equal(t, "S1", res.Consistency)
	assert.InDelta(t, 0.35, res.FineRatio, 1e-9)

	c, ok := res.Report().Check("cementContentCheck")
	require.True(t, ok)
	assert.True(t, c.Passed)
}

func TestDesignMixRecommendations(t *testing.T) {
	res, err := concrete.DesignMix(concrete.MixInput{
		TargetStrengthMPa: 60,
		SlumpMM:           150,
		MaxAggregateMM:    10,
		Exposure:          exposure(t, "XS3"),
	})
	require.NoError(t, err)
	assert.Contains(t, res.Recommendations, "High strength concrete - consider using superplasticizer")
	assert.Contains(t, res.Recommendations, "Marine environment - use corrosion inhibitors")
	assert.Contains(t, res.Recommendations, "High cement content - monitor heat of hydration")
}

func TestDesignMixWaterCementOverride(t *testing.T) {
	res, err := concrete.DesignMix(concrete.MixInput{
		Exposure:         exposure(t, "XC4"),
		WaterCementRatio: 0.7,
	})
	require.NoError(t, err)

	c, ok := res.Report().Check("wcRatioCheck")
	require.True(t, ok)
	assert.False(t, c.Passed)
	assert.Contains(t, res.Recommendations, "Reduce water/cement ratio to at most 0.50 for exposure class XC4")
}

func TestMixReport(t *testing.T) {
	res, err := concrete.DesignMix(concrete.MixInput{Exposure: exposure(t, "XC1")})
	require.NoError(t, err)

	r := res.Report()
	assert.Equal(t, "concrete-mix", r.Kind)
	assert.Equal(t, "1:2.1:3.1", r.Attributes["mixRatio"])
	assert.Equal(t, "MYR", r.Attributes["currency"])
	assert.InDelta(t, 360, r.Metric("cementContent"), 1e-9)
	assert.Empty(t, r.NonFinite())
	for _, c := range r.Checks {
		assert.True(t, c.Passed, c.Name)
	}
}

func TestReinforcementSinglyReinforced(t *testing.T) {
	res, err := concrete.DesignReinforcement(concrete.ReinforcementInput{
		WidthMM:          300,
		EffectiveDepthMM: 500,
		MomentKNm:        150,
		ShearKN:          100,
		FckMPa:           30,
		FykMPa:           500,
	})
	require.NoError(t, err)

	assert.False(t, res.Doubly)
	assert.InDelta(t, 0.1, res.K, 1e-9)
	assert.InDelta(t, 250.5, res.LimitMomentKNm, 1e-9)
	assert.InDelta(t, 451.132, res.LeverArmMM, 1e-3)
	assert.InDelta(t, 764.74, res.TensionSteelMM2, 1e-2)
	assert.Zero(t, res.CompressionSteelMM2)
	assert.InDelta(t, 59.977, res.ConcreteShearKN, 1e-3)
	assert.InDelta(t, 792, res.CrushingShearKN, 1e-6)
	assert.True(t, res.LinksRequired)
	assert.InDelta(t, 341.304, res.LinkSpacingMM, 1e-3)
	assert.Contains(t, res.Recommendations, "Provide links at 325 mm centres")
}

func TestReinforcementDoublyReinforced(t *testing.T) {
	res, err := concrete.DesignReinforcement(concrete.ReinforcementInput{
		WidthMM:          300,
		EffectiveDepthMM: 500,
		MomentKNm:        300,
		ShearKN:          100,
		FckMPa:           30,
		FykMPa:           500,
	})
	require.NoError(t, err)

	assert.True(t, res.Doubly)
	assert.InDelta(t, 410.26, res.LeverArmMM, 1e-2)
	assert.InDelta(t, 253.0, res.CompressionSteelMM2, 1e-2)
	assert.InDelta(t, 1657.35, res.TensionSteelMM2, 1e-2)
	assert.Contains(t, res.Recommendations, "Compression reinforcement required - consider a deeper section")
}

func TestReinforcementMinimumSteelAndNominalLinks(t *testing.T) {
	res, err := concrete.DesignReinforcement(concrete.ReinforcementInput{
		WidthMM:          300,
		EffectiveDepthMM: 500,
		MomentKNm:        10,
		ShearKN:          20,
		FckMPa:           30,
		FykMPa:           500,
	})
	require.NoError(t, err)

	assert.InDelta(t, 226.2, res.MinSteelMM2, 1e-6)
	assert.InDelta(t, res.MinSteelMM2, res.TensionSteelMM2, 1e-9)
	assert.False(t, res.LinksRequired)
	assert.InDelta(t, 375, res.LinkSpacingMM, 1e-9)
	assert.Equal(t, []string{"Reinforcement design is adequate"}, res.Recommendations)
}

func TestReinforcementCrushing(t *testing.T) {
	res, err := concrete.DesignReinforcement(concrete.ReinforcementInput{
		WidthMM:          300,
		EffectiveDepthMM: 500,
		MomentKNm:        150,
		ShearKN:          900,
		FckMPa:           30,
		FykMPa:           500,
	})
	require.NoError(t, err)

	c, ok := res.Report().Check("shearCrushingCheck")
	require.True(t, ok)
	assert.False(t, c.Passed)
	assert.Greater(t, c.Ratio, 1.0)
}

func TestReinforcementInvalid(t *testing.T) {
	_, err := concrete.DesignReinforcement(concrete.ReinforcementInput{WidthMM: 300})
	assert.Error(t, err)
}
