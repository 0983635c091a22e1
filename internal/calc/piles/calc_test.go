package piles_test

import (
	"math"
	"testing"

	"Keystone/internal/calc/piles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoLayers() []piles.Layer {
	return []piles.Layer{
		{ThicknessM: 10, CohesionKPa: 40},
		{ThicknessM: 10, CohesionKPa: 80},
	}
}

func TestRoundPile(t *testing.T) {
	res, err := piles.Calculate(piles.Input{
		SizeMM:        600,
		LengthM:       20,
		Layers:        twoLayers(),
		AppliedLoadKN: 2000,
	})
	require.NoError(t, err)

	p := math.Pi * 0.6
	assert.InDelta(t, 0.7*40*p*10+0.7*80*p*10, res.ShaftResistanceKN, 1e-9)
	assert.InDelta(t, 9*80*math.Pi*0.09, res.BaseResistanceKN, 1e-9)
	assert.InDelta(t, res.ShaftResistanceKN+res.BaseResistanceKN, res.UltimateKN, 1e-9)
	assert.InDelta(t, res.UltimateKN/2.5, res.AllowableKN, 1e-9)
	assert.Equal(t, 3, res.RequiredPiles)
	assert.Equal(t, 1, res.ToeLayer)
	assert.Equal(t, int(math.Ceil(2000/res.AllowableKN)), res.RequiredPiles)
}

func TestSquarePileAndShortToe(t *testing.T) {
	res, err := piles.Calculate(piles.Input{
		Shape:         piles.ShapeSquare,
		Method:        piles.MethodLength,
		SizeMM:        400,
		LengthM:       8,
		Layers:        []piles.Layer{{ThicknessM: 10, CohesionKPa: 50, EndBearingKPa: 1200}, {ThicknessM: 5, CohesionKPa: 200}},
		AppliedLoadKN: 300,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.6, res.PerimeterM, 1e-12)
	assert.InDelta(t, 0.7*50*1.6*8, res.ShaftResistanceKN, 1e-9)
	assert.Equal(t, 0, res.ToeLayer)
	assert.InDelta(t, 1200*0.16, res.BaseResistanceKN, 1e-9)
}

func TestPileBelowLastLayer(t *testing.T) {
	res, err := piles.Calculate(piles.Input{
		Method:        piles.MethodLength,
		SizeMM:        500,
		LengthM:       12,
		Layers:        []piles.Layer{{ThicknessM: 10, CohesionKPa: 60, AdhesionFactor: 0.5}},
		AppliedLoadKN: 500,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.5*60*math.Pi*0.5*12, res.ShaftResistanceKN, 1e-9)
}

func TestLayerMethodUsesWholeProfile(t *testing.T) {
	layers := []piles.Layer{
		{ThicknessM: 10, CohesionKPa: 20, EndBearingKPa: 180},
		{ThicknessM: 5, CohesionKPa: 150, EndBearingKPa: 4000},
	}
	in := piles.Input{SizeMM: 600, LengthM: 10, Layers: layers, AppliedLoadKN: 800}

	res, err := piles.Calculate(in)
	require.NoError(t, err)
	p := math.Pi * 0.6
	area := math.Pi * 0.09
	assert.Equal(t, piles.MethodLayers, res.Input.Method)
	assert.InDelta(t, 0.7*20*p*10+0.7*150*p*5, res.ShaftResistanceKN, 1e-9)
	assert.Equal(t, 1, res.ToeLayer)
	assert.InDelta(t, 4000*area, res.BaseResistanceKN, 1e-9)
	assert.InDelta(t, 1130.973, res.BaseResistanceKN, 1e-3)
	assert.Equal(t, 15.0, res.ProfileDepthM)
	assert.Contains(t, res.Recommendations,
		"Soil layers total 15.0 m but the pile is 10.0 m long - check the profile or use the length method")
	assert.Equal(t, "layers", res.Report().Attributes["method"])

	in.Method = piles.MethodLength
	res, err = piles.Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.7*20*p*10, res.ShaftResistanceKN, 1e-9)
	assert.Equal(t, 0, res.ToeLayer)
	assert.InDelta(t, 180*area, res.BaseResistanceKN, 1e-9)
}

func TestGroupCheck(t *testing.T) {
	in := piles.Input{SizeMM: 600, LengthM: 20, Layers: twoLayers(), AppliedLoadKN: 2000, PileCount: 2}
	res, err := piles.Calculate(in)
	require.NoError(t, err)
	c, ok := res.Report().Check("pileCapacityCheck")
	require.True(t, ok)
	assert.False(t, c.Passed)
	assert.Contains(t, res.Recommendations, "Increase pile count to 3 or extend pile length")

	in.PileCount = 4
	res, err = piles.Calculate(in)
	require.NoError(t, err)
	c, _ = res.Report().Check("pileCapacityCheck")
	assert.True(t, c.Passed)
}

func TestPileInvalid(t *testing.T) {
	_, err := piles.Calculate(piles.Input{SizeMM: 600, LengthM: 20, AppliedLoadKN: 100})
	assert.Error(t, err)
	_, err = piles.Calculate(piles.Input{Method: "toe", SizeMM: 600, LengthM: 20, AppliedLoadKN: 100, Layers: twoLayers()})
	assert.Error(t, err)
	_, err = piles.Calculate(piles.Input{Shape: "hex", SizeMM: 600, LengthM: 20, AppliedLoadKN: 100, Layers: twoLayers()})
	assert.Error(t, err)
}
