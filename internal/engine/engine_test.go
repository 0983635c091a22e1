package engine_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Keystone/internal/engine"
	"Keystone/internal/models"
	"Keystone/internal/tables"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(tables.DefaultLimits(), zap.NewNop())
	require.NoError(t, err)
	return e
}

func beamRequest() models.Request {
	return models.Request{
		StructureType: models.StructureBeam,
		Material:      models.MaterialConcrete,
		Dimensions:    models.Dimensions{Width: 300, Height: 500, Length: 8},
		Loads:         models.Loads{DeadLoad: 15, LiveLoad: 10},
	}
}

func TestBeamAnalysis(t *testing.T) {
	e := newEngine(t)
	r, err := e.Calculate(context.Background(), engine.Domain, models.KindBeamAnalysis, beamRequest())
	require.NoError(t, err)

	require.True(t, r.Valid)
	assert.Equal(t, "beam-analysis", r.Kind)
	assert.InDelta(t, 200, r.Metric("maxBendingMoment"), 1e-9)
	assert.InDelta(t, 100, r.Metric("maxShearForce"), 1e-9)
	assert.InDelta(t, 14.2222, r.Metric("maxDeflection"), 1e-4)
	assert.InDelta(t, 32, r.Metric("allowableDeflection"), 1e-9)
	for name, m := range r.Results {
		assert.NotEmpty(t, m.Unit, name)
	}
	assert.Nil(t, r.Compliance)
}

func TestDeflectionLimitPerStandard(t *testing.T) {
	e := newEngine(t)
	req := beamRequest()
	req.Options.Standard = "UBBL"
	r, err := e.Calculate(context.Background(), engine.Domain, models.KindBeamAnalysis, req)
	require.NoError(t, err)
	assert.InDelta(t, 8000.0/360, r.Metric("allowableDeflection"), 1e-9)

	req.Options.DeflectionLimitDivisor = 500
	r, err = e.Calculate(context.Background(), engine.Domain, models.KindBeamAnalysis, req)
	require.NoError(t, err)
	assert.InDelta(t, 16, r.Metric("allowableDeflection"), 1e-9)

	req.Options = models.Options{Standard: "AS"}
	_, err = e.Calculate(context.Background(), engine.Domain, models.KindBeamAnalysis, req)
	assert.ErrorIs(t, err, engine.ErrUnknownStandard)
}

func TestUnsupportedCalculation(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	_, err := e.Calculate(ctx, "mechanical", models.KindBeamAnalysis, beamRequest())
	assert.ErrorIs(t, err, engine.ErrUnsupportedCalculation)

	_, err = e.Calculate(ctx, engine.Domain, models.Kind("truss-analysis"), beamRequest())
	assert.ErrorIs(t, err, engine.ErrUnsupportedCalculation)

	req := beamRequest()
	req.StructureType = models.StructureFoundation
	_, err = e.Calculate(ctx, engine.Domain, models.KindBeamAnalysis, req)
	assert.ErrorIs(t, err, engine.ErrUnsupportedCalculation)
}

func TestValidationFailureIsNotAnError(t *testing.T) {
	e := newEngine(t)
	for _, kind := range []models.Kind{models.KindBeamAnalysis, models.KindReinforcementDesign} {
		req := beamRequest()
		req.Dimensions.Width = 0
		r, err := e.Calculate(context.Background(), engine.Domain, kind, req)
		require.NoError(t, err, kind)
		assert.False(t, r.Valid, kind)
		assert.NotEmpty(t, r.Errors, kind)
		assert.Empty(t, r.Results, kind)
	}
}

func TestUnknownGrade(t *testing.T) {
	e := newEngine(t)
	req := models.Request{
		StructureType: models.StructureColumn,
		Dimensions:    models.Dimensions{Width: 300, Height: 300, Length: 3},
		Params:        models.Params{AxialLoadKN: 1000, ConcreteGrade: "C99"},
	}
	_, err := e.Calculate(context.Background(), engine.Domain, models.KindColumnDesign, req)
	assert.ErrorIs(t, err, tables.ErrUnknownGrade)
}

func foundationRequest() models.Request {
	return models.Request{
		StructureType: models.StructureFoundation,
		Dimensions:    models.Dimensions{Width: 2000, Length: 3, Depth: 1.5},
		Params:        models.Params{SoilType: "clay-stiff", AppliedLoadKN: 900},
		Options:       models.Options{CheckCompliance: true},
	}
}

func TestFoundationCompliance(t *testing.T) {
	e := newEngine(t)
	r, err := e.Calculate(context.Background(), engine.Domain, models.KindFoundationBearing, foundationRequest())
	require.NoError(t, err)

	qu := r.Metric("ultimateBearingCapacity")
	qa := r.Metric("allowableBearingCapacity")
	assert.Greater(t, qu, 0.0)
	assert.InDelta(t, qu/3, qa, 1e-9)

	require.NotNil(t, r.Compliance)
	state, ok := r.Compliance.Checks["bearingCapacityCheck"]
	require.True(t, ok)
	assert.Equal(t, r.Metric("appliedPressure")/qa <= 1.0, state.Passed)
	assert.True(t, r.Compliance.Compliant)

	sf, ok := r.Compliance.Checks["safetyFactorCheck"]
	require.True(t, ok)
	assert.True(t, sf.Passed)
	assert.Greater(t, sf.Ratio, 1.0)
}

func TestSoilFallback(t *testing.T) {
	e := newEngine(t)
	req := foundationRequest()
	req.Params.SoilType = "peat"

	r, err := e.Calculate(context.Background(), engine.Domain, models.KindFoundationBearing, req)
	require.NoError(t, err)
	assert.Equal(t, "clay-stiff", r.Attributes["soilType"])
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "peat")

	req.Options.Strict = true
	_, err = e.Calculate(context.Background(), engine.Domain, models.KindFoundationBearing, req)
	assert.ErrorIs(t, err, tables.ErrUnknownSoilType)
}

func TestFootingWidthInMetresRejected(t *testing.T) {
	e := newEngine(t)
	req := foundationRequest()
	req.Dimensions.Width = 2

	r, err := e.Calculate(context.Background(), engine.Domain, models.KindFoundationBearing, req)
	require.NoError(t, err)
	assert.False(t, r.Valid)
	assert.Contains(t, r.Errors, "Foundation width must be between 300 and 20000 mm")
	assert.Empty(t, r.Results)
}

func TestUndrainedSoilOverride(t *testing.T) {
	e := newEngine(t)
	req := foundationRequest()
	phi := 0.0
	req.Params.FrictionAngleDeg = &phi

	r, err := e.Calculate(context.Background(), engine.Domain, models.KindFoundationBearing, req)
	require.NoError(t, err)
	require.True(t, r.Valid, r.Errors)
	assert.InDelta(t, math.Pi+2, r.Metric("Nc"), 1e-12)
	assert.Equal(t, 1.0, r.Metric("Nq"))
	assert.Equal(t, 0.0, r.Metric("Ngamma"))

	req.Params.FrictionAngleDeg = nil
	r, err = e.Calculate(context.Background(), engine.Domain, models.KindFoundationBearing, req)
	require.NoError(t, err)
	assert.Greater(t, r.Metric("Nq"), 1.0)
}

func TestPileMethodSelection(t *testing.T) {
	e := newEngine(t)
	req := models.Request{
		Dimensions: models.Dimensions{Width: 600, Length: 10},
		Params: models.Params{AppliedLoadKN: 800, SoilLayers: []models.SoilLayer{
			{ThicknessM: 10, CohesionKPa: 20, EndBearingKPa: 180},
			{ThicknessM: 5, CohesionKPa: 150, EndBearingKPa: 4000},
		}},
	}
	area := math.Pi * 0.09

	r, err := e.Calculate(context.Background(), engine.Domain, models.KindPileDesign, req)
	require.NoError(t, err)
	require.True(t, r.Valid, r.Errors)
	assert.Equal(t, "layers", r.Attributes["method"])
	assert.Equal(t, 15.0, r.Metric("profileDepth"))
	assert.InDelta(t, 4000*area, r.Metric("endBearing"), 1e-9)

	req.Params.PileMethod = "length"
	r, err = e.Calculate(context.Background(), engine.Domain, models.KindPileDesign, req)
	require.NoError(t, err)
	assert.Equal(t, "length", r.Attributes["method"])
	assert.InDelta(t, 180*area, r.Metric("endBearing"), 1e-9)
}

func TestExposureFallback(t *testing.T) {
	e := newEngine(t)
	req := models.Request{Params: models.Params{ExposureClass: "XZ9"}}

	r, err := e.Calculate(context.Background(), engine.Domain, models.KindConcreteMix, req)
	require.NoError(t, err)
	assert.Equal(t, "XC2", r.Attributes["exposureClass"])
	assert.NotEmpty(t, r.Warnings)

	req.Options.Strict = true
	_, err = e.Calculate(context.Background(), engine.Domain, models.KindConcreteMix, req)
	assert.ErrorIs(t, err, tables.ErrUnknownExposureClass)
}

func TestMixTargetFromGrade(t *testing.T) {
	e := newEngine(t)
	req := models.Request{Params: models.Params{ConcreteGrade: "C40", ExposureClass: "XC1"}}
	r, err := e.Calculate(context.Background(), engine.Domain, models.KindConcreteMix, req)
	require.NoError(t, err)
	assert.InDelta(t, 40, r.Metric("characteristicStrength"), 1e-9)
	assert.Empty(t, r.Warnings)
}

func TestGoverningCombination(t *testing.T) {
	e := newEngine(t)
	req := models.Request{Loads: models.Loads{DeadLoad: 100, LiveLoad: 50, WindLoad: 30}}
	r, err := e.Calculate(context.Background(), engine.Domain, models.KindLoadCombination, req)
	require.NoError(t, err)

	names := make([]string, 0, len(r.Combinations))
	governing := 0
	for _, c := range r.Combinations {
		names = append(names, c.Name)
		if c.Governing {
			governing++
			assert.InDelta(t, 237, c.Value, 1e-9)
		}
	}
	assert.Equal(t, []string{"ULS 1: Dead + Live", "ULS 2: Dead + Live + Wind", "ULS 3: Dead + Wind + Live"}, names)
	assert.Equal(t, 1, governing)
}

func TestSteelColumnThroughColumnDesign(t *testing.T) {
	e := newEngine(t)
	req := models.Request{
		StructureType: models.StructureColumn,
		Material:      models.MaterialSteel,
		Dimensions:    models.Dimensions{Length: 4},
		Params:        models.Params{AxialLoadKN: 1000},
	}
	r, err := e.Calculate(context.Background(), engine.Domain, models.KindColumnDesign, req)
	require.NoError(t, err)
	assert.Equal(t, "column-design", r.Kind)
	assert.Equal(t, "203x203x46 UC", r.Attributes["section"])
}

func TestGradeOverride(t *testing.T) {
	e := newEngine(t)
	req := models.Request{
		StructureType: models.StructureBeam,
		Dimensions:    models.Dimensions{Length: 6},
		Params:        models.Params{BendingMomentKNm: 150, SteelGrade: "S275"},
		Options:       models.Options{GradeOverrides: map[string]string{"steel": "S355"}},
	}
	r, err := e.Calculate(context.Background(), engine.Domain, models.KindSteelBeam, req)
	require.NoError(t, err)
	assert.Equal(t, "S355", r.Attributes["grade"])
}

func TestEveryKindRuns(t *testing.T) {
	e := newEngine(t)
	reqs := map[models.Kind]models.Request{
		models.KindBeamAnalysis:      beamRequest(),
		models.KindColumnDesign:      {Dimensions: models.Dimensions{Width: 300, Height: 300, Length: 3}, Params: models.Params{AxialLoadKN: 1000}},
		models.KindFoundationBearing: foundationRequest(),
		models.KindPileDesign: {
			Dimensions: models.Dimensions{Width: 600, Length: 20},
			Params: models.Params{AppliedLoadKN: 2000, SoilLayers: []models.SoilLayer{
				{ThicknessM: 10, CohesionKPa: 40},
				{ThicknessM: 10, CohesionKPa: 80},
			}},
		},
		models.KindConcreteMix:         {},
		models.KindReinforcementDesign: {Dimensions: models.Dimensions{Width: 300, Height: 550}, Params: models.Params{BendingMomentKNm: 150, ShearForceKN: 100}},
		models.KindSlabDesign:          {Dimensions: models.Dimensions{Height: 200, Length: 4}, Loads: models.Loads{DeadLoad: 5, LiveLoad: 3}},
		models.KindSteelBeam:           {Dimensions: models.Dimensions{Length: 6}, Params: models.Params{BendingMomentKNm: 150, ShearForceKN: 100}},
		models.KindSteelColumn:         {Dimensions: models.Dimensions{Length: 4}, Params: models.Params{AxialLoadKN: 1000}},
		models.KindSteelConnection:     {Params: models.Params{AppliedForceKN: 200, BoltCount: 4, PlateThicknessMM: 10}},
		models.KindLoadCombination:     {Loads: models.Loads{DeadLoad: 100, LiveLoad: 50}},
		models.KindWindLoad:            {Params: models.Params{BuildingHeightM: 10, BuildingWidthM: 20}},
		models.KindSeismicLoad:         {Params: models.Params{BuildingWeightKN: 10000, BuildingHeightM: 30}},
	}
	require.Len(t, engine.Kinds(), len(reqs))

	for _, kind := range engine.Kinds() {
		req, ok := reqs[kind]
		require.True(t, ok, kind)
		req.Options.CheckCompliance = true

		r, err := e.Calculate(context.Background(), engine.Domain, kind, req)
		require.NoError(t, err, kind)
		assert.True(t, r.Valid, "%s: %v", kind, r.Errors)
		assert.Equal(t, string(kind), r.Kind)
		assert.NotEmpty(t, r.Results, kind)
		assert.NotEmpty(t, r.Standards, kind)
		assert.Empty(t, r.NonFinite(), kind)
		require.NotNil(t, r.Compliance, kind)
		assert.Len(t, r.Compliance.Checks, len(r.Checks), kind)
	}
}

func TestIdempotent(t *testing.T) {
	e := newEngine(t)
	a, err := e.Calculate(context.Background(), engine.Domain, models.KindBeamAnalysis, beamRequest())
	require.NoError(t, err)
	b, err := e.Calculate(context.Background(), engine.Domain, models.KindBeamAnalysis, beamRequest())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
