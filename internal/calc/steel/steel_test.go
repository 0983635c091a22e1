package steel_test

import (
	"testing"

	"Keystone/internal/calc/steel"
	"Keystone/internal/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grade(t *testing.T, code string) tables.SteelGrade {
	t.Helper()
	g, err := tables.Steel(code)
	require.NoError(t, err)
	return g
}

func TestSteelBeamFirstFit(t *testing.T) {
	res, err := steel.DesignBeam(steel.BeamInput{
		SpanM:     6,
		MomentKNm: 150,
		ShearKN:   100,
		Grade:     grade(t, "S275"),
	})
	require.NoError(t, err)

	assert.True(t, res.SectionFits)
	assert.Equal(t, "305x165x40 UB", res.Section.Designation)
	assert.InDelta(t, 545454.545, res.RequiredModulusMM3, 1e-3)
	assert.InDelta(t, 154, res.MomentResistanceKNm, 1e-9)
	assert.InDelta(t, 289.027, res.ShearResistanceKN, 1e-3)
	assert.InDelta(t, 31.513, res.DeflectionMM, 1e-3)
	assert.InDelta(t, 24, res.AllowableDeflectionMM, 1e-9)
	assert.Equal(t, []string{
		"Increase beam depth - deflection limit exceeded",
		"High moment utilization - consider larger section",
	}, res.Recommendations)

	r := res.Report()
	assert.Equal(t, "305x165x40 UB", r.Attributes["section"])
	c, ok := r.Check("deflectionCheck")
	require.True(t, ok)
	assert.False(t, c.Passed)
	c, ok = r.Check("momentCheck")
	require.True(t, ok)
	assert.True(t, c.Passed)
}

func TestSteelBeamPartialRestraint(t *testing.T) {
	full, err := steel.DesignBeam(steel.BeamInput{SpanM: 6, MomentKNm: 150, Grade: grade(t, "S275")})
	require.NoError(t, err)
	partial, err := steel.DesignBeam(steel.BeamInput{SpanM: 6, MomentKNm: 150, Grade: grade(t, "S275"), LateralSupport: steel.LateralPartial})
	require.NoError(t, err)

	assert.InDelta(t, 0.8, partial.LTBFactor, 1e-9)
	assert.Equal(t, "356x171x51 UB", partial.Section.Designation)
	assert.Greater(t, partial.RequiredModulusMM3, full.RequiredModulusMM3)
}

func TestSteelBeamLargestSectionWhenNothingFits(t *testing.T) {
	res, err := steel.DesignBeam(steel.BeamInput{SpanM: 10, MomentKNm: 2000, Grade: grade(t, "S275")})
	require.NoError(t, err)

	assert.False(t, res.SectionFits)
	assert.Equal(t, "610x229x101 UB", res.Section.Designation)
	assert.Greater(t, res.MomentUtilization, 1.0)
	assert.NotEmpty(t, res.Report().Warnings)
}

func TestSteelBeamInvalid(t *testing.T) {
	_, err := steel.DesignBeam(steel.BeamInput{SpanM: 6, MomentKNm: 100})
	assert.Error(t, err)

	_, err = steel.DesignBeam(steel.BeamInput{SpanM: 6, MomentKNm: 100, Grade: grade(t, "S275"), Family: "HEB"})
	assert.Error(t, err)
}

func TestSteelColumnBuckling(t *testing.T) {
	res, err := steel.DesignColumn(steel.ColumnInput{
		LengthM:      4,
		AxialKN:      1000,
		MomentTopKNm: 10,
		Grade:        grade(t, "S275"),
	})
	require.NoError(t, err)

	assert.Equal(t, "203x203x46 UC", res.Section.Designation)
	assert.InDelta(t, 72.727, res.Slenderness, 1e-3)
	assert.InDelta(t, 0.83773, res.RelativeSlenderness, 1e-5)
	assert.InDelta(t, 0.70090, res.Chi, 1e-5)
	assert.InDelta(t, 1129.50, res.BucklingKN, 1e-2)
	assert.InDelta(t, 123.75, res.MomentResistanceKNm, 1e-9)
	assert.InDelta(t, 1000/res.BucklingKN+10/123.75, res.InteractionRatio, 1e-9)
	assert.Equal(t, []string{"Steel column design is adequate"}, res.Recommendations)
}

func TestSteelColumnGoverningEndMoment(t *testing.T) {
	res, err := steel.DesignColumn(steel.ColumnInput{
		LengthM:         4,
		AxialKN:         1000,
		MomentTopKNm:    10,
		MomentBottomKNm: -20,
		Grade:           grade(t, "S275"),
	})
	require.NoError(t, err)
	assert.InDelta(t, 20, res.DesignMomentKNm, 1e-9)
	assert.Greater(t, res.InteractionRatio, 1.0)

	c, ok := res.Report().Check("interactionCheck")
	require.True(t, ok)
	assert.False(t, c.Passed)
}

func TestSteelColumnChiNeverExceedsOne(t *testing.T) {
	res, err := steel.DesignColumn(steel.ColumnInput{LengthM: 0.5, AxialKN: 100, Grade: grade(t, "S355")})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Chi, 1.0)
	assert.Equal(t, "152x152x23 UC", res.Section.Designation)
}

func TestBoltedConnection(t *testing.T) {
	bolt, err := tables.Bolt("8.8")
	require.NoError(t, err)

	res, err := steel.DesignConnection(steel.ConnectionInput{
		Type:             steel.Bolted,
		ForceKN:          200,
		Bolt:             bolt,
		BoltDiameterMM:   20,
		BoltCount:        4,
		PlateThicknessMM: 10,
		Plate:            grade(t, "S275"),
	})
	require.NoError(t, err)

	assert.InDelta(t, 120.637, res.BoltShearKN, 1e-3)
	assert.InDelta(t, 172, res.BoltBearingKN, 1e-9)
	assert.InDelta(t, 141.145, res.BoltTensionKN, 1e-3)
	assert.InDelta(t, 482.549, res.CapacityKN, 1e-3)
	assert.Equal(t, "Shear", res.GoverningMode)
	assert.InDelta(t, 200/res.CapacityKN, res.Utilization, 1e-9)
	assert.Equal(t, 2, res.RequiredBolts)
	assert.Equal(t, []string{"Connection design is adequate"}, res.Recommendations)
}

func TestBoltedConnectionOverloaded(t *testing.T) {
	bolt, err := tables.Bolt("4.6")
	require.NoError(t, err)

	res, err := steel.DesignConnection(steel.ConnectionInput{
		ForceKN:          400,
		Bolt:             bolt,
		BoltCount:        2,
		PlateThicknessMM: 8,
		Plate:            grade(t, "S275"),
	})
	require.NoError(t, err)
	assert.Equal(t, steel.Bolted, res.Input.Type)
	assert.Greater(t, res.Utilization, 1.0)
	assert.Contains(t, res.Recommendations[0], "Increase to at least")
}

func TestWeldedConnection(t *testing.T) {
	res, err := steel.DesignConnection(steel.ConnectionInput{
		Type:         steel.Welded,
		ForceKN:      150,
		WeldSizeMM:   6,
		WeldLengthMM: 200,
	})
	require.NoError(t, err)

	assert.InDelta(t, 120.96, res.CapacityKN, 1e-9)
	assert.InDelta(t, 7.4405, res.RequiredWeldSizeMM, 1e-4)
	assert.Equal(t, "Weld", res.GoverningMode)
	assert.Equal(t, []string{"Increase weld size to at least 8 mm"}, res.Recommendations)

	r := res.Report()
	assert.InDelta(t, 4.2, r.Metric("weldThroat"), 1e-9)
}

func TestConnectionInvalid(t *testing.T) {
	_, err := steel.DesignConnection(steel.ConnectionInput{Type: "riveted", ForceKN: 10})
	assert.Error(t, err)

	_, err = steel.DesignConnection(steel.ConnectionInput{Type: steel.Welded, ForceKN: 10})
	assert.Error(t, err)
}
