package models_test

import (
	"testing"

	"Keystone/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGradeResolution(t *testing.T) {
	req := models.Request{}
	assert.Equal(t, "C30", req.Grade("concrete", "", "C30"))
	assert.Equal(t, "C40", req.Grade("concrete", "C40", "C30"))

	req.Options.GradeOverrides = map[string]string{"concrete": "C25"}
	assert.Equal(t, "C25", req.Grade("concrete", "C40", "C30"))
	assert.Equal(t, "S275", req.Grade("steel", "", "S275"))
}

func TestKindsAreUnique(t *testing.T) {
	seen := map[models.Kind]bool{}
	for _, k := range models.Kinds() {
		assert.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
	}
	assert.Len(t, seen, 13)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, models.MaterialTimber.Valid())
	assert.False(t, models.Material("glass").Valid())
	assert.True(t, models.StructurePile.Valid())
	assert.False(t, models.StructureType("truss").Valid())
}

func TestServiceLoad(t *testing.T) {
	assert.Equal(t, 37.5, models.Loads{DeadLoad: 25, LiveLoad: 12.5}.Service())
}

func TestDerivedLoads(t *testing.T) {
	req := models.Request{
		Dimensions: models.Dimensions{Length: 6},
		Loads:      models.Loads{DeadLoad: 10, LiveLoad: 5},
	}
	assert.InDelta(t, 21.0, req.FactoredLoad(), 1e-9)
	assert.InDelta(t, 21.0, req.AxialKN(), 1e-9)
	assert.InDelta(t, 15.0, req.AppliedKN(), 1e-9)
	assert.InDelta(t, 94.5, req.MomentKNm(), 1e-9)
	assert.InDelta(t, 63.0, req.ShearKN(), 1e-9)

	req.Params.AxialLoadKN = 500
	req.Params.AppliedLoadKN = 800
	req.Params.BendingMomentKNm = 120
	req.Params.ShearForceKN = 80
	assert.Equal(t, 500.0, req.AxialKN())
	assert.Equal(t, 800.0, req.AppliedKN())
	assert.Equal(t, 120.0, req.MomentKNm())
	assert.Equal(t, 80.0, req.ShearKN())
}
