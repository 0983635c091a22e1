// Package validate range-checks calculation requests. Violations are
// collected, never returned as Go errors.
package validate

import (
	"fmt"
	"math"

	"Keystone/internal/models"
)

type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type checker struct {
	errs []string
}

func (c *checker) fail(msg string) { c.errs = append(c.errs, msg) }

func (c *checker) finite(v float64, field string) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		c.fail(fmt.Sprintf("%s must be a finite number", field))
		return false
	}
	return true
}

// openClosed requires lo < v <= hi.
func (c *checker) openClosed(v, lo, hi float64, field, msg string) {
	if c.finite(v, field) && (v <= lo || v > hi) {
		c.fail(msg)
	}
}

// closed requires lo <= v <= hi.
func (c *checker) closed(v, lo, hi float64, field, msg string) {
	if c.finite(v, field) && (v < lo || v > hi) {
		c.fail(msg)
	}
}

func (c *checker) positive(v float64, field, msg string) {
	if c.finite(v, field) && v <= 0 {
		c.fail(msg)
	}
}

func (c *checker) nonNegative(v float64, field string) {
	if c.finite(v, field) && v < 0 {
		c.fail(fmt.Sprintf("%s must not be negative", field))
	}
}

// optional applies check only when v was supplied.
func (c *checker) optional(v float64, check func()) {
	if v != 0 {
		check()
	}
}

func (c *checker) result() Result {
	return Result{IsValid: len(c.errs) == 0, Errors: append([]string{}, c.errs...)}
}

// Request validates req for kind.
func Request(kind models.Kind, req models.Request) Result {
	c := &checker{}
	if req.Material != "" && !req.Material.Valid() {
		c.fail(fmt.Sprintf("Material %q is not one of concrete, steel, timber", req.Material))
	}
	if req.StructureType != "" && !req.StructureType.Valid() {
		c.fail(fmt.Sprintf("Structure type %q is not supported", req.StructureType))
	}
	loads(c, req.Loads)
	if req.Dimensions.Cover != 0 {
		c.closed(req.Dimensions.Cover, 10, 100, "cover", "Concrete cover must be between 10 and 100 mm")
	}

	switch kind {
	case models.KindBeamAnalysis:
		beam(c, req)
	case models.KindColumnDesign:
		column(c, req)
	case models.KindFoundationBearing:
		foundation(c, req)
	case models.KindPileDesign:
		pile(c, req)
	case models.KindConcreteMix:
		mix(c, req.Params)
	case models.KindReinforcementDesign:
		reinforcement(c, req)
	case models.KindSlabDesign:
		slab(c, req)
	case models.KindSteelBeam:
		steelBeam(c, req)
	case models.KindSteelColumn:
		steelColumn(c, req)
	case models.KindSteelConnection:
		connection(c, req.Params)
	case models.KindLoadCombination:
		combination(c, req.Loads)
	case models.KindWindLoad:
		wind(c, req.Params)
	case models.KindSeismicLoad:
		seismic(c, req.Params)
	}
	return c.result()
}

func loads(c *checker, l models.Loads) {
	c.nonNegative(l.DeadLoad, "deadLoad")
	c.nonNegative(l.LiveLoad, "liveLoad")
	c.finite(l.WindLoad, "windLoad")
	c.nonNegative(l.EarthquakeLoad, "earthquakeLoad")
	c.finite(l.TemperatureLoad, "temperatureLoad")
}

func section(c *checker, d models.Dimensions, member string) {
	c.closed(d.Width, 100, 2000, "width", fmt.Sprintf("%s width must be between 100 and 2000 mm", member))
	c.closed(d.Height, 150, 3000, "height", fmt.Sprintf("%s height must be between 150 and 3000 mm", member))
}

func beam(c *checker, req models.Request) {
	c.openClosed(req.Dimensions.Length, 0, 50, "length", "Beam length must be between 0 and 50 meters")
	c.openClosed(req.Loads.Service(), 0, 1000, "load", "Load must be between 0 and 1000 kN/m")
	section(c, req.Dimensions, "Beam")
}

func column(c *checker, req models.Request) {
	c.openClosed(req.Dimensions.Length, 0, 30, "length", "Column height must be between 0 and 30 meters")
	c.positive(req.AxialKN(), "axialLoad", "Axial load must be greater than 0")
	if req.Material == models.MaterialSteel {
		return
	}
	c.closed(req.Dimensions.Width, 150, 2000, "width", "Column width must be between 150 and 2000 mm")
	c.closed(req.Dimensions.Height, 150, 2000, "height", "Column depth must be between 150 and 2000 mm")
	c.optional(req.Params.EffectiveLengthFactor, func() {
		c.closed(req.Params.EffectiveLengthFactor, 0.5, 2.5, "effectiveLengthFactor", "Effective length factor must be between 0.5 and 2.5")
	})
}

func foundation(c *checker, req models.Request) {
	d := req.Dimensions
	c.closed(d.Width, 300, 20000, "width", "Foundation width must be between 300 and 20000 mm")
	c.openClosed(d.Length, 0, 50, "length", "Foundation length must be between 0 and 50 meters")
	c.closed(d.Depth, 0.5, 10, "depth", "Foundation depth must be between 0.5 and 10 meters")
	c.positive(req.AppliedKN(), "appliedLoad", "Applied load must be greater than 0")
	soil(c, req.Params)
}

func soil(c *checker, p models.Params) {
	if p.CohesionKPa != nil {
		c.nonNegative(*p.CohesionKPa, "cohesionKPa")
	}
	if p.FrictionAngleDeg != nil {
		c.closed(*p.FrictionAngleDeg, 0, 45, "frictionAngleDeg", "Friction angle must be between 0 and 45 degrees")
	}
	if p.UnitWeightKNM3 != nil {
		c.closed(*p.UnitWeightKNM3, 10, 25, "unitWeightKNM3", "Soil unit weight must be between 10 and 25 kN/m³")
	}
}

func pile(c *checker, req models.Request) {
	c.closed(req.Dimensions.Width, 150, 3000, "width", "Pile diameter must be between 150 and 3000 mm")
	c.openClosed(req.Dimensions.Length, 0, 100, "length", "Pile length must be between 0 and 100 meters")
	c.positive(req.AppliedKN(), "appliedLoad", "Applied load must be greater than 0")
	switch req.Params.PileShape {
	case "", "round", "square":
	default:
		c.fail(fmt.Sprintf("Pile shape %q must be round or square", req.Params.PileShape))
	}
	switch req.Params.PileMethod {
	case "", "layers", "length":
	default:
		c.fail(fmt.Sprintf("Pile method %q must be layers or length", req.Params.PileMethod))
	}
	if req.Params.PileCount < 0 {
		c.fail("Pile count must not be negative")
	}
	if len(req.Params.SoilLayers) == 0 {
		c.fail("At least one soil layer is required")
	}
	for i, l := range req.Params.SoilLayers {
		c.positive(l.ThicknessM, fmt.Sprintf("soilLayers[%d].thicknessM", i), fmt.Sprintf("Soil layer %d thickness must be greater than 0", i+1))
		c.nonNegative(l.CohesionKPa, fmt.Sprintf("soilLayers[%d].cohesionKPa", i))
		c.nonNegative(l.EndBearingKPa, fmt.Sprintf("soilLayers[%d].endBearingKPa", i))
		c.optional(l.AdhesionFactor, func() {
			c.openClosed(l.AdhesionFactor, 0, 1, fmt.Sprintf("soilLayers[%d].adhesionFactor", i), fmt.Sprintf("Soil layer %d adhesion factor must be between 0 and 1", i+1))
		})
	}
}

func mix(c *checker, p models.Params) {
	c.optional(p.TargetStrengthMPa, func() {
		c.closed(p.TargetStrengthMPa, 15, 80, "targetStrengthMPa", "Target strength must be between 15 and 80 N/mm²")
	})
	c.optional(p.SlumpMM, func() {
		c.closed(p.SlumpMM, 25, 200, "slumpMM", "Slump must be between 25 and 200 mm")
	})
	c.optional(p.MaxAggregateMM, func() {
		c.closed(p.MaxAggregateMM, 10, 40, "maxAggregateMM", "Maximum aggregate size must be between 10 and 40 mm")
	})
	c.optional(p.WaterCementRatio, func() {
		c.closed(p.WaterCementRatio, 0.25, 0.8, "waterCementRatio", "Water/cement ratio must be between 0.25 and 0.8")
	})
}

func reinforcement(c *checker, req models.Request) {
	section(c, req.Dimensions, "Section")
	c.positive(req.MomentKNm(), "bendingMoment", "Bending moment must be greater than 0")
	c.nonNegative(req.Params.ShearForceKN, "shearForceKN")
	if d := req.Params.EffectiveDepthMM; d != 0 {
		c.positive(d, "effectiveDepthMM", "Effective depth must be greater than 0")
		if d >= req.Dimensions.Height && req.Dimensions.Height > 0 {
			c.fail("Effective depth must be less than the section height")
		}
	}
}

func slab(c *checker, req models.Request) {
	c.closed(req.Dimensions.Height, 100, 500, "height", "Slab thickness must be between 100 and 500 mm")
	c.openClosed(req.Dimensions.Length, 0, 15, "length", "Slab span must be between 0 and 15 meters")
	c.positive(req.Loads.Service(), "load", "Slab load must be greater than 0")
	c.optional(req.Params.BarDiameterMM, func() {
		c.closed(req.Params.BarDiameterMM, 6, 25, "barDiameterMM", "Bar diameter must be between 6 and 25 mm")
	})
}

func steelBeam(c *checker, req models.Request) {
	c.openClosed(req.Dimensions.Length, 0, 30, "length", "Steel beam span must be between 0 and 30 meters")
	c.positive(req.MomentKNm(), "bendingMoment", "Bending moment must be greater than 0")
	switch req.Params.LateralSupport {
	case "", "full", "partial":
	default:
		c.fail(fmt.Sprintf("Lateral support %q must be full or partial", req.Params.LateralSupport))
	}
}

func steelColumn(c *checker, req models.Request) {
	c.openClosed(req.Dimensions.Length, 0, 20, "length", "Steel column height must be between 0 and 20 meters")
	c.positive(req.AxialKN(), "axialLoad", "Axial load must be greater than 0")
}

func connection(c *checker, p models.Params) {
	c.positive(p.AppliedForceKN, "appliedForceKN", "Applied force must be greater than 0")
	switch p.ConnectionType {
	case "", "bolted":
		c.optional(p.BoltDiameterMM, func() {
			c.closed(p.BoltDiameterMM, 8, 40, "boltDiameterMM", "Bolt diameter must be between 8 and 40 mm")
		})
		if p.BoltCount < 1 {
			c.fail("Number of bolts must be at least 1")
		}
		c.positive(p.PlateThicknessMM, "plateThicknessMM", "Plate thickness must be greater than 0")
	case "welded":
		c.closed(p.WeldSizeMM, 3, 25, "weldSizeMM", "Weld leg size must be between 3 and 25 mm")
		c.positive(p.WeldLengthMM, "weldLengthMM", "Weld length must be greater than 0")
	default:
		c.fail(fmt.Sprintf("Connection type %q must be bolted or welded", p.ConnectionType))
	}
}

func combination(c *checker, l models.Loads) {
	if l.DeadLoad+l.LiveLoad+math.Abs(l.WindLoad)+l.EarthquakeLoad+math.Abs(l.TemperatureLoad) <= 0 {
		c.fail("At least one load must be greater than 0")
	}
}

func wind(c *checker, p models.Params) {
	c.openClosed(p.BuildingHeightM, 0, 500, "buildingHeightM", "Building height must be between 0 and 500 meters")
	c.positive(p.BuildingWidthM, "buildingWidthM", "Building width must be greater than 0")
	c.nonNegative(p.BuildingLengthM, "buildingLengthM")
}

func seismic(c *checker, p models.Params) {
	c.positive(p.BuildingWeightKN, "buildingWeightKN", "Building weight must be greater than 0")
	c.openClosed(p.BuildingHeightM, 0, 500, "buildingHeightM", "Building height must be between 0 and 500 meters")
	c.optional(p.ImportanceFactor, func() {
		c.openClosed(p.ImportanceFactor, 0, 2, "importanceFactor", "Importance factor must be between 0 and 2")
	})
}
