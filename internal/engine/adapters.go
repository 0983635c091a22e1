package engine

import (
	"fmt"

	"Keystone/internal/calc/beam"
	"Keystone/internal/calc/column"
	"Keystone/internal/calc/concrete"
	"Keystone/internal/calc/foundation"
	"Keystone/internal/calc/loads"
	"Keystone/internal/calc/piles"
	"Keystone/internal/calc/report"
	"Keystone/internal/calc/slab"
	"Keystone/internal/calc/steel"
	"Keystone/internal/models"
	"Keystone/internal/tables"
	"Keystone/internal/units"
)

// env carries one request through an adapter. Adapters convert request
// units into calculator inputs and collect table fallbacks as warnings.
type env struct {
	req      models.Request
	limits   tables.Limits
	warnings []string
}

func (e *env) warn(format string, args ...any) {
	e.warnings = append(e.warnings, fmt.Sprintf(format, args...))
}

func (e *env) material() models.Material {
	if e.req.Material == "" {
		return models.MaterialConcrete
	}
	return e.req.Material
}

func (e *env) concrete() (tables.ConcreteGrade, error) {
	return tables.Concrete(e.req.Grade("concrete", e.req.Params.ConcreteGrade, tables.DefaultConcreteGrade))
}

func (e *env) rebar() (tables.RebarGrade, error) {
	return tables.Rebar(e.req.Grade("rebar", e.req.Params.RebarGrade, tables.DefaultRebarGrade))
}

func (e *env) steel() (tables.SteelGrade, error) {
	return tables.Steel(e.req.Grade("steel", e.req.Params.SteelGrade, tables.DefaultSteelGrade))
}

// soil resolves the soil profile. Unknown tags fall back to the default
// profile with a warning, or fail in strict mode.
func (e *env) soil() (tables.SoilProfile, error) {
	tag := e.req.Params.SoilType
	if tag == "" {
		tag = tables.DefaultSoilType
	}
	if e.req.Options.Strict {
		return tables.Soil(tag)
	}
	p, ok := tables.SoilOrDefault(tag)
	if !ok {
		e.warn("unknown soil type %q, using %s", tag, tables.DefaultSoilType)
	}
	return p, nil
}

func (e *env) exposure() (tables.ExposureClass, error) {
	code := e.req.Params.ExposureClass
	if code == "" {
		code = tables.DefaultExposureClass
	}
	if e.req.Options.Strict {
		return tables.Exposure(code)
	}
	x, ok := tables.ExposureOrDefault(code)
	if !ok {
		e.warn("unknown exposure class %q, using %s", code, tables.DefaultExposureClass)
	}
	return x, nil
}

func beamAnalysis(e *env) (*report.Report, error) {
	m := e.material()
	el, err := tables.ElasticFor(string(m))
	if err != nil {
		return nil, err
	}
	d := e.req.Dimensions
	res, err := beam.Calculate(beam.Input{
		Material:           string(m),
		SpanM:              d.Length,
		UDLKNM:             e.req.Loads.Service(),
		WidthMM:            d.Width,
		HeightMM:           d.Height,
		ModulusMPa:         el.ModulusMPa,
		AllowableStressMPa: el.AllowableStressMPa,
		DeflectionDivisor:  e.limits.DeflectionDivisor,
		SpanDepthLimit:     e.limits.SpanDepthLimit,
		AdvisoryRatio:      e.limits.UtilizationAdvisory,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func columnDesign(e *env) (*report.Report, error) {
	m := e.material()
	if m == models.MaterialSteel {
		return steelColumn(e)
	}
	el, err := tables.ElasticFor(string(m))
	if err != nil {
		return nil, err
	}
	in := column.Input{
		Material:              string(m),
		HeightM:               e.req.Dimensions.Length,
		EffectiveLengthFactor: e.req.Params.EffectiveLengthFactor,
		WidthMM:               e.req.Dimensions.Width,
		DepthMM:               e.req.Dimensions.Height,
		AxialKN:               e.req.AxialKN(),
		MomentTopKNm:          e.req.Params.MomentTopKNm,
		MomentBottomKNm:       e.req.Params.MomentBottomKNm,
		ModulusMPa:            el.ModulusMPa,
		AllowableStressMPa:    el.AllowableStressMPa,
		CoverMM:               e.req.Dimensions.Cover,
		CriticalSlenderness:   e.limits.CriticalSlenderness,
		MaxSlenderness:        e.limits.MaxSlenderness,
		MinSteelRatio:         e.limits.MinReinforcementRatio,
		MaxSteelRatio:         e.limits.MaxReinforcementRatio,
	}
	in.MinCoverMM, _ = tables.MinCover("column")
	if m == models.MaterialConcrete {
		g, err := e.concrete()
		if err != nil {
			return nil, err
		}
		r, err := e.rebar()
		if err != nil {
			return nil, err
		}
		in.FckMPa, in.FykMPa = g.FckMPa, r.FykMPa
	}
	res, err := column.Calculate(in)
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func foundationBearing(e *env) (*report.Report, error) {
	s, err := e.soil()
	if err != nil {
		return nil, err
	}
	p := e.req.Params
	c, phi, gamma := s.CohesionKPa, s.FrictionAngleDeg, s.UnitWeightKNM3
	if p.CohesionKPa != nil {
		c = *p.CohesionKPa
	}
	if p.FrictionAngleDeg != nil {
		phi = *p.FrictionAngleDeg
	}
	if p.UnitWeightKNM3 != nil {
		gamma = *p.UnitWeightKNM3
	}
	d := e.req.Dimensions
	res, err := foundation.Calculate(foundation.Input{
		SoilType:          s.Type,
		WidthM:            units.MMToM(d.Width),
		LengthM:           d.Length,
		DepthM:            d.Depth,
		CohesionKPa:       c,
		FrictionAngleDeg:  phi,
		UnitWeightKNM3:    gamma,
		SoilModulusMPa:    s.ModulusMPa,
		AppliedLoadKN:     e.req.AppliedKN(),
		SafetyFactor:      e.limits.BearingSafetyFactor,
		SettlementLimitMM: e.limits.SettlementLimitMM,
		SettlementCapMM:   e.limits.SettlementCapMM,
		AdvisoryRatio:     e.limits.UtilizationAdvisory,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func pileDesign(e *env) (*report.Report, error) {
	p := e.req.Params
	layers := make([]piles.Layer, len(p.SoilLayers))
	for i, l := range p.SoilLayers {
		layers[i] = piles.Layer{
			ThicknessM:     l.ThicknessM,
			CohesionKPa:    l.CohesionKPa,
			AdhesionFactor: l.AdhesionFactor,
			EndBearingKPa:  l.EndBearingKPa,
		}
	}
	res, err := piles.Calculate(piles.Input{
		Shape:         piles.Shape(p.PileShape),
		Method:        piles.Method(p.PileMethod),
		SizeMM:        e.req.Dimensions.Width,
		LengthM:       e.req.Dimensions.Length,
		Layers:        layers,
		AppliedLoadKN: e.req.AppliedKN(),
		PileCount:     p.PileCount,
		SafetyFactor:  e.limits.PileSafetyFactor,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func concreteMix(e *env) (*report.Report, error) {
	x, err := e.exposure()
	if err != nil {
		return nil, err
	}
	p := e.req.Params
	target := p.TargetStrengthMPa
	if target == 0 && (p.ConcreteGrade != "" || e.req.Options.GradeOverrides["concrete"] != "") {
		g, err := e.concrete()
		if err != nil {
			return nil, err
		}
		target = g.FckMPa
	}
	res, err := concrete.DesignMix(concrete.MixInput{
		TargetStrengthMPa: target,
		SlumpMM:           p.SlumpMM,
		MaxAggregateMM:    p.MaxAggregateMM,
		Exposure:          x,
		WaterCementRatio:  p.WaterCementRatio,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func reinforcementDesign(e *env) (*report.Report, error) {
	g, err := e.concrete()
	if err != nil {
		return nil, err
	}
	r, err := e.rebar()
	if err != nil {
		return nil, err
	}
	d := e.req.Dimensions
	p := e.req.Params
	depth := p.EffectiveDepthMM
	if depth == 0 {
		cover := d.Cover
		if cover == 0 {
			cover, _ = tables.MinCover("beam")
		}
		depth = d.Height - cover - 20
	}
	res, err := concrete.DesignReinforcement(concrete.ReinforcementInput{
		WidthMM:            d.Width,
		HeightMM:           d.Height,
		EffectiveDepthMM:   depth,
		CompressionDepthMM: p.CompressionDepthMM,
		MomentKNm:          e.req.MomentKNm(),
		ShearKN:            e.req.ShearKN(),
		FckMPa:             g.FckMPa,
		FykMPa:             r.FykMPa,
		LinkAreaMM2:        p.LinkAreaMM2,
		MaxSteelRatio:      e.limits.MaxReinforcementRatio,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func slabDesign(e *env) (*report.Report, error) {
	g, err := e.concrete()
	if err != nil {
		return nil, err
	}
	r, err := e.rebar()
	if err != nil {
		return nil, err
	}
	d := e.req.Dimensions
	res, err := slab.Calculate(slab.Input{
		SpanM:          d.Length,
		ThicknessMM:    d.Height,
		CoverMM:        d.Cover,
		BarDiameterMM:  e.req.Params.BarDiameterMM,
		DeadKNM2:       e.req.Loads.DeadLoad,
		LiveKNM2:       e.req.Loads.LiveLoad,
		FckMPa:         g.FckMPa,
		FykMPa:         r.FykMPa,
		SpanDepthLimit: e.limits.SpanDepthLimit,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func steelBeam(e *env) (*report.Report, error) {
	g, err := e.steel()
	if err != nil {
		return nil, err
	}
	p := e.req.Params
	res, err := steel.DesignBeam(steel.BeamInput{
		SpanM:             e.req.Dimensions.Length,
		MomentKNm:         e.req.MomentKNm(),
		ShearKN:           e.req.ShearKN(),
		Family:            p.SectionFamily,
		Grade:             g,
		LateralSupport:    p.LateralSupport,
		DeflectionDivisor: e.limits.DeflectionDivisor,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func steelColumn(e *env) (*report.Report, error) {
	g, err := e.steel()
	if err != nil {
		return nil, err
	}
	p := e.req.Params
	res, err := steel.DesignColumn(steel.ColumnInput{
		LengthM:               e.req.Dimensions.Length,
		AxialKN:               e.req.AxialKN(),
		MomentTopKNm:          p.MomentTopKNm,
		MomentBottomKNm:       p.MomentBottomKNm,
		EffectiveLengthFactor: p.EffectiveLengthFactor,
		Family:                p.SectionFamily,
		Grade:                 g,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func steelConnection(e *env) (*report.Report, error) {
	p := e.req.Params
	in := steel.ConnectionInput{
		Type:             p.ConnectionType,
		ForceKN:          p.AppliedForceKN,
		BoltDiameterMM:   p.BoltDiameterMM,
		BoltCount:        p.BoltCount,
		PlateThicknessMM: p.PlateThicknessMM,
		WeldSizeMM:       p.WeldSizeMM,
		WeldLengthMM:     p.WeldLengthMM,
	}
	if in.Type != steel.Welded {
		b, err := tables.Bolt(e.req.Grade("bolt", p.BoltGrade, tables.DefaultBoltGrade))
		if err != nil {
			return nil, err
		}
		plate, err := e.steel()
		if err != nil {
			return nil, err
		}
		in.Bolt, in.Plate = b, plate
	}
	res, err := steel.DesignConnection(in)
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func loadCombination(e *env) (*report.Report, error) {
	l := e.req.Loads
	res, err := loads.Calculate(loads.Input{
		DeadKN:        l.DeadLoad,
		LiveKN:        l.LiveLoad,
		WindKN:        l.WindLoad,
		EarthquakeKN:  l.EarthquakeLoad,
		TemperatureKN: l.TemperatureLoad,
		LimitState:    e.req.Params.LimitState,
		BuildingType:  e.req.Params.BuildingType,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func windLoad(e *env) (*report.Report, error) {
	p := e.req.Params
	res, err := loads.Wind(loads.WindInput{
		HeightM:         p.BuildingHeightM,
		WidthM:          p.BuildingWidthM,
		LengthM:         p.BuildingLengthM,
		Location:        p.Location,
		TerrainCategory: p.TerrainCategory,
		BuildingType:    p.BuildingType,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

func seismicLoad(e *env) (*report.Report, error) {
	p := e.req.Params
	res, err := loads.Seismic(loads.SeismicInput{
		WeightKN:         p.BuildingWeightKN,
		HeightM:          p.BuildingHeightM,
		Location:         p.Location,
		SiteClass:        p.SiteClass,
		StructuralSystem: p.StructuralSystem,
		ImportanceFactor: p.ImportanceFactor,
	})
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}
