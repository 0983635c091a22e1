// Package models defines the calculation request accepted by the engine.
// Units are fixed per field: cross-section dimensions in mm, spans and
// depths in m, line loads in kN/m and point loads in kN.
package models

// Kind names a calculation routine.
type Kind string

const (
	KindBeamAnalysis        Kind = "beam-analysis"
	KindColumnDesign        Kind = "column-design"
	KindFoundationBearing   Kind = "foundation-bearing"
	KindPileDesign          Kind = "pile-design"
	KindConcreteMix         Kind = "concrete-mix"
	KindReinforcementDesign Kind = "reinforcement-design"
	KindSteelBeam           Kind = "steel-beam"
	KindSteelColumn         Kind = "steel-column"
	KindSteelConnection     Kind = "steel-connection"
	KindLoadCombination     Kind = "load-combination"
	KindWindLoad            Kind = "wind-load"
	KindSeismicLoad         Kind = "seismic-load"
	KindSlabDesign          Kind = "slab-design"
)

type StructureType string

const (
	StructureBeam       StructureType = "beam"
	StructureColumn     StructureType = "column"
	StructureFoundation StructureType = "foundation"
	StructurePile       StructureType = "pile"
	StructureSlab       StructureType = "slab"
)

type Material string

const (
	MaterialConcrete Material = "concrete"
	MaterialSteel    Material = "steel"
	MaterialTimber   Material = "timber"
)

// Request is the single input shape for every calculation kind.
type Request struct {
	StructureType StructureType `json:"structureType,omitempty" yaml:"structureType,omitempty"`
	Material      Material      `json:"material,omitempty" yaml:"material,omitempty"`
	Dimensions    Dimensions    `json:"dimensions" yaml:"dimensions"`
	Loads         Loads         `json:"loads" yaml:"loads"`
	Params        Params        `json:"params" yaml:"params"`
	Options       Options       `json:"options" yaml:"options"`
}

// Dimensions: Width, Height and Cover in mm; Length and Depth in m.
type Dimensions struct {
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Length float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Depth  float64 `json:"depth,omitempty" yaml:"depth,omitempty"`
	Cover  float64 `json:"cover,omitempty" yaml:"cover,omitempty"`
}

// Loads are characteristic (unfactored) actions.
type Loads struct {
	DeadLoad        float64 `json:"deadLoad" yaml:"deadLoad"`
	LiveLoad        float64 `json:"liveLoad" yaml:"liveLoad"`
	WindLoad        float64 `json:"windLoad,omitempty" yaml:"windLoad,omitempty"`
	EarthquakeLoad  float64 `json:"earthquakeLoad,omitempty" yaml:"earthquakeLoad,omitempty"`
	TemperatureLoad float64 `json:"temperatureLoad,omitempty" yaml:"temperatureLoad,omitempty"`
}

// Service returns the characteristic gravity load G + Q.
func (l Loads) Service() float64 { return l.DeadLoad + l.LiveLoad }

type Options struct {
	CheckCompliance bool `json:"checkCompliance" yaml:"checkCompliance"`
	// GradeOverrides keys: concrete, steel, rebar, bolt.
	GradeOverrides         map[string]string `json:"gradeOverrides,omitempty" yaml:"gradeOverrides,omitempty"`
	Standard               string            `json:"standard,omitempty" yaml:"standard,omitempty"`
	DeflectionLimitDivisor float64           `json:"deflectionLimitDivisor,omitempty" yaml:"deflectionLimitDivisor,omitempty"`
	// Strict turns table fallbacks (soil type, exposure class) into errors.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// Grade resolves the grade code for a material family: override first, then
// the explicit parameter, then def.
func (r Request) Grade(family, param, def string) string {
	if g, ok := r.Options.GradeOverrides[family]; ok && g != "" {
		return g
	}
	if param != "" {
		return param
	}
	return def
}
