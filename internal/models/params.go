package models

// Params carries kind-specific inputs. Each field name ends in its unit.
// Zero means "not supplied" and the calculator default applies.
type Params struct {
	ConcreteGrade string `json:"concreteGrade,omitempty" yaml:"concreteGrade,omitempty"`
	SteelGrade    string `json:"steelGrade,omitempty" yaml:"steelGrade,omitempty"`
	RebarGrade    string `json:"rebarGrade,omitempty" yaml:"rebarGrade,omitempty"`
	BoltGrade     string `json:"boltGrade,omitempty" yaml:"boltGrade,omitempty"`

	// columns
	AxialLoadKN           float64 `json:"axialLoadKN,omitempty" yaml:"axialLoadKN,omitempty"`
	MomentTopKNm          float64 `json:"momentTopKNm,omitempty" yaml:"momentTopKNm,omitempty"`
	MomentBottomKNm       float64 `json:"momentBottomKNm,omitempty" yaml:"momentBottomKNm,omitempty"`
	EffectiveLengthFactor float64 `json:"effectiveLengthFactor,omitempty" yaml:"effectiveLengthFactor,omitempty"`

	// foundations and piles
	// Soil overrides replace the profile value when set; nil keeps the
	// profile, so an explicit 0 (undrained φ) is honoured.
	SoilType         string      `json:"soilType,omitempty" yaml:"soilType,omitempty"`
	CohesionKPa      *float64    `json:"cohesionKPa,omitempty" yaml:"cohesionKPa,omitempty"`
	FrictionAngleDeg *float64    `json:"frictionAngleDeg,omitempty" yaml:"frictionAngleDeg,omitempty"`
	UnitWeightKNM3   *float64    `json:"unitWeightKNM3,omitempty" yaml:"unitWeightKNM3,omitempty"`
	AppliedLoadKN    float64     `json:"appliedLoadKN,omitempty" yaml:"appliedLoadKN,omitempty"`
	SoilLayers       []SoilLayer `json:"soilLayers,omitempty" yaml:"soilLayers,omitempty"`
	PileShape        string      `json:"pileShape,omitempty" yaml:"pileShape,omitempty"`
	PileCount        int         `json:"pileCount,omitempty" yaml:"pileCount,omitempty"`
	PileMethod       string      `json:"pileMethod,omitempty" yaml:"pileMethod,omitempty"`

	// concrete mix
	TargetStrengthMPa float64 `json:"targetStrengthMPa,omitempty" yaml:"targetStrengthMPa,omitempty"`
	SlumpMM           float64 `json:"slumpMM,omitempty" yaml:"slumpMM,omitempty"`
	MaxAggregateMM    float64 `json:"maxAggregateMM,omitempty" yaml:"maxAggregateMM,omitempty"`
	ExposureClass     string  `json:"exposureClass,omitempty" yaml:"exposureClass,omitempty"`
	WaterCementRatio  float64 `json:"waterCementRatio,omitempty" yaml:"waterCementRatio,omitempty"`

	// reinforcement and slabs
	EffectiveDepthMM   float64 `json:"effectiveDepthMM,omitempty" yaml:"effectiveDepthMM,omitempty"`
	CompressionDepthMM float64 `json:"compressionDepthMM,omitempty" yaml:"compressionDepthMM,omitempty"`
	BendingMomentKNm   float64 `json:"bendingMomentKNm,omitempty" yaml:"bendingMomentKNm,omitempty"`
	ShearForceKN       float64 `json:"shearForceKN,omitempty" yaml:"shearForceKN,omitempty"`
	LinkAreaMM2        float64 `json:"linkAreaMM2,omitempty" yaml:"linkAreaMM2,omitempty"`
	BarDiameterMM      float64 `json:"barDiameterMM,omitempty" yaml:"barDiameterMM,omitempty"`

	// steel members and connections
	SectionFamily    string  `json:"sectionFamily,omitempty" yaml:"sectionFamily,omitempty"`
	LateralSupport   string  `json:"lateralSupport,omitempty" yaml:"lateralSupport,omitempty"`
	ConnectionType   string  `json:"connectionType,omitempty" yaml:"connectionType,omitempty"`
	AppliedForceKN   float64 `json:"appliedForceKN,omitempty" yaml:"appliedForceKN,omitempty"`
	BoltDiameterMM   float64 `json:"boltDiameterMM,omitempty" yaml:"boltDiameterMM,omitempty"`
	BoltCount        int     `json:"boltCount,omitempty" yaml:"boltCount,omitempty"`
	PlateThicknessMM float64 `json:"plateThicknessMM,omitempty" yaml:"plateThicknessMM,omitempty"`
	WeldSizeMM       float64 `json:"weldSizeMM,omitempty" yaml:"weldSizeMM,omitempty"`
	WeldLengthMM     float64 `json:"weldLengthMM,omitempty" yaml:"weldLengthMM,omitempty"`

	// actions
	LimitState       string  `json:"limitState,omitempty" yaml:"limitState,omitempty"`
	BuildingType     string  `json:"buildingType,omitempty" yaml:"buildingType,omitempty"`
	Location         string  `json:"location,omitempty" yaml:"location,omitempty"`
	TerrainCategory  string  `json:"terrainCategory,omitempty" yaml:"terrainCategory,omitempty"`
	BuildingHeightM  float64 `json:"buildingHeightM,omitempty" yaml:"buildingHeightM,omitempty"`
	BuildingWidthM   float64 `json:"buildingWidthM,omitempty" yaml:"buildingWidthM,omitempty"`
	BuildingLengthM  float64 `json:"buildingLengthM,omitempty" yaml:"buildingLengthM,omitempty"`
	BuildingWeightKN float64 `json:"buildingWeightKN,omitempty" yaml:"buildingWeightKN,omitempty"`
	SiteClass        string  `json:"siteClass,omitempty" yaml:"siteClass,omitempty"`
	StructuralSystem string  `json:"structuralSystem,omitempty" yaml:"structuralSystem,omitempty"`
	ImportanceFactor float64 `json:"importanceFactor,omitempty" yaml:"importanceFactor,omitempty"`
}

// SoilLayer is one stratum along a pile shaft, listed top down.
type SoilLayer struct {
	ThicknessM     float64 `json:"thicknessM" yaml:"thicknessM"`
	CohesionKPa    float64 `json:"cohesionKPa" yaml:"cohesionKPa"`
	AdhesionFactor float64 `json:"adhesionFactor,omitempty" yaml:"adhesionFactor,omitempty"`
	EndBearingKPa  float64 `json:"endBearingKPa,omitempty" yaml:"endBearingKPa,omitempty"`
}
