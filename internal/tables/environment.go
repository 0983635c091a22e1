package tables

// Partial factors on actions for the ultimate limit state (EN 1990 set B).
const (
	GammaG = 1.35
	GammaQ = 1.5
	GammaW = 1.5
	GammaE = 1.0
	GammaT = 1.5
)

// Psi holds ψ factors for the variable actions.
type Psi struct {
	Live float64 `json:"live"`
	Wind float64 `json:"wind"`
	Snow float64 `json:"snow"`
}

type CombinationFactors struct {
	Psi0 Psi `json:"psi0"`
	Psi1 Psi `json:"psi1"`
	Psi2 Psi `json:"psi2"`
}

const DefaultBuildingType = "residential"

var combinationFactors = map[string]CombinationFactors{
	"residential": {
		Psi0: Psi{Live: 0.7, Wind: 0.6, Snow: 0.5},
		Psi1: Psi{Live: 0.5, Wind: 0.2, Snow: 0.2},
		Psi2: Psi{Live: 0.3},
	},
	"office": {
		Psi0: Psi{Live: 0.7, Wind: 0.6, Snow: 0.5},
		Psi1: Psi{Live: 0.5, Wind: 0.2, Snow: 0.2},
		Psi2: Psi{Live: 0.3},
	},
	"retail": {
		Psi0: Psi{Live: 0.7, Wind: 0.6, Snow: 0.5},
		Psi1: Psi{Live: 0.7, Wind: 0.2, Snow: 0.2},
		Psi2: Psi{Live: 0.6},
	},
}

// Combination returns the ψ factors for a building type; unknown types use
// the residential set.
func Combination(buildingType string) (CombinationFactors, bool) {
	if f, ok := combinationFactors[buildingType]; ok {
		return f, true
	}
	return combinationFactors[DefaultBuildingType], false
}

// Basic wind speeds in m/s (3 s gust at 10 m).
const DefaultWindLocation = "kuala-lumpur"

var windSpeeds = map[string]float64{
	"kuala-lumpur":  32,
	"johor-bahru":   35,
	"penang":        38,
	"kota-kinabalu": 42,
	"kuching":       35,
	"ipoh":          30,
	"malacca":       33,
}

func WindSpeed(location string) (float64, bool) {
	if v, ok := windSpeeds[location]; ok {
		return v, true
	}
	return windSpeeds[DefaultWindLocation], false
}

type Terrain struct {
	A    float64 `json:"a"`
	Z0M  float64 `json:"z0_m"`
	ZMin float64 `json:"zmin_m"`
}

const DefaultTerrain = "II"

var terrains = map[string]Terrain{
	"I":   {A: 0.16, Z0M: 0.01, ZMin: 2},
	"II":  {A: 0.19, Z0M: 0.05, ZMin: 4},
	"III": {A: 0.24, Z0M: 0.3, ZMin: 8},
	"IV":  {A: 0.31, Z0M: 1.0, ZMin: 16},
}

func TerrainFor(category string) (Terrain, bool) {
	if t, ok := terrains[category]; ok {
		return t, true
	}
	return terrains[DefaultTerrain], false
}

// PressureCoefficients are external pressure coefficients per face.
type PressureCoefficients struct {
	Windward float64 `json:"windward"`
	Leeward  float64 `json:"leeward"`
	Side     float64 `json:"side"`
	Roof     float64 `json:"roof"`
}

var pressureCoefficients = map[string]PressureCoefficients{
	"residential": {Windward: 0.8, Leeward: -0.5, Side: -0.7, Roof: -0.6},
	"industrial":  {Windward: 0.8, Leeward: -0.5, Side: -0.7, Roof: -0.4},
}

func Pressure(buildingType string) (PressureCoefficients, bool) {
	if c, ok := pressureCoefficients[buildingType]; ok {
		return c, true
	}
	return pressureCoefficients[DefaultBuildingType], false
}

const AirDensityKgM3 = 1.25

const DefaultSeismicZone = "kuala-lumpur"

var seismicZones = map[string]float64{
	"peninsular-west": 0.05,
	"peninsular-east": 0.07,
	"sabah":           0.12,
	"sarawak":         0.08,
	"kuala-lumpur":    0.05,
}

func SeismicZone(location string) (float64, bool) {
	if z, ok := seismicZones[location]; ok {
		return z, true
	}
	return seismicZones[DefaultSeismicZone], false
}

const DefaultSiteClass = "medium"

var siteFactors = map[string]float64{
	"hard":   1.0,
	"medium": 1.2,
	"soft":   1.5,
}

func SiteFactor(class string) (float64, bool) {
	if s, ok := siteFactors[class]; ok {
		return s, true
	}
	return siteFactors[DefaultSiteClass], false
}

// DefaultResponseFactor applies to structural systems missing from the table.
const DefaultResponseFactor = 6.0

var responseFactors = map[string]float64{
	"moment-frame": 8,
	"braced-frame": 6,
	"shear-wall":   5,
	"dual-system":  7,
}

func ResponseFactor(system string) (float64, bool) {
	if r, ok := responseFactors[system]; ok {
		return r, true
	}
	return DefaultResponseFactor, false
}
