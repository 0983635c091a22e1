package loads

import (
	"fmt"
	"math"

	"Keystone/internal/tables"
)

type WindInput struct {
	HeightM         float64 `json:"height_m"`
	WidthM          float64 `json:"width_m"`
	LengthM         float64 `json:"length_m"`
	Location        string  `json:"location"`
	TerrainCategory string  `json:"terrain_category"`
	BuildingType    string  `json:"building_type"`
}

type WindResult struct {
	Input              WindInput                   `json:"input"`
	BasicSpeedMS       float64                     `json:"basic_speed_ms"`
	RoughnessFactor    float64                     `json:"roughness_factor"`
	DesignSpeedMS      float64                     `json:"design_speed_ms"`
	DynamicPressureKPa float64                     `json:"dynamic_pressure_kpa"`
	Coefficients       tables.PressureCoefficients `json:"coefficients"`
	WindwardKPa        float64                     `json:"windward_kpa"`
	LeewardKPa         float64                     `json:"leeward_kpa"`
	SideKPa            float64                     `json:"side_kpa"`
	RoofKPa            float64                     `json:"roof_kpa"`
	WindwardKN         float64                     `json:"windward_kn"`
	LeewardKN          float64                     `json:"leeward_kn"`
	TotalKN            float64                     `json:"total_kn"`
	OverturningKNm     float64                     `json:"overturning_knm"`
	Fallbacks          []string                    `json:"fallbacks,omitempty"`
}

// Wind derives face pressures and the resultant along-wind force on a
// rectangular building from the basic wind speed of its location.
func Wind(in WindInput) (WindResult, error) {
	if in.HeightM <= 0 || in.WidthM <= 0 {
		return WindResult{}, fmt.Errorf("invalid input")
	}
	if in.Location == "" {
		in.Location = tables.DefaultWindLocation
	}
	if in.TerrainCategory == "" {
		in.TerrainCategory = tables.DefaultTerrain
	}
	if in.BuildingType == "" {
		in.BuildingType = tables.DefaultBuildingType
	}

	var res WindResult
	vb, ok := tables.WindSpeed(in.Location)
	if !ok {
		res.Fallbacks = append(res.Fallbacks, fmt.Sprintf("unknown location %q, using %s basic wind speed", in.Location, tables.DefaultWindLocation))
	}
	terrain, ok := tables.TerrainFor(in.TerrainCategory)
	if !ok {
		res.Fallbacks = append(res.Fallbacks, fmt.Sprintf("unknown terrain category %q, using %s", in.TerrainCategory, tables.DefaultTerrain))
	}
	cp, ok := tables.Pressure(in.BuildingType)
	if !ok {
		res.Fallbacks = append(res.Fallbacks, fmt.Sprintf("no pressure coefficients for %q, using %s", in.BuildingType, tables.DefaultBuildingType))
	}

	// EN 1991-1-4 log law, cr(z) = kr·ln(z/z0) with z ≥ zmin
	z := math.Max(in.HeightM, terrain.ZMin)
	cr := terrain.A * math.Log(z/terrain.Z0M)
	v := vb * cr
	q := 0.5 * tables.AirDensityKgM3 * v * v

	res.Input = in
	res.BasicSpeedMS = vb
	res.RoughnessFactor = cr
	res.DesignSpeedMS = v
	res.DynamicPressureKPa = q / 1000
	res.Coefficients = cp
	res.WindwardKPa = q * cp.Windward / 1000
	res.LeewardKPa = q * cp.Leeward / 1000
	res.SideKPa = q * cp.Side / 1000
	res.RoofKPa = q * cp.Roof / 1000

	area := in.HeightM * in.WidthM
	res.WindwardKN = res.WindwardKPa * area
	res.LeewardKN = math.Abs(res.LeewardKPa) * area
	res.TotalKN = res.WindwardKN + res.LeewardKN
	res.OverturningKNm = res.TotalKN * in.HeightM / 2
	return res, nil
}
