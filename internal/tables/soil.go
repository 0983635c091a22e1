package tables

import (
	"fmt"
	"sort"
)

// SoilProfile describes a soil by its strength parameters. ModulusMPa is the
// drained stiffness used for settlement when the soil has no cohesion.
type SoilProfile struct {
	Type             string  `json:"type"`
	Description      string  `json:"description"`
	CohesionKPa      float64 `json:"cohesion_kpa"`
	FrictionAngleDeg float64 `json:"friction_angle_deg"`
	UnitWeightKNM3   float64 `json:"unit_weight_kn_m3"`
	ModulusMPa       float64 `json:"modulus_mpa"`
}

// DefaultSoilType is substituted for unknown soil tags outside strict mode.
const DefaultSoilType = "clay-stiff"

var soils = map[string]SoilProfile{
	"clay-soft":   {Type: "clay-soft", Description: "Soft clay (coastal deposits)", CohesionKPa: 20, FrictionAngleDeg: 0, UnitWeightKNM3: 16, ModulusMPa: 5},
	"clay-stiff":  {Type: "clay-stiff", Description: "Stiff clay", CohesionKPa: 100, FrictionAngleDeg: 20, UnitWeightKNM3: 18, ModulusMPa: 30},
	"sand-loose":  {Type: "sand-loose", Description: "Loose sand", CohesionKPa: 0, FrictionAngleDeg: 28, UnitWeightKNM3: 17, ModulusMPa: 10},
	"sand-dense":  {Type: "sand-dense", Description: "Dense sand", CohesionKPa: 0, FrictionAngleDeg: 35, UnitWeightKNM3: 19, ModulusMPa: 50},
	"laterite":    {Type: "laterite", Description: "Laterite", CohesionKPa: 50, FrictionAngleDeg: 25, UnitWeightKNM3: 18, ModulusMPa: 20},
	"marine-clay": {Type: "marine-clay", Description: "Marine clay", CohesionKPa: 15, FrictionAngleDeg: 0, UnitWeightKNM3: 15, ModulusMPa: 3},
}

func Soil(tag string) (SoilProfile, error) {
	s, ok := soils[tag]
	if !ok {
		return SoilProfile{}, fmt.Errorf("%w: %q", ErrUnknownSoilType, tag)
	}
	return s, nil
}

// SoilOrDefault returns the profile for tag, or the default profile and false
// when the tag is unknown.
func SoilOrDefault(tag string) (SoilProfile, bool) {
	if s, ok := soils[tag]; ok {
		return s, true
	}
	return soils[DefaultSoilType], false
}

func SoilTypes() []string {
	out := make([]string, 0, len(soils))
	for k := range soils {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
