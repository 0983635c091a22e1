package loads

import (
	"fmt"
	"math"

	"Keystone/internal/tables"
)

type SeismicInput struct {
	WeightKN         float64 `json:"weight_kn"`
	HeightM          float64 `json:"height_m"`
	Location         string  `json:"location"`
	SiteClass        string  `json:"site_class"`
	StructuralSystem string  `json:"structural_system"`
	ImportanceFactor float64 `json:"importance_factor"`
}

type SeismicResult struct {
	Input            SeismicInput `json:"input"`
	ZoneFactor       float64      `json:"zone_factor"`
	SiteFactor       float64      `json:"site_factor"`
	ResponseFactor   float64      `json:"response_factor"`
	PeriodS          float64      `json:"period_s"`
	ShearCoefficient float64      `json:"shear_coefficient"`
	BaseShearKN      float64      `json:"base_shear_kn"`
	LateralForceKN   float64      `json:"lateral_force_kn"`
	OverturningKNm   float64      `json:"overturning_knm"`
	Fallbacks        []string     `json:"fallbacks,omitempty"`
}

// overturningArm is the lever arm of the base shear as a share of height.
const overturningArm = 0.7

// Seismic computes the equivalent static base shear V = Z·S·I/R·W.
func Seismic(in SeismicInput) (SeismicResult, error) {
	if in.WeightKN <= 0 || in.HeightM <= 0 {
		return SeismicResult{}, fmt.Errorf("invalid input")
	}
	if in.Location == "" {
		in.Location = tables.DefaultSeismicZone
	}
	if in.SiteClass == "" {
		in.SiteClass = tables.DefaultSiteClass
	}
	if in.StructuralSystem == "" {
		in.StructuralSystem = "moment-frame"
	}
	if in.ImportanceFactor <= 0 {
		in.ImportanceFactor = 1
	}

	var res SeismicResult
	var ok bool
	if res.ZoneFactor, ok = tables.SeismicZone(in.Location); !ok {
		res.Fallbacks = append(res.Fallbacks, fmt.Sprintf("unknown seismic location %q, using %s zone factor", in.Location, tables.DefaultSeismicZone))
	}
	if res.SiteFactor, ok = tables.SiteFactor(in.SiteClass); !ok {
		res.Fallbacks = append(res.Fallbacks, fmt.Sprintf("unknown site class %q, using %s", in.SiteClass, tables.DefaultSiteClass))
	}
	if res.ResponseFactor, ok = tables.ResponseFactor(in.StructuralSystem); !ok {
		res.Fallbacks = append(res.Fallbacks, fmt.Sprintf("unknown structural system %q, using R = %g", in.StructuralSystem, tables.DefaultResponseFactor))
	}

	res.Input = in
	res.PeriodS = 0.1 * math.Pow(in.HeightM/3.048, 0.75)
	res.ShearCoefficient = res.ZoneFactor * res.SiteFactor * in.ImportanceFactor / res.ResponseFactor
	res.BaseShearKN = res.ShearCoefficient * in.WeightKN
	res.LateralForceKN = res.BaseShearKN
	res.OverturningKNm = res.LateralForceKN * in.HeightM * overturningArm
	return res, nil
}
