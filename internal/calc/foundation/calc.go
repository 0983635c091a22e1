// Package foundation computes the bearing capacity and settlement of a
// rectangular pad footing.
package foundation

import (
	"fmt"
	"math"
)

type Input struct {
	SoilType          string  `json:"soil_type"`
	WidthM            float64 `json:"width_m"`
	LengthM           float64 `json:"length_m"`
	DepthM            float64 `json:"depth_m"`
	CohesionKPa       float64 `json:"cohesion_kpa"`
	FrictionAngleDeg  float64 `json:"friction_angle_deg"`
	UnitWeightKNM3    float64 `json:"unit_weight_kn_m3"`
	SoilModulusMPa    float64 `json:"soil_modulus_mpa"`
	AppliedLoadKN     float64 `json:"applied_load_kn"`
	SafetyFactor      float64 `json:"safety_factor"`
	SettlementLimitMM float64 `json:"settlement_limit_mm"`
	SettlementCapMM   float64 `json:"settlement_cap_mm"`
	AdvisoryRatio     float64 `json:"advisory_ratio"`
}

type Factors struct {
	Nc     float64 `json:"nc"`
	Nq     float64 `json:"nq"`
	Ngamma float64 `json:"ngamma"`
	Sc     float64 `json:"sc"`
	Sq     float64 `json:"sq"`
	Sgamma float64 `json:"sgamma"`
	Dc     float64 `json:"dc"`
	Dq     float64 `json:"dq"`
	Dgamma float64 `json:"dgamma"`
}

type Result struct {
	Input           Input    `json:"input"`
	Factors         Factors  `json:"factors"`
	UltimateKPa     float64  `json:"ultimate_kpa"`
	AllowableKPa    float64  `json:"allowable_kpa"`
	AreaM2          float64  `json:"area_m2"`
	AppliedPressure float64  `json:"applied_pressure_kpa"`
	BearingRatio    float64  `json:"bearing_ratio"`
	ProvidedSafety  float64  `json:"provided_safety_factor"`
	SettlementMM    float64  `json:"settlement_mm"`
	Recommendations []string `json:"recommendations"`
}

// MinDepthM is the shallowest founding depth before an advisory is raised.
const MinDepthM = 0.6

// Calculate returns qu = cNc·sc·dc + γDf·Nq·sq·dq + 0.5γB·Nγ·sγ·dγ and the
// elastic settlement under the applied pressure.
func Calculate(in Input) (Result, error) {
	if in.WidthM <= 0 || in.LengthM <= 0 || in.DepthM <= 0 || in.AppliedLoadKN <= 0 || in.UnitWeightKNM3 <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.CohesionKPa < 0 || in.FrictionAngleDeg < 0 || in.FrictionAngleDeg >= 90 {
		return Result{}, fmt.Errorf("invalid soil parameters")
	}
	if in.SafetyFactor <= 0 {
		in.SafetyFactor = 3
	}
	if in.SettlementLimitMM <= 0 {
		in.SettlementLimitMM = 25
	}
	if in.SettlementCapMM <= 0 {
		in.SettlementCapMM = 100
	}
	if in.AdvisoryRatio <= 0 {
		in.AdvisoryRatio = 0.8
	}

	B := math.Min(in.WidthM, in.LengthM)
	L := math.Max(in.WidthM, in.LengthM)
	f := factors(in.FrictionAngleDeg, B/L, in.DepthM/B)

	c, g, Df := in.CohesionKPa, in.UnitWeightKNM3, in.DepthM
	qu := c*f.Nc*f.Sc*f.Dc + g*Df*f.Nq*f.Sq*f.Dq + 0.5*g*B*f.Ngamma*f.Sgamma*f.Dgamma
	qa := qu / in.SafetyFactor

	area := in.WidthM * in.LengthM
	q := in.AppliedLoadKN / area

	res := Result{
		Input:           in,
		Factors:         f,
		UltimateKPa:     qu,
		AllowableKPa:    qa,
		AreaM2:          area,
		AppliedPressure: q,
		BearingRatio:    q / qa,
		ProvidedSafety:  qu / q,
		SettlementMM:    settlement(in, q, B),
	}
	res.Recommendations = recommendations(res)
	return res, nil
}

func factors(phiDeg, bl, db float64) Factors {
	f := Factors{Dgamma: 1}
	phi := phiDeg * math.Pi / 180
	if phi == 0 {
		// undrained limit of the general expressions
		f.Nc, f.Nq, f.Ngamma = math.Pi+2, 1, 0
	} else {
		t := math.Tan(phi)
		f.Nq = math.Exp(math.Pi*t) * math.Pow(math.Tan(math.Pi/4+phi/2), 2)
		f.Nc = (f.Nq - 1) / t
		f.Ngamma = 2 * (f.Nq - 1) * t
	}
	t := math.Tan(phi)
	f.Sc = 1 + (f.Nq/f.Nc)*bl
	f.Sq = 1 + bl*t
	f.Sgamma = 1 - 0.4*bl
	k := depthRatio(db)
	f.Dc = 1 + 0.4*k
	f.Dq = 1 + 2*t*math.Pow(1-math.Sin(phi), 2)*k
	return f
}

// depthRatio is Df/B up to 1 and atan(Df/B) beyond, so dc stays below
// 1 + 0.2π however deep the footing sits.
func depthRatio(db float64) float64 {
	if db <= 1 {
		return db
	}
	return math.Atan(db)
}

// settlement uses Eu = 300c for cohesive soils and the profile modulus
// otherwise; the result is capped.
func settlement(in Input, q, B float64) float64 {
	E := 300 * in.CohesionKPa
	if E <= 0 {
		E = in.SoilModulusMPa * 1000
	}
	if E <= 0 {
		return in.SettlementCapMM
	}
	return math.Min(q*B*1000/E, in.SettlementCapMM)
}

func recommendations(r Result) []string {
	var out []string
	in := r.Input
	if r.BearingRatio > 1.0 {
		out = append(out, "Increase foundation size or consider pile foundation")
	}
	if r.SettlementMM > in.SettlementLimitMM {
		out = append(out, "Settlement exceeds limit - consider ground improvement")
	}
	if r.BearingRatio > in.AdvisoryRatio {
		out = append(out, "High bearing capacity utilization - monitor closely")
	}
	if r.SettlementMM > 0.6*in.SettlementLimitMM {
		out = append(out, "Consider differential settlement effects")
	}
	if in.DepthM < MinDepthM {
		out = append(out, fmt.Sprintf("Increase founding depth to at least %.1f m", MinDepthM))
	}
	if in.AppliedLoadKN > 1000 {
		out = append(out, "Carry out a detailed soil investigation for loads above 1000 kN")
	}
	if len(out) == 0 {
		out = append(out, "Foundation design is adequate")
	}
	return out
}
