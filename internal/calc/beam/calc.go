package beam

import (
	"fmt"
	"math"
)

type Input struct {
	Material           string  `json:"material"` // concrete, steel or timber
	SpanM              float64 `json:"span_m"`
	UDLKNM             float64 `json:"udl_kn_m"`
	WidthMM            float64 `json:"width_mm"`
	HeightMM           float64 `json:"height_mm"`
	ModulusMPa         float64 `json:"modulus_mpa"`
	AllowableStressMPa float64 `json:"allowable_stress_mpa"`
	DeflectionDivisor  float64 `json:"deflection_divisor"`
	SpanDepthLimit     float64 `json:"span_depth_limit"`
	AdvisoryRatio      float64 `json:"advisory_ratio"`
}

type Result struct {
	Input                 Input    `json:"input"`
	MaxMomentKNm          float64  `json:"max_moment_knm"`
	MaxShearKN            float64  `json:"max_shear_kn"`
	InertiaMM4            float64  `json:"inertia_mm4"`
	ModulusMM3            float64  `json:"section_modulus_mm3"`
	StressMPa             float64  `json:"stress_mpa"`
	DeflectionMM          float64  `json:"deflection_mm"`
	AllowableDeflectionMM float64  `json:"allowable_deflection_mm"`
	StressRatio           float64  `json:"stress_ratio"`
	DeflectionRatio       float64  `json:"deflection_ratio"`
	RequiredHeightMM      float64  `json:"required_height_mm"`
	SpanDepthRatio        float64  `json:"span_depth_ratio"`
	Recommendations       []string `json:"recommendations"`
}

// Calculate checks a simply supported rectangular beam under a uniform load.
func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 || in.UDLKNM <= 0 || in.WidthMM <= 0 || in.ModulusMPa <= 0 || in.AllowableStressMPa <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.DeflectionDivisor <= 0 {
		in.DeflectionDivisor = 250
	}
	if in.SpanDepthLimit <= 0 {
		in.SpanDepthLimit = 20
	}
	if in.AdvisoryRatio <= 0 {
		in.AdvisoryRatio = 0.8
	}

	// M = wL²/8, V = wL/2
	M := in.UDLKNM * in.SpanM * in.SpanM / 8.0
	V := in.UDLKNM * in.SpanM / 2.0

	b := in.WidthMM
	// depth needed for the allowable stress: Z = bh²/6 = M/σ
	hreq := math.Sqrt(6.0 * (M * 1e6) / (in.AllowableStressMPa * b))
	h := in.HeightMM
	if h <= 0 {
		h = hreq
		in.HeightMM = h
	}

	I := b * math.Pow(h, 3) / 12.0
	Z := b * h * h / 6.0
	stress := (M * 1e6) / Z

	// δ = 5wL⁴/(384EI); 1 kN/m = 1 N/mm
	L := in.SpanM * 1000.0
	defl := 5.0 * in.UDLKNM * math.Pow(L, 4) / (384.0 * in.ModulusMPa * I)
	deflLimit := L / in.DeflectionDivisor

	res := Result{
		Input:                 in,
		MaxMomentKNm:          M,
		MaxShearKN:            V,
		InertiaMM4:            I,
		ModulusMM3:            Z,
		StressMPa:             stress,
		DeflectionMM:          defl,
		AllowableDeflectionMM: deflLimit,
		StressRatio:           stress / in.AllowableStressMPa,
		DeflectionRatio:       defl / deflLimit,
		RequiredHeightMM:      hreq,
		SpanDepthRatio:        L / h,
	}
	res.Recommendations = recommendations(res)
	return res, nil
}

func recommendations(r Result) []string {
	var out []string
	adv := r.Input.AdvisoryRatio
	if r.StressRatio > 1.0 {
		out = append(out, "Increase beam section or use higher grade material")
	}
	if r.DeflectionRatio > 1.0 {
		out = append(out, "Increase beam depth or add intermediate supports")
	}
	if r.StressRatio > adv {
		out = append(out, "Consider optimization - stress utilization is high")
	}
	if r.DeflectionRatio > adv {
		out = append(out, "Consider deflection control measures")
	}
	if r.SpanDepthRatio > r.Input.SpanDepthLimit {
		out = append(out, fmt.Sprintf("Span/depth ratio %.1f exceeds %.0f - verify deflection in detail", r.SpanDepthRatio, r.Input.SpanDepthLimit))
	}
	if len(out) == 0 {
		out = append(out, "Design is adequate for the given loads")
	}
	return out
}
