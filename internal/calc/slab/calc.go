// Package slab designs a simply supported one-way slab on a 1 m strip.
package slab

import (
	"fmt"
	"math"

	"Keystone/internal/tables"
)

type Input struct {
	SpanM          float64 `json:"span_m"`
	ThicknessMM    float64 `json:"thickness_mm"`
	CoverMM        float64 `json:"cover_mm"`
	BarDiameterMM  float64 `json:"bar_diameter_mm"`
	DeadKNM2       float64 `json:"dead_kn_m2"`
	LiveKNM2       float64 `json:"live_kn_m2"`
	FckMPa         float64 `json:"fck_mpa"`
	FykMPa         float64 `json:"fyk_mpa"`
	SpanDepthLimit float64 `json:"span_depth_limit"`
}

type Result struct {
	Input             Input    `json:"input"`
	DesignLoadKNM     float64  `json:"design_load_kn_m"`
	MomentKNmPerM     float64  `json:"moment_knm_per_m"`
	EffectiveDepthMM  float64  `json:"effective_depth_mm"`
	K                 float64  `json:"k"`
	LeverArmMM        float64  `json:"lever_arm_mm"`
	AsRequiredMM2PerM float64  `json:"as_required_mm2_per_m"`
	AsMinMM2PerM      float64  `json:"as_min_mm2_per_m"`
	BarAreaMM2        float64  `json:"bar_area_mm2"`
	SpacingMM         float64  `json:"spacing_mm"`
	MaxSpacingMM      float64  `json:"max_spacing_mm"`
	AsProvidedMM2PerM float64  `json:"as_provided_mm2_per_m"`
	SpanDepthRatio    float64  `json:"span_depth_ratio"`
	Recommendations   []string `json:"recommendations"`
}

const strip = 1000.0

func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 || in.ThicknessMM <= 0 || in.FckMPa <= 0 || in.FykMPa <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.CoverMM <= 0 {
		in.CoverMM, _ = tables.MinCover("slab")
	}
	if in.BarDiameterMM <= 0 {
		in.BarDiameterMM = 12
	}
	if in.SpanDepthLimit <= 0 {
		in.SpanDepthLimit = 20
	}

	d := in.ThicknessMM - in.CoverMM - in.BarDiameterMM/2
	if d <= 0 {
		return Result{}, fmt.Errorf("cover and bar leave no effective depth")
	}

	w := tables.GammaG*in.DeadKNM2 + tables.GammaQ*in.LiveKNM2
	M := w * in.SpanM * in.SpanM / 8
	fcd := in.FckMPa / tables.GammaC
	K := M * 1e6 / (fcd * strip * d * d)

	z := 0.9 * d
	if K < 0.25*1.134 {
		z = math.Min(d*(0.5+math.Sqrt(0.25-K/1.134)), z)
	}
	As := M * 1e6 / (0.87 * in.FykMPa * z)
	AsMin := math.Max(0.26*(2.9/in.FykMPa)*strip*d, 0.0013*strip*d)
	As = math.Max(As, AsMin)

	bar := tables.BarArea(in.BarDiameterMM)
	maxSpacing := math.Min(3*in.ThicknessMM, 400)
	spacing := math.Min(bar*strip/As, maxSpacing)

	res := Result{
		Input:             in,
		DesignLoadKNM:     w,
		MomentKNmPerM:     M,
		EffectiveDepthMM:  d,
		K:                 K,
		LeverArmMM:        z,
		AsRequiredMM2PerM: As,
		AsMinMM2PerM:      AsMin,
		BarAreaMM2:        bar,
		SpacingMM:         spacing,
		MaxSpacingMM:      maxSpacing,
		AsProvidedMM2PerM: bar * strip / spacing,
		SpanDepthRatio:    in.SpanM * 1000 / d,
	}
	res.Recommendations = recommendations(res)
	return res, nil
}

// limitK bounds K for a slab without compression steel.
const limitK = 0.167

func recommendations(r Result) []string {
	var out []string
	if r.K > limitK {
		out = append(out, "Slab too thin for the design moment - increase thickness")
	}
	if r.SpanDepthRatio > r.Input.SpanDepthLimit {
		out = append(out, fmt.Sprintf("Span/depth ratio %.1f exceeds %.0f - increase slab thickness", r.SpanDepthRatio, r.Input.SpanDepthLimit))
	}
	if r.SpacingMM < 100 {
		out = append(out, "Bar spacing below 100 mm - use larger bars")
	}
	if len(out) == 0 {
		out = append(out, fmt.Sprintf("Provide T%.0f bars at %.0f mm centres", r.Input.BarDiameterMM, math.Floor(r.SpacingMM/25)*25))
	}
	return out
}
