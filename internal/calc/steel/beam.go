// Package steel designs hot-rolled steel beams, columns and connections to
// EN 1993-1-1 and EN 1993-1-8 using trial sections from the section tables.
package steel

import (
	"fmt"
	"math"

	"Keystone/internal/tables"
)

// Lateral restraint of the compression flange.
const (
	LateralFull    = "full"
	LateralPartial = "partial"
)

// partialLTB is the simplified lateral-torsional buckling reduction applied
// to partially restrained beams.
const partialLTB = 0.8

type BeamInput struct {
	SpanM             float64           `json:"span_m"`
	MomentKNm         float64           `json:"moment_knm"`
	ShearKN           float64           `json:"shear_kn"`
	Family            string            `json:"family"`
	Grade             tables.SteelGrade `json:"grade"`
	LateralSupport    string            `json:"lateral_support"`
	DeflectionDivisor float64           `json:"deflection_divisor"`
}

type BeamResult struct {
	Input                 BeamInput      `json:"input"`
	Section               tables.Section `json:"section"`
	SectionFits           bool           `json:"section_fits"`
	RequiredModulusMM3    float64        `json:"required_modulus_mm3"`
	LTBFactor             float64        `json:"ltb_factor"`
	MomentResistanceKNm   float64        `json:"moment_resistance_knm"`
	ShearAreaMM2          float64        `json:"shear_area_mm2"`
	ShearResistanceKN     float64        `json:"shear_resistance_kn"`
	DeflectionMM          float64        `json:"deflection_mm"`
	AllowableDeflectionMM float64        `json:"allowable_deflection_mm"`
	MomentUtilization     float64        `json:"moment_utilization"`
	ShearUtilization      float64        `json:"shear_utilization"`
	DeflectionRatio       float64        `json:"deflection_ratio"`
	Recommendations       []string       `json:"recommendations"`
}

// DesignBeam picks the first section in the family whose elastic modulus
// carries the moment and checks it in bending, shear and deflection.
func DesignBeam(in BeamInput) (BeamResult, error) {
	if in.SpanM <= 0 || in.MomentKNm <= 0 || in.Grade.FyMPa <= 0 {
		return BeamResult{}, fmt.Errorf("invalid input")
	}
	if in.Family == "" {
		in.Family = "UB"
	}
	if _, ok := tables.Sections(in.Family); !ok {
		return BeamResult{}, fmt.Errorf("unknown section family %q", in.Family)
	}
	if in.LateralSupport == "" {
		in.LateralSupport = LateralFull
	}
	if in.DeflectionDivisor <= 0 {
		in.DeflectionDivisor = 250
	}

	fy := in.Grade.FyMPa
	ltb := 1.0
	if in.LateralSupport == LateralPartial {
		ltb = partialLTB
	}
	M := in.MomentKNm * 1e6
	zReq := M * tables.GammaM0 / (fy * ltb)
	sec, fits := tables.FirstSection(in.Family, func(s tables.Section) bool { return s.ZxMM3 >= zReq })

	L := in.SpanM * 1000
	res := BeamResult{
		Section:               sec,
		SectionFits:           fits,
		RequiredModulusMM3:    zReq,
		LTBFactor:             ltb,
		MomentResistanceKNm:   sec.ZxMM3 * fy * ltb / tables.GammaM0 / 1e6,
		ShearAreaMM2:          sec.DepthMM * sec.WebMM,
		AllowableDeflectionMM: L / in.DeflectionDivisor,
	}
	res.ShearResistanceKN = res.ShearAreaMM2 * fy / (math.Sqrt(3) * tables.GammaM0) / 1000
	// uniformly loaded span: δ = 5ML²/(48EI)
	res.DeflectionMM = 5 * M * L * L / (48 * tables.SteelEMPa * sec.IxMM4)

	res.MomentUtilization = in.MomentKNm / res.MomentResistanceKNm
	res.ShearUtilization = in.ShearKN / res.ShearResistanceKN
	res.DeflectionRatio = res.DeflectionMM / res.AllowableDeflectionMM
	res.Input = in
	res.Recommendations = beamRecommendations(res)
	return res, nil
}

func beamRecommendations(r BeamResult) []string {
	var out []string
	if r.MomentUtilization > 1 {
		out = append(out, "Increase beam section - moment capacity exceeded")
	}
	if r.ShearUtilization > 1 {
		out = append(out, "Increase beam section - shear capacity exceeded")
	}
	if r.DeflectionRatio > 1 {
		out = append(out, "Increase beam depth - deflection limit exceeded")
	}
	if r.MomentUtilization > 0.9 {
		out = append(out, "High moment utilization - consider larger section")
	}
	if len(out) == 0 {
		out = append(out, "Steel beam design is adequate")
	}
	return out
}
