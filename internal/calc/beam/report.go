package beam

import (
	"fmt"

	"Keystone/internal/calc/report"
)

var standards = map[string][]string{
	"concrete": {"BS EN 1992-1-1", "MS 76:2005", "Uniform Building By-Laws 1984"},
	"steel":    {"BS EN 1993-1-1", "MS 1462:2009", "Uniform Building By-Laws 1984"},
	"timber":   {"MS 544:2001", "Uniform Building By-Laws 1984"},
}

func (r Result) Report() *report.Report {
	out := report.New("beam-analysis")
	out.Inputs = r.Input
	out.Add("maxBendingMoment", r.MaxMomentKNm, "kN·m", "M = wL²/8")
	out.Add("maxShearForce", r.MaxShearKN, "kN", "V = wL/2")
	out.Add("maxDeflection", r.DeflectionMM, "mm", "δ = 5wL⁴/(384EI)")
	out.Add("maxBendingStress", r.StressMPa, "N/mm²", "σ = M/Z")
	out.Add("momentOfInertia", r.InertiaMM4, "mm⁴", "I = bh³/12")
	out.Add("sectionModulus", r.ModulusMM3, "mm³", "Z = bh²/6")
	out.Add("allowableDeflection", r.AllowableDeflectionMM, "mm", fmt.Sprintf("L/%g", r.Input.DeflectionDivisor))
	out.Add("requiredHeight", r.RequiredHeightMM, "mm", "h = √(6M/(σb))")
	out.Add("spanDepthRatio", r.SpanDepthRatio, "-", "L/h")
	out.Set("material", r.Input.Material)

	out.AddCheck(report.Max("stressCheck", "Bending stress", r.StressMPa, r.Input.AllowableStressMPa, "N/mm²",
		"Increase beam section or use higher grade material"))
	out.AddCheck(report.Max("deflectionCheck", "Deflection", r.DeflectionMM, r.AllowableDeflectionMM, "mm",
		"Increase beam depth or add intermediate supports"))
	out.Recommend(r.Recommendations...)
	out.Standards = standards[r.Input.Material]
	if out.Standards == nil {
		out.Standards = standards["concrete"]
	}
	return out
}
