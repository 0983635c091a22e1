package slab

import "Keystone/internal/calc/report"

func (r Result) Report() *report.Report {
	out := report.New("slab-design")
	out.Inputs = r.Input
	out.Add("designLoad", r.DesignLoadKNM, "kN/m", "1.35gk + 1.5qk per metre strip")
	out.Add("designMoment", r.MomentKNmPerM, "kN·m/m", "M = wL²/8")
	out.Add("effectiveDepth", r.EffectiveDepthMM, "mm", "d = h - c - φ/2")
	out.Add("K", r.K, "-", "K = M/(fcd·b·d²)")
	out.Add("leverArm", r.LeverArmMM, "mm", "z ≤ 0.9d")
	out.Add("requiredSteel", r.AsRequiredMM2PerM, "mm²/m", "As = M/(0.87fyk·z)")
	out.Add("minimumSteel", r.AsMinMM2PerM, "mm²/m", "max(0.26(fctm/fyk)bd, 0.0013bd)")
	out.Add("barSpacing", r.SpacingMM, "mm", "s = Ab·1000/As ≤ min(3h, 400)")
	out.Add("providedSteel", r.AsProvidedMM2PerM, "mm²/m", "Ab·1000/s")
	out.Add("spanDepthRatio", r.SpanDepthRatio, "-", "L/d")

	out.AddCheck(report.Max("flexureCheck", "K factor", r.K, limitK, "",
		"Increase slab thickness"))
	out.AddCheck(report.Max("spanDepthCheck", "Span/effective depth", r.SpanDepthRatio, r.Input.SpanDepthLimit, "",
		"Increase slab thickness"))
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS EN 1992-1-1", "MS 76:2005"}
	return out
}
