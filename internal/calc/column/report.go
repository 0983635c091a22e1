package column

import "Keystone/internal/calc/report"

func (r Result) Report() *report.Report {
	out := report.New("column-design")
	out.Inputs = r.Input
	out.Set("material", r.Input.Material)
	out.Add("effectiveLength", r.EffectiveLengthMM, "mm", "Le = kH")
	out.Add("radiusOfGyration", r.RadiusOfGyrationMM, "mm", "r = b/√12")
	out.Add("slendernessRatio", r.Slenderness, "-", "λ = Le/r")
	out.Add("bucklingFactor", r.BucklingFactor, "-", "1 + 0.02(λ - λcrit)")
	out.Add("designLoad", r.DesignLoadKN, "kN", "NEd = N·factor")
	out.Add("eulerCriticalLoad", r.EulerLoadKN, "kN", "Ncr = π²EI/Le²")
	out.Add("axialResistance", r.AxialResistanceKN, "kN", "")
	out.Add("interactionRatio", r.InteractionRatio, "-", "N/NRd + M/MRd")

	out.AddCheck(report.Max("slendernessCheck", "Slenderness", r.Slenderness, r.Input.MaxSlenderness, "",
		"Column is too slender - increase section or add bracing"))
	out.AddCheck(report.Max("axialCheck", "Design axial load", r.DesignLoadKN, r.AxialResistanceKN, "kN",
		"Increase column section or material grade"))

	if r.Input.Material == "timber" {
		out.Standards = []string{"MS 544:2001", "Uniform Building By-Laws 1984"}
	} else {
		out.Add("minReinforcement", r.MinSteelMM2, "mm²", "0.01Ac")
		out.Add("maxReinforcement", r.MaxSteelMM2, "mm²", "0.04Ac")
		out.Add("requiredReinforcement", r.RequiredSteelMM2, "mm²", "As = (N - 0.85fcd·Ac)/(fyd - 0.85fcd)")
		out.Add("minimumMoment", r.MinimumMomentKNm, "kN·m", "N·max(h/30, 20 mm)")
		out.Add("designMoment", r.DesignMomentKNm, "kN·m", "")
		out.Add("momentResistance", r.MomentResistanceKNm, "kN·m", "")
		out.AddCheck(report.Max("reinforcementCheck", "Required reinforcement", r.RequiredSteelMM2, r.MaxSteelMM2, "mm²",
			"Increase column section or concrete grade"))
		out.AddCheck(report.Max("interactionCheck", "Axial-bending interaction", r.InteractionRatio, 1.0, "",
			"Increase column section - combined axial and bending capacity exceeded"))
		if r.Input.CoverMM > 0 && r.Input.MinCoverMM > 0 {
			out.AddCheck(report.Min("coverCheck", "Concrete cover", r.Input.CoverMM, r.Input.MinCoverMM, "mm",
				"Increase concrete cover"))
		}
		out.Standards = []string{"BS EN 1992-1-1", "MS 76:2005"}
	}
	out.Recommend(r.Recommendations...)
	return out
}
