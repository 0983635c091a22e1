package foundation

import "Keystone/internal/calc/report"

func (r Result) Report() *report.Report {
	out := report.New("foundation-bearing")
	out.Inputs = r.Input
	out.Set("soilType", r.Input.SoilType)
	out.Add("ultimateBearingCapacity", r.UltimateKPa, "kN/m²", "qu = cNc·sc·dc + γDf·Nq·sq·dq + 0.5γB·Nγ·sγ·dγ")
	out.Add("allowableBearingCapacity", r.AllowableKPa, "kN/m²", "qa = qu/FS")
	out.Add("appliedPressure", r.AppliedPressure, "kN/m²", "q = P/(B·L)")
	out.Add("estimatedSettlement", r.SettlementMM, "mm", "s = qB/Es")
	out.Add("foundationArea", r.AreaM2, "m²", "B·L")
	out.Add("Nc", r.Factors.Nc, "-", "(Nq - 1)cotφ")
	out.Add("Nq", r.Factors.Nq, "-", "e^(π tanφ)·tan²(45° + φ/2)")
	out.Add("Ngamma", r.Factors.Ngamma, "-", "2(Nq - 1)tanφ")
	out.Add("sc", r.Factors.Sc, "-", "1 + (Nq/Nc)(B/L)")
	out.Add("sq", r.Factors.Sq, "-", "1 + (B/L)tanφ")
	out.Add("sgamma", r.Factors.Sgamma, "-", "1 - 0.4B/L")
	out.Add("dc", r.Factors.Dc, "-", "1 + 0.4k, k = Df/B or atan(Df/B) when Df/B > 1")
	out.Add("dq", r.Factors.Dq, "-", "1 + 2tanφ(1 - sinφ)²k")

	out.AddCheck(report.Max("bearingCapacityCheck", "Applied pressure", r.AppliedPressure, r.AllowableKPa, "kN/m²",
		"Increase foundation size or consider pile foundation"))
	out.AddCheck(report.Max("settlementCheck", "Settlement", r.SettlementMM, r.Input.SettlementLimitMM, "mm",
		"Settlement exceeds limit - consider ground improvement"))
	out.AddCheck(report.Min("safetyFactorCheck", "Factor of safety", r.ProvidedSafety, r.Input.SafetyFactor, "",
		"Increase foundation size or consider pile foundation"))
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS 8004:2015", "MS 1194:2015", "Uniform Building By-Laws 1984"}
	return out
}
