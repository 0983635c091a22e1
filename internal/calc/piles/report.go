package piles

import "Keystone/internal/calc/report"

func (r Result) Report() *report.Report {
	out := report.New("pile-design")
	out.Inputs = r.Input
	out.Set("shape", string(r.Input.Shape))
	out.Set("method", string(r.Input.Method))
	out.Add("skinFriction", r.ShaftResistanceKN, "kN", "Σ α·c·p·t")
	out.Add("endBearing", r.BaseResistanceKN, "kN", "qb·Ab")
	out.Add("ultimateCapacity", r.UltimateKN, "kN", "Qs + Qb")
	out.Add("allowableCapacity", r.AllowableKN, "kN", "Qu/FS")
	out.Add("requiredPiles", float64(r.RequiredPiles), "piles", "⌈P/Qa⌉")
	out.Add("loadPerPile", r.LoadPerPileKN, "kN", "P/n")
	out.Add("perimeter", r.PerimeterM, "m", "")
	out.Add("baseArea", r.BaseAreaM2, "m²", "")
	out.Add("profileDepth", r.ProfileDepthM, "m", "Σ t")

	out.AddCheck(report.Max("pileCapacityCheck", "Load per pile", r.LoadPerPileKN, r.AllowableKN, "kN",
		"Increase pile count, diameter or length"))
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS EN 1997-1", "MS 1194:2015"}
	return out
}
