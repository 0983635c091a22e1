package concrete

import (
	"fmt"

	"Keystone/internal/calc/report"
	"Keystone/internal/tables"
)

func (r MixResult) Report() *report.Report {
	out := report.New("concrete-mix")
	out.Inputs = r.Input
	out.Set("exposureClass", r.Input.Exposure.Code)
	out.Set("consistencyClass", r.Consistency)
	out.Set("mixRatio", fmt.Sprintf("1:%.1f:%.1f", r.FineKgM3/r.CementKgM3, r.CoarseKgM3/r.CementKgM3))
	out.Set("currency", tables.MixPrices().Currency)

	out.Add("characteristicStrength", r.FckMPa, "N/mm²", "fck")
	out.Add("meanStrength", r.FcmMPa, "N/mm²", "fcm = fck + 8")
	out.Add("waterCementRatio", r.WaterCement, "-", "w/c")
	out.Add("waterContent", r.WaterKgM3, "kg/m³", "180 + 0.5(slump - 75) + 2(20 - Dmax)")
	out.Add("cementContent", r.CementKgM3, "kg/m³", "max(W/(w/c), Cmin)")
	out.Add("fineAggregate", r.FineKgM3, "kg/m³", "(2400 - C - W)·r")
	out.Add("coarseAggregate", r.CoarseKgM3, "kg/m³", "(2400 - C - W)(1 - r)")
	out.Add("fineAggregateRatio", r.FineRatio, "-", "")
	out.Add("cementBags", r.CementBags, "bags/m³", "C/50")
	out.Add("slump", r.Input.SlumpMM, "mm", "")
	out.Add("minimumCover", r.Input.Exposure.CoverMM, "mm", "")
	out.Add("costCement", r.CostCement, "MYR/m³", "")
	out.Add("costFineAggregate", r.CostFine, "MYR/m³", "")
	out.Add("costCoarseAggregate", r.CostCoarse, "MYR/m³", "")
	out.Add("costWater", r.CostWater, "MYR/m³", "")
	out.Add("costPerCubicMeter", r.CostPerM3, "MYR/m³", "")

	out.AddCheck(report.Max("wcRatioCheck", "Water/cement ratio", r.WaterCement, r.Input.Exposure.WCMax, "",
		"Reduce the water/cement ratio"))
	out.AddCheck(report.Min("cementContentCheck", "Cement content", r.CementKgM3, r.Input.Exposure.MinCementKgM3, "kg/m³",
		"Increase the cement content"))
	out.AddCheck(report.Min("strengthMarginCheck", "Strength margin", r.FcmMPa-r.FckMPa, tables.MinStrengthMargin, "N/mm²",
		"Increase the target mean strength margin"))
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS EN 1992-1-1", "BS EN 206", "MS 522:2007", "MS 1194:2015"}
	return out
}

func (r ReinforcementResult) Report() *report.Report {
	out := report.New("reinforcement-design")
	out.Inputs = r.Input
	if r.Doubly {
		out.Set("flexure", "doubly reinforced")
	} else {
		out.Set("flexure", "singly reinforced")
	}
	out.Add("designConcreteStrength", r.FcdMPa, "N/mm²", "fcd = fck/1.5")
	out.Add("designSteelStrength", r.FydMPa, "N/mm²", "fyd = fyk/1.15")
	out.Add("K", r.K, "-", "K = M/(fcd·b·d²)")
	out.Add("limitingMoment", r.LimitMomentKNm, "kN·m", "Mlim = 0.167·fcd·b·d²")
	out.Add("leverArm", r.LeverArmMM, "mm", "z = d(0.5 + √(0.25 - K/1.134))")
	out.Add("tensionSteel", r.TensionSteelMM2, "mm²", "As1 = M/(fyd·z)")
	out.Add("compressionSteel", r.CompressionSteelMM2, "mm²", "As2 = (M - Mlim)/(fyd(d - d2))")
	out.Add("minimumReinforcement", r.MinSteelMM2, "mm²", "max(0.26(fctm/fyk)bd, 0.0013bd)")
	out.Add("maximumReinforcement", r.MaxSteelMM2, "mm²", "0.04Ac")
	out.Add("concreteShearResistance", r.ConcreteShearKN, "kN", "VRd,c = vmin·b·d")
	out.Add("maxShearResistance", r.CrushingShearKN, "kN", "VRd,max = 0.5ν·fcd·b·d")
	out.Add("linkSpacing", r.LinkSpacingMM, "mm", "s = Asw·fyd·d/V ≤ min(0.75d, 400)")

	out.AddCheck(report.Max("maxSteelCheck", "Total reinforcement", r.TensionSteelMM2+r.CompressionSteelMM2, r.MaxSteelMM2, "mm²",
		"Reinforcement exceeds the maximum - increase section size"))
	out.AddCheck(report.Max("shearCrushingCheck", "Design shear", r.Input.ShearKN, r.CrushingShearKN, "kN",
		"Shear exceeds strut crushing resistance - increase section size"))
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS EN 1992-1-1", "MS 76:2005"}
	return out
}
