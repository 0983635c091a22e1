package loads

import (
	"fmt"

	"Keystone/internal/calc/report"
)

func (r Result) Report() *report.Report {
	out := report.New("load-combination")
	out.Inputs = r.Input
	out.Set("limitState", r.Input.LimitState)
	out.Set("buildingType", r.Input.BuildingType)
	out.Set("governingCombination", r.Combinations[r.Governing].Name)
	out.Set("dominantLoad", r.Analysis.Dominant)
	for _, msg := range r.Fallbacks {
		out.Warn("%s", msg)
	}
	for _, c := range r.Combinations {
		out.Combinations = append(out.Combinations, report.Combination{
			Name:      c.Name,
			Formula:   c.Formula,
			Value:     c.Value,
			Governing: c.Governing,
		})
	}
	out.Add("governingLoad", r.GoverningKN, "kN", r.Combinations[r.Governing].Formula)
	out.Add("totalLoad", r.Analysis.TotalKN, "kN", "Σ|Fk|")
	for _, name := range actionNames {
		out.Add(name+"Share", r.Analysis.Shares[name], "%", "")
	}
	out.Add("psi0Live", r.Factors.Psi0.Live, "-", "ψ₀")
	out.Add("psi1Live", r.Factors.Psi1.Live, "-", "ψ₁")
	out.Add("psi2Live", r.Factors.Psi2.Live, "-", "ψ₂")
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS EN 1990", "MS 1553:2002", "Uniform Building By-Laws 1984"}
	return out
}

func (r WindResult) Report() *report.Report {
	out := report.New("wind-load")
	out.Inputs = r.Input
	out.Set("location", r.Input.Location)
	out.Set("terrainCategory", r.Input.TerrainCategory)
	for _, msg := range r.Fallbacks {
		out.Warn("%s", msg)
	}
	out.Add("basicWindSpeed", r.BasicSpeedMS, "m/s", "vb")
	out.Add("roughnessFactor", r.RoughnessFactor, "-", "cr = kr·ln(z/z0)")
	out.Add("designWindSpeed", r.DesignSpeedMS, "m/s", "v = vb·cr")
	out.Add("dynamicPressure", r.DynamicPressureKPa, "kN/m²", "q = 0.5ρv²")
	out.Add("windwardPressure", r.WindwardKPa, "kN/m²", fmt.Sprintf("%g·q", r.Coefficients.Windward))
	out.Add("leewardPressure", r.LeewardKPa, "kN/m²", fmt.Sprintf("%g·q", r.Coefficients.Leeward))
	out.Add("sidePressure", r.SideKPa, "kN/m²", fmt.Sprintf("%g·q", r.Coefficients.Side))
	out.Add("roofPressure", r.RoofKPa, "kN/m²", fmt.Sprintf("%g·q", r.Coefficients.Roof))
	out.Add("windwardForce", r.WindwardKN, "kN", "pw·h·b")
	out.Add("leewardForce", r.LeewardKN, "kN", "|pl|·h·b")
	out.Add("totalWindForce", r.TotalKN, "kN", "Fw + Fl")
	out.Add("overturningMoment", r.OverturningKNm, "kN·m", "F·h/2")
	out.Standards = []string{"MS 1553:2002", "BS EN 1991-1-4"}
	return out
}

func (r SeismicResult) Report() *report.Report {
	out := report.New("seismic-load")
	out.Inputs = r.Input
	out.Set("location", r.Input.Location)
	out.Set("structuralSystem", r.Input.StructuralSystem)
	for _, msg := range r.Fallbacks {
		out.Warn("%s", msg)
	}
	out.Add("zoneFactor", r.ZoneFactor, "-", "Z")
	out.Add("siteFactor", r.SiteFactor, "-", "S")
	out.Add("responseFactor", r.ResponseFactor, "-", "R")
	out.Add("importanceFactor", r.Input.ImportanceFactor, "-", "I")
	out.Add("fundamentalPeriod", r.PeriodS, "s", "T = 0.1(h/3.048)^0.75")
	out.Add("baseShearCoefficient", r.ShearCoefficient, "-", "Cs = Z·S·I/R")
	out.Add("baseShear", r.BaseShearKN, "kN", "V = Cs·W")
	out.Add("lateralForce", r.LateralForceKN, "kN", "")
	out.Add("overturningMoment", r.OverturningKNm, "kN·m", "V·0.7h")
	out.Recommend("Malaysia is in a low seismic zone - design may be governed by wind loads")
	out.Standards = []string{"Uniform Building By-Laws 1984", "MS 1553:2002"}
	return out
}
