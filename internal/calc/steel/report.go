package steel

import (
	"fmt"

	"Keystone/internal/calc/report"
)

func (r BeamResult) Report() *report.Report {
	out := report.New("steel-beam")
	out.Inputs = r.Input
	out.Set("section", r.Section.Designation)
	out.Set("grade", r.Input.Grade.Code)
	out.Set("lateralSupport", r.Input.LateralSupport)
	if !r.SectionFits {
		out.Warn("no %s section carries %.1f kN·m; largest section %s used", r.Input.Family, r.Input.MomentKNm, r.Section.Designation)
	}
	out.Add("requiredSectionModulus", r.RequiredModulusMM3, "mm³", "Zreq = M·γM0/(fy·χLT)")
	out.Add("sectionModulus", r.Section.ZxMM3, "mm³", "")
	out.Add("momentOfInertia", r.Section.IxMM4, "mm⁴", "")
	out.Add("momentResistance", r.MomentResistanceKNm, "kN·m", "MRd = Zx·fy·χLT/γM0")
	out.Add("shearResistance", r.ShearResistanceKN, "kN", "VRd = Av·fy/(√3·γM0)")
	out.Add("deflection", r.DeflectionMM, "mm", "δ = 5ML²/(48EI)")
	out.Add("allowableDeflection", r.AllowableDeflectionMM, "mm", fmt.Sprintf("L/%g", r.Input.DeflectionDivisor))
	out.Add("momentUtilization", r.MomentUtilization, "-", "MEd/MRd")
	out.Add("shearUtilization", r.ShearUtilization, "-", "VEd/VRd")

	out.AddCheck(report.Max("momentCheck", "Design moment", r.Input.MomentKNm, r.MomentResistanceKNm, "kN·m",
		"Increase beam section - moment capacity exceeded"))
	out.AddCheck(report.Max("shearCheck", "Design shear", r.Input.ShearKN, r.ShearResistanceKN, "kN",
		"Increase beam section - shear capacity exceeded"))
	out.AddCheck(report.Max("deflectionCheck", "Deflection", r.DeflectionMM, r.AllowableDeflectionMM, "mm",
		"Increase beam depth - deflection limit exceeded"))
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS EN 1993-1-1", "MS 1462:2009"}
	return out
}

func (r ColumnResult) Report() *report.Report {
	out := report.New("steel-column")
	out.Inputs = r.Input
	out.Set("section", r.Section.Designation)
	out.Set("grade", r.Input.Grade.Code)
	out.Set("bucklingCurve", "b")
	if !r.SectionFits {
		out.Warn("no %s section has %.0f mm² of area; largest section %s used", r.Input.Family, r.RequiredAreaMM2, r.Section.Designation)
	}
	out.Add("sectionArea", r.Section.AreaMM2, "mm²", "")
	out.Add("bucklingLength", r.BucklingLengthMM, "mm", "Lcr = k·L")
	out.Add("slenderness", r.Slenderness, "-", "λ = Lcr/iy")
	out.Add("relativeSlenderness", r.RelativeSlenderness, "-", "λ̄ = λ/(π√(E/fy))")
	out.Add("reductionFactor", r.Chi, "-", "χ = 1/(φ + √(φ² - λ̄²))")
	out.Add("bucklingResistance", r.BucklingKN, "kN", "NbRd = χ·A·fy/γM1")
	out.Add("momentResistance", r.MomentResistanceKNm, "kN·m", "MRd = Zx·fy/γM0")
	out.Add("interactionRatio", r.InteractionRatio, "-", "NEd/NbRd + MEd/MRd ≤ 1.0")

	out.AddCheck(report.Max("bucklingCheck", "Axial load", r.Input.AxialKN, r.BucklingKN, "kN",
		"Increase column section or reduce the buckling length"))
	out.AddCheck(report.Max("interactionCheck", "Interaction ratio", r.InteractionRatio, 1, "",
		"Increase column section - combined axial and bending capacity exceeded"))
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS EN 1993-1-1", "MS 1462:2009"}
	return out
}

func (r ConnectionResult) Report() *report.Report {
	out := report.New("steel-connection")
	out.Inputs = r.Input
	out.Set("connectionType", r.Input.Type)
	out.Set("governingMode", r.GoverningMode)
	switch r.Input.Type {
	case Welded:
		out.Add("weldThroat", r.WeldThroatMM, "mm", "a = 0.7s")
		out.Add("requiredWeldSize", r.RequiredWeldSizeMM, "mm", "s = V·γM2/(0.7·L·fvw)")
		out.Add("connectionCapacity", r.CapacityKN, "kN", "0.7s·L·fvw/γM2")
	default:
		out.Set("boltGrade", r.Input.Bolt.Code)
		out.Add("boltArea", r.BoltAreaMM2, "mm²", "πd²/4")
		out.Add("boltShearResistance", r.BoltShearKN, "kN", "FvRd = 0.6·fub·A/γM2")
		out.Add("boltTensionResistance", r.BoltTensionKN, "kN", "FtRd = 0.9·fub·As/γM2")
		out.Add("boltBearingResistance", r.BoltBearingKN, "kN", "FbRd = 2.5·fu·d·t/γM2")
		out.Add("connectionCapacity", r.CapacityKN, "kN", "min(n·FvRd, n·FbRd)")
		out.Add("requiredBolts", float64(r.RequiredBolts), "bolts", "")
	}
	out.Add("utilization", r.Utilization, "-", "F/capacity")

	out.AddCheck(report.Max("connectionCheck", "Applied force", r.Input.ForceKN, r.CapacityKN, "kN",
		"Increase connection capacity"))
	out.Recommend(r.Recommendations...)
	out.Standards = []string{"BS EN 1993-1-8", "MS 1462:2009"}
	return out
}
