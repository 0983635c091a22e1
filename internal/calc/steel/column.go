package steel

import (
	"fmt"
	"math"

	"Keystone/internal/tables"
)

// imperfectionB is the EN 1993-1-1 imperfection factor for buckling curve b.
const imperfectionB = 0.34

type ColumnInput struct {
	LengthM               float64           `json:"length_m"`
	AxialKN               float64           `json:"axial_kn"`
	MomentTopKNm          float64           `json:"moment_top_knm"`
	MomentBottomKNm       float64           `json:"moment_bottom_knm"`
	EffectiveLengthFactor float64           `json:"effective_length_factor"`
	Family                string            `json:"family"`
	Grade                 tables.SteelGrade `json:"grade"`
}

type ColumnResult struct {
	Input               ColumnInput    `json:"input"`
	Section             tables.Section `json:"section"`
	SectionFits         bool           `json:"section_fits"`
	RequiredAreaMM2     float64        `json:"required_area_mm2"`
	BucklingLengthMM    float64        `json:"buckling_length_mm"`
	Slenderness         float64        `json:"slenderness"`
	RelativeSlenderness float64        `json:"relative_slenderness"`
	Phi                 float64        `json:"phi"`
	Chi                 float64        `json:"chi"`
	BucklingKN          float64        `json:"buckling_kn"`
	MomentResistanceKNm float64        `json:"moment_resistance_knm"`
	DesignMomentKNm     float64        `json:"design_moment_knm"`
	InteractionRatio    float64        `json:"interaction_ratio"`
	Recommendations     []string       `json:"recommendations"`
}

// DesignColumn checks minor-axis flexural buckling with the curve b
// reduction factor and a linear N-M interaction.
func DesignColumn(in ColumnInput) (ColumnResult, error) {
	if in.LengthM <= 0 || in.AxialKN <= 0 || in.Grade.FyMPa <= 0 {
		return ColumnResult{}, fmt.Errorf("invalid input")
	}
	if in.Family == "" {
		in.Family = "UC"
	}
	if _, ok := tables.Sections(in.Family); !ok {
		return ColumnResult{}, fmt.Errorf("unknown section family %q", in.Family)
	}
	if in.EffectiveLengthFactor <= 0 {
		in.EffectiveLengthFactor = 1
	}

	fy := in.Grade.FyMPa
	N := in.AxialKN * 1000
	aReq := N * tables.GammaM0 / fy
	sec, fits := tables.FirstSection(in.Family, func(s tables.Section) bool { return s.AreaMM2 >= aReq })

	lcr := in.EffectiveLengthFactor * in.LengthM * 1000
	lambda := lcr / sec.RyMM
	lambda1 := math.Pi * math.Sqrt(tables.SteelEMPa/fy)
	lbar := lambda / lambda1
	phi := 0.5 * (1 + imperfectionB*(lbar-0.2) + lbar*lbar)
	chi := math.Min(1/(phi+math.Sqrt(phi*phi-lbar*lbar)), 1)

	res := ColumnResult{
		Section:             sec,
		SectionFits:         fits,
		RequiredAreaMM2:     aReq,
		BucklingLengthMM:    lcr,
		Slenderness:         lambda,
		RelativeSlenderness: lbar,
		Phi:                 phi,
		Chi:                 chi,
		BucklingKN:          chi * sec.AreaMM2 * fy / tables.GammaM1 / 1000,
		MomentResistanceKNm: sec.ZxMM3 * fy / tables.GammaM0 / 1e6,
		DesignMomentKNm:     math.Max(math.Abs(in.MomentTopKNm), math.Abs(in.MomentBottomKNm)),
	}
	res.InteractionRatio = in.AxialKN/res.BucklingKN + res.DesignMomentKNm/res.MomentResistanceKNm
	res.Input = in
	res.Recommendations = columnRecommendations(res)
	return res, nil
}

func columnRecommendations(r ColumnResult) []string {
	var out []string
	if r.InteractionRatio > 1 {
		out = append(out, "Increase column section - combined axial and bending capacity exceeded")
	}
	if r.RelativeSlenderness > 2 {
		out = append(out, "Very slender column - add intermediate restraint")
	}
	if len(out) == 0 {
		out = append(out, "Steel column design is adequate")
	}
	return out
}
