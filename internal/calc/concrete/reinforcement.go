package concrete

import (
	"fmt"
	"math"
)

// DefaultLinkAreaMM2 is two legs of 10 mm links.
const DefaultLinkAreaMM2 = 157

type ReinforcementInput struct {
	WidthMM            float64 `json:"width_mm"`
	HeightMM           float64 `json:"height_mm"`
	EffectiveDepthMM   float64 `json:"effective_depth_mm"`
	CompressionDepthMM float64 `json:"compression_depth_mm"`
	MomentKNm          float64 `json:"moment_knm"`
	ShearKN            float64 `json:"shear_kn"`
	FckMPa             float64 `json:"fck_mpa"`
	FykMPa             float64 `json:"fyk_mpa"`
	LinkAreaMM2        float64 `json:"link_area_mm2"`
	MaxSteelRatio      float64 `json:"max_steel_ratio"`
}

type ReinforcementResult struct {
	Input               ReinforcementInput `json:"input"`
	FcdMPa              float64            `json:"fcd_mpa"`
	FydMPa              float64            `json:"fyd_mpa"`
	K                   float64            `json:"k"`
	LimitMomentKNm      float64            `json:"limit_moment_knm"`
	LeverArmMM          float64            `json:"lever_arm_mm"`
	Doubly              bool               `json:"doubly"`
	TensionSteelMM2     float64            `json:"tension_steel_mm2"`
	CompressionSteelMM2 float64            `json:"compression_steel_mm2"`
	MinSteelMM2         float64            `json:"min_steel_mm2"`
	MaxSteelMM2         float64            `json:"max_steel_mm2"`
	ConcreteShearKN     float64            `json:"concrete_shear_kn"`
	CrushingShearKN     float64            `json:"crushing_shear_kn"`
	LinksRequired       bool               `json:"links_required"`
	LinkSpacingMM       float64            `json:"link_spacing_mm"`
	Recommendations     []string           `json:"recommendations"`
}

// limitK is the K' bound between singly and doubly reinforced sections.
const limitK = 0.167

// DesignReinforcement sizes tension, compression and shear reinforcement.
func DesignReinforcement(in ReinforcementInput) (ReinforcementResult, error) {
	if in.WidthMM <= 0 || in.EffectiveDepthMM <= 0 || in.MomentKNm <= 0 || in.FckMPa <= 0 || in.FykMPa <= 0 {
		return ReinforcementResult{}, fmt.Errorf("invalid input")
	}
	if in.CompressionDepthMM <= 0 {
		in.CompressionDepthMM = 50
	}
	if in.LinkAreaMM2 <= 0 {
		in.LinkAreaMM2 = DefaultLinkAreaMM2
	}
	if in.MaxSteelRatio <= 0 {
		in.MaxSteelRatio = 0.04
	}
	if in.HeightMM <= 0 {
		in.HeightMM = in.EffectiveDepthMM + in.CompressionDepthMM
	}

	b, d := in.WidthMM, in.EffectiveDepthMM
	fcd := in.FckMPa / 1.5
	fyd := in.FykMPa / 1.15
	M := in.MomentKNm * 1e6
	Mlim := limitK * fcd * b * d * d
	K := M / (fcd * b * d * d)

	res := ReinforcementResult{
		FcdMPa:         fcd,
		FydMPa:         fyd,
		K:              K,
		LimitMomentKNm: Mlim / 1e6,
	}

	if M <= Mlim {
		z := math.Min(d*(0.5+math.Sqrt(0.25-K/1.134)), 0.95*d)
		res.LeverArmMM = z
		res.TensionSteelMM2 = M / (fyd * z)
	} else {
		z := d * (0.5 + math.Sqrt(0.25-limitK/1.134))
		res.Doubly = true
		res.LeverArmMM = z
		res.CompressionSteelMM2 = (M - Mlim) / (fyd * (d - in.CompressionDepthMM))
		res.TensionSteelMM2 = Mlim/(fyd*z) + res.CompressionSteelMM2
	}

	res.MinSteelMM2 = math.Max(0.26*(2.9/in.FykMPa)*b*d, 0.0013*b*d)
	res.TensionSteelMM2 = math.Max(res.TensionSteelMM2, res.MinSteelMM2)
	res.MaxSteelMM2 = in.MaxSteelRatio * b * in.HeightMM

	// shear resistance without links, EN 1992-1-1 6.2.2 minimum
	k := math.Min(1+math.Sqrt(200/d), 2.0)
	vmin := 0.035 * math.Pow(k, 1.5) * math.Sqrt(in.FckMPa)
	res.ConcreteShearKN = vmin * b * d / 1000
	res.CrushingShearKN = 0.5 * 0.6 * (1 - in.FckMPa/250) * fcd * b * d / 1000

	maxSpacing := math.Min(0.75*d, 400)
	res.LinkSpacingMM = maxSpacing
	if in.ShearKN > res.ConcreteShearKN {
		res.LinksRequired = true
		s := in.LinkAreaMM2 * fyd * d / (in.ShearKN * 1000)
		res.LinkSpacingMM = math.Min(s, maxSpacing)
	}

	res.Input = in
	res.Recommendations = reinforcementRecommendations(res)
	return res, nil
}

func reinforcementRecommendations(r ReinforcementResult) []string {
	var out []string
	if r.Doubly {
		out = append(out, "Compression reinforcement required - consider a deeper section")
	}
	if r.TensionSteelMM2+r.CompressionSteelMM2 > r.MaxSteelMM2 {
		out = append(out, "Reinforcement exceeds the maximum - increase section size")
	}
	if r.Input.ShearKN > r.CrushingShearKN {
		out = append(out, "Shear exceeds strut crushing resistance - increase section size")
	}
	if r.LinksRequired {
		out = append(out, fmt.Sprintf("Provide links at %.0f mm centres", math.Floor(r.LinkSpacingMM/25)*25))
	}
	if len(out) == 0 {
		out = append(out, "Reinforcement design is adequate")
	}
	return out
}
