package column

import (
	"fmt"
	"math"
)

type Input struct {
	Material              string  `json:"material"` // concrete or timber
	HeightM               float64 `json:"height_m"`
	EffectiveLengthFactor float64 `json:"effective_length_factor"`
	WidthMM               float64 `json:"width_mm"`
	DepthMM               float64 `json:"depth_mm"`
	AxialKN               float64 `json:"axial_kn"`
	MomentTopKNm          float64 `json:"moment_top_knm"`
	MomentBottomKNm       float64 `json:"moment_bottom_knm"`
	FckMPa                float64 `json:"fck_mpa"`
	FykMPa                float64 `json:"fyk_mpa"`
	ModulusMPa            float64 `json:"modulus_mpa"`
	AllowableStressMPa    float64 `json:"allowable_stress_mpa"`
	CoverMM               float64 `json:"cover_mm"`
	MinCoverMM            float64 `json:"min_cover_mm"`
	CriticalSlenderness   float64 `json:"critical_slenderness"`
	MaxSlenderness        float64 `json:"max_slenderness"`
	MinSteelRatio         float64 `json:"min_steel_ratio"`
	MaxSteelRatio         float64 `json:"max_steel_ratio"`
}

type Result struct {
	Input               Input    `json:"input"`
	EffectiveLengthMM   float64  `json:"effective_length_mm"`
	RadiusOfGyrationMM  float64  `json:"radius_of_gyration_mm"`
	Slenderness         float64  `json:"slenderness"`
	BucklingFactor      float64  `json:"buckling_factor"`
	DesignLoadKN        float64  `json:"design_load_kn"`
	EulerLoadKN         float64  `json:"euler_load_kn"`
	GrossAreaMM2        float64  `json:"gross_area_mm2"`
	MinSteelMM2         float64  `json:"min_steel_mm2"`
	MaxSteelMM2         float64  `json:"max_steel_mm2"`
	RequiredSteelMM2    float64  `json:"required_steel_mm2"`
	AxialResistanceKN   float64  `json:"axial_resistance_kn"`
	MinimumMomentKNm    float64  `json:"minimum_moment_knm"`
	DesignMomentKNm     float64  `json:"design_moment_knm"`
	MomentResistanceKNm float64  `json:"moment_resistance_knm"`
	InteractionRatio    float64  `json:"interaction_ratio"`
	Recommendations     []string `json:"recommendations"`
}

// Calculate designs a braced rectangular column in concrete or timber.
func Calculate(in Input) (Result, error) {
	if in.HeightM <= 0 || in.WidthMM <= 0 || in.DepthMM <= 0 || in.AxialKN <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.EffectiveLengthFactor <= 0 {
		in.EffectiveLengthFactor = 1.0
	}
	if in.CriticalSlenderness <= 0 {
		in.CriticalSlenderness = 25
	}
	if in.MaxSlenderness <= 0 {
		in.MaxSlenderness = 100
	}
	if in.MinSteelRatio <= 0 {
		in.MinSteelRatio = 0.01
	}
	if in.MaxSteelRatio <= 0 {
		in.MaxSteelRatio = 0.04
	}
	if in.ModulusMPa <= 0 {
		return Result{}, fmt.Errorf("invalid modulus")
	}
	if in.Material == "timber" && in.AllowableStressMPa <= 0 {
		in.AllowableStressMPa = 24
	}

	b := math.Min(in.WidthMM, in.DepthMM)
	h := math.Max(in.WidthMM, in.DepthMM)
	Le := in.EffectiveLengthFactor * in.HeightM * 1000.0
	r := b / math.Sqrt(12)
	lambda := Le / r

	factor := 1.0
	if lambda > in.CriticalSlenderness {
		factor = 1 + (lambda-in.CriticalSlenderness)*0.02
	}

	// Euler load about the weak axis: Pcr = π²EI/Le²
	I := h * math.Pow(b, 3) / 12.0
	pcr := (math.Pi * math.Pi * in.ModulusMPa * I) / (Le * Le) / 1000.0

	Ac := in.WidthMM * in.DepthMM
	res := Result{
		EffectiveLengthMM:  Le,
		RadiusOfGyrationMM: r,
		Slenderness:        lambda,
		BucklingFactor:     factor,
		DesignLoadKN:       in.AxialKN * factor,
		EulerLoadKN:        pcr,
		GrossAreaMM2:       Ac,
	}

	switch in.Material {
	case "timber":
		timber(&res, in)
	default:
		if in.FckMPa <= 0 || in.FykMPa <= 0 {
			return Result{}, fmt.Errorf("invalid material strengths")
		}
		concrete(&res, in, h)
	}
	res.Input = in
	res.Recommendations = recommendations(res)
	return res, nil
}

func concrete(res *Result, in Input, h float64) {
	fcd := in.FckMPa / 1.5
	fyd := in.FykMPa / 1.15
	Ac := res.GrossAreaMM2
	res.MinSteelMM2 = in.MinSteelRatio * Ac
	res.MaxSteelMM2 = in.MaxSteelRatio * Ac

	// N = 0.85 fcd (Ac - As) + fyd As, solved for As
	N := res.DesignLoadKN * 1000.0
	As := (N - 0.85*fcd*Ac) / (fyd - 0.85*fcd)
	res.RequiredSteelMM2 = math.Max(As, res.MinSteelMM2)
	provided := math.Min(res.RequiredSteelMM2, res.MaxSteelMM2)
	res.AxialResistanceKN = (0.85*fcd*(Ac-provided) + fyd*provided) / 1000.0

	// minimum eccentricity e0 = max(h/30, 20 mm)
	e0 := math.Max(h/30.0, 20.0)
	res.MinimumMomentKNm = res.DesignLoadKN * e0 / 1000.0
	applied := math.Max(math.Abs(in.MomentTopKNm), math.Abs(in.MomentBottomKNm))
	res.DesignMomentKNm = math.Max(applied, res.MinimumMomentKNm)

	// half the steel on each face, lever arm between bar centroids
	dPrime := in.CoverMM
	if dPrime <= 0 {
		dPrime = 40
	}
	dPrime += 20
	z := math.Max(h-2*dPrime, 0.1*h)
	res.MomentResistanceKNm = 0.5 * provided * fyd * z / 1e6
	res.InteractionRatio = res.DesignLoadKN/res.AxialResistanceKN + res.DesignMomentKNm/res.MomentResistanceKNm
}

func timber(res *Result, in Input) {
	stress := in.AllowableStressMPa
	if res.Slenderness > 50 {
		stress *= 0.6
	}
	res.AxialResistanceKN = stress * res.GrossAreaMM2 / 1000.0
	res.InteractionRatio = res.DesignLoadKN / res.AxialResistanceKN
}

func recommendations(r Result) []string {
	var out []string
	in := r.Input
	if r.Slenderness > in.MaxSlenderness {
		out = append(out, "Column is too slender - increase section or add bracing")
	}
	if r.Slenderness > in.CriticalSlenderness {
		out = append(out, fmt.Sprintf("Slender column - design load amplified by %.2f", r.BucklingFactor))
	}
	if in.Material != "timber" && r.RequiredSteelMM2 > r.MaxSteelMM2 {
		out = append(out, "Required reinforcement exceeds maximum - increase column section or concrete grade")
	}
	if r.InteractionRatio > 1.0 {
		out = append(out, "Increase column section - combined axial and bending capacity exceeded")
	}
	if in.MinCoverMM > 0 && in.CoverMM > 0 && in.CoverMM < in.MinCoverMM {
		out = append(out, fmt.Sprintf("Increase concrete cover to at least %.0f mm", in.MinCoverMM))
	}
	if len(out) == 0 {
		out = append(out, "Column design is adequate")
	}
	return out
}
