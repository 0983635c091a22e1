// Package piles estimates the axial capacity of a single bored or driven pile
// from its shaft adhesion and end bearing.
package piles

import (
	"fmt"
	"math"
)

type Shape string

const (
	ShapeRound  Shape = "round"
	ShapeSquare Shape = "square"
)

// Method selects how the soil profile is read.
type Method string

const (
	// MethodLayers sums shaft adhesion over the full thickness of every layer
	// and takes end bearing in the last layer. This is the default.
	MethodLayers Method = "layers"
	// MethodLength clips the profile to the pile length and takes end bearing
	// in the layer at the toe.
	MethodLength Method = "length"
)

// DefaultAdhesion is the α factor applied to undrained cohesion along the shaft.
const DefaultAdhesion = 0.7

// Layer is one stratum, listed from the pile head down.
type Layer struct {
	ThicknessM     float64 `json:"thickness_m"`
	CohesionKPa    float64 `json:"cohesion_kpa"`
	AdhesionFactor float64 `json:"adhesion_factor"`
	EndBearingKPa  float64 `json:"end_bearing_kpa"`
}

type Input struct {
	Shape         Shape   `json:"shape"`
	Method        Method  `json:"method"`
	SizeMM        float64 `json:"size_mm"` // diameter or side
	LengthM       float64 `json:"length_m"`
	Layers        []Layer `json:"layers"`
	AppliedLoadKN float64 `json:"applied_load_kn"`
	PileCount     int     `json:"pile_count"`
	SafetyFactor  float64 `json:"safety_factor"`
}

type Result struct {
	Input             Input    `json:"input"`
	PerimeterM        float64  `json:"perimeter_m"`
	BaseAreaM2        float64  `json:"base_area_m2"`
	ShaftResistanceKN float64  `json:"shaft_resistance_kn"`
	BaseResistanceKN  float64  `json:"base_resistance_kn"`
	UltimateKN        float64  `json:"ultimate_kn"`
	AllowableKN       float64  `json:"allowable_kn"`
	RequiredPiles     int      `json:"required_piles"`
	LoadPerPileKN     float64  `json:"load_per_pile_kn"`
	ToeLayer          int      `json:"toe_layer"`
	ProfileDepthM     float64  `json:"profile_depth_m"`
	Recommendations   []string `json:"recommendations"`
}

func Calculate(in Input) (Result, error) {
	if in.LengthM <= 0 || in.SizeMM <= 0 || in.AppliedLoadKN <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.Shape == "" {
		in.Shape = ShapeRound
	}
	if in.Shape != ShapeRound && in.Shape != ShapeSquare {
		return Result{}, fmt.Errorf("invalid pile shape %q", in.Shape)
	}
	if in.Method == "" {
		in.Method = MethodLayers
	}
	if in.Method != MethodLayers && in.Method != MethodLength {
		return Result{}, fmt.Errorf("invalid pile method %q", in.Method)
	}
	if len(in.Layers) == 0 {
		return Result{}, fmt.Errorf("no layers provided")
	}
	if in.SafetyFactor <= 0 {
		in.SafetyFactor = 2.5
	}

	size := in.SizeMM / 1000.0
	var perimeter, area float64
	if in.Shape == ShapeSquare {
		perimeter = 4 * size
		area = size * size
	} else {
		perimeter = math.Pi * size
		area = math.Pi * size * size / 4
	}

	var shaft, depth float64
	toe := len(in.Layers) - 1
	if in.Method == MethodLayers {
		for _, layer := range in.Layers {
			shaft += adhesion(layer) * layer.CohesionKPa * perimeter * layer.ThicknessM
			depth += layer.ThicknessM
		}
	} else {
		shaft, toe, depth = alongLength(in, perimeter)
	}

	qb := in.Layers[toe].EndBearingKPa
	if qb <= 0 {
		qb = 9 * in.Layers[toe].CohesionKPa
	}
	base := qb * area
	ult := shaft + base
	allow := ult / in.SafetyFactor

	res := Result{
		PerimeterM:        perimeter,
		BaseAreaM2:        area,
		ShaftResistanceKN: shaft,
		BaseResistanceKN:  base,
		UltimateKN:        ult,
		AllowableKN:       allow,
		ToeLayer:          toe,
		ProfileDepthM:     depth,
	}
	if allow > 0 {
		res.RequiredPiles = int(math.Ceil(in.AppliedLoadKN / allow))
	}
	if res.RequiredPiles < 1 {
		res.RequiredPiles = 1
	}
	n := in.PileCount
	if n <= 0 {
		n = res.RequiredPiles
	}
	res.LoadPerPileKN = in.AppliedLoadKN / float64(n)
	res.Input = in
	res.Recommendations = recommendations(res)
	return res, nil
}

func adhesion(l Layer) float64 {
	if l.AdhesionFactor == 0 {
		return DefaultAdhesion
	}
	return l.AdhesionFactor
}

// alongLength integrates adhesion over the layers the shaft passes through.
// Below the deepest layer the pile keeps the last layer's properties.
func alongLength(in Input, perimeter float64) (shaft float64, toe int, depth float64) {
	toe = len(in.Layers) - 1
	found := false
	from := 0.0
	for i, layer := range in.Layers {
		to := from + layer.ThicknessM
		overlap := math.Min(to, in.LengthM) - from
		if overlap > 0 {
			shaft += adhesion(layer) * layer.CohesionKPa * perimeter * overlap
			if in.LengthM <= to && !found {
				toe, found = i, true
			}
		}
		from = to
	}
	if in.LengthM > from {
		last := in.Layers[len(in.Layers)-1]
		shaft += adhesion(last) * last.CohesionKPa * perimeter * (in.LengthM - from)
	}
	return shaft, toe, from
}

func recommendations(r Result) []string {
	var out []string
	in := r.Input
	if in.PileCount > 0 && in.PileCount < r.RequiredPiles {
		out = append(out, fmt.Sprintf("Increase pile count to %d or extend pile length", r.RequiredPiles))
	}
	if in.PileCount == 0 && r.RequiredPiles > 1 {
		out = append(out, fmt.Sprintf("Use a group of %d piles with a pile cap", r.RequiredPiles))
	}
	if in.Method == MethodLayers && math.Abs(r.ProfileDepthM-in.LengthM) > 1e-9 {
		out = append(out, fmt.Sprintf("Soil layers total %.1f m but the pile is %.1f m long - check the profile or use the length method", r.ProfileDepthM, in.LengthM))
	}
	if r.UltimateKN > 0 && r.ShaftResistanceKN < 0.3*r.UltimateKN {
		out = append(out, "End bearing dominates - confirm the founding stratum")
	}
	if len(out) == 0 {
		out = append(out, "Pile design is adequate")
	}
	return out
}
