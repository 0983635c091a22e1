// Package loads combines characteristic actions to EN 1990 and derives
// equivalent static wind and seismic actions for a building.
package loads

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"Keystone/internal/tables"
	"Keystone/internal/units"
)

// Limit states.
const (
	Ultimate       = "ultimate"
	Serviceability = "serviceability"
)

type Input struct {
	DeadKN        float64 `json:"dead_kn"`
	LiveKN        float64 `json:"live_kn"`
	WindKN        float64 `json:"wind_kn"`
	EarthquakeKN  float64 `json:"earthquake_kn"`
	TemperatureKN float64 `json:"temperature_kn"`
	LimitState    string  `json:"limit_state"`
	BuildingType  string  `json:"building_type"`
}

type Combination struct {
	Name      string  `json:"name"`
	Formula   string  `json:"formula"`
	Value     float64 `json:"value"`
	Governing bool    `json:"governing"`
}

// Analysis summarises the relative size of each action.
type Analysis struct {
	TotalKN  float64            `json:"total_kn"`
	Shares   map[string]float64 `json:"shares"`
	Dominant string             `json:"dominant"`
}

type Result struct {
	Input           Input                     `json:"input"`
	Factors         tables.CombinationFactors `json:"factors"`
	Combinations    []Combination             `json:"combinations"`
	Governing       int                       `json:"governing"`
	GoverningKN     float64                   `json:"governing_kn"`
	Analysis        Analysis                  `json:"analysis"`
	Fallbacks       []string                  `json:"fallbacks,omitempty"`
	Recommendations []string                  `json:"recommendations"`
}

func Calculate(in Input) (Result, error) {
	if in.LimitState == "" {
		in.LimitState = Ultimate
	}
	if in.BuildingType == "" {
		in.BuildingType = tables.DefaultBuildingType
	}
	// wind and temperature may act in either direction
	for _, v := range []float64{in.DeadKN, in.LiveKN, in.WindKN, in.EarthquakeKN, in.TemperatureKN} {
		if !units.Finite(v) {
			return Result{}, fmt.Errorf("invalid input")
		}
	}
	if in.DeadKN < 0 || in.LiveKN < 0 || in.EarthquakeKN < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}

	f, known := tables.Combination(in.BuildingType)
	res := Result{Input: in, Factors: f}
	if !known {
		res.Fallbacks = append(res.Fallbacks, fmt.Sprintf("unknown building type %q, using %s combination factors", in.BuildingType, tables.DefaultBuildingType))
	}

	switch in.LimitState {
	case Ultimate:
		res.Combinations = ultimate(in, f)
	case Serviceability:
		res.Combinations = serviceability(in, f)
	default:
		return Result{}, fmt.Errorf("unknown limit state %q", in.LimitState)
	}

	magnitudes := make([]float64, len(res.Combinations))
	for i, c := range res.Combinations {
		magnitudes[i] = math.Abs(c.Value)
	}
	// Suction governs as readily as pressure. MaxIdx returns the first
	// maximum, so ties go to the earlier combination.
	res.Governing = floats.MaxIdx(magnitudes)
	res.Combinations[res.Governing].Governing = true
	res.GoverningKN = res.Combinations[res.Governing].Value

	res.Analysis = analyze(in)
	res.Recommendations = recommendations(res)
	return res, nil
}

func ultimate(in Input, f tables.CombinationFactors) []Combination {
	g, q, w := tables.GammaG*in.DeadKN, tables.GammaQ*in.LiveKN, tables.GammaW*in.WindKN
	out := []Combination{
		{Name: "ULS 1: Dead + Live", Formula: "1.35Gk + 1.5Qk", Value: g + q},
		{Name: "ULS 2: Dead + Live + Wind", Formula: "1.35Gk + 1.5Qk + 1.5ψ₀Wk", Value: g + q + w*f.Psi0.Wind},
		{Name: "ULS 3: Dead + Wind + Live", Formula: "1.35Gk + 1.5Wk + 1.5ψ₀Qk", Value: g + w + q*f.Psi0.Live},
	}
	if in.EarthquakeKN > 0 {
		out = append(out, Combination{
			Name:    "ULS 4: Dead + Earthquake + Live",
			Formula: "1.0Gk + 1.0Ek + ψ₂Qk",
			Value:   tables.GammaE*in.DeadKN + tables.GammaE*in.EarthquakeKN + f.Psi2.Live*in.LiveKN,
		})
	}
	if in.TemperatureKN > 0 {
		out = append(out, Combination{
			Name:    "ULS 5: Dead + Temperature + Live",
			Formula: "1.35Gk + 1.5Tk + ψ₀Qk",
			Value:   g + tables.GammaT*in.TemperatureKN + f.Psi0.Live*in.LiveKN,
		})
	}
	return out
}

func serviceability(in Input, f tables.CombinationFactors) []Combination {
	return []Combination{
		{Name: "SLS 1: Characteristic", Formula: "Gk + Qk", Value: in.DeadKN + in.LiveKN},
		{Name: "SLS 2: Frequent", Formula: "Gk + ψ₁Qk", Value: in.DeadKN + f.Psi1.Live*in.LiveKN},
		{Name: "SLS 3: Quasi-permanent", Formula: "Gk + ψ₂Qk", Value: in.DeadKN + f.Psi2.Live*in.LiveKN},
	}
}

var actionNames = []string{"deadLoad", "liveLoad", "windLoad", "earthquakeLoad", "temperatureLoad"}

func analyze(in Input) Analysis {
	v := []float64{in.DeadKN, in.LiveKN, in.WindKN, in.EarthquakeKN, in.TemperatureKN}
	for i := range v {
		v[i] = math.Abs(v[i])
	}
	a := Analysis{TotalKN: floats.Sum(v), Shares: make(map[string]float64, len(v))}
	for i, name := range actionNames {
		if a.TotalKN > 0 {
			a.Shares[name] = v[i] / a.TotalKN * 100
		} else {
			a.Shares[name] = 0
		}
	}
	a.Dominant = actionNames[floats.MaxIdx(v)]
	return a
}

func recommendations(r Result) []string {
	var out []string
	a := r.Analysis
	if a.Dominant == "windLoad" && a.Shares["windLoad"] > 50 {
		out = append(out, "Wind load is dominant - ensure adequate lateral stability")
	}
	if a.Dominant == "earthquakeLoad" {
		out = append(out, "Seismic design required - check ductility requirements")
	}
	if math.Abs(r.GoverningKN) > 100 {
		out = append(out, "High governing load - verify structural adequacy")
	}
	if a.Shares["liveLoad"] < 20 {
		out = append(out, "Low live load ratio - verify minimum requirements")
	}
	if len(out) == 0 {
		out = append(out, "Load combination analysis complete")
	}
	return out
}
