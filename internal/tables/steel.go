package tables

import (
	"fmt"
	"math"
)

// Structural steel constants (EN 1993-1-1).
const (
	SteelEMPa = 210000.0
	GammaM0   = 1.0
	GammaM1   = 1.0
	GammaM2   = 1.25
)

type SteelGrade struct {
	Code  string  `json:"code"`
	FyMPa float64 `json:"fy_mpa"`
	FuMPa float64 `json:"fu_mpa"`
}

var steelGrades = map[string]SteelGrade{
	"S235": {Code: "S235", FyMPa: 235, FuMPa: 360},
	"S275": {Code: "S275", FyMPa: 275, FuMPa: 430},
	"S355": {Code: "S355", FyMPa: 355, FuMPa: 510},
	"S420": {Code: "S420", FyMPa: 420, FuMPa: 520},
	"S460": {Code: "S460", FyMPa: 460, FuMPa: 540},
}

const DefaultSteelGrade = "S275"

func Steel(code string) (SteelGrade, error) {
	g, ok := steelGrades[code]
	if !ok {
		return SteelGrade{}, fmt.Errorf("%w: steel %q", ErrUnknownGrade, code)
	}
	return g, nil
}

// BoltGrade is an ISO 898-1 property class.
type BoltGrade struct {
	Code   string  `json:"code"`
	FubMPa float64 `json:"fub_mpa"`
	FybMPa float64 `json:"fyb_mpa"`
}

var boltGrades = map[string]BoltGrade{
	"4.6":  {Code: "4.6", FubMPa: 400, FybMPa: 240},
	"4.8":  {Code: "4.8", FubMPa: 400, FybMPa: 320},
	"5.6":  {Code: "5.6", FubMPa: 500, FybMPa: 300},
	"5.8":  {Code: "5.8", FubMPa: 500, FybMPa: 400},
	"6.8":  {Code: "6.8", FubMPa: 600, FybMPa: 480},
	"8.8":  {Code: "8.8", FubMPa: 800, FybMPa: 640},
	"10.9": {Code: "10.9", FubMPa: 1000, FybMPa: 900},
	"12.9": {Code: "12.9", FubMPa: 1200, FybMPa: 1080},
}

const DefaultBoltGrade = "8.8"

func Bolt(code string) (BoltGrade, error) {
	g, ok := boltGrades[code]
	if !ok {
		return BoltGrade{}, fmt.Errorf("%w: bolt %q", ErrUnknownGrade, code)
	}
	return g, nil
}

// RebarGrade is a reinforcing steel grade (EN 10080).
type RebarGrade struct {
	Code      string  `json:"code"`
	FykMPa    float64 `json:"fyk_mpa"`
	Ductility string  `json:"ductility"`
}

// FydMPa is the design yield strength fyk/γs.
func (g RebarGrade) FydMPa() float64 { return g.FykMPa / GammaS }

var rebarGrades = map[string]RebarGrade{
	"B500A": {Code: "B500A", FykMPa: 500, Ductility: "A"},
	"B500B": {Code: "B500B", FykMPa: 500, Ductility: "B"},
	"B500C": {Code: "B500C", FykMPa: 500, Ductility: "C"},
	"B460B": {Code: "B460B", FykMPa: 460, Ductility: "B"},
}

const DefaultRebarGrade = "B500B"

func Rebar(code string) (RebarGrade, error) {
	g, ok := rebarGrades[code]
	if !ok {
		return RebarGrade{}, fmt.Errorf("%w: rebar %q", ErrUnknownGrade, code)
	}
	return g, nil
}

// BarArea returns the cross-sectional area of one bar of the given diameter.
func BarArea(diameterMM float64) float64 {
	return math.Pi * diameterMM * diameterMM / 4
}
