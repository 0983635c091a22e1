package tables

import (
	"fmt"
	"sort"
)

// ExposureClass carries the EN 206 durability limits for one exposure class.
// WCBase and WCSlope describe the strength-dependent w/c curve; a zero slope
// means the ratio is fixed at WCMax.
type ExposureClass struct {
	Code          string  `json:"code"`
	WCMax         float64 `json:"wc_max"`
	WCSlope       float64 `json:"-"`
	MinCementKgM3 float64 `json:"min_cement_kg_m3"`
	CoverMM       float64 `json:"cover_mm"`
}

// WaterCementRatio returns the design w/c ratio for a characteristic strength.
func (e ExposureClass) WaterCementRatio(fckMPa float64) float64 {
	if e.WCSlope == 0 {
		return e.WCMax
	}
	return min(e.WCMax, 0.4+e.WCSlope*(50-fckMPa)/50)
}

// Marine reports whether the class is a chloride-from-seawater class.
func (e ExposureClass) Marine() bool { return len(e.Code) > 1 && e.Code[:2] == "XS" }

const DefaultExposureClass = "XC2"

var exposureClasses = map[string]ExposureClass{
	"XC1": {Code: "XC1", WCMax: 0.65, WCSlope: 0.25, MinCementKgM3: 260, CoverMM: 15},
	"XC2": {Code: "XC2", WCMax: 0.60, WCSlope: 0.20, MinCementKgM3: 280, CoverMM: 20},
	"XC3": {Code: "XC3", WCMax: 0.55, WCSlope: 0.15, MinCementKgM3: 280, CoverMM: 20},
	"XC4": {Code: "XC4", WCMax: 0.50, WCSlope: 0.10, MinCementKgM3: 300, CoverMM: 25},
	"XS1": {Code: "XS1", WCMax: 0.50, MinCementKgM3: 300, CoverMM: 35},
	"XS2": {Code: "XS2", WCMax: 0.45, MinCementKgM3: 320, CoverMM: 40},
	"XS3": {Code: "XS3", WCMax: 0.45, MinCementKgM3: 340, CoverMM: 45},
}

func Exposure(code string) (ExposureClass, error) {
	e, ok := exposureClasses[code]
	if !ok {
		return ExposureClass{}, fmt.Errorf("%w: %q", ErrUnknownExposureClass, code)
	}
	return e, nil
}

// ExposureOrDefault returns the class for code, or XC2 and false.
func ExposureOrDefault(code string) (ExposureClass, bool) {
	if e, ok := exposureClasses[code]; ok {
		return e, true
	}
	return exposureClasses[DefaultExposureClass], false
}

// Mix design constants.
const (
	ConcreteDensityKgM3 = 2400.0
	BaseWaterKgM3       = 180.0
	CementBagKg         = 50.0
	MeanStrengthMargin  = 8.0
	MinStrengthMargin   = 5.0
)

// fineRatios maps maximum aggregate size (mm) to the fine share of aggregate.
var fineRatios = map[float64]float64{10: 0.45, 14: 0.42, 20: 0.40, 25: 0.38, 40: 0.35}

// FineAggregateRatio returns the fine share for an aggregate size, linearly
// interpolated between table sizes and clamped at the ends.
func FineAggregateRatio(maxAggMM float64) float64 {
	sizes := make([]float64, 0, len(fineRatios))
	for s := range fineRatios {
		sizes = append(sizes, s)
	}
	sort.Float64s(sizes)
	if maxAggMM <= sizes[0] {
		return fineRatios[sizes[0]]
	}
	for i := 1; i < len(sizes); i++ {
		lo, hi := sizes[i-1], sizes[i]
		if maxAggMM <= hi {
			t := (maxAggMM - lo) / (hi - lo)
			return fineRatios[lo] + t*(fineRatios[hi]-fineRatios[lo])
		}
	}
	return fineRatios[sizes[len(sizes)-1]]
}

// Unit prices in MYR per kg (water per litre).
type Prices struct {
	CementKg float64 `json:"cement_kg"`
	FineKg   float64 `json:"fine_kg"`
	CoarseKg float64 `json:"coarse_kg"`
	WaterL   float64 `json:"water_l"`
	Currency string  `json:"currency"`
}

var mixPrices = Prices{CementKg: 0.45, FineKg: 0.08, CoarseKg: 0.09, WaterL: 0.003, Currency: "MYR"}

// MixPrices returns a copy of the unit price table.
func MixPrices() Prices { return mixPrices }

// ConsistencyClass maps a slump in mm to its EN 206 class.
func ConsistencyClass(slumpMM float64) string {
	switch {
	case slumpMM <= 40:
		return "S1"
	case slumpMM <= 90:
		return "S2"
	case slumpMM <= 150:
		return "S3"
	default:
		return "S4"
	}
}
