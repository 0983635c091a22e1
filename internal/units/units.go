// Package units holds the length and force conversions used at the engine
// boundary. Calculators work in the units named by their field suffixes.
package units

import "math"

const (
	mmPerM    = 1000.0
	NPerKN    = 1000.0
	NmmPerKNm = 1e6
)

func MToMM(m float64) float64  { return m * mmPerM }
func MMToM(mm float64) float64 { return mm / mmPerM }

// KNmToNmm converts a moment in kN·m to N·mm.
func KNmToNmm(m float64) float64 { return m * NmmPerKNm }

// NmmToKNm converts a moment in N·mm to kN·m.
func NmmToKNm(m float64) float64 { return m / NmmPerKNm }

func KNToN(f float64) float64 { return f * NPerKN }
func NToKN(f float64) float64 { return f / NPerKN }

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }
