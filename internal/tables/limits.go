package tables

import "strings"

// Governing standards that parameterise serviceability limits.
const (
	StandardEC   = "EC"
	StandardUBBL = "UBBL"
)

// Limits groups the code-mandated thresholds the calculators check against.
type Limits struct {
	Standard              string  `yaml:"standard" json:"standard"`
	DeflectionDivisor     float64 `yaml:"deflection_divisor" json:"deflection_divisor"`
	BearingSafetyFactor   float64 `yaml:"bearing_safety_factor" json:"bearing_safety_factor"`
	PileSafetyFactor      float64 `yaml:"pile_safety_factor" json:"pile_safety_factor"`
	SettlementLimitMM     float64 `yaml:"settlement_limit_mm" json:"settlement_limit_mm"`
	SettlementCapMM       float64 `yaml:"settlement_cap_mm" json:"settlement_cap_mm"`
	CriticalSlenderness   float64 `yaml:"critical_slenderness" json:"critical_slenderness"`
	MaxSlenderness        float64 `yaml:"max_slenderness" json:"max_slenderness"`
	MinReinforcementRatio float64 `yaml:"min_reinforcement_ratio" json:"min_reinforcement_ratio"`
	MaxReinforcementRatio float64 `yaml:"max_reinforcement_ratio" json:"max_reinforcement_ratio"`
	UtilizationAdvisory   float64 `yaml:"utilization_advisory" json:"utilization_advisory"`
	SpanDepthLimit        float64 `yaml:"span_depth_limit" json:"span_depth_limit"`
}

// DefaultLimits returns the Eurocode limit set.
func DefaultLimits() Limits {
	return Limits{
		Standard:              StandardEC,
		DeflectionDivisor:     250,
		BearingSafetyFactor:   3,
		PileSafetyFactor:      2.5,
		SettlementLimitMM:     25,
		SettlementCapMM:       100,
		CriticalSlenderness:   25,
		MaxSlenderness:        100,
		MinReinforcementRatio: 0.01,
		MaxReinforcementRatio: 0.04,
		UtilizationAdvisory:   0.8,
		SpanDepthLimit:        20,
	}
}

// ForStandard returns the limit set for a governing standard. The UBBL set
// only differs in its L/360 deflection limit.
func ForStandard(standard string) (Limits, bool) {
	l := DefaultLimits()
	switch strings.ToUpper(standard) {
	case "", StandardEC:
		return l, true
	case StandardUBBL:
		l.Standard = StandardUBBL
		l.DeflectionDivisor = 360
		return l, true
	}
	return l, false
}

// Merge overlays the non-zero fields of o on l. A known o.Standard first
// switches l to that standard's preset divisor, so an explicit divisor in o
// still wins.
func (l Limits) Merge(o Limits) Limits {
	if o.Standard != "" {
		l.Standard = o.Standard
		if p, ok := ForStandard(o.Standard); ok {
			l.Standard, l.DeflectionDivisor = p.Standard, p.DeflectionDivisor
		}
	}
	set := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	set(&l.DeflectionDivisor, o.DeflectionDivisor)
	set(&l.BearingSafetyFactor, o.BearingSafetyFactor)
	set(&l.PileSafetyFactor, o.PileSafetyFactor)
	set(&l.SettlementLimitMM, o.SettlementLimitMM)
	set(&l.SettlementCapMM, o.SettlementCapMM)
	set(&l.CriticalSlenderness, o.CriticalSlenderness)
	set(&l.MaxSlenderness, o.MaxSlenderness)
	set(&l.MinReinforcementRatio, o.MinReinforcementRatio)
	set(&l.MaxReinforcementRatio, o.MaxReinforcementRatio)
	set(&l.UtilizationAdvisory, o.UtilizationAdvisory)
	set(&l.SpanDepthLimit, o.SpanDepthLimit)
	return l
}

// Minimum concrete cover in mm by member (UBBL 1984 / MS 1195).
var minCover = map[string]float64{
	"beam":       25,
	"column":     40,
	"slab":       20,
	"foundation": 50,
	"pile":       75,
}

func MinCover(member string) (float64, bool) {
	c, ok := minCover[member]
	return c, ok
}
