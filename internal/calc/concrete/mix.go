// Package concrete designs concrete mixes and flexural/shear reinforcement
// for rectangular sections.
package concrete

import (
	"fmt"

	"Keystone/internal/tables"
)

type MixInput struct {
	TargetStrengthMPa float64              `json:"target_strength_mpa"`
	SlumpMM           float64              `json:"slump_mm"`
	MaxAggregateMM    float64              `json:"max_aggregate_mm"`
	Exposure          tables.ExposureClass `json:"exposure"`
	WaterCementRatio  float64              `json:"water_cement_ratio"` // optional override
}

type MixResult struct {
	Input           MixInput `json:"input"`
	FckMPa          float64  `json:"fck_mpa"`
	FcmMPa          float64  `json:"fcm_mpa"`
	WaterCement     float64  `json:"water_cement"`
	WaterKgM3       float64  `json:"water_kg_m3"`
	CementKgM3      float64  `json:"cement_kg_m3"`
	FineKgM3        float64  `json:"fine_kg_m3"`
	CoarseKgM3      float64  `json:"coarse_kg_m3"`
	FineRatio       float64  `json:"fine_ratio"`
	CementBags      float64  `json:"cement_bags"`
	Consistency     string   `json:"consistency"`
	CostCement      float64  `json:"cost_cement"`
	CostFine        float64  `json:"cost_fine"`
	CostCoarse      float64  `json:"cost_coarse"`
	CostWater       float64  `json:"cost_water"`
	CostPerM3       float64  `json:"cost_per_m3"`
	Recommendations []string `json:"recommendations"`
}

// DesignMix proportions one cubic metre of concrete against a closed
// 2400 kg/m³ density.
func DesignMix(in MixInput) (MixResult, error) {
	if in.TargetStrengthMPa <= 0 {
		in.TargetStrengthMPa = 30
	}
	if in.SlumpMM <= 0 {
		in.SlumpMM = 75
	}
	if in.MaxAggregateMM <= 0 {
		in.MaxAggregateMM = 20
	}
	if in.Exposure.Code == "" {
		in.Exposure, _ = tables.ExposureOrDefault(tables.DefaultExposureClass)
	}

	fck := in.TargetStrengthMPa
	wc := in.WaterCementRatio
	if wc <= 0 {
		wc = in.Exposure.WaterCementRatio(fck)
	}

	water := tables.BaseWaterKgM3 + (in.SlumpMM-75)*0.5 + (20-in.MaxAggregateMM)*2
	cement := max(water/wc, in.Exposure.MinCementKgM3)
	aggregate := tables.ConcreteDensityKgM3 - cement - water
	if aggregate <= 0 {
		return MixResult{}, fmt.Errorf("no aggregate left for cement %.0f and water %.0f kg/m³", cement, water)
	}
	ratio := tables.FineAggregateRatio(in.MaxAggregateMM)
	fine := aggregate * ratio
	coarse := aggregate - fine

	p := tables.MixPrices()
	res := MixResult{
		FckMPa:      fck,
		FcmMPa:      fck + tables.MeanStrengthMargin,
		WaterCement: water / cement,
		WaterKgM3:   water,
		CementKgM3:  cement,
		FineKgM3:    fine,
		CoarseKgM3:  coarse,
		FineRatio:   ratio,
		CementBags:  cement / tables.CementBagKg,
		Consistency: tables.ConsistencyClass(in.SlumpMM),
		CostCement:  cement * p.CementKg,
		CostFine:    fine * p.FineKg,
		CostCoarse:  coarse * p.CoarseKg,
		CostWater:   water * p.WaterL,
	}
	res.CostPerM3 = res.CostCement + res.CostFine + res.CostCoarse + res.CostWater
	res.Input = in
	res.Recommendations = mixRecommendations(res)
	return res, nil
}

func mixRecommendations(r MixResult) []string {
	var out []string
	if r.FckMPa > 50 {
		out = append(out, "High strength concrete - consider using superplasticizer")
	}
	if r.Input.Exposure.Marine() {
		out = append(out, "Marine environment - use corrosion inhibitors")
	}
	if r.CementKgM3 > 400 {
		out = append(out, "High cement content - monitor heat of hydration")
	}
	if r.WaterCement > r.Input.Exposure.WCMax {
		out = append(out, fmt.Sprintf("Reduce water/cement ratio to at most %.2f for exposure class %s", r.Input.Exposure.WCMax, r.Input.Exposure.Code))
	}
	if len(out) == 0 {
		out = append(out, "Mix design is suitable for the specified requirements")
	}
	return out
}
