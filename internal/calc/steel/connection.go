package steel

import (
	"fmt"
	"math"

	"Keystone/internal/tables"
)

const (
	Bolted = "bolted"
	Welded = "welded"
)

// Fillet weld defaults.
const (
	DefaultWeldStrengthMPa = 180
	MinWeldSizeMM          = 3
)

type ConnectionInput struct {
	Type             string            `json:"type"`
	ForceKN          float64           `json:"force_kn"`
	Bolt             tables.BoltGrade  `json:"bolt"`
	BoltDiameterMM   float64           `json:"bolt_diameter_mm"`
	BoltCount        int               `json:"bolt_count"`
	PlateThicknessMM float64           `json:"plate_thickness_mm"`
	Plate            tables.SteelGrade `json:"plate"`
	WeldSizeMM       float64           `json:"weld_size_mm"`
	WeldLengthMM     float64           `json:"weld_length_mm"`
	WeldStrengthMPa  float64           `json:"weld_strength_mpa"`
}

type ConnectionResult struct {
	Input              ConnectionInput `json:"input"`
	BoltAreaMM2        float64         `json:"bolt_area_mm2"`
	BoltShearKN        float64         `json:"bolt_shear_kn"`
	BoltTensionKN      float64         `json:"bolt_tension_kn"`
	BoltBearingKN      float64         `json:"bolt_bearing_kn"`
	WeldThroatMM       float64         `json:"weld_throat_mm"`
	RequiredWeldSizeMM float64         `json:"required_weld_size_mm"`
	RequiredBolts      int             `json:"required_bolts"`
	CapacityKN         float64         `json:"capacity_kn"`
	GoverningMode      string          `json:"governing_mode"`
	Utilization        float64         `json:"utilization"`
	Recommendations    []string        `json:"recommendations"`
}

// DesignConnection sizes a single-shear bolted lap joint or a fillet-welded
// joint carrying a direct shear force.
func DesignConnection(in ConnectionInput) (ConnectionResult, error) {
	if in.ForceKN <= 0 {
		return ConnectionResult{}, fmt.Errorf("invalid input")
	}
	if in.Type == "" {
		in.Type = Bolted
	}
	var (
		res ConnectionResult
		err error
	)
	switch in.Type {
	case Bolted:
		res, err = bolted(in)
	case Welded:
		res, err = welded(in)
	default:
		err = fmt.Errorf("unknown connection type %q", in.Type)
	}
	if err != nil {
		return ConnectionResult{}, err
	}
	res.Utilization = in.ForceKN / res.CapacityKN
	res.Recommendations = connectionRecommendations(res)
	return res, nil
}

func bolted(in ConnectionInput) (ConnectionResult, error) {
	if in.BoltDiameterMM <= 0 {
		in.BoltDiameterMM = 20
	}
	if in.BoltCount <= 0 || in.PlateThicknessMM <= 0 || in.Bolt.FubMPa <= 0 || in.Plate.FuMPa <= 0 {
		return ConnectionResult{}, fmt.Errorf("invalid bolted connection")
	}
	d := in.BoltDiameterMM
	A := tables.BarArea(d)
	fv := 0.6 * in.Bolt.FubMPa * A / tables.GammaM2 / 1000
	ft := 0.9 * in.Bolt.FubMPa * 0.78 * A / tables.GammaM2 / 1000
	fb := 2.5 * in.Plate.FuMPa * d * in.PlateThicknessMM / tables.GammaM2 / 1000

	n := float64(in.BoltCount)
	res := ConnectionResult{
		Input:         in,
		BoltAreaMM2:   A,
		BoltShearKN:   fv,
		BoltTensionKN: ft,
		BoltBearingKN: fb,
		CapacityKN:    math.Min(n*fv, n*fb),
		RequiredBolts: int(math.Ceil(in.ForceKN / math.Min(fv, fb))),
		GoverningMode: "Bearing",
	}
	if fv < fb {
		res.GoverningMode = "Shear"
	}
	return res, nil
}

func welded(in ConnectionInput) (ConnectionResult, error) {
	if in.WeldSizeMM <= 0 || in.WeldLengthMM <= 0 {
		return ConnectionResult{}, fmt.Errorf("invalid welded connection")
	}
	if in.WeldStrengthMPa <= 0 {
		in.WeldStrengthMPa = DefaultWeldStrengthMPa
	}
	a := 0.7 * in.WeldSizeMM
	// V = 0.7·s·L·fvw/γM2, solved for s
	s := in.ForceKN * 1000 * tables.GammaM2 / (0.7 * in.WeldLengthMM * in.WeldStrengthMPa)
	return ConnectionResult{
		Input:              in,
		WeldThroatMM:       a,
		RequiredWeldSizeMM: math.Max(s, MinWeldSizeMM),
		CapacityKN:         a * in.WeldLengthMM * in.WeldStrengthMPa / tables.GammaM2 / 1000,
		GoverningMode:      "Weld",
	}, nil
}

func connectionRecommendations(r ConnectionResult) []string {
	var out []string
	if r.Utilization > 1 {
		if r.Input.Type == Welded {
			out = append(out, fmt.Sprintf("Increase weld size to at least %.0f mm", math.Ceil(r.RequiredWeldSizeMM)))
		} else {
			out = append(out, fmt.Sprintf("Increase to at least %d bolts or use larger bolts", r.RequiredBolts))
		}
	}
	if r.Input.Type == Bolted && r.GoverningMode == "Bearing" {
		out = append(out, "Plate bearing governs - consider a thicker plate")
	}
	if len(out) == 0 {
		out = append(out, "Connection design is adequate")
	}
	return out
}
