package tables

import "fmt"

// Elastic is the canonical stiffness and working stress of a material family.
// Concrete uses 30 GPa for all grades and steel 210 GPa, matching SteelEMPa.
type Elastic struct {
	ModulusMPa         float64 `json:"modulus_mpa"`
	AllowableStressMPa float64 `json:"allowable_stress_mpa"`
}

var elastic = map[string]Elastic{
	"concrete": {ModulusMPa: 30000, AllowableStressMPa: 25},
	"steel":    {ModulusMPa: SteelEMPa, AllowableStressMPa: 250},
	"timber":   {ModulusMPa: 11000, AllowableStressMPa: 24},
}

func ElasticFor(material string) (Elastic, error) {
	e, ok := elastic[material]
	if !ok {
		return Elastic{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, material)
	}
	return e, nil
}
