package engine

import (
	"slices"

	"Keystone/internal/calc/report"
	"Keystone/internal/models"
)

// entry binds a calculation kind to the structure types it accepts and the
// adapter that runs it. An empty structure list accepts any structure.
type entry struct {
	structures []models.StructureType
	run        func(*env) (*report.Report, error)
}

func (e entry) accepts(s models.StructureType) bool {
	return s == "" || len(e.structures) == 0 || slices.Contains(e.structures, s)
}

var registry = map[models.Kind]entry{
	models.KindBeamAnalysis:        {structures: []models.StructureType{models.StructureBeam}, run: beamAnalysis},
	models.KindColumnDesign:        {structures: []models.StructureType{models.StructureColumn}, run: columnDesign},
	models.KindFoundationBearing:   {structures: []models.StructureType{models.StructureFoundation}, run: foundationBearing},
	models.KindPileDesign:          {structures: []models.StructureType{models.StructurePile, models.StructureFoundation}, run: pileDesign},
	models.KindConcreteMix:         {run: concreteMix},
	models.KindReinforcementDesign: {structures: []models.StructureType{models.StructureBeam, models.StructureColumn, models.StructureSlab}, run: reinforcementDesign},
	models.KindSlabDesign:          {structures: []models.StructureType{models.StructureSlab}, run: slabDesign},
	models.KindSteelBeam:           {structures: []models.StructureType{models.StructureBeam}, run: steelBeam},
	models.KindSteelColumn:         {structures: []models.StructureType{models.StructureColumn}, run: steelColumn},
	models.KindSteelConnection:     {run: steelConnection},
	models.KindLoadCombination:     {run: loadCombination},
	models.KindWindLoad:            {run: windLoad},
	models.KindSeismicLoad:         {run: seismicLoad},
}

// Kinds lists the registered calculation kinds in presentation order.
func Kinds() []models.Kind {
	out := make([]models.Kind, 0, len(registry))
	for _, k := range models.Kinds() {
		if _, ok := registry[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Structures returns the structure types a kind accepts; nil means any.
func Structures(kind models.Kind) ([]models.StructureType, bool) {
	e, ok := registry[kind]
	return e.structures, ok
}
