package models

// Kinds lists every calculation kind in presentation order.
func Kinds() []Kind {
	return []Kind{
		KindBeamAnalysis,
		KindColumnDesign,
		KindFoundationBearing,
		KindPileDesign,
		KindConcreteMix,
		KindReinforcementDesign,
		KindSlabDesign,
		KindSteelBeam,
		KindSteelColumn,
		KindSteelConnection,
		KindLoadCombination,
		KindWindLoad,
		KindSeismicLoad,
	}
}

func (m Material) Valid() bool {
	switch m {
	case MaterialConcrete, MaterialSteel, MaterialTimber:
		return true
	}
	return false
}

func (s StructureType) Valid() bool {
	switch s {
	case StructureBeam, StructureColumn, StructureFoundation, StructurePile, StructureSlab:
		return true
	}
	return false
}
