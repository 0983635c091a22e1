package models

import "Keystone/internal/tables"

// FactoredLoad returns the ULS gravity load 1.35G + 1.5Q.
func (r Request) FactoredLoad() float64 {
	return tables.GammaG*r.Loads.DeadLoad + tables.GammaQ*r.Loads.LiveLoad
}

// AxialKN is the column design axial force: the explicit parameter or the
// factored gravity load.
func (r Request) AxialKN() float64 {
	if r.Params.AxialLoadKN > 0 {
		return r.Params.AxialLoadKN
	}
	return r.FactoredLoad()
}

// AppliedKN is the service load on a foundation or pile group.
func (r Request) AppliedKN() float64 {
	if r.Params.AppliedLoadKN > 0 {
		return r.Params.AppliedLoadKN
	}
	return r.Loads.Service()
}

// MomentKNm is the design moment: the explicit parameter or wL²/8 of the
// factored line load over Dimensions.Length.
func (r Request) MomentKNm() float64 {
	if r.Params.BendingMomentKNm > 0 {
		return r.Params.BendingMomentKNm
	}
	L := r.Dimensions.Length
	return r.FactoredLoad() * L * L / 8
}

// ShearKN is the design shear: the explicit parameter or wL/2.
func (r Request) ShearKN() float64 {
	if r.Params.ShearForceKN > 0 {
		return r.Params.ShearForceKN
	}
	return r.FactoredLoad() * r.Dimensions.Length / 2
}
