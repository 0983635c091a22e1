// Package tables holds the static material, soil, environment and code-limit
// data used by the calculators. Every table is built at package init and only
// read afterwards.
package tables

import (
	"fmt"
	"sort"
)

// Partial safety factors for materials.
const (
	GammaC = 1.5
	GammaS = 1.15
)

// ConcreteGrade is an EN 206 strength class.
type ConcreteGrade struct {
	Code    string  `json:"code"`
	FckMPa  float64 `json:"fck_mpa"`
	FcmMPa  float64 `json:"fcm_mpa"`
	FctmMPa float64 `json:"fctm_mpa"`
	EcmMPa  float64 `json:"ecm_mpa"`
}

// FcdMPa is the design compressive strength fck/γc.
func (g ConcreteGrade) FcdMPa() float64 { return g.FckMPa / GammaC }

var concreteGrades = map[string]ConcreteGrade{
	"C16": {Code: "C16", FckMPa: 16, FcmMPa: 24, FctmMPa: 1.9, EcmMPa: 29000},
	"C20": {Code: "C20", FckMPa: 20, FcmMPa: 28, FctmMPa: 2.2, EcmMPa: 30000},
	"C25": {Code: "C25", FckMPa: 25, FcmMPa: 33, FctmMPa: 2.6, EcmMPa: 31000},
	"C30": {Code: "C30", FckMPa: 30, FcmMPa: 38, FctmMPa: 2.9, EcmMPa: 33000},
	"C35": {Code: "C35", FckMPa: 35, FcmMPa: 43, FctmMPa: 3.2, EcmMPa: 34000},
	"C40": {Code: "C40", FckMPa: 40, FcmMPa: 48, FctmMPa: 3.5, EcmMPa: 35000},
	"C45": {Code: "C45", FckMPa: 45, FcmMPa: 53, FctmMPa: 3.8, EcmMPa: 36000},
	"C50": {Code: "C50", FckMPa: 50, FcmMPa: 58, FctmMPa: 4.1, EcmMPa: 37000},
}

const DefaultConcreteGrade = "C30"

// Concrete looks up a strength class by its code, e.g. "C30".
func Concrete(code string) (ConcreteGrade, error) {
	g, ok := concreteGrades[code]
	if !ok {
		return ConcreteGrade{}, fmt.Errorf("%w: concrete %q", ErrUnknownGrade, code)
	}
	return g, nil
}

// ConcreteCodes returns the known strength classes in ascending order.
func ConcreteCodes() []string {
	out := make([]string, 0, len(concreteGrades))
	for k := range concreteGrades {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return concreteGrades[out[i]].FckMPa < concreteGrades[out[j]].FckMPa
	})
	return out
}
