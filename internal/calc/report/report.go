// Package report defines the calculation result returned by every routine.
package report

import (
	"fmt"
	"math"
	"sort"
)

// Metric is one named output quantity.
type Metric struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Formula string  `json:"formula,omitempty"`
}

// Combination is one load combination with its computed value.
type Combination struct {
	Name      string  `json:"name"`
	Formula   string  `json:"formula"`
	Value     float64 `json:"value"`
	Governing bool    `json:"governing"`
}

// Report is the structured outcome of one calculation.
type Report struct {
	Kind            string            `json:"kind"`
	Valid           bool              `json:"valid"`
	Errors          []string          `json:"errors,omitempty"`
	Inputs          any               `json:"inputs,omitempty"`
	Results         map[string]Metric `json:"results,omitempty"`
	Attributes      map[string]string `json:"attributes,omitempty"`
	Combinations    []Combination     `json:"combinations,omitempty"`
	Checks          []Check           `json:"checks,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Warnings        []string          `json:"warnings,omitempty"`
	Standards       []string          `json:"standards,omitempty"`
	Compliance      *Compliance       `json:"compliance,omitempty"`
}

// New returns an empty valid report for kind.
func New(kind string) *Report {
	return &Report{
		Kind:       kind,
		Valid:      true,
		Results:    map[string]Metric{},
		Attributes: map[string]string{},
	}
}

// Invalid returns a report carrying validation errors and no results.
func Invalid(kind string, errs []string) *Report {
	return &Report{Kind: kind, Valid: false, Errors: errs}
}

func (r *Report) Add(name string, value float64, unit, formula string) {
	r.Results[name] = Metric{Value: value, Unit: unit, Formula: formula}
}

func (r *Report) Set(name, value string) {
	r.Attributes[name] = value
}

func (r *Report) AddCheck(c Check) {
	r.Checks = append(r.Checks, c)
}

func (r *Report) Recommend(msg ...string) {
	r.Recommendations = append(r.Recommendations, msg...)
}

func (r *Report) Warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Check returns the check with the given name.
func (r *Report) Check(name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Metric returns the value of a named result, or 0.
func (r *Report) Metric(name string) float64 {
	return r.Results[name].Value
}

// NonFinite lists result and check names whose values are NaN or infinite,
// sorted.
func (r *Report) NonFinite() []string {
	var bad []string
	for name, m := range r.Results {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			bad = append(bad, name)
		}
	}
	for _, c := range r.Checks {
		for _, v := range []float64{c.Actual, c.Allowable, c.Ratio} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad = append(bad, c.Name)
				break
			}
		}
	}
	sort.Strings(bad)
	return bad
}
