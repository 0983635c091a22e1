package report

// Sense tells which side of the threshold passes.
type Sense string

const (
	// AtMost checks pass while actual/allowable <= 1 (demand vs capacity).
	AtMost Sense = "max"
	// AtLeast checks pass while actual/required >= 1 (safety factors, minimum
	// contents).
	AtLeast Sense = "min"
)

// Check compares an actual value with its code limit.
type Check struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Actual    float64 `json:"actual"`
	Allowable float64 `json:"allowable"`
	Ratio     float64 `json:"ratio"`
	Passed    bool    `json:"passed"`
	Unit      string  `json:"unit,omitempty"`
	Sense     Sense   `json:"convention"`
	Remedy    string  `json:"-"`
}

// Max builds a demand/capacity check: passed == ratio <= 1.
func Max(name, label string, actual, allowable float64, unit, remedy string) Check {
	c := Check{Name: name, Label: label, Actual: actual, Allowable: allowable, Unit: unit, Sense: AtMost, Remedy: remedy}
	if allowable > 0 {
		c.Ratio = actual / allowable
		c.Passed = c.Ratio <= 1.0
	} else {
		c.Passed = actual <= 0
	}
	return c
}

// Min builds a safety-factor style check: passed == ratio >= 1.
func Min(name, label string, actual, required float64, unit, remedy string) Check {
	c := Check{Name: name, Label: label, Actual: actual, Allowable: required, Unit: unit, Sense: AtLeast, Remedy: remedy}
	if required > 0 {
		c.Ratio = actual / required
		c.Passed = c.Ratio >= 1.0
	} else {
		c.Passed = true
	}
	return c
}

// Utilization is the fraction of capacity used, on a scale where 1 is the
// limit for either sense.
func (c Check) Utilization() float64 {
	if c.Sense == AtLeast {
		if c.Ratio <= 0 {
			return 0
		}
		return 1 / c.Ratio
	}
	return c.Ratio
}
