package report

// Compliance is the pass/fail summary attached when compliance checking is
// requested.
type Compliance struct {
	Compliant       bool                  `json:"compliant"`
	Issues          []string              `json:"issues"`
	Recommendations []string              `json:"recommendations"`
	Checks          map[string]CheckState `json:"checks"`
	Standards       []string              `json:"standards"`
}

type CheckState struct {
	Actual    float64 `json:"actual"`
	Allowable float64 `json:"allowable"`
	Ratio     float64 `json:"ratio"`
	Passed    bool    `json:"passed"`
}
