// Package compliance turns the checks of a finished report into a pass/fail
// summary with issues and remedies.
package compliance

import (
	"fmt"
	"sort"

	"Keystone/internal/calc/report"
)

// DefaultAdvisory is the utilization above which a passing check is flagged.
const DefaultAdvisory = 0.8

// Evaluate summarises the checks of r. Failing checks are listed worst first;
// passing checks above the advisory utilization produce a monitoring note.
func Evaluate(r *report.Report, advisory float64) report.Compliance {
	if advisory <= 0 {
		advisory = DefaultAdvisory
	}
	out := report.Compliance{
		Compliant:       true,
		Issues:          []string{},
		Recommendations: []string{},
		Checks:          make(map[string]report.CheckState, len(r.Checks)),
		Standards:       append([]string(nil), r.Standards...),
	}

	failing := make([]report.Check, 0, len(r.Checks))
	var high []report.Check
	for _, c := range r.Checks {
		out.Checks[c.Name] = report.CheckState{Actual: c.Actual, Allowable: c.Allowable, Ratio: c.Ratio, Passed: c.Passed}
		switch {
		case !c.Passed:
			failing = append(failing, c)
		case c.Utilization() > advisory:
			high = append(high, c)
		}
	}
	// Stable sort keeps declaration order among equal utilizations.
	sort.SliceStable(failing, func(i, j int) bool {
		return failing[i].Utilization() > failing[j].Utilization()
	})

	seen := map[string]bool{}
	add := func(msg string) {
		if msg == "" || seen[msg] {
			return
		}
		seen[msg] = true
		out.Recommendations = append(out.Recommendations, msg)
	}

	for _, c := range failing {
		out.Compliant = false
		out.Issues = append(out.Issues, issue(c))
		add(c.Remedy)
	}
	for _, c := range high {
		add(fmt.Sprintf("%s utilization is %.0f%% - monitor closely", c.Label, c.Utilization()*100))
	}
	if len(out.Recommendations) == 0 {
		add("All checks satisfied")
	}
	return out
}

func issue(c report.Check) string {
	if c.Sense == report.AtLeast {
		return fmt.Sprintf("%s %.3g%s is below the required %.3g%s (ratio %.2f)",
			c.Label, c.Actual, unit(c.Unit), c.Allowable, unit(c.Unit), c.Ratio)
	}
	return fmt.Sprintf("%s %.3g%s exceeds the allowable %.3g%s (ratio %.2f)",
		c.Label, c.Actual, unit(c.Unit), c.Allowable, unit(c.Unit), c.Ratio)
}

func unit(u string) string {
	if u == "" {
		return ""
	}
	return " " + u
}
