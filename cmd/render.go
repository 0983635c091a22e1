package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"Keystone/internal/calc/report"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func checkFormat(f string) error {
	switch f {
	case formatJSON, formatTable:
		return nil
	}
	return fmt.Errorf("unknown format %q (want json or table)", f)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeReport(w io.Writer, format string, r *report.Report) error {
	if format == formatJSON {
		return writeJSON(w, r)
	}
	renderReport(w, r)
	return nil
}

func status(ok bool, yes, no string) string {
	if ok {
		return passStyle.Render(yes)
	}
	return failStyle.Render(no)
}

func heading(w io.Writer, s string) {
	fmt.Fprintf(w, "\n%s\n", headingStyle.Render(s))
}

func list(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	heading(w, title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}

func renderReport(w io.Writer, r *report.Report) {
	fmt.Fprintf(w, "%s  %s\n", titleStyle.Render(r.Kind), status(r.Valid, "valid", "invalid"))
	list(w, "Errors", r.Errors)
	if !r.Valid {
		return
	}

	if len(r.Attributes) > 0 {
		heading(w, "Attributes")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, k := range sortedKeys(r.Attributes) {
			fmt.Fprintf(tw, "  %s\t%s\n", k, r.Attributes[k])
		}
		tw.Flush()
	}

	heading(w, "Results")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range sortedKeys(r.Results) {
		m := r.Results[k]
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", k, number(m.Value), m.Unit, dimStyle.Render(m.Formula))
	}
	tw.Flush()

	if len(r.Combinations) > 0 {
		heading(w, "Combinations")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, c := range r.Combinations {
			mark := ""
			if c.Governing {
				mark = titleStyle.Render("governing")
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.Name, c.Formula, number(c.Value), mark)
		}
		tw.Flush()
	}

	if len(r.Checks) > 0 {
		heading(w, "Checks")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, c := range r.Checks {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", c.Label, number(c.Actual), number(c.Allowable),
				number(c.Ratio), status(c.Passed, "PASS", "FAIL"))
		}
		tw.Flush()
	}

	list(w, "Recommendations", r.Recommendations)
	list(w, "Warnings", r.Warnings)
	if c := r.Compliance; c != nil {
		heading(w, "Compliance")
		fmt.Fprintf(w, "  %s\n", status(c.Compliant, "compliant", "not compliant"))
		for _, is := range c.Issues {
			fmt.Fprintf(w, "  - %s\n", is)
		}
	}
	if len(r.Standards) > 0 {
		fmt.Fprintf(w, "\n%s\n", dimStyle.Render("Standards: "+strings.Join(r.Standards, "; ")))
	}
}

func number(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
