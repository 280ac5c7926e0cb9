package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ledgerdocs"
)

// RegisterMarkdown generates a markdown report from a slice of payroll
// registers. The metric columns are dynamic, so this report is built with a
// writer instead of a template.
func RegisterMarkdown(registers []ledgerdocs.Register) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	for _, reg := range registers {
		r.Printf("## PAYROLL REGISTER %s\n\n", reg.PayPeriod)
		r.Printf("**Document:** %s\n**Pay date:** %s\n\n", reg.ID, reg.PayDate)

		r.Printf("| Employee | Department |")
		for _, m := range ledgerdocs.PayrollMetrics {
			r.Printf(" %s |", m)
		}
		r.Printf("\n|:---|:---|")
		for range ledgerdocs.PayrollMetrics {
			r.Printf("---:|")
		}
		r.Printf("\n")

		for _, e := range reg.Entries {
			r.Printf("| %s (%s) | %s |", e.EmployeeName, e.EmployeeID, e.Department)
			for _, m := range ledgerdocs.PayrollMetrics {
				r.Printf(" %s |", e.Values[m].StringFixed(2))
			}
			r.Printf("\n")
		}

		r.Printf("| **Totals** | |")
		for _, m := range ledgerdocs.PayrollMetrics {
			r.Printf(" **%s** |", reg.Totals[m].StringFixed(2))
		}
		r.Printf("\n\n")
	}
	return r.String()
}

// tableRenderer formats tabular reports into a markdown string.
type tableRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *tableRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
