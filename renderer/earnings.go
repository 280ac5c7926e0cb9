package renderer

import (
	"strings"

	"github.com/etnz/ledgerdocs"
)

// EarningsMarkdown renders one employee's year-to-date earnings record.
// Each pay period row carries the period's values and the running YTD
// totals side by side; the trailing accrual row, when present, is marked.
func EarningsMarkdown(report *ledgerdocs.YTDReport) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# %s - %d\n\n", ledgerdocs.YTDReportType, report.FiscalYear)
	r.Printf("**%s** (%s), %s\n**Run date:** %s\n\n",
		report.EmployeeName, report.EmployeeID, report.Department, report.RunDate)

	r.Printf("| Pay Period | Pay Date |")
	for _, m := range ledgerdocs.PayrollMetrics {
		r.Printf(" %s | YTD %s |", m, m)
	}
	r.Printf("\n|:---|:---|")
	for range ledgerdocs.PayrollMetrics {
		r.Printf("---:|---:|")
	}
	r.Printf("\n")

	for _, row := range report.Rows {
		period := row.PeriodKey
		if row.Projected {
			period = "*" + period + "*"
		}
		r.Printf("| %s | %s |", period, row.Date)
		for _, m := range ledgerdocs.PayrollMetrics {
			r.Printf(" %s | %s |", row.Values[m].StringFixed(2), row.Cumulative[m].StringFixed(2))
		}
		r.Printf("\n")
	}

	r.Printf("| **Final** | |")
	for _, m := range ledgerdocs.PayrollMetrics {
		r.Printf(" | **%s** |", report.FinalTotals[m].StringFixed(2))
	}
	r.Printf("\n")
	return r.String()
}
