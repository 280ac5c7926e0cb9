package ledgerdocs

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/etnz/ledgerdocs/date"
	"github.com/shopspring/decimal"
)

// DefaultPeriodLengthDays is the assumed coverage of the last real entry
// when projecting an accrual: one bi-weekly pay period. It normalizes the
// daily rate regardless of actual pay frequency.
const DefaultPeriodLengthDays = 14

// MetricEntry is one raw transaction to fold into a per-entity cumulative
// series.
type MetricEntry struct {
	EntityID  string
	PeriodKey string
	Date      date.Date
	Values    MetricValues
}

// PeriodSnapshot is one row of an entity's cumulative series: the period's
// raw values plus running cumulative totals per metric.
//
// Invariant: Cumulative(n) = Cumulative(n-1) + Values(n), and the first
// row's cumulative equals its raw values.
type PeriodSnapshot struct {
	PeriodKey  string
	Date       date.Date
	Values     MetricValues
	Cumulative MetricValues
	Projected  bool // true only on the single trailing accrual row
}

// EntitySeries is the ordered cumulative series for one entity.
type EntitySeries struct {
	EntityID  string
	Snapshots []PeriodSnapshot
	Totals    MetricValues // final cumulative values, accrual included
}

// AccumulateOptions configures a fold.
type AccumulateOptions struct {
	Metrics          []string  // tracked metrics, also the output column order
	PeriodEnd        date.Date // end of the fiscal period accruals project to
	PeriodLengthDays int       // days the last entry is assumed to cover; DefaultPeriodLengthDays when zero
}

// Accumulate groups entries by entity, orders each group by date, and
// computes running cumulative totals per metric. After the last real entry
// of a group, at most one projection row is appended: per metric, a daily
// rate of last value over the assumed period length, scaled by the days
// remaining to PeriodEnd and folded into the cumulative totals. No
// projection row is emitted when no days remain: never a zero-value row.
//
// Entities come back in lexical id order so output is stable.
func Accumulate(entries []MetricEntry, opts AccumulateOptions) []EntitySeries {
	periodLen := opts.PeriodLengthDays
	if periodLen == 0 {
		periodLen = DefaultPeriodLengthDays
	}

	grouped := make(map[string][]MetricEntry)
	for _, e := range entries {
		grouped[e.EntityID] = append(grouped[e.EntityID], e)
	}
	ids := make([]string, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	series := make([]EntitySeries, 0, len(ids))
	for _, id := range ids {
		group := grouped[id]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Date.Before(group[j].Date) })

		running := make(MetricValues, len(opts.Metrics))
		for _, m := range opts.Metrics {
			running[m] = decimal.Zero
		}

		s := EntitySeries{EntityID: id}
		for _, e := range group {
			snap := PeriodSnapshot{
				PeriodKey:  e.PeriodKey,
				Date:       e.Date,
				Values:     make(MetricValues, len(opts.Metrics)),
				Cumulative: make(MetricValues, len(opts.Metrics)),
			}
			for _, m := range opts.Metrics {
				v := e.Values[m].Round(2)
				running[m] = running[m].Add(v).Round(2)
				snap.Values[m] = v
				snap.Cumulative[m] = running[m]
			}
			s.Snapshots = append(s.Snapshots, snap)
		}

		if accrual, ok := projectAccrual(group, running, opts.Metrics, opts.PeriodEnd, periodLen); ok {
			s.Snapshots = append(s.Snapshots, accrual)
		}

		s.Totals = make(MetricValues, len(opts.Metrics))
		for _, m := range opts.Metrics {
			s.Totals[m] = running[m]
		}
		series = append(series, s)
	}
	return series
}

// projectAccrual computes the single trailing projection row for a group,
// folding the projected amounts into running. It reports false when the
// group is empty or the period is already covered.
func projectAccrual(group []MetricEntry, running MetricValues, metrics []string, periodEnd date.Date, periodLen int) (PeriodSnapshot, bool) {
	if len(group) == 0 || periodEnd.IsZero() {
		return PeriodSnapshot{}, false
	}
	last := group[len(group)-1]
	days := DaysRemaining(periodEnd, last.Date)
	if days <= 0 {
		return PeriodSnapshot{}, false
	}

	snap := PeriodSnapshot{
		PeriodKey:  "ACCRUED (Est.)",
		Date:       periodEnd,
		Values:     make(MetricValues, len(metrics)),
		Cumulative: make(MetricValues, len(metrics)),
		Projected:  true,
	}
	length := decimal.NewFromInt(int64(periodLen))
	remaining := decimal.NewFromInt(int64(days))
	for _, m := range metrics {
		rate := last.Values[m].Div(length)
		projected := rate.Mul(remaining).Round(2)
		running[m] = running[m].Add(projected).Round(2)
		snap.Values[m] = projected
		snap.Cumulative[m] = running[m]
	}
	return snap, true
}

// YTDReport is one employee's chronological earnings record for a fiscal
// year, with running year-to-date totals and an optional accrued estimate
// for the remainder of the year.
type YTDReport struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Department   string
	FiscalYear   int
	RunDate      date.Date
	Rows         []PeriodSnapshot
	FinalTotals  MetricValues
}

// BuildYTDReports groups the payroll journal by employee for the target
// fiscal year and derives one earnings report per employee. Entries dated
// outside the fiscal year are ignored.
func BuildYTDReports(entries []PayrollEntry, fiscalYear int, runDate date.Date) []YTDReport {
	var filtered []MetricEntry
	meta := make(map[string]PayrollEntry)
	for _, e := range entries {
		if e.PayDate.Year() != fiscalYear {
			continue
		}
		if _, ok := meta[e.EmployeeID]; !ok {
			meta[e.EmployeeID] = e
		}
		filtered = append(filtered, MetricEntry{
			EntityID:  e.EmployeeID,
			PeriodKey: e.PayPeriod,
			Date:      e.PayDate,
			Values:    e.Values,
		})
	}

	eoy := date.New(fiscalYear, 12, 31)
	series := Accumulate(filtered, AccumulateOptions{
		Metrics:   PayrollMetrics,
		PeriodEnd: eoy,
	})

	reports := make([]YTDReport, 0, len(series))
	for _, s := range series {
		first := meta[s.EntityID]
		reports = append(reports, YTDReport{
			ID:           fmt.Sprintf("YTD-%d-%s", fiscalYear, s.EntityID),
			EmployeeID:   s.EntityID,
			EmployeeName: first.EmployeeName,
			Department:   first.Department,
			FiscalYear:   fiscalYear,
			RunDate:      runDate,
			Rows:         s.Snapshots,
			FinalTotals:  s.Totals,
		})
	}
	return reports
}

// MarshalJSON writes the report with per-row metric columns and their
// YTD_ counterparts in canonical order, the layout the earnings record
// template consumes.
func (r YTDReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("document_id", r.ID).
		Append("doc_type", fmt.Sprintf("%s - %d", YTDReportType, r.FiscalYear)).
		Append("company_name", payerName).
		Append("run_date", r.RunDate).
		Append("employee_name", r.EmployeeName).
		Append("employee_id", r.EmployeeID).
		Append("department", r.Department).
		Append("fiscal_year", r.FiscalYear)

	rows := make([]json.RawMessage, 0, len(r.Rows))
	for _, row := range r.Rows {
		raw, err := r.marshalRow(row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, raw)
	}
	w.Append("rows", rows).
		Append("final_totals", marshalMetrics(r.FinalTotals)).
		Append("period_count", len(r.Rows))
	return w.MarshalJSON()
}

func (r YTDReport) marshalRow(row PeriodSnapshot) (json.RawMessage, error) {
	var w jsonObjectWriter
	w.Append("Pay_Period", row.PeriodKey).
		Append("Pay_Date", row.Date).
		Append("Employee_Name", r.EmployeeName).
		Append("Employee_ID", r.EmployeeID).
		Append("Department", r.Department).
		Append("is_accrual", row.Projected)
	for _, metric := range PayrollMetrics {
		w.Append(metric, row.Values[metric])
		w.Append("YTD_"+metric, row.Cumulative[metric])
	}
	return w.MarshalJSON()
}
