package ledgerdocs

import (
	"testing"

	"github.com/etnz/ledgerdocs/date"
)

func TestAccumulate_RunningTotals(t *testing.T) {
	entries := []MetricEntry{
		{EntityID: "E-1", PeriodKey: "PP-03", Date: date.MustParse("2024-02-02"), Values: MetricValues{"Gross_Pay": dec(1000.10)}},
		{EntityID: "E-1", PeriodKey: "PP-01", Date: date.MustParse("2024-01-05"), Values: MetricValues{"Gross_Pay": dec(1000.10)}},
		{EntityID: "E-1", PeriodKey: "PP-02", Date: date.MustParse("2024-01-19"), Values: MetricValues{"Gross_Pay": dec(999.95)}},
	}
	series := Accumulate(entries, AccumulateOptions{Metrics: []string{"Gross_Pay"}})
	if len(series) != 1 {
		t.Fatalf("got %d series, want 1", len(series))
	}

	s := series[0]
	if len(s.Snapshots) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(s.Snapshots))
	}
	// Rows come back in date order regardless of input order.
	if s.Snapshots[0].PeriodKey != "PP-01" || s.Snapshots[2].PeriodKey != "PP-03" {
		t.Errorf("row order: %q .. %q", s.Snapshots[0].PeriodKey, s.Snapshots[2].PeriodKey)
	}

	// Each cumulative is the previous cumulative plus the row's value.
	prev := dec(0)
	for i, snap := range s.Snapshots {
		want := prev.Add(snap.Values["Gross_Pay"]).Round(2)
		if !snap.Cumulative["Gross_Pay"].Equal(want) {
			t.Errorf("row %d: cumulative = %v, want %v", i, snap.Cumulative["Gross_Pay"], want)
		}
		prev = snap.Cumulative["Gross_Pay"]
	}
	if !s.Totals["Gross_Pay"].Equal(dec(3000.15)) {
		t.Errorf("totals = %v", s.Totals["Gross_Pay"])
	}
}

func TestAccumulate_Accrual(t *testing.T) {
	// Last paycheck 2024-12-20, fiscal year end 2024-12-31: 11 days remain,
	// so exactly one projected row is appended.
	entries := []MetricEntry{
		{EntityID: "E-1", PeriodKey: "PP-26", Date: date.MustParse("2024-12-20"), Values: MetricValues{"Gross_Pay": dec(1400)}},
	}
	series := Accumulate(entries, AccumulateOptions{
		Metrics:   []string{"Gross_Pay"},
		PeriodEnd: date.MustParse("2024-12-31"),
	})

	snaps := series[0].Snapshots
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want real row + accrual", len(snaps))
	}
	accrual := snaps[1]
	if !accrual.Projected || accrual.PeriodKey != "ACCRUED (Est.)" {
		t.Errorf("trailing row = %+v, want projected accrual", accrual)
	}
	// Daily rate 1400/14 = 100, times 11 days remaining.
	if !accrual.Values["Gross_Pay"].Equal(dec(1100)) {
		t.Errorf("accrued = %v, want 1100", accrual.Values["Gross_Pay"])
	}
	if !series[0].Totals["Gross_Pay"].Equal(dec(2500)) {
		t.Errorf("totals = %v, want accrual folded in", series[0].Totals["Gross_Pay"])
	}
}

func TestAccumulate_NoAccrualWhenCovered(t *testing.T) {
	entries := []MetricEntry{
		{EntityID: "E-1", PeriodKey: "PP-26", Date: date.MustParse("2024-12-31"), Values: MetricValues{"Gross_Pay": dec(1400)}},
	}
	series := Accumulate(entries, AccumulateOptions{
		Metrics:   []string{"Gross_Pay"},
		PeriodEnd: date.MustParse("2024-12-31"),
	})
	if got := len(series[0].Snapshots); got != 1 {
		t.Errorf("got %d snapshots, want no accrual row", got)
	}
}

func TestBuildYTDReports(t *testing.T) {
	entries := []PayrollEntry{
		payrollEntry("E-2", "Zoe Ray", "PP-01", "2024-01-19", 3000, 2200),
		payrollEntry("E-1", "Al Burt", "PP-01", "2024-01-19", 2000, 1500),
		payrollEntry("E-1", "Al Burt", "PP-26", "2023-12-22", 2000, 1500), // prior year, ignored
	}
	reports := BuildYTDReports(entries, 2024, date.MustParse("2025-01-15"))
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	// Lexical employee order.
	if reports[0].EmployeeID != "E-1" || reports[1].EmployeeID != "E-2" {
		t.Errorf("report order: %q, %q", reports[0].EmployeeID, reports[1].EmployeeID)
	}

	r := reports[0]
	if r.ID != "YTD-2024-E-1" {
		t.Errorf("id = %q", r.ID)
	}
	if r.EmployeeName != "Al Burt" || r.Department != "Engineering" {
		t.Errorf("metadata = %q / %q", r.EmployeeName, r.Department)
	}
	// One real row plus the year-end accrual.
	if len(r.Rows) != 2 || !r.Rows[1].Projected {
		t.Fatalf("rows = %d, want real row + accrual", len(r.Rows))
	}
	if !r.Rows[0].Cumulative["Gross_Pay"].Equal(dec(2000)) {
		t.Errorf("ytd gross = %v", r.Rows[0].Cumulative["Gross_Pay"])
	}
}
