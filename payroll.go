package ledgerdocs

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/etnz/ledgerdocs/date"
	"github.com/shopspring/decimal"
)

// Register is one pay period's payroll register: the period's transactions
// and their reconciled totals.
type Register struct {
	ID        string
	PayPeriod string
	PayDate   date.Date
	Entries   []PayrollEntry
	Totals    MetricValues
}

// BuildRegisters groups payroll transactions by pay period and computes
// per-period totals for every tracked metric. Registers come back in
// chronological pay date order; entries within a register are sorted by
// employee name, the order they print in.
func BuildRegisters(entries []PayrollEntry) []Register {
	byPeriod := make(map[string][]PayrollEntry)
	for _, e := range entries {
		byPeriod[e.PayPeriod] = append(byPeriod[e.PayPeriod], e)
	}

	registers := make([]Register, 0, len(byPeriod))
	for period, group := range byPeriod {
		sort.Slice(group, func(i, j int) bool {
			return group[i].EmployeeName < group[j].EmployeeName
		})

		totals := make(MetricValues, len(PayrollMetrics))
		for _, metric := range PayrollMetrics {
			sum := decimal.Zero
			for _, e := range group {
				sum = sum.Add(e.Values[metric])
			}
			totals[metric] = sum.Round(2)
		}

		registers = append(registers, Register{
			ID:        registerID(period),
			PayPeriod: period,
			PayDate:   group[0].PayDate,
			Entries:   group,
			Totals:    totals,
		})
	}

	sort.Slice(registers, func(i, j int) bool {
		if registers[i].PayDate != registers[j].PayDate {
			return registers[i].PayDate.Before(registers[j].PayDate)
		}
		return registers[i].PayPeriod < registers[j].PayPeriod
	})
	return registers
}

// registerID derives a filesystem-safe document id from the pay period,
// e.g. "REG-PP-20240101".
func registerID(period string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		case r == ' ', r == '/', r == '_':
			return '-'
		default:
			return -1
		}
	}, period)
	return "REG-" + strings.ToUpper(clean)
}

// MarshalJSON writes the register with the metric columns in canonical
// order, entries first, totals last.
func (reg Register) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("document_id", reg.ID).
		Append("doc_type", "PAYROLL REGISTER").
		Append("pay_period", reg.PayPeriod).
		Append("pay_date", reg.PayDate)

	entries := make([]json.RawMessage, 0, len(reg.Entries))
	for _, e := range reg.Entries {
		raw, err := marshalPayrollEntry(e)
		if err != nil {
			return nil, err
		}
		entries = append(entries, raw)
	}
	w.Append("entries", entries)
	w.Append("totals", marshalMetrics(reg.Totals))
	return w.MarshalJSON()
}

func marshalPayrollEntry(e PayrollEntry) (json.RawMessage, error) {
	var w jsonObjectWriter
	w.Append("Employee_ID", e.EmployeeID).
		Append("Employee_Name", e.EmployeeName).
		Append("Department", e.Department).
		Append("Pay_Period", e.PayPeriod).
		Append("Pay_Date", e.PayDate)
	for _, metric := range PayrollMetrics {
		w.Append(metric, e.Values[metric])
	}
	return w.MarshalJSON()
}

// marshalMetrics renders metric values in canonical column order.
func marshalMetrics(values MetricValues) json.RawMessage {
	var w jsonObjectWriter
	for _, metric := range PayrollMetrics {
		w.Append(metric, values[metric])
	}
	raw, err := w.MarshalJSON()
	if err != nil {
		return json.RawMessage("{}")
	}
	return raw
}
