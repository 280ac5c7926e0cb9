package ledgerdocs

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ledgerdocs/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Source ledgers come from several upstream exports that do not agree on
// field names. Decoding probes each record with jsonpath, trying the known
// spellings in order, and falls back to a documented default when a field
// is absent. Defaults are counted per decode so the caller can surface
// them; a missing optional field never aborts the batch.

// DecodeStats accumulates non-fatal observations made while decoding.
type DecodeStats struct {
	Records   int
	Defaulted int // count of fields replaced by a documented default
}

func (s *DecodeStats) noteDefault(path, field, def string) {
	s.Defaulted++
	log.Printf("warning: %s: field %s missing, using %q", path, field, def)
}

// decodeRoot reads loosely keyed records from a JSON array, a single
// object, or a JSONL stream of objects (normalized to one list).
func decodeRoot(source string, r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &MalformedInputError{Path: source, Err: err}
	}
	switch v := root.(type) {
	case []any:
		return v, nil
	case map[string]any:
		objs := []any{v}
		for dec.More() {
			var obj any
			if err := dec.Decode(&obj); err != nil {
				return nil, &MalformedInputError{Path: source, Err: err}
			}
			objs = append(objs, obj)
		}
		return objs, nil
	default:
		return nil, &MalformedInputError{Path: source, Err: fmt.Errorf("JSON root is %T, want array or object", root)}
	}
}

// jString probes the record for the first present non-empty string.
func jString(obj any, paths ...string) (string, bool) {
	for _, p := range paths {
		v, err := jsonpath.Get(p, obj)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer; keep the first one if any.
		if list, ok := v.([]any); ok && len(list) > 0 {
			v = list[0]
		}
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// jDecimal probes the record for the first present numeric value.
func jDecimal(obj any, paths ...string) (decimal.Decimal, bool) {
	for _, p := range paths {
		v, err := jsonpath.Get(p, obj)
		if err != nil {
			continue
		}
		if list, ok := v.([]any); ok && len(list) > 0 {
			v = list[0]
		}
		switch n := v.(type) {
		case json.Number:
			if d, err := decimal.NewFromString(n.String()); err == nil {
				return d, true
			}
		case float64:
			return decimal.NewFromFloat(n), true
		case string:
			if d, err := decimal.NewFromString(n); err == nil {
				return d, true
			}
		}
	}
	return decimal.Zero, false
}

// jBool probes the record for the first present boolean.
func jBool(obj any, paths ...string) (bool, bool) {
	for _, p := range paths {
		v, err := jsonpath.Get(p, obj)
		if err != nil {
			continue
		}
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// DecodeLedgerRecords decodes expense ledger records from a JSON array.
// source names the input for error messages only.
func DecodeLedgerRecords(source string, r io.Reader) ([]LedgerRecord, *DecodeStats, error) {
	objs, err := decodeRoot(source, r)
	if err != nil {
		return nil, nil, err
	}

	stats := &DecodeStats{Records: len(objs)}
	records := make([]LedgerRecord, 0, len(objs))
	for _, obj := range objs {
		var rec LedgerRecord

		key, ok := jString(obj, "$.Journal_Entry_ID", "$.key", "$.business_key")
		if !ok {
			key = "default"
			stats.noteDefault(source, "Journal_Entry_ID", key)
		}
		rec.Key = key

		vendor, ok := jString(obj, "$.Vendor_Name", "$.vendor", "$.counterparty")
		if !ok {
			vendor = "Unknown Vendor"
			stats.noteDefault(source, "Vendor_Name", vendor)
		}
		rec.Vendor = vendor
		rec.VendorID, _ = jString(obj, "$.Vendor_ID")
		rec.UserID, _ = jString(obj, "$.User_ID")

		currency, _ := jString(obj, "$.Currency", "$.currency")
		gross, ok := jDecimal(obj, "$.Total_Amount", "$.total", "$.gross")
		if !ok {
			stats.noteDefault(source, "Total_Amount", "0")
		}
		rec.Gross = M(gross, currency)
		tax, ok := jDecimal(obj, "$.Tax_Amount", "$.tax")
		if !ok {
			stats.noteDefault(source, "Tax_Amount", "0")
		}
		rec.Tax = M(tax, currency)

		rec.Approver, _ = jString(obj, "$.Approver_ID", "$.approver")
		rec.Department, _ = jString(obj, "$.Department")
		rec.GLCode, _ = jString(obj, "$.GL_Account_Code")
		glName, ok := jString(obj, "$.GL_Account_Name")
		if !ok {
			glName = "General Expense"
			stats.noteDefault(source, "GL_Account_Name", glName)
		}
		rec.GLName = glName
		rec.Status, _ = jString(obj, "$.Approval_Status", "$.status")

		if raw, ok := jString(obj, "$.Transaction_Date", "$.date"); ok {
			d, err := date.Parse(raw)
			if err != nil {
				d = date.Today()
				stats.noteDefault(source, "Transaction_Date", d.String())
			}
			rec.Date = d
		} else {
			rec.Date = date.Today()
			stats.noteDefault(source, "Transaction_Date", rec.Date.String())
		}

		records = append(records, rec)
	}
	return records, stats, nil
}

// DecodePayrollJournal decodes payroll journal transactions from a JSON array.
func DecodePayrollJournal(source string, r io.Reader) ([]PayrollEntry, *DecodeStats, error) {
	objs, err := decodeRoot(source, r)
	if err != nil {
		return nil, nil, err
	}

	stats := &DecodeStats{Records: len(objs)}
	entries := make([]PayrollEntry, 0, len(objs))
	for _, obj := range objs {
		var e PayrollEntry
		id, ok := jString(obj, "$.Employee_ID")
		if !ok {
			id = "default"
			stats.noteDefault(source, "Employee_ID", id)
		}
		e.EmployeeID = id
		name, ok := jString(obj, "$.Employee_Name")
		if !ok {
			name = "Unknown"
			stats.noteDefault(source, "Employee_Name", name)
		}
		e.EmployeeName = name
		e.Department, _ = jString(obj, "$.Department")
		e.PayPeriod, _ = jString(obj, "$.Pay_Period")

		if raw, ok := jString(obj, "$.Pay_Date"); ok {
			if d, err := date.Parse(raw); err == nil {
				e.PayDate = d
			}
		}

		e.Values = make(MetricValues, len(PayrollMetrics))
		for _, metric := range PayrollMetrics {
			v, _ := jDecimal(obj, "$."+metric)
			e.Values[metric] = v.Round(2)
		}
		entries = append(entries, e)
	}
	return entries, stats, nil
}

// DecodeEmployees decodes HR employee file records from a JSON array.
func DecodeEmployees(source string, r io.Reader) ([]EmployeeRecord, *DecodeStats, error) {
	objs, err := decodeRoot(source, r)
	if err != nil {
		return nil, nil, err
	}

	stats := &DecodeStats{Records: len(objs)}
	employees := make([]EmployeeRecord, 0, len(objs))
	for _, obj := range objs {
		var e EmployeeRecord
		id, ok := jString(obj, "$.Employee_ID")
		if !ok {
			id = "default"
			stats.noteDefault(source, "Employee_ID", id)
		}
		e.ID = id
		name, ok := jString(obj, "$.Identity.full_name", "$.full_name")
		if !ok {
			name = "Unknown Employee"
			stats.noteDefault(source, "full_name", name)
		}
		e.FullName = name
		e.Address.Street, _ = jString(obj, "$.Identity.home_address.street")
		e.Address.City, _ = jString(obj, "$.Identity.home_address.city")
		e.Address.State, _ = jString(obj, "$.Identity.home_address.state")
		e.Address.Zip, _ = jString(obj, "$.Identity.home_address.zip")
		e.SSN, _ = jString(obj, "$.Identity.ssn")
		dob, ok := jString(obj, "$.Identity.dob")
		if !ok {
			dob = "1980-01-01"
			stats.noteDefault(source, "dob", dob)
		}
		e.DOB = dob
		e.WorkEmail, _ = jString(obj, "$.Identity.work_email")

		salary, ok := jDecimal(obj, "$.Compensation.Annual_Salary")
		if !ok {
			salary = decimal.NewFromInt(50000)
			stats.noteDefault(source, "Annual_Salary", salary.String())
		}
		e.AnnualSalary = salary
		pct, ok := jDecimal(obj, `$.Benefits_Elections["401k_Pct"]`)
		if !ok {
			pct = decimal.NewFromInt(5)
			stats.noteDefault(source, "401k_Pct", pct.String())
		}
		e.ContributionPct = pct
		e.Status, _ = jString(obj, "$.Status")
		if code, ok := jDecimal(obj, "$.Identity.citizenship_status.code"); ok {
			e.USCitizen = code.Equal(decimal.NewFromInt(1))
		}
		employees = append(employees, e)
	}
	return employees, stats, nil
}

// EncodeDocuments writes any slice of derived documents as an indented
// JSON array, the shape downstream renderers read.
func EncodeDocuments[T any](w io.Writer, docs []T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
