package ledgerdocs

import (
	"github.com/etnz/ledgerdocs/date"
	"github.com/shopspring/decimal"
)

// Record statuses as they appear in source ledgers.
const (
	StatusApproved = "Approved"
	StatusPending  = "Pending"
	StatusActive   = "Active"
)

// LedgerRecord is one authoritative financial source record: an approved
// expense, a payable, an account event. It is read-only input to the
// engine; derivation never mutates it.
type LedgerRecord struct {
	Key        string // unique, immutable business key (e.g. journal entry id)
	Vendor     string
	VendorID   string
	UserID     string
	Gross      Money
	Tax        Money
	Approver   string
	Department string
	GLCode     string
	GLName     string
	Date       date.Date
	Status     string
}

// MetricValues holds one value per tracked payroll metric.
type MetricValues map[string]decimal.Decimal

// PayrollMetrics is the canonical ordered set of metrics tracked per
// payroll transaction. Output columns follow this order.
var PayrollMetrics = []string{
	"Hours_Reg",
	"Hours_OT",
	"Gross_Pay",
	"Tax_Fed",
	"Tax_State",
	"Tax_FICA",
	"Benefit_Deduction",
	"Net_Pay",
}

// PayrollEntry is one payroll journal transaction.
type PayrollEntry struct {
	EmployeeID   string
	EmployeeName string
	Department   string
	PayPeriod    string
	PayDate      date.Date
	Values       MetricValues
}

// Address is a decomposed postal address from an HR record.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// EmployeeRecord is one HR employee file entry, the source record for the
// withdrawal path.
type EmployeeRecord struct {
	ID              string
	FullName        string
	Address         Address
	SSN             string
	DOB             string
	WorkEmail       string
	AnnualSalary    decimal.Decimal
	ContributionPct decimal.Decimal
	Status          string
	USCitizen       bool
}
