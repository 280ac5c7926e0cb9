package ledgerdocs

import (
	"github.com/etnz/ledgerdocs/date"
	"github.com/shopspring/decimal"
)

// USD is a helper for test to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// dec is a helper for test to create a decimal from const.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// expenseRecord is a fully-populated ledger record used across tests.
func expenseRecord() LedgerRecord {
	return LedgerRecord{
		Key:        "J001-4F2A-88B1",
		Vendor:     "Acme Supplies",
		VendorID:   "V-778",
		UserID:     "U-42",
		Gross:      USD(1200.00),
		Tax:        USD(100.00),
		Approver:   "APPR-9",
		Department: "Operations",
		GLCode:     "6100",
		GLName:     "Office Supplies",
		Date:       date.MustParse("2025-03-25"),
		Status:     StatusApproved,
	}
}

// employeeRecord is a fully-populated HR record used across tests.
func employeeRecord() EmployeeRecord {
	return EmployeeRecord{
		ID:       "E-1001",
		FullName: "Jordan Smith",
		Address: Address{
			Street: "42 Elm St",
			City:   "Springfield",
			State:  "CA",
			Zip:    "94043",
		},
		SSN:             "123-45-6789",
		DOB:             "1981-06-15",
		WorkEmail:       "jordan.smith@acme.example",
		AnnualSalary:    dec(90000),
		ContributionPct: dec(6),
		Status:          StatusActive,
		USCitizen:       true,
	}
}
