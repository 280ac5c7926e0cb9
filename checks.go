package ledgerdocs

import (
	"fmt"

	"github.com/etnz/ledgerdocs/date"
)

// Static payer block stamped on every check.
const (
	payerName         = "ACME CORPORATION"
	payerAddress      = "123 Innovation Drive"
	payerCityStateZip = "Tech City, CA 94043"
	bankName          = "SILICON VALLEY CREDIT UNION"
	bankLocation      = "Palo Alto, CA"
	bankRouting       = "122000218"
	bankAccount       = "9988776655"
)

// Check number bases per source, so a check's origin is readable from its
// number alone.
const (
	syntheticCheckBase = 5000
	expenseCheckBase   = 10000
	payrollCheckBase   = 20000
)

// Check is one payment check derived from an approved expense, a payroll
// entry, or synthesized for test data.
type Check struct {
	Number string    `json:"check_number"`
	Date   date.Date `json:"date"`
	Payee  string    `json:"payee_name"`
	Amount Money     `json:"amount"`
	Memo   string    `json:"memo"`

	PayerName         string `json:"payer_name"`
	PayerAddress      string `json:"payer_address"`
	PayerCityStateZip string `json:"payer_city_state_zip"`
	BankName          string `json:"bank_name"`
	BankLocation      string `json:"bank_location"`
	BankRouting       string `json:"bank_routing"`
	AccountNumber     string `json:"account_number"`
}

func newCheck(number int, on date.Date, payee string, amount Money, memo string) Check {
	return Check{
		Number: fmt.Sprint(number),
		Date:   on,
		Payee:  payee,
		Amount: amount,
		Memo:   memo,

		PayerName:         payerName,
		PayerAddress:      payerAddress,
		PayerCityStateZip: payerCityStateZip,
		BankName:          bankName,
		BankLocation:      bankLocation,
		BankRouting:       bankRouting,
		AccountNumber:     bankAccount,
	}
}

// ChecksFromExpenses converts approved expense records into vendor checks.
// Pending records are skipped; the check amount is the record's gross
// amount, so the check reconciles with every document derived from the
// same record.
func ChecksFromExpenses(records []LedgerRecord) []Check {
	checks := make([]Check, 0, len(records))
	number := expenseCheckBase
	for _, rec := range records {
		if rec.Status != StatusApproved {
			continue
		}
		number++
		memo := fmt.Sprintf("Inv: %s - %s", DeriveID(rec.Key, "", idRootLength), rec.GLName)
		checks = append(checks, newCheck(number, rec.Date, rec.Vendor, rec.Gross, memo))
	}
	return checks
}

// ChecksFromPayroll converts payroll register entries into employee
// paychecks for their net pay.
func ChecksFromPayroll(registers []Register) []Check {
	var checks []Check
	number := payrollCheckBase
	for _, reg := range registers {
		for _, e := range reg.Entries {
			number++
			memo := fmt.Sprintf("Payroll %s - Dept: %s", reg.PayPeriod, e.Department)
			amount := M(e.Values["Net_Pay"], DefaultCurrency)
			checks = append(checks, newCheck(number, reg.PayDate, e.EmployeeName, amount, memo))
		}
	}
	return checks
}

var syntheticPayees = []string{
	"Staples", "PG&E", "WeWork", "Salesforce", "AWS", "FedEx", "Uline", "Cisco",
}

var syntheticMemos = []string{
	"Invoice #1023", "Monthly Service", "Consulting Fee", "Supplies", "Reimbursement",
}

// SyntheticChecks generates n random checks for a given year, for seeding
// demos and render tests. The synth decides payees, amounts, and dates.
func SyntheticChecks(n int, year int, synth *Synth) []Check {
	checks := make([]Check, 0, n)
	start := date.New(year, 1, 1)
	span := date.New(year, 12, 31).Sub(start)
	number := syntheticCheckBase
	for i := 0; i < n; i++ {
		number++
		on := start.Add(synth.IntBetween(0, span))
		amount := M(synth.FloatBetween(50, 5000), DefaultCurrency).Round()
		checks = append(checks, newCheck(number, on, synth.pick(syntheticPayees), amount, synth.pick(syntheticMemos)))
	}
	return checks
}
