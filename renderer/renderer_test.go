package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/ledgerdocs"
	"github.com/etnz/ledgerdocs/date"
	"github.com/shopspring/decimal"
)

// mustRender fails the test if the renderer reported a template error
// inline instead of markdown.
func mustRender(t *testing.T, got string) string {
	t.Helper()
	if strings.HasPrefix(got, "error ") {
		t.Fatalf("render failed: %s", got)
	}
	return got
}

func testRecord() ledgerdocs.LedgerRecord {
	return ledgerdocs.LedgerRecord{
		Key:        "J001-4F2A-88B1",
		Vendor:     "Acme Supplies",
		VendorID:   "V-778",
		UserID:     "U-42",
		Gross:      ledgerdocs.M(1200.00, "USD"),
		Tax:        ledgerdocs.M(100.00, "USD"),
		Approver:   "APPR-9",
		Department: "Operations",
		GLCode:     "6100",
		GLName:     "Office Supplies",
		Date:       date.MustParse("2025-03-25"),
		Status:     ledgerdocs.StatusApproved,
	}
}

func TestRenderDocument(t *testing.T) {
	docs, err := ledgerdocs.AssembleExpense(testRecord())
	if err != nil {
		t.Fatal(err)
	}

	got := mustRender(t, RenderDocument(&docs.Invoice))
	for _, want := range []string{
		"# INVOICE",
		"**Document ID:** " + docs.Invoice.ID,
		"**Reference:** " + docs.PurchaseOrder.ID,
		"| Office Supplies | 1 | $1,100.00 | $1,100.00 |",
		"| Subtotal | $1,100.00 |",
		"| Tax | $100.00 |",
		"| **Total** | **$1,200.00** |",
		"Payment Terms: Net 30. GL: 6100",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	// A purchase order has no reference line.
	po := mustRender(t, RenderDocument(&docs.PurchaseOrder))
	if strings.Contains(po, "**Reference:**") {
		t.Error("purchase order rendered a reference line")
	}
}

func TestRenderCheck(t *testing.T) {
	checks := ledgerdocs.ChecksFromExpenses([]ledgerdocs.LedgerRecord{testRecord()})
	got := mustRender(t, RenderCheck(&checks[0]))
	for _, want := range []string{
		"# CHECK No. 10001",
		"**Acme Supplies**",
		"**$1,200.00**",
		"Routing 122000218",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderWithdrawal(t *testing.T) {
	emp := ledgerdocs.EmployeeRecord{
		ID:              "E-1001",
		FullName:        "Jordan Smith",
		AnnualSalary:    decimal.NewFromInt(90000),
		ContributionPct: decimal.NewFromInt(6),
		Status:          ledgerdocs.StatusActive,
	}
	doc, _, err := ledgerdocs.AssembleWithdrawal(emp, date.MustParse("2025-06-15"))
	if err != nil {
		t.Fatal(err)
	}

	got := mustRender(t, RenderWithdrawal(&doc))
	for _, want := range []string{
		"# 401K STATEMENT",
		"ACME CORP 401(K) PROFIT SHARING PLAN",
		"| Vanguard Target Retirement 2050 |",
		"| Employer Match |",
		"# 401K WITHDRAWAL FORM",
		"| Processing fee | 50.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderForm1099R(t *testing.T) {
	emp := ledgerdocs.EmployeeRecord{
		ID:              "E-1001",
		FullName:        "Jordan Smith",
		Address:         ledgerdocs.Address{Street: "42 Elm St", City: "Springfield", State: "CA", Zip: "94043"},
		DOB:             "1981-06-15",
		AnnualSalary:    decimal.NewFromInt(90000),
		ContributionPct: decimal.NewFromInt(6),
		Status:          ledgerdocs.StatusActive,
	}
	packet, _, err := ledgerdocs.AssembleWithdrawal(emp, date.MustParse("2025-06-15"))
	if err != nil {
		t.Fatal(err)
	}

	form := ledgerdocs.AssembleForm1099R(emp, packet, "", 2025)
	got := mustRender(t, RenderForm1099R(&form))
	for _, want := range []string{
		"# FORM 1099-R 2025",
		"ACME CORP 401(K) TRUST",
		"TIN: 99-1234567",
		"Jordan Smith",
		"Springfield, CA 94043",
		"| 1 | Gross distribution | " + form.Gross.Display() + " |",
		"| 4 | Federal income tax withheld | " + form.FedTax.Display() + " |",
		"| 7 | Distribution code | 1 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderLetter(t *testing.T) {
	emp := ledgerdocs.EmployeeRecord{
		ID:       "E-1001",
		FullName: "Jordan Smith",
		Address:  ledgerdocs.Address{Street: "42 Elm St", City: "Springfield", State: "CA", Zip: "94043"},
	}
	sep := date.MustParse("2025-05-20")
	run := date.MustParse("2025-06-15")

	letter := ledgerdocs.AssembleLetter(emp, ledgerdocs.ReasonSeparation, sep, run)
	got := mustRender(t, RenderLetter(&letter))
	for _, want := range []string{
		"Dear Jordan Smith,",
		"effective 2025-05-20",
		"State of CA",
		"Sarah Connor",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	resign := ledgerdocs.AssembleLetter(emp, ledgerdocs.ReasonResignation, sep, run)
	if got := mustRender(t, RenderLetter(&resign)); !strings.Contains(got, "resignation") {
		t.Errorf("resignation letter body missing:\n%s", got)
	}
}

func TestRegisterMarkdown(t *testing.T) {
	registers := ledgerdocs.BuildRegisters([]ledgerdocs.PayrollEntry{{
		EmployeeID:   "E-1",
		EmployeeName: "Al Burt",
		Department:   "Engineering",
		PayPeriod:    "PP-01",
		PayDate:      date.MustParse("2024-01-19"),
		Values: ledgerdocs.MetricValues{
			"Gross_Pay": decimal.NewFromInt(2000),
			"Net_Pay":   decimal.NewFromInt(1500),
		},
	}})

	got := RegisterMarkdown(registers)
	for _, want := range []string{
		"## PAYROLL REGISTER PP-01",
		"| Al Burt (E-1) | Engineering |",
		"**2000.00**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestEarningsMarkdown(t *testing.T) {
	reports := ledgerdocs.BuildYTDReports([]ledgerdocs.PayrollEntry{{
		EmployeeID:   "E-1",
		EmployeeName: "Al Burt",
		Department:   "Engineering",
		PayPeriod:    "PP-26",
		PayDate:      date.MustParse("2024-12-20"),
		Values:       ledgerdocs.MetricValues{"Gross_Pay": decimal.NewFromInt(1400)},
	}}, 2024, date.MustParse("2025-01-15"))

	got := EarningsMarkdown(&reports[0])
	for _, want := range []string{
		"# EMPLOYEE EARNINGS RECORD - 2024",
		"**Al Burt** (E-1), Engineering",
		"| *ACCRUED (Est.)* | 2024-12-31 |",
		"2500.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
