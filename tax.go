package ledgerdocs

import (
	"github.com/etnz/ledgerdocs/date"
	"github.com/shopspring/decimal"
)

// Payer block stamped on every 1099-R: the plan trust, not the operating
// company.
const (
	trustName         = "ACME CORP 401(K) TRUST"
	trustAddress      = "123 Business Rd"
	trustCityStateZip = "Tech City, CA 90210"
	trustTIN          = "99-1234567"
)

// Flat withholding rates applied to a fully liquidated distribution.
var (
	fedWithholdingRate   = decimal.NewFromFloat(0.20)
	stateWithholdingRate = decimal.NewFromFloat(0.05)
)

// Box 7 distribution codes.
const (
	DistCodeEarly  = "1" // early distribution, recipient under 59 1/2
	DistCodeDeath  = "4"
	DistCodeNormal = "7" // normal distribution, 59 1/2 or older
)

// fallbackAge stands in when the recipient's date of birth is unreadable.
const fallbackAge = 30

// Form1099R is the tax form derived from one withdrawal packet. The gross
// and taxable amounts equal the liquidated balance exactly, and the
// withholdings are flat rates of the taxable amount. PDF materialization
// stays outside the module, like every other rendering surface.
type Form1099R struct {
	ID      string
	TaxYear int

	RecipientName         string
	RecipientSSN          string
	RecipientAddress      string
	RecipientCityStateZip string
	AccountID             string

	Gross      Money  // box 1
	Taxable    Money  // box 2a
	FedTax     Money  // box 4
	EmpContrib Money  // box 5, always zero under full liquidation
	DistCode   string
	IRA        bool   // IRA/SEP/SIMPLE checkbox, never set for a 401(k)
	StateTax   Money  // box 14
	StateCode  string
	StateDist  Money  // box 16
}

// distributionCode determines box 7 from the recipient's age at the end
// of the tax year and the separation reason. An integral age means the
// 59 1/2 cutoff rounds up to 60.
func distributionCode(dob string, taxYear int, reason SeparationReason) string {
	if reason == ReasonDeath {
		return DistCodeDeath
	}
	age := fallbackAge
	if d, err := date.Parse(dob); err == nil {
		age = taxYear - d.Year()
	}
	if age >= 60 {
		return DistCodeNormal
	}
	return DistCodeEarly
}

// AssembleForm1099R derives the tax form for one withdrawal packet. reason
// is the separation letter reason when one was drawn, or empty.
func AssembleForm1099R(emp EmployeeRecord, packet WithdrawalDoc, reason SeparationReason, taxYear int) Form1099R {
	gross := packet.Account.Balance
	return Form1099R{
		ID:      "1099R-" + emp.ID,
		TaxYear: taxYear,

		RecipientName:         packet.Data.ParticipantName,
		RecipientSSN:          packet.Data.SSN,
		RecipientAddress:      packet.Data.Address,
		RecipientCityStateZip: packet.Data.City + ", " + packet.Data.State + " " + packet.Data.Zip,
		AccountID:             packet.Data.AccountID,

		Gross:      gross,
		Taxable:    gross, // fully taxable, no basis
		FedTax:     gross.MulShare(fedWithholdingRate),
		EmpContrib: M(0, gross.Currency()),
		DistCode:   distributionCode(packet.Data.DOB, taxYear, reason),
		StateTax:   gross.MulShare(stateWithholdingRate),
		StateCode:  packet.Data.State,
		StateDist:  gross,
	}
}

// Payer identity accessors, consumed by the rendering template.
func (Form1099R) PayerName() string         { return trustName }
func (Form1099R) PayerAddress() string      { return trustAddress }
func (Form1099R) PayerCityStateZip() string { return trustCityStateZip }
func (Form1099R) PayerTIN() string          { return trustTIN }

// payerBlock is the static payer identity embedded at the top of each
// form.
type payerBlock struct {
	Name         string `json:"payer_name"`
	Address      string `json:"payer_address"`
	CityStateZip string `json:"payer_city_state_zip"`
	TIN          string `json:"payer_tin"`
}

// MarshalJSON writes the form with the payer block first and the numbered
// boxes in form order.
func (f Form1099R) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("document_id", f.ID).
		Append("doc_type", Form1099RType).
		Append("tax_year", f.TaxYear).
		EmbedFrom(payerBlock{trustName, trustAddress, trustCityStateZip, trustTIN}).
		Append("recipient_name", f.RecipientName).
		Append("recipient_ssn", f.RecipientSSN).
		Append("recipient_address", f.RecipientAddress).
		Append("recipient_city_state_zip", f.RecipientCityStateZip).
		Append("account_id", f.AccountID).
		Append("gross_distribution", f.Gross).
		Append("taxable_amount", f.Taxable).
		Append("fed_tax_withheld", f.FedTax).
		Append("employee_contributions", f.EmpContrib).
		Append("distribution_code", f.DistCode).
		Append("ira_sep_simple", f.IRA).
		Append("state_tax_withheld", f.StateTax).
		Append("state_code", f.StateCode).
		Append("state_distribution", f.StateDist)
	return w.MarshalJSON()
}
