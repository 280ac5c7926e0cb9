package ledgerdocs

import (
	"github.com/etnz/ledgerdocs/date"
)

// DocType tags a derived document. The values are the literal strings the
// downstream renderers key their themes on.
type DocType string

const (
	PurchaseOrder       DocType = "PURCHASE ORDER"
	ReceivingReport     DocType = "RECEIVING REPORT"
	Invoice             DocType = "INVOICE"
	WithdrawalStatement DocType = "401K STATEMENT"
	WithdrawalForm      DocType = "401K WITHDRAWAL FORM"
	YTDReportType       DocType = "EMPLOYEE EARNINGS RECORD"
	Form1099RType       DocType = "1099-R"
	CheckType           DocType = "CHECK"
	LetterType          DocType = "LETTER"
)

// Party is one side of a derived document: a vendor, the client company,
// an employee.
type Party struct {
	Company  string `json:"company"`
	Address  string `json:"address"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	VendorID string `json:"vendor_id,omitempty"`
}

// LineItem is one ordered line of a derived document.
type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
	Total       Money  `json:"total"`
}

// Document is a derived document with the common reconciled shape.
//
// Invariant: Subtotal + Tax == GrandTotal to the cent, and GrandTotal of
// any document derived from a ledger record equals that record's gross
// amount exactly. Once assembled a Document is never mutated.
type Document struct {
	ID         string     `json:"document_id"`
	Type       DocType    `json:"doc_type"`
	RefID      string     `json:"ref_id,omitempty"`
	Date       date.Date  `json:"date"`
	Sender     Party      `json:"sender"`
	Recipient  Party      `json:"recipient"`
	Items      []LineItem `json:"items"`
	Subtotal   Money      `json:"subtotal"`
	Tax        Money      `json:"tax"`
	GrandTotal Money      `json:"grand_total"`
	Notes      string     `json:"notes"`
}

// Reconciles reports whether the document's totals satisfy the central
// reconciliation guarantee against its source record.
func (d Document) Reconciles(rec LedgerRecord) bool {
	return d.Subtotal.Add(d.Tax).Round().Equal(d.GrandTotal.Round()) &&
		d.GrandTotal.Round().Equal(rec.Gross.Round())
}
