package ledgerdocs

import (
	"fmt"
	"strings"
)

// clientCompany is the buying entity on expense documents. Overridable per
// batch through AssembleOptions.
const clientCompany = "Your Client Corp"

// Backdating ranges for the expense timeline: the purchase order predates
// the invoice by 10-20 days, the receipt by 2-5 days, so PO <= receipt <=
// invoice always holds.
var expenseOffsets = []OffsetRange{{Min: 10, Max: 20}, {Min: 2, Max: 5}}

// ExpenseDocs is the cross-referenced document set derived from one
// expense ledger record.
type ExpenseDocs struct {
	PurchaseOrder   Document
	ReceivingReport Document
	Invoice         Document
}

// AssembleExpense derives the purchase order, receiving report, and
// invoice for one expense ledger record. All three share one line item,
// the same net/tax/gross triple anchored on the record's gross amount, and
// ids rooted in the record's business key; each carries its own derived
// date. This is the central reconciliation guarantee for the expense path.
func AssembleExpense(rec LedgerRecord) (ExpenseDocs, error) {
	synth := NewSynth(rec.Key)

	timeline, err := DeriveTimeline(rec.Date, expenseOffsets, synth)
	if err != nil {
		return ExpenseDocs{}, fmt.Errorf("record %q: %w", rec.Key, err)
	}
	poDate, rrDate := timeline[0], timeline[1]

	// Synthetic details are derived once, from the record-scoped
	// generator, and shared by all three documents.
	vendor := Party{
		Company:  rec.Vendor,
		Address:  synth.Address(),
		Email:    vendorEmail(rec.Vendor),
		VendorID: rec.VendorID,
	}
	client := Party{
		Company: clientCompany,
		Address: synth.Address(),
		Name:    "User " + rec.UserID,
	}

	// The gross amount is the anchor: gross - tax = net, so the invoice
	// total always matches the ledger total exactly.
	net := rec.Gross.Sub(rec.Tax).Round()
	items := []LineItem{{
		Description: rec.GLName,
		Quantity:    1,
		UnitPrice:   net,
		Total:       net,
	}}

	poID, rrID, invID := expenseIDs(rec.Key)

	po := Document{
		ID:         poID,
		Type:       PurchaseOrder,
		Date:       poDate,
		Sender:     client, // buyer
		Recipient:  vendor, // seller
		Items:      items,
		Subtotal:   net,
		Tax:        rec.Tax,
		GrandTotal: rec.Gross,
		Notes:      fmt.Sprintf("Authorized by %s. GL: %s", rec.Approver, rec.GLCode),
	}
	rr := Document{
		ID:         rrID,
		Type:       ReceivingReport,
		RefID:      poID,
		Date:       rrDate,
		Sender:     vendor, // shipped from
		Recipient:  client, // received at
		Items:      items,
		Subtotal:   net,
		Tax:        rec.Tax,
		GrandTotal: rec.Gross,
		Notes:      "Received in full. Condition: Good.",
	}
	inv := Document{
		ID:         invID,
		Type:       Invoice,
		RefID:      poID,
		Date:       rec.Date,
		Sender:     vendor, // billed from
		Recipient:  client, // billed to
		Items:      items,
		Subtotal:   net,
		Tax:        rec.Tax,
		GrandTotal: rec.Gross,
		Notes:      fmt.Sprintf("Payment Terms: Net 30. GL: %s", rec.GLCode),
	}

	return ExpenseDocs{PurchaseOrder: po, ReceivingReport: rr, Invoice: inv}, nil
}

// vendorEmail derives a billing address from the vendor's first word.
func vendorEmail(vendor string) string {
	first, _, _ := strings.Cut(vendor, " ")
	first = strings.ReplaceAll(first, ",", "")
	if first == "" {
		first = "vendor"
	}
	return "billing@" + strings.ToLower(first) + ".com"
}
