package ledgerdocs

import (
	"fmt"

	"github.com/etnz/ledgerdocs/date"
	"github.com/google/uuid"
)

// RecordError ties a per-record failure to the record it came from.
type RecordError struct {
	Key string `json:"key"`
	Err error  `json:"-"`
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %q: %v", e.Key, e.Err)
}

// Summary is the outcome of one batch run. One bad record never blocks the
// rest of the batch: failures are accumulated here instead of propagated.
type Summary struct {
	RunID     string        `json:"run_id"`
	Processed int           `json:"processed"`
	Skipped   int           `json:"skipped"`
	Defaulted int           `json:"defaulted_fields"`
	Errors    []RecordError `json:"errors,omitempty"`
}

func newSummary(stats *DecodeStats) Summary {
	s := Summary{RunID: uuid.NewString()}
	if stats != nil {
		s.Defaulted = stats.Defaulted
	}
	return s
}

func (s *Summary) ok() { s.Processed++ }

func (s *Summary) fail(key string, err error) {
	s.Skipped++
	s.Errors = append(s.Errors, RecordError{Key: key, Err: err})
}

// String renders the user-visible run summary.
func (s Summary) String() string {
	return fmt.Sprintf("run %s: processed %d, skipped %d, defaulted fields %d",
		s.RunID, s.Processed, s.Skipped, s.Defaulted)
}

// ExpenseSet holds the three parallel document sequences derived from an
// expense ledger, in input order.
type ExpenseSet struct {
	PurchaseOrders   []Document
	ReceivingReports []Document
	Invoices         []Document
}

// ProcessExpenses derives the full document set for every ledger record.
// Each record is processed to completion or fails independently; failures
// are reported on the summary, never as an error for the batch.
func ProcessExpenses(records []LedgerRecord, stats *DecodeStats) (ExpenseSet, Summary) {
	var set ExpenseSet
	summary := newSummary(stats)
	for _, rec := range records {
		docs, err := AssembleExpense(rec)
		if err != nil {
			summary.fail(rec.Key, err)
			continue
		}
		set.PurchaseOrders = append(set.PurchaseOrders, docs.PurchaseOrder)
		set.ReceivingReports = append(set.ReceivingReports, docs.ReceivingReport)
		set.Invoices = append(set.Invoices, docs.Invoice)
		summary.ok()
	}
	return set, summary
}

// WithdrawalSet holds the withdrawal packets, separation letters, and
// 1099-R tax forms derived from an HR employee file.
type WithdrawalSet struct {
	Packets            []WithdrawalDoc
	Resignations       []Letter
	Separations        []Letter
	DeathNotifications []Letter
	TaxForms           []Form1099R
}

// ProcessWithdrawals derives a withdrawal packet and a 1099-R for every
// employee, and a separation letter where the separation rule says so.
// asOf anchors the synthetic separation dates, the letter date line, and
// the tax year on the form.
func ProcessWithdrawals(employees []EmployeeRecord, asOf date.Date, stats *DecodeStats) (WithdrawalSet, Summary) {
	var set WithdrawalSet
	summary := newSummary(stats)
	for _, emp := range employees {
		packet, sepDate, err := AssembleWithdrawal(emp, asOf)
		if err != nil {
			summary.fail(emp.ID, err)
			continue
		}
		set.Packets = append(set.Packets, packet)

		// A fresh generator from the same key keeps the letter draw
		// deterministic per employee.
		synth := NewSynth(emp.ID)
		reason, drew := separationOutcome(emp, synth)
		if drew {
			letter := AssembleLetter(emp, reason, sepDate, asOf)
			switch reason {
			case ReasonResignation:
				set.Resignations = append(set.Resignations, letter)
			case ReasonSeparation:
				set.Separations = append(set.Separations, letter)
			case ReasonDeath:
				set.DeathNotifications = append(set.DeathNotifications, letter)
			}
		}
		set.TaxForms = append(set.TaxForms, AssembleForm1099R(emp, packet, reason, asOf.Year()))
		summary.ok()
	}
	return set, summary
}
