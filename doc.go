// Package ledgerdocs derives cross-referenced, numerically reconciled
// documents from authoritative financial ledger records.
//
// From an expense ledger it derives purchase orders, receiving reports,
// and invoices that share one reconciled net/tax/gross triple; from a
// payroll journal, registers and year-to-date earnings records with a
// forward accrual projection; from an HR employee file, fully liquidated
// 401(k) withdrawal statements and separation letters; and from any of
// these, payment checks.
//
// Derivation is deterministic: every synthetic detail (dates, addresses,
// identifiers, balances) is drawn from a generator seeded by the record's
// business key, so the same input produces byte-identical output on every
// run and machine. Monetary splits go through the allocation reconciler,
// which guarantees that weighted shares sum back to their anchor total to
// the cent.
package ledgerdocs
