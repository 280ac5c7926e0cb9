package ledgerdocs

import "strings"

// idRootLength is how much of a business key the derived ids keep. Long
// enough for keys like journal entry UUIDs to stay distinct, short enough
// to read on a printed document.
const idRootLength = 8

// DeriveID derives a stable document identifier: prefix plus the first n
// runes of the upper-cased key. Every document family for one ledger entry
// shares the same truncated root, so ids are correlatable without a lookup
// table. Collision risk is bounded by the truncation length; callers must
// ensure source keys are sufficiently distinct.
func DeriveID(key, prefix string, n int) string {
	root := strings.ToUpper(key)
	if runes := []rune(root); len(runes) > n {
		root = string(runes[:n])
	}
	return prefix + root
}

// expenseIDs returns the correlated id family for one expense ledger entry.
func expenseIDs(key string) (po, rr, inv string) {
	return DeriveID(key, "PO-", idRootLength),
		DeriveID(key, "REC-", idRootLength),
		DeriveID(key, "INV-", idRootLength)
}
