package models

import "github.com/shopspring/decimal"

// Snapshot is the observable state of the wallet at one point in time.
//
// A snapshot is an immutable value. The state model allocates a new History
// slice for every change, so a snapshot held by a caller never changes under
// it. Callers must not write to History.
type Snapshot struct {
	// Balance is the sum of every delta applied so far.
	Balance decimal.Decimal

	// History lists every change in the order it was applied.
	History []HistoryEntry

	// Version counts the applied deltas. It equals len(History).
	Version uint64
}

// IsEmpty reports whether no change has been recorded yet.
func (s Snapshot) IsEmpty() bool {
	return len(s.History) == 0
}

// Last returns the most recent history entry, if any.
func (s Snapshot) Last() (HistoryEntry, bool) {
	if len(s.History) == 0 {
		return HistoryEntry{}, false
	}
	return s.History[len(s.History)-1], true
}
