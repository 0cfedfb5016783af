package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a history entry as an addition or a subtraction.
type Kind uint8

const (
	// KindSubtraction is used for every non-positive delta, zero included.
	KindSubtraction Kind = iota
	// KindAddition is used for strictly positive deltas.
	KindAddition
)

// String returns the upper-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAddition:
		return "ADDITION"
	case KindSubtraction:
		return "SUBTRACTION"
	default:
		return "UNKNOWN"
	}
}

// Labels shown next to each history entry.
const (
	LabelCashAdded   = "Cash added"
	LabelCashReduced = "Cash reduced"
)

// HistoryEntry is one recorded balance change.
// Entries are created once by the state model and never modified afterwards.
type HistoryEntry struct {
	// Seq is the 1-based position of the entry in the history log.
	// It matches the order in which deltas were applied.
	Seq uint64

	// ID is a random identifier (UUID), useful as a stable list key.
	ID uuid.UUID

	// Delta is the signed amount that was applied to the balance.
	Delta decimal.Decimal

	// Label is "Cash added" or "Cash reduced", derived from Delta.
	Label string

	// Kind is derived from Delta together with Label.
	Kind Kind
}

// Classify derives the kind and label of a delta.
// Only a strictly positive delta counts as an addition: zero is logged as a
// reduction, and the resulting balance plays no part in the decision.
func Classify(delta decimal.Decimal) (Kind, string) {
	if delta.IsPositive() {
		return KindAddition, LabelCashAdded
	}
	return KindSubtraction, LabelCashReduced
}

// NewHistoryEntry builds the entry recorded for delta.
func NewHistoryEntry(seq uint64, id uuid.UUID, delta decimal.Decimal) HistoryEntry {
	kind, label := Classify(delta)
	return HistoryEntry{
		Seq:   seq,
		ID:    id,
		Delta: delta,
		Label: label,
		Kind:  kind,
	}
}

// IsAddition reports whether the entry increased the balance.
func (e HistoryEntry) IsAddition() bool {
	return e.Kind == KindAddition
}
