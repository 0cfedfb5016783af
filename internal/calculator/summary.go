package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/models"
)

// Summary aggregates a history log.
type Summary struct {
	Added      decimal.Decimal // Sum of all addition deltas
	Reduced    decimal.Decimal // Absolute sum of all subtraction deltas
	Net        decimal.Decimal // Added - Reduced, equal to the balance
	Additions  int
	Reductions int
}

// Summarize totals a history by kind.
//
// Entries are grouped by their recorded Kind, not by re-reading the sign, so
// a zero delta counts as a reduction just like it is labelled.
func Summarize(history []models.HistoryEntry) Summary {
	s := Summary{
		Added:   decimal.Zero,
		Reduced: decimal.Zero,
		Net:     decimal.Zero,
	}
	for _, e := range history {
		if e.Kind == models.KindAddition {
			s.Added = s.Added.Add(e.Delta)
			s.Additions++
		} else {
			s.Reduced = s.Reduced.Sub(e.Delta)
			s.Reductions++
		}
		s.Net = s.Net.Add(e.Delta)
	}
	return s
}
