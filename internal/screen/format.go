package screen

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/models"
)

// NoRecordsText is shown instead of the history while it is empty.
const NoRecordsText = "There are no records"

// Formatter renders amounts for display. Formatting lives here and never in
// the state model.
type Formatter struct {
	symbol string
	format string
}

// NewFormatter returns a formatter using a humanize number format such as
// "#.###,##" (1.234,50) and a currency symbol placed after the number.
func NewFormatter(symbol, numberFormat string) Formatter {
	return Formatter{symbol: symbol, format: numberFormat}
}

// Money formats an amount as currency, e.g. "1.234,50 €".
func (f Formatter) Money(d decimal.Decimal) string {
	return humanize.FormatFloat(f.format, d.InexactFloat64()) + " " + f.symbol
}

// Balance formats the balance headline.
func (f Formatter) Balance(d decimal.Decimal) string {
	return "Current cash: " + f.Money(d)
}

// FormatEntry renders one history entry as "{label}: {delta}", with an
// explicit plus sign for additions.
func FormatEntry(e models.HistoryEntry) string {
	sign := ""
	if e.IsAddition() {
		sign = "+"
	}
	return fmt.Sprintf("%s: %s%s", e.Label, sign, e.Delta.String())
}
