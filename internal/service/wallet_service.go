// Package service implements the use cases behind the wallet's two dialogs.
//
// It is the boundary between raw user input and the state model: text is
// parsed here (never failing), the reduce dialog's sign inversion happens
// here, and every change goes through the interceptor chain.
package service

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/calculator"
	"github.com/mmynk/vecwallet/internal/middleware"
	"github.com/mmynk/vecwallet/internal/models"
	"github.com/mmynk/vecwallet/internal/state"
)

// WalletService handles add/reduce requests coming from the screen.
type WalletService struct {
	model *state.Model
	apply middleware.ApplyFunc
}

// NewWalletService creates a service around model. Every delta is applied
// through the given interceptors, outermost first.
func NewWalletService(model *state.Model, interceptors ...middleware.Interceptor) *WalletService {
	return &WalletService{
		model: model,
		apply: middleware.Chain(middleware.ModelApply(model), interceptors...),
	}
}

// Bounds for a typed amount. Anything larger is treated like invalid text.
const (
	maxIntegerDigits  = 30
	maxFractionDigits = 20
)

// ParseAmount converts dialog text into an amount.
// Both "12.34" and "12,34" are accepted. Empty or non-numeric text yields 0,
// and so do amounts with more than maxIntegerDigits integer digits or
// maxFractionDigits fraction digits (e.g. "1e10000000").
func ParseAmount(text string) decimal.Decimal {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		slog.Debug("Unparseable amount, using 0", "input", text, "error", err)
		return decimal.Zero
	}
	if !withinBounds(amount) {
		slog.Debug("Amount out of range, using 0", "input", text)
		return decimal.Zero
	}
	return amount
}

// withinBounds checks the digit counts without expanding the number, so a
// huge exponent costs nothing.
func withinBounds(amount decimal.Decimal) bool {
	exp := int64(amount.Exponent())
	if exp < -maxFractionDigits {
		return false
	}
	return int64(amount.NumDigits())+exp <= maxIntegerDigits
}

// AddCash confirms the add dialog with the given text.
func (s *WalletService) AddCash(text string) models.Snapshot {
	return s.confirm(calculator.OpAdd, text)
}

// ReduceCash confirms the reduce dialog with the given text.
// The typed amount is negated before it reaches the model.
func (s *WalletService) ReduceCash(text string) models.Snapshot {
	return s.confirm(calculator.OpReduce, text)
}

// Confirm applies the dialog for op with the given text.
func (s *WalletService) Confirm(op calculator.Operation, text string) models.Snapshot {
	return s.confirm(op, text)
}

func (s *WalletService) confirm(op calculator.Operation, text string) models.Snapshot {
	amount := ParseAmount(text)
	delta := calculator.Signed(op, amount)
	slog.Debug("Dialog confirmed", "operation", op, "amount", amount, "delta", delta)
	return s.apply(delta)
}

// Preview returns the current balance, the parsed amount and the result the
// dialog for op would produce, without changing anything.
func (s *WalletService) Preview(op calculator.Operation, text string) (balance, amount, result decimal.Decimal) {
	balance = s.model.Snapshot().Balance
	amount = ParseAmount(text)
	return balance, amount, calculator.Preview(balance, amount, op)
}

// Snapshot returns the latest published state.
func (s *WalletService) Snapshot() models.Snapshot {
	return s.model.Snapshot()
}

// Subscribe registers fn for every snapshot published after this call.
func (s *WalletService) Subscribe(fn state.Listener) (unsubscribe func()) {
	return s.model.Subscribe(fn)
}

// Summary totals the current history.
func (s *WalletService) Summary() calculator.Summary {
	return calculator.Summarize(s.model.Snapshot().History)
}
