package calculator

import "github.com/shopspring/decimal"

// Operation is the dialog a user confirmed: add to or reduce from cash.
type Operation int

const (
	OpAdd Operation = iota
	OpReduce
)

// Symbol returns the arithmetic sign shown in the dialog preview.
func (op Operation) Symbol() string {
	if op == OpReduce {
		return "-"
	}
	return "+"
}

// String returns the command name of the operation.
func (op Operation) String() string {
	if op == OpReduce {
		return "reduce"
	}
	return "add"
}

// Signed converts the amount typed into a dialog into the delta that is
// applied to the balance. The reduce dialog negates whatever was typed, so a
// negative amount entered there becomes a positive delta.
func Signed(op Operation, amount decimal.Decimal) decimal.Decimal {
	if op == OpReduce {
		return amount.Neg()
	}
	return amount
}

// Preview computes the balance a dialog would produce if confirmed.
// Shown as: balance ± amount = result
func Preview(balance, amount decimal.Decimal, op Operation) decimal.Decimal {
	return balance.Add(Signed(op, amount))
}
