package calculator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSigned(t *testing.T) {
	tests := []struct {
		name   string
		op     Operation
		amount string
		want   string
	}{
		{name: "add keeps the amount", op: OpAdd, amount: "12.32", want: "12.32"},
		{name: "reduce negates the amount", op: OpReduce, amount: "5", want: "-5"},
		{name: "reduce of a negative amount adds", op: OpReduce, amount: "-5", want: "5"},
		{name: "reduce of zero stays zero", op: OpReduce, amount: "0", want: "0"},
		{name: "add of a negative amount reduces", op: OpAdd, amount: "-1.5", want: "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Signed(tt.op, dec(tt.amount))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("Signed(%v, %s) = %s, want %s", tt.op, tt.amount, got, tt.want)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		op      Operation
		want    string
	}{
		{name: "add to empty wallet", balance: "0", amount: "12.32", op: OpAdd, want: "12.32"},
		{name: "reduce below zero", balance: "12.32", amount: "23.32", op: OpReduce, want: "-11"},
		{name: "reduce nothing", balance: "4", amount: "0", op: OpReduce, want: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(dec(tt.balance), dec(tt.amount), tt.op)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("Preview() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOperationSymbol(t *testing.T) {
	if OpAdd.Symbol() != "+" || OpReduce.Symbol() != "-" {
		t.Errorf("symbols = %q/%q, want +/-", OpAdd.Symbol(), OpReduce.Symbol())
	}
	if OpAdd.String() != "add" || OpReduce.String() != "reduce" {
		t.Errorf("names = %q/%q, want add/reduce", OpAdd.String(), OpReduce.String())
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		deltas       []string
		validateFunc func(t *testing.T, s Summary)
	}{
		{
			name:   "empty history",
			deltas: nil,
			validateFunc: func(t *testing.T, s Summary) {
				if !s.Added.IsZero() || !s.Reduced.IsZero() || !s.Net.IsZero() {
					t.Errorf("expected zero totals, got %+v", s)
				}
				if s.Additions != 0 || s.Reductions != 0 {
					t.Errorf("expected zero counts, got %+v", s)
				}
			},
		},
		{
			name:   "mixed history",
			deltas: []string{"12.32", "-23.32", "0", "5"},
			validateFunc: func(t *testing.T, s Summary) {
				// Added: 12.32 + 5 = 17.32
				// Reduced: 23.32 (zero counts as a reduction of nothing)
				// Net: -6.00
				if !s.Added.Equal(dec("17.32")) {
					t.Errorf("Added = %s, want 17.32", s.Added)
				}
				if !s.Reduced.Equal(dec("23.32")) {
					t.Errorf("Reduced = %s, want 23.32", s.Reduced)
				}
				if !s.Net.Equal(dec("-6")) {
					t.Errorf("Net = %s, want -6", s.Net)
				}
				if s.Additions != 2 || s.Reductions != 2 {
					t.Errorf("counts = %d/%d, want 2/2", s.Additions, s.Reductions)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := make([]models.HistoryEntry, len(tt.deltas))
			for i, d := range tt.deltas {
				history[i] = models.NewHistoryEntry(uint64(i+1), uuid.Nil, dec(d))
			}
			tt.validateFunc(t, Summarize(history))
		})
	}
}
