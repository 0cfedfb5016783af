// Package middleware wraps the state model's single mutation entry point with
// cross-cutting behaviour such as logging and metrics.
package middleware

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/models"
	"github.com/mmynk/vecwallet/internal/state"
)

// ApplyFunc applies a delta and returns the snapshot it produced.
type ApplyFunc func(delta decimal.Decimal) models.Snapshot

// Interceptor decorates an ApplyFunc.
type Interceptor func(next ApplyFunc) ApplyFunc

// ModelApply adapts a state model to an ApplyFunc.
func ModelApply(m *state.Model) ApplyFunc {
	return func(delta decimal.Decimal) models.Snapshot {
		m.ApplyDelta(delta)
		return m.Snapshot()
	}
}

// Chain wraps apply with the given interceptors. The first interceptor is the
// outermost one.
func Chain(apply ApplyFunc, interceptors ...Interceptor) ApplyFunc {
	for i := len(interceptors) - 1; i >= 0; i-- {
		apply = interceptors[i](apply)
	}
	return apply
}
