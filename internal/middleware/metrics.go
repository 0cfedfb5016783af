package middleware

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/metrics"
	"github.com/mmynk/vecwallet/internal/models"
)

// MetricsInterceptor records how long each apply takes.
func MetricsInterceptor(m *metrics.Metrics) Interceptor {
	return func(next ApplyFunc) ApplyFunc {
		return func(delta decimal.Decimal) models.Snapshot {
			start := time.Now()
			s := next(delta)
			m.ObserveApplyDuration(time.Since(start))
			return s
		}
	}
}
