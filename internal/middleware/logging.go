package middleware

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/models"
)

// LoggingInterceptor returns an interceptor that logs every applied delta.
// It logs the delta, the recorded kind, the resulting balance and version, and
// the duration.
func LoggingInterceptor(logger *slog.Logger) Interceptor {
	return func(next ApplyFunc) ApplyFunc {
		return func(delta decimal.Decimal) models.Snapshot {
			start := time.Now()

			s := next(delta)

			kind := ""
			if last, ok := s.Last(); ok {
				kind = last.Kind.String()
			}
			logger.Info("Cash changed",
				"delta", delta,
				"kind", kind,
				"balance", s.Balance,
				"version", s.Version,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			return s
		}
	}
}
