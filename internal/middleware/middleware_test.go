package middleware

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/metrics"
	"github.com/mmynk/vecwallet/internal/models"
	"github.com/mmynk/vecwallet/internal/state"
)

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) Interceptor {
		return func(next ApplyFunc) ApplyFunc {
			return func(delta decimal.Decimal) models.Snapshot {
				order = append(order, name+">")
				s := next(delta)
				order = append(order, "<"+name)
				return s
			}
		}
	}

	m := state.New()
	apply := Chain(ModelApply(m), tag("outer"), tag("inner"))
	s := apply(decimal.NewFromInt(4))

	want := []string{"outer>", "inner>", "<inner", "<outer"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
	if !s.Balance.Equal(decimal.NewFromInt(4)) {
		t.Errorf("balance = %s, want 4", s.Balance)
	}
	if m.Snapshot().Version != 1 {
		t.Errorf("model version = %d, want 1", m.Snapshot().Version)
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	apply := Chain(ModelApply(state.New()), LoggingInterceptor(logger))
	apply(decimal.RequireFromString("-5"))

	out := buf.String()
	for _, want := range []string{"Cash changed", "delta=-5", "kind=SUBTRACTION", "balance=-5", "version=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		t.Fatalf("metrics.New failed: %v", err)
	}

	apply := Chain(ModelApply(state.New()), MetricsInterceptor(m))
	apply(decimal.NewFromInt(1))
	apply(decimal.NewFromInt(2))

	count, err := testutil.GatherAndCount(reg, "vecwallet_apply_duration_seconds")
	if err != nil {
		t.Fatalf("GatherAndCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("histogram series = %d, want 1", count)
	}
}
