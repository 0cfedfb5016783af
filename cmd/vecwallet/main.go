package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/vecwallet/internal/config"
	"github.com/mmynk/vecwallet/internal/metrics"
	"github.com/mmynk/vecwallet/internal/middleware"
	"github.com/mmynk/vecwallet/internal/screen"
	"github.com/mmynk/vecwallet/internal/service"
	"github.com/mmynk/vecwallet/internal/state"
	"github.com/mmynk/vecwallet/pkg/logging"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Session failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		return err
	}

	model := state.New(state.WithLogger(logger))
	unsubscribe := model.Subscribe(m.Observe)
	defer unsubscribe()

	svc := service.NewWalletService(model,
		middleware.LoggingInterceptor(logger),
		middleware.MetricsInterceptor(m),
	)

	scr := screen.New(svc, screen.NewFormatter(cfg.CurrencySymbol, cfg.NumberFormat), os.Stdout, logger)
	logger.Info("Session started", "currency", cfg.CurrencySymbol)

	if err := scr.Run(ctx, os.Stdin); err != nil {
		return err
	}

	snap := model.Snapshot()
	logger.Info("Session ended", "balance", snap.Balance.String(), "entries", len(snap.History))

	if cfg.DumpMetrics {
		if err := metrics.WriteText(os.Stderr, reg); err != nil {
			return fmt.Errorf("failed to dump metrics: %w", err)
		}
	}
	return nil
}
