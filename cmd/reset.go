package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rizalfh/payment-sandbox/internal"
	"github.com/rizalfh/payment-sandbox/internal/core/events"
	"github.com/rizalfh/payment-sandbox/internal/ledger"
	ledgersqlite "github.com/rizalfh/payment-sandbox/internal/ledger/sqlite"
	"github.com/rizalfh/payment-sandbox/internal/payment"
	"github.com/rizalfh/payment-sandbox/pkg/logger"
)

// resetCmd bulk-clears the persisted payment ledger. This is an
// administrative operation and is deliberately not exposed over HTTP.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the persisted payment ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Init(os.Getenv("APP_ENV"), cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
		log := logger.L()

		db, err := initDB(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to open ledger store: %w", err)
		}

		ctx, cancel := internal.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		bus := events.NewEventBus(log)
		payment.NewEventHandler(log).RegisterHandlers(bus)

		store := ledgersqlite.NewBlobStore(db, cfg.Storage.Key())
		paymentLedger := ledger.New(store, bus, log)
		if err := paymentLedger.Load(ctx); err != nil {
			return err
		}

		count := paymentLedger.Len()
		if err := paymentLedger.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset ledger: %w", err)
		}

		log.Info("payment ledger cleared", "payments_removed", count)
		return nil
	},
}
