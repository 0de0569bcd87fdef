package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rizalfh/payment-sandbox/internal"
	"github.com/rizalfh/payment-sandbox/internal/core/events"
	"github.com/rizalfh/payment-sandbox/internal/ledger"
	ledgersqlite "github.com/rizalfh/payment-sandbox/internal/ledger/sqlite"
	"github.com/rizalfh/payment-sandbox/internal/payment"
	"github.com/rizalfh/payment-sandbox/internal/paymentgateway"
	"github.com/rizalfh/payment-sandbox/internal/transport/rest"
	"github.com/rizalfh/payment-sandbox/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle payment submissions and history queries`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config  *internal.Config
	DB      *gorm.DB
	Router  *chi.Mux
	Ledger  *ledger.Ledger
	Handler *payment.Handler
	Logger  *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	sqlDB, err := deps.DB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unwrap database handle: %v\n", err)
		os.Exit(1)
	}
	rest.RegisterAllRoutes(deps.Router, sqlDB, deps.Handler, deps.Config.Server.AllowedOrigins, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.Level, config.Observability.Logging.Format)
	log := logger.L()

	db, err := initDB(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ledger store: %w", err)
	}

	bus := events.NewEventBus(log)
	payment.NewEventHandler(log).RegisterHandlers(bus)

	store := ledgersqlite.NewBlobStore(db, config.Storage.Key())
	paymentLedger := ledger.New(store, bus, log)
	if err := paymentLedger.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	gateway := paymentgateway.NewSimulator(paymentgateway.Config{
		SuccessRate: config.Gateway.SuccessRate,
		Latency:     config.Gateway.Latency,
		Seed:        config.Gateway.Seed,
	}, log)

	paymentService := payment.NewService(gateway, paymentLedger, log)
	paymentHandler := payment.NewHandler(paymentService, log)

	router := chi.NewRouter()

	return &Dependencies{
		Config:  config,
		DB:      db,
		Router:  router,
		Ledger:  paymentLedger,
		Handler: paymentHandler,
		Logger:  log,
	}, nil
}

// initDB opens the sqlite database backing the ledger blob
func initDB(cfg internal.StorageConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Source), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap database handle: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping ledger store: %w", err)
	}

	return db, nil
}
