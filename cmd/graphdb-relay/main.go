package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kgsde/graphdb-relay/internal/application/relay"
	"github.com/kgsde/graphdb-relay/internal/config"
	"github.com/kgsde/graphdb-relay/pkg/adapters/graphdb"
	"github.com/kgsde/graphdb-relay/pkg/adapters/metrics/prometheus"
	"github.com/kgsde/graphdb-relay/pkg/api/http"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting GraphDB relay",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Initialize adapters
	storeClient, err := graphdb.NewClient(&graphdb.Config{
		BaseURL:      cfg.GraphDB.URL,
		Repository:   cfg.GraphDB.Repository,
		QueryTimeout: cfg.GraphDB.QueryTimeout,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal("failed to create GraphDB client", zap.Error(err))
	}

	metricsCollector := prometheus.NewCollector()

	// Initialize application components
	relayService := relay.NewService(storeClient, metricsCollector, logger)

	// Initialize API server
	httpServer := http.NewServer(&http.Config{
		Port:      cfg.HTTPPort,
		Relay:     relayService,
		Logger:    logger,
		StaticDir: cfg.StaticDir,
	})

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("GraphDB relay started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.String("graphdb_url", cfg.GraphDB.URL),
		zap.String("repository", cfg.GraphDB.Repository))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("GraphDB relay shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
