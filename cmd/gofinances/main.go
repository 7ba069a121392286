package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gofinances/internal/amqp"
	"gofinances/internal/config"
	"gofinances/internal/form"
	apphttp "gofinances/internal/http"
	"gofinances/internal/identity"
	"gofinances/internal/kv"
	"gofinances/internal/ledger"
	applog "gofinances/internal/log"
	"gofinances/internal/services"
	"gofinances/internal/session"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	slog.SetDefault(logger.Logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var store kv.Store
	switch cfg.KVBackend {
	case "sqlite":
		sqlite, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer sqlite.Close()
		store = sqlite
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		store = kv.NewMemory()
		logger.Info("Initialized memory backend")
	}

	// AMQP is optional; without it the mirror worker relies on its
	// periodic sweep.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	l := ledger.New(store)
	register := services.NewRegisterService(l, form.NewValidator(), amqpClient)

	sessions := session.NewManager(store)
	if err := sessions.Restore(context.Background()); err != nil {
		logger.Warn("Session restore failed", "error", err)
	}
	logger.Info("Session restored", "state", sessions.State().String())

	tokens := identity.NewTokenIssuer(cfg.SessionSecret, cfg.SessionTTL)
	google := identity.Google{}
	apple := identity.Apple{ClientID: cfg.AppleClientID}

	srv := apphttp.NewServer(":"+cfg.Port, l, register, sessions, tokens, google, apple)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting gofinances server", "port", cfg.Port, "backend", cfg.KVBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
