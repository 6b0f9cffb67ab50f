package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HemantKumar01/ARKane-Wallet/config"
	"github.com/HemantKumar01/ARKane-Wallet/internal/adapter/arkd"
	"github.com/HemantKumar01/ARKane-Wallet/internal/adapter/faucet"
	httpHandler "github.com/HemantKumar01/ARKane-Wallet/internal/adapter/http/handler"
	memStorage "github.com/HemantKumar01/ARKane-Wallet/internal/adapter/storage/memory"
	pgStorage "github.com/HemantKumar01/ARKane-Wallet/internal/adapter/storage/postgres"
	redisStorage "github.com/HemantKumar01/ARKane-Wallet/internal/adapter/storage/redis"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"
	"github.com/HemantKumar01/ARKane-Wallet/internal/service"
	"github.com/HemantKumar01/ARKane-Wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Msg("Starting ARKane wallet backend")

	ctx := context.Background()

	// Wallet registry: in-memory by default, PostgreSQL when configured
	var (
		store    ports.WalletStore
		checkers []ports.HealthChecker
	)
	switch cfg.Store.Driver {
	case "memory", "":
		store = memStorage.NewWalletStore()
		log.Info().Msg("Using in-memory wallet store")
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Store.Postgres, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		store = pgStorage.NewWalletStore(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("Unknown store driver")
	}

	// Advisory balance cache (optional)
	var cache ports.BalanceCache
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		cache = redisStorage.NewBalanceCache(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	// Seed-at-rest encryption
	cipher, err := service.NewChaChaSeedCipher(cfg.Wallet.SeedCipherKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize seed cipher")
	}

	// Protocol adapters
	arkClient := arkd.New(cfg.Ark.ServerURL, cfg.Esplora.URL, cfg.Ark.RequestTimeout, log)
	checkers = append(checkers, arkClient)
	faucetClient := faucet.New(cfg.Faucet.Command, cfg.Faucet.Timeout, log)

	// Orchestration service
	walletSvc := service.NewWalletService(
		arkClient,
		faucetClient,
		store,
		cache,
		cipher,
		cfg.Wallet.OperationTimeout,
		cfg.Wallet.LockTimeout,
		cfg.Redis.BalanceTTL,
		log,
	)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		HealthCheckers: checkers,
		Logger:         log,
		Mode:           cfg.Server.Mode,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
