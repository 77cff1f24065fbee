package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/config"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/chain"
	httpHandler "github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/http/handler"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/naming"
	pgStorage "github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/storage/postgres"
	redisStorage "github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/storage/redis"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/service"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/logger"
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
		Str("network", cfg.Chain.Network).
		Msg("Starting payroll engine")

	if cfg.ClaimToken.Secret == "" {
		log.Fatal().Msg("claimtoken.secret must be set")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	payrollRepo := pgStorage.NewPayrollRepo(pool)
	claimRepo := pgStorage.NewClaimRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize outbound clients
	custodyClient := chain.NewCustodyClient(cfg.Chain.GatewayURL, &http.Client{Timeout: cfg.Chain.Timeout}, log)
	lookupClient := naming.NewLookupClient(cfg.Resolver.URL, &http.Client{Timeout: cfg.Resolver.Timeout}, log)

	// Initialize business services
	resolverSvc := service.NewResolverService(lookupClient, cfg.Resolver.Timeout, cfg.Resolver.Concurrency, log)
	ingestSvc := service.NewIngestService(resolverSvc, log)
	tokenCodec := service.NewClaimTokenService(cfg.ClaimToken.Secret, cfg.ClaimToken.Issuer)
	ledgerSvc := service.NewClaimLedgerService(payrollRepo, claimRepo, log)
	payrollSvc := service.NewPayrollService(payrollRepo, transactor, custodyClient, tokenCodec, log)
	claimSvc := service.NewClaimService(tokenCodec, ledgerSvc, payrollRepo, custodyClient, log)
	relaySvc := service.NewRelayService(service.NewEthSignerRecovery(), nonceStore, custodyClient, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		IngestSvc:      ingestSvc,
		PayrollSvc:     payrollSvc,
		ClaimSvc:       claimSvc,
		RelaySvc:       relaySvc,
		LedgerSvc:      ledgerSvc,
		TokenCodec:     tokenCodec,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
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
