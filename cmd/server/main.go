package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/tipbot/internal/adapter/http"
	"github.com/iho/tipbot/internal/adapter/http/handler"
	"github.com/iho/tipbot/internal/adapter/idgen"
	"github.com/iho/tipbot/internal/adapter/notifier"
	"github.com/iho/tipbot/internal/adapter/roster"
	"github.com/iho/tipbot/internal/adapter/walletrpc"
	"github.com/iho/tipbot/internal/infrastructure/config"
	"github.com/iho/tipbot/internal/infrastructure/logger"
	"github.com/iho/tipbot/internal/infrastructure/metrics"
	redisInfra "github.com/iho/tipbot/internal/infrastructure/redis"
	"github.com/iho/tipbot/internal/lock"
	"github.com/iho/tipbot/internal/usecase"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the wallet daemon
	wallet := walletrpc.New(walletrpc.Config{
		URL:      cfg.WalletRPCURL,
		User:     cfg.WalletRPCUser,
		Password: cfg.WalletRPCPassword,
		Timeout:  cfg.WalletRPCTimeout,
	})
	if err := wallet.Ping(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to reach wallet daemon")
	}
	appLogger.Info().Str("url", cfg.WalletRPCURL).Msg("connected to wallet daemon")

	accounts := roster.New(appLogger)

	// The chat gateway is optional: without redis, notifications go to the
	// log and the roster fills lazily from incoming requests.
	var (
		chatNotifier usecase.Notifier = notifier.NewLog(appLogger)
		redisClient  *goredis.Client
	)
	if cfg.RedisURL != "" {
		redisClient, err = redisInfra.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		appLogger.Info().Msg("connected to redis")

		chatNotifier = notifier.NewRedis(redisClient)

		syncer := roster.NewSyncer(accounts, roster.NewRedisDirectory(redisClient), cfg.RosterSyncInterval, appLogger)
		go syncer.Run(ctx)
	}

	// Initialize use cases
	locker := lock.NewKeyed()
	idGen := idgen.NewULIDGenerator()

	balanceUC := usecase.NewBalanceUseCase(wallet, cfg.RequiredConfirmations, cfg.HighBalanceMark)
	depositUC := usecase.NewDepositUseCase(wallet)
	withdrawUC := usecase.NewWithdrawUseCase(wallet, balanceUC, locker, idGen, usecase.WithdrawConfig{
		TxFee:            cfg.TxFee,
		WalletPassphrase: cfg.WalletPassphrase,
		ExplorerURL:      cfg.ExplorerURL,
	})
	tipUC := usecase.NewTipUseCase(wallet, balanceUC, locker, idGen)

	m := metrics.New()
	go trackRosterSize(ctx, m, accounts)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accounts, balanceUC, depositUC, m)
	transferHandler := handler.NewTransferHandler(accounts, withdrawUC, tipUC, chatNotifier, m, appLogger)
	healthHandler := handler.NewHealthHandler(wallet, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:  accountHandler,
		TransferHandler: transferHandler,
		HealthHandler:   healthHandler,
		Logger:          appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}

func trackRosterSize(ctx context.Context, m *metrics.Metrics, accounts *roster.Roster) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.RosterAccounts.Set(float64(accounts.Count()))
		}
	}
}
