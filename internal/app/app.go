package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a2sh3r/stablex/internal/config"
	"github.com/a2sh3r/stablex/internal/database"
	"github.com/a2sh3r/stablex/internal/handlers"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/pricefeed"
	"github.com/a2sh3r/stablex/internal/realtime"
	"github.com/a2sh3r/stablex/internal/repository"
	"github.com/a2sh3r/stablex/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type App struct {
	server  *http.Server
	db      *sql.DB
	redis   *redis.Client
	relay   *service.EffectRelay
	bridge  *realtime.Bridge
	limiter *middleware.UserLimiter

	limiterSweep   time.Duration
	limiterIdleTTL time.Duration
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required: set KEY or -k")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	depositRepo := repository.NewDepositRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	eventRepo := repository.NewEventRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	restrictionRepo := repository.NewRestrictionRepository(db)

	hub := realtime.NewHub(cfg.CORSOrigins)
	a := &App{
		db:             db,
		limiter:        middleware.NewUserRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		limiterSweep:   cfg.RateLimitSweepInt,
		limiterIdleTTL: cfg.RateLimitIdleTTL,
	}

	var emitter realtime.Emitter = hub
	if cfg.RedisAddr != "" {
		a.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		emitter = realtime.NewRedisEmitter(a.redis, cfg.RealtimeChannel)
		a.bridge = realtime.NewBridge(a.redis, cfg.RealtimeChannel, hub)
		logger.Log.Info("realtime fan-out through redis", zap.String("addr", cfg.RedisAddr), zap.String("channel", cfg.RealtimeChannel))
	}

	settingsService := service.NewSettingsService(settingsRepo, pricefeed.NewClient(cfg.PriceFeedURL), service.SettingsDefaults{
		MinDeposit:    cfg.DefaultMinDeposit,
		MinWithdrawal: cfg.DefaultMinWithdrawal,
		MaxWithdrawal: cfg.DefaultMaxWithdrawal,
	})
	notificationService := service.NewNotificationService(notificationRepo, emitter)
	restrictionService := service.NewRestrictionService(restrictionRepo)
	walletService := service.NewWalletService(walletRepo, emitter)
	referralService := service.NewReferralService(userRepo, referralRepo, settingsService, notificationService, emitter)
	effects := service.NewEffectProcessor(eventRepo, referralService, notificationService)
	depositService := service.NewDepositService(depositRepo, settingsService, restrictionService, effects, emitter)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, walletRepo, settingsService, restrictionService, effects, emitter)
	userService := service.NewUserService(userRepo)

	a.relay = service.NewEffectRelay(eventRepo, effects, cfg.EffectRelayInterval, cfg.EffectRelayGrace)

	handler := handlers.NewHandler(handlers.Services{
		Users:         userService,
		Wallets:       walletService,
		Deposits:      depositService,
		Withdrawals:   withdrawalService,
		Notifications: notificationService,
		Restrictions:  restrictionService,
		Settings:      settingsService,
	}, hub, cfg.SecretKey)

	r := handlers.NewRouter(handler, cfg.SecretKey, handlers.RouterOptions{
		CORSOrigins: cfg.CORSOrigins,
		Limiter:     a.limiter,
	})

	a.server = &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a, nil
}

// Run starts the HTTP server and the background workers. Workers stop when ctx is done.
func (a *App) Run(ctx context.Context) error {
	go a.relay.Run(ctx)
	go a.limiter.RunCleanup(ctx, a.limiterSweep, a.limiterIdleTTL)
	if a.bridge != nil {
		go a.bridge.Run(ctx)
	}

	go func() {
		logger.Log.Info("starting server", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	if a.redis != nil {
		logger.Log.Info("closing redis connection...")
		if err := a.redis.Close(); err != nil {
			logger.Log.Error("failed to close redis", zap.Error(err))
		}
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
