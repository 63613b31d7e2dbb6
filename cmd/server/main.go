// Package main runs the donation site HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/oddam/donations/config"
	"github.com/oddam/donations/internal/auth"
	"github.com/oddam/donations/internal/donations"
	"github.com/oddam/donations/internal/i18n"
	"github.com/oddam/donations/internal/institutions"
	"github.com/oddam/donations/internal/landing"
	"github.com/oddam/donations/internal/session"
	"github.com/oddam/donations/internal/web"
	"github.com/oddam/donations/pkg/database"
	"github.com/oddam/donations/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}
	logger := newLogger(cfg.Log.Level)
	defer logger.Sync()

	ctx := context.Background()
	if err := database.Migrate(cfg.Database.DSN(), logger); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), cfg.Database.Pool(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	var store session.Store
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		rdb, err := redis.NewClient(ctx, redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}, logger)
		if err != nil {
			logger.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb.Client)
	default:
		store = session.NewCookieStore(cfg.Session.Secret)
	}
	sessions := session.NewManager(store, session.Options{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL(),
		Secure:     cfg.Session.CookieSecure,
	}, logger)

	lang, ok := i18n.Parse(cfg.I18N.DefaultLanguage)
	if !ok {
		logger.Warn("unsupported DEFAULT_LANGUAGE, using pl", zap.String("language", cfg.I18N.DefaultLanguage))
		lang = language.Polish
	}

	userRepo := auth.NewRepository(pool)
	institutionRepo := institutions.NewRepository(pool)
	donationRepo := donations.NewRepository(pool)

	router, err := web.NewRouter(web.Deps{
		Logger:          logger,
		Sessions:        sessions,
		Users:           userRepo,
		Auth:            auth.NewHandler(userRepo, logger),
		Landing:         landing.NewHandler(institutionRepo, donationRepo, nil, logger),
		Donations:       donations.NewHandler(institutionRepo, donationRepo, logger),
		DefaultLanguage: lang,
		StaticDir:       cfg.Server.StaticDir,
	})
	if err != nil {
		logger.Fatal("router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port), zap.String("session_store", cfg.Session.Store))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		config.Level = lvl
	}
	logger, _ := config.Build()
	return logger
}
