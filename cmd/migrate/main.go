// Package main applies or rolls back the schema and optionally seeds sample institutions.
package main

import (
	"context"
	"flag"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oddam/donations/config"
	"github.com/oddam/donations/internal/institutions"
	"github.com/oddam/donations/pkg/database"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration instead of applying them")
	seed := flag.Bool("seed", false, "insert default categories and sample institutions after migrating")
	perType := flag.Int("per-type", 4, "sample institutions per type when seeding")
	seedValue := flag.Uint64("seed-value", 0, "random seed for sample data, 0 picks one")
	flag.Parse()

	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	dsn := cfg.Database.DSN()

	if *down {
		if err := database.Rollback(dsn, logger); err != nil {
			logger.Fatal("rollback", zap.Error(err))
		}
		return
	}
	if err := database.Migrate(dsn, logger); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	if !*seed {
		return
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, dsn, cfg.Database.Pool(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	created, err := institutions.Seed(ctx, institutions.NewRepository(pool), gofakeit.New(*seedValue), *perType)
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
	logger.Info("seeded sample data",
		zap.Int("categories", len(institutions.DefaultCategories)),
		zap.Int("institutions", len(created)),
	)
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
