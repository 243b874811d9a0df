package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/heartwire/heartwire/internal/app"
	"github.com/heartwire/heartwire/internal/cache"
	"github.com/heartwire/heartwire/internal/config"
	"github.com/heartwire/heartwire/internal/db"
	"github.com/heartwire/heartwire/internal/eventlog"
	"github.com/heartwire/heartwire/internal/logger"
	"github.com/heartwire/heartwire/internal/scoring"
	"github.com/heartwire/heartwire/internal/server"
	"github.com/heartwire/heartwire/internal/service/account"
	"github.com/heartwire/heartwire/internal/service/insights"
	"github.com/heartwire/heartwire/internal/service/match"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, log)

	// Event logs: created once per process and injected, never looked up
	// through ambient globals.
	historyLog := eventlog.New[db.Calculation](database, cfg.Retention.HistoryCap)
	analyticsLog := eventlog.New[db.AnalyticsCalculation](database, cfg.Retention.AnalyticsCap)
	registrationLog := eventlog.New[db.Registration](database, cfg.Retention.RegistrationsCap)

	engine := scoring.NewEngine(scoring.NewSource())

	registrars := []server.Registrar{
		match.NewRegistrar(appCtx, engine, historyLog, analyticsLog),
		account.NewRegistrar(appCtx, registrationLog),
		insights.NewRegistrar(appCtx, analyticsLog, registrationLog, cfg.Admin.Secret),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database, cfg); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	fiberApp := server.New(cfg, registrars...)

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr)

	if err := server.Start(fiberApp, cfg); err != nil {
		log.Error("failed to start HTTP server", "err", err)
	}
}
