package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fuelquote/fuel-quote-api/internal/api"
	"github.com/fuelquote/fuel-quote-api/internal/infrastructure/config"
	mongodb "github.com/fuelquote/fuel-quote-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fuelquote/fuel-quote-api/internal/infrastructure/db/redis"
	"github.com/fuelquote/fuel-quote-api/pkg/logger"
)

// @title        Fuel Quote API
// @version      1.0
// @description  Account registration, sessions, delivery profiles, and fuel quote history.
//
// @securityDefinitions.apikey SessionToken
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := mongodb.NewAccountRepository(db).EnsureIndexes(ctx); err != nil {
		zlog.Fatal().Err(err).Msg("account indexes failed")
	}
	if err := mongodb.NewQuoteRepository(db).EnsureIndexes(ctx); err != nil {
		zlog.Fatal().Err(err).Msg("quote indexes failed")
	}

	e := api.NewRouter(db, rdb, cfg.SessionTTL, zlog)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("server stopped")
		}
	}()
	zlog.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("fuel quote API started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("graceful shutdown failed")
	}
}
