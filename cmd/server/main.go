package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/murahjaya/inventory-system/internal/api"
	"github.com/murahjaya/inventory-system/internal/infrastructure/config"
	"github.com/murahjaya/inventory-system/internal/infrastructure/db/mongo"
	"github.com/murahjaya/inventory-system/internal/infrastructure/db/mysql"
	"github.com/murahjaya/inventory-system/internal/infrastructure/db/redis"
	"github.com/murahjaya/inventory-system/internal/infrastructure/queue"
	"github.com/murahjaya/inventory-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Env: cfg.Env})

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET must be set")
	}

	// MySQL is dialed lazily on first use; a down database at boot is not fatal.
	store := mysql.NewStore(mysql.Dialer(mysql.Config{
		Host:           cfg.DB.Host,
		Port:           cfg.DB.Port,
		User:           cfg.DB.User,
		Password:       cfg.DB.Password,
		Database:       cfg.DB.Name,
		Charset:        cfg.DB.Charset,
		ConnectTimeout: cfg.DB.ConnectTimeout,
	}), logger.Component("mysql"))
	defer store.Close()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	auditRepo := mongo.NewAuditRepository(mongoDB)
	dispatcher := queue.NewDispatcher(0, auditRepo, logger.Component("audit"))
	dispatcher.Start(ctx)

	e := api.NewRouter(store, rdb, mongoDB, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
