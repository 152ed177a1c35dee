package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/skyticket/backend/internal/api/http"
	"github.com/skyticket/backend/internal/availability"
	"github.com/skyticket/backend/internal/cache"
	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/db"
	"github.com/skyticket/backend/internal/queue/asynqserver"
	queueClient "github.com/skyticket/backend/internal/queue/client"
	"github.com/skyticket/backend/internal/repository"
	"github.com/skyticket/backend/internal/server"
	"github.com/skyticket/backend/internal/service"
	"github.com/skyticket/backend/pkg/airport"
	"github.com/skyticket/backend/pkg/auth"
	"github.com/skyticket/backend/pkg/hash"
	"github.com/skyticket/backend/pkg/jalali"
	"github.com/skyticket/backend/pkg/logger"
	"github.com/skyticket/backend/pkg/otp"
	"github.com/skyticket/backend/pkg/storage"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting backend api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	rdb, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Fatal("redis connect problem", zap.Error(err))
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()
	logger.Info("redis connection done")

	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer asynqClient.Close()
	queueClient.SetClient(asynqClient)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Fatal("auth manager creation err", zap.Error(err))
	}

	store, err := storage.NewS3Store(context.Background(), cfg.Storage)
	if err != nil {
		logger.Fatal("object storage creation failed", zap.Error(err))
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL, rdb)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hash.NewBcryptHasher(cfg.Auth.PasswordCost),
		TokenManager: tokenManager,
		OtpGenerator: otp.NewGOTPGenerator(),
		Repos:        repos,
		Notifier:     queueClient.NewDispatcher(),
		Availability: availability.NewClient(cfg.Partner),
		Dates:        jalali.NewConverter(),
		Cities:       airport.NewDirectory(),
		Storage:      store,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
