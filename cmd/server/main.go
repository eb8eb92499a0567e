package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	courseapp "training-hub/internal/application/course"
	notificationapp "training-hub/internal/application/notification"
	"training-hub/internal/application/pr"
	"training-hub/internal/application/resolver"
	userapp "training-hub/internal/application/user"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/config"
	httpserver "training-hub/internal/infrastructure/http"
	"training-hub/internal/infrastructure/logger"
	"training-hub/internal/infrastructure/migrator"
	chat_repository "training-hub/internal/infrastructure/persistence/postgres/chat"
	pg_uow "training-hub/internal/infrastructure/persistence/postgres/uow"
	"training-hub/internal/infrastructure/realtime"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "", "path to config.yaml (defaults to ./config/config.yaml)")
	pflag.Parse()

	cfg := config.MustLoad(*configPath)

	ctx := context.Background()
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	dsn := cfg.Database.DSN()
	if cfg.Database.AutoMigrate {
		m, err := migrator.NewMigrator(cfg.Database.MigrationsPath, dsn, log)
		if err != nil {
			log.Error("Failed to create migrator", "error", err)
			os.Exit(1)
		}
		if err := m.Up(); err != nil {
			log.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", "error", err)
		}
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres pool config", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	uow := pg_uow.NewPostgresUOW(pool, log)
	hub := realtime.NewHub(log)
	tokens := auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	notificationService := notificationapp.NewService(uow, hub, log)
	prService := pr.NewService(
		uow,
		resolver.NewIdentityResolver(log, resolver.DefaultExtractors()...),
		resolver.NewRepositoryResolver(log),
		notificationService,
		log,
	)
	courseService := courseapp.NewService(uow, log)
	userService := userapp.NewService(uow, log)

	gateway := realtime.NewGateway(hub, tokens, chat_repository.NewParticipantRepository(pool, log), realtime.Options{
		SendBuffer:     cfg.Realtime.SendBuffer,
		WriteTimeout:   cfg.Realtime.WriteTimeout,
		PongTimeout:    cfg.Realtime.PongTimeout,
		PingInterval:   cfg.Realtime.PingInterval,
		AllowedOrigins: cfg.Realtime.AllowedOrigins,
	}, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTPServer.Address, cfg.HTTPServer.Port)
	server := httpserver.NewServer(addr, log, httpserver.Services{
		PR:           prService,
		Notification: notificationService,
		Course:       courseService,
		User:         userService,
		Tokens:       tokens,
		Realtime:     gateway,
		DB:           pool,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)

	go func() {
		if err := server.Run(cfg); err != nil {
			log.Error("HTTP server error", "error", err)
		}
		done <- true
	}()

	select {
	case <-quit:
	case <-done:
		log.Info("Server exited")
		return
	}
	log.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hub.CloseAll()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	<-done
	log.Info("Server exited")
}
