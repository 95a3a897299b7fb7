package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httphandlers "github.com/rafabene/users-api/internal/handlers/http"
	"github.com/rafabene/users-api/internal/infrastructure/config"
	"github.com/rafabene/users-api/internal/infrastructure/i18n"
	"github.com/rafabene/users-api/internal/infrastructure/logging"
	"github.com/rafabene/users-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/users-api/internal/services"
)

// main sobe a API de usuários.
//
//	@title			Users API
//	@version		1.0
//	@description	Cadastro de usuários com soft delete.
//	@BasePath		/api/v1
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewZerologLogger(cfg.Logging.Level)
	logger.Info("starting users api",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.EnsureSchema(db); err != nil {
		logger.Error("failed to create schema", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(i18n.LocalesFS(cfg.I18n.LocalesDir), cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(postgres.NewExecutor(db))
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, uow, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService, logger)
	healthHandler := httphandlers.NewHealthHandler(cfg.Env, func(ctx context.Context) error {
		return postgres.Ping(ctx, db)
	}, logger)

	router := httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:        cfg,
		Logger:        logger,
		I18n:          i18nService,
		UserHandler:   userHandler,
		HealthHandler: healthHandler,
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
