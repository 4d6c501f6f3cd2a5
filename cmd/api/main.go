package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/di"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/middleware"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/router"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/server"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/config"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// @title DocSpace Sharing API
// @version 1.0
// @description 共有リンクと実効アクセス解決の REST API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Setup(logger.DefaultConfig())
		logger.Error(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// Logger setup
	logger.Setup(logger.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Server.Debug,
	})

	// Initialize DI Container
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	handlers := di.NewHandlers(container)
	middlewares := di.NewMiddlewares(container)

	// Setup Server
	serverConfig := server.DefaultConfig()
	serverConfig.Port = cfg.Server.Port
	serverConfig.Debug = cfg.Server.Debug
	srv := server.NewServer(serverConfig)
	e := srv.Echo()

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	if middlewares.HTTPRecorder != nil {
		e.Use(middleware.Metrics(middlewares.HTTPRecorder))
	}
	e.Use(middleware.Recover())
	e.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.Sharing.SecureCookies)))
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig(cfg.Security.CORSOrigins)))

	// Setup Router
	router.NewRouter(e, handlers, middlewares).Setup()

	// Start background workers
	workerMgr := di.NewWorkerManager(container)
	workerMgr.Start(ctx)

	// Start server
	logger.Info(ctx, "starting server", "addr", srv.Address(), "backend", cfg.Storage.Backend)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down server...")
	if err := workerMgr.Shutdown(10 * time.Second); err != nil {
		logger.Warn(ctx, "worker shutdown error", "error", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error(ctx, "server shutdown error", "error", err)
	}
	logger.Info(ctx, "server stopped")
}
