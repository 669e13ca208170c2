package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"propdash/server/config"
	"propdash/server/internal/api"
	"propdash/server/internal/dashboard"
	"propdash/server/internal/feed"
	"propdash/server/internal/scheduler"
)

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if strings.EqualFold(cfg.Logging.Format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logger.WithError(err).Warn("Invalid LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := newLogger(cfg)
	logger.Infof("Using feed at: %s", cfg.Feed.Source)

	store := dashboard.NewStoreFromConfig(cfg)
	loader := feed.NewLoader(logger, cfg.FeedTimeout(), cfg.Feed.MaxRetries, cfg.RetryDelay())
	refresher := scheduler.NewRefresher(loader, store, cfg.Feed.Source, cfg.RefreshInterval(), logger)

	// An unreachable feed at startup leaves the dashboard empty until the next refresh
	logger.Info("Loading initial property feed...")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := refresher.RefreshNow(ctx); err != nil {
		logger.WithError(err).Error("Initial feed load failed")
	}
	cancel()

	refresher.Start()
	defer refresher.Stop()

	gin.SetMode(gin.ReleaseMode)
	handler := api.NewHandler(store, refresher, logger)
	router := api.NewRouter(handler, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
}
