package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/api"
	"github.com/Kauesamartino/WorksafeApp/internal/config"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger, err := internal.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := storage.NewMemoryRepository()
	if _, err := api.SeedDemo(ctx, repo, time.Now()); err != nil {
		logger.Fatalf("failed to seed demo data: %v", err)
	}
	app := api.NewMemoryApp(repo, logger)

	srv := &http.Server{
		Addr:              cfg.FakeAPIAddr,
		Handler:           api.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Infof("fake API listening on %s (login %s/%s)", cfg.FakeAPIAddr, api.DemoUsername, api.DemoPassword)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
	logger.Infof("fake API stopped")
}
