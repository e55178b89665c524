package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/cyphera/cyphera-circles/docs"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/server"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h, opts, cleanup, err := server.InitializeHandlers(ctx, server.SingleInstance)
	if err != nil {
		log.Fatalf("Failed to initialize API: %v", err)
	}
	defer cleanup()
	defer func() { _ = logger.Sync() }()

	r := server.NewRouter(opts.Stage)
	server.InitializeRoutes(r, h, opts)

	if opts.RateLimiter != nil {
		cleanupDone := make(chan struct{})
		defer close(cleanupDone)
		opts.RateLimiter.StartCleanup(cleanupDone)
	}

	port := opts.Port
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
