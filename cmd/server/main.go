package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	app "github.com/Shyamnatesan/Simple-Collaborative-Editor/internal/app"
	httpx "github.com/Shyamnatesan/Simple-Collaborative-Editor/internal/http"
	ws "github.com/Shyamnatesan/Simple-Collaborative-Editor/internal/ws"
)

func main() {
	// Load local .env (dev only)
	_ = godotenv.Load()

	cfg := app.LoadConfig()
	logger := app.NewLogger(cfg.Env)

	// Cancel on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Room registry, empty at process start
	registry := ws.NewRegistry(logger)

	// Optional redis bus for cross-instance fanout
	var bus *ws.RedisBus
	if cfg.RedisAddr != "" {
		var err error
		bus, err = ws.NewRedisBus(ctx, cfg, logger)
		if err != nil {
			logger.Error("redis connect", "err", err)
			log.Fatal(err)
		}
		defer bus.Close()
	}

	// WebSocket hub
	hub := ws.NewHub(logger, registry, bus, cfg.SendTimeout)
	go hub.Run(ctx)

	// HTTP + WS router
	router := httpx.NewRouter(hub, registry)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("server.listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server.crash", "err", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("server.shutdown.start")

	// shutdown
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)

	logger.Info("server.shutdown.complete")
	_ = os.Stdout.Sync()
}
