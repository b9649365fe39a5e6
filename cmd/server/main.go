package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spawn-scheduler/internal/platform/config"
	"spawn-scheduler/internal/platform/logger"
	"spawn-scheduler/internal/platform/metrics"
	"spawn-scheduler/internal/schedules"
	"spawn-scheduler/internal/spawn"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	cfg := config.LoadServer(schedules.DefaultCapacity)

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	repo := schedules.NewInMemoryRepository(cfg.MaxSchedules)
	svc := schedules.NewService(repo)
	met := metrics.New()
	h := schedules.NewHandler(svc, log, met)

	if cfg.PlanFile != "" {
		pf, err := spawn.LoadPlans(cfg.PlanFile)
		if err != nil {
			log.Error("plan file load failed", "path", cfg.PlanFile, "error", err)
			os.Exit(1)
		}
		loaded, err := svc.Preload(pf, log)
		if err != nil {
			log.Warn("some plans were rejected", "path", cfg.PlanFile, "error", err)
		}
		log.Info("plans preloaded", "path", cfg.PlanFile, "loaded", loaded, "total", len(pf.Plans))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		met.Handler(func() { met.SetStoredSchedules(repo.Count()) }).ServeHTTP(w, r)
	})
	h.Routes(r)

	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", cfg.Port,
		"max_schedules", cfg.MaxSchedules,
		"plan_file", cfg.PlanFile,
		"log_level", cfg.LogLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
