// Command server runs the case management API. main wires configuration,
// storage, auth and the HTTP router; every rule lives in internal packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/auth"
	"github.com/daxp472/CMS/internal/handler"
	"github.com/daxp472/CMS/internal/platform/config"
	"github.com/daxp472/CMS/internal/platform/httpserver"
	"github.com/daxp472/CMS/internal/platform/logger"
	"github.com/daxp472/CMS/internal/platform/metrics"
	platformpg "github.com/daxp472/CMS/internal/platform/postgres"
	platformredis "github.com/daxp472/CMS/internal/platform/redis"
	"github.com/daxp472/CMS/internal/service"
	"github.com/daxp472/CMS/internal/store/memory"
	storepg "github.com/daxp472/CMS/internal/store/postgres"
	"github.com/daxp472/CMS/internal/store/seed"
)

const jwtIssuer = "cms"

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx := context.Background()

	var (
		store     service.Store
		tx        service.Tx
		seedStore seed.Store
		userStore auth.UserStore
	)
	if cfg.DatabaseURL != "" {
		db, err := platformpg.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := storepg.New(db)
		store = pg
		tx = platformpg.NewRunner(db)
		seedStore = pg
		userStore = pg
		log.Info("using postgres store")
	} else {
		mem := memory.New()
		store = mem
		tx = mem
		seedStore = mem
		userStore = mem
		log.Info("using in-memory store; set DATABASE_URL for persistence")
	}

	if cfg.SeedDevData {
		if err := seed.Apply(ctx, seedStore); err != nil {
			log.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		log.Info("development data seeded")
	}

	var revocation auth.RevocationList = auth.NewMemoryRevocationList()
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		revocation = auth.NewRedisRevocationList(redisClient.Client)
		log.Info("using redis token revocation list")
	}

	jwtSvc := auth.NewJWTService(cfg.JWTSigningKey, jwtIssuer, cfg.TokenTTL)
	authSvc := auth.NewService(userStore, jwtSvc, revocation, log)

	svc := service.New(service.Deps{
		Store:    store,
		Tx:       tx,
		Recorder: audit.NewRecorder(store),
		Metrics:  m,
		Logger:   log,
	})

	h := handler.New(svc, authSvc, log, m)
	srv := httpserver.New(cfg.Addr, h.Routes())

	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
