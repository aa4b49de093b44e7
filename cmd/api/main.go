package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/mealshare/internal/auth"
	"github.com/geocoder89/mealshare/internal/cache"
	"github.com/geocoder89/mealshare/internal/config"
	"github.com/geocoder89/mealshare/internal/db"
	httpx "github.com/geocoder89/mealshare/internal/http"
	"github.com/geocoder89/mealshare/internal/observability"
	"github.com/geocoder89/mealshare/internal/payments"
	"github.com/geocoder89/mealshare/internal/repo/mongodb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load the config set up
	cfg, err := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	if err != nil {
		log.Error("config invalid", "err", err)
		os.Exit(1)
	}

	shutdownTracer, err := observability.InitTracer(context.Background(), observability.ServiceName, cfg.Env, cfg.OTLPEndpoint)
	if err != nil {
		log.Error("tracer init failed", "err", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom := observability.NewProm(reg)

	// document store
	client, err := db.NewClient(cfg.MongoURI)
	if err != nil {
		log.Error("store connect failed", "err", err)
		os.Exit(1)
	}
	store := mongodb.NewStore(client, cfg.DBName, prom)

	ctx, cancel := config.WithTimeout(10 * time.Second)
	if err := store.EnsureIndexes(ctx); err != nil {
		// existing duplicate emails block the unique index; the existence
		// check in create still applies
		log.Warn("ensure indexes failed", "err", err)
	}
	if err := db.EnsureAdminUser(ctx, store.Users, cfg.AdminEmail, log); err != nil {
		log.Error("admin seed failed", "err", err)
	}
	cancel()

	var (
		packageCache cache.Cache = cache.NewMemory(cfg.CacheTTL)
		redisCache   *cache.Redis
	)
	if cfg.RedisAddr != "" {
		redisCache = cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})

		pctx, pcancel := config.WithTimeout(2 * time.Second)
		if err := redisCache.Ping(pctx); err != nil {
			log.Warn("redis unreachable, cache calls will fall through to the store", "addr", cfg.RedisAddr, "err", err)
		}
		pcancel()

		packageCache = redisCache
	}

	bridge := payments.NewBridge(payments.NewStripeCreator(cfg.StripeSecretKey), prom)

	// set up routers with the log
	router := httpx.NewRouter(log, cfg, httpx.Deps{
		Tokens:       auth.NewManager(cfg.Secret, cfg.TokenTTL),
		Users:        store.Users,
		Meals:        store.Meals,
		Upcoming:     store.Upcoming,
		Reviews:      store.Reviews,
		MealRequests: store.MealRequests,
		About:        store.About,
		Packages:     store.Packages,
		Payments:     bridge,
		Cache:        packageCache,
		Prom:         prom,
		Gatherer:     reg,
		Ping:         store.Ping,
	})

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}

		if err := store.Close(ctx); err != nil {
			log.Error("store close failed", "err", err)
		}

		if redisCache != nil {
			if err := redisCache.Close(); err != nil {
				log.Error("redis close failed", "err", err)
			}
		}

		if err := shutdownTracer(ctx); err != nil {
			log.Error("tracer shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
