package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"proplink/internal/platform/config"
	"proplink/internal/platform/httpserver"
	"proplink/internal/platform/logger"
	platformmetrics "proplink/internal/platform/metrics"
	platformredis "proplink/internal/platform/redis"
	rlmetrics "proplink/internal/ratelimit/metrics"
	rlservice "proplink/internal/ratelimit/service"
	"proplink/internal/ratelimit/store/window"
	"proplink/internal/registry/cache"
	"proplink/internal/registry/crossref"
	"proplink/internal/registry/dataset"
	"proplink/internal/registry/handler"
	"proplink/internal/registry/merge"
	registrymetrics "proplink/internal/registry/metrics"
	"proplink/internal/registry/orchestrator"
	"proplink/internal/registry/providers"
	"proplink/internal/registry/sources"
	"proplink/pkg/platform/circuit"
	"proplink/pkg/platform/middleware/metadata"
	"proplink/pkg/platform/middleware/request"
	"proplink/pkg/platform/middleware/requesttime"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

type sweeper interface {
	StartSweeper(ctx context.Context, interval time.Duration) error
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	store, cacheSweeper, err := buildCache(cfg, redisClient, log)
	if err != nil {
		return err
	}

	limiter, err := rlservice.New(window.NewInMemoryWindowStore(),
		rlservice.WithLogger(log),
		rlservice.WithMetrics(rlmetrics.New()),
	)
	if err != nil {
		return err
	}

	data := dataset.Default()
	resolver, err := crossref.NewResolver(data, crossref.DefaultClasses())
	if err != nil {
		return err
	}
	engine, err := merge.New(resolver, data, merge.WithLogger(log))
	if err != nil {
		return err
	}

	var latency providers.Latency = providers.NoLatency{}
	if cfg.SimulateLatency {
		latency = providers.RandomLatency{}
	}

	regMetrics := registrymetrics.New()
	configs := sources.DefaultRegistry()
	portals, err := providers.NewDefaultRegistry(configs, data, resolver,
		providers.WithCache(store, cfg.Cache.SourceTTL),
		providers.WithRateLimiter(limiter),
		providers.WithLatency(latency),
		providers.WithBreaker(circuit.WithFailureThreshold(5), circuit.WithCooldown(30*time.Second)),
		providers.WithLogger(log),
		providers.WithMetrics(regMetrics),
	)
	if err != nil {
		return err
	}

	unifiedCfg := configs.Unified()
	unifiedCfg.CacheTTL = cfg.Cache.UnifiedTTL

	var (
		upstreams []orchestrator.Portal
		served    []handler.Portal
	)
	for _, p := range portals.All() {
		upstreams = append(upstreams, p)
		served = append(served, p)
	}
	orch, err := orchestrator.New(upstreams, engine, resolver, unifiedCfg,
		orchestrator.WithCache(store),
		orchestrator.WithLogger(log),
		orchestrator.WithMetrics(regMetrics),
	)
	if err != nil {
		return err
	}

	api := handler.New(served, orch, store,
		handler.WithLogger(log),
		handler.WithVersion(cfg.Version),
	)

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Recoverer)
	r.Use(platformmetrics.New().Middleware)
	api.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	g, gctx := errgroup.WithContext(ctx)
	if cacheSweeper != nil {
		g.Go(func() error { return ignoreCancel(cacheSweeper.StartSweeper(gctx, cfg.Cache.SweepInterval)) })
	}
	g.Go(func() error { return ignoreCancel(limiter.StartSweeper(gctx, cfg.RateLimit.SweepInterval)) })
	g.Go(func() error {
		log.Info("starting proplink",
			"addr", cfg.Addr,
			"environment", cfg.Environment,
			"version", cfg.Version,
			"simulate_latency", cfg.SimulateLatency,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// buildCache selects Redis when a URL is configured and the in-process LRU
// otherwise. Only the in-process store needs a sweeper.
func buildCache(cfg config.Server, client *platformredis.Client, log *slog.Logger) (cache.Store, sweeper, error) {
	if client != nil {
		store, err := cache.NewRedisStore(client)
		if err != nil {
			return nil, nil, err
		}
		log.Info("response cache backed by redis")
		return store, nil, nil
	}
	store, err := cache.NewMemoryStore(cfg.Cache.Capacity, cache.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return store, store, nil
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
