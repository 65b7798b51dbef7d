package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/uplifthq/uplift/core"
	"github.com/uplifthq/uplift/modules/surveys"
	"github.com/uplifthq/uplift/modules/users"
	"github.com/uplifthq/uplift/pkg/config"
	"github.com/uplifthq/uplift/pkg/httpserver"
	"github.com/uplifthq/uplift/pkg/logger"
	"github.com/uplifthq/uplift/pkg/pg"
	"github.com/uplifthq/uplift/pkg/principal"
	"github.com/uplifthq/uplift/pkg/redis"
	"github.com/uplifthq/uplift/pkg/requestid"
	"github.com/uplifthq/uplift/pkg/tenant"
	"github.com/uplifthq/uplift/pkg/tenantscope"
	"github.com/uplifthq/uplift/store"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	HTTP  httpserver.Config
	DB    pg.Config
	Redis redis.Config
}

func main() {
	if err := run(); err != nil {
		slog.Error("service exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "uplift"),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			tenantscope.LoggerExtractor(),
			principal.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	// The pool is the process-wide storage handle: acquired once here,
	// released once on every exit path via this defer. Losing it
	// mid-process is fatal by design; the platform restarts us.
	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.DB, log); err != nil {
		return err
	}

	st := store.New(pool)

	probes := []func(context.Context) error{pg.Healthcheck(pool)}

	var tenantCache tenant.Cache
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		tenantCache = tenant.NewRedisCache(client)
		probes = append(probes, redis.Healthcheck(client))
	} else {
		tenantCache = tenant.NewMemoryCache()
	}
	tenants := tenant.NewDirectory(st, tenantCache, tenant.DefaultCacheTTL)
	defer func() { _ = tenants.Close() }()

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(core.Recoverer(log))
	r.Use(principal.Middleware(principal.NewHeaderExtractor()))
	r.Use(tenantscope.Guard(
		tenantscope.WithLogger(log),
		tenantscope.WithSkipPaths("/health"),
	))

	r.Get("/health", httpserver.HealthCheckHandler(log, probes...))
	r.Mount("/users", users.Router(users.NewHandler(st, log)))
	r.Mount("/surveys", surveys.Router(surveys.NewHandler(st, tenants, log)))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
