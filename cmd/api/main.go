package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "lite_rates/internal/adapters/http_server"
	"lite_rates/internal/adapters/liteapi"
	"lite_rates/internal/adapters/observability"
	redisad "lite_rates/internal/adapters/redis"
	"lite_rates/internal/app"
	"lite_rates/internal/shared"
)

func main() {
	cfg := shared.Load()

	// global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	client, err := liteapi.New(cfg.ProviderBase, cfg.ProviderKey, cfg.ProviderRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize provider client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewSearchService(client, cache, cfg.CacheTTL, cfg.CatalogueWork)

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
