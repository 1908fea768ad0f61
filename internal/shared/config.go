package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	ProviderBase  string
	ProviderKey   string
	ProviderRPS   int
	CatalogueWork int
	CacheTTL      time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisDB:       atoi("REDIS_DB", 0),
		RedisPass:     env("REDIS_PASSWORD", ""),
		ProviderBase:  env("LITEAPI_BASE_URL", "https://api.liteapi.travel/v3.0"),
		ProviderKey:   env("LITEAPI_KEY", ""),
		ProviderRPS:   atoi("LITEAPI_RPS", 5),
		CatalogueWork: atoi("CATALOGUE_WORKERS", 8),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 3600)) * time.Second,
	}
	if c.ProviderKey == "" {
		log.Warn().Msg("LITEAPI_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
