// Package main - entry point for the Moverz quote funnel server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"moverz/adapters/ban"
	"moverz/adapters/osrm"
	"moverz/api"
	"moverz/core/pricing"
	"moverz/core/routing"
	"moverz/core/tariff"
	"moverz/internal/cache"
	"moverz/internal/config"
	"moverz/internal/logging"
	"moverz/internal/metrics"
	"moverz/internal/store"
)

const version = "1.0.0"

// routingStats forwards resolver events to prometheus.
type routingStats struct {
	reg *metrics.Registry
}

func (s routingStats) CacheHit()  { s.reg.RoutingCacheHits.Inc() }
func (s routingStats) CacheMiss() { s.reg.RoutingCacheMisses.Inc() }
func (s routingStats) Fallback()  { s.reg.RoutingFallbacks.Inc() }

func main() {
	cfgPath := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	t := tariff.Default()
	if cfg.Tariff.Path != "" {
		loaded, err := tariff.LoadHCL(cfg.Tariff.Path)
		if err != nil {
			logging.Fatal("load tariff", zap.Error(err))
		}
		t = loaded
	}
	engine := pricing.NewEngine(t)

	st, err := store.Open(cfg.Store.DatabasePath)
	if err != nil {
		logging.Fatal("open lead store", zap.Error(err))
	}
	defer st.Close()
	if err := st.Migrate(cfg.Store.MigrationsDir); err != nil {
		logging.Fatal("migrate lead store", zap.Error(err))
	}

	reg := metrics.NewRegistry()

	var distanceCache cache.Cache
	switch cfg.Routing.CacheBackend {
	case "redis":
		distanceCache = cache.NewRedis(cfg.Routing.RedisAddr)
	default:
		distanceCache = cache.NewMemory()
	}
	resolver := routing.NewCachedResolver(
		osrm.NewClient(cfg.Routing.OSRMBaseURL),
		distanceCache,
		cfg.Routing.CoordinatePrecision,
		routingStats{reg: reg},
	)

	geocoder := ban.NewClient(cfg.Geocoding.BaseURL)

	server := api.NewServer(engine, resolver, geocoder, st, reg, version)

	logging.Info("server starting",
		zap.String("addr", cfg.Server.Addr),
		zap.String("tariff_version", t.Version))

	if err := http.ListenAndServe(cfg.Server.Addr, server.Routes()); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
