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

	"flightfinder/cfg"
	"flightfinder/internal/flight"
	"flightfinder/pkg/cache"
	"flightfinder/pkg/flightclient"
	"flightfinder/pkg/idgen"
	"flightfinder/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           Flight Finder API
// @version         1.0
// @description     Session-scoped flight search over the Sky Scrapper API.
// @BasePath        /
// @schemes         http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	if config.Observability.Enabled {
		shutdownOtel, err := initOtel(ctx, &config.Observability, zlogger)
		if err != nil {
			zlogger.Warn("continuing without tracing/metrics", logger.Err(err))
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownOtel(ctx); err != nil {
					zlogger.Error("failed to shutdown opentelemetry", logger.Err(err))
				}
			}()
		}
	}

	// ============
	// ID generator
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.NodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: config.SkyScrapper.Timeout,
	}
	skyClient := flightclient.NewSkyScrapperClient(httpClient, flightclient.Config{
		BaseURL:           config.SkyScrapper.BaseURL,
		Host:              config.SkyScrapper.Host,
		APIKey:            config.SkyScrapper.APIKey,
		RequestsPerSecond: config.SkyScrapper.RequestsPerSecond,
		Burst:             config.SkyScrapper.Burst,
	}, zlogger)

	// ============
	// Cache
	// ============
	var lookup flight.AirportLookup = skyClient
	if config.LookupCacheEnabled {
		redisAddr := config.Redis.Host + ":" + config.Redis.Port
		redis := cache.NewRedisCache(redisAddr, config.Redis.Password)
		defer redis.Close()

		if err := redis.Ping(ctx); err != nil {
			zlogger.Warn("redis unreachable, lookups will not be cached until it recovers", logger.Err(err))
		}
		lookup = flight.NewCachedAirportLookup(skyClient, redis, config.CacheTTLMinutes, zlogger)
	}

	// ============
	// Internal Service
	// ============
	resolver := flight.NewAirportResolver(lookup, config.Search.Locale, zlogger)
	pipeline := flight.NewPipeline(resolver, skyClient, ids, config.Search.Currency, config.Search.Market, zlogger)
	sessions := flight.NewSessionStore(func() *flight.Session {
		return flight.NewSession(pipeline, zlogger)
	}, ids, flight.DefaultSessionIdle, zlogger)
	go sessions.Run(ctx, time.Minute)

	flightHandler := flight.NewFlightHandler(sessions, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := newRouter(config, flightHandler, zlogger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.AppPort),
		Handler: r,
	}

	go func() {
		zlogger.Info("http server listening", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlogger.Error("http server stopped", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("failed to shutdown http server", logger.Err(err))
	}
}
