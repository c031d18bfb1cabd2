package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// SkyScrapperConfig points at the RapidAPI flight-search upstream.
type SkyScrapperConfig struct {
	BaseURL           string
	Host              string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// SearchConfig holds the request constants the user never controls.
type SearchConfig struct {
	Locale   string
	Market   string
	Currency string
}

type ObservabilityConfig struct {
	Enabled      bool
	ServiceName  string
	Environment  string
	OTLPEndpoint string
}

type Config struct {
	AppEnv             string
	AppPort            string
	NodeID             int64
	SkyScrapper        SkyScrapperConfig
	Search             SearchConfig
	LookupCacheEnabled bool
	Redis              RedisConfig
	CacheTTLMinutes    int
	Observability      ObservabilityConfig
}

func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	apiKey := mustEnv("RAPIDAPI_KEY", &errs)

	timeoutSeconds := intEnv("UPSTREAM_TIMEOUT_SECONDS", 15, &errs)
	rps := floatEnv("UPSTREAM_RPS", 5, &errs)
	burst := intEnv("UPSTREAM_BURST", 10, &errs)
	nodeID := intEnv("NODE_ID", 1, &errs)
	cacheTTLMinutes := intEnv("CACHE_TTL_MINUTES", 10, &errs)
	lookupCache := boolEnv("LOOKUP_CACHE_ENABLED", false, &errs)
	otelEnabled := boolEnv("OTEL_ENABLED", false, &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: envOr("APP_PORT", "8080"),
		NodeID:  int64(nodeID),
		SkyScrapper: SkyScrapperConfig{
			BaseURL:           envOr("SKYSCRAPPER_BASE_URL", "https://sky-scrapper.p.rapidapi.com"),
			Host:              envOr("SKYSCRAPPER_HOST", "sky-scrapper.p.rapidapi.com"),
			APIKey:            apiKey,
			Timeout:           time.Duration(timeoutSeconds) * time.Second,
			RequestsPerSecond: rps,
			Burst:             burst,
		},
		Search: SearchConfig{
			Locale:   envOr("SEARCH_LOCALE", "en-US"),
			Market:   envOr("SEARCH_MARKET", "en-US"),
			Currency: envOr("SEARCH_CURRENCY", "USD"),
		},
		LookupCacheEnabled: lookupCache,
		Redis: RedisConfig{
			Host:     envOr("REDIS_HOST", "localhost"),
			Port:     envOr("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		CacheTTLMinutes: cacheTTLMinutes,
		Observability: ObservabilityConfig{
			Enabled:      otelEnabled,
			ServiceName:  envOr("OTEL_SERVICE_NAME", "flightfinder"),
			Environment:  appEnv,
			OTLPEndpoint: envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		},
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return f
}

func boolEnv(key string, fallback bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return b
}
