package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "development")
	t.Setenv("RAPIDAPI_KEY", "secret")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", config.AppEnv)
	assert.Equal(t, "8080", config.AppPort)
	assert.Equal(t, int64(1), config.NodeID)
	assert.Equal(t, "secret", config.SkyScrapper.APIKey)
	assert.Equal(t, "https://sky-scrapper.p.rapidapi.com", config.SkyScrapper.BaseURL)
	assert.Equal(t, "sky-scrapper.p.rapidapi.com", config.SkyScrapper.Host)
	assert.Equal(t, 15*time.Second, config.SkyScrapper.Timeout)
	assert.Equal(t, "USD", config.Search.Currency)
	assert.Equal(t, "en-US", config.Search.Market)
	assert.Equal(t, "en-US", config.Search.Locale)
	assert.False(t, config.LookupCacheEnabled)
	assert.False(t, config.Observability.Enabled)
	assert.Equal(t, "development", config.Observability.Environment)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("RAPIDAPI_KEY", "secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SKYSCRAPPER_BASE_URL", "http://localhost:8081")
	t.Setenv("UPSTREAM_RPS", "2.5")
	t.Setenv("LOOKUP_CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL_MINUTES", "3")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.AppPort)
	assert.Equal(t, "http://localhost:8081", config.SkyScrapper.BaseURL)
	assert.Equal(t, 2.5, config.SkyScrapper.RequestsPerSecond)
	assert.True(t, config.LookupCacheEnabled)
	assert.Equal(t, 3, config.CacheTTLMinutes)
}

func TestLoad_CollectsAllErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "")
	t.Setenv("RAPIDAPI_KEY", "")
	t.Setenv("UPSTREAM_BURST", "many")

	config, err := Load()
	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "missing env: APP_ENV")
	assert.Contains(t, err.Error(), "missing env: RAPIDAPI_KEY")
	assert.Contains(t, err.Error(), "conversion failed env: UPSTREAM_BURST")
}
