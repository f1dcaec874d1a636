package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "campus_market", cfg.Database.Database)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.Equal(t, "none", cfg.SMS.Provider)
	assert.Equal(t, time.Minute, cfg.Redis.DefaultTTL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGODB_DATABASE", "market_test")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("JWT_ADMIN_TOKEN_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "market_test", cfg.Database.Database)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Security.JWTAdminTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
}

func TestIsProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "a-real-deployment-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.App.IsProduction())

	assert.False(t, (&AppConfig{Environment: "development"}).IsProduction())
}

func TestLoad_ProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	for _, secret := range []string{"", defaultJWTSecret} {
		t.Setenv("JWT_SECRET", secret)
		cfg, err := Load()
		assert.Error(t, err, "secret %q", secret)
		assert.Nil(t, cfg)
	}
}

func TestLoad_DevelopmentAllowsDefaultJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultJWTSecret, cfg.Security.JWTSecret)
}
