package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App           *AppConfig           `yaml:"app"`
	Log           *LogConfig           `yaml:"log"`
	Database      *DatabaseConfig      `yaml:"database"`
	Redis         *RedisConfig         `yaml:"redis"`
	SMTP          *SMTPConfig          `yaml:"smtp"`
	SMS           *SMSConfig           `yaml:"sms"`
	Storage       *StorageConfig       `yaml:"storage"`
	Security      *SecurityConfig      `yaml:"security"`
	Notifications *NotificationsConfig `yaml:"notifications"`
}

type AppConfig struct {
	Name           string        `yaml:"name"`
	Version        string        `yaml:"version"`
	Environment    string        `yaml:"environment"`
	Port           int           `yaml:"port"`
	Host           string        `yaml:"host"`
	BaseURL        string        `yaml:"base_url"`
	Debug          bool          `yaml:"debug"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	AuditFile  string `yaml:"audit_file"`
	TimeFormat string `yaml:"time_format"`
	Caller     bool   `yaml:"caller"`
}

// defaultJWTSecret only serves local development; Load rejects it in production.
const defaultJWTSecret = "change-me-in-production"

type SecurityConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"`
	JWTAdminTokenTTL   time.Duration `yaml:"jwt_admin_token_ttl"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	TrustedProxies     []string      `yaml:"trusted_proxies"`
}

type NotificationsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	AdminEmail   string `yaml:"admin_email"`
	RiderPageURL string `yaml:"rider_page_url"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		App:           loadAppConfig(),
		Log:           loadLogConfig(),
		Database:      loadDatabaseConfig(),
		Redis:         loadRedisConfig(),
		SMTP:          loadSMTPConfig(),
		SMS:           loadSMSConfig(),
		Storage:       loadStorageConfig(),
		Security:      loadSecurityConfig(),
		Notifications: loadNotificationsConfig(),
	}

	if config.App.IsProduction() && (config.Security.JWTSecret == "" || config.Security.JWTSecret == defaultJWTSecret) {
		return nil, errors.New("JWT_SECRET must be set in production")
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:           getEnv("APP_NAME", "CampusMarket"),
		Version:        getEnv("APP_VERSION", "1.0.0"),
		Environment:    getEnv("APP_ENV", "development"),
		Port:           getEnvAsInt("APP_PORT", 8080),
		Host:           getEnv("APP_HOST", "0.0.0.0"),
		BaseURL:        getEnv("APP_BASE_URL", "http://localhost:8080"),
		Debug:          getEnvAsBool("APP_DEBUG", true),
		RequestTimeout: getEnvAsDuration("APP_REQUEST_TIMEOUT", 15*time.Second),
	}
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		Format:     getEnv("LOG_FORMAT", "json"),
		Output:     getEnv("LOG_OUTPUT", "stdout"),
		AuditFile:  getEnv("LOG_AUDIT_FILE", "stdout"),
		TimeFormat: getEnv("LOG_TIME_FORMAT", time.RFC3339),
		Caller:     getEnvAsBool("LOG_CALLER", false),
	}
}

func loadSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
		JWTAdminTokenTTL:   getEnvAsDuration("JWT_ADMIN_TOKEN_TTL", 12*time.Hour),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
	}
}

func loadNotificationsConfig() *NotificationsConfig {
	return &NotificationsConfig{
		Enabled:      getEnvAsBool("NOTIFICATIONS_ENABLED", false),
		AdminEmail:   getEnv("NOTIFICATIONS_ADMIN_EMAIL", ""),
		RiderPageURL: getEnv("NOTIFICATIONS_RIDER_PAGE_URL", "http://localhost:3000/rider"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}
