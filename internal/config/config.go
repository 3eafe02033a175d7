package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"demandcast/internal/validator"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Auth       AuthConfig
	S3         S3Config
	Log        LogConfig
	CORS       CORSConfig
	Queue      QueueConfig
	Cache      CacheConfig
	Forecast   ForecastConfig
	Validation ValidationConfig
	Email      EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// AuthConfig holds session token signing and admin access settings. Session
// tokens are always issued on upload; RequireSessionToken controls whether
// the session endpoints demand one back (off by default, matching the open
// contract of the original API).
type AuthConfig struct {
	Secret              string        `mapstructure:"secret"`
	SessionExpiry       time.Duration `mapstructure:"session_expiry"`
	Issuer              string        `mapstructure:"issuer"`
	AdminKeyHash        string        `mapstructure:"admin_key_hash"`
	RequireSessionToken bool          `mapstructure:"require_session_token"`
}

// S3Config holds object storage settings for uploaded file archives.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// MaxFileSizeBytes returns the upload size cap in bytes.
func (s *S3Config) MaxFileSizeBytes() int64 {
	return s.MaxFileSizeMB * 1024 * 1024
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// QueueConfig holds forecast queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	Concurrency      int `mapstructure:"concurrency"`
}

// PollInterval returns the worker poll cadence as a duration.
func (q *QueueConfig) PollInterval() time.Duration {
	return time.Duration(q.PollIntervalSecs) * time.Second
}

// CacheConfig holds results cache settings. Backend "memory" keeps results
// in-process; "redis" shares them across instances.
type CacheConfig struct {
	Backend  string        `mapstructure:"backend"`
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ForecastConfig holds model comparison and extrapolation settings.
type ForecastConfig struct {
	DefaultPeriods int `mapstructure:"default_periods"`
	TopResults     int `mapstructure:"top_results"`
}

// ValidationConfig holds dataset size bounds. Demand value bounds are fixed
// product rules and not configurable.
type ValidationConfig struct {
	MinRows int `mapstructure:"min_rows"`
	MaxRows int `mapstructure:"max_rows"`
}

// RuleSet builds the validation engine rule set from the configured bounds.
func (v *ValidationConfig) RuleSet() validator.RuleSet {
	rules := validator.DefaultRuleSet()
	if v.MinRows > 0 {
		rules.MinRows = v.MinRows
	}
	if v.MaxRows > 0 {
		rules.MaxRows = v.MaxRows
	}
	return rules
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// Load reads configuration from environment variables with the DEMANDCAST_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEMANDCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "demandcast")
	v.SetDefault("db.password", "demandcast_secret")
	v.SetDefault("db.name", "demandcast_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Auth defaults
	v.SetDefault("auth.secret", "change-me-in-production")
	v.SetDefault("auth.session_expiry", "24h")
	v.SetDefault("auth.issuer", "demandcast")
	v.SetDefault("auth.admin_key_hash", "")
	v.SetDefault("auth.require_session_token", false)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "demandcast-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 5)
	v.SetDefault("queue.concurrency", 4)

	// Cache defaults
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	v.SetDefault("cache.ttl", "24h")

	// Forecast defaults
	v.SetDefault("forecast.default_periods", 12)
	v.SetDefault("forecast.top_results", 10)

	// Validation defaults
	v.SetDefault("validation.min_rows", 12)
	v.SetDefault("validation.max_rows", 120)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@demandcast.app")
	v.SetDefault("email.from_name", "DemandCast")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "DEMANDCAST_SERVER_PORT",
		"server.read_timeout":        "DEMANDCAST_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "DEMANDCAST_SERVER_WRITE_TIMEOUT",
		"server.environment":         "DEMANDCAST_SERVER_ENVIRONMENT",
		"db.host":                    "DEMANDCAST_DB_HOST",
		"db.port":                    "DEMANDCAST_DB_PORT",
		"db.user":                    "DEMANDCAST_DB_USER",
		"db.password":                "DEMANDCAST_DB_PASSWORD",
		"db.name":                    "DEMANDCAST_DB_NAME",
		"db.sslmode":                 "DEMANDCAST_DB_SSLMODE",
		"db.max_open":                "DEMANDCAST_DB_MAX_OPEN",
		"db.max_idle":                "DEMANDCAST_DB_MAX_IDLE",
		"auth.secret":                "DEMANDCAST_AUTH_SECRET",
		"auth.session_expiry":        "DEMANDCAST_AUTH_SESSION_EXPIRY",
		"auth.issuer":                "DEMANDCAST_AUTH_ISSUER",
		"auth.admin_key_hash":        "DEMANDCAST_AUTH_ADMIN_KEY_HASH",
		"auth.require_session_token": "DEMANDCAST_AUTH_REQUIRE_SESSION_TOKEN",
		"s3.region":                  "DEMANDCAST_S3_REGION",
		"s3.bucket":                  "DEMANDCAST_S3_BUCKET",
		"s3.endpoint":                "DEMANDCAST_S3_ENDPOINT",
		"s3.access_key":              "DEMANDCAST_S3_ACCESS_KEY",
		"s3.secret_key":              "DEMANDCAST_S3_SECRET_KEY",
		"s3.max_file_size_mb":        "DEMANDCAST_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":          "DEMANDCAST_S3_PRESIGN_EXPIRY",
		"log.level":                  "DEMANDCAST_LOG_LEVEL",
		"log.format":                 "DEMANDCAST_LOG_FORMAT",
		"cors.allowed_origins":       "DEMANDCAST_CORS_ALLOWED_ORIGINS",
		"queue.poll_interval_secs":   "DEMANDCAST_QUEUE_POLL_INTERVAL_SECS",
		"queue.concurrency":          "DEMANDCAST_QUEUE_CONCURRENCY",
		"cache.backend":              "DEMANDCAST_CACHE_BACKEND",
		"cache.redis_url":            "DEMANDCAST_CACHE_REDIS_URL",
		"cache.ttl":                  "DEMANDCAST_CACHE_TTL",
		"forecast.default_periods":   "DEMANDCAST_FORECAST_DEFAULT_PERIODS",
		"forecast.top_results":       "DEMANDCAST_FORECAST_TOP_RESULTS",
		"validation.min_rows":        "DEMANDCAST_VALIDATION_MIN_ROWS",
		"validation.max_rows":        "DEMANDCAST_VALIDATION_MAX_ROWS",
		"email.provider":             "DEMANDCAST_EMAIL_PROVIDER",
		"email.region":               "DEMANDCAST_EMAIL_REGION",
		"email.from_address":         "DEMANDCAST_EMAIL_FROM_ADDRESS",
		"email.from_name":            "DEMANDCAST_EMAIL_FROM_NAME",
		"email.frontend_url":         "DEMANDCAST_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DEMANDCAST_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DEMANDCAST_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Auth = AuthConfig{
		Secret:              v.GetString("auth.secret"),
		SessionExpiry:       v.GetDuration("auth.session_expiry"),
		Issuer:              v.GetString("auth.issuer"),
		AdminKeyHash:        v.GetString("auth.admin_key_hash"),
		RequireSessionToken: v.GetBool("auth.require_session_token"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}
	cfg.Cache = CacheConfig{
		Backend:  v.GetString("cache.backend"),
		RedisURL: v.GetString("cache.redis_url"),
		TTL:      v.GetDuration("cache.ttl"),
	}
	cfg.Forecast = ForecastConfig{
		DefaultPeriods: v.GetInt("forecast.default_periods"),
		TopResults:     v.GetInt("forecast.top_results"),
	}
	cfg.Validation = ValidationConfig{
		MinRows: v.GetInt("validation.min_rows"),
		MaxRows: v.GetInt("validation.max_rows"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}
