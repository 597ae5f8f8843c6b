package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:",squash"`
	Database  DatabaseConfig  `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	Scheduler SchedulerConfig `mapstructure:",squash"`
	Logging   LoggingConfig   `mapstructure:",squash"`
	Prices    PricesConfig    `mapstructure:",squash"`
	Assistant AssistantConfig `mapstructure:",squash"`
	Health    HealthConfig    `mapstructure:",squash"`
}

type ServerConfig struct {
	Port              string `mapstructure:"SERVER_PORT"`
	Host              string `mapstructure:"SERVER_HOST"`
	Env               string `mapstructure:"ENV"`
	ReadTimeout       string `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout      string `mapstructure:"SERVER_WRITE_TIMEOUT"`
	CORSAllowedOrigin string `mapstructure:"CORS_ALLOWED_ORIGIN"`
}

// DatabaseConfig configures the optional calculation history store.
type DatabaseConfig struct {
	Driver          string `mapstructure:"DATABASE_DRIVER"`
	URL             string `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int    `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime string `mapstructure:"DATABASE_CONN_MAX_LIFETIME"`
}

// RedisConfig configures the shared price cache. An empty host keeps the
// cache in process.
type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SchedulerConfig struct {
	Interval string `mapstructure:"SCHEDULER_INTERVAL"`
	Timezone string `mapstructure:"SCHEDULER_TIMEZONE"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type PricesConfig struct {
	CacheTTL          string `mapstructure:"PRICE_CACHE_TTL"`
	FetchTimeout      string `mapstructure:"PRICE_FETCH_TIMEOUT"`
	Currency          string `mapstructure:"PRICE_CURRENCY"`
	GoldAPIKey        string `mapstructure:"GOLD_API_KEY"`
	FallbackGoldUSD   string `mapstructure:"PRICE_FALLBACK_GOLD_USD"`
	FallbackSilverUSD string `mapstructure:"PRICE_FALLBACK_SILVER_USD"`
	FallbackFXRate    string `mapstructure:"PRICE_FALLBACK_FX_RATE"`
	MetalsLiveURL     string `mapstructure:"METALS_LIVE_URL"`
	GoldAPIURL        string `mapstructure:"GOLD_API_URL"`
	ExchangeRateURL   string `mapstructure:"EXCHANGE_RATE_API_URL"`
}

type AssistantConfig struct {
	APIKey  string `mapstructure:"GEMINI_API_KEY"`
	Model   string `mapstructure:"GEMINI_MODEL"`
	BaseURL string `mapstructure:"GEMINI_BASE_URL"`
	Timeout string `mapstructure:"ASSISTANT_TIMEOUT"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"SERVER_PORT":                "8000",
	"SERVER_HOST":                "0.0.0.0",
	"ENV":                        "development",
	"SERVER_READ_TIMEOUT":        "15s",
	"SERVER_WRITE_TIMEOUT":       "30s",
	"CORS_ALLOWED_ORIGIN":        "http://localhost:5173",
	"DATABASE_DRIVER":            "postgres",
	"DATABASE_URL":               "",
	"DATABASE_MAX_OPEN_CONNS":    10,
	"DATABASE_MAX_IDLE_CONNS":    5,
	"DATABASE_CONN_MAX_LIFETIME": "30m",
	"REDIS_HOST":                 "",
	"REDIS_PORT":                 "6379",
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
	"SCHEDULER_INTERVAL":         "5m",
	"SCHEDULER_TIMEZONE":         "UTC",
	"LOG_LEVEL":                  "info",
	"LOG_FORMAT":                 "json",
	"PRICE_CACHE_TTL":            "5m",
	"PRICE_FETCH_TIMEOUT":        "10s",
	"PRICE_CURRENCY":             "PKR",
	"GOLD_API_KEY":               "",
	"PRICE_FALLBACK_GOLD_USD":    "2650",
	"PRICE_FALLBACK_SILVER_USD":  "31",
	"PRICE_FALLBACK_FX_RATE":     "278",
	"METALS_LIVE_URL":            "https://api.metals.live",
	"GOLD_API_URL":               "https://www.goldapi.io",
	"EXCHANGE_RATE_API_URL":      "https://api.exchangerate-api.com",
	"GEMINI_API_KEY":             "",
	"GEMINI_MODEL":               "gemini-2.5-flash",
	"GEMINI_BASE_URL":            "https://generativelanguage.googleapis.com",
	"ASSISTANT_TIMEOUT":          "30s",
	"HEALTH_CHECK_TIMEOUT":       "5s",
}

// Load reads configuration from defaults, an optional .env file and the
// environment, in increasing priority.
func Load() (*Config, error) {
	// Don't fail if .env file doesn't exist
	_ = godotenv.Load(".env", "./deployments/.env")

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("SERVER_PORT is required")
	}

	if c.Database.URL != "" && c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.Database.Driver)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}

	durations := map[string]string{
		"SERVER_READ_TIMEOUT":        c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":       c.Server.WriteTimeout,
		"DATABASE_CONN_MAX_LIFETIME": c.Database.ConnMaxLifetime,
		"SCHEDULER_INTERVAL":         c.Scheduler.Interval,
		"PRICE_CACHE_TTL":            c.Prices.CacheTTL,
		"PRICE_FETCH_TIMEOUT":        c.Prices.FetchTimeout,
		"ASSISTANT_TIMEOUT":          c.Assistant.Timeout,
		"HEALTH_CHECK_TIMEOUT":       c.Health.Timeout,
	}
	for key, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", key, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be greater than 0", key)
		}
	}

	amounts := map[string]string{
		"PRICE_FALLBACK_GOLD_USD":   c.Prices.FallbackGoldUSD,
		"PRICE_FALLBACK_SILVER_USD": c.Prices.FallbackSilverUSD,
		"PRICE_FALLBACK_FX_RATE":    c.Prices.FallbackFXRate,
	}
	for key, value := range amounts {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("%s must be a valid decimal: %w", key, err)
		}
		if !d.IsPositive() {
			return fmt.Errorf("%s must be greater than 0", key)
		}
	}

	if _, err := c.GetSchedulerLocation(); err != nil {
		return err
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// HistoryEnabled reports whether calculations should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.Database.URL != ""
}

// RedisEnabled reports whether the price cache is shared through redis.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) GetReadTimeout() time.Duration {
	return mustDuration(c.Server.ReadTimeout)
}

func (c *Config) GetWriteTimeout() time.Duration {
	return mustDuration(c.Server.WriteTimeout)
}

func (c *Config) GetConnMaxLifetime() time.Duration {
	return mustDuration(c.Database.ConnMaxLifetime)
}

// GetSchedulerInterval returns the scheduler interval as duration
func (c *Config) GetSchedulerInterval() time.Duration {
	return mustDuration(c.Scheduler.Interval)
}

// GetSchedulerLocation resolves SCHEDULER_TIMEZONE for the cron runner.
func (c *Config) GetSchedulerLocation() (*time.Location, error) {
	location, err := time.LoadLocation(c.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("SCHEDULER_TIMEZONE is not a known location: %w", err)
	}
	return location, nil
}

func (c *Config) GetPriceCacheTTL() time.Duration {
	return mustDuration(c.Prices.CacheTTL)
}

func (c *Config) GetPriceFetchTimeout() time.Duration {
	return mustDuration(c.Prices.FetchTimeout)
}

func (c *Config) GetAssistantTimeout() time.Duration {
	return mustDuration(c.Assistant.Timeout)
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	return mustDuration(c.Health.Timeout)
}

// GetFallbackGold returns the fallback gold price in USD per troy ounce.
func (c *Config) GetFallbackGold() decimal.Decimal {
	return mustDecimal(c.Prices.FallbackGoldUSD)
}

// GetFallbackSilver returns the fallback silver price in USD per troy ounce.
func (c *Config) GetFallbackSilver() decimal.Decimal {
	return mustDecimal(c.Prices.FallbackSilverUSD)
}

func (c *Config) GetFallbackFXRate() decimal.Decimal {
	return mustDecimal(c.Prices.FallbackFXRate)
}

// Values are checked by Validate, so parse errors are not expected here.
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func mustDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
