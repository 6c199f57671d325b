package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the fully resolved runtime configuration. Values come from
// config.toml, BOOKS_ environment variables, and built-in defaults, in
// increasing order of precedence for the env layer.
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Accounting AccountingConfig
	RateCache  RateCacheConfig
}

// AppConfig identifies the process and where it listens.
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig describes the Postgres connection and its pool limits.
// Lifetime values are minutes.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

// RedisConfig describes the Redis connection used by the rate cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LogConfig controls log level, encoding, and destination.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or a file path
}

// HTTPConfig holds server timeouts, request limits, and CORS policy.
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// AccountingConfig holds bookkeeping settings shared by every tenant.
type AccountingConfig struct {
	BaseCurrency string
}

// RateCacheConfig selects the exchange rate cache backend and entry TTL.
type RateCacheConfig struct {
	Backend string // memory, redis
	TTL     time.Duration
}

// Load reads config.toml from the working directory or /app, overlays
// BOOKS_ environment variables (BOOKS_DATABASE_PASSWORD overrides
// database.password), fills defaults, and validates the result. A missing
// config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("BOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App:        loadApp(v),
		Database:   loadDatabase(v),
		Redis:      loadRedis(v),
		Log:        loadLog(v),
		HTTP:       loadHTTP(v),
		Accounting: AccountingConfig{BaseCurrency: v.GetString("accounting.base_currency")},
		RateCache: RateCacheConfig{
			Backend: v.GetString("rate_cache.backend"),
			TTL:     v.GetDuration("rate_cache.ttl"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadApp(v *viper.Viper) AppConfig {
	return AppConfig{
		Name: v.GetString("app.name"),
		Env:  v.GetString("app.env"),
		Port: v.GetString("app.port"),
	}
}

func loadDatabase(v *viper.Viper) DatabaseConfig {
	return DatabaseConfig{
		Host:            v.GetString("database.host"),
		Port:            v.GetInt("database.port"),
		User:            v.GetString("database.user"),
		Password:        v.GetString("database.password"),
		DBName:          v.GetString("database.dbname"),
		SSLMode:         v.GetString("database.sslmode"),
		MaxOpenConns:    v.GetInt("database.max_open_conns"),
		MaxIdleConns:    v.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
		ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
	}
}

func loadRedis(v *viper.Viper) RedisConfig {
	return RedisConfig{
		Host:     v.GetString("redis.host"),
		Port:     v.GetInt("redis.port"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func loadLog(v *viper.Viper) LogConfig {
	return LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
		Output: v.GetString("log.output"),
	}
}

func loadHTTP(v *viper.Viper) HTTPConfig {
	return HTTPConfig{
		ReadTimeout:      v.GetDuration("http.read_timeout"),
		WriteTimeout:     v.GetDuration("http.write_timeout"),
		IdleTimeout:      v.GetDuration("http.idle_timeout"),
		MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
		MaxBodySize:      v.GetInt64("http.max_body_size"),
		CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
		CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
		TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
	}
}

func str(target *string, fallback string) {
	if *target == "" {
		*target = fallback
	}
}

func num(target *int, fallback int) {
	if *target == 0 {
		*target = fallback
	}
}

func dur(target *time.Duration, fallback time.Duration) {
	if *target == 0 {
		*target = fallback
	}
}

// applyDefaults fills every zero-valued field with its default. CORS origins
// deliberately have no fallback: an empty list means cross-origin requests
// stay blocked until the operator names origins.
func applyDefaults(cfg *Config) {
	str(&cfg.App.Name, "yourbooksuit")
	str(&cfg.App.Env, "development")
	str(&cfg.App.Port, "8080")

	str(&cfg.Database.Host, "localhost")
	num(&cfg.Database.Port, 5432)
	str(&cfg.Database.User, "postgres")
	str(&cfg.Database.DBName, "yourbooksuit")
	str(&cfg.Database.SSLMode, "disable")
	num(&cfg.Database.MaxOpenConns, 25)
	num(&cfg.Database.MaxIdleConns, 5)
	num(&cfg.Database.ConnMaxLifetime, 60)
	num(&cfg.Database.ConnMaxIdleTime, 30)

	str(&cfg.Redis.Host, "localhost")
	num(&cfg.Redis.Port, 6379)

	str(&cfg.Log.Level, "info")
	str(&cfg.Log.Format, "console")
	str(&cfg.Log.Output, "stdout")

	dur(&cfg.HTTP.ReadTimeout, 15*time.Second)
	dur(&cfg.HTTP.WriteTimeout, 15*time.Second)
	dur(&cfg.HTTP.IdleTimeout, 60*time.Second)
	num(&cfg.HTTP.MaxHeaderBytes, 1<<20)
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 10 << 20
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID", "X-Tenant-ID"}
	}

	str(&cfg.Accounting.BaseCurrency, "UGX")
	str(&cfg.RateCache.Backend, "memory")
	dur(&cfg.RateCache.TTL, time.Hour)
}

func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if len(c.Accounting.BaseCurrency) != 3 {
		return fmt.Errorf("accounting.base_currency must be a 3-letter ISO code, got %q", c.Accounting.BaseCurrency)
	}

	switch c.RateCache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("rate_cache.backend must be 'memory' or 'redis', got %q", c.RateCache.Backend)
	}

	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// DSN returns a postgres URL with user and password escaped.
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Addr returns the Redis address in host:port form.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
