package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/oddam/donations/pkg/database"
)

// Session store backends.
const (
	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

// minSecretLen is the shortest SESSION_SECRET accepted for signing cookie sessions.
const minSecretLen = 32

// Config holds application configuration loaded from environment.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	I18N     I18NConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string `env:"PORT" envDefault:"8080"`
	ReadTimeout  int    `env:"READ_TIMEOUT_SEC" envDefault:"30"`
	WriteTimeout int    `env:"WRITE_TIMEOUT_SEC" envDefault:"30"`
	StaticDir    string `env:"STATIC_DIR"` // optional; served under /static when set
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"` // if set, used as-is
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"DB_NAME" envDefault:"donations"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxConns       int32 `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns       int32 `env:"DB_MIN_CONNS" envDefault:"0"`
	MaxConnIdleMin int   `env:"DB_MAX_CONN_IDLE_MIN" envDefault:"5"`
}

// RedisConfig holds Redis connection settings. Only used by the redis session store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// SessionConfig holds session cookie and storage settings.
type SessionConfig struct {
	Store        string `env:"SESSION_STORE" envDefault:"cookie"`
	Secret       string `env:"SESSION_SECRET"` // signs cookie sessions; required for the cookie store
	TTLHours     int    `env:"SESSION_TTL_HOURS" envDefault:"336"`
	CookieName   string `env:"SESSION_COOKIE_NAME" envDefault:"sessionid"`
	CookieSecure bool   `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// I18NConfig holds localization settings.
type I18NConfig struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"pl"`
}

// DSN returns the PostgreSQL connection string.
// If DatabaseConfig.URL is set (e.g. DATABASE_URL env), it is used as-is; otherwise built from components.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// Pool returns the connection pool tuning.
func (c DatabaseConfig) Pool() database.PoolOptions {
	return database.PoolOptions{
		MaxConns:        c.MaxConns,
		MinConns:        c.MinConns,
		MaxConnIdleTime: time.Duration(c.MaxConnIdleMin) * time.Minute,
	}
}

// TTL returns the session lifetime.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()      // .env
	_ = godotenv.Load("env") // env (no leading dot)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Session.Store {
	case SessionStoreCookie, SessionStoreRedis:
	default:
		return nil, fmt.Errorf("invalid SESSION_STORE %q", cfg.Session.Store)
	}
	if cfg.Session.Store == SessionStoreCookie && len(cfg.Session.Secret) < minSecretLen {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes with the cookie session store", minSecretLen)
	}
	if cfg.Session.TTLHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	return cfg, nil
}
