// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-faster/errors"
)

// Config aggregates everything the server needs at startup. All values come
// from the environment; a .env file is honoured in development.
type Config struct {
	Addr     string
	DB       DBConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	CacheTTL time.Duration
}

// DBConfig describes the PostgreSQL connection.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// RedisConfig describes the cache connection.
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// SMTPConfig describes the mail transport used for OTP delivery.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// AdminConfig is the single fixed administrator credential pair. The password
// is stored as a bcrypt digest, never as plaintext.
type AdminConfig struct {
	Username       string
	PasswordDigest string
	TokenSecret    string
	TokenTTL       time.Duration
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Addr: getenv("ADDR", ":8080"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "shopdb"),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "no-reply@shopcore.local"),
			Timeout:  getenvDuration("SMTP_TIMEOUT", 10*time.Second),
		},
		Admin: AdminConfig{
			Username:       getenv("ADMIN_USERNAME", "admin"),
			PasswordDigest: os.Getenv("ADMIN_PASSWORD_DIGEST"),
			TokenSecret:    os.Getenv("SECRET_KEY"),
			TokenTTL:       getenvDuration("ADMIN_TOKEN_TTL", time.Hour),
		},
		CacheTTL: getenvDuration("CACHE_TTL", 5*time.Minute),
	}

	if cfg.Admin.TokenSecret == "" {
		return nil, errors.New("SECRET_KEY is required")
	}
	if cfg.Admin.PasswordDigest == "" {
		return nil, errors.New("ADMIN_PASSWORD_DIGEST is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
