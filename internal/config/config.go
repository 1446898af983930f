package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr = ":8080"
	defaultAPITimeout = 10 * time.Second
	defaultCacheTTL   = 60 * time.Second
)

// Provider exposes the application configuration to the rest of the code.
// Components depend on this interface rather than on *Config so tests can
// supply their own values.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetTokenSecret() string
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	GetCacheTTL() time.Duration
	GetStaticDir() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	AppBaseURL    string
	SessionSecret string
	APIBaseURL    string
	APITimeout    time.Duration
	TokenSecret   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	StaticDir     string
}

// New loads configuration from the environment (and a .env file, if present)
// and exits the process when required values are missing.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:    envOr("SERVER_ADDR", defaultServerAddr),
		AppBaseURL:    os.Getenv("APP_BASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		APIBaseURL:    strings.TrimRight(strings.TrimSpace(os.Getenv("BITLANCE_API_URL")), "/"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		StaticDir:     strings.TrimSpace(os.Getenv("STATIC_DIR")),
	}

	var missing []string
	if cfg.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if cfg.APIBaseURL == "" {
		missing = append(missing, "BITLANCE_API_URL")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var errs []error
	var err error
	if cfg.APITimeout, err = durationEnv("API_TIMEOUT", defaultAPITimeout); err != nil {
		errs = append(errs, err)
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", defaultCacheTTL); err != nil {
		errs = append(errs, err)
	}
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		if cfg.RedisDB, err = strconv.Atoi(raw); err != nil {
			errs = append(errs, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err))
		}
	}
	if cfg.AppBaseURL == "" {
		cfg.AppBaseURL = "http://localhost" + cfg.ServerAddr
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return fallback, nil
	}
	return d, nil
}

func (c *Config) GetServerAddr() string        { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string        { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetAPIBaseURL() string        { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetTokenSecret() string       { return c.TokenSecret }
func (c *Config) GetRedisAddr() string         { return c.RedisAddr }
func (c *Config) GetRedisPassword() string     { return c.RedisPassword }
func (c *Config) GetRedisDB() int              { return c.RedisDB }
func (c *Config) GetCacheTTL() time.Duration   { return c.CacheTTL }
func (c *Config) GetStaticDir() string         { return c.StaticDir }
