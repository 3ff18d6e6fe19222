package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr             string
	DatabaseURL      string
	JWTSecret        string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	PageSize         int
	CloudinaryURL    string
	UploadDir        string
	CORSAllowOrigins string
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can inject values.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:             withDefault(getenv("APP_ADDR"), ":8080"),
		DatabaseURL:      getenv("DATABASE_URL"),
		JWTSecret:        getenv("JWT_SECRET"),
		CloudinaryURL:    getenv("CLOUDINARY_URL"),
		UploadDir:        withDefault(getenv("UPLOAD_DIR"), "./uploads"),
		CORSAllowOrigins: withDefault(getenv("CORS_ALLOW_ORIGINS"), "*"),
	}

	var err error
	if cfg.AccessTokenTTL, err = time.ParseDuration(withDefault(getenv("ACCESS_TOKEN_TTL"), "24h")); err != nil {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL: %w", err)
	}
	if cfg.RefreshTokenTTL, err = time.ParseDuration(withDefault(getenv("REFRESH_TOKEN_TTL"), "720h")); err != nil {
		return Config{}, fmt.Errorf("REFRESH_TOKEN_TTL: %w", err)
	}
	if cfg.PageSize, err = strconv.Atoi(withDefault(getenv("PAGE_SIZE"), "5")); err != nil || cfg.PageSize < 1 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be a positive integer")
	}
	return cfg, nil
}

// Validate checks the settings every command needs. The database URL is
// optional only when running on the in-memory store.
func (c Config) Validate(inMemory bool) error {
	var problems []string
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is not set")
	}
	if !inMemory && c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is not set")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
