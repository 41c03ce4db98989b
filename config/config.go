package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the game library client
type Config struct {
	CatalogURL    string        `env:"CATALOG_URL" envDefault:"https://game-library-api-a0uf.onrender.com"`
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT" envDefault:"0s"` // 0 leaves remote calls unbounded
	ListenAddr    string        `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"text"`
	JWTSecret     string        `env:"JWT_SECRET"` // empty disables auth on write routes
	TraceExporter string        `env:"TRACE_EXPORTER" envDefault:"none"`
	RateLimit     RateLimitConfig
}

// Load reads an optional .env file, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CatalogURL == "" {
		return nil, errors.New("CATALOG_URL must not be empty")
	}
	return &cfg, nil
}

// Logger builds the process logger from LOG_LEVEL and LOG_FORMAT
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
