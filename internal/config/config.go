package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlenaMolokova/cardform/internal/constants"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddr         string        `env:"RUN_ADDRESS"`
	JWTSecret       string        `env:"JWT_SECRET"`
	IconBaseURL     string        `env:"ICON_BASE_URL"`
	LogLevel        string        `env:"LOG_LEVEL"`
	Env             string        `env:"ENV"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()
	return Parse(os.Args[1:])
}

// Parse applies defaults, then command-line flags, then environment
// variables. The environment wins.
func Parse(args []string) (*Config, error) {
	cfg := &Config{
		RunAddr:         constants.DefaultRunAddr,
		IconBaseURL:     constants.DefaultIconBaseURL,
		LogLevel:        constants.DefaultLogLevel,
		Env:             constants.EnvDev,
		ShutdownTimeout: constants.DefaultShutdownTimeout,
	}

	fs := flag.NewFlagSet("cardform", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	fs.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "JWT secret, empty disables auth")
	fs.StringVar(&cfg.IconBaseURL, "i", cfg.IconBaseURL, "base URL of brand icons")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.ShutdownTimeout, "t", cfg.ShutdownTimeout, "graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	cfg.RunAddr = strings.TrimSpace(cfg.RunAddr)
	cfg.IconBaseURL = strings.TrimRight(strings.TrimSpace(cfg.IconBaseURL), "/")

	if cfg.RunAddr == "" {
		return nil, errors.New("RUN_ADDRESS is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return cfg, nil
}

func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
