package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Address         string
	UpstreamURL     string
	UpstreamTimeout time.Duration
	LogLevel        string
}

func New() *Config {
	return &Config{
		Address:         "localhost:8080",
		UpstreamURL:     "https://www.sgtranslatetogether.gov.sg/api/translate",
		UpstreamTimeout: 10 * time.Second,
		LogLevel:        "info",
	}
}

// LoadDotEnv подгружает переменные окружения из файлов (по умолчанию .env).
// Отсутствие файла не является ошибкой: переменные могут прийти из окружения.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func ParseEnv(config *Config) error {
	if Address := os.Getenv("SERVER_ADDRESS"); Address != "" {
		config.Address = Address
	}
	if UpstreamURL := os.Getenv("UPSTREAM_URL"); UpstreamURL != "" {
		config.UpstreamURL = UpstreamURL
	}
	if UpstreamTimeout := os.Getenv("UPSTREAM_TIMEOUT"); UpstreamTimeout != "" {
		timeout, err := time.ParseDuration(UpstreamTimeout)
		if err != nil {
			return fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", UpstreamTimeout, err)
		}
		config.UpstreamTimeout = timeout
	}
	if LogLevel := os.Getenv("LOG_LEVEL"); LogLevel != "" {
		config.LogLevel = LogLevel
	}
	return nil
}

// Validate проверяет итоговую конфигурацию перед запуском сервера.
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("config: server address is required")
	}

	parsed, err := url.ParseRequestURI(c.UpstreamURL)
	if err != nil {
		return fmt.Errorf("config: invalid upstream url %q: %w", c.UpstreamURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid upstream url %q: scheme or host is missing", c.UpstreamURL)
	}

	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("config: upstream timeout must be positive, got %s", c.UpstreamTimeout)
	}

	return nil
}
