package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		LogLevel  string `env:"LOG_LEVEL" env-default:"warn"`
		SentryDSN string `env:"SENTRY_DSN"`
	}
	Download struct {
		// Zero disables the deadline.
		Timeout    time.Duration `env:"DOWNLOAD_TIMEOUT" env-default:"0s"`
		BufferSize int           `env:"DOWNLOAD_BUFFER_SIZE" env-default:"81920"`
		UserAgent  string        `env:"DOWNLOAD_USER_AGENT"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New reads the configuration from the environment once per process.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load()
	})
	return cfg, loadErr
}

// Load reads a fresh configuration from the environment.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	if c.Download.BufferSize <= 0 {
		return nil, fmt.Errorf("DOWNLOAD_BUFFER_SIZE must be positive, got %d", c.Download.BufferSize)
	}
	return c, nil
}
