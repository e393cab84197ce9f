package envutil

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"

	"github.com/getsentry/scopeprof/internal/report"
)

// Config is read from the environment.
type Config struct {
	Enabled  bool   `env:"SCOPEPROF_ENABLED" env-default:"true" env-description:"record scopes; when false, scopes and summaries are no-ops"`
	Format   string `env:"SCOPEPROF_FORMAT" env-default:"text" env-description:"summary format: text, json or speedscope"`
	Color    bool   `env:"SCOPEPROF_COLOR" env-default:"true" env-description:"colorize the text summary"`
	LogLevel string `env:"SCOPEPROF_LOG_LEVEL" env-default:"warn" env-description:"zerolog level"`

	Environment string `env:"SENTRY_ENVIRONMENT" env-default:"development" env-description:"sentry environment"`
	SentryDSN   string `env:"SENTRY_DSN" env-description:"sentry DSN; violations are only sent when set"`
}

// Default returns the configuration used when the environment can't be read.
func Default() Config {
	return Config{
		Enabled:     true,
		Format:      report.FormatText.String(),
		Color:       true,
		LogLevel:    zerolog.WarnLevel.String(),
		Environment: "development",
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("envutil: reading configuration: %w", err)
	}
	if _, err := cfg.ReportFormat(); err != nil {
		return Config{}, fmt.Errorf("envutil: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, fmt.Errorf("envutil: %w", err)
	}
	return cfg, nil
}

func (c Config) ReportFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}

func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

// Description lists the environment variables understood by Load.
func Description() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
