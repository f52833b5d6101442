// Package config loads client settings from defaults, a YAML file and
// COURIER_* environment variables, in increasing priority.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dyaksa/courier"
	"github.com/dyaksa/courier/client"
	"github.com/dyaksa/courier/locale"
)

const EnvPrefix = "COURIER_"

type Config struct {
	BaseURL         string            `koanf:"base_url" validate:"required,url"`
	Language        string            `koanf:"language" validate:"omitempty,oneof=en ka sv"`
	Timeout         time.Duration     `koanf:"timeout" validate:"gte=0"`
	Headers         map[string]string `koanf:"headers"`
	ClientVersion   string            `koanf:"client_version"`
	RequestIDHeader string            `koanf:"request_id_header"`
	Tracing         bool              `koanf:"tracing"`
	// Token is sent as a static bearer token when set.
	Token     string `koanf:"token"`
	LogLevel  string `koanf:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogPretty bool   `koanf:"log_pretty"`
}

// Load reads the configuration. path may be empty; a named file that cannot
// be read is an error.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final layer of values, keyed like the
// YAML file, that win over every other source.
func LoadWithOverrides(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", path)
		}
	}

	if err := k.Load(envprovider.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment variables")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"language":  string(locale.Default),
		"timeout":   client.DefaultTimeout.String(),
		"tracing":   false,
		"log_level": "info",
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}

var validate = validator.New()

func Validate(cfg *Config) error {
	return validate.Struct(cfg)
}

// Logger builds the diagnostics logger described by LogLevel and LogPretty.
func (c *Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if c.LogPretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// ClientConfig maps the loaded settings onto a client.Config. Callers still
// own Auth when no static token is configured.
func (c *Config) ClientConfig() client.Config {
	log := c.Logger()

	cfg := client.Config{
		BaseURL:         c.BaseURL,
		Language:        locale.Language(c.Language),
		Timeout:         c.Timeout,
		Headers:         c.Headers,
		ClientVersion:   c.ClientVersion,
		RequestIDHeader: c.RequestIDHeader,
		Tracing:         c.Tracing,
		Logger:          &log,
		Plugins:         []courier.Plugin{courier.NewLogger(log)},
	}

	if c.Token != "" {
		cfg.Auth = courier.StaticToken(c.Token)
	}

	return cfg
}
