// Package config loads process configuration from the environment, an
// optional env file and command-line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/rezonia/intrari-furnizori/internal/client"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "INTRARI"

// Config keys.
const (
	KeyHost           = "host"
	KeyPort           = "port"
	KeyConnectTimeout = "connect_timeout"
	KeyLogLevel       = "log_level"
	KeyServeAddress   = "serve_address"
)

// Config holds the settings of one run. Every field maps to an
// INTRARI_<KEY> environment variable.
type Config struct {
	// Receiving server
	Host           string        `mapstructure:"host" validate:"required"`
	Port           int           `mapstructure:"port" validate:"min=1,max=65535"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"gt=0"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`

	// Stand-in receiver
	ServeAddress string `mapstructure:"serve_address" validate:"required"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyHost, "localhost")
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyConnectTimeout, client.DefaultConnectTimeout)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyServeAddress, ":8080")
}

// Load reads the configuration held by v. Flags must already be bound. When
// v has a config file set it is read and must exist. File keys may be written
// bare (HOST) or with the environment prefix (INTRARI_HOST); the prefixed
// form wins when a file has both. Flags and the environment override the file.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := v.MergeConfigMap(unprefixed(v)); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// unprefixed maps INTRARI_-prefixed file keys onto the bare keys.
func unprefixed(v *viper.Viper) map[string]any {
	prefix := strings.ToLower(EnvPrefix) + "_"
	out := map[string]any{}
	for _, k := range v.AllKeys() {
		if key, ok := strings.CutPrefix(k, prefix); ok {
			out[key] = v.Get(k)
		}
	}
	return out
}

// Endpoint returns the submission URL of the configured receiving server.
func (c *Config) Endpoint() string {
	return client.Endpoint(c.Host, c.Port)
}
