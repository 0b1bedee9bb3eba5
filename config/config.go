// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ik5/trackdeck/pcm"
	"github.com/ik5/trackdeck/player"
	"github.com/ik5/trackdeck/sink"
)

// EnvPrefix is prepended to every environment override, e.g.
// TRACKDECK_AUDIO_BACKEND.
const EnvPrefix = "TRACKDECK"

// Config holds all configuration for the player
type Config struct {
	Audio   AudioConfig   `mapstructure:"audio"`
	Player  PlayerConfig  `mapstructure:"player"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AudioConfig describes the output device and the buffer pool
type AudioConfig struct {
	SampleRate    int    `mapstructure:"sample_rate"`
	Channels      int    `mapstructure:"channels"`
	QuantumFrames int    `mapstructure:"quantum_frames"`
	Buffers       int    `mapstructure:"buffers"`
	Backend       string `mapstructure:"backend"`
}

// PlayerConfig holds transport behaviour
type PlayerConfig struct {
	AutoAdvance bool          `mapstructure:"auto_advance"`
	SeekStep    time.Duration `mapstructure:"seek_step"`
}

// CatalogConfig says where tracks come from. Manifest wins over Dir.
type CatalogConfig struct {
	Manifest string `mapstructure:"manifest"`
	Dir      string `mapstructure:"dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("audio.sample_rate", pcm.CD.SampleRate)
	v.SetDefault("audio.channels", pcm.CD.Channels)
	v.SetDefault("audio.quantum_frames", player.DefaultQuantumFrames)
	v.SetDefault("audio.buffers", player.DefaultBuffers)
	v.SetDefault("audio.backend", sink.BackendOto)
	v.SetDefault("player.auto_advance", false)
	v.SetDefault("player.seek_step", "5s")
	v.SetDefault("catalog.manifest", "")
	v.SetDefault("catalog.dir", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Load reads configuration from cfgFile (or the usual search path when
// empty) and the environment into v. A missing config file is not an error
// unless cfgFile names it explicitly.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}

	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("trackdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.trackdeck")
		v.AddConfigPath("/etc/trackdeck")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Debug("No config file found, using defaults and environment variables")
	} else {
		slog.Debug("Using config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Format is the sink format the configuration asks for.
func (c *Config) Format() pcm.Format {
	return pcm.Format{
		SampleRate: c.Audio.SampleRate,
		Channels:   c.Audio.Channels,
		BitDepth:   16,
	}
}

// Options maps the configuration onto engine options. The decoder registry
// is left for the caller.
func (c *Config) Options() player.Options {
	opts := player.DefaultOptions()
	opts.Format = c.Format()
	opts.QuantumFrames = c.Audio.QuantumFrames
	opts.Buffers = c.Audio.Buffers
	opts.AutoAdvance = c.Player.AutoAdvance
	return opts
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return &ConfigError{Field: "audio.sample_rate", Message: "must be positive"}
	}
	if c.Audio.Channels < 1 || c.Audio.Channels > 2 {
		return &ConfigError{Field: "audio.channels", Message: "must be 1 or 2"}
	}
	if c.Audio.QuantumFrames <= 0 {
		return &ConfigError{Field: "audio.quantum_frames", Message: "must be positive"}
	}
	if c.Audio.Buffers < 2 {
		return &ConfigError{Field: "audio.buffers", Message: "at least 2 buffers are required"}
	}
	if !slices.Contains(sink.Backends(), strings.ToLower(c.Audio.Backend)) {
		return &ConfigError{
			Field:   "audio.backend",
			Message: "must be one of " + strings.Join(sink.Backends(), ", "),
		}
	}
	if c.Player.SeekStep <= 0 {
		return &ConfigError{Field: "player.seek_step", Message: "must be positive"}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "must be debug, info, warn or error"}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be text or json"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
