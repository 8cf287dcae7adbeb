// Package config loads the benchmark configuration from flags and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/arloliu/codecbench/format"
	"github.com/arloliu/codecbench/internal/pool"
)

// Configuration keys.
const (
	KeyRows       = "rows"
	KeyDir        = "dir"
	KeyCodecs     = "codecs"
	KeyBufferSize = "buffer_size"
	KeyVerify     = "verify"
	KeySeed       = "seed"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
)

// DefaultRows is the number of records generated when none is given.
const DefaultRows = 1_000_000

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every setting of a benchmark run.
type Config struct {
	Rows       int      `mapstructure:"rows"`
	Dir        string   `mapstructure:"dir"`
	Codecs     []string `mapstructure:"codecs"`
	BufferSize int      `mapstructure:"buffer_size"`
	Verify     bool     `mapstructure:"verify"`
	Seed       uint64   `mapstructure:"seed"` // 0 picks a random seed
	LogLevel   string   `mapstructure:"log_level"`
	LogFormat  string   `mapstructure:"log_format"`
}

// DefaultCodecs returns the codec names run when none are selected.
func DefaultCodecs() []string {
	names := make([]string, 0, len(format.DefaultOrder))
	for _, cType := range format.DefaultOrder {
		names = append(names, strings.ToLower(cType.String()))
	}

	return names
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRows, DefaultRows)
	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyCodecs, DefaultCodecs())
	v.SetDefault(KeyBufferSize, pool.DefaultBufferSize)
	v.SetDefault(KeyVerify, false)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the value ranges of every field.
func (c Config) Validate() error {
	if c.Rows < 0 {
		return fmt.Errorf("%w: rows must not be negative, got %d", ErrInvalidConfig, c.Rows)
	}
	if c.Dir == "" {
		return fmt.Errorf("%w: dir must not be empty", ErrInvalidConfig)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("%w: buffer_size must be positive, got %d", ErrInvalidConfig, c.BufferSize)
	}
	if _, err := c.CompressionTypes(); err != nil {
		return err
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format must be console or json, got %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// CompressionTypes parses Codecs in order.
func (c Config) CompressionTypes() ([]format.CompressionType, error) {
	if len(c.Codecs) == 0 {
		return nil, fmt.Errorf("%w: no codecs selected", ErrInvalidConfig)
	}

	types := make([]format.CompressionType, 0, len(c.Codecs))
	for _, name := range c.Codecs {
		cType, err := format.ParseCompressionType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		types = append(types, cType)
	}

	return types, nil
}
