// Package config loads pqinspect settings from defaults, an optional YAML
// file and PQINSPECT_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vegasq/pqinspect/reader"
	"github.com/vegasq/pqinspect/record"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "PQINSPECT"

// Config holds the settings for a pqinspect run. Keys mirror the
// mapstructure tags, nested with "." in files and "_" in the environment.
type Config struct {
	MaxRows  int    `mapstructure:"max_rows"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`

	Reader struct {
		ReadBufferSize   int  `mapstructure:"read_buffer_size"`
		SkipPageIndex    bool `mapstructure:"skip_page_index"`
		SkipBloomFilters bool `mapstructure:"skip_bloom_filters"`
	} `mapstructure:"reader"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	var cfg Config
	cfg.MaxRows = record.DefaultMaxRows
	cfg.Format = "table"
	cfg.LogLevel = "warn"
	cfg.Reader.SkipPageIndex = true
	cfg.Reader.SkipBloomFilters = true
	return cfg
}

// Load reads the configuration. An empty path skips the config file and
// only applies defaults and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("max_rows", d.MaxRows)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("reader.read_buffer_size", d.Reader.ReadBufferSize)
	v.SetDefault("reader.skip_page_index", d.Reader.SkipPageIndex)
	v.SetDefault("reader.skip_bloom_filters", d.Reader.SkipBloomFilters)
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be positive, got %d", c.MaxRows)
	}
	if c.Reader.ReadBufferSize < 0 {
		return fmt.Errorf("reader.read_buffer_size must be non-negative, got %d", c.Reader.ReadBufferSize)
	}
	return nil
}

// ReaderOptions returns the options passed to reader.Open.
func (c *Config) ReaderOptions() reader.Options {
	return reader.Options{
		ReadBufferSize:   c.Reader.ReadBufferSize,
		SkipPageIndex:    c.Reader.SkipPageIndex,
		SkipBloomFilters: c.Reader.SkipBloomFilters,
	}
}
