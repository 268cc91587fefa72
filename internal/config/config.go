// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Layout() LayoutConfig
	Render() RenderConfig
	Inspect() InspectConfig
	SetInspectConfig(ic InspectConfig)
}

// Config holds the entire application configuration. It uses private
// fields to enforce access through the Interface's getter methods.
type Config struct {
	logger LoggerConfig
	layout LayoutConfig
	render RenderConfig
	// inspect gets its marching orders from CLI flags, not the config file.
	inspect InspectConfig
}

var _ Interface = (*Config)(nil)

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig   { return c.logger }
func (c *Config) Layout() LayoutConfig   { return c.layout }
func (c *Config) Render() RenderConfig   { return c.render }
func (c *Config) Inspect() InspectConfig { return c.inspect }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetInspectConfig(ic InspectConfig) { c.inspect = ic }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// LayoutConfig tunes text measurement and the layout viewport.
type LayoutConfig struct {
	// CharWidth and LineHeight are the monospace metrics used to size
	// box content, in app units.
	CharWidth  int `mapstructure:"char_width" yaml:"char_width"`
	LineHeight int `mapstructure:"line_height" yaml:"line_height"`
	// TextPadding is added on each side of measured content.
	TextPadding int `mapstructure:"text_padding" yaml:"text_padding"`
	// ViewportWidth and ViewportHeight bound the layout pass. Zero
	// sizes the viewport to the document's preferred extent.
	ViewportWidth  int `mapstructure:"viewport_width" yaml:"viewport_width"`
	ViewportHeight int `mapstructure:"viewport_height" yaml:"viewport_height"`
}

// Validate checks the layout metrics.
func (l *LayoutConfig) Validate() error {
	if l.CharWidth <= 0 {
		return fmt.Errorf("layout.char_width must be a positive integer")
	}
	if l.LineHeight <= 0 {
		return fmt.Errorf("layout.line_height must be a positive integer")
	}
	if l.TextPadding < 0 {
		return fmt.Errorf("layout.text_padding must not be negative")
	}
	if l.ViewportWidth < 0 || l.ViewportHeight < 0 {
		return fmt.Errorf("layout.viewport dimensions must not be negative")
	}
	return nil
}

// RenderConfig holds settings for the SVG renderer.
type RenderConfig struct {
	Scale   float64 `mapstructure:"scale" yaml:"scale"`
	Padding float64 `mapstructure:"padding" yaml:"padding"`
}

// Validate checks the renderer settings.
func (r *RenderConfig) Validate() error {
	if r.Scale <= 0 {
		return fmt.Errorf("render.scale must be greater than 0")
	}
	if r.Padding < 0 {
		return fmt.Errorf("render.padding must not be negative")
	}
	return nil
}

// InspectConfig holds settings populated from CLI flags for a specific
// inspection job.
type InspectConfig struct {
	Targets     []string
	Output      string
	Format      string
	Concurrency int
}

// fileConfig mirrors Config with exported fields so viper can unmarshal
// into it.
type fileConfig struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	cfg, err := NewConfigFromViper(v)
	if err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to build default config: %v", err))
	}
	return cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "boxgrid")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Layout --
	v.SetDefault("layout.char_width", 7)
	v.SetDefault("layout.line_height", 18)
	v.SetDefault("layout.text_padding", 6)
	v.SetDefault("layout.viewport_width", 0)
	v.SetDefault("layout.viewport_height", 0)

	// -- Render --
	v.SetDefault("render.scale", 1.0)
	v.SetDefault("render.padding", 4.0)
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var raw fileConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg := &Config{
		logger: raw.Logger,
		layout: raw.Layout,
		render: raw.Render,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := c.layout.Validate(); err != nil {
		return fmt.Errorf("layout configuration invalid: %w", err)
	}
	if err := c.render.Validate(); err != nil {
		return fmt.Errorf("render configuration invalid: %w", err)
	}
	return nil
}
