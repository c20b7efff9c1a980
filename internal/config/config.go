// Package config provides configuration management for accentd using Viper.
// It supports configuration from files, environment variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jmylchreest/accentd/pkg/accent"
)

// Default configuration values.
const (
	defaultServerPort      = 8080
	defaultServerTimeout   = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 10
	defaultConnMaxIdleTime = 30 * time.Minute
	defaultCSSMaxAge       = 5 * time.Minute
	defaultNativeAccent    = "#2271b1"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Accent   AccentConfig   `mapstructure:"accent"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite, postgres, mysql
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	LogLevel        string        `mapstructure:"log_level"` // silent, error, warn, info
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level          string `mapstructure:"level"`  // debug, info, warn, error
	Format         string `mapstructure:"format"` // json, text
	AddSource      bool   `mapstructure:"add_source"`
	TimeFormat     string `mapstructure:"time_format"`
	RequestLogging bool   `mapstructure:"request_logging"`
}

// AccentConfig holds the host-specific constants of the palette engine.
type AccentConfig struct {
	// VariablePrefix prefixes every CSS custom property written (e.g. "--accentd").
	VariablePrefix string `mapstructure:"variable_prefix"`
	// HostVariable is the host application's own accent property.
	HostVariable string `mapstructure:"host_variable"`
	// NativeAccent is the literal end of the fallback chain and the snapshot
	// used when the host value cannot be read.
	NativeAccent      string        `mapstructure:"native_accent"`
	TintFallback      string        `mapstructure:"tint_fallback"`
	ContrastThreshold float64       `mapstructure:"contrast_threshold"`
	DefaultPreset     string        `mapstructure:"default_preset"`
	CSSMaxAge         time.Duration `mapstructure:"css_max_age"`
}

// Load reads configuration from file and environment variables.
// Environment variables take precedence over file configuration.
// Environment variables are prefixed with ACCENTD_ and use underscores for nesting.
// Example: ACCENTD_SERVER_PORT=8080.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/accentd")
		v.AddConfigPath("$HOME/.accentd")
	}

	v.SetEnvPrefix("ACCENTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper unmarshals and validates configuration already loaded into v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.read_timeout", defaultServerTimeout)
	v.SetDefault("server.write_timeout", defaultServerTimeout)
	v.SetDefault("server.shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("server.cors_origins", []string{"*"})

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "accentd.db")
	v.SetDefault("database.max_open_conns", defaultMaxOpenConns)
	v.SetDefault("database.max_idle_conns", defaultMaxIdleConns)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.conn_max_idle_time", defaultConnMaxIdleTime)
	v.SetDefault("database.log_level", "warn")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.add_source", false)
	v.SetDefault("logging.time_format", time.RFC3339)
	v.SetDefault("logging.request_logging", true)

	// Accent defaults
	v.SetDefault("accent.variable_prefix", accent.DefaultVariablePrefix)
	v.SetDefault("accent.host_variable", accent.DefaultHostVariable)
	v.SetDefault("accent.native_accent", defaultNativeAccent)
	v.SetDefault("accent.tint_fallback", string(accent.DefaultTintFallback))
	v.SetDefault("accent.contrast_threshold", accent.DefaultContrastThreshold)
	v.SetDefault("accent.default_preset", accent.InheritKey)
	v.SetDefault("accent.css_max_age", defaultCSSMaxAge)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	// Server validation
	const maxPort = 65535
	if c.Server.Port < 1 || c.Server.Port > maxPort {
		return fmt.Errorf("server.port must be between 1 and %d", maxPort)
	}

	// Database validation
	validDrivers := map[string]bool{"sqlite": true, "postgres": true, "mysql": true}
	if !validDrivers[c.Database.Driver] {
		return fmt.Errorf("database.driver must be one of: sqlite, postgres, mysql")
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	validDBLevels := map[string]bool{"": true, "silent": true, "error": true, "warn": true, "info": true}
	if !validDBLevels[c.Database.LogLevel] {
		return fmt.Errorf("database.log_level must be one of: silent, error, warn, info")
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns must not be negative")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return c.Accent.Validate()
}

// Validate checks the accent section.
func (a *AccentConfig) Validate() error {
	if a.VariablePrefix != "" && strings.Trim(a.VariablePrefix, "-") == "" {
		return fmt.Errorf("accent.variable_prefix must contain a name")
	}
	if strings.ContainsAny(a.VariablePrefix, " :;{}()") {
		return fmt.Errorf("accent.variable_prefix contains invalid characters")
	}
	if a.HostVariable != "" && !strings.HasPrefix(a.HostVariable, "--") {
		return fmt.Errorf("accent.host_variable must start with --")
	}
	if !accent.IsValidHex(a.NativeAccent) {
		return fmt.Errorf("accent.native_accent must be a #rgb or #rrggbb color")
	}
	if !accent.IsValidHex(a.TintFallback) {
		return fmt.Errorf("accent.tint_fallback must be a #rgb or #rrggbb color")
	}
	if a.ContrastThreshold <= 0 || a.ContrastThreshold >= 1 {
		return fmt.Errorf("accent.contrast_threshold must be between 0 and 1 (exclusive)")
	}
	if a.DefaultPreset != "" {
		if _, ok := accent.LookupPreset(a.DefaultPreset); !ok {
			return fmt.Errorf("accent.default_preset %q is not a known preset", a.DefaultPreset)
		}
	}
	if a.CSSMaxAge < 0 {
		return fmt.Errorf("accent.css_max_age must not be negative")
	}
	return nil
}

// Engine builds the palette engine described by the accent section.
func (a *AccentConfig) Engine() (*accent.Engine, error) {
	return accent.NewEngine(
		accent.WithContrastThreshold(a.ContrastThreshold),
		accent.WithTintFallback(accent.Normalize(a.TintFallback)),
	)
}

// Names returns the plugin variable names.
func (a *AccentConfig) Names() accent.Names {
	return accent.NewNames(a.VariablePrefix)
}

// HostNames returns the host variable family.
func (a *AccentConfig) HostNames() accent.HostNames {
	return accent.NewHostNames(a.HostVariable)
}

// Native returns the configured native accent in canonical form.
func (a *AccentConfig) Native() accent.HexColor {
	if h := accent.Normalize(a.NativeAccent); h != "" {
		return h
	}
	return defaultNativeAccent
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
