// Package config defines the application configuration and loads it from a
// YAML file, the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/goal-planner/pkg/constants"
	"github.com/iwvelando/goal-planner/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for goal-planner.
type Configuration struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
	Console ConsoleConfig `mapstructure:"console" yaml:"console,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// ServerConfig defines runtime parameters for the HTTP server.
type ServerConfig struct {
	Address         string        `mapstructure:"address" yaml:"address"`
	MaxBodySize     string        `mapstructure:"maxBodySize" yaml:"maxBodySize"`
	AllowedOrigins  []string      `mapstructure:"allowedOrigins" yaml:"allowedOrigins,omitempty"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
	bodySizeBytes   int64
}

// ConsoleConfig holds options for the interactive console.
type ConsoleConfig struct {
	Currency string `mapstructure:"currency" yaml:"currency,omitempty"`
}

// BodySizeBytes returns the configured request body limit in bytes.
func (s *ServerConfig) BodySizeBytes() int64 {
	return s.bodySizeBytes
}

// SetBodySizeBytes overrides the configured request body limit.
func (s *ServerConfig) SetBodySizeBytes(size int64) {
	if size > 0 {
		s.bodySizeBytes = size
		s.MaxBodySize = fmt.Sprintf("%d", size)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.maxBodySize", fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes))
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.shutdownTimeout", time.Duration(constants.DefaultShutdownTimeoutSeconds)*time.Second)
	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("console.currency", constants.DefaultCurrency)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults. Every key can be
// overridden from the environment, e.g. GOAL_PLANNER_SERVER_ADDRESS.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.normalize(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func (c *Configuration) normalize() error {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = time.Duration(constants.DefaultShutdownTimeoutSeconds) * time.Second
	}

	size, err := ParseSize(c.Server.MaxBodySize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxBodySizeBytes
	}
	c.Server.bodySizeBytes = size

	if c.Logging.Level != "" {
		if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
			return err
		}
	}
	if c.Logging.Format != "" {
		if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
			return err
		}
	}

	c.Console.Currency = strings.TrimSpace(c.Console.Currency)
	return nil
}
