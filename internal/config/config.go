// Package config provides configuration management for wafctl using Viper.
package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/wafctl/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "wafctl"

// DefaultAppendixURL is the published framework appendix listing every
// pillar's questions. generate --fetch and verify read from here.
const DefaultAppendixURL = "https://docs.aws.amazon.com/wellarchitected/latest/framework/appendix.html"

// Config represents the top-level configuration structure.
type Config struct {
	Version     int            `mapstructure:"version" yaml:"version"`
	DocsDir     string         `mapstructure:"docs_dir" yaml:"docs_dir"`
	AppendixURL string         `mapstructure:"appendix_url" yaml:"appendix_url"`
	Catalog     string         `mapstructure:"catalog" yaml:"catalog"`
	Registry    RegistryConfig `mapstructure:"registry" yaml:"registry"`
}

// RegistryConfig holds the remote registry connection settings for
// `wafctl registry` commands.
type RegistryConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	Token    string `mapstructure:"token" yaml:"token"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("WAFCTL")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("docs_dir", paths.DefaultDocsDir)
	viper.SetDefault("appendix_url", DefaultAppendixURL)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No config file is fine when searching defaults; a path the
			// user named explicitly must exist.
			if path != "" {
				return nil, errors.Wrapf(err, "reading config file %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrapf(errs[0], "validating config")
	}

	return &cfg, nil
}
