// Package config loads the partner CLI configuration with Viper: a
// partner.yaml next to the binary or under ~/.whizcartt, with defaults
// that work out of the box and WHIZCARTT_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Storage Storage `mapstructure:"storage"`
	Verbose bool    `mapstructure:"verbose"`
}

type Storage struct {
	// Driver selects the storage backend: "file" or "postgres".
	Driver string `mapstructure:"driver"`
	// Path is the JSON storage file used by the file driver.
	Path string `mapstructure:"path"`
	// DSN is the connection string used by the postgres driver.
	DSN string `mapstructure:"dsn"`
}

// Load reads partner.yaml, falling back to defaults when no config file
// exists.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("partner")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".whizcartt"))
	}

	v.SetEnvPrefix("WHIZCARTT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	dataDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".whizcartt")
	}
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", filepath.Join(dataDir, "partner.json"))
	v.SetDefault("storage.dsn", "")
	v.SetDefault("verbose", false)
}
