package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
// Environment variables use the WC_ prefix (WC_LIBRARY_DB_URL, ...).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults matching Default()
	v.SetDefault("library.db_url", "sqlite://wherec.db")
	v.SetDefault("generate.default_target", "sql")
	v.SetDefault("generate.table", "t")
	v.SetDefault("generate.frame", "df")

	v.SetEnvPrefix("WC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		DBURL:         v.GetString("library.db_url"),
		DefaultTarget: v.GetString("generate.default_target"),
		Table:         v.GetString("generate.table"),
		Frame:         v.GetString("generate.frame"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
