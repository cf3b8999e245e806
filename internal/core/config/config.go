// Package config provides configuration management for the wherec tool.
package config

import (
	"fmt"
)

// Config holds tool-wide settings for the library and code generation.
type Config struct {
	DBURL         string // template library database URL
	DefaultTarget string // generation target when --target is omitted
	Table         string // SQL table / SAS input dataset name
	Frame         string // R / pandas data frame name
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		DBURL:         "sqlite://wherec.db",
		DefaultTarget: "sql",
		Table:         "t",
		Frame:         "df",
	}
}

// Validate checks target membership and non-empty identifiers.
func (c *Config) Validate() error {
	switch c.DefaultTarget {
	case "sas", "r", "python", "sql":
	default:
		return fmt.Errorf("default_target must be one of sas, r, python, sql; got %q", c.DefaultTarget)
	}
	if c.DBURL == "" {
		return fmt.Errorf("db_url must not be empty")
	}
	if c.Table == "" {
		return fmt.Errorf("table must not be empty")
	}
	if c.Frame == "" {
		return fmt.Errorf("frame must not be empty")
	}
	return nil
}
