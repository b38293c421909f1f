package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case SourceCSV:
		if strings.TrimSpace(c.Catalog.MoviesCSV) == "" {
			defaultPath, err := DefaultConfigPath()
			if err != nil {
				defaultPath = defaultConfigPath
			}
			return fmt.Errorf("catalog.movies_csv is required. Set CINEPICK_MOVIES_CSV or edit %s (create with 'cinepick config init')", defaultPath)
		}
	case SourceSQLite:
		if strings.TrimSpace(c.Catalog.Database) == "" {
			return errors.New("catalog.database must be set when catalog.source is sqlite")
		}
	default:
		return fmt.Errorf("catalog.source: unsupported value %q (use %q or %q)", c.Catalog.Source, SourceCSV, SourceSQLite)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.WindowSize <= 0 || r.WindowSize > maxWindowSize {
		return fmt.Errorf("recommend.window_size must be between 1 and %d", maxWindowSize)
	}
	if r.MinYearFloor < 0 || r.MaxYearCeiling < 0 {
		return errors.New("recommend year bounds must be >= 0")
	}
	if r.MinYearFloor > 0 && r.MaxYearCeiling > 0 && r.MinYearFloor > r.MaxYearCeiling {
		return errors.New("recommend.min_year_floor must not exceed recommend.max_year_ceiling")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
