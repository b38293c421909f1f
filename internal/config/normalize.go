package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeRecommend()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv("CINEPICK_MOVIES_CSV"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.MoviesCSV = value
	}
	if value, ok := os.LookupEnv("CINEPICK_AWARDS_CSV"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.AwardsCSV = value
	}

	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	if c.Catalog.Source == "" {
		c.Catalog.Source = defaultCatalogSource
	}

	var err error
	if c.Catalog.MoviesCSV, err = expandPath(strings.TrimSpace(c.Catalog.MoviesCSV)); err != nil {
		return fmt.Errorf("catalog.movies_csv: %w", err)
	}
	if c.Catalog.AwardsCSV, err = expandPath(strings.TrimSpace(c.Catalog.AwardsCSV)); err != nil {
		return fmt.Errorf("catalog.awards_csv: %w", err)
	}
	if strings.TrimSpace(c.Catalog.Database) == "" {
		c.Catalog.Database = filepath.Join(c.Paths.DataDir, defaultDatabaseName)
	}
	if c.Catalog.Database, err = expandPath(strings.TrimSpace(c.Catalog.Database)); err != nil {
		return fmt.Errorf("catalog.database: %w", err)
	}
	return nil
}

func (c *Config) normalizeRecommend() {
	if c.Recommend.WindowSize <= 0 {
		c.Recommend.WindowSize = defaultWindowSize
	}
	if c.Recommend.MinRuntimeFloor < 0 {
		c.Recommend.MinRuntimeFloor = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
