package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cinepick/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Catalog.MoviesCSV = filepath.Join(base, "movies.csv")
	cfgVal.Catalog.AwardsCSV = filepath.Join(base, "awards.csv")
	cfgVal.Catalog.Database = filepath.Join(base, "data", "catalog.db")

	builder := &configBuilder{t: t, cfg: &cfgVal}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSQLiteSource switches the config to read from the catalog database.
func WithSQLiteSource() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.Source = config.SourceSQLite
	}
}

// WithFixtures writes the sample movie and award exports to the configured
// CSV paths.
func WithFixtures() ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Catalog.MoviesCSV, MoviesCSV)
		WriteFile(b.t, b.cfg.Catalog.AwardsCSV, AwardsCSV)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	WriteFile(t, path, string(data))
}
