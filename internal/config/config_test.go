package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cinepick/internal/config"
)

func clearCatalogEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CINEPICK_MOVIES_CSV", "")
	t.Setenv("CINEPICK_AWARDS_CSV", "")
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	clearCatalogEnv(t)
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "cinepick")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Catalog.Database != filepath.Join(wantData, "catalog.db") {
		t.Fatalf("unexpected database path: %q", cfg.Catalog.Database)
	}
	if !filepath.IsAbs(cfg.Catalog.MoviesCSV) || filepath.Base(cfg.Catalog.MoviesCSV) != "IMDB-Movie-Data.csv" {
		t.Fatalf("unexpected movies csv: %q", cfg.Catalog.MoviesCSV)
	}
	if cfg.Catalog.Source != config.SourceCSV {
		t.Fatalf("unexpected catalog source: %q", cfg.Catalog.Source)
	}
	if cfg.Recommend.WindowSize != 5 {
		t.Fatalf("unexpected window size: %d", cfg.Recommend.WindowSize)
	}
	if cfg.Recommend.MinRuntimeFloor != 50 {
		t.Fatalf("unexpected runtime floor: %d", cfg.Recommend.MinRuntimeFloor)
	}
	if !cfg.Recommend.HighlightActor {
		t.Fatal("expected actor highlighting on by default")
	}
	if cfg.LogPath() != filepath.Join(wantData, "logs", "cinepick.log") {
		t.Fatalf("unexpected log path: %q", cfg.LogPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	clearCatalogEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "cinepick.toml")

	type payload struct {
		Catalog struct {
			Source    string `toml:"source"`
			MoviesCSV string `toml:"movies_csv"`
			Database  string `toml:"database"`
		} `toml:"catalog"`
		Recommend struct {
			WindowSize   int `toml:"window_size"`
			MinYearFloor int `toml:"min_year_floor"`
		} `toml:"recommend"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Catalog.Source = " SQLite "
	custom.Catalog.MoviesCSV = filepath.Join(tempDir, "movies.csv")
	custom.Catalog.Database = filepath.Join(tempDir, "db", "movies.db")
	custom.Recommend.WindowSize = 3
	custom.Recommend.MinYearFloor = 2006
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if !cfg.UsesDatabase() {
		t.Fatalf("expected sqlite source, got %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.Database != custom.Catalog.Database {
		t.Fatalf("unexpected database: %q", cfg.Catalog.Database)
	}
	if cfg.Recommend.WindowSize != 3 || cfg.Recommend.MinYearFloor != 2006 {
		t.Fatalf("unexpected recommend section: %+v", cfg.Recommend)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging section: %+v", cfg.Logging)
	}
}

func TestEnvVarOverridesDatasetPaths(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "cinepick.toml")
	body := "[catalog]\nmovies_csv = \"file-movies.csv\"\nawards_csv = \"file-awards.csv\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	envMovies := filepath.Join(tempDir, "env-movies.csv")
	envAwards := filepath.Join(tempDir, "env-awards.csv")
	t.Setenv("CINEPICK_MOVIES_CSV", envMovies)
	t.Setenv("CINEPICK_AWARDS_CSV", envAwards)

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog.MoviesCSV != envMovies {
		t.Errorf("expected movies csv from env, got %q", cfg.Catalog.MoviesCSV)
	}
	if cfg.Catalog.AwardsCSV != envAwards {
		t.Errorf("expected awards csv from env, got %q", cfg.Catalog.AwardsCSV)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "cinepick.toml")
	if err := os.WriteFile(configPath, []byte("[catalog\nsource = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Catalog.Source != config.SourceCSV {
		t.Fatalf("expected sample to use csv source, got %q", cfg.Catalog.Source)
	}
	if cfg.Recommend.WindowSize != 5 {
		t.Fatalf("expected sample window size 5, got %d", cfg.Recommend.WindowSize)
	}
	if !strings.Contains(cfg.Paths.DataDir, "cinepick") {
		t.Fatalf("expected data dir to contain cinepick, got %q", cfg.Paths.DataDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Catalog.Source = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown catalog source")
	}

	cfg = config.Default()
	cfg.Catalog.MoviesCSV = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing movies csv")
	}

	cfg = config.Default()
	cfg.Catalog.Source = config.SourceSQLite
	cfg.Catalog.Database = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for sqlite source without database")
	}

	cfg = config.Default()
	cfg.Recommend.WindowSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive window size")
	}

	cfg = config.Default()
	cfg.Recommend.WindowSize = 9
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for window size above five")
	}

	cfg = config.Default()
	cfg.Recommend.MinYearFloor = 2016
	cfg.Recommend.MaxYearCeiling = 2006
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when year floor exceeds ceiling")
	}

	cfg = config.Default()
	cfg.Logging.Level = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
