package config

const (
	defaultConfigPath      = "~/.config/cinepick/config.toml"
	defaultDataDir         = "~/.local/share/cinepick"
	defaultLogDir          = "~/.local/share/cinepick/logs"
	defaultMoviesCSV       = "IMDB-Movie-Data.csv"
	defaultAwardsCSV       = "oscar_data.csv"
	defaultDatabaseName    = "catalog.db"
	defaultCatalogSource   = SourceCSV
	defaultWindowSize      = 5
	maxWindowSize          = 5
	defaultMinRuntimeFloor = 50
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Catalog: Catalog{
			Source:    defaultCatalogSource,
			MoviesCSV: defaultMoviesCSV,
			AwardsCSV: defaultAwardsCSV,
		},
		Recommend: Recommend{
			WindowSize:      defaultWindowSize,
			MinRuntimeFloor: defaultMinRuntimeFloor,
			HighlightActor:  true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
