package preflight

import (
	"context"

	"cinepick/internal/config"
)

// Result reports the outcome of a single preflight check. Optional checks
// that fail degrade the session instead of blocking it.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	if cfg.UsesDatabase() {
		results = append(results, CheckCatalogDatabase(ctx, cfg))
		return results
	}

	results = append(results,
		CheckReadableFile("Movie data", cfg.Catalog.MoviesCSV, false),
		CheckReadableFile("Award data", cfg.Catalog.AwardsCSV, true),
	)
	return results
}

// Failed reports whether any required check did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Optional {
			return true
		}
	}
	return false
}
