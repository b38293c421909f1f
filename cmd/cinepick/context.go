package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cinepick/internal/awards"
	"cinepick/internal/catalog"
	"cinepick/internal/config"
	"cinepick/internal/logging"
	"cinepick/internal/store"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	sessionID  string
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		sessionID:    uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) logLevel() string {
	if c.logLevelFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.logLevelFlag)
}

// ensureLogger builds the session logger once. Failures fall back to a
// discarding logger so that log setup never blocks a recommendation.
func (c *commandContext) ensureLogger(errOut io.Writer) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, c.logLevel(), c.sessionID)
		if err != nil {
			fmt.Fprintf(errOut, "Logging disabled: %v\n", err)
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

type catalogData struct {
	movies []catalog.Movie
	awards *awards.Index
	source string
}

// loadCatalog reads movies and awards from the configured source. Missing
// award data is reported on errOut and yields an empty index.
func (c *commandContext) loadCatalog(ctx context.Context, errOut io.Writer) (*catalogData, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.NewComponentLogger(c.ensureLogger(errOut), "catalog")

	if cfg.UsesDatabase() {
		return loadCatalogFromStore(ctx, cfg, logger)
	}

	movies, stats, err := catalog.LoadMoviesFile(cfg.Catalog.MoviesCSV)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	logger.Info("movie data loaded",
		logging.String("path", cfg.Catalog.MoviesCSV),
		logging.Int("rows", stats.Rows),
		logging.Int("kept", stats.Kept),
		logging.Int("dropped", stats.Dropped),
	)

	data := &catalogData{movies: movies, source: cfg.Catalog.MoviesCSV}
	records, err := catalog.LoadAwardsFile(cfg.Catalog.AwardsCSV)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("award data not found", logging.String("path", cfg.Catalog.AwardsCSV))
		fmt.Fprintf(errOut, "Award data not found at %s; continuing without award notes.\n", cfg.Catalog.AwardsCSV)
		data.awards = awards.NewIndex(nil)
	case err != nil:
		return nil, fmt.Errorf("load awards: %w", err)
	default:
		logger.Info("award data loaded", logging.String("path", cfg.Catalog.AwardsCSV), logging.Int("rows", len(records)))
		data.awards = awards.NewIndex(records)
	}
	return data, nil
}

func loadCatalogFromStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalogData, error) {
	st, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer st.Close()

	movies, err := st.Movies(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrNoMovies) {
			return nil, fmt.Errorf("catalog database %s is empty; run `cinepick catalog import` first: %w", st.Path(), err)
		}
		return nil, err
	}
	records, err := st.Awards(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog database loaded",
		logging.String("path", st.Path()),
		logging.Int("movies", len(movies)),
		logging.Int("awards", len(records)),
	)
	return &catalogData{movies: movies, awards: awards.NewIndex(records), source: st.Path()}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
