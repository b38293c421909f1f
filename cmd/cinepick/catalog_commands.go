package main

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cinepick/internal/awards"
	"cinepick/internal/catalog"
	"cinepick/internal/logging"
	"cinepick/internal/store"
)

func newGenresCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genres available in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := ctx.loadCatalog(ctx.runContext(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, movie := range data.movies {
				for _, genre := range movie.Genres {
					counts[genre]++
				}
			}
			genres := catalog.Genres(data.movies)
			rows := make([][]string, 0, len(genres))
			for _, genre := range genres {
				rows = append(rows, []string{genre, strconv.Itoa(counts[genre])})
			}
			spec := tableSpec{headers: []string{"Genre", "Movies"}, aligns: []columnAlignment{alignLeft, alignRight}}
			fmt.Fprintln(cmd.OutOrStdout(), spec.render(rows))
			return nil
		},
	}
}

func newAwardsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "awards <title>",
		Short: "Show award nominations and wins for titles matching a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := ctx.loadCatalog(ctx.runContext(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			title := strings.Join(args, " ")
			out := cmd.OutOrStdout()
			nominations := data.awards.Lookup(title)
			if len(nominations) == 0 {
				fmt.Fprintf(out, "No award records match %q.\n", title)
				return nil
			}
			rows := make([][]string, 0, len(nominations))
			for _, n := range nominations {
				rows = append(rows, []string{n.Status.String(), n.Category})
			}
			spec := tableSpec{
				title:   fmt.Sprintf("Awards matching %q", title),
				headers: []string{"Status", "Category"},
			}
			fmt.Fprintln(out, spec.render(rows))
			won := slices.ContainsFunc(nominations, func(n awards.Nomination) bool { return n.Status == awards.StatusWon })
			fmt.Fprintf(out, "%d record(s); winner: %t\n", len(nominations), won)
			return nil
		},
	}
}

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the SQLite catalog database",
	}
	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))
	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	var moviesPath string
	var awardsPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the movie and award CSV exports into the catalog database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx := ctx.runContext(cmd)
			logger := logging.NewComponentLogger(ctx.ensureLogger(cmd.ErrOrStderr()), "import")
			out := cmd.OutOrStdout()

			if strings.TrimSpace(moviesPath) == "" {
				moviesPath = cfg.Catalog.MoviesCSV
			}
			if strings.TrimSpace(awardsPath) == "" {
				awardsPath = cfg.Catalog.AwardsCSV
			}

			movies, stats, err := catalog.LoadMoviesFile(moviesPath)
			if err != nil {
				return fmt.Errorf("load movies: %w", err)
			}

			st, err := store.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog database: %w", err)
			}
			defer st.Close()

			rec, err := st.ImportMovies(runCtx, moviesPath, movies)
			if err != nil {
				return err
			}
			logging.WithContext(logging.WithRunID(runCtx, rec.RunID), logger).Info("movies imported",
				logging.String("source", moviesPath),
				logging.Int("rows", rec.Rows),
				logging.Int("dropped", stats.Dropped),
			)
			fmt.Fprintf(out, "Imported %d movies from %s (%d rows dropped)\n", rec.Rows, moviesPath, stats.Dropped)

			records, err := catalog.LoadAwardsFile(awardsPath)
			missing := errors.Is(err, fs.ErrNotExist)
			if missing {
				// Stored awards from an earlier import would otherwise annotate
				// the new movie catalog.
				logger.Warn("award data not found; clearing stored awards", logging.String("source", awardsPath))
				records = nil
			} else if err != nil {
				return fmt.Errorf("load awards: %w", err)
			}
			rec, err = st.ImportAwards(runCtx, awardsPath, records)
			if err != nil {
				return err
			}
			logging.WithContext(logging.WithRunID(runCtx, rec.RunID), logger).Info("awards imported",
				logging.String("source", awardsPath),
				logging.Int("rows", rec.Rows),
			)
			if missing {
				fmt.Fprintf(out, "Award data not found at %s; cleared previously imported awards\n", awardsPath)
			} else {
				fmt.Fprintf(out, "Imported %d award records from %s\n", rec.Rows, awardsPath)
			}
			fmt.Fprintf(out, "Catalog database: %s\n", st.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&moviesPath, "movies", "", "Movie CSV export (defaults to catalog.movies_csv)")
	cmd.Flags().StringVar(&awardsPath, "awards", "", "Award CSV export (defaults to catalog.awards_csv)")
	return cmd
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog database contents and recent imports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog database: %w", err)
			}
			defer st.Close()

			stats, err := st.Stats(ctx.runContext(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", st.Path())
			fmt.Fprintf(out, "Movies:   %d\n", stats.Movies)
			fmt.Fprintf(out, "Awards:   %d\n", stats.Awards)
			if len(stats.Imports) == 0 {
				fmt.Fprintln(out, "No imports recorded")
				return nil
			}
			rows := make([][]string, 0, len(stats.Imports))
			for _, imp := range stats.Imports {
				rows = append(rows, []string{
					imp.ImportedAt.Local().Format(time.DateTime),
					imp.Dataset,
					strconv.Itoa(imp.Rows),
					imp.Source,
					imp.RunID,
				})
			}
			spec := tableSpec{
				title:   "Recent imports",
				headers: []string{"Imported", "Dataset", "Rows", "Source", "Run"},
				aligns:  []columnAlignment{alignLeft, alignLeft, alignRight},
			}
			fmt.Fprintln(out, spec.render(rows))
			return nil
		},
	}
}
