package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"cinepick/internal/awards"
	"cinepick/internal/catalog"
	"cinepick/internal/config"
	"cinepick/internal/interactive"
	"cinepick/internal/logging"
	"cinepick/internal/recommend"
)

type recommendFlags struct {
	noPrompt   bool
	genre      string
	minRating  float64
	minYear    int
	maxYear    int
	maxRuntime int
	actor      string
}

// preferences builds Preferences from the flags the user actually set.
func (f recommendFlags) preferences(cmd *cobra.Command) recommend.Preferences {
	flags := cmd.Flags()
	prefs := recommend.Preferences{
		Genre:    catalog.NormalizeGenre(f.genre),
		FavActor: catalog.NormalizeName(f.actor),
	}
	if flags.Changed("min-rating") {
		prefs.MinRating = recommend.Float(f.minRating)
	}
	if flags.Changed("min-year") {
		prefs.MinYear = recommend.Int(f.minYear)
	}
	if flags.Changed("max-year") {
		prefs.MaxYear = recommend.Int(f.maxYear)
	}
	if flags.Changed("max-runtime") {
		prefs.MaxRuntime = recommend.Int(f.maxRuntime)
	}
	return prefs
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var flags recommendFlags

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Survey your preferences and recommend movies",
		Long: "Ask a short preference survey, then show the best matching movies. " +
			"Titles you have already seen can be swapped for the next best match.\n\n" +
			"With --no-prompt the survey is skipped: preferences come from flags and the " +
			"first window of recommendations is printed once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx := ctx.runContext(cmd)
			base := ctx.ensureLogger(cmd.ErrOrStderr())
			logger := logging.NewComponentLogger(base, "recommend")

			data, err := ctx.loadCatalog(runCtx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if flags.noPrompt {
				prefs := flags.preferences(cmd)
				if err := prefs.Validate(); err != nil {
					return err
				}
				ranking := recommend.Rank(data.movies, prefs)
				logger.Info("ranking built", logging.Int("candidates", ranking.Len()), logging.Bool("prompt", false))
				return printRecommendations(out, cfg, ranking, data.awards, prefs.Actor())
			}

			fmt.Fprintln(out, "Welcome to cinepick!")
			fmt.Fprintln(out, "First, a quick survey about your preferences. Press Enter to skip any question.")
			fmt.Fprintln(out)

			prompter := interactive.NewPrompter(cmd.InOrStdin(), out, base)
			prefs, err := prompter.Preferences(runCtx, interactive.BoundsFor(cfg.Recommend, data.movies))
			if errors.Is(err, interactive.ErrInputClosed) {
				logger.Info("survey abandoned")
				return nil
			}
			if err != nil {
				return err
			}

			ranking := recommend.Rank(data.movies, prefs)
			logger.Info("ranking built", logging.Int("candidates", ranking.Len()), logging.Bool("prompt", true))

			session := interactive.NewSession(prompter, ranking, data.awards, prefs.Actor(), interactive.SessionOptions{
				WindowSize:     cfg.Recommend.WindowSize,
				HighlightActor: cfg.Recommend.HighlightActor,
				Colorize:       shouldColorize(out),
				Logger:         base,
			})
			return session.Run(runCtx)
		},
	}

	cmd.Flags().BoolVar(&flags.noPrompt, "no-prompt", false, "Skip the survey and print one window of recommendations")
	cmd.Flags().StringVar(&flags.genre, "genre", "", "Only recommend movies in this genre")
	cmd.Flags().Float64Var(&flags.minRating, "min-rating", 0, "Minimum IMDb rating (0.0 to 10.0)")
	cmd.Flags().IntVar(&flags.minYear, "min-year", 0, "Earliest release year")
	cmd.Flags().IntVar(&flags.maxYear, "max-year", 0, "Latest release year")
	cmd.Flags().IntVar(&flags.maxRuntime, "max-runtime", 0, "Maximum runtime in minutes")
	cmd.Flags().StringVar(&flags.actor, "actor", "", "Favourite actor to rank first")
	return cmd
}

func printRecommendations(out io.Writer, cfg *config.Config, ranking recommend.Ranking, index *awards.Index, actor string) error {
	window := recommend.NewWindow(ranking, recommend.WithSize(cfg.Recommend.WindowSize))
	if window.Empty() {
		fmt.Fprintln(out, "No movies matched your criteria.")
		return nil
	}
	if actor != "" && ranking.NoActorMatches {
		fmt.Fprintf(out, "No matches found with actor '%s' in the filtered results.\n", actor)
	}

	spec := tableSpec{
		title:   "Top Movie Recommendations",
		headers: []string{"#", "Title", "Year", "Genres", "Rating", "Runtime", "Awards"},
		aligns:  []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft},
	}
	highlight := actor != "" && cfg.Recommend.HighlightActor
	if highlight {
		spec.headers = append(spec.headers, "Features "+actor)
	}

	view := window.View()
	rows := make([][]string, 0, len(view))
	for i, movie := range view {
		row := []string{
			strconv.Itoa(i + 1),
			movie.Title,
			strconv.Itoa(movie.Year),
			movie.GenreLabel(),
			fmt.Sprintf("%.1f", movie.Rating),
			fmt.Sprintf("%d min", movie.RuntimeMinutes),
			awards.Summary(index.Lookup(movie.Title)),
		}
		if highlight {
			row = append(row, featureMark(movie.Features(actor)))
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out, spec.render(rows))
	if remaining := window.Remaining(); remaining > 0 {
		fmt.Fprintf(out, "%d more matching titles available.\n", remaining)
	}
	window.Finish()
	return nil
}

func featureMark(value bool) string {
	if value {
		return "yes"
	}
	return ""
}
