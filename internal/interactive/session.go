package interactive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"cinepick/internal/awards"
	"cinepick/internal/catalog"
	"cinepick/internal/logging"
	"cinepick/internal/recommend"
)

// SessionOptions tunes presentation of a recommendation session.
type SessionOptions struct {
	WindowSize int
	// HighlightActor appends "(features <actor>)" to titles matching the
	// favourite actor.
	HighlightActor bool
	Colorize       bool
	Logger         *slog.Logger
}

// Session runs the present/decide loop for one viewer.
type Session struct {
	prompter *Prompter
	ranking  recommend.Ranking
	window   *recommend.Window
	index    *awards.Index
	actor    string
	opts     SessionOptions
	logger   *slog.Logger
	round    int
}

// NewSession opens a window over ranking. actor is the favourite actor from
// the viewer's preferences and may be blank.
func NewSession(prompter *Prompter, ranking recommend.Ranking, index *awards.Index, actor string, opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{
		prompter: prompter,
		ranking:  ranking,
		window:   recommend.NewWindow(ranking, recommend.WithSize(opts.WindowSize)),
		index:    index,
		actor:    strings.TrimSpace(actor),
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "session"),
	}
}

// Window exposes the underlying recommendation window.
func (s *Session) Window() *recommend.Window {
	return s.window
}

// Run presents recommendations until the viewer declines to swap more titles,
// input ends, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	logger := logging.WithContext(ctx, s.logger)
	if s.window.Empty() {
		s.prompter.Println()
		s.prompter.Println("Sorry, no movies matched your criteria.")
		logger.Info("no recommendations")
		return nil
	}
	if s.actor != "" && s.ranking.NoActorMatches {
		s.prompter.Printf("No matches found with actor '%s' in the filtered results.\n", s.actor)
	}
	logger.Info("session started",
		logging.Int("candidates", s.ranking.Len()),
		logging.Int("window", len(s.window.Displayed())),
	)

	for {
		if err := ctx.Err(); err != nil {
			s.window.Finish()
			return err
		}
		s.round++
		s.render()
		s.window.Await()

		done, err := s.decide(ctx, logger)
		if errors.Is(err, ErrInputClosed) {
			s.window.Finish()
			logger.Info("input closed; session ended", logging.Int(logging.FieldRound, s.round))
			return nil
		}
		if err != nil {
			s.window.Finish()
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Session) decide(ctx context.Context, logger *slog.Logger) (bool, error) {
	for {
		answer, err := s.prompter.Ask(ctx, "\nHave you already seen any of these? (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "n":
			s.window.Finish()
			s.prompter.Println("Enjoy your movie night!")
			logger.Info("session finished", logging.Int(logging.FieldRound, s.round))
			return true, nil
		case "y":
			raw, err := s.prompter.Ask(ctx, "Enter the number(s) of the movies you've seen (comma-separated, e.g. 2, 4): ")
			if err != nil {
				return false, err
			}
			outcome, err := s.window.MarkSeen(s.parsePositions(raw))
			if err != nil {
				return false, err
			}
			s.report(outcome)
			logger.Debug("window rotated",
				logging.Int(logging.FieldRound, s.round),
				logging.Int("replaced", outcome.Replaced()),
				logging.Int("remaining", s.window.Remaining()),
			)
			return false, nil
		default:
			s.prompter.Println("Please enter 'y' or 'n'.")
		}
	}
}

// parsePositions splits a comma-separated answer, warning about tokens that
// are not plain unsigned numbers.
func (s *Session) parsePositions(raw string) []int {
	var positions []int
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || !isDigits(token) {
			s.prompter.Printf("'%s' is not a valid number. Skipping.\n", token)
			continue
		}
		positions = append(positions, n)
	}
	return positions
}

func isDigits(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *Session) report(outcome recommend.Outcome) {
	for _, ev := range outcome.Events {
		switch ev.Kind {
		case recommend.EventInvalidPosition:
			s.prompter.Printf("'%d' is not in the list of recommendations. Skipping.\n", ev.Position)
		case recommend.EventNoReplacement:
			s.prompter.Printf("No more new recommendations to replace movie #%d.\n", ev.Position)
		case recommend.EventNoSelections:
			s.prompter.Println("No valid selections were made.")
		}
	}
}

func (s *Session) render() {
	s.prompter.Println()
	s.prompter.Println(s.colored("Top Movie Recommendations:", text.Bold))
	for slot, movie := range s.window.View() {
		s.prompter.Println(s.formatLine(slot+1, movie))
	}
}

func (s *Session) formatLine(position int, movie catalog.Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s (%d) | %s | %.1f stars | %d min",
		position, movie.Title, movie.Year, movie.GenreLabel(), movie.Rating, movie.RuntimeMinutes)
	if summary := awards.Summary(s.index.Lookup(movie.Title)); summary != "" {
		b.WriteString(" | ")
		b.WriteString(s.colored(summary, text.FgYellow))
	}
	if s.opts.HighlightActor && movie.Features(s.actor) {
		b.WriteString(s.colored(fmt.Sprintf(" (features %s)", s.actor), text.FgCyan))
	}
	return b.String()
}

func (s *Session) colored(value string, colors ...text.Color) string {
	if !s.opts.Colorize {
		return value
	}
	return text.Colors(colors).Sprint(value)
}
