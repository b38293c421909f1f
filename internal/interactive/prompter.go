package interactive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"cinepick/internal/catalog"
	"cinepick/internal/config"
	"cinepick/internal/logging"
	"cinepick/internal/recommend"
)

// ErrInputClosed reports that the input stream ended before an answer was read.
var ErrInputClosed = errors.New("input closed")

// Bounds limits the answers accepted by the preference prompts.
type Bounds struct {
	Genres     []string
	MinYear    int
	MaxYear    int
	MinRuntime int
}

// BoundsFor derives prompt bounds from the recommend settings and the loaded
// catalog. Zero year settings fall back to the catalog's year span.
func BoundsFor(cfg config.Recommend, movies []catalog.Movie) Bounds {
	b := Bounds{
		Genres:     catalog.Genres(movies),
		MinYear:    cfg.MinYearFloor,
		MaxYear:    cfg.MaxYearCeiling,
		MinRuntime: cfg.MinRuntimeFloor,
	}
	if earliest, latest, ok := catalog.YearSpan(movies); ok {
		if b.MinYear == 0 {
			b.MinYear = earliest
		}
		if b.MaxYear == 0 {
			b.MaxYear = latest
		}
	}
	return b
}

type lineResult struct {
	line string
	err  error
}

// Prompter asks questions on out and reads answers from in. Lines are read on
// a background goroutine so that a pending question can be abandoned when the
// context is cancelled.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger

	startOnce sync.Once
	lines     chan lineResult
}

// NewPrompter constructs a prompter. A nil logger discards log output.
func NewPrompter(in io.Reader, out io.Writer, logger *slog.Logger) *Prompter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logging.NewComponentLogger(logger, "prompter"),
		lines:  make(chan lineResult),
	}
}

func (p *Prompter) readLines() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Ask writes prompt and returns the trimmed answer line. It returns
// ctx.Err() as soon as ctx is cancelled, even while waiting for input.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.startOnce.Do(func() { go p.readLines() })
	fmt.Fprint(p.out, prompt)

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case res, ok := <-p.lines:
		switch {
		case !ok:
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		case res.err == nil:
			return strings.TrimSpace(res.line), nil
		case errors.Is(res.err, io.EOF) && res.line != "":
			return strings.TrimSpace(res.line), nil
		case errors.Is(res.err, io.EOF):
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		default:
			return "", fmt.Errorf("read answer: %w", res.err)
		}
	}
}

// Println writes a line of output.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted output.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Confirm asks a y/n question until one of the two is given.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		answer, err := p.Ask(ctx, prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		p.Println("Please type 'y' or 'n'.")
	}
}

// Preferences runs the preference survey. Every question may be skipped with
// a blank answer.
func (p *Prompter) Preferences(ctx context.Context, b Bounds) (recommend.Preferences, error) {
	var prefs recommend.Preferences

	genre, err := p.askGenre(ctx, b.Genres)
	if err != nil {
		return prefs, err
	}
	prefs.Genre = genre

	p.Println()
	p.Println("Now enter your filter preferences (press Enter to skip any question).")

	prefs.MinRating, err = p.askFloat(ctx, "Minimum IMDb rating (0.0 to 10.0): ", 0, 10)
	if err != nil {
		return prefs, err
	}

	for {
		prefs.MinYear, err = p.askInt(ctx, fmt.Sprintf("Earliest release year (minimum %d): ", b.MinYear), intBound(b.MinYear), intBound(b.MaxYear))
		if err != nil {
			return prefs, err
		}
		prefs.MaxYear, err = p.askInt(ctx, fmt.Sprintf("Latest release year (maximum %d): ", b.MaxYear), intBound(b.MinYear), intBound(b.MaxYear))
		if err != nil {
			return prefs, err
		}
		if verr := prefs.Validate(); verr == nil {
			break
		}
		p.Println("Earliest year must be less than or equal to latest year.")
		p.Println()
	}

	prefs.MaxRuntime, err = p.askInt(ctx, fmt.Sprintf("Maximum runtime in minutes (at least %d): ", b.MinRuntime), intBound(b.MinRuntime), nil)
	if err != nil {
		return prefs, err
	}

	actor, err := p.Ask(ctx, "Is there any actor or actress you really want to see? (press Enter to skip): ")
	if err != nil {
		return prefs, err
	}
	prefs.FavActor = catalog.NormalizeName(actor)

	p.logger.Debug("preferences collected",
		logging.String("genre", prefs.Genre),
		logging.String("actor", prefs.FavActor),
	)
	return prefs, nil
}

func (p *Prompter) askGenre(ctx context.Context, genres []string) (string, error) {
	for {
		answer, err := p.Ask(ctx, "What genre are you in the mood for? (Action, Drama, Comedy, etc.): ")
		if err != nil {
			return "", err
		}
		genre := catalog.NormalizeGenre(answer)
		if genre == "" {
			return "", nil
		}
		if slices.Contains(genres, genre) {
			return genre, nil
		}
		show, err := p.Confirm(ctx, "Unknown genre. Would you like to see the list of available genres? (y/n): ")
		if err != nil {
			return "", err
		}
		if show {
			p.Println("Available genres:")
			p.Println(strings.Join(genres, ", "))
			continue
		}
		p.Println("Okay, try typing your genre again.")
		p.Println()
	}
}

func (p *Prompter) askFloat(ctx context.Context, prompt string, lo, hi float64) (*float64, error) {
	for {
		answer, err := p.Ask(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, nil
		}
		value, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			p.Println("Invalid input. Please enter a number.")
			continue
		}
		if !(value >= lo && value <= hi) {
			p.Printf("Enter a number between %.1f and %.1f.\n", lo, hi)
			continue
		}
		return &value, nil
	}
}

func (p *Prompter) askInt(ctx context.Context, prompt string, lo, hi *int) (*int, error) {
	for {
		answer, err := p.Ask(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, nil
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			p.Println("Invalid input. Please enter a whole number.")
			continue
		}
		if (lo != nil && value < *lo) || (hi != nil && value > *hi) {
			p.Println("Input out of range.")
			continue
		}
		return &value, nil
	}
}

// intBound treats zero as an open bound.
func intBound(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
