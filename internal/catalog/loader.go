package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column headers expected in the movie and award exports.
const (
	ColumnTitle   = "Title"
	ColumnGenre   = "Genre"
	ColumnYear    = "Year"
	ColumnRating  = "Rating"
	ColumnRuntime = "Runtime (Minutes)"
	ColumnVotes   = "Votes"
	ColumnActors  = "Actors"

	ColumnFilm     = "film"
	ColumnCategory = "category"
	ColumnWinner   = "winner"
)

var (
	// ErrMissingColumn indicates a CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrNoMovies indicates the movie export produced no usable rows.
	ErrNoMovies = errors.New("no usable movies")
)

// LoadStats summarizes a load pass.
type LoadStats struct {
	Rows    int
	Kept    int
	Dropped int
}

// LoadMoviesFile opens path and parses it with LoadMovies.
func LoadMoviesFile(path string) ([]Movie, LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open movie data: %w", err)
	}
	defer file.Close()
	return LoadMovies(file)
}

// LoadMovies parses a movie CSV export. Rows missing a rating, year, runtime,
// vote count, title, or genre are dropped and counted in the returned stats.
func LoadMovies(r io.Reader) ([]Movie, LoadStats, error) {
	reader := newReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("read movie header: %w", err)
	}
	cols, err := indexColumns(header, ColumnTitle, ColumnGenre, ColumnYear, ColumnRating, ColumnRuntime, ColumnVotes, ColumnActors)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("movie data: %w", err)
	}

	var (
		movies []Movie
		stats  LoadStats
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read movie row %d: %w", stats.Rows+1, err)
		}
		stats.Rows++
		movie, ok := parseMovie(row, cols)
		if !ok {
			stats.Dropped++
			continue
		}
		movies = append(movies, movie)
		stats.Kept++
	}
	if len(movies) == 0 {
		return nil, stats, ErrNoMovies
	}
	return movies, stats, nil
}

func parseMovie(row []string, cols map[string]int) (Movie, bool) {
	title := strings.TrimSpace(field(row, cols[ColumnTitle]))
	if title == "" {
		return Movie{}, false
	}
	genres := SplitGenres(field(row, cols[ColumnGenre]))
	if len(genres) == 0 {
		return Movie{}, false
	}
	year, err := parseWhole(field(row, cols[ColumnYear]))
	if err != nil {
		return Movie{}, false
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(field(row, cols[ColumnRating])), 64)
	if err != nil || rating < 0 || rating > 10 {
		return Movie{}, false
	}
	runtime, err := parseWhole(field(row, cols[ColumnRuntime]))
	if err != nil || runtime <= 0 {
		return Movie{}, false
	}
	votes, err := parseWhole(field(row, cols[ColumnVotes]))
	if err != nil || votes < 0 {
		return Movie{}, false
	}
	return Movie{
		Title:          title,
		Genres:         genres,
		Year:           year,
		Rating:         rating,
		RuntimeMinutes: runtime,
		Votes:          votes,
		Actors:         strings.TrimSpace(field(row, cols[ColumnActors])),
	}, true
}

// LoadAwardsFile opens path and parses it with LoadAwards. A missing file is
// reported with an error wrapping fs.ErrNotExist so callers can run without
// award data.
func LoadAwardsFile(path string) ([]Award, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open award data: %w", err)
	}
	defer file.Close()
	return LoadAwards(file)
}

// LoadAwards parses an award CSV export. Film titles are trimmed; rows with a
// blank film are skipped.
func LoadAwards(r io.Reader) ([]Award, error) {
	reader := newReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read award header: %w", err)
	}
	cols, err := indexColumns(header, ColumnFilm, ColumnCategory, ColumnWinner)
	if err != nil {
		return nil, fmt.Errorf("award data: %w", err)
	}

	var awards []Award
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read award row %d: %w", line, err)
		}
		film := strings.TrimSpace(field(row, cols[ColumnFilm]))
		if film == "" {
			continue
		}
		awards = append(awards, Award{
			Film:     film,
			Category: strings.TrimSpace(field(row, cols[ColumnCategory])),
			Won:      ParseWinner(field(row, cols[ColumnWinner])),
		})
	}
	return awards, nil
}

// ParseWinner interprets an award winner flag. Anything that does not
// normalize to true (including blanks) counts as a nomination.
func ParseWinner(raw string) bool {
	value, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
	return err == nil && value
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

func indexColumns(header []string, required ...string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}
	cols := make(map[string]int, len(required))
	for _, name := range required {
		idx, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		cols[name] = idx
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseWhole accepts integers written either plainly or as whole floats
// ("2014.0"), which spreadsheet exports commonly produce.
func parseWhole(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if value, err := strconv.Atoi(raw); err == nil {
		return value, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if value != float64(int(value)) {
		return 0, fmt.Errorf("not a whole number: %q", raw)
	}
	return int(value), nil
}
