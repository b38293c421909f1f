package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Movie is a single catalog entry.
type Movie struct {
	Title          string
	Genres         []string
	Year           int
	Rating         float64
	RuntimeMinutes int
	Votes          int
	Actors         string
}

// HasGenre reports whether the movie is tagged with genre exactly.
func (m Movie) HasGenre(genre string) bool {
	return slices.Contains(m.Genres, genre)
}

// Features reports whether actor appears anywhere in the movie's cast text,
// ignoring case.
func (m Movie) Features(actor string) bool {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return false
	}
	return strings.Contains(strings.ToLower(m.Actors), strings.ToLower(actor))
}

// GenreLabel joins the genres for display.
func (m Movie) GenreLabel() string {
	return strings.Join(m.Genres, ", ")
}

// Award is one award-dataset row. Several rows may reference the same film.
type Award struct {
	Film     string
	Category string
	Won      bool
}

// NormalizeGenre trims and title-cases a genre name so that catalog genres and
// user input compare exactly.
func NormalizeGenre(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return cases.Title(language.Und).String(value)
}

// NormalizeName trims and title-cases a free-text name such as an actor.
func NormalizeName(value string) string {
	return NormalizeGenre(value)
}

// SplitGenres turns a raw comma-separated genre field into a normalized,
// de-duplicated list preserving first-seen order.
func SplitGenres(raw string) []string {
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		genre := NormalizeGenre(part)
		if genre == "" || slices.Contains(genres, genre) {
			continue
		}
		genres = append(genres, genre)
	}
	return genres
}

// Genres returns the sorted set of genres present in movies.
func Genres(movies []Movie) []string {
	seen := make(map[string]struct{})
	for _, movie := range movies {
		for _, genre := range movie.Genres {
			seen[genre] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for genre := range seen {
		out = append(out, genre)
	}
	slices.Sort(out)
	return out
}

// YearSpan returns the earliest and latest release years in movies. ok is
// false for an empty catalog.
func YearSpan(movies []Movie) (earliest, latest int, ok bool) {
	for i, movie := range movies {
		if i == 0 || movie.Year < earliest {
			earliest = movie.Year
		}
		if i == 0 || movie.Year > latest {
			latest = movie.Year
		}
	}
	return earliest, latest, len(movies) > 0
}
