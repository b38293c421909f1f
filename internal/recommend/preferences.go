package recommend

import (
	"errors"
	"fmt"
	"strings"

	"cinepick/internal/catalog"
)

// ErrYearRange indicates MinYear is later than MaxYear.
var ErrYearRange = errors.New("earliest year must be less than or equal to latest year")

// Preferences captures what the viewer asked for. Nil pointers and blank
// strings impose no condition.
type Preferences struct {
	Genre      string
	MinRating  *float64
	MinYear    *int
	MaxYear    *int
	MaxRuntime *int
	FavActor   string
}

// Validate checks the cross-field precondition callers must enforce before
// ranking.
func (p Preferences) Validate() error {
	if p.MinYear != nil && p.MaxYear != nil && *p.MinYear > *p.MaxYear {
		return fmt.Errorf("%w (%d > %d)", ErrYearRange, *p.MinYear, *p.MaxYear)
	}
	return nil
}

// Actor returns the trimmed favourite actor, or "" when none was given.
func (p Preferences) Actor() string {
	return strings.TrimSpace(p.FavActor)
}

// Predicate composes a filter from the preference fields that are set.
func (p Preferences) Predicate() func(catalog.Movie) bool {
	var conds []func(catalog.Movie) bool
	if genre := strings.TrimSpace(p.Genre); genre != "" {
		conds = append(conds, func(m catalog.Movie) bool { return m.HasGenre(genre) })
	}
	if p.MinRating != nil {
		minRating := *p.MinRating
		conds = append(conds, func(m catalog.Movie) bool { return m.Rating >= minRating })
	}
	if p.MinYear != nil {
		minYear := *p.MinYear
		conds = append(conds, func(m catalog.Movie) bool { return m.Year >= minYear })
	}
	if p.MaxYear != nil {
		maxYear := *p.MaxYear
		conds = append(conds, func(m catalog.Movie) bool { return m.Year <= maxYear })
	}
	if p.MaxRuntime != nil {
		maxRuntime := *p.MaxRuntime
		conds = append(conds, func(m catalog.Movie) bool { return m.RuntimeMinutes <= maxRuntime })
	}
	return func(m catalog.Movie) bool {
		for _, cond := range conds {
			if !cond(m) {
				return false
			}
		}
		return true
	}
}

// Float returns a pointer to v, for building Preferences literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building Preferences literals.
func Int(v int) *int { return &v }
