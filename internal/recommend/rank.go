package recommend

import (
	"cmp"
	"slices"

	"cinepick/internal/catalog"
)

// Ranking is the ordered result of applying preferences to a catalog. It is
// never modified after Rank returns it.
type Ranking struct {
	Movies []catalog.Movie
	// NoActorMatches is set when a favourite actor was requested but none of
	// the filtered movies feature them.
	NoActorMatches bool
}

// Len returns the number of ranked movies.
func (r Ranking) Len() int { return len(r.Movies) }

// Rank filters movies by prefs and orders the result by rating then votes,
// both descending. Ties keep catalog order. When a favourite actor is set,
// movies featuring them come first and each group is ordered the same way.
func Rank(movies []catalog.Movie, prefs Preferences) Ranking {
	keep := prefs.Predicate()
	filtered := make([]catalog.Movie, 0, len(movies))
	for _, movie := range movies {
		if keep(movie) {
			filtered = append(filtered, movie)
		}
	}

	actor := prefs.Actor()
	if actor == "" {
		slices.SortStableFunc(filtered, byRelevance)
		return Ranking{Movies: filtered}
	}

	matched := make([]catalog.Movie, 0, len(filtered))
	others := make([]catalog.Movie, 0, len(filtered))
	for _, movie := range filtered {
		if movie.Features(actor) {
			matched = append(matched, movie)
		} else {
			others = append(others, movie)
		}
	}
	slices.SortStableFunc(matched, byRelevance)
	slices.SortStableFunc(others, byRelevance)

	return Ranking{
		Movies:         append(matched, others...),
		NoActorMatches: len(matched) == 0,
	}
}

func byRelevance(a, b catalog.Movie) int {
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	return cmp.Compare(b.Votes, a.Votes)
}
