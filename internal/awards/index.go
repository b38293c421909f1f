package awards

import (
	"fmt"
	"strings"

	"cinepick/internal/catalog"
)

// Status is the outcome of an award entry.
type Status int

const (
	StatusNominated Status = iota
	StatusWon
)

func (s Status) String() string {
	if s == StatusWon {
		return "Winner"
	}
	return "Nominated"
}

// Nomination is a single (status, category) match for a title.
type Nomination struct {
	Status   Status
	Category string
}

func (n Nomination) String() string {
	return fmt.Sprintf("%s for %s", n.Status, n.Category)
}

type entry struct {
	film     string
	folded   string
	category string
	won      bool
}

// Index is a read-only view over award records. The zero value and a nil
// *Index behave as an empty dataset.
type Index struct {
	entries []entry
}

// NewIndex builds an index preserving the record order.
func NewIndex(records []catalog.Award) *Index {
	entries := make([]entry, 0, len(records))
	for _, rec := range records {
		film := strings.TrimSpace(rec.Film)
		entries = append(entries, entry{
			film:     film,
			folded:   strings.ToLower(film),
			category: rec.Category,
			won:      rec.Won,
		})
	}
	return &Index{entries: entries}
}

// Len reports the number of award records.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Lookup returns every award whose film title contains title, ignoring case,
// in dataset order. It returns an empty result for a blank title, for no
// matches, and when no award data is loaded.
func (idx *Index) Lookup(title string) []Nomination {
	needle := strings.ToLower(strings.TrimSpace(title))
	if idx == nil || needle == "" {
		return []Nomination{}
	}
	out := []Nomination{}
	for _, e := range idx.entries {
		if !strings.Contains(e.folded, needle) {
			continue
		}
		status := StatusNominated
		if e.won {
			status = StatusWon
		}
		out = append(out, Nomination{Status: status, Category: e.category})
	}
	return out
}

// Summary joins nominations for display, e.g. "Winner for ACTOR, Nominated for SCORE".
func Summary(nominations []Nomination) string {
	parts := make([]string, 0, len(nominations))
	for _, n := range nominations {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}
