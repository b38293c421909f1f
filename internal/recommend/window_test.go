package recommend_test

import (
	"errors"
	"fmt"
	"testing"

	"cinepick/internal/catalog"
	"cinepick/internal/recommend"
)

func rankedOf(n int) recommend.Ranking {
	movies := make([]catalog.Movie, n)
	for i := range movies {
		movies[i] = movie(fmt.Sprintf("m%d", i+1), 9.0-float64(i)*0.1, 100)
	}
	return recommend.Rank(movies, recommend.Preferences{})
}

func TestNewWindowEmptyRankingIsExhausted(t *testing.T) {
	w := recommend.NewWindow(recommend.Ranking{})
	if w.State() != recommend.StateExhausted {
		t.Fatalf("expected exhausted, got %s", w.State())
	}
	if !w.Empty() {
		t.Fatal("expected Empty to report no recommendations")
	}
	if len(w.View()) != 0 {
		t.Fatal("expected empty view")
	}
	if _, err := w.MarkSeen([]int{1}); !errors.Is(err, recommend.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestNewWindowViewLength(t *testing.T) {
	for _, n := range []int{1, 3, 5, 6, 20} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			w := recommend.NewWindow(rankedOf(n))
			view := w.View()
			want := min(n, recommend.DefaultWindowSize)
			if len(view) != want {
				t.Fatalf("view length %d, want %d", len(view), want)
			}
			if w.State() != recommend.StatePresenting {
				t.Fatalf("expected presenting, got %s", w.State())
			}
			if w.Remaining() != n-want {
				t.Fatalf("remaining %d, want %d", w.Remaining(), n-want)
			}
		})
	}
}

func TestWithSize(t *testing.T) {
	w := recommend.NewWindow(rankedOf(10), recommend.WithSize(3))
	equalTitles(t, w.View(), "m1", "m2", "m3")
	w = recommend.NewWindow(rankedOf(10), recommend.WithSize(0))
	if len(w.View()) != recommend.DefaultWindowSize {
		t.Fatal("non-positive size must fall back to the default")
	}
	w = recommend.NewWindow(rankedOf(10), recommend.WithSize(8))
	equalTitles(t, w.View(), "m1", "m2", "m3", "m4", "m5")
	if _, err := w.MarkSeen([]int{6, 7, 8}); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if len(w.View()) != recommend.DefaultWindowSize {
		t.Fatalf("view grew past %d slots: %d", recommend.DefaultWindowSize, len(w.View()))
	}
}

func TestWindowEndToEndRotation(t *testing.T) {
	movies := make([]catalog.Movie, 6)
	for i := range movies {
		// Catalog order is deliberately not rating order.
		movies[i] = movie(fmt.Sprintf("r%d", 6-i), 4.0+float64(i)*0.5, 10, withGenres("Comedy"))
	}
	ranking := recommend.Rank(movies, recommend.Preferences{Genre: "Comedy"})
	equalTitles(t, ranking.Movies, "r1", "r2", "r3", "r4", "r5", "r6")

	w := recommend.NewWindow(ranking)
	equalTitles(t, w.View(), "r1", "r2", "r3", "r4", "r5")
	w.Await()
	if w.State() != recommend.StateAwaitingDecision {
		t.Fatalf("expected awaiting decision, got %s", w.State())
	}

	out, err := w.MarkSeen([]int{4, 2})
	if err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	equalTitles(t, w.View(), "r1", "r6", "r3", "r4", "r5")
	if len(out.Events) != 2 {
		t.Fatalf("expected two events, got %+v", out.Events)
	}
	if got := out.Events[0]; got.Kind != recommend.EventReplaced || got.Position != 2 || got.Previous != 1 || got.Current != 5 {
		t.Fatalf("unexpected first event: %+v", got)
	}
	if got := out.Events[1]; got.Kind != recommend.EventNoReplacement || got.Position != 4 {
		t.Fatalf("unexpected second event: %+v", got)
	}
	if out.Replaced() != 1 {
		t.Fatalf("expected one replacement, got %d", out.Replaced())
	}
	if w.State() != recommend.StatePresenting {
		t.Fatalf("expected presenting after MarkSeen, got %s", w.State())
	}
	if w.Remaining() != 0 {
		t.Fatalf("expected no remaining candidates, got %d", w.Remaining())
	}

	w.Finish()
	if w.State() != recommend.StateExhausted {
		t.Fatal("expected exhausted after Finish")
	}
	if w.View() != nil {
		t.Fatal("expected nil view after Finish")
	}
}

func TestMarkSeenInvalidPosition(t *testing.T) {
	w := recommend.NewWindow(rankedOf(8))
	before := w.Displayed()

	out, err := w.MarkSeen([]int{0, 6, -1})
	if err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	after := w.Displayed()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("window changed: %v -> %v", before, after)
		}
	}
	if !out.Has(recommend.EventInvalidPosition) {
		t.Fatal("expected invalid position events")
	}
	if !out.Has(recommend.EventNoSelections) {
		t.Fatal("expected no-selections event when nothing valid was supplied")
	}
	if w.Remaining() != 3 {
		t.Fatalf("invalid positions must not consume candidates, remaining %d", w.Remaining())
	}
}

func TestMarkSeenMixedValidAndInvalid(t *testing.T) {
	w := recommend.NewWindow(rankedOf(8))
	out, err := w.MarkSeen([]int{9, 1})
	if err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if out.Has(recommend.EventNoSelections) {
		t.Fatal("a valid position was supplied")
	}
	equalTitles(t, w.View(), "m6", "m2", "m3", "m4", "m5")
	if out.Events[0].Kind != recommend.EventReplaced || out.Events[1].Kind != recommend.EventInvalidPosition {
		t.Fatalf("events not in ascending position order: %+v", out.Events)
	}
}

func TestMarkSeenEmptySelection(t *testing.T) {
	w := recommend.NewWindow(rankedOf(8))
	out, err := w.MarkSeen(nil)
	if err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Kind != recommend.EventNoSelections {
		t.Fatalf("unexpected events: %+v", out.Events)
	}
	equalTitles(t, w.View(), "m1", "m2", "m3", "m4", "m5")
}

func TestMarkSeenDuplicatesCountOnce(t *testing.T) {
	w := recommend.NewWindow(rankedOf(10))
	out, err := w.MarkSeen([]int{3, 3, 3})
	if err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if out.Replaced() != 1 || w.Remaining() != 4 {
		t.Fatalf("expected a single replacement, got %d (remaining %d)", out.Replaced(), w.Remaining())
	}
}

func TestWindowNeverShowsAnIndexTwice(t *testing.T) {
	w := recommend.NewWindow(rankedOf(23))
	shown := map[int]bool{}
	for _, idx := range w.Displayed() {
		shown[idx] = true
	}

	rounds := [][]int{{1, 2}, {5}, {1, 3, 4}, {2, 5}, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}}
	for round, positions := range rounds {
		before := w.Displayed()
		if _, err := w.MarkSeen(positions); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		after := w.Displayed()
		onScreen := map[int]bool{}
		for slot, idx := range after {
			if onScreen[idx] {
				t.Fatalf("round %d: duplicate index %d on screen: %v", round, idx, after)
			}
			onScreen[idx] = true
			if idx != before[slot] {
				if shown[idx] {
					t.Fatalf("round %d: index %d shown a second time", round, idx)
				}
				shown[idx] = true
			}
		}
	}
	if len(shown) != 23 {
		t.Fatalf("expected every ranked movie to be shown once, got %d", len(shown))
	}
	if w.Remaining() != 0 {
		t.Fatalf("expected the ranking to be consumed, remaining %d", w.Remaining())
	}
}
