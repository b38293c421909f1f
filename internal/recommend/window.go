package recommend

import (
	"errors"
	"slices"

	"cinepick/internal/catalog"
)

// DefaultWindowSize is the number of recommendations shown at once. It is
// also the largest window allowed.
const DefaultWindowSize = 5

// ErrExhausted is returned when a finished session is asked to rotate.
var ErrExhausted = errors.New("recommendation session has ended")

// State is the window lifecycle state.
type State int

const (
	StatePresenting State = iota
	StateAwaitingDecision
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StatePresenting:
		return "presenting"
	case StateAwaitingDecision:
		return "awaiting_decision"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// EventKind classifies what happened to one requested position.
type EventKind int

const (
	// EventReplaced means the slot now shows the next unseen candidate.
	EventReplaced EventKind = iota
	// EventInvalidPosition means the position was outside the window.
	EventInvalidPosition
	// EventNoReplacement means the ranking had no unseen candidate left.
	EventNoReplacement
	// EventNoSelections means no valid position was supplied at all.
	EventNoSelections
)

func (k EventKind) String() string {
	switch k {
	case EventReplaced:
		return "replaced"
	case EventInvalidPosition:
		return "invalid_position"
	case EventNoReplacement:
		return "no_replacement"
	case EventNoSelections:
		return "no_selections"
	default:
		return "unknown"
	}
}

// Event reports the handling of a single position. Position is 1-based and
// zero for EventNoSelections. For EventReplaced, Previous and Current are the
// ranking indices that left and entered the slot.
type Event struct {
	Kind     EventKind
	Position int
	Previous int
	Current  int
}

// Outcome is the structured result of MarkSeen.
type Outcome struct {
	Events []Event
}

// Replaced counts the slots that received a new title.
func (o Outcome) Replaced() int {
	n := 0
	for _, ev := range o.Events {
		if ev.Kind == EventReplaced {
			n++
		}
	}
	return n
}

// Has reports whether any event of kind was recorded.
func (o Outcome) Has(kind EventKind) bool {
	return slices.ContainsFunc(o.Events, func(ev Event) bool { return ev.Kind == kind })
}

// WindowOption customizes a Window.
type WindowOption func(*Window)

// WithSize shrinks the window to size slots. Values below one are ignored and
// values above DefaultWindowSize are clamped to it.
func WithSize(size int) WindowOption {
	return func(w *Window) {
		if size > 0 {
			w.size = min(size, DefaultWindowSize)
		}
	}
}

// Window tracks which ranked movies are on screen and rotates unseen
// candidates into slots the viewer has already seen. It is not safe for
// concurrent use.
type Window struct {
	ranking   Ranking
	size      int
	displayed []int
	next      int
	state     State
}

// NewWindow opens a session over ranking. An empty ranking starts Exhausted.
func NewWindow(ranking Ranking, opts ...WindowOption) *Window {
	w := &Window{ranking: ranking, size: DefaultWindowSize}
	for _, opt := range opts {
		opt(w)
	}
	n := min(w.size, ranking.Len())
	if n == 0 {
		w.state = StateExhausted
		return w
	}
	w.displayed = make([]int, n)
	for i := range w.displayed {
		w.displayed[i] = i
	}
	w.next = n
	w.state = StatePresenting
	return w
}

// Empty reports whether the ranking had nothing to recommend.
func (w *Window) Empty() bool {
	return w.ranking.Len() == 0
}

// State returns the current lifecycle state.
func (w *Window) State() State {
	return w.state
}

// View returns the movies currently on screen in slot order. It returns nil
// once the session is exhausted.
func (w *Window) View() []catalog.Movie {
	if w.state == StateExhausted {
		return nil
	}
	out := make([]catalog.Movie, len(w.displayed))
	for slot, idx := range w.displayed {
		out[slot] = w.ranking.Movies[idx]
	}
	return out
}

// Displayed returns a copy of the ranking indices on screen.
func (w *Window) Displayed() []int {
	return slices.Clone(w.displayed)
}

// Remaining reports how many ranked movies have not yet been shown.
func (w *Window) Remaining() int {
	return w.ranking.Len() - w.next
}

// Await records that the current view was presented and a decision is
// pending.
func (w *Window) Await() {
	if w.state == StatePresenting {
		w.state = StateAwaitingDecision
	}
}

// MarkSeen replaces each seen slot with the next unseen candidate. Positions
// are 1-based and handled in ascending order; duplicates count once.
// Positions outside the window and slots with no candidate left are reported
// as events and leave the window unchanged. The window is ready to present
// again afterwards.
func (w *Window) MarkSeen(positions []int) (Outcome, error) {
	if w.state == StateExhausted {
		return Outcome{}, ErrExhausted
	}
	defer func() { w.state = StatePresenting }()

	ordered := slices.Clone(positions)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	var (
		out   Outcome
		valid int
	)
	for _, pos := range ordered {
		if pos < 1 || pos > len(w.displayed) {
			out.Events = append(out.Events, Event{Kind: EventInvalidPosition, Position: pos})
			continue
		}
		valid++
		slot := pos - 1
		if w.next >= w.ranking.Len() {
			out.Events = append(out.Events, Event{
				Kind:     EventNoReplacement,
				Position: pos,
				Previous: w.displayed[slot],
				Current:  w.displayed[slot],
			})
			continue
		}
		prev := w.displayed[slot]
		w.displayed[slot] = w.next
		w.next++
		out.Events = append(out.Events, Event{Kind: EventReplaced, Position: pos, Previous: prev, Current: w.displayed[slot]})
	}
	if valid == 0 {
		out.Events = append(out.Events, Event{Kind: EventNoSelections})
	}
	return out, nil
}

// Finish ends the session.
func (w *Window) Finish() {
	w.state = StateExhausted
}
