package schedule

import "confsched/internal/models"

// Options fixes query policy at build time.
type Options struct {
	// ExcludeCancelledFromNext drops cancelled events from NextByRoom.
	// Off by default: a cancelled talk still occupies its slot on the
	// published schedule, and surfacing it beats showing the room as
	// having nothing coming up.
	ExcludeCancelledFromNext bool
}

// Index answers room and time queries over one conference's schedule.
// It is built once and never mutated, so it is safe to share across
// goroutines without locking.
type Index struct {
	events []models.Event
	opts   Options
}

// New builds an Index over events, which must already be in document
// order; every query that returns a sequence preserves that order.
func New(events []models.Event, opts Options) *Index {
	return &Index{events: events, opts: opts}
}

// Events returns the full schedule in document order. Callers must not
// modify the returned slice.
func (ix *Index) Events() []models.Event {
	return ix.events
}

// Rooms returns the set of raw room labels appearing anywhere in the
// schedule, verbatim.
func (ix *Index) Rooms() map[string]struct{} {
	rooms := make(map[string]struct{})
	for _, ev := range ix.events {
		for _, r := range ev.Rooms {
			rooms[r] = struct{}{}
		}
	}
	return rooms
}

// RoomsCanonical returns Rooms mapped through Normalize. Two raw labels
// that normalize to the same canonical name merge silently.
func (ix *Index) RoomsCanonical() map[string]struct{} {
	rooms := make(map[string]struct{})
	for r := range ix.Rooms() {
		rooms[Normalize(r)] = struct{}{}
	}
	return rooms
}

// EventsInRoom returns the content events scheduled in the given room,
// in document order. The name may be raw or already canonical; it is
// normalized before matching.
func (ix *Index) EventsInRoom(name string) []models.Event {
	canonical := Normalize(name)

	var events []models.Event
	for _, ev := range ix.events {
		if ev.IsContent() && inRoom(ev, canonical) {
			events = append(events, ev)
		}
	}
	return events
}

// CurrentByRoom maps each canonical room name to the event in progress
// at asOf. Meta events (breaks, changeovers) count too, so a room in a
// changeover is never reported idle. Timestamps compare lexically; asOf
// must use the feed's own layout. When events overlap in a room, the
// one later in document order wins.
func (ix *Index) CurrentByRoom(asOf string) map[string]models.Event {
	current := make(map[string]models.Event)
	for _, ev := range ix.events {
		if !(ev.Start <= asOf && asOf < ev.End) {
			continue
		}
		for _, r := range ev.Rooms {
			current[Normalize(r)] = ev
		}
	}
	return current
}

// NextByRoom maps each canonical room name to its earliest-starting
// content event strictly after asOf. Cancelled events are included
// unless the index was built with ExcludeCancelledFromNext.
func (ix *Index) NextByRoom(asOf string) map[string]models.Event {
	next := make(map[string]models.Event)
	for _, ev := range ix.events {
		if !ev.IsContent() || ev.Start <= asOf {
			continue
		}
		if ix.opts.ExcludeCancelledFromNext && ev.IsCancelled() {
			continue
		}
		for _, r := range ev.Rooms {
			canonical := Normalize(r)
			if best, ok := next[canonical]; !ok || ev.Start < best.Start {
				next[canonical] = ev
			}
		}
	}
	return next
}

func inRoom(ev models.Event, canonical string) bool {
	for _, r := range ev.Rooms {
		if Normalize(r) == canonical {
			return true
		}
	}
	return false
}
