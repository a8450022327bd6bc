package booking

import (
	"errors"
	"sync"
)

var ErrSlotTaken = errors.New("time slot already booked for this doctor")

// Registry tracks which consultation slots are occupied, keyed by doctor and
// weekday. It is the single authoritative source of truth for availability:
// one instance is created at process start and handed to every collaborator.
//
// The registry grows monotonically. There is no cancellation, so slots are
// released only by process restart.
type Registry struct {
	mu       sync.Mutex
	occupied map[string]map[Weekday]map[TimeSlot]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		occupied: make(map[string]map[Weekday]map[TimeSlot]struct{}),
	}
}

// IsFree reports whether no prior commit exists for the exact
// (doctor, weekday, time) triple. Unknown doctors or weekdays simply read as
// free: absence in the map equals an empty set.
func (r *Registry) IsFree(doctor string, day Weekday, t TimeSlot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isFreeLocked(doctor, day, t)
}

func (r *Registry) isFreeLocked(doctor string, day Weekday, t TimeSlot) bool {
	days, ok := r.occupied[doctor]
	if !ok {
		return true
	}
	times, ok := days[day]
	if !ok {
		return true
	}
	_, taken := times[t]
	return !taken
}

// Book adds the triple to the occupied set, creating intermediate levels on
// first write. It is idempotent and never rejects a duplicate; callers that
// need conflict detection use TryBook.
func (r *Registry) Book(doctor string, day Weekday, t TimeSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookLocked(doctor, day, t)
}

func (r *Registry) bookLocked(doctor string, day Weekday, t TimeSlot) {
	days, ok := r.occupied[doctor]
	if !ok {
		days = make(map[Weekday]map[TimeSlot]struct{})
		r.occupied[doctor] = days
	}
	times, ok := days[day]
	if !ok {
		times = make(map[TimeSlot]struct{})
		days[day] = times
	}
	times[t] = struct{}{}
}

// TryBook reserves the slot only if it is currently free, as a single
// indivisible step. Checking and committing under one lock closes the
// check-then-act race that separate IsFree/Book calls would reopen under
// concurrent sessions.
func (r *Registry) TryBook(doctor string, day Weekday, t TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.isFreeLocked(doctor, day, t) {
		return ErrSlotTaken
	}
	r.bookLocked(doctor, day, t)
	return nil
}

// FreeSlots lists the still-open times for a doctor on a day, in daily order.
func (r *Registry) FreeSlots(doctor string, day Weekday) []TimeSlot {
	r.mu.Lock()
	defer r.mu.Unlock()
	var free []TimeSlot
	for _, t := range TimeSlots() {
		if r.isFreeLocked(doctor, day, t) {
			free = append(free, t)
		}
	}
	return free
}

// BookedCount reports how many slots are currently occupied across the whole
// registry. Used for gauges and the simulator's final tally.
func (r *Registry) BookedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, days := range r.occupied {
		for _, times := range days {
			n += len(times)
		}
	}
	return n
}
