package waypoint

import (
	"slices"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/state"
)

// ListStore holds the per-player waypoint lists.
type ListStore interface {
	GetWaypoints(uuid.UUID) []state.Waypoint
	UpdateWaypoints(uuid.UUID, func([]state.Waypoint) []state.Waypoint) []state.Waypoint
}

// Directory manages each player's named waypoints. Names are unique per
// player, compared case-insensitively. Every change computes the full new
// list and replaces the stored one.
type Directory struct {
	store    ListStore
	selector *Selector
}

func NewDirectory(store ListStore, selector *Selector) *Directory {
	return &Directory{store: store, selector: selector}
}

// Selector returns the active waypoint selector the directory keeps in sync.
func (d *Directory) Selector() *Selector {
	return d.selector
}

// List returns the player's waypoints in insertion order.
func (d *Directory) List(id uuid.UUID) []state.Waypoint {
	return d.store.GetWaypoints(id)
}

// Find looks a waypoint up by name.
func (d *Directory) Find(id uuid.UUID, name string) (state.Waypoint, bool) {
	for _, wp := range d.store.GetWaypoints(id) {
		if wp.Is(name) {
			return wp, true
		}
	}
	return state.Waypoint{}, false
}

// Set stores wp, replacing any waypoint with the same name regardless of case.
// The new waypoint goes to the end of the list.
func (d *Directory) Set(id uuid.UUID, wp state.Waypoint) {
	d.store.UpdateWaypoints(id, func(wps []state.Waypoint) []state.Waypoint {
		wps = slices.DeleteFunc(wps, func(w state.Waypoint) bool { return w.Is(wp.Name) })
		return append(wps, wp)
	})
}

// Remove deletes the named waypoint. When it was the active waypoint the
// pointer is cleared as well.
func (d *Directory) Remove(id uuid.UUID, name string) (removed, clearedActive bool) {
	if _, ok := d.Find(id, name); !ok {
		return false, false
	}

	d.store.UpdateWaypoints(id, func(wps []state.Waypoint) []state.Waypoint {
		n := len(wps)
		wps = slices.DeleteFunc(wps, func(w state.Waypoint) bool { return w.Is(name) })
		removed = len(wps) != n
		return wps
	})
	if !removed {
		return false, false
	}

	return true, d.selector.ClearIf(id, name)
}

// View toggles the named waypoint as the active one, using the stored name's
// casing. found is false when the player has no such waypoint; nothing
// changes in that case.
func (d *Directory) View(id uuid.UUID, name string) (wp state.Waypoint, active, found bool) {
	wp, found = d.Find(id, name)
	if !found {
		return state.Waypoint{}, false, false
	}
	return wp, d.selector.Select(id, wp.Name), true
}
