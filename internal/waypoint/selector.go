package waypoint

import (
	"strings"

	"github.com/google/uuid"
)

// ActiveStore holds the per-player active waypoint pointer.
type ActiveStore interface {
	GetActiveWaypointName(uuid.UUID) (string, bool)
	UpdateActiveWaypointName(uuid.UUID, func(current string, ok bool) string) string
}

// Selector is the per-player active waypoint state machine. A player is
// either unset or viewing exactly one waypoint by name. Every transition is
// written through the store.
type Selector struct {
	store ActiveStore
}

func NewSelector(store ActiveStore) *Selector {
	return &Selector{store: store}
}

// Select makes name active. Selecting the waypoint that is already active
// toggles it off. It reports whether a waypoint is active afterwards.
func (s *Selector) Select(id uuid.UUID, name string) bool {
	next := s.store.UpdateActiveWaypointName(id, func(cur string, ok bool) string {
		if ok && strings.EqualFold(cur, name) {
			return ""
		}
		return name
	})
	return next != ""
}

// Clear unsets the active waypoint and reports whether one was set.
func (s *Selector) Clear(id uuid.UUID) bool {
	var was bool
	s.store.UpdateActiveWaypointName(id, func(_ string, ok bool) string {
		was = ok
		return ""
	})
	return was
}

// ClearIf unsets the active waypoint only when it names name.
func (s *Selector) ClearIf(id uuid.UUID, name string) bool {
	var cleared bool
	s.store.UpdateActiveWaypointName(id, func(cur string, ok bool) string {
		if ok && strings.EqualFold(cur, name) {
			cleared = true
			return ""
		}
		return cur
	})
	return cleared
}

// Active returns the active waypoint name, if any.
func (s *Selector) Active(id uuid.UUID) (string, bool) {
	return s.store.GetActiveWaypointName(id)
}

// IsActive reports whether name is the active waypoint.
func (s *Selector) IsActive(id uuid.UUID, name string) bool {
	cur, ok := s.store.GetActiveWaypointName(id)
	return ok && strings.EqualFold(cur, name)
}
