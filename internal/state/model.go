package state

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
)

// Waypoint is a named point of interest owned by a single player.
type Waypoint struct {
	Name  string
	World string
	X     float64
	Y     float64
	Z     float64
}

// Point returns the waypoint's location.
func (w Waypoint) Point() display.Point {
	return display.Point{World: w.World, X: w.X, Y: w.Y, Z: w.Z}
}

// Is reports whether the waypoint answers to name. Names compare case-insensitively.
func (w Waypoint) Is(name string) bool {
	return strings.EqualFold(w.Name, name)
}

// Snapshot holds every durable record, keyed by player.
type Snapshot struct {
	Preferences map[uuid.UUID]display.OptionSet
	Waypoints   map[uuid.UUID][]Waypoint
	Active      map[uuid.UUID]string
}

// NewSnapshot returns a snapshot with empty maps.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Preferences: map[uuid.UUID]display.OptionSet{},
		Waypoints:   map[uuid.UUID][]Waypoint{},
		Active:      map[uuid.UUID]string{},
	}
}
