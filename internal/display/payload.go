package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Snapshot is an immutable copy of the host state for one player, taken at
// the start of a refresh. Nothing in it refers back into live host objects.
type Snapshot struct {
	Position    Point
	Yaw         float64
	Environment Environment
	WorldTime   int64
	Biome       string
}

// Target is the active waypoint resolved for display.
type Target struct {
	Name     string
	Position Point
	// WorldLabel is shown instead of distance when the target is in another world.
	WorldLabel string
}

// Payload is the derived action bar content for one refresh. Each non-empty
// field carries its own trailing space.
type Payload struct {
	Coordinates string
	Direction   string
	Clock       string
	Biome       string
	Waypoint    string
}

// Compute derives the payload for a snapshot. An option contributes only when
// the player has it and the server enables it.
func Compute(snap Snapshot, prefs OptionSet, enabled Options, target *Target) Payload {
	var p Payload

	show := func(o DisplayOption) bool {
		return prefs.Has(o) && enabled.Enabled(o)
	}

	if show(OptionCoordinates) {
		p.Coordinates = fmt.Sprintf("XYZ: %d %d %d ",
			blockCoord(snap.Position.X), blockCoord(snap.Position.Y), blockCoord(snap.Position.Z))
	}

	if show(OptionDirection) {
		p.Direction = Heading(snap.Yaw) + " "
	}

	if show(OptionTime) && snap.Environment.HasDayCycle() {
		p.Clock = Clock(snap.WorldTime) + " "
	}

	if show(OptionBiome) && snap.Biome != "" {
		p.Biome = "[" + BiomeLabel(snap.Biome) + "] "
	}

	if show(OptionWaypoint) && target != nil {
		p.Waypoint = waypointLine(snap.Position, *target)
	}

	return p
}

func waypointLine(origin Point, t Target) string {
	if !origin.SameWorld(t.Position) {
		label := t.WorldLabel
		if label == "" {
			label = t.Position.World
		}
		return fmt.Sprintf("WP: %s (in %s) ", t.Name, label)
	}

	dist, label := WaypointBearing(origin, t.Position)
	return fmt.Sprintf("WP: %s %sm %s ", t.Name, formatMeters(dist), label)
}

// formatMeters rounds half away from zero.
func formatMeters(d float64) string {
	return strconv.FormatFloat(math.Round(d), 'f', 0, 64)
}

// blockCoord is the integer block a coordinate falls in.
func blockCoord(v float64) int64 {
	return int64(math.Floor(v))
}

// Empty reports whether nothing would be shown.
func (p Payload) Empty() bool {
	return p.Coordinates == "" && p.Direction == "" && p.Clock == "" && p.Biome == "" && p.Waypoint == ""
}

// String concatenates the fields in display order.
func (p Payload) String() string {
	var b strings.Builder
	b.WriteString(p.Coordinates)
	b.WriteString(p.Direction)
	b.WriteString(p.Clock)
	b.WriteString(p.Biome)
	b.WriteString(p.Waypoint)
	return b.String()
}
