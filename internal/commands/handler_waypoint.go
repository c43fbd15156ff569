package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/state"
)

// waypointLine is one row of a waypoint listing.
type waypointLine struct {
	Name   string
	Active bool
	Coords string
}

func (h *Handler) waypoint(ctx context.Context, cmdCtx *CommandContext) error {
	args := cmdCtx.Args
	if len(args) < 1 {
		return NewUserError(msgWaypointUsage)
	}

	id := cmdCtx.Actor.Id
	switch strings.ToLower(args[0]) {
	case "set":
		return h.waypointSet(id, args[1:])
	case "remove":
		return h.waypointRemove(id, args[1:])
	case "list":
		return h.waypointList(id)
	case "view":
		return h.waypointView(id, args[1:])
	default:
		return NewUserError(msgWaypointUsage)
	}
}

// waypointSet stores a waypoint at the actor's position, or at the given
// coordinates in the actor's world.
func (h *Handler) waypointSet(id uuid.UUID, args []string) error {
	if len(args) != 1 && len(args) != 4 {
		return NewUserError(msgWaypointSetUsage)
	}

	wp, err := h.newWaypoint(id, args[0], args[1:])
	if err != nil {
		return err
	}

	h.dir.Set(id, wp)
	return h.reply(id, msgWaypointSet, map[string]any{"Name": wp.Name, "Coords": display.BlockCoords(wp.Point())})
}

// newWaypoint builds a waypoint in the world of the player at origin.
func (h *Handler) newWaypoint(origin uuid.UUID, name string, coords []string) (state.Waypoint, error) {
	pos, err := h.world.Position(origin)
	if err != nil {
		return state.Waypoint{}, err
	}

	if len(coords) > 0 {
		x, y, z, err := parseCoords(coords)
		if err != nil {
			return state.Waypoint{}, err
		}
		pos.X, pos.Y, pos.Z = x, y, z
	}

	return state.Waypoint{Name: name, World: pos.World, X: pos.X, Y: pos.Y, Z: pos.Z}, nil
}

func (h *Handler) waypointRemove(id uuid.UUID, args []string) error {
	if len(args) != 1 {
		return NewUserError(msgWaypointRmUsage)
	}

	name := args[0]
	removed, cleared := h.dir.Remove(id, name)
	if !removed {
		return userErrorf(msgWaypointNotFound, map[string]any{"Name": name})
	}
	if cleared {
		if err := h.reply(id, msgActiveCleared, nil); err != nil {
			return err
		}
	}
	return h.reply(id, msgWaypointRemoved, map[string]any{"Name": name})
}

func (h *Handler) waypointList(id uuid.UUID) error {
	lines := h.listLines(id)
	if len(lines) == 0 {
		return NewUserError(msgNoWaypoints)
	}
	return h.reply(id, msgWaypointList, map[string]any{"Title": "Your waypoints:", "Waypoints": lines})
}

func (h *Handler) listLines(id uuid.UUID) []waypointLine {
	var lines []waypointLine
	for _, wp := range h.dir.List(id) {
		lines = append(lines, waypointLine{
			Name:   wp.Name,
			Active: h.dir.Selector().IsActive(id, wp.Name),
			Coords: display.BlockCoords(wp.Point()),
		})
	}
	return lines
}

// waypointView toggles the named waypoint as the active one. Without a name
// it clears the active waypoint.
func (h *Handler) waypointView(id uuid.UUID, args []string) error {
	if len(h.dir.List(id)) == 0 {
		return NewUserError(msgNoWaypoints)
	}

	if len(args) == 0 {
		if h.dir.Selector().Clear(id) {
			return h.reply(id, msgViewCleared, nil)
		}
		return nil
	}

	wp, active, found := h.dir.View(id, args[0])
	if !found {
		return userErrorf(msgWaypointNotFound, map[string]any{"Name": args[0]})
	}
	if !active {
		return h.reply(id, msgViewCleared, nil)
	}
	return h.reply(id, msgViewing, map[string]any{"Name": wp.Name})
}
