package commands

import (
	"context"
	"strings"

	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/game"
)

// admin manages another online player's waypoints and display fields.
func (h *Handler) admin(ctx context.Context, cmdCtx *CommandContext) error {
	args := cmdCtx.Args
	if len(args) < 2 {
		return NewUserError(msgAdminUsage)
	}

	kind := strings.ToLower(args[0])
	if kind != "waypoint" && kind != "display" {
		return NewUserError(msgAdminUsage)
	}

	target, err := h.onlinePlayer(args[1])
	if err != nil {
		return err
	}

	if kind == "waypoint" {
		return h.adminWaypoint(cmdCtx.Actor, target, args[2:])
	}
	return h.adminDisplay(cmdCtx.Actor, target, args[2:])
}

func (h *Handler) adminWaypoint(actor, target *game.PlayerState, args []string) error {
	if len(args) < 1 {
		return NewUserError(msgAdminWaypointUsage)
	}

	sub := strings.ToLower(args[0])
	args = args[1:]
	data := map[string]any{"Target": target.Name}

	switch sub {
	case "set":
		if len(args) != 1 && len(args) != 4 {
			return NewUserError(msgAdminWaypointUsage)
		}
		// The admin's own position and world are used.
		wp, err := h.newWaypoint(actor.Id, args[0], args[1:])
		if err != nil {
			return err
		}
		h.dir.Set(target.Id, wp)

		data["Name"] = wp.Name
		data["Coords"] = display.BlockCoords(wp.Point())
		if err := h.reply(actor.Id, msgAdminWaypointSet, data); err != nil {
			return err
		}
		return h.reply(target.Id, msgTargetWaypointSet, data)

	case "remove":
		if len(args) != 1 {
			return NewUserError(msgAdminWaypointUsage)
		}
		data["Name"] = args[0]
		removed, cleared := h.dir.Remove(target.Id, args[0])
		if !removed {
			return userErrorf(msgAdminNotFound, data)
		}
		if cleared {
			if err := h.reply(target.Id, msgActiveCleared, nil); err != nil {
				return err
			}
		}
		return h.reply(actor.Id, msgAdminWaypointRemoved, data)

	case "list":
		lines := h.listLines(target.Id)
		if len(lines) == 0 {
			return userErrorf(msgAdminNoWaypoints, data)
		}
		return h.reply(actor.Id, msgWaypointList, map[string]any{
			"Title":     "Waypoints for " + target.Name + ":",
			"Waypoints": lines,
		})

	case "view":
		if len(args) != 1 {
			return NewUserError(msgAdminWaypointUsage)
		}
		data["Name"] = args[0]
		wp, active, found := h.dir.View(target.Id, args[0])
		if !found {
			return userErrorf(msgAdminNotFound, data)
		}
		data["Name"] = wp.Name
		if !active {
			if err := h.reply(actor.Id, msgAdminViewCleared, data); err != nil {
				return err
			}
			return h.reply(target.Id, msgTargetViewCleared, data)
		}
		if err := h.reply(actor.Id, msgAdminViewing, data); err != nil {
			return err
		}
		return h.reply(target.Id, msgTargetViewing, data)

	case "tp":
		if len(args) != 1 {
			return NewUserError(msgAdminWaypointUsage)
		}
		data["Name"] = args[0]
		wp, found := h.dir.Find(target.Id, args[0])
		if !found {
			return userErrorf(msgAdminNotFound, data)
		}
		if err := h.world.MovePlayer(actor.Id, wp.Point()); err != nil {
			return h.noWorld(wp.World, err)
		}
		return h.reply(actor.Id, msgAdminTeleported, data)

	default:
		return NewUserError(msgAdminWaypointUsage)
	}
}

func (h *Handler) adminDisplay(actor, target *game.PlayerState, args []string) error {
	if len(args) != 2 {
		return NewUserError(msgAdminDisplayUsage)
	}

	action := strings.ToLower(args[0])
	if action != "enable" && action != "disable" {
		return NewUserError(msgAdminDisplayUsage)
	}

	opt, ok := h.enabledOption(args[1])
	if !ok {
		return userErrorf(msgAdminDisplayDisabled, map[string]any{"Type": strings.ToLower(args[1])})
	}

	enable := action == "enable"
	h.prefs.UpdatePreferences(target.Id, func(set display.OptionSet) {
		if enable {
			set.Add(opt)
		} else {
			set.Remove(opt)
		}
	})

	data := map[string]any{"Type": opt, "Target": target.Name}
	adminMsg, targetMsg := msgAdminDisplayOff, msgTargetDisplayOff
	if enable {
		adminMsg, targetMsg = msgAdminDisplayOn, msgTargetDisplayOn
	}
	if err := h.reply(actor.Id, adminMsg, data); err != nil {
		return err
	}
	return h.reply(target.Id, targetMsg, data)
}
