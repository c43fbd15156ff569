package commands

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/game"
)

// gotoPosition moves the actor, optionally into another world.
func (h *Handler) gotoPosition(ctx context.Context, cmdCtx *CommandContext) error {
	args := cmdCtx.Args
	if len(args) != 3 && len(args) != 4 {
		return NewUserError(msgGotoUsage)
	}

	id := cmdCtx.Actor.Id
	pos, err := h.world.Position(id)
	if err != nil {
		return err
	}

	x, y, z, err := parseCoords(args[:3])
	if err != nil {
		return err
	}
	pos.X, pos.Y, pos.Z = x, y, z
	if len(args) == 4 {
		pos.World = args[3]
	}

	if err := h.world.MovePlayer(id, pos); err != nil {
		return h.noWorld(pos.World, err)
	}
	return h.reply(id, msgMoved, map[string]any{"Coords": display.BlockCoords(pos), "World": pos.World})
}

func (h *Handler) face(ctx context.Context, cmdCtx *CommandContext) error {
	if len(cmdCtx.Args) != 1 {
		return NewUserError(msgFaceUsage)
	}

	yaw, err := strconv.ParseFloat(cmdCtx.Args[0], 64)
	if err != nil || math.IsNaN(yaw) || math.IsInf(yaw, 0) {
		return NewUserError(msgFaceUsage)
	}

	id := cmdCtx.Actor.Id
	if err := h.world.TurnPlayer(id, yaw); err != nil {
		return err
	}
	return h.reply(id, msgFacing, map[string]any{"Heading": display.Heading(yaw)})
}

// noWorld turns an unknown world into a player-facing error.
func (h *Handler) noWorld(world string, err error) error {
	if errors.Is(err, game.ErrWorldNotFound) {
		return userErrorf(msgNoWorld, map[string]any{"Name": world, "Worlds": h.world.WorldIds()})
	}
	return err
}
