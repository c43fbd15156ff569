package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/game"
)

// share sends the actor's block coordinates to one player, or to everyone
// online when no player is named.
func (h *Handler) share(ctx context.Context, cmdCtx *CommandContext) error {
	actor := cmdCtx.Actor
	pos, err := h.world.Position(actor.Id)
	if err != nil {
		return err
	}

	msg, err := ExpandTemplate(msgShare, map[string]any{
		"Name":   actor.Name,
		"Coords": display.BlockCoords(pos),
		"World":  pos.World,
	})
	if err != nil {
		return fmt.Errorf("expanding message: %w", err)
	}

	if len(cmdCtx.Args) == 0 {
		var ids []uuid.UUID
		h.world.ForEachPlayer(func(id uuid.UUID, _ *game.PlayerState) {
			ids = append(ids, id)
		})
		for _, id := range ids {
			if err := h.pub.PublishToPlayer(id, []byte(msg)); err != nil {
				slog.WarnContext(ctx, "sharing coordinates", "player", id, "error", err)
			}
		}
		return nil
	}

	target, err := h.onlinePlayer(cmdCtx.Args[0])
	if err != nil {
		return err
	}
	if err := h.pub.PublishToPlayer(target.Id, []byte(msg)); err != nil {
		return err
	}
	return h.reply(actor.Id, msgShareSent, map[string]any{"Name": target.Name})
}
