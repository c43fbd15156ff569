package commands

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/game"
)

type whoLine struct {
	Name  string
	World string
	Admin bool
}

func (h *Handler) who(ctx context.Context, cmdCtx *CommandContext) error {
	var players []whoLine
	h.world.ForEachPlayer(func(_ uuid.UUID, ps *game.PlayerState) {
		players = append(players, whoLine{Name: ps.Name, World: ps.Position.World, Admin: ps.Admin})
	})
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })

	return h.reply(cmdCtx.Actor.Id, msgWho, map[string]any{"Players": players})
}
