package commands

import "context"

// quit flags the session to end. The session saves state on the way out.
func (h *Handler) quit(ctx context.Context, cmdCtx *CommandContext) error {
	return h.world.SetPlayerQuit(cmdCtx.Actor.Id, true)
}
