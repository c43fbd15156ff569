package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-titleinfo/internal/display"
)

// help lists commands grouped by category, or details one command.
func (h *Handler) help(ctx context.Context, cmdCtx *CommandContext) error {
	actor := cmdCtx.Actor

	if len(cmdCtx.Args) > 0 {
		cmd, ok := h.commands[strings.ToLower(cmdCtx.Args[0])]
		if !ok || (cmd.Admin && !actor.Admin) {
			return userErrorf(msgUnknownCommand, map[string]any{"Name": cmdCtx.Args[0]})
		}
		text := fmt.Sprintf("%s\n  %s", cmd.Usage, display.Wrap(cmd.Description))
		return h.pub.PublishToPlayer(actor.Id, []byte(text))
	}

	groups := make(map[string][]string)
	for _, cmd := range h.commands {
		if cmd.Admin && !actor.Admin {
			continue
		}
		groups[cmd.Category] = append(groups[cmd.Category], cmd.Name)
	}

	categories := make([]string, 0, len(groups))
	for cat := range groups {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	lines := []string{"Available commands:"}
	for _, cat := range categories {
		cmds := groups[cat]
		sort.Strings(cmds)
		lines = append(lines, display.Wrap(fmt.Sprintf("  %s: %s", display.Capitalize(cat), strings.Join(cmds, ", "))))
	}

	return h.pub.PublishToPlayer(actor.Id, []byte(strings.Join(lines, "\n")))
}
