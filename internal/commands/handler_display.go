package commands

import (
	"context"
	"strings"

	"github.com/pixil98/go-titleinfo/internal/display"
)

// display toggles one action bar field for the actor. With no on|off
// argument the field flips.
func (h *Handler) display(ctx context.Context, cmdCtx *CommandContext) error {
	args := cmdCtx.Args
	if len(args) < 1 {
		return userErrorf(msgDisplayUsage, map[string]any{"Types": h.enabledTypes()})
	}

	opt, ok := h.enabledOption(args[0])
	if !ok {
		return userErrorf(msgDisplayDisabled, map[string]any{"Type": strings.ToLower(args[0])})
	}

	id := cmdCtx.Actor.Id
	var enable bool
	h.prefs.UpdatePreferences(id, func(set display.OptionSet) {
		if len(args) > 1 {
			enable = strings.EqualFold(args[1], "on")
		} else {
			enable = !set.Has(opt)
		}

		if enable {
			set.Add(opt)
		} else {
			set.Remove(opt)
		}
	})

	tmpl := msgDisplayOff
	if enable {
		tmpl = msgDisplayOn
	}
	return h.reply(id, tmpl, map[string]any{"Type": opt})
}

// enabledOption parses a display type and checks the server allows it.
func (h *Handler) enabledOption(s string) (display.DisplayOption, bool) {
	opt, err := display.ParseOption(s)
	if err != nil || !h.enabled.Enabled(opt) {
		return "", false
	}
	return opt, true
}

func (h *Handler) enabledTypes() []string {
	var types []string
	for _, o := range display.AllOptions {
		if h.enabled.Enabled(o) {
			types = append(types, o.String())
		}
	}
	return types
}
