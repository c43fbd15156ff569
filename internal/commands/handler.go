package commands

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/game"
	"github.com/pixil98/go-titleinfo/internal/waypoint"
)

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// CommandContext is what a command sees of the player that ran it.
type CommandContext struct {
	Actor *game.PlayerState
	Args  []string
}

// Command is a registered command.
type Command struct {
	Name        string
	Category    string
	Usage       string
	Description string
	Admin       bool
	Func        CommandFunc
}

// Preferences is the display preference store commands mutate.
type Preferences interface {
	GetPreferences(uuid.UUID) display.OptionSet
	UpdatePreferences(uuid.UUID, func(display.OptionSet)) display.OptionSet
}

type Handler struct {
	world    *game.WorldState
	prefs    Preferences
	dir      *waypoint.Directory
	pub      game.Publisher
	enabled  display.Options
	commands map[string]*Command
}

func NewHandler(world *game.WorldState, prefs Preferences, dir *waypoint.Directory, pub game.Publisher, enabled display.Options) *Handler {
	h := &Handler{
		world:    world,
		prefs:    prefs,
		dir:      dir,
		pub:      pub,
		enabled:  enabled,
		commands: make(map[string]*Command),
	}

	for _, c := range []*Command{
		{Name: "display", Category: "info", Usage: "display <type> [on|off]", Description: "Toggle an action bar field.", Func: h.display},
		{Name: "share", Category: "info", Usage: "share [player]", Description: "Share your coordinates.", Func: h.share},
		{Name: "waypoint", Category: "info", Usage: "waypoint <set|remove|list|view> ...", Description: "Manage your waypoints.", Func: h.waypoint},
		{Name: "admin", Category: "admin", Usage: "admin <waypoint|display> <player> ...", Description: "Manage another player.", Admin: true, Func: h.admin},
		{Name: "goto", Category: "movement", Usage: "goto <x> <y> <z> [world]", Description: "Move to a position.", Func: h.gotoPosition},
		{Name: "face", Category: "movement", Usage: "face <yaw>", Description: "Turn to face a yaw in degrees.", Func: h.face},
		{Name: "who", Category: "general", Usage: "who", Description: "List online players.", Func: h.who},
		{Name: "help", Category: "general", Usage: "help [command]", Description: "Show available commands.", Func: h.help},
		{Name: "quit", Category: "general", Usage: "quit", Description: "Leave the server.", Func: h.quit},
	} {
		if err := h.Register(c); err != nil {
			panic(err)
		}
	}

	return h
}

// Register adds a command. Names are case-insensitive.
func (h *Handler) Register(c *Command) error {
	if c == nil || c.Name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if c.Func == nil {
		return fmt.Errorf("command %q has no func", c.Name)
	}
	name := strings.ToLower(c.Name)
	if _, exists := h.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	h.commands[name] = c
	return nil
}

// Exec runs one line of player input.
func (h *Handler) Exec(ctx context.Context, id uuid.UUID, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	actor := h.world.GetPlayer(id)
	if actor == nil {
		return game.ErrPlayerNotFound
	}

	cmd, ok := h.commands[strings.ToLower(fields[0])]
	if !ok {
		return userErrorf(msgUnknownCommand, map[string]any{"Name": fields[0]})
	}
	if cmd.Admin && !actor.Admin {
		return userErrorf(msgNoPermission, map[string]any{"Name": cmd.Name})
	}

	return cmd.Func(ctx, &CommandContext{Actor: actor, Args: fields[1:]})
}

// Commands returns the registered commands sorted by name.
func (h *Handler) Commands() []*Command {
	cmds := make([]*Command, 0, len(h.commands))
	for _, c := range h.commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// reply expands tmpl and sends it to a player.
func (h *Handler) reply(id uuid.UUID, tmpl string, data any) error {
	msg, err := ExpandTemplate(tmpl, data)
	if err != nil {
		return fmt.Errorf("expanding message: %w", err)
	}
	return h.pub.PublishToPlayer(id, []byte(msg))
}

// onlinePlayer looks up a connected player by name.
func (h *Handler) onlinePlayer(name string) (*game.PlayerState, error) {
	ps := h.world.FindPlayerByName(name)
	if ps == nil {
		return nil, userErrorf(msgNotOnline, map[string]any{"Name": name})
	}
	return ps, nil
}

// parseCoords parses three numeric arguments. Anything that is not a finite
// number fails with the invalid coordinates message.
func parseCoords(args []string) (x, y, z float64, err error) {
	if len(args) != 3 {
		return 0, 0, 0, NewUserError(msgInvalidCoords)
	}

	var vals [3]float64
	for i, a := range args {
		v, perr := strconv.ParseFloat(a, 64)
		if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, NewUserError(msgInvalidCoords)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
