package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/game"
)

const (
	DefaultActionBarTTL = 2 * time.Second
	maxLoginTries       = 3
	msgBuffer           = 64
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,16}$`)

// Records is the per-player state touched on connect and disconnect.
type Records interface {
	Connect(uuid.UUID) display.OptionSet
	Flush(uuid.UUID)
}

// CommandRunner executes one line of player input.
type CommandRunner interface {
	Exec(ctx context.Context, id uuid.UUID, line string) error
}

type PlayerManager struct {
	world   *game.WorldState
	cmd     CommandRunner
	records Records

	defaultWorld string
	spawn        *display.Point
	admins       map[string]bool
	barTTL       time.Duration
	onConnect    []func(context.Context, uuid.UUID)
}

type PlayerManagerOpt func(*PlayerManager)

// WithSpawn overrides the default world's spawn point.
func WithSpawn(p display.Point) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.spawn = &p
	}
}

// WithAdmins grants admin commands to the named players.
func WithAdmins(names ...string) PlayerManagerOpt {
	return func(m *PlayerManager) {
		for _, n := range names {
			m.admins[strings.ToLower(n)] = true
		}
	}
}

// WithActionBarTTL sets how long an action bar stays visible without a refresh.
func WithActionBarTTL(d time.Duration) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.barTTL = d
	}
}

// WithConnectHook runs fn for every player after they are registered.
func WithConnectHook(fn func(context.Context, uuid.UUID)) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.onConnect = append(m.onConnect, fn)
	}
}

func NewPlayerManager(world *game.WorldState, cmd CommandRunner, records Records, defaultWorld string, opts ...PlayerManagerOpt) *PlayerManager {
	m := &PlayerManager{
		world:        world,
		cmd:          cmd,
		records:      records,
		defaultWorld: defaultWorld,
		admins:       map[string]bool{},
		barTTL:       DefaultActionBarTTL,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RunSession logs a connection in, plays until it ends and saves the
// player's state on the way out. A non-empty user skips the name prompt
// when it is a valid name that is not already online.
func (m *PlayerManager) RunSession(ctx context.Context, conn io.ReadWriter, user string) error {
	prompter := internal.NewPrompter(conn)

	name := user
	if ok, _ := m.validName(name); !ok {
		var err error
		name, err = m.login(prompter)
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}
	}

	pos, err := m.spawnPoint()
	if err != nil {
		return err
	}

	msgs := make(chan []byte, msgBuffer)
	ps, err := m.world.AddPlayer(name, m.admins[strings.ToLower(name)], msgs, pos)
	if err != nil {
		return fmt.Errorf("adding player %s: %w", name, err)
	}
	id := ps.Id

	defer func() {
		ps.UnsubscribeAll()
		if err := m.world.RemovePlayer(id); err != nil {
			slog.WarnContext(ctx, "removing player", "player", name, "error", err)
		}
		m.records.Flush(id)
		slog.InfoContext(ctx, "player disconnected", "player", name, "id", id)
	}()

	m.records.Connect(id)
	slog.InfoContext(ctx, "player connected", "player", name, "id", id, "world", pos.World)

	s := newSession(conn, prompter, ps, m.world, m.cmd, msgs, m.barTTL)
	if err := s.subscribe(); err != nil {
		return err
	}

	for _, fn := range m.onConnect {
		fn(ctx, id)
	}

	return s.play(ctx)
}

func (m *PlayerManager) login(p *internal.Prompter) (string, error) {
	return p.Prompt("By what name do you wish to be known? ",
		internal.WithMaxTries(maxLoginTries),
		internal.WithValidator(m.validName),
	)
}

func (m *PlayerManager) validName(s string) (bool, string) {
	if !namePattern.MatchString(s) {
		return false, "Names are 3 to 16 letters, digits or underscores.\n"
	}
	if m.world.GetPlayer(game.PlayerId(s)) != nil {
		return false, "That player is already online.\n"
	}
	return true, ""
}

func (m *PlayerManager) spawnPoint() (display.Point, error) {
	if m.spawn != nil {
		return *m.spawn, nil
	}

	pos, err := m.world.Spawn(m.defaultWorld)
	if errors.Is(err, game.ErrWorldNotFound) {
		return display.Point{}, fmt.Errorf("default world: %w", err)
	}
	return pos, err
}

// Start runs until the service stops. Sessions end with their connections.
func (m *PlayerManager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
