package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/game"
	"github.com/pixil98/go-titleinfo/internal/player"
)

type SpawnConfig struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

type PlayerManagerConfig struct {
	DefaultWorld string       `json:"default_world"`
	Spawn        *SpawnConfig `json:"spawn,omitempty"`
	Admins       []string     `json:"admins"`
	ActionBarTTL string       `json:"action_bar_ttl"`
}

func (c *PlayerManagerConfig) validate() error {
	el := errors.NewErrorList()

	if c.DefaultWorld == "" {
		el.Add(fmt.Errorf("player_manager: default_world is required"))
	}
	if c.Spawn != nil && c.Spawn.World == "" {
		el.Add(fmt.Errorf("player_manager: spawn.world is required"))
	}
	if _, err := optionalDuration("action_bar_ttl", c.ActionBarTTL); err != nil {
		el.Add(fmt.Errorf("player_manager: %w", err))
	}

	return el.Err()
}

func (c *PlayerManagerConfig) buildPlayerManager(
	world *game.WorldState,
	cmd player.CommandRunner,
	records player.Records,
	onConnect ...func(context.Context, uuid.UUID),
) (*player.PlayerManager, error) {
	if _, ok := world.World(c.DefaultWorld); !ok {
		return nil, fmt.Errorf("default_world %q: %w", c.DefaultWorld, game.ErrWorldNotFound)
	}

	opts := []player.PlayerManagerOpt{player.WithAdmins(c.Admins...)}
	if c.Spawn != nil {
		if _, ok := world.World(c.Spawn.World); !ok {
			return nil, fmt.Errorf("spawn world %q: %w", c.Spawn.World, game.ErrWorldNotFound)
		}
		opts = append(opts, player.WithSpawn(display.Point{
			World: c.Spawn.World,
			X:     c.Spawn.X,
			Y:     c.Spawn.Y,
			Z:     c.Spawn.Z,
		}))
	}
	if d, _ := optionalDuration("action_bar_ttl", c.ActionBarTTL); d > 0 {
		opts = append(opts, player.WithActionBarTTL(d))
	}
	for _, fn := range onConnect {
		opts = append(opts, player.WithConnectHook(fn))
	}

	return player.NewPlayerManager(world, cmd, records, c.DefaultWorld, opts...), nil
}
