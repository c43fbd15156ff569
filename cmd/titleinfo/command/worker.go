package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-service"
	"github.com/pixil98/go-titleinfo/internal/actionbar"
	"github.com/pixil98/go-titleinfo/internal/commands"
	"github.com/pixil98/go-titleinfo/internal/driver"
	"github.com/pixil98/go-titleinfo/internal/game"
	"github.com/pixil98/go-titleinfo/internal/listener"
	"github.com/pixil98/go-titleinfo/internal/messaging"
	"github.com/pixil98/go-titleinfo/internal/waypoint"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	enabled := cfg.DisplayOptions.options()

	// Messaging
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	publisher := messaging.NewNatsPublisher(natsServer)

	// Worlds
	worlds, err := cfg.Worlds.buildWorldStore()
	if err != nil {
		return nil, fmt.Errorf("loading worlds: %w", err)
	}
	world, err := game.NewWorldState(natsServer, worlds)
	if err != nil {
		return nil, fmt.Errorf("creating world state: %w", err)
	}

	// Player records
	store, err := cfg.Storage.buildStore()
	if err != nil {
		return nil, fmt.Errorf("creating state store: %w", err)
	}
	cache := cfg.Storage.buildCache(store, enabled.Defaults())
	if err := cache.Load(context.Background()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("loading player records: %w", err)
	}

	dir := waypoint.NewDirectory(cache, waypoint.NewSelector(cache))
	cmdHandler := commands.NewHandler(world, cache, dir, publisher, enabled)
	refresher := actionbar.NewRefresher(world, cache, publisher, enabled)

	workers := service.WorkerList{
		"nats":   natsServer,
		"state":  cache,
		"driver": driver.NewTickDriver([]driver.Manager{world, refresher}, driver.WithTickLength(cfg.tickLength())),
	}

	var onConnect []func(context.Context, uuid.UUID)
	if cfg.VersionCheck.enabled() {
		checker, err := cfg.VersionCheck.buildChecker(world, publisher)
		if err != nil {
			return nil, fmt.Errorf("creating version checker: %w", err)
		}
		workers["version"] = checker
		onConnect = append(onConnect, checker.NotifyAdmin)
	}

	pm, err := cfg.PlayerManager.buildPlayerManager(world, cmdHandler, cache, onConnect...)
	if err != nil {
		return nil, fmt.Errorf("creating player manager: %w", err)
	}
	workers["players"] = pm

	// Listeners
	cm := listener.NewConnectionManager(pm)
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lw, err := l.buildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lw
	}
	workers["listeners"] = &listeners

	return workers, nil
}
