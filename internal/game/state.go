package game

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/storage"
)

// WorldState is the single source of truth for the host simulation: loaded
// worlds and connected players. All access goes through its methods.
type WorldState struct {
	mu         sync.RWMutex
	subscriber Subscriber
	players    map[uuid.UUID]*PlayerState
	worlds     map[string]*WorldInstance
}

// NewWorldState creates a WorldState with an instance for every world asset.
func NewWorldState(sub Subscriber, worlds storage.Storer[*World]) (*WorldState, error) {
	instances := make(map[string]*WorldInstance)
	for id, w := range worlds.GetAll() {
		instances[id] = NewWorldInstance(id, w)
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("no worlds loaded")
	}

	return &WorldState{
		subscriber: sub,
		players:    make(map[uuid.UUID]*PlayerState),
		worlds:     instances,
	}, nil
}

// World returns the instance for a world id.
func (w *WorldState) World(id string) (*WorldInstance, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	wi, ok := w.worlds[id]
	return wi, ok
}

// WorldIds returns the loaded world ids in sorted order.
func (w *WorldState) WorldIds() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := make([]string, 0, len(w.worlds))
	for id := range w.worlds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WorldLabel returns the environment label of a world, "Unknown" when the
// world is not loaded.
func (w *WorldState) WorldLabel(id string) string {
	wi, ok := w.World(id)
	if !ok {
		return display.EnvironmentLabel(display.Environment(-1))
	}
	return wi.Label()
}

// Spawn returns the spawn point of a world.
func (w *WorldState) Spawn(id string) (display.Point, error) {
	wi, ok := w.World(id)
	if !ok {
		return display.Point{}, fmt.Errorf("%w: %s", ErrWorldNotFound, id)
	}
	s := wi.World.Spawn
	return display.Point{World: id, X: s.X, Y: s.Y, Z: s.Z}, nil
}

// GetPlayer returns the player state. Returns nil if player not found.
func (w *WorldState) GetPlayer(id uuid.UUID) *PlayerState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.players[id]
}

// FindPlayerByName looks up a connected player, ignoring case.
func (w *WorldState) FindPlayerByName(name string) *PlayerState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, ps := range w.players {
		if strings.EqualFold(ps.Name, name) {
			return ps
		}
	}
	return nil
}

// AddPlayer registers a connected player at pos.
func (w *WorldState) AddPlayer(name string, admin bool, msgs chan []byte, pos display.Point) (*PlayerState, error) {
	id := PlayerId(name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.players[id]; exists {
		return nil, ErrPlayerExists
	}
	if _, ok := w.worlds[pos.World]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorldNotFound, pos.World)
	}

	ps := &PlayerState{
		subscriber:   w.subscriber,
		subs:         make(map[string]func()),
		msgs:         msgs,
		Id:           id,
		Name:         name,
		Admin:        admin,
		Position:     pos,
		LastActivity: time.Now(),
	}
	w.players[id] = ps
	return ps, nil
}

// RemovePlayer removes a player from the world state.
func (w *WorldState) RemovePlayer(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.players[id]; !exists {
		return ErrPlayerNotFound
	}
	delete(w.players, id)
	return nil
}

// Position returns a copy of a player's position.
func (w *WorldState) Position(id uuid.UUID) (display.Point, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ps, ok := w.players[id]
	if !ok {
		return display.Point{}, ErrPlayerNotFound
	}
	return ps.Position, nil
}

// MovePlayer teleports a player. The target world must be loaded.
func (w *WorldState) MovePlayer(id uuid.UUID, pos display.Point) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ps, ok := w.players[id]
	if !ok {
		return ErrPlayerNotFound
	}
	if _, ok := w.worlds[pos.World]; !ok {
		return fmt.Errorf("%w: %s", ErrWorldNotFound, pos.World)
	}
	ps.Position = pos
	ps.LastActivity = time.Now()
	return nil
}

// TurnPlayer sets the yaw a player is facing.
func (w *WorldState) TurnPlayer(id uuid.UUID, yaw float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ps, ok := w.players[id]
	if !ok {
		return ErrPlayerNotFound
	}
	ps.Yaw = yaw
	ps.LastActivity = time.Now()
	return nil
}

// SetPlayerQuit sets the quit flag for a player.
func (w *WorldState) SetPlayerQuit(id uuid.UUID, quit bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, exists := w.players[id]
	if !exists {
		return ErrPlayerNotFound
	}

	p.Quit = quit
	return nil
}

// QuitRequested reports whether a player asked to leave.
func (w *WorldState) QuitRequested(id uuid.UUID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ps, ok := w.players[id]
	return !ok || ps.Quit
}

// PlayerIds returns the ids of every connected player.
func (w *WorldState) PlayerIds() []uuid.UUID {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(w.players))
	for id := range w.players {
		ids = append(ids, id)
	}
	return ids
}

// ForEachPlayer calls fn for each player in the world while holding the lock.
func (w *WorldState) ForEachPlayer(fn func(uuid.UUID, *PlayerState)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for id, ps := range w.players {
		fn(id, ps)
	}
}

// Snapshot copies everything the action bar needs about a player. The result
// shares nothing with live state.
func (w *WorldState) Snapshot(id uuid.UUID) (display.Snapshot, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ps, ok := w.players[id]
	if !ok {
		return display.Snapshot{}, ErrPlayerNotFound
	}
	wi, ok := w.worlds[ps.Position.World]
	if !ok {
		return display.Snapshot{}, fmt.Errorf("%w: %s", ErrWorldNotFound, ps.Position.World)
	}

	return display.Snapshot{
		Position:    ps.Position,
		Yaw:         ps.Yaw,
		Environment: wi.World.Environment,
		WorldTime:   wi.Time(),
		Biome:       wi.World.BiomeAt(ps.Position.X, ps.Position.Z),
	}, nil
}

// Tick advances the time of every world by one tick.
func (w *WorldState) Tick(ctx context.Context) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, wi := range w.worlds {
		wi.Advance(1)
	}
	return nil
}
