package state

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
)

const DefaultFlushTimeout = 30 * time.Second

// Cache is the in-memory mirror of every player's state and the only thing
// that talks to the Store while the server runs. Mutations update the mirror
// immediately and persist asynchronously; a failed write is logged and the
// mirror stays authoritative.
type Cache struct {
	mu sync.RWMutex

	store    Store
	writer   *writer
	defaults display.OptionSet

	prefs     map[uuid.UUID]display.OptionSet
	waypoints map[uuid.UUID][]Waypoint
	// An empty name marks a pointer cleared during this session so a flush
	// writes the clear as well.
	active map[uuid.UUID]string

	writers        int
	queueSize      int
	writeTimeout   time.Duration
	enqueueTimeout time.Duration
	flushTimeout   time.Duration
}

type CacheOpt func(*Cache)

// WithDefaults sets the options a player starts with on first connect.
func WithDefaults(set display.OptionSet) CacheOpt {
	return func(c *Cache) {
		c.defaults = set.Clone()
	}
}

// WithWriters sets the number of concurrent durable writers.
func WithWriters(n int) CacheOpt {
	return func(c *Cache) {
		c.writers = n
	}
}

// WithQueueSize sets how many pending writes each writer buffers.
func WithQueueSize(n int) CacheOpt {
	return func(c *Cache) {
		c.queueSize = n
	}
}

// WithWriteTimeout bounds each asynchronous write.
func WithWriteTimeout(d time.Duration) CacheOpt {
	return func(c *Cache) {
		c.writeTimeout = d
	}
}

// WithEnqueueTimeout sets how long a mutation waits on a full write queue.
func WithEnqueueTimeout(d time.Duration) CacheOpt {
	return func(c *Cache) {
		c.enqueueTimeout = d
	}
}

// WithFlushTimeout bounds the shutdown flush.
func WithFlushTimeout(d time.Duration) CacheOpt {
	return func(c *Cache) {
		c.flushTimeout = d
	}
}

// NewCache wraps store with an empty mirror. Call Load before serving players.
func NewCache(store Store, opts ...CacheOpt) *Cache {
	c := &Cache{
		store:          store,
		defaults:       display.OptionSet{},
		prefs:          map[uuid.UUID]display.OptionSet{},
		waypoints:      map[uuid.UUID][]Waypoint{},
		active:         map[uuid.UUID]string{},
		writers:        DefaultWriters,
		queueSize:      DefaultQueueSize,
		writeTimeout:   DefaultWriteTimeout,
		enqueueTimeout: DefaultEnqueueTimeout,
		flushTimeout:   DefaultFlushTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.writer = newWriter(c.writers, c.queueSize, c.writeTimeout, c.enqueueTimeout)
	return c
}

// Load replaces the mirror with everything in the store. It blocks and is
// meant for startup only.
func (c *Cache) Load(ctx context.Context) error {
	snap, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading player state: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.prefs = snap.Preferences
	c.waypoints = snap.Waypoints
	c.active = snap.Active

	slog.Info("loaded player state",
		"preferences", len(c.prefs), "waypoints", len(c.waypoints), "active", len(c.active))
	return nil
}

// Start runs the asynchronous writer. When ctx is canceled it drains pending
// writes, flushes the whole mirror and closes the store.
func (c *Cache) Start(ctx context.Context) error {
	err := c.writer.run(ctx)

	flushCtx, cancel := context.WithTimeout(context.Background(), c.flushTimeout)
	defer cancel()

	if flushErr := c.FlushAll(flushCtx); flushErr != nil {
		slog.Error("flushing player state at shutdown", "error", flushErr)
	}
	if closeErr := c.store.Close(); closeErr != nil {
		slog.Error("closing player store", "error", closeErr)
	}

	return err
}

// Connect prepares a player's preferences on join. A player seen before keeps
// their set; a new player gets the server defaults, which are persisted.
func (c *Cache) Connect(id uuid.UUID) display.OptionSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prefs, ok := c.prefs[id]; ok {
		return prefs.Clone()
	}

	prefs := c.defaults.Clone()
	c.prefs[id] = prefs
	c.persistPreferences(id, prefs)

	slog.Info("initialized display preferences", "id", id, "prefs", prefs.Encode())
	return prefs.Clone()
}

// GetPreferences returns a copy of the player's options, empty when unknown.
func (c *Cache) GetPreferences(id uuid.UUID) display.OptionSet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	prefs, ok := c.prefs[id]
	if !ok {
		return display.OptionSet{}
	}
	return prefs.Clone()
}

// SetPreferences replaces the player's options.
func (c *Cache) SetPreferences(id uuid.UUID, prefs display.OptionSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set := prefs.Clone()
	c.prefs[id] = set
	c.persistPreferences(id, set)
}

// UpdatePreferences applies fn to the player's options and stores the result.
func (c *Cache) UpdatePreferences(id uuid.UUID, fn func(display.OptionSet)) display.OptionSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, ok := c.prefs[id]
	if ok {
		set = set.Clone()
	} else {
		set = display.OptionSet{}
	}
	fn(set)

	c.prefs[id] = set
	c.persistPreferences(id, set)
	return set.Clone()
}

// GetWaypoints returns a copy of the player's waypoints in insertion order.
func (c *Cache) GetWaypoints(id uuid.UUID) []Waypoint {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.waypoints[id])
}

// ReplaceWaypoints replaces the player's whole waypoint list.
func (c *Cache) ReplaceWaypoints(id uuid.UUID, wps []Waypoint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setWaypoints(id, slices.Clone(wps))
}

// UpdateWaypoints computes a new list from the current one and replaces it
// wholesale. fn receives a copy it may modify.
func (c *Cache) UpdateWaypoints(id uuid.UUID, fn func([]Waypoint) []Waypoint) []Waypoint {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := fn(slices.Clone(c.waypoints[id]))
	c.setWaypoints(id, next)
	return slices.Clone(next)
}

func (c *Cache) setWaypoints(id uuid.UUID, wps []Waypoint) {
	c.waypoints[id] = wps
	c.persistWaypoints(id, slices.Clone(wps))
}

// GetActiveWaypointName returns the player's active waypoint name, if any.
func (c *Cache) GetActiveWaypointName(id uuid.UUID) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name := c.active[id]
	return name, name != ""
}

// SetActiveWaypointName points the player at name. An empty name clears.
func (c *Cache) SetActiveWaypointName(id uuid.UUID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setActive(id, name)
}

// ClearActiveWaypointName removes the player's active waypoint.
func (c *Cache) ClearActiveWaypointName(id uuid.UUID) {
	c.SetActiveWaypointName(id, "")
}

// UpdateActiveWaypointName replaces the active name with fn's result, where
// fn sees the current name and whether one is set.
func (c *Cache) UpdateActiveWaypointName(id uuid.UUID, fn func(current string, ok bool) string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.active[id]
	next := fn(cur, cur != "")
	if next != cur {
		c.setActive(id, next)
	}
	return next
}

func (c *Cache) setActive(id uuid.UUID, name string) {
	c.active[id] = name
	c.persistActive(id, name)
}

// Flush queues durable writes for everything cached about one player.
func (c *Cache) Flush(id uuid.UUID) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if prefs, ok := c.prefs[id]; ok {
		c.persistPreferences(id, prefs.Clone())
	}
	if wps, ok := c.waypoints[id]; ok {
		c.persistWaypoints(id, slices.Clone(wps))
	}
	if name, ok := c.active[id]; ok {
		c.persistActive(id, name)
	}
}

// FlushAll synchronously writes the whole mirror. It blocks and is meant for
// shutdown.
func (c *Cache) FlushAll(ctx context.Context) error {
	snap := c.snapshot()
	if err := c.store.FlushAll(ctx, snap); err != nil {
		return fmt.Errorf("flushing player state: %w", err)
	}
	slog.Info("flushed player state", "players", len(snap.Preferences))
	return nil
}

func (c *Cache) snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := NewSnapshot()
	for id, prefs := range c.prefs {
		snap.Preferences[id] = prefs.Clone()
	}
	for id, wps := range c.waypoints {
		snap.Waypoints[id] = slices.Clone(wps)
	}
	for id, name := range c.active {
		snap.Active[id] = name
	}
	return snap
}

func (c *Cache) persistPreferences(id uuid.UUID, prefs display.OptionSet) {
	c.writer.submit(writeJob{id: id, op: "save preferences", fn: func(ctx context.Context) error {
		return c.store.SavePreferences(ctx, id, prefs)
	}})
}

func (c *Cache) persistWaypoints(id uuid.UUID, wps []Waypoint) {
	c.writer.submit(writeJob{id: id, op: "replace waypoints", fn: func(ctx context.Context) error {
		return c.store.ReplaceWaypoints(ctx, id, wps)
	}})
}

func (c *Cache) persistActive(id uuid.UUID, name string) {
	c.writer.submit(writeJob{id: id, op: "save active waypoint", fn: func(ctx context.Context) error {
		return c.store.SaveActiveWaypoint(ctx, id, name)
	}})
}
