package game

import (
	"fmt"
	"sync"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-titleinfo/internal/display"
)

// Region assigns a biome to a rectangle of the horizontal plane. Bounds are
// inclusive.
type Region struct {
	Biome string  `json:"biome"`
	MinX  float64 `json:"min_x"`
	MinZ  float64 `json:"min_z"`
	MaxX  float64 `json:"max_x"`
	MaxZ  float64 `json:"max_z"`
}

func (r Region) Contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

func (r Region) Validate() error {
	el := errors.NewErrorList()

	if r.Biome == "" {
		el.Add(fmt.Errorf("biome must be set"))
	}
	if r.MinX > r.MaxX || r.MinZ > r.MaxZ {
		el.Add(fmt.Errorf("region bounds are inverted"))
	}

	return el.Err()
}

// Location is a position inside a world asset.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// World is a world definition loaded from the asset store.
type World struct {
	Name         string              `json:"name"`
	Environment  display.Environment `json:"environment"`
	DefaultBiome string              `json:"default_biome"`
	Biomes       []Region            `json:"biomes"`
	Spawn        Location            `json:"spawn"`
	StartTime    int64               `json:"start_time"`
}

func (w *World) Validate() error {
	el := errors.NewErrorList()

	if w.Name == "" {
		el.Add(fmt.Errorf("name must be set"))
	}
	if w.DefaultBiome == "" {
		el.Add(fmt.Errorf("default_biome must be set"))
	}
	if w.StartTime < 0 || w.StartTime >= display.TicksPerDay {
		el.Add(fmt.Errorf("start_time must be between 0 and %d", display.TicksPerDay-1))
	}
	for i, r := range w.Biomes {
		if err := r.Validate(); err != nil {
			el.Add(fmt.Errorf("biome %d: %w", i, err))
		}
	}

	return el.Err()
}

// BiomeAt returns the biome of the first region containing the point, or the
// default biome.
func (w *World) BiomeAt(x, z float64) string {
	for _, r := range w.Biomes {
		if r.Contains(x, z) {
			return r.Biome
		}
	}
	return w.DefaultBiome
}

// WorldInstance is a running world with its own time of day.
type WorldInstance struct {
	Id    string
	World *World

	mu   sync.RWMutex
	time int64
}

func NewWorldInstance(id string, w *World) *WorldInstance {
	return &WorldInstance{
		Id:    id,
		World: w,
		time:  w.StartTime,
	}
}

// Time returns the world time in ticks since the start of the day.
func (wi *WorldInstance) Time() int64 {
	wi.mu.RLock()
	defer wi.mu.RUnlock()
	return wi.time
}

// SetTime sets the world time, wrapping into a single day.
func (wi *WorldInstance) SetTime(ticks int64) {
	wi.mu.Lock()
	defer wi.mu.Unlock()
	wi.time = wrapTicks(ticks)
}

// Advance moves the world time forward by n ticks.
func (wi *WorldInstance) Advance(n int64) {
	wi.mu.Lock()
	defer wi.mu.Unlock()
	wi.time = wrapTicks(wi.time + n)
}

// Label is the environment label shown for points in this world.
func (wi *WorldInstance) Label() string {
	return display.EnvironmentLabel(wi.World.Environment)
}

func wrapTicks(t int64) int64 {
	t %= display.TicksPerDay
	if t < 0 {
		t += display.TicksPerDay
	}
	return t
}
