package actionbar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/state"
)

// Host exposes the connected players and copies of their state.
type Host interface {
	PlayerIds() []uuid.UUID
	Snapshot(uuid.UUID) (display.Snapshot, error)
	WorldLabel(world string) string
}

// Records is the per-player state the refresher reads.
type Records interface {
	GetPreferences(uuid.UUID) display.OptionSet
	GetWaypoints(uuid.UUID) []state.Waypoint
	GetActiveWaypointName(uuid.UUID) (string, bool)
}

// Publisher delivers ephemeral text to a player.
type Publisher interface {
	PublishActionBar(id uuid.UUID, text string) error
}

// Refresher recomputes and publishes the action bar of every connected
// player once per tick.
type Refresher struct {
	host    Host
	records Records
	pub     Publisher
	enabled display.Options
}

func NewRefresher(host Host, records Records, pub Publisher, enabled display.Options) *Refresher {
	return &Refresher{
		host:    host,
		records: records,
		pub:     pub,
		enabled: enabled,
	}
}

// Tick runs one refresh pass. A failure for one player is logged and the
// pass moves on to the next player.
func (r *Refresher) Tick(ctx context.Context) error {
	for _, id := range r.host.PlayerIds() {
		if err := r.refresh(id); err != nil {
			slog.WarnContext(ctx, "refreshing action bar", "player", id, "error", err)
		}
	}
	return nil
}

func (r *Refresher) refresh(id uuid.UUID) error {
	prefs := r.records.GetPreferences(id)
	if len(prefs) == 0 {
		return nil
	}

	snap, err := r.host.Snapshot(id)
	if err != nil {
		return fmt.Errorf("taking snapshot: %w", err)
	}

	p := display.Compute(snap, prefs, r.enabled, r.target(id))
	if p.Empty() {
		return nil
	}

	return r.pub.PublishActionBar(id, p.String())
}

// target resolves the active waypoint. A pointer naming a waypoint that no
// longer exists resolves to nothing.
func (r *Refresher) target(id uuid.UUID) *display.Target {
	name, ok := r.records.GetActiveWaypointName(id)
	if !ok {
		return nil
	}

	for _, wp := range r.records.GetWaypoints(id) {
		if wp.Is(name) {
			return &display.Target{
				Name:       wp.Name,
				Position:   wp.Point(),
				WorldLabel: r.host.WorldLabel(wp.World),
			}
		}
	}
	return nil
}
