package state

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
)

var ErrStoreClosed = errors.New("store closed")

// Store is the durable backing store for player state. Every write is an
// idempotent replace of the named record, never a delta.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	SavePreferences(ctx context.Context, id uuid.UUID, prefs display.OptionSet) error
	ReplaceWaypoints(ctx context.Context, id uuid.UUID, wps []Waypoint) error
	// SaveActiveWaypoint stores name as the active waypoint; an empty name
	// clears it.
	SaveActiveWaypoint(ctx context.Context, id uuid.UUID, name string) error
	FlushAll(ctx context.Context, snap *Snapshot) error
	Close() error
}
