package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"

	_ "modernc.org/sqlite"
)

const (
	DefaultMaxOpenConns    = 10
	DefaultMaxIdleConns    = 2
	DefaultConnMaxIdleTime = 30 * time.Second
	DefaultBusyTimeout     = 5 * time.Second
)

const schema = `
CREATE TABLE IF NOT EXISTS player_prefs (
	uuid  TEXT PRIMARY KEY,
	prefs TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS player_waypoints (
	uuid  TEXT NOT NULL,
	name  TEXT NOT NULL,
	world TEXT NOT NULL,
	x     DOUBLE NOT NULL,
	y     DOUBLE NOT NULL,
	z     DOUBLE NOT NULL,
	PRIMARY KEY (uuid, name)
);
CREATE TABLE IF NOT EXISTS active_waypoints (
	uuid        TEXT PRIMARY KEY,
	active_name TEXT
);`

const (
	upsertPrefsSQL    = `INSERT OR REPLACE INTO player_prefs (uuid, prefs) VALUES (?, ?)`
	deleteWaypointSQL = `DELETE FROM player_waypoints WHERE uuid = ?`
	insertWaypointSQL = `INSERT INTO player_waypoints (uuid, name, world, x, y, z) VALUES (?, ?, ?, ?, ?, ?)`
	upsertActiveSQL   = `INSERT OR REPLACE INTO active_waypoints (uuid, active_name) VALUES (?, ?)`
)

// SQLStore persists player state in a sqlite database.
type SQLStore struct {
	db   *sql.DB
	path string

	maxOpenConns    int
	maxIdleConns    int
	connMaxIdleTime time.Duration
	busyTimeout     time.Duration
}

type SQLStoreOpt func(*SQLStore)

// WithMaxOpenConns bounds the connection pool.
func WithMaxOpenConns(n int) SQLStoreOpt {
	return func(s *SQLStore) {
		s.maxOpenConns = n
	}
}

// WithMaxIdleConns sets how many idle connections the pool keeps.
func WithMaxIdleConns(n int) SQLStoreOpt {
	return func(s *SQLStore) {
		s.maxIdleConns = n
	}
}

// WithConnMaxIdleTime closes pooled connections idle longer than d.
func WithConnMaxIdleTime(d time.Duration) SQLStoreOpt {
	return func(s *SQLStore) {
		s.connMaxIdleTime = d
	}
}

// WithBusyTimeout sets how long a connection waits on a locked database.
func WithBusyTimeout(d time.Duration) SQLStoreOpt {
	return func(s *SQLStore) {
		s.busyTimeout = d
	}
}

// NewSQLStore opens (creating if needed) the database at path and ensures the
// schema exists.
func NewSQLStore(path string, opts ...SQLStoreOpt) (*SQLStore, error) {
	s := &SQLStore{
		path:            path,
		maxOpenConns:    DefaultMaxOpenConns,
		maxIdleConns:    DefaultMaxIdleConns,
		connMaxIdleTime: DefaultConnMaxIdleTime,
		busyTimeout:     DefaultBusyTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		path, s.busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(s.maxOpenConns)
	db.SetMaxIdleConns(s.maxIdleConns)
	db.SetConnMaxIdleTime(s.connMaxIdleTime)
	s.db = db

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLStore) Path() string {
	return s.path
}

// Close releases the connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Load reads every record into fresh maps.
func (s *SQLStore) Load(ctx context.Context) (*Snapshot, error) {
	snap := NewSnapshot()

	if err := s.loadPreferences(ctx, snap); err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	if err := s.loadWaypoints(ctx, snap); err != nil {
		return nil, fmt.Errorf("loading waypoints: %w", err)
	}
	if err := s.loadActive(ctx, snap); err != nil {
		return nil, fmt.Errorf("loading active waypoints: %w", err)
	}

	return snap, nil
}

func (s *SQLStore) loadPreferences(ctx context.Context, snap *Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `SELECT uuid, prefs FROM player_prefs`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var rawId, prefs string
		if err := rows.Scan(&rawId, &prefs); err != nil {
			return err
		}
		id, err := uuid.Parse(rawId)
		if err != nil {
			return fmt.Errorf("parsing uuid %q: %w", rawId, err)
		}
		snap.Preferences[id] = display.DecodeOptionSet(prefs)
	}

	return rows.Err()
}

func (s *SQLStore) loadWaypoints(ctx context.Context, snap *Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT uuid, name, world, x, y, z FROM player_waypoints ORDER BY rowid`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var rawId string
		var wp Waypoint
		if err := rows.Scan(&rawId, &wp.Name, &wp.World, &wp.X, &wp.Y, &wp.Z); err != nil {
			return err
		}
		id, err := uuid.Parse(rawId)
		if err != nil {
			return fmt.Errorf("parsing uuid %q: %w", rawId, err)
		}
		snap.Waypoints[id] = append(snap.Waypoints[id], wp)
	}

	return rows.Err()
}

func (s *SQLStore) loadActive(ctx context.Context, snap *Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `SELECT uuid, active_name FROM active_waypoints`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var rawId string
		var name sql.NullString
		if err := rows.Scan(&rawId, &name); err != nil {
			return err
		}
		if !name.Valid || name.String == "" {
			continue
		}
		id, err := uuid.Parse(rawId)
		if err != nil {
			return fmt.Errorf("parsing uuid %q: %w", rawId, err)
		}
		snap.Active[id] = name.String
	}

	return rows.Err()
}

// SavePreferences stores the comma-joined option tokens for id.
func (s *SQLStore) SavePreferences(ctx context.Context, id uuid.UUID, prefs display.OptionSet) error {
	_, err := s.db.ExecContext(ctx, upsertPrefsSQL, id.String(), prefs.Encode())
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// ReplaceWaypoints deletes every waypoint for id and inserts wps in a single
// transaction.
func (s *SQLStore) ReplaceWaypoints(ctx context.Context, id uuid.UUID, wps []Waypoint) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return replaceWaypoints(ctx, tx, id, wps)
	})
}

// SaveActiveWaypoint stores name, or NULL when name is empty.
func (s *SQLStore) SaveActiveWaypoint(ctx context.Context, id uuid.UUID, name string) error {
	_, err := s.db.ExecContext(ctx, upsertActiveSQL, id.String(), nullableName(name))
	if err != nil {
		return fmt.Errorf("saving active waypoint: %w", err)
	}
	return nil
}

// FlushAll writes the whole snapshot in a single transaction.
func (s *SQLStore) FlushAll(ctx context.Context, snap *Snapshot) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for id, prefs := range snap.Preferences {
			if _, err := tx.ExecContext(ctx, upsertPrefsSQL, id.String(), prefs.Encode()); err != nil {
				return fmt.Errorf("saving preferences for %s: %w", id, err)
			}
		}

		for id, wps := range snap.Waypoints {
			if err := replaceWaypoints(ctx, tx, id, wps); err != nil {
				return fmt.Errorf("replacing waypoints for %s: %w", id, err)
			}
		}

		for id, name := range snap.Active {
			if _, err := tx.ExecContext(ctx, upsertActiveSQL, id.String(), nullableName(name)); err != nil {
				return fmt.Errorf("saving active waypoint for %s: %w", id, err)
			}
		}

		return nil
	})
}

// inTx runs fn in a transaction. The connection goes back to the pool on
// every path.
func (s *SQLStore) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// Rollback after a successful commit is a no-op.
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func replaceWaypoints(ctx context.Context, tx *sql.Tx, id uuid.UUID, wps []Waypoint) error {
	if _, err := tx.ExecContext(ctx, deleteWaypointSQL, id.String()); err != nil {
		return fmt.Errorf("deleting waypoints: %w", err)
	}
	if len(wps) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, insertWaypointSQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, wp := range wps {
		if _, err := stmt.ExecContext(ctx, id.String(), wp.Name, wp.World, wp.X, wp.Y, wp.Z); err != nil {
			return fmt.Errorf("inserting waypoint %q: %w", wp.Name, err)
		}
	}
	return nil
}

func nullableName(name string) sql.NullString {
	return sql.NullString{String: name, Valid: name != ""}
}
