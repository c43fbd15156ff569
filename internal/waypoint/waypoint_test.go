package waypoint

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-titleinfo/internal/state"
)

// memStore is an in-memory stand-in for the state cache.
type memStore struct {
	lists  map[uuid.UUID][]state.Waypoint
	active map[uuid.UUID]string

	listWrites   int
	activeWrites int
}

func newMemStore() *memStore {
	return &memStore{
		lists:  map[uuid.UUID][]state.Waypoint{},
		active: map[uuid.UUID]string{},
	}
}

func (m *memStore) GetWaypoints(id uuid.UUID) []state.Waypoint {
	return append([]state.Waypoint(nil), m.lists[id]...)
}

func (m *memStore) UpdateWaypoints(id uuid.UUID, fn func([]state.Waypoint) []state.Waypoint) []state.Waypoint {
	m.lists[id] = fn(m.GetWaypoints(id))
	m.listWrites++
	return m.GetWaypoints(id)
}

func (m *memStore) GetActiveWaypointName(id uuid.UUID) (string, bool) {
	n := m.active[id]
	return n, n != ""
}

func (m *memStore) UpdateActiveWaypointName(id uuid.UUID, fn func(string, bool) string) string {
	cur := m.active[id]
	next := fn(cur, cur != "")
	if next != cur {
		m.active[id] = next
		m.activeWrites++
	}
	return next
}

func newTestDirectory() (*Directory, *memStore) {
	m := newMemStore()
	return NewDirectory(m, NewSelector(m)), m
}

func TestSelector_Transitions(t *testing.T) {
	id := uuid.New()

	tests := map[string]struct {
		start     string
		selects   []string
		expActive string
		expOk     bool
	}{
		"unset to active": {
			selects:   []string{"Home"},
			expActive: "Home",
			expOk:     true,
		},
		"reselect toggles off": {
			selects: []string{"Home", "Home"},
			expOk:   false,
		},
		"reselect ignores case": {
			selects: []string{"Home", "HOME"},
			expOk:   false,
		},
		"other overwrites": {
			selects:   []string{"Home", "Mine"},
			expActive: "Mine",
			expOk:     true,
		},
		"toggle back on": {
			selects:   []string{"Home", "Home", "Home"},
			expActive: "Home",
			expOk:     true,
		},
		"dangling pointer replaced": {
			start:     "Gone",
			selects:   []string{"Home"},
			expActive: "Home",
			expOk:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newMemStore()
			if tt.start != "" {
				m.active[id] = tt.start
			}
			s := NewSelector(m)

			var last bool
			for _, n := range tt.selects {
				last = s.Select(id, n)
			}

			active, ok := s.Active(id)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			testutil.AssertEqual(t, "select result", last, tt.expOk)
			testutil.AssertEqual(t, "active", active, tt.expActive)
			testutil.AssertEqual(t, "writes", m.activeWrites, len(tt.selects))
		})
	}
}

func TestSelector_Clear(t *testing.T) {
	id := uuid.New()
	m := newMemStore()
	s := NewSelector(m)

	testutil.AssertEqual(t, "clear unset", s.Clear(id), false)

	s.Select(id, "Home")
	testutil.AssertEqual(t, "clear active", s.Clear(id), true)
	_, ok := s.Active(id)
	testutil.AssertEqual(t, "cleared", ok, false)
}

func TestSelector_ClearIf(t *testing.T) {
	id := uuid.New()
	m := newMemStore()
	s := NewSelector(m)
	s.Select(id, "Home")

	testutil.AssertEqual(t, "other name", s.ClearIf(id, "Mine"), false)
	testutil.AssertEqual(t, "still active", s.IsActive(id, "home"), true)
	testutil.AssertEqual(t, "matching name", s.ClearIf(id, "HOME"), true)
	testutil.AssertEqual(t, "inactive", s.IsActive(id, "Home"), false)
}

func TestDirectory_SetIsCaseInsensitive(t *testing.T) {
	d, _ := newTestDirectory()
	id := uuid.New()

	d.Set(id, state.Waypoint{Name: "Home", World: "world", X: 1, Y: 2, Z: 3})
	d.Set(id, state.Waypoint{Name: "home", World: "world", X: 4, Y: 5, Z: 6})

	list := d.List(id)
	testutil.AssertEqual(t, "count", len(list), 1)
	testutil.AssertEqual(t, "name", list[0].Name, "home")
	testutil.AssertEqual(t, "x", list[0].X, 4.0)
}

func TestDirectory_SetKeepsInsertionOrder(t *testing.T) {
	d, _ := newTestDirectory()
	id := uuid.New()

	d.Set(id, state.Waypoint{Name: "A"})
	d.Set(id, state.Waypoint{Name: "B"})
	d.Set(id, state.Waypoint{Name: "C"})
	d.Set(id, state.Waypoint{Name: "a"})

	var names []string
	for _, wp := range d.List(id) {
		names = append(names, wp.Name)
	}
	testutil.AssertEqual(t, "order", len(names), 3)
	testutil.AssertEqual(t, "first", names[0], "B")
	testutil.AssertEqual(t, "second", names[1], "C")
	testutil.AssertEqual(t, "third", names[2], "a")
}

func TestDirectory_Remove(t *testing.T) {
	tests := map[string]struct {
		active     string
		remove     string
		expRemoved bool
		expCleared bool
		expActive  string
		expCount   int
	}{
		"remove inactive": {
			active:     "Mine",
			remove:     "Home",
			expRemoved: true,
			expActive:  "Mine",
			expCount:   1,
		},
		"remove active clears pointer": {
			active:     "Home",
			remove:     "home",
			expRemoved: true,
			expCleared: true,
			expCount:   1,
		},
		"remove missing": {
			active:    "Home",
			remove:    "Nowhere",
			expActive: "Home",
			expCount:  2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, m := newTestDirectory()
			id := uuid.New()
			d.Set(id, state.Waypoint{Name: "Home"})
			d.Set(id, state.Waypoint{Name: "Mine"})
			m.active[id] = tt.active
			writesBefore := m.listWrites

			removed, cleared := d.Remove(id, tt.remove)
			testutil.AssertEqual(t, "removed", removed, tt.expRemoved)
			testutil.AssertEqual(t, "cleared", cleared, tt.expCleared)
			testutil.AssertEqual(t, "count", len(d.List(id)), tt.expCount)

			active, _ := d.Selector().Active(id)
			testutil.AssertEqual(t, "active", active, tt.expActive)

			if !tt.expRemoved {
				testutil.AssertEqual(t, "no write", m.listWrites, writesBefore)
			}
		})
	}
}

func TestDirectory_View(t *testing.T) {
	d, _ := newTestDirectory()
	id := uuid.New()
	d.Set(id, state.Waypoint{Name: "Home", World: "world"})

	_, _, found := d.View(id, "Nowhere")
	testutil.AssertEqual(t, "missing", found, false)
	_, ok := d.Selector().Active(id)
	testutil.AssertEqual(t, "unchanged", ok, false)

	wp, active, found := d.View(id, "HOME")
	testutil.AssertEqual(t, "found", found, true)
	testutil.AssertEqual(t, "active", active, true)
	testutil.AssertEqual(t, "name", wp.Name, "Home")
	name, _ := d.Selector().Active(id)
	testutil.AssertEqual(t, "canonical casing", name, "Home")

	_, active, _ = d.View(id, "home")
	testutil.AssertEqual(t, "toggled off", active, false)
}

func TestDirectory_WithCache(t *testing.T) {
	store, err := state.NewSQLStore(t.TempDir() + "/titleinfo.db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := state.NewCache(store)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	d := NewDirectory(c, NewSelector(c))
	id := uuid.New()

	d.Set(id, state.Waypoint{Name: "Home", World: "world", X: 10, Y: 64, Z: -5})
	d.View(id, "Home")
	removed, cleared := d.Remove(id, "Home")
	testutil.AssertEqual(t, "removed", removed, true)
	testutil.AssertEqual(t, "cleared", cleared, true)

	_, ok := c.GetActiveWaypointName(id)
	testutil.AssertEqual(t, "active absent", ok, false)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
