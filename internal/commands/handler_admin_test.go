package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/state"
)

func TestHandler_AdminDisplay(t *testing.T) {
	tests := map[string]struct {
		start   []display.DisplayOption
		line    string
		expErr  string
		expOp   string
		expUser string
		expPref bool
	}{
		"enable": {
			line:    "admin display steve enable direction",
			expOp:   "Enabled direction for Steve!",
			expUser: "Admin enabled your direction display!",
			expPref: true,
		},
		"disable": {
			start:   []display.DisplayOption{display.OptionDirection},
			line:    "admin display Steve disable direction",
			expOp:   "Disabled direction for Steve!",
			expUser: "Admin disabled your direction display!",
		},
		"globally disabled": {
			line:   "admin display Steve enable biome",
			expErr: "Display type 'biome' is disabled!",
		},
		"bad action": {
			line:   "admin display Steve toggle direction",
			expErr: "Admin display usage: admin display <player> <enable|disable> <type>",
		},
		"offline target": {
			line:   "admin display Notch enable direction",
			expErr: "'Notch' not found or offline!",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.recs.prefs[f.steve.Id] = display.NewOptionSet(tt.start...)

			err := f.exec(t, f.admin, tt.line)
			if tt.expErr != "" {
				testutil.AssertEqual(t, "error", userMessage(t, err), tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "admin message", f.sent.last(f.admin.Id), tt.expOp)
			testutil.AssertEqual(t, "target message", f.sent.last(f.steve.Id), tt.expUser)
			testutil.AssertEqual(t, "pref", f.recs.GetPreferences(f.steve.Id).Has(display.OptionDirection), tt.expPref)
		})
	}
}

func TestHandler_AdminWaypointSetAndRemove(t *testing.T) {
	f := newFixture(t)
	id := f.steve.Id

	if err := f.exec(t, f.admin, "admin waypoint Steve set Base"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "admin", f.sent.last(f.admin.Id), "Set waypoint 'Base' for Steve at X: 100, Y: 80, Z: 100!")
	testutil.AssertEqual(t, "target", f.sent.last(id), "Admin set your waypoint 'Base'!")

	wps := f.recs.GetWaypoints(id)
	testutil.AssertEqual(t, "count", len(wps), 1)
	testutil.AssertEqual(t, "uses admin position", wps[0].X, 100.0)

	err := f.exec(t, f.admin, "admin waypoint Steve set Base x 2 3")
	testutil.AssertEqual(t, "malformed", userMessage(t, err), "Invalid coordinates!")
	testutil.AssertEqual(t, "unchanged", f.recs.GetWaypoints(id)[0].X, 100.0)

	f.recs.active[id] = "base"
	if err := f.exec(t, f.admin, "admin waypoint Steve remove BASE"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "removed", f.sent.last(f.admin.Id), "Removed waypoint 'BASE' for Steve!")
	testutil.AssertEqual(t, "target cleared", f.sent.last(id), "Active waypoint cleared!")
	_, ok := f.recs.active[id]
	testutil.AssertEqual(t, "active", ok, false)

	err = f.exec(t, f.admin, "admin waypoint Steve remove Base")
	testutil.AssertEqual(t, "not found", userMessage(t, err), "Waypoint 'Base' not found for Steve!")
}

func TestHandler_AdminWaypointList(t *testing.T) {
	f := newFixture(t)

	err := f.exec(t, f.admin, "admin waypoint Steve list")
	testutil.AssertEqual(t, "empty", userMessage(t, err), "Steve has no waypoints!")

	f.recs.waypoints[f.steve.Id] = []state.Waypoint{{Name: "Home", World: "world", X: 5, Y: 6, Z: 7}}
	f.recs.active[f.steve.Id] = "Home"
	if err := f.exec(t, f.admin, "admin waypoint Steve list"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "list", f.sent.last(f.admin.Id), "Waypoints for Steve:\n- Home (active): X: 5, Y: 6, Z: 7")
}

func TestHandler_AdminWaypointViewToggles(t *testing.T) {
	f := newFixture(t)
	id := f.steve.Id
	f.recs.waypoints[id] = []state.Waypoint{{Name: "Home", World: "world"}}

	if err := f.exec(t, f.admin, "admin waypoint Steve view home"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "admin on", f.sent.last(f.admin.Id), "Set Steve to view waypoint 'Home'!")
	testutil.AssertEqual(t, "target on", f.sent.last(id), "Admin set you to view waypoint 'Home'!")
	testutil.AssertEqual(t, "active", f.recs.active[id], "Home")

	if err := f.exec(t, f.admin, "admin waypoint Steve view HOME"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "admin off", f.sent.last(f.admin.Id), "Cleared active waypoint view for Steve!")
	testutil.AssertEqual(t, "target off", f.sent.last(id), "Admin stopped your view of waypoint 'Home'!")
	_, ok := f.recs.active[id]
	testutil.AssertEqual(t, "cleared", ok, false)
}

func TestHandler_AdminWaypointTeleport(t *testing.T) {
	f := newFixture(t)
	f.recs.waypoints[f.steve.Id] = []state.Waypoint{
		{Name: "Fortress", World: "world_nether", X: 20, Y: 70, Z: 30},
		{Name: "Moonbase", World: "moon"},
	}

	if err := f.exec(t, f.admin, "admin waypoint Steve tp fortress"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "message", f.sent.last(f.admin.Id), "Teleported to Steve's waypoint 'fortress'!")
	pos, _ := f.world.Position(f.admin.Id)
	testutil.AssertEqual(t, "position", pos, display.Point{World: "world_nether", X: 20, Y: 70, Z: 30})

	err := f.exec(t, f.admin, "admin waypoint Steve tp Moonbase")
	testutil.AssertEqual(t, "unknown world", userMessage(t, err), "There is no world called 'moon'. Worlds: world, world_nether")

	err = f.exec(t, f.admin, "admin waypoint Steve tp Nowhere")
	testutil.AssertEqual(t, "missing", userMessage(t, err), "Waypoint 'Nowhere' not found for Steve!")
}

func TestHandler_AdminUsage(t *testing.T) {
	f := newFixture(t)

	testutil.AssertEqual(t, "no args", userMessage(t, f.exec(t, f.admin, "admin")), "Admin usage: admin <waypoint|display> <player> ...")
	testutil.AssertEqual(t, "bad kind", userMessage(t, f.exec(t, f.admin, "admin weather Steve")), "Admin usage: admin <waypoint|display> <player> ...")
	testutil.AssertEqual(t, "no sub", userMessage(t, f.exec(t, f.admin, "admin waypoint Steve")), "Admin waypoint usage: admin waypoint <player> <set|remove|list|view|tp> [args]")
}
