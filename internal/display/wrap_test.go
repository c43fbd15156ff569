package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	short := "Waypoint Home set."
	testutil.AssertEqual(t, "short", Wrap(short), short)

	long := strings.Repeat("waypoint ", 20)
	for i, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line %d is %d wide", i, len(line))
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"empty":      {input: "", exp: ""},
		"lower":      {input: "waypoints", exp: "Waypoints"},
		"already up": {input: "Admin", exp: "Admin"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "capitalize", Capitalize(tc.input), tc.exp)
		})
	}
}

func TestBlockCoords(t *testing.T) {
	got := BlockCoords(Point{World: "world", X: 10.5, Y: 64, Z: -3.2})
	testutil.AssertEqual(t, "coords", got, "X: 10, Y: 64, Z: -4")
}
