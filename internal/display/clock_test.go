package display

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestClock(t *testing.T) {
	tests := map[string]struct {
		ticks int64
		exp   string
	}{
		"dawn":              {ticks: 0, exp: "06:00 AM"},
		"half past six":     {ticks: 500, exp: "06:30 AM"},
		"seven":             {ticks: 1000, exp: "07:00 AM"},
		"noon":              {ticks: 6000, exp: "12:00 PM"},
		"evening":           {ticks: 13500, exp: "07:30 PM"},
		"midnight":          {ticks: 18000, exp: "12:00 AM"},
		"last tick of day":  {ticks: 23999, exp: "05:59 AM"},
		"next day wraps":    {ticks: 24000, exp: "06:00 AM"},
		"full time counter": {ticks: 3*TicksPerDay + 6000, exp: "12:00 PM"},
		"negative ticks":    {ticks: -1000, exp: "05:00 AM"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "clock", Clock(tt.ticks), tt.exp)
		})
	}
}

func TestEnvironment_UnmarshalText(t *testing.T) {
	tests := map[string]struct {
		in     string
		exp    Environment
		expErr string
	}{
		"normal":    {in: "normal", exp: EnvironmentNormal},
		"overworld": {in: "overworld", exp: EnvironmentNormal},
		"nether":    {in: "nether", exp: EnvironmentNether},
		"end":       {in: "the_end", exp: EnvironmentTheEnd},
		"unknown":   {in: "moon", expErr: "unknown environment: moon"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var env Environment
			err := env.UnmarshalText([]byte(tt.in))
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "environment", env, tt.exp)
		})
	}
}

func TestEnvironment_HasDayCycle(t *testing.T) {
	testutil.AssertEqual(t, "normal", EnvironmentNormal.HasDayCycle(), true)
	testutil.AssertEqual(t, "nether", EnvironmentNether.HasDayCycle(), false)
	testutil.AssertEqual(t, "end", EnvironmentTheEnd.HasDayCycle(), false)
}
