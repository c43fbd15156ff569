package display

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestHeading(t *testing.T) {
	tests := map[string]struct {
		yaw float64
		exp string
	}{
		"zero faces south":            {yaw: 0, exp: "S"},
		"just below first boundary":   {yaw: 22.4, exp: "S"},
		"first boundary floors up":    {yaw: 22.5, exp: "SW"},
		"forty five":                  {yaw: 45, exp: "SW"},
		"ninety":                      {yaw: 90, exp: "W"},
		"one thirty five":             {yaw: 135, exp: "NW"},
		"one eighty faces north":      {yaw: 180, exp: "N"},
		"two seventy":                 {yaw: 270, exp: "E"},
		"last boundary wraps":         {yaw: 337.5, exp: "S"},
		"just below last boundary":    {yaw: 337.4, exp: "SE"},
		"negative yaw":                {yaw: -90, exp: "E"},
		"full turn":                   {yaw: 360, exp: "S"},
		"several negative turns":      {yaw: -720 + 180, exp: "N"},
		"several positive turns":      {yaw: 1080 + 45, exp: "SW"},
		"negative just past a sector": {yaw: -22.5, exp: "S"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "heading", Heading(tt.yaw), tt.exp)
		})
	}
}

func TestHeading_Periodic(t *testing.T) {
	for _, h := range []float64{0, 10, 22.5, 45, 67.5, 100, 180, 202.5, 250, 315, 359} {
		want := Heading(h)
		for k := -3; k <= 3; k++ {
			got := Heading(h + float64(360*k))
			if got != want {
				t.Errorf("Heading(%v + 360*%d) = %q, expected %q", h, k, got, want)
			}
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := map[string]struct {
		in  float64
		exp float64
	}{
		"zero":          {in: 0, exp: 0},
		"in range":      {in: 123.5, exp: 123.5},
		"full turn":     {in: 360, exp: 0},
		"negative":      {in: -90, exp: 270},
		"large":         {in: 725, exp: 5},
		"tiny negative": {in: -1e-20, exp: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := normalizeDegrees(tt.in)
			if got < 0 || got >= 360 {
				t.Fatalf("normalizeDegrees(%v) = %v, outside [0,360)", tt.in, got)
			}
			testutil.AssertEqual(t, "degrees", got, tt.exp)
		})
	}
}
