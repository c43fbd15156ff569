package display

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps chat output to DefaultWidth.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BlockCoords formats a point as whole block coordinates for chat messages.
func BlockCoords(p Point) string {
	return fmt.Sprintf("X: %d, Y: %d, Z: %d", blockCoord(p.X), blockCoord(p.Y), blockCoord(p.Z))
}
