package display

import (
	"fmt"
	"slices"
	"strings"
)

// DisplayOption is one kind of action bar content a player can toggle.
// Option tokens are persisted comma-joined so they must never contain a comma.
type DisplayOption string

const (
	OptionCoordinates DisplayOption = "coordinates"
	OptionDirection   DisplayOption = "direction"
	OptionTime        DisplayOption = "time"
	OptionBiome       DisplayOption = "biome"
	OptionWaypoint    DisplayOption = "waypoint"
)

const optionDelimiter = ","

// AllOptions lists every option in display order.
var AllOptions = []DisplayOption{
	OptionCoordinates,
	OptionDirection,
	OptionTime,
	OptionBiome,
	OptionWaypoint,
}

// ParseOption resolves a user supplied token to a known option.
func ParseOption(s string) (DisplayOption, error) {
	opt := DisplayOption(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(AllOptions, opt) {
		return "", fmt.Errorf("unknown display option %q", s)
	}
	return opt, nil
}

func (o DisplayOption) String() string {
	return string(o)
}

// OptionSet is a player's set of enabled options.
type OptionSet map[DisplayOption]struct{}

// NewOptionSet builds a set from the given options.
func NewOptionSet(opts ...DisplayOption) OptionSet {
	s := make(OptionSet, len(opts))
	for _, o := range opts {
		s[o] = struct{}{}
	}
	return s
}

// DecodeOptionSet parses the durable comma-joined encoding. Empty and unknown
// tokens are dropped.
func DecodeOptionSet(s string) OptionSet {
	set := OptionSet{}
	for _, tok := range strings.Split(s, optionDelimiter) {
		opt, err := ParseOption(tok)
		if err != nil {
			continue
		}
		set[opt] = struct{}{}
	}
	return set
}

// Encode returns the durable comma-joined encoding in display order.
func (s OptionSet) Encode() string {
	return strings.Join(s.tokens(), optionDelimiter)
}

func (s OptionSet) Has(o DisplayOption) bool {
	_, ok := s[o]
	return ok
}

func (s OptionSet) Add(o DisplayOption) {
	s[o] = struct{}{}
}

func (s OptionSet) Remove(o DisplayOption) {
	delete(s, o)
}

// Clone returns an independent copy of the set.
func (s OptionSet) Clone() OptionSet {
	c := make(OptionSet, len(s))
	for o := range s {
		c[o] = struct{}{}
	}
	return c
}

// Sorted returns the options in display order.
func (s OptionSet) Sorted() []DisplayOption {
	var out []DisplayOption
	for _, o := range AllOptions {
		if s.Has(o) {
			out = append(out, o)
		}
	}
	return out
}

func (s OptionSet) tokens() []string {
	opts := s.Sorted()
	toks := make([]string, len(opts))
	for i, o := range opts {
		toks[i] = string(o)
	}
	return toks
}

// Options records which options the server enables globally. A player may
// hold an option the server has disabled; it is filtered at display time.
type Options map[DisplayOption]bool

// Enabled reports whether the server allows the option.
func (o Options) Enabled(opt DisplayOption) bool {
	return o[opt]
}

// Defaults returns the set a new player starts with: every enabled option.
func (o Options) Defaults() OptionSet {
	set := OptionSet{}
	for _, opt := range AllOptions {
		if o.Enabled(opt) {
			set.Add(opt)
		}
	}
	return set
}
