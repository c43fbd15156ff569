package display

import "fmt"

const (
	TicksPerDay  = 24000
	TicksPerHour = 1000

	// tick 0 is 06:00
	clockHourOffset = 6
)

// Environment is the kind of time cycle a world runs.
type Environment int

const (
	EnvironmentNormal Environment = iota
	EnvironmentNether
	EnvironmentTheEnd
)

// UnmarshalText lets world assets name their environment.
func (e *Environment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal", "overworld":
		*e = EnvironmentNormal
	case "nether":
		*e = EnvironmentNether
	case "the_end", "end":
		*e = EnvironmentTheEnd
	default:
		return fmt.Errorf("unknown environment: %s", text)
	}
	return nil
}

func (e Environment) MarshalText() ([]byte, error) {
	switch e {
	case EnvironmentNormal:
		return []byte("normal"), nil
	case EnvironmentNether:
		return []byte("nether"), nil
	case EnvironmentTheEnd:
		return []byte("the_end"), nil
	default:
		return nil, fmt.Errorf("unknown environment: %d", e)
	}
}

// HasDayCycle reports whether clock output makes sense in the environment.
func (e Environment) HasDayCycle() bool {
	return e == EnvironmentNormal
}

// EnvironmentLabel is the name shown when a waypoint lives in another world.
func EnvironmentLabel(e Environment) string {
	switch e {
	case EnvironmentNormal:
		return "Overworld"
	case EnvironmentNether:
		return "Nether"
	case EnvironmentTheEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Clock renders a world tick counter as a 12-hour clock, e.g. "07:00 AM".
func Clock(ticks int64) string {
	if ticks < 0 {
		ticks = ticks%TicksPerDay + TicksPerDay
	}
	hour := (ticks/TicksPerHour + clockHourOffset) % 24
	minute := (ticks % TicksPerHour) * 60 / TicksPerHour

	meridian := "AM"
	if hour >= 12 {
		meridian = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour12, minute, meridian)
}
