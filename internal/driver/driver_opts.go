package driver

import "time"

type TickDriverOpt func(*TickDriver)

func WithTickLength(tickLength time.Duration) TickDriverOpt {
	return func(d *TickDriver) {
		if tickLength > 0 {
			d.tickLength = tickLength
		}
	}
}
