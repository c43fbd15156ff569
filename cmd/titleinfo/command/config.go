package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-titleinfo/internal/driver"
)

type Config struct {
	TickInterval   string              `json:"tick_interval"`
	Listeners      []ListenerConfig    `json:"listeners"`
	Storage        StorageConfig       `json:"storage"`
	Worlds         AssetConfig         `json:"worlds"`
	Nats           NatsConfig          `json:"nats"`
	PlayerManager  PlayerManagerConfig `json:"player_manager"`
	DisplayOptions DisplayConfig       `json:"display_options"`
	VersionCheck   VersionConfig       `json:"version_check"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("tick_interval must be positive"))
		}
	}

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i, l := range c.Listeners {
		if err := l.validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Worlds.validate("worlds"))
	el.Add(c.Nats.validate())
	el.Add(c.PlayerManager.validate())
	el.Add(c.DisplayOptions.validate())
	el.Add(c.VersionCheck.validate())

	return el.Err()
}

func (c *Config) tickLength() time.Duration {
	if c.TickInterval == "" {
		return driver.DefaultTickLength
	}
	d, _ := time.ParseDuration(c.TickInterval)
	return d
}

// optionalDuration parses s when set, returning zero when it is empty.
func optionalDuration(name, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return d, nil
}
