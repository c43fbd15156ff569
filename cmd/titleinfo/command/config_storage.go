package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/state"
)

type StorageConfig struct {
	Path            string `json:"path"`
	MaxOpenConns    int    `json:"max_open_conns"`
	MaxIdleConns    int    `json:"max_idle_conns"`
	ConnMaxIdleTime string `json:"conn_max_idle_time"`
	BusyTimeout     string `json:"busy_timeout"`
	Writers         int    `json:"writers"`
	QueueSize       int    `json:"queue_size"`
	WriteTimeout    string `json:"write_timeout"`
	FlushTimeout    string `json:"flush_timeout"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("storage: path is required"))
	}
	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		el.Add(fmt.Errorf("storage: connection limits must not be negative"))
	}
	if c.MaxOpenConns > 0 && c.MaxIdleConns > c.MaxOpenConns {
		el.Add(fmt.Errorf("storage: max_idle_conns exceeds max_open_conns"))
	}
	if c.Writers < 0 || c.QueueSize < 0 {
		el.Add(fmt.Errorf("storage: writers and queue_size must not be negative"))
	}

	for name, v := range map[string]string{
		"conn_max_idle_time": c.ConnMaxIdleTime,
		"busy_timeout":       c.BusyTimeout,
		"write_timeout":      c.WriteTimeout,
		"flush_timeout":      c.FlushTimeout,
	} {
		if _, err := optionalDuration(name, v); err != nil {
			el.Add(fmt.Errorf("storage: %w", err))
		}
	}

	return el.Err()
}

func (c *StorageConfig) buildStore() (*state.SQLStore, error) {
	var opts []state.SQLStoreOpt
	if c.MaxOpenConns > 0 {
		opts = append(opts, state.WithMaxOpenConns(c.MaxOpenConns))
	}
	if c.MaxIdleConns > 0 {
		opts = append(opts, state.WithMaxIdleConns(c.MaxIdleConns))
	}
	if d, _ := optionalDuration("conn_max_idle_time", c.ConnMaxIdleTime); d > 0 {
		opts = append(opts, state.WithConnMaxIdleTime(d))
	}
	if d, _ := optionalDuration("busy_timeout", c.BusyTimeout); d > 0 {
		opts = append(opts, state.WithBusyTimeout(d))
	}

	s, err := state.NewSQLStore(c.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", c.Path, err)
	}
	return s, nil
}

func (c *StorageConfig) buildCache(store state.Store, defaults display.OptionSet) *state.Cache {
	opts := []state.CacheOpt{state.WithDefaults(defaults)}
	if c.Writers > 0 {
		opts = append(opts, state.WithWriters(c.Writers))
	}
	if c.QueueSize > 0 {
		opts = append(opts, state.WithQueueSize(c.QueueSize))
	}
	if d, _ := optionalDuration("write_timeout", c.WriteTimeout); d > 0 {
		opts = append(opts, state.WithWriteTimeout(d))
	}
	if d, _ := optionalDuration("flush_timeout", c.FlushTimeout); d > 0 {
		opts = append(opts, state.WithFlushTimeout(d))
	}
	return state.NewCache(store, opts...)
}
