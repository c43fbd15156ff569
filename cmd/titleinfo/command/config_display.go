package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-titleinfo/internal/display"
)

// DisplayConfig enables or disables each option server wide. Options left
// out are disabled.
type DisplayConfig map[string]bool

func (c DisplayConfig) validate() error {
	el := errors.NewErrorList()

	for k := range c {
		if _, err := display.ParseOption(k); err != nil {
			el.Add(fmt.Errorf("display_options: %w", err))
		}
	}

	return el.Err()
}

func (c DisplayConfig) options() display.Options {
	opts := display.Options{}
	for _, o := range display.AllOptions {
		opts[o] = false
	}
	for k, enabled := range c {
		o, err := display.ParseOption(k)
		if err != nil {
			continue
		}
		opts[o] = enabled
	}
	return opts
}
