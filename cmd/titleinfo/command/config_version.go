package command

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-titleinfo/internal/game"
	"github.com/pixil98/go-titleinfo/internal/version"
)

// VersionConfig turns on the update check when url is set.
type VersionConfig struct {
	URL            string `json:"url"`
	CurrentVersion string `json:"current_version"`
	DownloadPage   string `json:"download_page"`
	Timeout        string `json:"timeout"`
	Interval       string `json:"interval"`
}

func (c *VersionConfig) enabled() bool {
	return c.URL != ""
}

func (c *VersionConfig) validate() error {
	if !c.enabled() {
		return nil
	}

	el := errors.NewErrorList()

	if _, err := semver.NewVersion(c.CurrentVersion); err != nil {
		el.Add(fmt.Errorf("version_check: current_version: %w", err))
	}
	if _, err := optionalDuration("timeout", c.Timeout); err != nil {
		el.Add(fmt.Errorf("version_check: %w", err))
	}
	if _, err := optionalDuration("interval", c.Interval); err != nil {
		el.Add(fmt.Errorf("version_check: %w", err))
	}

	return el.Err()
}

func (c *VersionConfig) buildChecker(players version.Players, pub game.Publisher) (*version.Checker, error) {
	var opts []version.CheckerOpt
	if d, _ := optionalDuration("timeout", c.Timeout); d > 0 {
		opts = append(opts, version.WithTimeout(d))
	}
	if d, _ := optionalDuration("interval", c.Interval); d > 0 {
		opts = append(opts, version.WithInterval(d))
	}
	if c.DownloadPage != "" {
		opts = append(opts, version.WithDownloadPage(c.DownloadPage))
	}
	return version.NewChecker(c.URL, c.CurrentVersion, players, pub, opts...)
}
