package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-titleinfo/internal/game"
	"github.com/pixil98/go-titleinfo/internal/storage"
)

// AssetConfig points at a directory of JSON world assets.
type AssetConfig struct {
	Path string `json:"path"`
}

func (c *AssetConfig) validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}
	return nil
}

func (c *AssetConfig) buildWorldStore() (*storage.FileStore[*game.World], error) {
	return storage.NewFileStore[*game.World](c.Path)
}
