package config

import (
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/filesystem"
)

// TOML encodes the configuration.
func (c *Config) TOML() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode configuration")
	}
	return data, nil
}

// Save writes cfg as TOML to path, creating parent directories.
func Save(fs filesystem.FS, cfg *Config, path string) error {
	data, err := cfg.TOML()
	if err != nil {
		return err
	}
	return writeFile(fs, path, data)
}

// WriteDefault writes the commented default configuration to path. It
// refuses to replace an existing file unless force is set.
func WriteDefault(fs filesystem.FS, path string, force bool) error {
	if !force && filesystem.Exists(fs, path) {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path).
			WithDetail("path", path)
	}
	return writeFile(fs, path, defaultConfig)
}

func writeFile(fs filesystem.FS, path string, data []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create %s", filepath.Dir(path))
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path)
	}
	return nil
}
