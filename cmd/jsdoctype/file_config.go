package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = ".jsdoctype.toml"

// FileConfig holds the settings a TOML config file may provide.
type FileConfig struct {
	Mode        string `toml:"mode"`
	Start       string `toml:"start"`
	Color       *bool  `toml:"color"`
	StripBraces bool   `toml:"strip_braces"`
}

// LoadFileConfig reads path.  When required is false a missing file
// yields a nil config and no error.
func LoadFileConfig(path string, required bool) (*FileConfig, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	fc := &FileConfig{}
	md, err := toml.DecodeFile(path, fc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	return fc, nil
}
