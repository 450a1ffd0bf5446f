// Package config loads adminviz settings from a TOML file.
//
// A config file is optional. When present it supplies defaults for the
// command-line flags:
//
//	# adminviz.toml
//	format       = "svg"         # graphml, dot, svg, png, pdf, json
//	output_dir   = "diagrams"
//	path_mode    = "predecessor" # distance or predecessor
//	target       = "DA-ADMIN"    # path target for predecessor mode
//	engine       = "circo"       # Graphviz layout engine
//	placeholders = false         # synthesize unresolved neighbors
//
// [Find] looks for the file in this order: an explicit path, ./adminviz.toml,
// then $XDG_CONFIG_HOME/adminviz/config.toml (~/.config/adminviz/config.toml).
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperr "github.com/powergraph/adminviz/pkg/errors"
)

// AppName names the config directory and the local config file.
const AppName = "adminviz"

// LocalFile is the config file looked up in the working directory.
const LocalFile = AppName + ".toml"

// Config holds file-provided settings. Zero values mean "not set".
type Config struct {
	Format       string `toml:"format"`
	OutputDir    string `toml:"output_dir"`
	PathMode     string `toml:"path_mode"`
	Target       string `toml:"target"`
	Engine       string `toml:"engine"`
	Placeholders bool   `toml:"placeholders"`

	// Source is the file the config was read from, empty if none.
	Source string `toml:"-"`
}

// Load decodes the TOML file at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	c.Source = path
	return &c, nil
}

// Find loads the first config file that exists. An explicit path must exist;
// otherwise a missing file yields an empty Config.
func Find(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	candidates := []string{LocalFile}
	if dir, err := Dir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		return Load(p)
	}
	return &Config{}, nil
}

// Dir returns the config directory using the XDG standard (~/.config/adminviz/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}
