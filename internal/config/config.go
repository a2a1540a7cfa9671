// Package config loads wikecd's CLI defaults from a HuJSON (JSON with
// comments) file, following the same load-then-override precedence the
// teacher uses for its own project config: defaults, then project file,
// then CLI flag overrides (applied by the caller, not here).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ConfigFileName is the default project config file name, looked up in the
// working directory when no explicit path is given.
const ConfigFileName = ".wikecd.json"

// ErrConfigFileNotFound reports that an explicitly requested config file
// does not exist.
var ErrConfigFileNotFound = errors.New("config file not found")

// ErrConfigInvalid reports that a config file could not be parsed.
var ErrConfigInvalid = errors.New("invalid config file")

// Config holds the CLI's tunable defaults. Zero values mean "let the
// compressor apply its own default".
type Config struct {
	OutDir     string  `json:"out_dir,omitempty"`
	Solver     string  `json:"solver,omitempty"`
	Strategy   string  `json:"strategy,omitempty"`
	Eps        float64 `json:"eps,omitempty"`
	MaxStates  int     `json:"max_states,omitempty"`
	TimeBudget *int64  `json:"time_budget,omitempty"`
}

// Load reads configPath if non-empty (must exist), otherwise looks for
// ConfigFileName in workDir (optional). A missing default file is not an
// error: Load returns the zero Config.
func Load(workDir, configPath string) (Config, error) {
	path := configPath
	mustExist := path != ""

	if path == "" {
		path = filepath.Join(workDir, ConfigFileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, nil
		}

		if mustExist {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}

		return Config{}, nil
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, nil
}
