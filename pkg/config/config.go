// Zaparoo Runners
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Runners.
//
// Zaparoo Runners is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Runners is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Runners.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-runners/pkg/helpers/syncutil"
	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "ZAPAROO_RUNNERS_CFG"
)

var ErrGameNotFound = errors.New("game not found")

type Values struct {
	// Runners holds runner-wide option values keyed by runner ID.
	Runners      map[string]map[string]any `toml:"runners,omitempty"`
	RunnerDir    string                    `toml:"runner_dir,omitempty"`
	Games        []Game                    `toml:"games,omitempty"`
	ConfigSchema int                       `toml:"config_schema"`
	DebugLogging bool                      `toml:"debug_logging"`
}

// Game is a game entry configured to launch with a runner.
type Game struct {
	// Options holds the values of the runner's game options.
	Options map[string]any `toml:"options,omitempty"`
	ID      string         `toml:"id" validate:"required"`
	Runner  string         `toml:"runner" validate:"required"`
	Name    string         `toml:"name,omitempty"`
}

// clone returns a copy of v sharing no maps or slices with it.
func (v *Values) clone() Values {
	cloned := *v
	if v.Runners != nil {
		cloned.Runners = make(map[string]map[string]any, len(v.Runners))
		for id, opts := range v.Runners {
			cloned.Runners[id] = maps.Clone(opts)
		}
	}
	if v.Games != nil {
		cloned.Games = make([]Game, len(v.Games))
		for i, game := range v.Games {
			game.Options = maps.Clone(game.Options)
			cloned.Games[i] = game
		}
	}
	return cloned
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
}

type Instance struct {
	fs       afero.Fs
	validate *validator.Validate
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// DefaultConfigDir is the per-user config folder.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultRunnerDir is the folder runners are installed to if the config
// doesn't set one.
func DefaultRunnerDir() string {
	return filepath.Join(xdg.DataHome, AppName, RunnersDir)
}

// Path returns the config file location, preferring the CfgEnv environment
// variable over the config file in configDir.
func Path(configDir string) string {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}
	return cfgPath
}

// NewConfig loads the config file at cfgPath, writing the defaults to it
// first if it doesn't exist yet.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, cfgPath string, defaults Values) (*Instance, error) {
	cfg := Instance{
		fs:       fs,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cfgPath:  cfgPath,
		vals:     defaults.clone(),
		defaults: defaults.clone(),
	}

	exists, err := afero.Exists(fs, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		log.Info().Msg("saving new default config to disk")

		if err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	newVals := c.defaults.clone()
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	seen := make(map[string]struct{}, len(newVals.Games))
	for i := range newVals.Games {
		game := &newVals.Games[i]
		if err := c.validate.Struct(game); err != nil {
			return fmt.Errorf("invalid game entry %d: %w", i+1, err)
		}
		if _, ok := seen[game.ID]; ok {
			return fmt.Errorf("duplicate game id: %s", game.ID)
		}
		seen[game.ID] = struct{}{}
	}

	c.vals = newVals
	log.Info().Msgf("loaded %d games from config", len(c.vals.Games))

	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) ConfigPath() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// RunnerDir returns the root folder runners are installed under.
func (c *Instance) RunnerDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.RunnerDir == "" {
		return DefaultRunnerDir()
	}
	return c.vals.RunnerDir
}

func (c *Instance) SetRunnerDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.RunnerDir = dir
}
