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
	"maps"
	"strings"

	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
)

// RunnerOptions returns a copy of the runner-wide option values set for a
// runner. Runner IDs are case-insensitive.
func (c *Instance) RunnerOptions(runnerID string) runners.Values {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vals := runners.Values{}
	for id, opts := range c.vals.Runners {
		if strings.EqualFold(id, runnerID) {
			maps.Copy(vals, opts)
		}
	}
	return vals
}

func (c *Instance) SetRunnerOption(runnerID, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vals.Runners == nil {
		c.vals.Runners = make(map[string]map[string]any)
	}
	id := strings.ToLower(runnerID)
	if c.vals.Runners[id] == nil {
		c.vals.Runners[id] = make(map[string]any)
	}
	c.vals.Runners[id][key] = value
}

// Games returns a copy of all configured games.
func (c *Instance) Games() []Game {
	c.mu.RLock()
	defer c.mu.RUnlock()
	games := make([]Game, len(c.vals.Games))
	for i, game := range c.vals.Games {
		game.Options = maps.Clone(game.Options)
		games[i] = game
	}
	return games
}

// LookupGame finds a configured game by ID.
func (c *Instance) LookupGame(id string) (Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, game := range c.vals.Games {
		if game.ID == id {
			game.Options = maps.Clone(game.Options)
			return game, true
		}
	}
	return Game{}, false
}

// AddGame adds a game or replaces the game with the same ID.
//
//nolint:gocritic // game struct copied for immutability
func (c *Instance) AddGame(game Game) error {
	if err := c.validate.Struct(&game); err != nil {
		return err //nolint:wrapcheck // validation errors are descriptive
	}
	game.Options = maps.Clone(game.Options)

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.vals.Games {
		if c.vals.Games[i].ID == game.ID {
			c.vals.Games[i] = game
			return nil
		}
	}
	c.vals.Games = append(c.vals.Games, game)
	return nil
}

// LaunchConfig resolves everything the game's runner needs to build its
// launch command.
//
//nolint:gocritic // game struct copied for immutability
func (c *Instance) LaunchConfig(game Game) runners.Config {
	return runners.Config{
		Game:      runners.Values(maps.Clone(game.Options)),
		Runner:    c.RunnerOptions(game.Runner),
		RunnerDir: c.RunnerDir(),
	}
}
