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

// Package runners defines the shape shared by every runner plugin: the option
// schema shown by configuration UIs, the resolved values handed to a runner at
// launch time and the command a runner builds from them.
package runners

import (
	"context"
)

// Info describes a runner to the user.
type Info struct {
	// Archives maps a CPU architecture (i386, x64) to the release archive
	// the runner is installed from, if the runner is distributed that way.
	Archives map[string]string
	// ID is the unique, lowercase ID of the runner.
	ID string
	// Name is the human readable name of the runner.
	Name string
	// Platform lists what the runner emulates.
	Platform string
	// Description is a one line summary of the runner.
	Description string
}

// Config is everything a runner needs to build a launch command. It's
// resolved by the caller before a runner operation is invoked and is never
// modified by the runner.
type Config struct {
	// Game holds the values for the runner's game options.
	Game Values
	// Runner holds the values for the runner's runner-wide options.
	Runner Values
	// RunnerDir is the root folder runners are installed under.
	RunnerDir string
}

// LaunchInfo is the result of a runner's Play operation.
type LaunchInfo struct {
	// Command is the argument vector to execute. The first item is the
	// runner executable.
	Command []string
}

// Runner is a plugin which translates launcher configuration into a
// command line for an external emulator or interpreter.
type Runner interface {
	Info() Info
	// GameOptions are the options configured per game.
	GameOptions() []Option
	// RunnerOptions are the options shared by every game using this runner.
	RunnerOptions() []Option
	// Play builds the command used to launch a game.
	Play(ctx context.Context, cfg Config) (LaunchInfo, error)
}
