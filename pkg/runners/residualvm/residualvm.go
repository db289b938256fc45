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

// Package residualvm runs 3D point-and-click adventure games, like Grim
// Fandango and Escape from Monkey Island, using ResidualVM.
package residualvm

import (
	"context"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-runners/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
	"github.com/rs/zerolog/log"
)

const (
	ID = "residualvm"

	// ListGamesFlag makes ResidualVM print every game it supports and exit.
	ListGamesFlag = "--list-games"
)

var gameOptions = []runners.Option{
	{Key: "game_id", Kind: runners.KindString, Label: "Game identifier"},
	{Key: "path", Kind: runners.KindPath, Label: "Game files location"},
	{Key: "subtitles", Kind: runners.KindBool, Label: "Enable subtitles (if the game has voice)"},
}

var runnerOptions = []runners.Option{
	{Key: "windowed", Kind: runners.KindBool, Label: "Windowed mode"},
	{Key: "soft-renderer", Kind: runners.KindBool, Label: "Software renderer"},
	{Key: "show-fps", Kind: runners.KindBool, Label: "Display FPS information"},
}

// GameOptions are the per-game settings.
type GameOptions struct {
	GameID    string `option:"game_id"`
	Path      string `option:"path"`
	Subtitles bool   `option:"subtitles"`
}

// RunnerOptions are the settings shared by all ResidualVM games.
type RunnerOptions struct {
	Windowed     bool `option:"windowed"`
	SoftRenderer bool `option:"soft-renderer"`
	ShowFPS      bool `option:"show-fps"`
}

// Runner is the ResidualVM runner.
type Runner struct {
	cmd command.Executor
}

// NewRunner creates a ResidualVM runner which runs list queries with cmd.
func NewRunner(cmd command.Executor) *Runner {
	return &Runner{cmd: cmd}
}

// Compile-time interface implementation check.
var _ runners.Runner = (*Runner)(nil)

func (*Runner) Info() runners.Info {
	return runners.Info{
		ID:          ID,
		Name:        "ResidualVM",
		Platform:    "3D point-and-click games",
		Description: "Runs various 3D point-and-click adventure games, like Grim Fandango and Escape from Monkey Island.",
		Archives: map[string]string{
			"i386": "residualvm-0.2.1-linux32.tar.gz",
			"x64":  "residualvm-0.2.1-linux64.tar.gz",
		},
	}
}

func (*Runner) GameOptions() []runners.Option {
	return runners.CloneOptions(gameOptions)
}

func (*Runner) RunnerOptions() []runners.Option {
	return runners.CloneOptions(runnerOptions)
}

// Executable returns the path of the ResidualVM binary inside runnerDir.
func Executable(runnerDir string) string {
	return filepath.Join(runnerDir, "ResidualVM", "ResidualVM")
}

// DataDir returns the folder holding ResidualVM's themes and extra assets,
// which sits next to the executable.
func DataDir(runnerDir string) string {
	return filepath.Join(filepath.Dir(Executable(runnerDir)), "data")
}

// Play builds the ResidualVM command line. It never fails; missing values
// end up as empty arguments and are left for ResidualVM to reject.
func (*Runner) Play(_ context.Context, cfg runners.Config) (runners.LaunchInfo, error) {
	var game GameOptions
	if err := cfg.Game.Decode(&game); err != nil {
		log.Warn().Err(err).Msg("failed to decode residualvm game options")
	}
	var opts RunnerOptions
	if err := cfg.Runner.Decode(&opts); err != nil {
		log.Warn().Err(err).Msg("failed to decode residualvm runner options")
	}

	return runners.LaunchInfo{
		Command: BuildCommand(cfg.RunnerDir, game, opts),
	}, nil
}

// BuildCommand assembles the argument vector for a game.
//
//nolint:gocritic // option structs copied for immutability
func BuildCommand(runnerDir string, game GameOptions, opts RunnerOptions) []string {
	dataDir := DataDir(runnerDir)
	command := []string{
		Executable(runnerDir),
		"--extrapath=" + dataDir,
		"--themepath=" + dataDir,
	}

	if game.Subtitles {
		command = append(command, "--subtitles")
	}

	if opts.Windowed {
		command = append(command, "--no-fullscreen")
	} else {
		command = append(command, "--fullscreen")
	}

	if opts.SoftRenderer {
		command = append(command, "--soft-renderer")
	} else {
		command = append(command, "--no-soft-renderer")
	}

	if opts.ShowFPS {
		command = append(command, "--show-fps")
	} else {
		command = append(command, "--no-show-fps")
	}

	return append(command, "--path="+game.Path, game.GameID)
}
