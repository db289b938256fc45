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

// Package mednafen runs Atari Lynx, Game Boy, NES, PC Engine and other
// console games using Mednafen, with the first detected joystick bound to
// player one.
package mednafen

import (
	"context"
	"errors"

	"github.com/ZaparooProject/zaparoo-runners/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
	"github.com/rs/zerolog/log"
)

const (
	ID = "mednafen"

	// DefaultExecutable is looked up in PATH.
	DefaultExecutable = "mednafen"

	MachineNES = "nes"
	MachinePCE = "pce"
	MachineGBA = "gba"

	defaultXRes = "1680"
	defaultYRes = "1050"
)

// ErrNoJoysticks is returned by Play when Mednafen reports no joysticks to
// bind controls to.
var ErrNoJoysticks = errors.New("no joysticks found")

var gameOptions = []runners.Option{
	{Key: "rom", Kind: runners.KindPath, Label: "Rom file"},
	{
		Key:   "machine",
		Kind:  runners.KindChoice,
		Label: "Machine type",
		Choices: []runners.Choice{
			{Label: "NES", Value: MachineNES},
			{Label: "PC Engine", Value: MachinePCE},
			{Label: "Game Boy Advance", Value: MachineGBA},
		},
	},
}

var runnerOptions = []runners.Option{
	{Key: "fs", Kind: runners.KindBool, Label: "Fullscreen"},
	{Key: "xres", Kind: runners.KindString, Label: "Horizontal resolution"},
	{Key: "yres", Kind: runners.KindString, Label: "Vertical resolution"},
}

type GameOptions struct {
	ROM     string `option:"rom"`
	Machine string `option:"machine"`
}

type RunnerOptions struct {
	XRes       string `option:"xres"`
	YRes       string `option:"yres"`
	Fullscreen bool   `option:"fs"`
}

// DefaultRunnerOptions are used for any runner option left unset.
var DefaultRunnerOptions = RunnerOptions{
	Fullscreen: true,
	XRes:       defaultXRes,
	YRes:       defaultYRes,
}

// Runner is the Mednafen runner.
type Runner struct {
	cmd command.Executor
	exe string
}

// NewRunner creates a Mednafen runner which probes joysticks with cmd.
func NewRunner(cmd command.Executor) *Runner {
	return &Runner{cmd: cmd, exe: DefaultExecutable}
}

// Compile-time interface implementation check.
var _ runners.Runner = (*Runner)(nil)

func (*Runner) Info() runners.Info {
	return runners.Info{
		ID:   ID,
		Name: "Mednafen",
		Platform: "Atari Lynx, GameBoy (Color), GameBoy Advance, NES, PC Engine (TurboGrafx 16), " +
			"SuperGrafx, Neo Geo Pocket (Color), PC-FX, and WonderSwan (Color)",
		Description: "Multi-system emulator",
	}
}

func (*Runner) GameOptions() []runners.Option {
	return runners.CloneOptions(gameOptions)
}

func (*Runner) RunnerOptions() []runners.Option {
	return runners.CloneOptions(runnerOptions)
}

// Play probes for joysticks and builds the Mednafen command line with the
// first joystick bound to the game's machine. A missing joystick is an
// error whatever the machine.
func (r *Runner) Play(ctx context.Context, cfg runners.Config) (runners.LaunchInfo, error) {
	var game GameOptions
	if err := cfg.Game.Decode(&game); err != nil {
		log.Warn().Err(err).Msg("failed to decode mednafen game options")
	}
	opts := DefaultRunnerOptions
	if err := cfg.Runner.Decode(&opts); err != nil {
		log.Warn().Err(err).Msg("failed to decode mednafen runner options")
	}

	joysticks, err := r.FindJoysticks(ctx)
	if err != nil {
		return runners.LaunchInfo{}, err
	}

	command, err := BuildCommand(r.exe, game, opts, joysticks)
	if err != nil {
		return runners.LaunchInfo{}, err
	}
	return runners.LaunchInfo{Command: command}, nil
}

// BuildCommand assembles the argument vector for a game, binding controls
// to the first of joysticks.
//
//nolint:gocritic // option structs copied for immutability
func BuildCommand(exe string, game GameOptions, opts RunnerOptions, joysticks []string) ([]string, error) {
	if len(joysticks) == 0 {
		return nil, ErrNoJoysticks
	}

	fullscreen := "0"
	if opts.Fullscreen {
		fullscreen = "1"
	}

	m := "-" + game.Machine
	command := []string{
		exe,
		"-fs", fullscreen,
		m + ".xres", opts.XRes,
		m + ".yres", opts.YRes,
		m + ".stretch", "1",
		m + ".special", "hq4x",
		m + ".videoip", "1",
	}
	command = append(command, ControlArgs(game.Machine, joysticks[0])...)
	return append(command, game.ROM), nil
}
