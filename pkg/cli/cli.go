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

// Package cli implements the zaparoo-runners command line: browsing runner
// option schemas, building launch commands for configured games and running
// the runners' list and probe queries.
package cli

import (
	"fmt"
	"io"

	"github.com/ZaparooProject/zaparoo-runners/pkg/config"
	"github.com/ZaparooProject/zaparoo-runners/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-runners/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners/builtin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Env holds the dependencies of the command tree so tests can swap them.
type Env struct {
	Fs  afero.Fs
	Cmd command.Executor
	// ConfigDir is where the config file lives unless --config is passed.
	ConfigDir string
	// LogDir is where log files are written. Logging setup is skipped when
	// it's empty.
	LogDir string
}

// DefaultEnv returns the environment used by the real binary.
func DefaultEnv() Env {
	return Env{
		Fs:        afero.NewOsFs(),
		Cmd:       &command.RealExecutor{},
		ConfigDir: config.DefaultConfigDir(),
		LogDir:    helpers.LogDir(),
	}
}

type app struct {
	cfg      *config.Instance
	registry *runners.Registry
	env      Env
	cfgPath  string
	debug    bool
	verbose  bool
}

// NewRootCmd builds the zaparoo-runners command tree.
//
//nolint:gocritic // env copied into the app
func NewRootCmd(env Env) *cobra.Command {
	a := &app{env: env}

	root := &cobra.Command{
		Use:               "zaparoo-runners",
		Short:             "Build launch commands for emulator runners",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to the config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "also write logs to stderr")

	root.AddCommand(
		newVersionCommand(),
		a.newRunnersCommand(),
		a.newOptionsCommand(),
		a.newGamesCommand(),
		a.newPlayCommand(),
		a.newListGamesCommand(),
		a.newJoysticksCommand(),
	)

	return root
}

// setup initializes logging, loads the config and registers the runners
// before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.env.LogDir != "" {
		var writers []io.Writer
		if a.verbose {
			writers = []io.Writer{cmd.ErrOrStderr()}
		}
		if err := helpers.InitLogging(a.env.LogDir, writers); err != nil {
			return fmt.Errorf("error initializing logging: %w", err)
		}
	}

	cfgPath := a.cfgPath
	if cfgPath == "" {
		cfgPath = config.Path(a.env.ConfigDir)
	}
	cfg, err := config.NewConfig(a.env.Fs, cfgPath, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	if a.env.LogDir != "" {
		helpers.SetLogLevel(a.debug || cfg.DebugLogging())
	}

	reg, err := builtin.NewRegistry(a.env.Cmd)
	if err != nil {
		return err //nolint:wrapcheck // already wrapped
	}
	a.registry = reg

	log.Debug().Str("config", cfgPath).Msg("runners cli ready")
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		// no config needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Zaparoo Runners v%s\n", config.AppVersion)
		},
	}
}
