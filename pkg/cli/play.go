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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ZaparooProject/zaparoo-runners/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newGamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List configured games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tRUNNER\tNAME")
			for _, game := range a.cfg.Games() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", game.ID, game.Runner, game.Name)
			}
			return w.Flush() //nolint:wrapcheck // terminal write error
		},
	}
}

func (a *app) newPlayCommand() *cobra.Command {
	var (
		start   bool
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "play <game>",
		Short: "Build the launch command of a configured game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, ok := a.cfg.LookupGame(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", config.ErrGameNotFound, args[0])
			}

			r, err := a.registry.Lookup(game.Runner)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			info, err := r.Play(cmd.Context(), a.cfg.LaunchConfig(game))
			if err != nil {
				return fmt.Errorf("failed to build %s command: %w", r.Info().ID, err)
			}
			if len(info.Command) == 0 {
				return errors.New("runner returned an empty command")
			}
			log.Info().Str("game", game.ID).Strs("command", info.Command).Msg("built launch command")

			if jsonOut {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(info.Command); err != nil {
					return fmt.Errorf("failed to encode command: %w", err)
				}
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), FormatCommand(info.Command))
			}

			if start {
				if err := a.env.Cmd.Start(cmd.Context(), info.Command[0], info.Command[1:]...); err != nil {
					return fmt.Errorf("failed to start %s: %w", info.Command[0], err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&start, "start", false, "start the command after printing it")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the command as a JSON array")
	return cmd
}

// FormatCommand joins a command for display, quoting arguments which would
// otherwise be ambiguous.
func FormatCommand(command []string) string {
	quoted := make([]string, len(command))
	for i, arg := range command {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'\\") {
			quoted[i] = strconv.Quote(arg)
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}
