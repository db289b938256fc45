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
	"fmt"
	"text/tabwriter"

	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners/mednafen"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners/residualvm"
	"github.com/spf13/cobra"
)

func (a *app) newListGamesCommand() *cobra.Command {
	var (
		csvOut  bool
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "list-games",
		Short: "List every game supported by the installed ResidualVM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.registry.Lookup(residualvm.ID)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}
			rvm, ok := r.(*residualvm.Runner)
			if !ok {
				return fmt.Errorf("unexpected runner type for %s", residualvm.ID)
			}

			games, err := rvm.ListGames(cmd.Context(), runners.Config{
				Runner:    a.cfg.RunnerOptions(residualvm.ID),
				RunnerDir: a.cfg.RunnerDir(),
			})
			if err != nil {
				return fmt.Errorf("failed to list games: %w", err)
			}

			out := cmd.OutOrStdout()
			switch {
			case csvOut:
				return residualvm.WriteGamesCSV(out, games) //nolint:wrapcheck // already wrapped
			case jsonOut:
				if err := json.NewEncoder(out).Encode(games); err != nil {
					return fmt.Errorf("failed to encode games: %w", err)
				}
				return nil
			default:
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, game := range games {
					_, _ = fmt.Fprintf(w, "%s\t%s\n", game.ID, game.Name)
				}
				return w.Flush() //nolint:wrapcheck // terminal write error
			}
		},
	}
	cmd.Flags().BoolVar(&csvOut, "csv", false, "print games as CSV")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print games as JSON")
	cmd.MarkFlagsMutuallyExclusive("csv", "json")
	return cmd
}

func (a *app) newJoysticksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "joysticks",
		Short: "List joysticks detected by Mednafen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.registry.Lookup(mednafen.ID)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}
			med, ok := r.(*mednafen.Runner)
			if !ok {
				return fmt.Errorf("unexpected runner type for %s", mednafen.ID)
			}

			ids, err := med.FindJoysticks(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to find joysticks: %w", err)
			}
			if len(ids) == 0 {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "no joysticks found")
				return nil
			}
			for _, id := range ids {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
