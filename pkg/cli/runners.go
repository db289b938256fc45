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
	"io"
	"text/tabwriter"

	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
	"github.com/spf13/cobra"
)

func (a *app) newRunnersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "runners",
		Short: "List available runners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tPLATFORM")
			for _, r := range a.registry.All() {
				info := r.Info()
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", info.ID, info.Name, info.Platform)
			}
			return w.Flush() //nolint:wrapcheck // terminal write error
		},
	}
}

type optionsOutput struct {
	Runner        runners.Info     `json:"runner"`
	GameOptions   []runners.Option `json:"gameOptions"`
	RunnerOptions []runners.Option `json:"runnerOptions"`
}

func (a *app) newOptionsCommand() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "options <runner>",
		Short: "Show the configurable options of a runner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry.Lookup(args[0])
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			out := optionsOutput{
				Runner:        r.Info(),
				GameOptions:   r.GameOptions(),
				RunnerOptions: r.RunnerOptions(),
			}
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(out); err != nil {
					return fmt.Errorf("failed to encode options: %w", err)
				}
				return nil
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s - %s\n", out.Runner.Name, out.Runner.Description)
			printOptions(w, "Game options", out.GameOptions)
			printOptions(w, "Runner options", out.RunnerOptions)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print options as JSON")
	return cmd
}

func printOptions(w io.Writer, title string, opts []runners.Option) {
	_, _ = fmt.Fprintf(w, "\n%s:\n", title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, opt := range opts {
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\n", opt.Key, opt.Kind, opt.Label)
		for _, c := range opt.Choices {
			_, _ = fmt.Fprintf(tw, "  \t\t- %s (%s)\n", c.Label, c.Value)
		}
	}
	_ = tw.Flush()
}
