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

package residualvm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ZaparooProject/zaparoo-runners/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// listSeparator marks the end of the header in --list-games output.
const listSeparator = "-----"

// Game is one row of ResidualVM's supported games list.
type Game struct {
	// ID is the identifier passed to ResidualVM to start the game.
	ID   string `csv:"id" json:"id"`
	Name string `csv:"name" json:"name"`
}

// ListGames returns the entire list of games supported by the ResidualVM
// install in cfg.RunnerDir, in the order ResidualVM prints them.
func (r *Runner) ListGames(ctx context.Context, cfg runners.Config) ([]Game, error) {
	exe := Executable(cfg.RunnerDir)
	out, err := r.cmd.Output(ctx, exe, ListGamesFlag)
	if err != nil {
		if !command.IsExitError(err) {
			return nil, fmt.Errorf("failed to run %s: %w", exe, err)
		}
		log.Debug().Err(err).Str("exe", exe).Msg("residualvm exited with error, parsing output anyway")
	}

	games := ParseGameList(string(out))
	log.Debug().Msgf("found %d residualvm games", len(games))
	return games, nil
}

// ParseGameList parses the output of --list-games. Rows start after the
// dashed separator line and are split at their first space into the game ID
// and its name. Rows which can't be split are skipped.
func ParseGameList(output string) []Game {
	games := make([]Game, 0)
	started := false

	for _, line := range strings.Split(output, "\n") {
		if started && len(line) > 1 {
			if idx := strings.Index(line, " "); idx >= 0 {
				games = append(games, Game{
					ID:   line[:idx],
					Name: strings.TrimSpace(line[idx+1:]),
				})
			}
		}
		if strings.HasPrefix(line, listSeparator) {
			started = true
		}
	}

	return games
}

// WriteGamesCSV writes games as CSV with an id,name header.
func WriteGamesCSV(w io.Writer, games []Game) error {
	if err := gocsv.Marshal(games, w); err != nil {
		return fmt.Errorf("failed to write games csv: %w", err)
	}
	return nil
}
