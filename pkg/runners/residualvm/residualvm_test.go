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
	"path/filepath"
	"slices"
	"testing"

	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
	"github.com/ZaparooProject/zaparoo-runners/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const testRunnerDir = "/opt/runners"

func TestNewRunner(t *testing.T) {
	t.Parallel()

	r := NewRunner(helpers.NewMockCommandExecutor())
	info := r.Info()

	assert.Equal(t, ID, info.ID)
	assert.Equal(t, "ResidualVM", info.Name)
	assert.Equal(t, "residualvm-0.2.1-linux64.tar.gz", info.Archives["x64"])

	keys := func(opts []runners.Option) []string {
		out := make([]string, 0, len(opts))
		for _, o := range opts {
			out = append(out, o.Key)
		}
		return out
	}
	assert.Equal(t, []string{"game_id", "path", "subtitles"}, keys(r.GameOptions()))
	assert.Equal(t, []string{"windowed", "soft-renderer", "show-fps"}, keys(r.RunnerOptions()))
}

func TestOptionsAreCopies(t *testing.T) {
	t.Parallel()

	r := NewRunner(helpers.NewMockCommandExecutor())
	opts := r.GameOptions()
	opts[0].Label = "changed"

	assert.Equal(t, "Game identifier", r.GameOptions()[0].Label)
}

func TestExecutableLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join(testRunnerDir, "ResidualVM", "ResidualVM"), Executable(testRunnerDir))
	assert.Equal(t, filepath.Join(testRunnerDir, "ResidualVM", "data"), DataDir(testRunnerDir))
}

func TestPlay(t *testing.T) {
	t.Parallel()

	exe := Executable(testRunnerDir)
	dataDir := DataDir(testRunnerDir)

	tests := []struct {
		game     runners.Values
		runner   runners.Values
		name     string
		expected []string
	}{
		{
			name: "defaults",
			game: runners.Values{"game_id": "grim", "path": "/games/grim"},
			expected: []string{
				exe, "--extrapath=" + dataDir, "--themepath=" + dataDir,
				"--fullscreen", "--no-soft-renderer", "--no-show-fps",
				"--path=/games/grim", "grim",
			},
		},
		{
			name: "all enabled",
			game: runners.Values{"game_id": "monkey4", "path": "/games/emi", "subtitles": true},
			runner: runners.Values{
				"windowed":      true,
				"soft-renderer": true,
				"show-fps":      true,
			},
			expected: []string{
				exe, "--extrapath=" + dataDir, "--themepath=" + dataDir,
				"--subtitles", "--no-fullscreen", "--soft-renderer", "--show-fps",
				"--path=/games/emi", "monkey4",
			},
		},
		{
			name:   "string booleans",
			game:   runners.Values{"game_id": "grim", "path": "/g", "subtitles": "true"},
			runner: runners.Values{"windowed": "1", "show-fps": "no"},
			expected: []string{
				exe, "--extrapath=" + dataDir, "--themepath=" + dataDir,
				"--subtitles", "--no-fullscreen", "--no-soft-renderer", "--no-show-fps",
				"--path=/g", "grim",
			},
		},
		{
			name: "missing game values",
			expected: []string{
				exe, "--extrapath=" + dataDir, "--themepath=" + dataDir,
				"--fullscreen", "--no-soft-renderer", "--no-show-fps",
				"--path=", "",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRunner(helpers.NewMockCommandExecutor())
			info, err := r.Play(context.Background(), runners.Config{
				Game:      tt.game,
				Runner:    tt.runner,
				RunnerDir: testRunnerDir,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, info.Command)
		})
	}
}

func TestPlayDoesNotModifyConfig(t *testing.T) {
	t.Parallel()

	game := runners.Values{"game_id": "grim", "path": "/games/grim", "subtitles": "yes"}
	runner := runners.Values{"windowed": true}
	r := NewRunner(helpers.NewMockCommandExecutor())

	_, err := r.Play(context.Background(), runners.Config{Game: game, Runner: runner})
	require.NoError(t, err)

	assert.Equal(t, runners.Values{"game_id": "grim", "path": "/games/grim", "subtitles": "yes"}, game)
	assert.Equal(t, runners.Values{"windowed": true}, runner)
}

func countAny(command []string, tokens ...string) int {
	n := 0
	for _, arg := range command {
		if slices.Contains(tokens, arg) {
			n++
		}
	}
	return n
}

// TestPropertyFlagPairsAlwaysEmitted verifies each toggle emits exactly one
// of its two flags, whatever the combination.
func TestPropertyFlagPairsAlwaysEmitted(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		game := GameOptions{
			GameID:    rapid.StringMatching(`[a-z0-9]{0,10}`).Draw(t, "gameID"),
			Path:      rapid.StringMatching(`[a-zA-Z0-9/ ]{0,20}`).Draw(t, "path"),
			Subtitles: rapid.Bool().Draw(t, "subtitles"),
		}
		opts := RunnerOptions{
			Windowed:     rapid.Bool().Draw(t, "windowed"),
			SoftRenderer: rapid.Bool().Draw(t, "softRenderer"),
			ShowFPS:      rapid.Bool().Draw(t, "showFPS"),
		}

		command := BuildCommand(testRunnerDir, game, opts)

		pairs := map[string][2]string{
			"windowed":      {"--no-fullscreen", "--fullscreen"},
			"soft-renderer": {"--soft-renderer", "--no-soft-renderer"},
			"show-fps":      {"--show-fps", "--no-show-fps"},
		}
		for name, pair := range pairs {
			if n := countAny(command, pair[0], pair[1]); n != 1 {
				t.Fatalf("%s emitted %d flags: %v", name, n, command)
			}
		}

		if (opts.Windowed && !slices.Contains(command, "--no-fullscreen")) ||
			(opts.SoftRenderer && !slices.Contains(command, "--soft-renderer")) ||
			(opts.ShowFPS && !slices.Contains(command, "--show-fps")) {
			t.Fatalf("enabled flag missing: %v", command)
		}

		subs := countAny(command, "--subtitles")
		if game.Subtitles && subs != 1 {
			t.Fatalf("expected one --subtitles, got %d", subs)
		}
		if !game.Subtitles && subs != 0 {
			t.Fatalf("unexpected --subtitles: %v", command)
		}

		if command[len(command)-1] != game.GameID {
			t.Fatalf("game ID not last: %v", command)
		}
	})
}
