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
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCfgPath = "/config/zaparoo-runners/runners.toml"

func TestNewConfig_WritesDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	cfg, err := NewConfig(fs, testCfgPath, BaseDefaults)
	require.NoError(t, err)

	exists, err := afero.Exists(fs, testCfgPath)
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := afero.ReadFile(fs, testCfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), fmt.Sprintf("config_schema = %d", SchemaVersion))

	assert.False(t, cfg.DebugLogging())
	assert.Empty(t, cfg.Games())
	assert.Equal(t, DefaultRunnerDir(), cfg.RunnerDir())
}

func TestLoad_ReadsGamesAndRunners(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := fmt.Sprintf(`config_schema = %d
debug_logging = true
runner_dir = "/opt/runners"

[runners.residualvm]
windowed = true
show-fps = "yes"

[runners.mednafen]
fs = false
xres = 1920

[[games]]
id = "grim"
runner = "residualvm"
name = "Grim Fandango"

[games.options]
game_id = "grim"
path = "/games/grim"
subtitles = true

[[games]]
id = "smb"
runner = "mednafen"

[games.options]
rom = "/roms/smb.nes"
machine = "nes"
`, SchemaVersion)
	require.NoError(t, afero.WriteFile(fs, testCfgPath, []byte(content), 0o600))

	cfg, err := NewConfig(fs, testCfgPath, BaseDefaults)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, "/opt/runners", cfg.RunnerDir())

	games := cfg.Games()
	require.Len(t, games, 2)
	assert.Equal(t, "Grim Fandango", games[0].Name)
	assert.Equal(t, "/games/grim", games[0].Options["path"])
	assert.Equal(t, true, games[0].Options["subtitles"])

	rvm := cfg.RunnerOptions("ResidualVM")
	assert.Equal(t, true, rvm["windowed"])
	assert.Equal(t, "yes", rvm["show-fps"])

	med := cfg.RunnerOptions("mednafen")
	assert.Equal(t, false, med["fs"])
	assert.Equal(t, int64(1920), med["xres"])
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			name:    "schema mismatch",
			content: "config_schema = 99\n",
			errText: "schema version mismatch",
		},
		{
			name:    "invalid toml",
			content: "config_schema = \n",
			errText: "failed to unmarshal config",
		},
		{
			name:    "game without runner",
			content: fmt.Sprintf("config_schema = %d\n[[games]]\nid = \"grim\"\n", SchemaVersion),
			errText: "invalid game entry 1",
		},
		{
			name: "duplicate game",
			content: fmt.Sprintf(
				"config_schema = %d\n[[games]]\nid = \"a\"\nrunner = \"x\"\n[[games]]\nid = \"a\"\nrunner = \"y\"\n",
				SchemaVersion,
			),
			errText: "duplicate game id",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, testCfgPath, []byte(tt.content), 0o600))

			_, err := NewConfig(fs, testCfgPath, BaseDefaults)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg, err := NewConfig(fs, testCfgPath, BaseDefaults)
	require.NoError(t, err)

	cfg.SetDebugLogging(true)
	cfg.SetRunnerDir("/srv/runners")
	cfg.SetRunnerOption("ResidualVM", "windowed", true)
	require.NoError(t, cfg.AddGame(Game{
		ID:      "grim",
		Runner:  "residualvm",
		Options: map[string]any{"game_id": "grim", "path": "/games/grim"},
	}))
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(fs, testCfgPath, BaseDefaults)
	require.NoError(t, err)

	assert.True(t, reloaded.DebugLogging())
	assert.Equal(t, "/srv/runners", reloaded.RunnerDir())
	assert.Equal(t, true, reloaded.RunnerOptions("residualvm")["windowed"])
	game, ok := reloaded.LookupGame("grim")
	require.True(t, ok)
	assert.Equal(t, "/games/grim", game.Options["path"])
}

func TestPath(t *testing.T) {
	// Cannot run in parallel due to env modification
	t.Run("defaults_to_config_dir", func(t *testing.T) {
		t.Setenv(CfgEnv, "")

		assert.Equal(t, filepath.Join("/home/user/.config", CfgFile), Path("/home/user/.config"))
	})

	t.Run("env_overrides", func(t *testing.T) {
		t.Setenv(CfgEnv, "/tmp/custom.toml")

		assert.Equal(t, "/tmp/custom.toml", Path("/home/user/.config"))
	})
}
