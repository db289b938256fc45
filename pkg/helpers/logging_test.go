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

package helpers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZaparooProject/zaparoo-runners/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	// Note: Cannot use t.Parallel() because InitLogging modifies global log.Logger
	t.Cleanup(func() {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	t.Run("creates_log_dir", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "logs", "nested")

		err := InitLogging(logDir, nil)
		require.NoError(t, err)

		info, err := os.Stat(logDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		if runtime.GOOS != "windows" {
			assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
		}
	})

	t.Run("writes_to_file_and_extra_writers", func(t *testing.T) {
		logDir := t.TempDir()
		var buf bytes.Buffer

		err := InitLogging(logDir, []io.Writer{&buf})
		require.NoError(t, err)
		SetLogLevel(false)

		log.Info().Str("runner", "residualvm").Msg("hello")
		log.Debug().Msg("hidden")

		assert.Contains(t, buf.String(), `"runner":"residualvm"`)
		assert.NotContains(t, buf.String(), "hidden")

		data, err := os.ReadFile(filepath.Join(logDir, config.LogFile))
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	})

	t.Run("fails_for_invalid_dir", func(t *testing.T) {
		err := InitLogging("/proc/invalid\x00path", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create log directory")
	})
}

func TestSetLogLevel(t *testing.T) {
	// Cannot run in parallel, modifies the global level
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	SetLogLevel(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetLogLevel(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
