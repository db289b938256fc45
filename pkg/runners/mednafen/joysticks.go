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

package mednafen

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZaparooProject/zaparoo-runners/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

const (
	// probeArg is passed in place of a ROM path. Mednafen fails to load it
	// but lists the joysticks it found while initializing.
	probeArg = "dummy"

	joystickMarker = "Initializing joysticks"
	deviceMarker   = "Joystick"
	uniqueIDMarker = "Unique ID:"
)

type scanState int

const (
	stateIdle scanState = iota
	stateArmed
)

func (s scanState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateArmed:
		return "armed"
	default:
		return fmt.Sprintf("scanState(%d)", int(s))
	}
}

type lineClass int

const (
	lineOther lineClass = iota
	lineMarker
	lineDevice
)

func (c lineClass) String() string {
	switch c {
	case lineOther:
		return "other"
	case lineMarker:
		return "marker"
	case lineDevice:
		return "device"
	default:
		return fmt.Sprintf("lineClass(%d)", int(c))
	}
}

type transition struct {
	next    scanState
	capture bool
}

// transitions drives the joystick scanner. Only an unbroken run of device
// lines directly after the marker line is captured; the first unrelated line
// stops capture until the marker appears again.
var transitions = map[scanState]map[lineClass]transition{
	stateIdle: {
		lineMarker: {next: stateArmed},
		lineDevice: {next: stateIdle},
		lineOther:  {next: stateIdle},
	},
	stateArmed: {
		lineMarker: {next: stateArmed},
		lineDevice: {next: stateArmed, capture: true},
		lineOther:  {next: stateIdle},
	},
}

func classifyLine(line string) lineClass {
	switch {
	case strings.Contains(line, joystickMarker):
		return lineMarker
	case strings.Contains(line, deviceMarker), strings.Contains(line, uniqueIDMarker):
		return lineDevice
	default:
		return lineOther
	}
}

// joystickScanner collects device lines from Mednafen's startup output.
type joystickScanner struct {
	devices []string
	state   scanState
}

func (s *joystickScanner) step(line string) {
	t := transitions[s.state][classifyLine(line)]
	if t.capture {
		s.devices = append(s.devices, line)
	}
	s.state = t.next
}

// uniqueID returns the ID following the "Unique ID:" marker of a device line.
func uniqueID(line string) (string, bool) {
	idx := strings.Index(line, uniqueIDMarker)
	if idx < 0 {
		return "", false
	}
	// skip the marker and the delimiter after it
	start := idx + len(uniqueIDMarker) + 1
	if start > len(line) {
		return "", false
	}
	id := strings.TrimSpace(line[start:])
	return id, id != ""
}

// ParseJoysticks extracts joystick unique IDs, in order, from the output of
// a Mednafen run.
func ParseJoysticks(output string) []string {
	scanner := &joystickScanner{}
	for _, line := range strings.Split(output, "\n") {
		scanner.step(line)
	}

	ids := make([]string, 0, len(scanner.devices))
	for _, device := range scanner.devices {
		if id, ok := uniqueID(device); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// FindJoysticks runs Mednafen without a game and returns the unique IDs of
// the joysticks it detected.
func (r *Runner) FindJoysticks(ctx context.Context) ([]string, error) {
	out, err := r.cmd.Output(ctx, r.exe, probeArg)
	if err != nil {
		if !command.IsExitError(err) {
			return nil, fmt.Errorf("failed to run %s: %w", r.exe, err)
		}
		// expected, the dummy ROM never loads
		log.Debug().Err(err).Str("exe", r.exe).Msg("mednafen probe exited with error")
	}

	ids := ParseJoysticks(string(out))
	log.Debug().Strs("ids", ids).Msgf("found %d joysticks", len(ids))
	return ids, nil
}
