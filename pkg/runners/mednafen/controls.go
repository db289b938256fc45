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

// Joystick input codes as Mednafen expects them in a binding.
const (
	codeButton1 = "00000001"
	codeButton2 = "00000002"
	codeSelect  = "00000008"
	codeStart   = "00000009"
	codeUp      = "0000c001"
	codeDown    = "00008001"
	codeLeft    = "0000c000"
	codeRight   = "00008000"
)

type buttonBinding struct {
	button string
	code   string
}

var standardPad = []buttonBinding{
	{"a", codeButton1},
	{"b", codeButton2},
	{"start", codeStart},
	{"select", codeSelect},
	{"up", codeUp},
	{"down", codeDown},
	{"left", codeLeft},
	{"right", codeRight},
}

// controlMappings is the port 1 gamepad layout for each supported machine.
var controlMappings = map[string][]buttonBinding{
	MachineNES: standardPad,
	MachineGBA: standardPad,
	MachinePCE: {
		{"i", codeButton1},
		{"ii", codeButton2},
		{"run", codeStart},
		{"select", codeSelect},
		{"up", codeUp},
		{"down", codeDown},
		{"left", codeLeft},
		{"right", codeRight},
	},
}

// ControlArgs returns the arguments binding the port 1 gamepad of machine to
// the given joystick. Unknown machines have no bindings.
func ControlArgs(machine, joystickID string) []string {
	bindings := controlMappings[machine]
	args := make([]string, 0, len(bindings)*2)
	for _, b := range bindings {
		args = append(args,
			"-"+machine+".input.port1.gamepad."+b.button,
			"joystick "+joystickID+" "+b.code,
		)
	}
	return args
}
