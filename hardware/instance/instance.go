// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package instance defines those parts of the emulation that might change
// from instance to instance of the Chip8 type, but is not actually the
// machine itself.
package instance

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Chip8 type, but is not actually the
// machine itself.
type Instance struct {
	Random *random.Random

	// the preferences of the running instance. can be shared with other
	// running instances of the emulation
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance
// type.
//
// The prefs argument can be nil, in which case a new prefs instance is
// created. Providing a non-nil value allows the preferences of more than one
// machine instance to be synchronised.
func NewInstance(clock random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clock),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the machine instance is in a known default state. Useful
// for regression testing where the initial state must be the same for every
// run of the test.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
