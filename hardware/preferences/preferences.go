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

// Package preferences defines and collates the preference values used by the
// hardware package. The values cover the behavioural quirks that different
// CHIP-8 interpreters disagree about. Defaults follow the original COSMAC
// VIP interpreter.
package preferences

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the 8XY6 and 8XYE shift instructions copy VY into VX before shifting.
	// later interpreters shift VX in place and ignore VY
	ShiftCopiesY prefs.Bool

	// FX1E sets VF when the index register moves past 0x0fff. the Amiga
	// interpreter did this and at least one game relies on it
	IndexOverflow prefs.Bool

	// FX55 and FX65 leave the index register pointing past the last register
	// stored or loaded. later interpreters leave it untouched
	MoveIndex prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// setup preferences and load from disk
	pth := paths.ResourcePath(prefs.DefaultPrefsFile)
	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("quirks.shiftcopiesy", &p.ShiftCopiesY)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("quirks.indexoverflow", &p.IndexOverflow)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("quirks.moveindex", &p.MoveIndex)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all quirk preferences to the original interpreter
// behaviour.
func (p *Preferences) SetDefaults() {
	_ = p.ShiftCopiesY.Set(true)
	_ = p.IndexOverflow.Set(true)
	_ = p.MoveIndex.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
