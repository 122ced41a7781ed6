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

package playmode

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
)

// eventHandler drains the gui event queue. Translated keypad events are
// forwarded to the machine.
func (pl *playmode) eventHandler() error {
	for {
		select {
		case <-pl.intChan:
			return curated.Errorf(quitEvent)

		case ev := <-pl.events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				return curated.Errorf(quitEvent)

			case gui.EventKeypad:
				if err := pl.c8.Keypad.SetKey(ev.Key, ev.Down); err != nil {
					return curated.Errorf("playmode: %v", err)
				}
			}

		default:
			return nil
		}
	}
}
