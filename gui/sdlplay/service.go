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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill the event queue quickly and there is nothing
	// in a CHIP-8 machine that wants them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service the SDL event queue.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.eventChannel == nil {
		return
	}

	// loop until there are no more events to retrieve. servicing one event
	// per call is not enough, queued events would take a frame or longer
	// each to resolve
	for {
		// check for SDL events, timing out straight away if there is nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.eventChannel <- gui.EventQuit{}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break
			}

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				if ev.Type == sdl.KEYDOWN {
					scr.eventChannel <- gui.EventQuit{}
				}
				break
			}

			if key, ok := keypadMap[ev.Keysym.Sym]; ok {
				scr.eventChannel <- gui.EventKeypad{
					Key:  key,
					Down: ev.Type == sdl.KEYDOWN,
				}
			}

		case nil:
			// a nil value means WaitEventTimeout has timed out and the event
			// queue is empty
			return
		}
	}
}
