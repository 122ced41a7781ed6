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

import "github.com/veandco/go-sdl2/sdl"

// the CHIP-8 keypad occupies the left hand side of a modern keyboard:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var keypadMap = map[sdl.Keycode]uint8{
	sdl.K_1: 0x01, sdl.K_2: 0x02, sdl.K_3: 0x03, sdl.K_4: 0x0c,
	sdl.K_q: 0x04, sdl.K_w: 0x05, sdl.K_e: 0x06, sdl.K_r: 0x0d,
	sdl.K_a: 0x07, sdl.K_s: 0x08, sdl.K_d: 0x09, sdl.K_f: 0x0e,
	sdl.K_z: 0x0a, sdl.K_x: 0x00, sdl.K_c: 0x0b, sdl.K_v: 0x0f,
}
