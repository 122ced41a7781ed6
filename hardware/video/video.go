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

// Package video implements the 64x32 monochrome display of the CHIP-8
// machine. Sprites are drawn by XORing them onto the framebuffer, with a
// collision flag raised whenever a set pixel is unset by the draw.
//
// Sprite start coordinates wrap around the display. Pixels that extend past
// the right or bottom edge from that start position are clipped.
package video

import "strings"

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Video is the framebuffer of the CHIP-8 machine.
type Video struct {
	pixels [Height][Width]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// String returns an ASCII rendering of the framebuffer. Used by the
// debugger's DISPLAY command.
func (vid Video) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if vid.pixels[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Reset the display. Equivalent to Clear but named for consistency with the
// other hardware components.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear every pixel of the display.
func (vid *Video) Clear() {
	for y := range vid.pixels {
		for x := range vid.pixels[y] {
			vid.pixels[y][x] = false
		}
	}
}

// Pixel returns the state of the pixel at the specified coordinates.
// Coordinates outside the display return false.
func (vid *Video) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return vid.pixels[y][x]
}

// DrawSprite XORs the sprite data onto the display at the specified
// coordinates. Each byte of data is one 8 pixel row. The returned collision
// flag is true if any set pixel was unset by the draw.
func (vid *Video) DrawSprite(x uint8, y uint8, data []uint8) bool {
	// the start coordinate wraps around the display
	sx := int(x) % Width
	sy := int(y) % Height

	collision := false

	for row, b := range data {
		py := sy + row
		if py >= Height {
			break
		}
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>bit) == 0 {
				continue
			}
			px := sx + bit
			if px >= Width {
				break
			}
			if vid.pixels[py][px] {
				collision = true
			}
			vid.pixels[py][px] = !vid.pixels[py][px]
		}
	}

	return collision
}

// Snapshot returns a copy of the framebuffer. The copy is safe to read while
// the emulation continues.
func (vid *Video) Snapshot() [Height][Width]bool {
	return vid.pixels
}
