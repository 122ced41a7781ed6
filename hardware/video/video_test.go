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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawAndCollision(t *testing.T) {
	vid := video.NewVideo()

	// a single full row of pixels
	collision := vid.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, collision, false)
	for x := 0; x < 8; x++ {
		test.Equate(t, vid.Pixel(x, 0), true)
	}
	test.Equate(t, vid.Pixel(8, 0), false)

	// drawing the same sprite again erases it and reports the collision
	collision = vid.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, collision, true)
	for x := 0; x < 8; x++ {
		test.Equate(t, vid.Pixel(x, 0), false)
	}
}

func TestPartialOverlap(t *testing.T) {
	vid := video.NewVideo()

	_ = vid.DrawSprite(0, 0, []uint8{0xf0})
	collision := vid.DrawSprite(4, 0, []uint8{0xf0})
	test.Equate(t, collision, true)

	// the overlapping pixels have been XORed away
	for x := 0; x < 4; x++ {
		test.Equate(t, vid.Pixel(x, 0), true)
	}
	for x := 4; x < 8; x++ {
		test.Equate(t, vid.Pixel(x, 0), false)
	}
}

func TestWrapAndClip(t *testing.T) {
	vid := video.NewVideo()

	// a start coordinate beyond the display wraps around
	_ = vid.DrawSprite(64+2, 32+1, []uint8{0x80})
	test.Equate(t, vid.Pixel(2, 1), true)

	// pixels extending past the right edge are clipped, not wrapped
	vid.Clear()
	_ = vid.DrawSprite(62, 0, []uint8{0xff})
	test.Equate(t, vid.Pixel(62, 0), true)
	test.Equate(t, vid.Pixel(63, 0), true)
	test.Equate(t, vid.Pixel(0, 0), false)

	// rows extending past the bottom edge are clipped too
	vid.Clear()
	_ = vid.DrawSprite(0, 31, []uint8{0x80, 0x80})
	test.Equate(t, vid.Pixel(0, 31), true)
	test.Equate(t, vid.Pixel(0, 0), false)
}

func TestClear(t *testing.T) {
	vid := video.NewVideo()

	_ = vid.DrawSprite(10, 10, []uint8{0xff, 0xff})
	vid.Clear()

	snap := vid.Snapshot()
	for y := range snap {
		for x := range snap[y] {
			if snap[y][x] {
				t.Fatalf("pixel (%d, %d) still set after clear", x, y)
			}
		}
	}
}
