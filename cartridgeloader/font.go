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

package cartridgeloader

import (
	"fmt"
	"io/ioutil"

	"github.com/jetsetilly/gopher8/curated"
)

// FontLength is the required length in bytes of a CHIP-8 font set. 16 glyphs
// of 5 bytes each.
const FontLength = 80

// DefaultFont is the font set used when no font file has been specified. It
// is the font set found in almost every CHIP-8 implementation since the
// CHIP-48.
var DefaultFont = []byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// LoadFont returns the font set found in the named file. An empty filename
// returns DefaultFont.
func LoadFont(filename string) ([]byte, error) {
	if filename == "" {
		return DefaultFont, nil
	}

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	if len(data) != FontLength {
		return nil, curated.Errorf("cartridgeloader: %v",
			fmt.Sprintf("font file must be exactly %d bytes (%s is %d bytes)", FontLength, filename, len(data)))
	}

	return data, nil
}
