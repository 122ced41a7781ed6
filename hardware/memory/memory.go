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

// Package memory implements the flat 4096 byte address space of the CHIP-8
// machine. The lowest 512 bytes are reserved for the interpreter; by
// convention the font sprites live at OriginFont and loaded programs begin at
// OriginCart.
//
// Addresses beyond the 12 bit address space are never silently clamped or
// wrapped. Any access outside the space fails with the OutOfBounds error.
package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// OutOfBounds is returned on any attempt to access an address outside the 12
// bit address space.
const OutOfBounds = "memory: out of bounds (%#04x)"

// Memory layout.
const (
	// Memtop is the highest valid address.
	Memtop = uint16(0x0fff)

	// OriginFont is the address the font sprites are loaded to. 16 glyphs of
	// 5 bytes each, ending at 0x09f.
	OriginFont = uint16(0x0050)

	// OriginCart is the address cartridge data is loaded to and where
	// execution begins.
	OriginCart = uint16(0x0200)
)

// Memory is the flat address space of the CHIP-8 machine.
type Memory struct {
	ram [Memtop + 1]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Reset contents of Memory. Everything is zeroed, including the font area.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
}

// Read a byte from the specified address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address > Memtop {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return mem.ram[address], nil
}

// Write a byte to the specified address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address > Memtop {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.ram[address] = data
	return nil
}

// Load a block of data into memory starting at the specified address. Fails
// with OutOfBounds if the block would extend past the top of memory. Nothing
// is written in that instance.
func (mem *Memory) Load(data []byte, origin uint16) error {
	if origin > Memtop || int(origin)+len(data) > int(Memtop)+1 {
		return curated.Errorf(OutOfBounds, int(origin)+len(data)-1)
	}
	copy(mem.ram[origin:], data)
	return nil
}
