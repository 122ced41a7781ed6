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

// Package disassembly turns cartridge data into a list of CHIP-8 mnemonics.
//
// The disassembly is static. Words are decoded in order from the cartridge
// origin without following the flow of the program, so sprite data will show
// up as (possibly invalid) instructions. CHIP-8 programs make no distinction
// between code and data.
package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Entry is a single line of the disassembly.
type Entry struct {
	Address uint16
	Opcode  uint16

	// Mnemonic is the data word when the opcode does not decode
	Mnemonic string
}

func (e Entry) String() string {
	return fmt.Sprintf("%#04x  %04x  %s", e.Address, e.Opcode, e.Mnemonic)
}

// Disassembly is the list of entries for an entire cartridge.
type Disassembly struct {
	Entries []Entry
}

// FromCartridge disassembles the cartridge pointed to by the loader.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	err := cartload.Load()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}
	return FromData(cartload.Data, memory.OriginCart), nil
}

// FromData disassembles a block of data as though it was loaded at the
// specified origin.
func FromData(data []byte, origin uint16) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, len(data)/2),
	}

	for i := 0; i+1 < len(data); i += 2 {
		opcode := uint16(data[i])<<8 | uint16(data[i+1])
		e := Entry{
			Address: origin + uint16(i),
			Opcode:  opcode,
		}

		ins, err := instructions.Decode(opcode)
		if err != nil {
			// probably sprite data
			e.Mnemonic = fmt.Sprintf(".word %#04x", opcode)
		} else {
			e.Mnemonic = ins.String()
		}

		dsm.Entries = append(dsm.Entries, e)
	}

	// a cartridge with an odd number of bytes has a trailing data byte
	if len(data)%2 == 1 {
		i := len(data) - 1
		dsm.Entries = append(dsm.Entries, Entry{
			Address:  origin + uint16(i),
			Opcode:   uint16(data[i]),
			Mnemonic: fmt.Sprintf(".byte %#02x", data[i]),
		})
	}

	return dsm
}

// Write the disassembly, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
