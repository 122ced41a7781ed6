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

// Package execution records the result of each instruction the CPU executes.
// The debugger and the disassembler use it to present what just happened
// without reaching into CPU internals.
package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result summarises the execution of a single instruction.
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	Instruction instructions.Instruction

	// whether the instruction changed the display. the playmode loop uses
	// this to decide when to render
	VideoUpdate bool
}

func (r Result) String() string {
	return fmt.Sprintf("%#04x %04x %s", r.Address, r.Instruction.Opcode, r.Instruction.String())
}
