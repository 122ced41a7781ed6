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

// Package registers implements the register file of the CHIP-8 machine:
// sixteen 8 bit general purpose registers, the 16 bit index register, the
// program counter and the call stack.
//
// VF is an ordinary addressable register but note that the arithmetic, shift
// and draw instructions overwrite it with their carry/borrow/collision flag.
// That side effect belongs to the instructions, not to this package.
package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors returned by the register file.
const (
	InvalidRegister = "registers: invalid register (V%X)"
	StackOverflow   = "registers: stack overflow"
	StackUnderflow  = "registers: stack underflow"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag identifies the VF register.
const Flag = 0x0f

// StackDepth is the maximum number of return addresses the call stack can
// hold.
const StackDepth = 16

// Registers is the register file of the CHIP-8 machine.
type Registers struct {
	v [NumRegisters]uint8

	// the index register, referred to as I in most documentation
	I uint16

	// the program counter
	PC uint16

	// the call stack. SP points at the next free entry
	stack [StackDepth]uint16
	SP    uint8
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	return &Registers{}
}

func (reg Registers) String() string {
	s := strings.Builder{}
	for i := 0; i < NumRegisters; i++ {
		s.WriteString(fmt.Sprintf("V%X=%02x ", i, reg.v[i]))
		if i == 7 {
			s.WriteString("\n")
		}
	}
	s.WriteString(fmt.Sprintf("\nI=%04x PC=%04x SP=%02x", reg.I, reg.PC, reg.SP))
	return s.String()
}

// Reset the register file. All registers are zeroed and the stack emptied.
// The program counter is the responsibility of the CPU.
func (reg *Registers) Reset() {
	for i := range reg.v {
		reg.v[i] = 0
	}
	reg.I = 0
	reg.PC = 0
	reg.SP = 0
}

// Register returns the value of the specified general purpose register.
func (reg *Registers) Register(r uint8) (uint8, error) {
	if r >= NumRegisters {
		return 0, curated.Errorf(InvalidRegister, r)
	}
	return reg.v[r], nil
}

// SetRegister sets the value of the specified general purpose register.
func (reg *Registers) SetRegister(r uint8, value uint8) error {
	if r >= NumRegisters {
		return curated.Errorf(InvalidRegister, r)
	}
	reg.v[r] = value
	return nil
}

// SetFlag sets the VF register. The arithmetic, shift and draw instructions
// use this to record their carry/borrow/collision side effect.
func (reg *Registers) SetFlag(value uint8) {
	reg.v[Flag] = value
}

// Push a return address onto the call stack.
func (reg *Registers) Push(address uint16) error {
	if reg.SP >= StackDepth {
		return curated.Errorf(StackOverflow)
	}
	reg.stack[reg.SP] = address
	reg.SP++
	return nil
}

// Pop a return address from the call stack.
func (reg *Registers) Pop() (uint16, error) {
	if reg.SP == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	reg.SP--
	return reg.stack[reg.SP], nil
}
