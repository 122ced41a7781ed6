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

// Package instructions defines the CHIP-8 instruction set and the decoder
// that turns a 16 bit opcode into an Instruction value.
//
// Decoding is pure. It never touches machine state, which means the same
// decoder serves the CPU and the disassembler.
package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// UnknownInstruction is returned by Decode when the opcode does not map to
// any instruction in the CHIP-8 set.
const UnknownInstruction = "instructions: unknown instruction (%#04x)"

// Operator identifies what an instruction does once operands have been
// separated out.
type Operator int

// List of operators in the CHIP-8 instruction set. End is not strictly an
// instruction. It is how the decoder reports the 0x0000 word that marks the
// end of a program.
const (
	End Operator = iota
	Clear
	Return
	Jump
	Call
	SkipEqual
	SkipNotEqual
	SkipEqualRegister
	SkipNotEqualRegister
	Load
	Add
	Move
	Or
	And
	Xor
	AddRegister
	Subtract
	ShiftRight
	SubtractReverse
	ShiftLeft
	LoadIndex
	JumpOffset
	Random
	Draw
	SkipPressed
	SkipNotPressed
	MoveFromDelay
	WaitKey
	MoveToDelay
	MoveToSound
	AddIndex
	LoadSprite
	StoreDecimal
	StoreRegisters
	LoadRegisters
)

// Instruction is a decoded opcode. Only the operand fields meaningful to the
// Operator are filled in. For example, Addr is valid for Jump but not for
// Add.
type Instruction struct {
	Opcode   uint16
	Operator Operator

	// register operands
	X uint8
	Y uint8

	// immediate operands
	Nib  uint8
	Byte uint8
	Addr uint16
}

// Decode a 16 bit opcode into an Instruction. Decode has no side effects so
// a failed decode leaves nothing to undo.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode >> 8 & 0x000f),
		Y:      uint8(opcode >> 4 & 0x000f),
		Nib:    uint8(opcode & 0x000f),
		Byte:   uint8(opcode & 0x00ff),
		Addr:   opcode & 0x0fff,
	}

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x0000:
			ins.Operator = End
		case 0x00e0:
			ins.Operator = Clear
		case 0x00ee:
			ins.Operator = Return
		default:
			// 0NNN calls a machine code routine on the original COSMAC VIP.
			// there is no machine code to call
			return Instruction{}, curated.Errorf(UnknownInstruction, opcode)
		}
	case 0x1000:
		ins.Operator = Jump
	case 0x2000:
		ins.Operator = Call
	case 0x3000:
		ins.Operator = SkipEqual
	case 0x4000:
		ins.Operator = SkipNotEqual
	case 0x5000:
		if ins.Nib != 0x00 {
			return Instruction{}, curated.Errorf(UnknownInstruction, opcode)
		}
		ins.Operator = SkipEqualRegister
	case 0x6000:
		ins.Operator = Load
	case 0x7000:
		ins.Operator = Add
	case 0x8000:
		switch ins.Nib {
		case 0x00:
			ins.Operator = Move
		case 0x01:
			ins.Operator = Or
		case 0x02:
			ins.Operator = And
		case 0x03:
			ins.Operator = Xor
		case 0x04:
			ins.Operator = AddRegister
		case 0x05:
			ins.Operator = Subtract
		case 0x06:
			ins.Operator = ShiftRight
		case 0x07:
			ins.Operator = SubtractReverse
		case 0x0e:
			ins.Operator = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(UnknownInstruction, opcode)
		}
	case 0x9000:
		if ins.Nib != 0x00 {
			return Instruction{}, curated.Errorf(UnknownInstruction, opcode)
		}
		ins.Operator = SkipNotEqualRegister
	case 0xa000:
		ins.Operator = LoadIndex
	case 0xb000:
		ins.Operator = JumpOffset
	case 0xc000:
		ins.Operator = Random
	case 0xd000:
		ins.Operator = Draw
	case 0xe000:
		switch ins.Byte {
		case 0x9e:
			ins.Operator = SkipPressed
		case 0xa1:
			ins.Operator = SkipNotPressed
		default:
			return Instruction{}, curated.Errorf(UnknownInstruction, opcode)
		}
	case 0xf000:
		switch ins.Byte {
		case 0x07:
			ins.Operator = MoveFromDelay
		case 0x0a:
			ins.Operator = WaitKey
		case 0x15:
			ins.Operator = MoveToDelay
		case 0x18:
			ins.Operator = MoveToSound
		case 0x1e:
			ins.Operator = AddIndex
		case 0x29:
			ins.Operator = LoadSprite
		case 0x33:
			ins.Operator = StoreDecimal
		case 0x55:
			ins.Operator = StoreRegisters
		case 0x65:
			ins.Operator = LoadRegisters
		default:
			return Instruction{}, curated.Errorf(UnknownInstruction, opcode)
		}
	}

	return ins, nil
}

// String returns the instruction in the mnemonic form used by most CHIP-8
// documentation.
func (ins Instruction) String() string {
	switch ins.Operator {
	case End:
		return "END"
	case Clear:
		return "CLS"
	case Return:
		return "RET"
	case Jump:
		return fmt.Sprintf("JP %#04x", ins.Addr)
	case Call:
		return fmt.Sprintf("CALL %#04x", ins.Addr)
	case SkipEqual:
		return fmt.Sprintf("SE V%X, %#02x", ins.X, ins.Byte)
	case SkipNotEqual:
		return fmt.Sprintf("SNE V%X, %#02x", ins.X, ins.Byte)
	case SkipEqualRegister:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case SkipNotEqualRegister:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case Load:
		return fmt.Sprintf("LD V%X, %#02x", ins.X, ins.Byte)
	case Add:
		return fmt.Sprintf("ADD V%X, %#02x", ins.X, ins.Byte)
	case Move:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case AddRegister:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case Subtract:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%X, V%X", ins.X, ins.Y)
	case SubtractReverse:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%X, V%X", ins.X, ins.Y)
	case LoadIndex:
		return fmt.Sprintf("LD I, %#04x", ins.Addr)
	case JumpOffset:
		return fmt.Sprintf("JP V0, %#04x", ins.Addr)
	case Random:
		return fmt.Sprintf("RND V%X, %#02x", ins.X, ins.Byte)
	case Draw:
		return fmt.Sprintf("DRW V%X, V%X, %d", ins.X, ins.Y, ins.Nib)
	case SkipPressed:
		return fmt.Sprintf("SKP V%X", ins.X)
	case SkipNotPressed:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case MoveFromDelay:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case MoveToDelay:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case MoveToSound:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case AddIndex:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case LoadSprite:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case StoreDecimal:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case StoreRegisters:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case LoadRegisters:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return fmt.Sprintf("??? %#04x", ins.Opcode)
}
