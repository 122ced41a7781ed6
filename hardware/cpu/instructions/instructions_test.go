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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecodeOperands(t *testing.T) {
	ins, err := instructions.Decode(0xd12f)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(instructions.Draw))
	test.Equate(t, ins.X, 1)
	test.Equate(t, ins.Y, 2)
	test.Equate(t, ins.Nib, 0x0f)

	ins, err = instructions.Decode(0x1abc)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(instructions.Jump))
	test.Equate(t, ins.Addr, 0x0abc)

	ins, err = instructions.Decode(0x63ff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(instructions.Load))
	test.Equate(t, ins.X, 3)
	test.Equate(t, ins.Byte, 0xff)
}

func TestDecodeGroups(t *testing.T) {
	decoding := map[uint16]instructions.Operator{
		0x0000: instructions.End,
		0x00e0: instructions.Clear,
		0x00ee: instructions.Return,
		0x2abc: instructions.Call,
		0x3a01: instructions.SkipEqual,
		0x4a01: instructions.SkipNotEqual,
		0x5ab0: instructions.SkipEqualRegister,
		0x7a01: instructions.Add,
		0x8ab0: instructions.Move,
		0x8ab1: instructions.Or,
		0x8ab2: instructions.And,
		0x8ab3: instructions.Xor,
		0x8ab4: instructions.AddRegister,
		0x8ab5: instructions.Subtract,
		0x8ab6: instructions.ShiftRight,
		0x8ab7: instructions.SubtractReverse,
		0x8abe: instructions.ShiftLeft,
		0x9ab0: instructions.SkipNotEqualRegister,
		0xaabc: instructions.LoadIndex,
		0xbabc: instructions.JumpOffset,
		0xca7f: instructions.Random,
		0xea9e: instructions.SkipPressed,
		0xeaa1: instructions.SkipNotPressed,
		0xfa07: instructions.MoveFromDelay,
		0xfa0a: instructions.WaitKey,
		0xfa15: instructions.MoveToDelay,
		0xfa18: instructions.MoveToSound,
		0xfa1e: instructions.AddIndex,
		0xfa29: instructions.LoadSprite,
		0xfa33: instructions.StoreDecimal,
		0xfa55: instructions.StoreRegisters,
		0xfa65: instructions.LoadRegisters,
	}

	for opcode, operator := range decoding {
		ins, err := instructions.Decode(opcode)
		test.ExpectedSuccess(t, err)
		test.Equate(t, int(ins.Operator), int(operator))
		test.Equate(t, ins.Opcode, opcode)
	}
}

func TestDecodeUnknown(t *testing.T) {
	unknown := []uint16{0x0123, 0x00e1, 0x5ab1, 0x8ab8, 0x9ab1, 0xea00, 0xfaff}

	for _, opcode := range unknown {
		_, err := instructions.Decode(opcode)
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, instructions.UnknownInstruction))
	}
}

func TestMnemonics(t *testing.T) {
	ins, _ := instructions.Decode(0xd01f)
	test.Equate(t, ins.String(), "DRW V0, V1, 15")

	ins, _ = instructions.Decode(0x00e0)
	test.Equate(t, ins.String(), "CLS")

	ins, _ = instructions.Decode(0xa222)
	test.Equate(t, ins.String(), "LD I, 0x0222")
}
