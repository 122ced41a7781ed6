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

// Package cpu implements the fetch/decode/execute engine of the CHIP-8
// machine. One call to Step() is one instruction.
//
// The program counter only advances once an opcode has decoded successfully.
// An unknown opcode therefore halts the machine with nothing mutated and the
// program counter still pointing at the offending word.
package cpu

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
)

// PoweredOff is returned by Step() once the program has reached its end. It
// is a condition rather than a fault. The driving loop should stop cleanly.
const PoweredOff = "cpu: machine is powered off"

// ExecutionError annotates errors from the execution of an instruction with
// the address it was fetched from.
const ExecutionError = "cpu: at %#04x: %v"

// CPU implements the CHIP-8 interpreter loop.
type CPU struct {
	instance *instance.Instance

	Reg *registers.Registers

	mem *memory.Memory
	vid *video.Video
	kpd *keypad.Keypad
	tmr *timer.Timer

	// number of instructions executed since the last reset. the emulation's
	// random number source keys off this value
	cycles uint64

	// LastResult records the outcome of the most recent call to Step(). Used
	// by the debugger and by the playmode loop (VideoUpdate field).
	LastResult execution.Result

	// AwaitingKey is true while the wait-for-key instruction is polling.
	// Step() returns without advancing the program counter until a key is
	// pressed
	AwaitingKey bool

	poweredOff bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(ins *instance.Instance, mem *memory.Memory, vid *video.Video, kpd *keypad.Keypad, tmr *timer.Timer) *CPU {
	return &CPU{
		instance: ins,
		Reg:      registers.NewRegisters(),
		mem:      mem,
		vid:      vid,
		kpd:      kpd,
		tmr:      tmr,
	}
}

func (c *CPU) String() string {
	return c.Reg.String()
}

// Instance returns the emulation instance the CPU was created with.
func (c *CPU) Instance() *instance.Instance {
	return c.instance
}

// Cycles returns the number of instructions executed since the last reset.
// Implements the random.Clock interface.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// HasPowered returns false once the program has reached its end.
func (c *CPU) HasPowered() bool {
	return !c.poweredOff
}

// Reset the CPU. The program counter is set to the cartridge origin.
func (c *CPU) Reset() {
	c.Reg.Reset()
	c.Reg.PC = memory.OriginCart
	c.cycles = 0
	c.LastResult = execution.Result{}
	c.AwaitingKey = false
	c.poweredOff = false
}

// Step executes a single instruction. A nil return means the instruction
// completed (or that the wait-for-key instruction is still polling, see the
// AwaitingKey field). The PoweredOff sentinal is returned once the program
// has ended.
func (c *CPU) Step() error {
	if c.poweredOff {
		return curated.Errorf(PoweredOff)
	}

	fetchAddr := c.Reg.PC

	hi, err := c.mem.Read(fetchAddr)
	if err != nil {
		return curated.Errorf(ExecutionError, fetchAddr, err)
	}
	lo, err := c.mem.Read(fetchAddr + 1)
	if err != nil {
		return curated.Errorf(ExecutionError, fetchAddr, err)
	}
	opcode := uint16(hi)<<8 | uint16(lo)

	ins, err := instructions.Decode(opcode)
	if err != nil {
		// the program counter has not advanced and nothing has been mutated
		return curated.Errorf(ExecutionError, fetchAddr, err)
	}

	// a zero word means the program has run off its end
	if ins.Operator == instructions.End {
		c.poweredOff = true
		c.LastResult = execution.Result{Address: fetchAddr, Instruction: ins}
		return curated.Errorf(PoweredOff)
	}

	// the program counter advances as soon as decoding has succeeded. jump
	// and call instructions overwrite it during execution
	c.Reg.PC += 2

	result := execution.Result{Address: fetchAddr, Instruction: ins}
	err = c.execute(ins, &result)
	if err != nil {
		return curated.Errorf(ExecutionError, fetchAddr, err)
	}

	c.cycles++
	c.LastResult = result

	return nil
}

// skip the next instruction when cond is true.
func (c *CPU) skip(cond bool) {
	if cond {
		c.Reg.PC += 2
	}
}

func (c *CPU) execute(ins instructions.Instruction, result *execution.Result) error {
	vx, err := c.Reg.Register(ins.X)
	if err != nil {
		return err
	}
	vy, err := c.Reg.Register(ins.Y)
	if err != nil {
		return err
	}

	switch ins.Operator {
	case instructions.Clear:
		c.vid.Clear()
		result.VideoUpdate = true

	case instructions.Return:
		addr, err := c.Reg.Pop()
		if err != nil {
			return err
		}
		c.Reg.PC = addr

	case instructions.Jump:
		c.Reg.PC = ins.Addr

	case instructions.Call:
		if err := c.Reg.Push(c.Reg.PC); err != nil {
			return err
		}
		c.Reg.PC = ins.Addr

	case instructions.SkipEqual:
		c.skip(vx == ins.Byte)

	case instructions.SkipNotEqual:
		c.skip(vx != ins.Byte)

	case instructions.SkipEqualRegister:
		c.skip(vx == vy)

	case instructions.SkipNotEqualRegister:
		c.skip(vx != vy)

	case instructions.Load:
		return c.Reg.SetRegister(ins.X, ins.Byte)

	case instructions.Add:
		// the immediate form of add does not touch the carry flag
		return c.Reg.SetRegister(ins.X, vx+ins.Byte)

	case instructions.Move:
		return c.Reg.SetRegister(ins.X, vy)

	case instructions.Or:
		return c.Reg.SetRegister(ins.X, vx|vy)

	case instructions.And:
		return c.Reg.SetRegister(ins.X, vx&vy)

	case instructions.Xor:
		return c.Reg.SetRegister(ins.X, vx^vy)

	case instructions.AddRegister:
		sum := uint16(vx) + uint16(vy)
		if err := c.Reg.SetRegister(ins.X, uint8(sum)); err != nil {
			return err
		}
		// the flag is written after the result so that it wins when the
		// destination register is VF itself
		if sum > 0xff {
			c.Reg.SetFlag(1)
		} else {
			c.Reg.SetFlag(0)
		}

	case instructions.Subtract:
		if err := c.Reg.SetRegister(ins.X, vx-vy); err != nil {
			return err
		}
		// VF is set when there is NO borrow
		if vx >= vy {
			c.Reg.SetFlag(1)
		} else {
			c.Reg.SetFlag(0)
		}

	case instructions.SubtractReverse:
		if err := c.Reg.SetRegister(ins.X, vy-vx); err != nil {
			return err
		}
		if vy >= vx {
			c.Reg.SetFlag(1)
		} else {
			c.Reg.SetFlag(0)
		}

	case instructions.ShiftRight:
		v := vx
		if c.instance.Prefs.ShiftCopiesY.Get().(bool) {
			v = vy
		}
		if err := c.Reg.SetRegister(ins.X, v>>1); err != nil {
			return err
		}
		c.Reg.SetFlag(v & 0x01)

	case instructions.ShiftLeft:
		v := vx
		if c.instance.Prefs.ShiftCopiesY.Get().(bool) {
			v = vy
		}
		if err := c.Reg.SetRegister(ins.X, v<<1); err != nil {
			return err
		}
		c.Reg.SetFlag(v >> 7)

	case instructions.LoadIndex:
		c.Reg.I = ins.Addr

	case instructions.JumpOffset:
		v0, err := c.Reg.Register(0)
		if err != nil {
			return err
		}
		c.Reg.PC = ins.Addr + uint16(v0)

	case instructions.Random:
		return c.Reg.SetRegister(ins.X, uint8(c.instance.Random.Intn(256))&ins.Byte)

	case instructions.Draw:
		data := make([]uint8, ins.Nib)
		for i := uint16(0); i < uint16(ins.Nib); i++ {
			data[i], err = c.mem.Read(c.Reg.I + i)
			if err != nil {
				return err
			}
		}
		collision := c.vid.DrawSprite(vx, vy, data)
		if collision {
			c.Reg.SetFlag(1)
		} else {
			c.Reg.SetFlag(0)
		}
		result.VideoUpdate = true

	case instructions.SkipPressed:
		pressed, err := c.kpd.IsPressed(vx)
		if err != nil {
			return err
		}
		c.skip(pressed)

	case instructions.SkipNotPressed:
		pressed, err := c.kpd.IsPressed(vx)
		if err != nil {
			return err
		}
		c.skip(!pressed)

	case instructions.MoveFromDelay:
		return c.Reg.SetRegister(ins.X, c.tmr.Delay)

	case instructions.WaitKey:
		key, ok := c.kpd.AnyPressed()
		if !ok {
			// poll again on the next Step(). the program counter stays on
			// this instruction
			c.Reg.PC -= 2
			c.AwaitingKey = true
			return nil
		}
		c.AwaitingKey = false
		return c.Reg.SetRegister(ins.X, key)

	case instructions.MoveToDelay:
		c.tmr.Delay = vx

	case instructions.MoveToSound:
		c.tmr.Sound = vx

	case instructions.AddIndex:
		c.Reg.I += uint16(vx)
		if c.instance.Prefs.IndexOverflow.Get().(bool) {
			if c.Reg.I > memory.Memtop {
				c.Reg.SetFlag(1)
			} else {
				c.Reg.SetFlag(0)
			}
		}

	case instructions.LoadSprite:
		c.Reg.I = memory.OriginFont + uint16(vx&0x0f)*5

	case instructions.StoreDecimal:
		if err := c.mem.Write(c.Reg.I, vx/100); err != nil {
			return err
		}
		if err := c.mem.Write(c.Reg.I+1, (vx/10)%10); err != nil {
			return err
		}
		if err := c.mem.Write(c.Reg.I+2, vx%10); err != nil {
			return err
		}

	case instructions.StoreRegisters:
		for r := uint8(0); r <= ins.X; r++ {
			v, err := c.Reg.Register(r)
			if err != nil {
				return err
			}
			if err := c.mem.Write(c.Reg.I+uint16(r), v); err != nil {
				return err
			}
		}
		if c.instance.Prefs.MoveIndex.Get().(bool) {
			c.Reg.I += uint16(ins.X) + 1
		}

	case instructions.LoadRegisters:
		for r := uint8(0); r <= ins.X; r++ {
			v, err := c.mem.Read(c.Reg.I + uint16(r))
			if err != nil {
				return err
			}
			if err := c.Reg.SetRegister(r, v); err != nil {
				return err
			}
		}
		if c.instance.Prefs.MoveIndex.Get().(bool) {
			c.Reg.I += uint16(ins.X) + 1
		}
	}

	return nil
}
