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

// Package hardware assembles the components of the CHIP-8 machine into a
// single type. Driving loops (playmode, debugger, performance) work with the
// Chip8 type rather than the individual components.
package hardware

import (
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
)

// InstructionsPerSecond is the default execution rate of the interpreter.
// Roughly what a COSMAC VIP managed.
const InstructionsPerSecond = 700

// Chip8 is the complete CHIP-8 machine.
type Chip8 struct {
	Instance *instance.Instance

	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *keypad.Keypad
	Timer  *timer.Timer

	// the cartridge and font most recently attached. Reset() reloads both
	cart cartridgeloader.Loader
	font []uint8

	// instructions executed per timer period
	instPerTick int
}

// NewChip8 is the preferred method of initialisation for the Chip8 type. The
// prefs argument can be nil, in which case a new prefs instance is created.
func NewChip8(prefs *preferences.Preferences) (*Chip8, error) {
	c8 := &Chip8{
		Mem:         memory.NewMemory(),
		Video:       video.NewVideo(),
		Keypad:      keypad.NewKeypad(),
		Timer:       timer.NewTimer(),
		font:        cartridgeloader.DefaultFont,
		instPerTick: InstructionsPerSecond / timer.Rate,
	}

	var err error
	c8.Instance, err = instance.NewInstance(c8, prefs)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	c8.CPU = cpu.NewCPU(c8.Instance, c8.Mem, c8.Video, c8.Keypad, c8.Timer)

	if err := c8.Reset(); err != nil {
		return nil, err
	}

	return c8, nil
}

// Cycles returns the number of instructions executed since the last reset.
// Implements the random.Clock interface on behalf of the CPU.
func (c8 *Chip8) Cycles() uint64 {
	if c8.CPU == nil {
		return 0
	}
	return c8.CPU.Cycles()
}

// SetFont replaces the font sprites used by the machine. The font takes
// effect on the next Reset().
func (c8 *Chip8) SetFont(font []uint8) error {
	if len(font) != cartridgeloader.FontLength {
		return curated.Errorf("hardware: invalid font length (%d)", len(font))
	}
	c8.font = font
	return c8.Reset()
}

// SetInstructionRate changes the number of instructions executed per second
// of emulated time. The default is InstructionsPerSecond.
func (c8 *Chip8) SetInstructionRate(persec int) error {
	if persec < timer.Rate {
		return curated.Errorf("hardware: invalid instruction rate (%d)", persec)
	}
	c8.instPerTick = persec / timer.Rate
	return nil
}

// AttachCartridge loads the cartridge into memory and resets the machine.
func (c8 *Chip8) AttachCartridge(cartload cartridgeloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return err
	}
	c8.cart = cartload
	return c8.Reset()
}

// Reset the machine to its initial state. The font and any attached
// cartridge are reloaded.
func (c8 *Chip8) Reset() error {
	c8.Mem.Reset()
	c8.Video.Reset()
	c8.Keypad.Reset()
	c8.Timer.Reset()
	c8.CPU.Reset()

	if err := c8.Mem.Load(c8.font, memory.OriginFont); err != nil {
		return err
	}

	if c8.cart.HasLoaded() {
		if err := c8.Mem.Load(c8.cart.Data, memory.OriginCart); err != nil {
			return err
		}
	}

	return nil
}

// Step executes a single instruction.
func (c8 *Chip8) Step() error {
	return c8.CPU.Step()
}

// Tick executes one timer period's worth of instructions and then steps the
// timers. Sixty ticks is one second of emulated time.
func (c8 *Chip8) Tick() error {
	for i := 0; i < c8.instPerTick; i++ {
		if err := c8.CPU.Step(); err != nil {
			return err
		}

		// a blocked wait-for-key instruction burns the rest of the period.
		// the timers must keep running while the program polls
		if c8.CPU.AwaitingKey {
			break
		}
	}
	c8.Timer.Step()
	return nil
}

// Run the machine until the continueCheck callback returns false. The
// callback is called once per timer period, sixty times per second of
// emulated time.
//
// The check for continuation is a callback rather than a channel select on
// the hot path. The caller decides how often to consult the outside world.
func (c8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := c8.Tick(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
