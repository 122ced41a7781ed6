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

// Package debugger implements a line oriented debugger for the CHIP-8
// machine. Debugging sessions are driven through an implementation of the
// terminal.Terminal interface.
package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
)

// the number of instructions between each decrement of the timers. same
// pacing as Chip8.Tick() but spread over individual steps so that STEP and
// RUN agree on when timers fire.
const instructionsPerTick = hardware.InstructionsPerSecond / timer.Rate

// Debugger is the basic debugger for the CHIP-8 machine.
type Debugger struct {
	c8   *hardware.Chip8
	term terminal.Terminal
	dsm  *disassembly.Disassembly

	breakpoints map[uint16]bool

	// count of instructions since the timers last ticked
	tickCycle int

	// cause the debugging loop to end
	quit bool

	// raised by the ctrl-c signal handler while the machine is running
	intChan chan os.Signal
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		term:        term,
		breakpoints: make(map[uint16]bool),
		intChan:     make(chan os.Signal, 1),
	}

	var err error
	dbg.c8, err = hardware.NewChip8(nil)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the debugging session with the cartridge in place.
func (dbg *Debugger) Start(cartload cartridgeloader.Loader) error {
	if err := dbg.c8.AttachCartridge(cartload); err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	var err error
	dbg.dsm, err = disassembly.FromCartridge(cartload)
	if err != nil {
		logger.Logf("debugger", "%v", err)
	}

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.buildPrompt())
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// the prompt shows the current PC and, when it can be decoded, the
// instruction about to be executed.
func (dbg *Debugger) buildPrompt() string {
	pc := dbg.c8.CPU.Reg.PC

	hi, err := dbg.c8.Mem.Read(pc)
	if err != nil {
		return fmt.Sprintf("[ %#04x ] > ", pc)
	}
	lo, err := dbg.c8.Mem.Read(pc + 1)
	if err != nil {
		return fmt.Sprintf("[ %#04x ] > ", pc)
	}

	ins, err := instructions.Decode(uint16(hi)<<8 | uint16(lo))
	if err != nil {
		return fmt.Sprintf("[ %#04x ] > ", pc)
	}

	return fmt.Sprintf("[ %#04x ] %s > ", pc, ins.String())
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// step the machine one instruction, keeping the timers in sync with the
// number of instructions executed.
func (dbg *Debugger) step() error {
	if err := dbg.c8.Step(); err != nil {
		return err
	}

	dbg.tickCycle++
	if dbg.tickCycle >= instructionsPerTick {
		dbg.tickCycle = 0
		dbg.c8.Timer.Step()
	}

	return nil
}

// run the machine until a breakpoint is reached, the program ends, the
// machine blocks on a key press, or the user interrupts with ctrl-c.
func (dbg *Debugger) run() error {
	signal.Notify(dbg.intChan, os.Interrupt)
	defer signal.Stop(dbg.intChan)

	for {
		select {
		case <-dbg.intChan:
			dbg.printLine(terminal.StyleFeedback, "interrupted")
			return nil
		default:
		}

		if err := dbg.step(); err != nil {
			if curated.Is(err, cpu.PoweredOff) {
				dbg.printLine(terminal.StyleFeedback, "program has ended")
				return nil
			}
			return err
		}

		if dbg.c8.CPU.AwaitingKey {
			dbg.printLine(terminal.StyleFeedback, "machine is waiting for a key press (use KEY to supply one)")
			return nil
		}

		if dbg.breakpoints[dbg.c8.CPU.Reg.PC] {
			dbg.printLine(terminal.StyleFeedback, "break at %#04x", dbg.c8.CPU.Reg.PC)
			return nil
		}
	}
}
