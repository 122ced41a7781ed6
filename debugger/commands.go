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

package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// sentinal errors for command parsing
const (
	// UnrecognisedCommand is returned when the input does not match any
	// debugger command.
	UnrecognisedCommand = "debugger: unrecognised command (%s)"

	// InvalidArgument is returned when a command argument cannot be parsed.
	InvalidArgument = "debugger: %s: invalid argument (%s)"
)

var commandHelp = map[string]string{
	"BREAK":     "set a breakpoint at an address. with no argument, list breakpoints",
	"CLEAR":     "clear all breakpoints",
	"DISASM":    "print the disassembly of the attached cartridge",
	"DISPLAY":   "print the current contents of the display",
	"HELP":      "print this help",
	"KEY":       "press or release a key on the keypad. KEY <0 to F> [UP|DOWN]",
	"LAST":      "print the result of the last instruction",
	"MEMORY":    "print memory contents. MEMORY <address> [length]",
	"QUIT":      "end the debugging session",
	"REGISTERS": "print the CPU registers and timers",
	"RESET":     "reset the machine",
	"RUN":       "run until a breakpoint, the end of the program or a ctrl-c",
	"STEP":      "execute the next instruction. STEP [count]",
}

func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case "HELP":
		return dbg.cmdHelp()
	case "STEP":
		return dbg.cmdStep(args)
	case "RUN":
		return dbg.run()
	case "BREAK":
		return dbg.cmdBreak(args)
	case "CLEAR":
		dbg.breakpoints = make(map[uint16]bool)
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil
	case "REGISTERS":
		dbg.printLine(terminal.StyleResult, "%s", dbg.c8.CPU)
		dbg.printLine(terminal.StyleResult, "%s", dbg.c8.Timer)
		return nil
	case "MEMORY":
		return dbg.cmdMemory(args)
	case "DISPLAY":
		dbg.printLine(terminal.StyleResult, "%s", dbg.c8.Video)
		return nil
	case "DISASM":
		return dbg.cmdDisasm()
	case "LAST":
		dbg.printLine(terminal.StyleResult, "%s", dbg.c8.CPU.LastResult)
		return nil
	case "KEY":
		return dbg.cmdKey(args)
	case "RESET":
		if err := dbg.c8.Reset(); err != nil {
			return err
		}
		dbg.tickCycle = 0
		dbg.printLine(terminal.StyleFeedback, "machine reset")
		return nil
	case "QUIT":
		dbg.quit = true
		return nil
	}

	return curated.Errorf(UnrecognisedCommand, command)
}

func (dbg *Debugger) cmdHelp() error {
	commands := make([]string, 0, len(commandHelp))
	for c := range commandHelp {
		commands = append(commands, c)
	}
	sort.Strings(commands)

	for _, c := range commands {
		dbg.printLine(terminal.StyleHelp, "%-10s %s", c, commandHelp[c])
	}

	return nil
}

func (dbg *Debugger) cmdStep(args []string) error {
	count := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return curated.Errorf(InvalidArgument, "STEP", args[0])
		}
		count = n
	}

	for i := 0; i < count; i++ {
		if err := dbg.step(); err != nil {
			if curated.Is(err, cpu.PoweredOff) {
				dbg.printLine(terminal.StyleFeedback, "program has ended")
				return nil
			}
			return err
		}
		dbg.printLine(terminal.StyleResult, "%s", dbg.c8.CPU.LastResult)

		if dbg.c8.CPU.AwaitingKey {
			dbg.printLine(terminal.StyleFeedback, "machine is waiting for a key press (use KEY to supply one)")
			return nil
		}
	}

	return nil
}

func (dbg *Debugger) cmdBreak(args []string) error {
	if len(args) == 0 {
		if len(dbg.breakpoints) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no breakpoints")
			return nil
		}

		addresses := make([]int, 0, len(dbg.breakpoints))
		for a := range dbg.breakpoints {
			addresses = append(addresses, int(a))
		}
		sort.Ints(addresses)

		for _, a := range addresses {
			dbg.printLine(terminal.StyleFeedback, "break at %#04x", a)
		}
		return nil
	}

	addr, err := strconv.ParseUint(args[0], 0, 16)
	if err != nil || uint16(addr) > memory.Memtop {
		return curated.Errorf(InvalidArgument, "BREAK", args[0])
	}

	dbg.breakpoints[uint16(addr)] = true
	dbg.printLine(terminal.StyleFeedback, "break at %#04x", addr)

	return nil
}

func (dbg *Debugger) cmdMemory(args []string) error {
	if len(args) == 0 {
		return curated.Errorf(InvalidArgument, "MEMORY", "address required")
	}

	addr, err := strconv.ParseUint(args[0], 0, 16)
	if err != nil || uint16(addr) > memory.Memtop {
		return curated.Errorf(InvalidArgument, "MEMORY", args[0])
	}

	length := 16
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return curated.Errorf(InvalidArgument, "MEMORY", args[1])
		}
		length = n
	}

	s := strings.Builder{}
	for i := 0; i < length; i++ {
		a := uint16(addr) + uint16(i)
		if a > memory.Memtop {
			break
		}

		if i%8 == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleResult, "%s", strings.TrimRight(s.String(), " "))
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%#04x  ", a))
		}

		d, err := dbg.c8.Mem.Read(a)
		if err != nil {
			return err
		}
		s.WriteString(fmt.Sprintf("%02x ", d))
	}

	if s.Len() > 0 {
		dbg.printLine(terminal.StyleResult, "%s", strings.TrimRight(s.String(), " "))
	}

	return nil
}

func (dbg *Debugger) cmdDisasm() error {
	if dbg.dsm == nil {
		dbg.printLine(terminal.StyleFeedback, "no disassembly available")
		return nil
	}

	for _, e := range dbg.dsm.Entries {
		dbg.printLine(terminal.StyleResult, "%s", e)
	}

	return nil
}

func (dbg *Debugger) cmdKey(args []string) error {
	if len(args) == 0 {
		return curated.Errorf(InvalidArgument, "KEY", "key required")
	}

	key, err := strconv.ParseUint(args[0], 16, 8)
	if err != nil || key >= keypad.NumKeys {
		return curated.Errorf(InvalidArgument, "KEY", args[0])
	}

	pressed := true
	if len(args) > 1 {
		switch strings.ToUpper(args[1]) {
		case "DOWN":
			pressed = true
		case "UP":
			pressed = false
		default:
			return curated.Errorf(InvalidArgument, "KEY", args[1])
		}
	}

	if err := dbg.c8.Keypad.SetKey(uint8(key), pressed); err != nil {
		return err
	}

	if pressed {
		dbg.printLine(terminal.StyleFeedback, "key %01X down", key)
	} else {
		dbg.printLine(terminal.StyleFeedback, "key %01X up", key)
	}

	return nil
}
