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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/test"
)

// mockTerm is a scripted terminal. TermRead returns each line of the script
// in turn and then a user interrupt.
type mockTerm struct {
	script []string
	output []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(prompt string) (string, error) {
	if len(trm.script) == 0 {
		return "", curated.Errorf(terminal.UserInterrupt)
	}

	s := trm.script[0]
	trm.script = trm.script[1:]

	return s, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	trm.output = append(trm.output, s)
}

func (trm *mockTerm) outputContains(s string) bool {
	for _, o := range trm.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

func startSession(t *testing.T, program []byte, script ...string) *mockTerm {
	t.Helper()

	trm := &mockTerm{script: script}

	dbg, err := debugger.NewDebugger(trm)
	if err != nil {
		t.Fatalf("%v", err)
	}

	cartload := cartridgeloader.NewLoader("test.ch8")
	cartload.Data = program

	err = dbg.Start(cartload)
	test.ExpectedSuccess(t, err)

	return trm
}

func TestStepAndRegisters(t *testing.T) {
	// LD V0, 0xab then end of program
	program := []byte{0x60, 0xab, 0x00, 0x00}

	trm := startSession(t, program, "STEP", "REGISTERS", "QUIT")

	test.ExpectedSuccess(t, trm.outputContains("LD V0, 0xab"))
	test.ExpectedSuccess(t, trm.outputContains("V0=ab"))
}

func TestBreakpoint(t *testing.T) {
	// three loads followed by end of program. break on the third load
	program := []byte{0x60, 0x01, 0x61, 0x02, 0x62, 0x03, 0x00, 0x00}

	trm := startSession(t, program, "BREAK 0x204", "RUN", "QUIT")

	test.ExpectedSuccess(t, trm.outputContains("break at 0x204"))
}

func TestRunToEnd(t *testing.T) {
	program := []byte{0x60, 0x01, 0x00, 0x00}

	trm := startSession(t, program, "RUN", "QUIT")

	test.ExpectedSuccess(t, trm.outputContains("program has ended"))
}

func TestWaitKey(t *testing.T) {
	// LD V0, K then end of program
	program := []byte{0xf0, 0x0a, 0x00, 0x00}

	trm := startSession(t, program, "RUN", "KEY a", "STEP", "REGISTERS", "QUIT")

	test.ExpectedSuccess(t, trm.outputContains("waiting for a key press"))
	test.ExpectedSuccess(t, trm.outputContains("V0=0a"))
}

func TestUnrecognisedCommand(t *testing.T) {
	program := []byte{0x00, 0x00}

	trm := startSession(t, program, "NOSUCH", "QUIT")

	test.ExpectedSuccess(t, trm.outputContains("unrecognised command"))
}
